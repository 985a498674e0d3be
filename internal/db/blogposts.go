package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// BlogPostFilter narrows blog post list, count and export queries.
// Empty or "all" values do not filter.
type BlogPostFilter struct {
	Status   string
	Category int
	Search   string
}

func (f BlogPostFilter) apply(q *orm.Query) *orm.Query {
	if f.Status != "" && f.Status != "all" {
		q = q.Where(`"t"."status" = ?`, f.Status)
	}
	if f.Category != 0 {
		q = q.Where(`"t"."categoryId" = ?`, f.Category)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.WhereGroup(func(q *orm.Query) (*orm.Query, error) {
			q = q.WhereOr(`"t"."title" ILIKE ?`, pattern).
				WhereOr(`"t"."content" ILIKE ?`, pattern)
			return q, nil
		})
	}
	return q
}

// BlogPosts retrieves blog posts with optional filtering, sorted by
// createdAt DESC, with the category relation loaded. Tags are attached
// separately via TagsByIDs.
func (r *Repository) BlogPosts(ctx context.Context, filter BlogPostFilter, page, limit int) ([]BlogPost, error) {
	if page < 1 || limit < 1 {
		return nil, fmt.Errorf("page and limit must be greater than 0: page=%d, limit=%d", page, limit)
	}

	var posts []BlogPost
	q := filter.apply(r.db.ModelContext(ctx, &posts).Relation("Category"))

	err := paginate(q.OrderExpr(`"t"."createdAt" DESC`), page, limit).Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query blog posts: %w", err)
	}

	return posts, nil
}

func (r *Repository) BlogPostsCount(ctx context.Context, filter BlogPostFilter) (int, error) {
	count, err := filter.apply(r.db.ModelContext(ctx, (*BlogPost)(nil))).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count blog posts: %w", err)
	}

	return count, nil
}

// PublishedBlogPosts is the public read path: published posts only,
// sorted by publishedAt DESC.
func (r *Repository) PublishedBlogPosts(ctx context.Context, categoryID, tagID *int, page, limit int) ([]BlogPost, error) {
	if page < 1 || limit < 1 {
		return nil, fmt.Errorf("page and limit must be greater than 0: page=%d, limit=%d", page, limit)
	}

	var posts []BlogPost
	q := r.db.ModelContext(ctx, &posts).
		Relation("Category").
		Where(`"t"."status" = ?`, BlogStatusPublished)

	if categoryID != nil {
		q = q.Where(`"t"."categoryId" = ?`, *categoryID)
	}
	if tagID != nil {
		q = q.Where(`? = ANY("t"."tagIds")`, *tagID)
	}

	err := paginate(q.OrderExpr(`"t"."publishedAt" DESC`), page, limit).Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query published blog posts: %w", err)
	}

	return posts, nil
}

func (r *Repository) PublishedBlogPostsCount(ctx context.Context, categoryID, tagID *int) (int, error) {
	q := r.db.ModelContext(ctx, (*BlogPost)(nil)).
		Where(`"t"."status" = ?`, BlogStatusPublished)

	if categoryID != nil {
		q = q.Where(`"t"."categoryId" = ?`, *categoryID)
	}
	if tagID != nil {
		q = q.Where(`? = ANY("t"."tagIds")`, *tagID)
	}

	count, err := q.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count published blog posts: %w", err)
	}

	return count, nil
}

func (r *Repository) BlogPostByID(ctx context.Context, id int) (*BlogPost, error) {
	post := &BlogPost{}
	err := r.db.ModelContext(ctx, post).
		Relation("Category").
		Where(`"t"."blogPostId" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get blog post by id: %w", err)
	}

	return post, nil
}

func (r *Repository) AddBlogPost(ctx context.Context, post *BlogPost) error {
	if _, err := r.db.ModelContext(ctx, post).Insert(); err != nil {
		return fmt.Errorf("failed to insert blog post: %w", err)
	}

	return nil
}

func (r *Repository) UpdateBlogPost(ctx context.Context, post *BlogPost) error {
	if _, err := r.db.ModelContext(ctx, post).WherePK().Update(); err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
	}

	return nil
}

func (r *Repository) DeleteBlogPost(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*BlogPost)(nil)).
		Where(`"blogPostId" = ?`, id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete blog post: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// IncrementBlogPostViews bumps the view counter of a published post.
func (r *Repository) IncrementBlogPostViews(ctx context.Context, id int) error {
	_, err := r.db.ModelContext(ctx, (*BlogPost)(nil)).
		Set(`"views" = "views" + 1`).
		Where(`"blogPostId" = ?`, id).
		Update()
	if err != nil {
		return fmt.Errorf("failed to increment blog post views: %w", err)
	}

	return nil
}

// BlogPostStats holds the dashboard overview counters.
type BlogPostStats struct {
	Total      int
	Published  int
	Drafts     int
	TotalViews int
}

func (r *Repository) BlogPostStats(ctx context.Context) (*BlogPostStats, error) {
	stats := &BlogPostStats{}

	var err error
	if stats.Total, err = r.db.ModelContext(ctx, (*BlogPost)(nil)).Count(); err != nil {
		return nil, fmt.Errorf("failed to count blog posts: %w", err)
	}

	stats.Published, err = r.db.ModelContext(ctx, (*BlogPost)(nil)).
		Where(`"published" = TRUE`).
		Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count published blog posts: %w", err)
	}

	stats.Drafts, err = r.db.ModelContext(ctx, (*BlogPost)(nil)).
		Where(`"status" = ?`, BlogStatusDraft).
		Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count draft blog posts: %w", err)
	}

	_, err = r.db.QueryOneContext(ctx, pg.Scan(&stats.TotalViews),
		`SELECT COALESCE(SUM("views"), 0) FROM "blogposts"`)
	if err != nil {
		return nil, fmt.Errorf("failed to sum blog post views: %w", err)
	}

	return stats, nil
}
