package siteadmin

import (
	"context"
	"fmt"
	"time"

	"github.com/daniilsolovey/site-admin/internal/db"
)

// fillTags attaches full tag records to posts that reference them by id.
func (m *Manager) fillTags(ctx context.Context, posts BlogPostList) error {
	ids := posts.UniqueTagIDs()
	if len(ids) == 0 {
		return nil
	}

	tags, err := m.db.TagsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("db get tags by ids: %w", err)
	}

	posts.SetTags(NewTags(tags))
	return nil
}

// BlogPosts retrieves the admin list with optional filtering, sorted by
// createdAt DESC, category and tags resolved.
func (m *Manager) BlogPosts(ctx context.Context, filter db.BlogPostFilter, page, limit int) ([]BlogPost, error) {
	dbPosts, err := m.db.BlogPosts(ctx, filter, page, limit)
	if err != nil {
		return nil, fmt.Errorf("db get blog posts: %w", err)
	}

	posts := NewBlogPostList(dbPosts)
	if err := m.fillTags(ctx, posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (m *Manager) BlogPostsCount(ctx context.Context, filter db.BlogPostFilter) (int, error) {
	count, err := m.db.BlogPostsCount(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("db get blog posts count: %w", err)
	}

	return count, nil
}

// PublishedBlogPosts is the public read path, sorted by publishedAt DESC.
func (m *Manager) PublishedBlogPosts(ctx context.Context, categoryID, tagID *int, page, limit int) ([]BlogPost, error) {
	dbPosts, err := m.db.PublishedBlogPosts(ctx, categoryID, tagID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("db get published blog posts: %w", err)
	}

	posts := NewBlogPostList(dbPosts)
	if err := m.fillTags(ctx, posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (m *Manager) PublishedBlogPostsCount(ctx context.Context, categoryID, tagID *int) (int, error) {
	count, err := m.db.PublishedBlogPostsCount(ctx, categoryID, tagID)
	if err != nil {
		return 0, fmt.Errorf("db get published blog posts count: %w", err)
	}

	return count, nil
}

func (m *Manager) BlogPostByID(ctx context.Context, id int) (*BlogPost, error) {
	dbPost, err := m.db.BlogPostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get blog post by id: %w", err)
	} else if dbPost == nil {
		return nil, nil
	}

	posts := NewBlogPostList([]db.BlogPost{*dbPost})
	if err := m.fillTags(ctx, posts); err != nil {
		return nil, err
	}

	return &posts[0], nil
}

// PublishedBlogPostByID serves the public detail page. Reading a post
// counts as a view.
func (m *Manager) PublishedBlogPostByID(ctx context.Context, id int) (*BlogPost, error) {
	post, err := m.BlogPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil || post.Status != db.BlogStatusPublished {
		return nil, nil
	}

	if err := m.db.IncrementBlogPostViews(ctx, id); err != nil {
		return nil, err
	}
	post.Views++

	return post, nil
}

func (d BlogPostDraft) validate() error {
	if err := required("title", d.Title); err != nil {
		return err
	}
	if err := required("content", d.Content); err != nil {
		return err
	}
	if d.CategoryID <= 0 {
		return ValidationError{Field: "categoryId", Reason: "must reference a category"}
	}
	if d.Status != "" && d.Status != db.BlogStatusDraft &&
		d.Status != db.BlogStatusPublished && d.Status != db.BlogStatusArchived {
		return ValidationError{Field: "status", Reason: "must be draft, published or archived"}
	}
	return nil
}

// apply copies the draft onto a post, deriving slug and excerpt when they
// are not set explicitly. publishedAt is stamped on the first publish and
// never overwritten afterwards.
func (d BlogPostDraft) apply(post *db.BlogPost, now time.Time) {
	post.Title = d.Title
	post.Content = d.Content
	post.CoverImage = d.CoverImage
	post.Published = d.Published
	post.CategoryID = d.CategoryID
	post.TagIDs = d.TagIDs
	post.MetaTitle = d.MetaTitle
	post.MetaDescription = d.MetaDescription
	post.SeoKeywords = d.SeoKeywords

	post.Slug = d.Slug
	if post.Slug == "" {
		post.Slug = Slugify(d.Title)
	}

	excerpt := d.Excerpt
	if excerpt == "" {
		excerpt = Excerpt(d.Content)
	}
	post.Excerpt = &excerpt

	post.Status = d.Status
	if post.Status == "" {
		post.Status = db.BlogStatusDraft
	}
	if d.Published {
		post.Status = db.BlogStatusPublished
	}

	if post.Status == db.BlogStatusPublished {
		post.Published = true
		if post.PublishedAt == nil {
			publishedAt := now
			post.PublishedAt = &publishedAt
		}
	} else {
		post.Published = false
	}
}

func (m *Manager) CreateBlogPost(ctx context.Context, draft BlogPostDraft) (*BlogPost, error) {
	if err := draft.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	post := &db.BlogPost{CreatedAt: now}
	draft.apply(post, now)

	if err := m.db.AddBlogPost(ctx, post); err != nil {
		return nil, asConflict(err)
	}

	m.log.Info("blog post created", "id", post.ID, "slug", post.Slug)

	return m.BlogPostByID(ctx, post.ID)
}

func (m *Manager) UpdateBlogPost(ctx context.Context, id int, draft BlogPostDraft) (*BlogPost, error) {
	if err := draft.validate(); err != nil {
		return nil, err
	}

	existing, err := m.db.BlogPostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get blog post by id: %w", err)
	} else if existing == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	draft.apply(existing, now)
	existing.UpdatedAt = &now
	existing.Category = nil

	if err := m.db.UpdateBlogPost(ctx, existing); err != nil {
		return nil, asConflict(err)
	}

	return m.BlogPostByID(ctx, id)
}

// TogglePublish flips a post between published and draft. Archived posts
// go back to published.
func (m *Manager) TogglePublish(ctx context.Context, id int) (*BlogPost, error) {
	existing, err := m.db.BlogPostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get blog post by id: %w", err)
	} else if existing == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	if existing.Published {
		existing.Published = false
		existing.Status = db.BlogStatusDraft
	} else {
		existing.Published = true
		existing.Status = db.BlogStatusPublished
		if existing.PublishedAt == nil {
			existing.PublishedAt = &now
		}
	}
	existing.UpdatedAt = &now
	existing.Category = nil

	if err := m.db.UpdateBlogPost(ctx, existing); err != nil {
		return nil, err
	}

	m.log.Info("blog post publish toggled", "id", id, "published", existing.Published)

	return m.BlogPostByID(ctx, id)
}

func (m *Manager) DeleteBlogPost(ctx context.Context, id int) error {
	deleted, err := m.db.DeleteBlogPost(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	m.log.Info("blog post deleted", "id", id)
	return nil
}

func (m *Manager) BlogPostStats(ctx context.Context) (*BlogPostStats, error) {
	stats, err := m.db.BlogPostStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get blog post stats: %w", err)
	}

	return &BlogPostStats{
		Total:      stats.Total,
		Published:  stats.Published,
		Drafts:     stats.Drafts,
		TotalViews: stats.TotalViews,
	}, nil
}
