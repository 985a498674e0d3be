package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) CategoryByID(ctx context.Context, id int) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"categoryId" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *Repository) AddCategory(ctx context.Context, category *Category) error {
	if _, err := r.db.ModelContext(ctx, category).Insert(); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	return nil
}

func (r *Repository) UpdateCategory(ctx context.Context, category *Category) error {
	if _, err := r.db.ModelContext(ctx, category).WherePK().Update(); err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	return nil
}

func (r *Repository) DeleteCategory(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Category)(nil)).
		Where(`"categoryId" = ?`, id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.ModelContext(ctx, &tags).
		OrderExpr(`"name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, nil
}

// TagsByIDs loads the tags referenced by blog post tagIds arrays.
// Used to attach full tag information after the posts are fetched.
func (r *Repository) TagsByIDs(ctx context.Context, tagIDs []int) ([]Tag, error) {
	if len(tagIDs) == 0 {
		return []Tag{}, nil
	}

	tags := []Tag{}
	err := r.db.ModelContext(ctx, &tags).
		Where(`"tagId" IN (?)`, pg.In(tagIDs)).
		OrderExpr(`"name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags by ids: %w", err)
	}

	return tags, nil
}

func (r *Repository) TagByID(ctx context.Context, id int) (*Tag, error) {
	tag := &Tag{}
	err := r.db.ModelContext(ctx, tag).
		Where(`"tagId" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get tag by id: %w", err)
	}

	return tag, nil
}

func (r *Repository) AddTag(ctx context.Context, tag *Tag) error {
	if _, err := r.db.ModelContext(ctx, tag).Insert(); err != nil {
		return fmt.Errorf("failed to insert tag: %w", err)
	}

	return nil
}

func (r *Repository) UpdateTag(ctx context.Context, tag *Tag) error {
	if _, err := r.db.ModelContext(ctx, tag).WherePK().Update(); err != nil {
		return fmt.Errorf("failed to update tag: %w", err)
	}

	return nil
}

func (r *Repository) DeleteTag(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Tag)(nil)).
		Where(`"tagId" = ?`, id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete tag: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
