package siteadmin

import (
	"context"
	"fmt"
	"time"

	"github.com/daniilsolovey/site-admin/internal/db"
)

func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	list, err := m.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

func (m *Manager) CreateCategory(ctx context.Context, name string) (*Category, error) {
	if err := required("name", name); err != nil {
		return nil, err
	}

	category := &db.Category{
		Name:      name,
		Slug:      Slugify(name),
		CreatedAt: time.Now(),
	}

	if err := m.db.AddCategory(ctx, category); err != nil {
		return nil, asConflict(err)
	}

	result := NewCategory(category)
	return &result, nil
}

func (m *Manager) UpdateCategory(ctx context.Context, id int, name string) (*Category, error) {
	if err := required("name", name); err != nil {
		return nil, err
	}

	existing, err := m.db.CategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get category by id: %w", err)
	} else if existing == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	existing.Name = name
	existing.Slug = Slugify(name)
	existing.UpdatedAt = &now

	if err := m.db.UpdateCategory(ctx, existing); err != nil {
		return nil, asConflict(err)
	}

	result := NewCategory(existing)
	return &result, nil
}

// DeleteCategory removes a category. Categories still referenced by blog
// posts are protected by the foreign key and surface as ErrConflict.
func (m *Manager) DeleteCategory(ctx context.Context, id int) error {
	deleted, err := m.db.DeleteCategory(ctx, id)
	if err != nil {
		return asConflict(err)
	}
	if !deleted {
		return ErrNotFound
	}

	return nil
}

func (m *Manager) Tags(ctx context.Context) ([]Tag, error) {
	list, err := m.db.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get tags: %w", err)
	}

	return NewTags(list), nil
}

func (m *Manager) CreateTag(ctx context.Context, name string) (*Tag, error) {
	if err := required("name", name); err != nil {
		return nil, err
	}

	tag := &db.Tag{
		Name:      name,
		Slug:      Slugify(name),
		CreatedAt: time.Now(),
	}

	if err := m.db.AddTag(ctx, tag); err != nil {
		return nil, asConflict(err)
	}

	result := NewTag(tag)
	return &result, nil
}

func (m *Manager) UpdateTag(ctx context.Context, id int, name string) (*Tag, error) {
	if err := required("name", name); err != nil {
		return nil, err
	}

	existing, err := m.db.TagByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get tag by id: %w", err)
	} else if existing == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	existing.Name = name
	existing.Slug = Slugify(name)
	existing.UpdatedAt = &now

	if err := m.db.UpdateTag(ctx, existing); err != nil {
		return nil, asConflict(err)
	}

	result := NewTag(existing)
	return &result, nil
}

func (m *Manager) DeleteTag(ctx context.Context, id int) error {
	deleted, err := m.db.DeleteTag(ctx, id)
	if err != nil {
		return asConflict(err)
	}
	if !deleted {
		return ErrNotFound
	}

	return nil
}
