package siteadmin

import (
	"context"
	"fmt"
	"time"

	"github.com/daniilsolovey/site-admin/internal/db"
)

func (m *Manager) Services(ctx context.Context, activeOnly bool) ([]Service, error) {
	list, err := m.db.Services(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("db get services: %w", err)
	}

	return NewServices(list), nil
}

func (m *Manager) ServiceByID(ctx context.Context, id int) (*Service, error) {
	service, err := m.db.ServiceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get service by id: %w", err)
	} else if service == nil {
		return nil, nil
	}

	result := NewService(service)
	return &result, nil
}

func (d ServiceDraft) apply(service *db.Service) {
	service.Name = d.Name
	service.Description = d.Description
	service.Icon = d.Icon
	service.Active = d.Active

	service.Slug = d.Slug
	if service.Slug == "" {
		service.Slug = Slugify(d.Name)
	}
}

func (m *Manager) CreateService(ctx context.Context, draft ServiceDraft) (*Service, error) {
	if err := required("name", draft.Name); err != nil {
		return nil, err
	}

	service := &db.Service{CreatedAt: time.Now()}
	draft.apply(service)

	if err := m.db.AddService(ctx, service); err != nil {
		return nil, asConflict(err)
	}

	result := NewService(service)
	return &result, nil
}

func (m *Manager) UpdateService(ctx context.Context, id int, draft ServiceDraft) (*Service, error) {
	if err := required("name", draft.Name); err != nil {
		return nil, err
	}

	existing, err := m.db.ServiceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get service by id: %w", err)
	} else if existing == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	draft.apply(existing)
	existing.UpdatedAt = &now

	if err := m.db.UpdateService(ctx, existing); err != nil {
		return nil, asConflict(err)
	}

	result := NewService(existing)
	return &result, nil
}

func (m *Manager) DeleteService(ctx context.Context, id int) error {
	deleted, err := m.db.DeleteService(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	return nil
}
