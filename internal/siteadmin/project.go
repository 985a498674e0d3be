package siteadmin

import (
	"context"
	"fmt"
	"time"

	"github.com/daniilsolovey/site-admin/internal/db"
)

// fillServices attaches full service records to projects that reference
// them by id.
func (m *Manager) fillServices(ctx context.Context, projects ProjectList) error {
	ids := projects.UniqueServiceIDs()
	if len(ids) == 0 {
		return nil
	}

	services, err := m.db.ServicesByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("db get services by ids: %w", err)
	}

	projects.SetServices(NewServices(services))
	return nil
}

// Projects retrieves the portfolio sorted by createdAt DESC with services
// resolved.
func (m *Manager) Projects(ctx context.Context, page, limit int) ([]Project, error) {
	dbProjects, err := m.db.Projects(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("db get projects: %w", err)
	}

	projects := NewProjectList(dbProjects)
	if err := m.fillServices(ctx, projects); err != nil {
		return nil, err
	}

	return projects, nil
}

func (m *Manager) ProjectsCount(ctx context.Context) (int, error) {
	count, err := m.db.ProjectsCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("db get projects count: %w", err)
	}

	return count, nil
}

func (m *Manager) ProjectByID(ctx context.Context, id int) (*Project, error) {
	dbProject, err := m.db.ProjectByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get project by id: %w", err)
	} else if dbProject == nil {
		return nil, nil
	}

	projects := NewProjectList([]db.Project{*dbProject})
	if err := m.fillServices(ctx, projects); err != nil {
		return nil, err
	}

	return &projects[0], nil
}

func (d ProjectDraft) validate() error {
	for field, value := range map[string]string{
		"title":       d.Title,
		"description": d.Description,
		"clientName":  d.ClientName,
		"location":    d.Location,
		"content":     d.Content,
	} {
		if err := required(field, value); err != nil {
			return err
		}
	}
	if d.CompletedDate.IsZero() {
		return ValidationError{Field: "completedDate", Reason: "must be set"}
	}
	return nil
}

func (d ProjectDraft) apply(project *db.Project) {
	project.Title = d.Title
	project.CoverImage = d.CoverImage
	project.Logo = d.Logo
	project.Description = d.Description
	project.ClientName = d.ClientName
	project.ServiceIDs = d.ServiceIDs
	project.CompletedDate = d.CompletedDate
	project.Location = d.Location
	project.Content = d.Content

	project.Slug = d.Slug
	if project.Slug == "" {
		project.Slug = Slugify(d.Title)
	}
}

func (m *Manager) CreateProject(ctx context.Context, draft ProjectDraft) (*Project, error) {
	if err := draft.validate(); err != nil {
		return nil, err
	}

	project := &db.Project{CreatedAt: time.Now()}
	draft.apply(project)

	if err := m.db.AddProject(ctx, project); err != nil {
		return nil, asConflict(err)
	}

	m.log.Info("project created", "id", project.ID, "slug", project.Slug)

	return m.ProjectByID(ctx, project.ID)
}

func (m *Manager) UpdateProject(ctx context.Context, id int, draft ProjectDraft) (*Project, error) {
	if err := draft.validate(); err != nil {
		return nil, err
	}

	existing, err := m.db.ProjectByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get project by id: %w", err)
	} else if existing == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	draft.apply(existing)
	existing.UpdatedAt = &now

	if err := m.db.UpdateProject(ctx, existing); err != nil {
		return nil, asConflict(err)
	}

	return m.ProjectByID(ctx, id)
}

func (m *Manager) DeleteProject(ctx context.Context, id int) error {
	deleted, err := m.db.DeleteProject(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	m.log.Info("project deleted", "id", id)
	return nil
}
