package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// Projects retrieves projects sorted by createdAt DESC. Services are
// attached separately via ServicesByIDs.
func (r *Repository) Projects(ctx context.Context, page, limit int) ([]Project, error) {
	if page < 1 || limit < 1 {
		return nil, fmt.Errorf("page and limit must be greater than 0: page=%d, limit=%d", page, limit)
	}

	var projects []Project
	q := r.db.ModelContext(ctx, &projects).
		OrderExpr(`"t"."createdAt" DESC`)

	if err := paginate(q, page, limit).Select(); err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}

	return projects, nil
}

func (r *Repository) ProjectsCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Project)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}

	return count, nil
}

func (r *Repository) ProjectByID(ctx context.Context, id int) (*Project, error) {
	project := &Project{}
	err := r.db.ModelContext(ctx, project).
		Where(`"t"."projectId" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get project by id: %w", err)
	}

	return project, nil
}

func (r *Repository) AddProject(ctx context.Context, project *Project) error {
	if _, err := r.db.ModelContext(ctx, project).Insert(); err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}

	return nil
}

func (r *Repository) UpdateProject(ctx context.Context, project *Project) error {
	if _, err := r.db.ModelContext(ctx, project).WherePK().Update(); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	return nil
}

func (r *Repository) DeleteProject(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Project)(nil)).
		Where(`"projectId" = ?`, id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) Services(ctx context.Context, activeOnly bool) ([]Service, error) {
	var services []Service
	q := r.db.ModelContext(ctx, &services)

	if activeOnly {
		q = q.Where(`"active" = TRUE`)
	}

	if err := q.OrderExpr(`"name" ASC`).Select(); err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}

	return services, nil
}

// ServicesByIDs loads the services referenced by project serviceIds arrays.
func (r *Repository) ServicesByIDs(ctx context.Context, serviceIDs []int) ([]Service, error) {
	if len(serviceIDs) == 0 {
		return []Service{}, nil
	}

	services := []Service{}
	err := r.db.ModelContext(ctx, &services).
		Where(`"serviceId" IN (?)`, pg.In(serviceIDs)).
		OrderExpr(`"name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query services by ids: %w", err)
	}

	return services, nil
}

func (r *Repository) ServiceByID(ctx context.Context, id int) (*Service, error) {
	service := &Service{}
	err := r.db.ModelContext(ctx, service).
		Where(`"serviceId" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get service by id: %w", err)
	}

	return service, nil
}

func (r *Repository) AddService(ctx context.Context, service *Service) error {
	if _, err := r.db.ModelContext(ctx, service).Insert(); err != nil {
		return fmt.Errorf("failed to insert service: %w", err)
	}

	return nil
}

func (r *Repository) UpdateService(ctx context.Context, service *Service) error {
	if _, err := r.db.ModelContext(ctx, service).WherePK().Update(); err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}

	return nil
}

func (r *Repository) DeleteService(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Service)(nil)).
		Where(`"serviceId" = ?`, id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete service: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
