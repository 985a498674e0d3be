package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

func (r *Repository) UserByID(ctx context.Context, id int) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"userId" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *Repository) UserByEmail(ctx context.Context, email string) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"email" = ?`, email).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *Repository) AddUser(ctx context.Context, user *User) error {
	if _, err := r.db.ModelContext(ctx, user).Insert(); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}
