package siteadmin

import (
	"context"
	"fmt"
	"time"

	"github.com/daniilsolovey/site-admin/internal/auth"
	"github.com/daniilsolovey/site-admin/internal/db"
)

// Authenticate checks a login against the users table. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (m *Manager) Authenticate(ctx context.Context, email, password string) (*User, error) {
	user, err := m.db.UserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("db get user by email: %w", err)
	}
	if user == nil || !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	result := NewUser(user)
	return &result, nil
}

// RegisterUser creates an admin panel account with a bcrypt password hash.
func (m *Manager) RegisterUser(ctx context.Context, name, email, password, role string) (*User, error) {
	if err := required("name", name); err != nil {
		return nil, err
	}
	email = normalizeEmail(email)
	if !validEmail(email) {
		return nil, ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if len(password) < 8 {
		return nil, ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}
	if role == "" {
		role = db.RoleEditor
	}
	if role != db.RoleAdmin && role != db.RoleEditor {
		return nil, ValidationError{Field: "role", Reason: "must be admin or editor"}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &db.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	if err := m.db.AddUser(ctx, user); err != nil {
		return nil, asConflict(err)
	}

	m.log.Info("user registered", "email", email, "role", role)

	result := NewUser(user)
	return &result, nil
}

func (m *Manager) UserByID(ctx context.Context, id int) (*User, error) {
	user, err := m.db.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get user by id: %w", err)
	} else if user == nil {
		return nil, nil
	}

	result := NewUser(user)
	return &result, nil
}
