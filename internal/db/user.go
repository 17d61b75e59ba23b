package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// UserByUsername retrieves a user by username. Returns nil when not found.
func (r *Repository) UserByUsername(ctx context.Context, username string) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"username" = ?`, username).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

func (r *Repository) UserByID(ctx context.Context, userID int) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"userId" = ?`, userID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *Repository) CreateUser(ctx context.Context, user *User) error {
	if _, err := r.db.ModelContext(ctx, user).Insert(); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// UpdateUser persists profile fields of an existing user.
func (r *Repository) UpdateUser(ctx context.Context, user *User) error {
	_, err := r.db.ModelContext(ctx, user).
		Column(
			Columns.User.Username,
			Columns.User.FirstName,
			Columns.User.LastName,
			Columns.User.Email,
		).
		WherePK().
		Update()
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
