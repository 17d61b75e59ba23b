package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// PublishedCategories retrieves published categories ordered by title.
func (r *Repository) PublishedCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		Where(`"isPublished" = ?`, true).
		OrderExpr(`"title" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

// PublishedCategoryBySlug retrieves a published category by its slug.
// Returns nil when the category does not exist or is not published.
func (r *Repository) PublishedCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"slug" = ?`, slug).
		Where(`"isPublished" = ?`, true).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	return category, nil
}
