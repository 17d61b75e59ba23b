package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// CommentsByPost retrieves all comments of a post with their authors,
// oldest first.
func (r *Repository) CommentsByPost(ctx context.Context, postID int) ([]Comment, error) {
	var comments []Comment
	err := r.db.ModelContext(ctx, &comments).
		Relation("Author").
		Where(`"t"."postId" = ?`, postID).
		OrderExpr(`"t"."createdAt" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	return comments, nil
}

// CommentByID retrieves a comment with its author. Returns nil when not found.
func (r *Repository) CommentByID(ctx context.Context, commentID int) (*Comment, error) {
	comment := &Comment{}
	err := r.db.ModelContext(ctx, comment).
		Relation("Author").
		Where(`"t"."commentId" = ?`, commentID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return comment, nil
}

func (r *Repository) CreateComment(ctx context.Context, comment *Comment) error {
	if _, err := r.db.ModelContext(ctx, comment).Insert(); err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

func (r *Repository) UpdateComment(ctx context.Context, comment *Comment) error {
	_, err := r.db.ModelContext(ctx, comment).
		Column(Columns.Comment.Text).
		WherePK().
		Update()
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	return nil
}

func (r *Repository) DeleteComment(ctx context.Context, commentID int) error {
	_, err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Where(`"t"."commentId" = ?`, commentID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
