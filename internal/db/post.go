package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// commentCountExpr annotates post rows with the number of attached comments.
const commentCountExpr = `(SELECT count(*) FROM "comments" "c" WHERE "c"."postId" = "t"."postId") AS "comment_count"`

// PostFilter narrows post listings by category and/or author.
type PostFilter struct {
	CategoryID *int
	AuthorID   *int
}

// visibleQuery applies the public visibility conjunction: the post is
// published, its category is published and its pubDate is not in the future.
func visibleQuery(q *orm.Query, now time.Time) *orm.Query {
	return q.
		Relation("Category").
		Where(`"t"."isPublished" = ?`, true).
		Where(`"category"."isPublished" = ?`, true).
		Where(`"t"."pubDate" <= ?`, now)
}

func applyPostFilter(q *orm.Query, filter PostFilter) *orm.Query {
	if filter.CategoryID != nil {
		q = q.Where(`"t"."categoryId" = ?`, *filter.CategoryID)
	}
	if filter.AuthorID != nil {
		q = q.Where(`"t"."authorId" = ?`, *filter.AuthorID)
	}
	return q
}

// VisiblePosts retrieves publicly visible posts with pagination.
// Results are sorted by pubDate DESC and annotated with a comment count.
func (r *Repository) VisiblePosts(ctx context.Context, filter PostFilter, now time.Time,
	limit, offset int) ([]Post, error) {

	if limit < 1 || offset < 0 {
		return nil, fmt.Errorf(
			"invalid pagination window: limit=%d, offset=%d",
			limit, offset,
		)
	}

	var posts []Post
	query := r.db.ModelContext(ctx, &posts).
		ColumnExpr(`"t".*`).
		ColumnExpr(commentCountExpr).
		Relation("Author")
	query = visibleQuery(query, now)
	query = applyPostFilter(query, filter)

	err := query.
		OrderExpr(`"t"."pubDate" DESC`).
		Limit(limit).
		Offset(offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, nil
}

// VisiblePostCount returns the number of publicly visible posts matching the filter,
// so pagination math agrees with what VisiblePosts returns.
func (r *Repository) VisiblePostCount(ctx context.Context, filter PostFilter, now time.Time) (int, error) {
	query := r.db.ModelContext(ctx, (*Post)(nil))
	query = visibleQuery(query, now)
	query = applyPostFilter(query, filter)

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get post count: %w", err)
	}

	return count, nil
}

// PostsByAuthor retrieves all posts of an author regardless of visibility.
// Used for the author's own profile view.
func (r *Repository) PostsByAuthor(ctx context.Context, authorID int, limit, offset int) ([]Post, error) {
	if limit < 1 || offset < 0 {
		return nil, fmt.Errorf(
			"invalid pagination window: limit=%d, offset=%d",
			limit, offset,
		)
	}

	var posts []Post
	err := r.db.ModelContext(ctx, &posts).
		ColumnExpr(`"t".*`).
		ColumnExpr(commentCountExpr).
		Relation("Category").
		Relation("Author").
		Where(`"t"."authorId" = ?`, authorID).
		OrderExpr(`"t"."pubDate" DESC`).
		Limit(limit).
		Offset(offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query posts by author: %w", err)
	}

	return posts, nil
}

func (r *Repository) PostsByAuthorCount(ctx context.Context, authorID int) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Post)(nil)).
		Where(`"t"."authorId" = ?`, authorID).
		Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get post count by author: %w", err)
	}

	return count, nil
}

// PostByID retrieves a post with its category and author, without any
// visibility filtering. Callers decide what the viewer may see.
func (r *Repository) PostByID(ctx context.Context, postID int) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		ColumnExpr(`"t".*`).
		ColumnExpr(commentCountExpr).
		Relation("Category").
		Relation("Author").
		Where(`"t"."postId" = ?`, postID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

func (r *Repository) CreatePost(ctx context.Context, post *Post) error {
	if _, err := r.db.ModelContext(ctx, post).Insert(); err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

func (r *Repository) UpdatePost(ctx context.Context, post *Post) error {
	_, err := r.db.ModelContext(ctx, post).
		Column(
			Columns.Post.Title,
			Columns.Post.Text,
			Columns.Post.PubDate,
			Columns.Post.Location,
			Columns.Post.CategoryID,
			Columns.Post.IsPublished,
			Columns.Post.Image,
		).
		WherePK().
		Update()
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

func (r *Repository) DeletePost(ctx context.Context, postID int) error {
	_, err := r.db.ModelContext(ctx, (*Post)(nil)).
		Where(`"t"."postId" = ?`, postID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}
