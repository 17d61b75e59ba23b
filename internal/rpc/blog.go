package rpc

import (
	"context"
	"errors"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/blogicum/internal/blog"
)

//go:generate zenrpc

// BlogService provides read-only RPC methods over published content.
type BlogService struct {
	zenrpc.Service
	manager *blog.Manager
}

func NewBlogService(manager *blog.Manager) *BlogService {
	return &BlogService{manager: manager}
}

// List retrieves publicly visible posts with optional category or author
// filtering and pagination. Returns summaries (without text) sorted by
// pubDate DESC.
//
//zenrpc:category optional category slug filter
//zenrpc:author optional author username filter
//zenrpc:page=1 page number (1-based, clamped into range)
//zenrpc:return list of post summaries
//zenrpc:404 category or author not found
//zenrpc:500 internal server error
func (s *BlogService) List(ctx context.Context, filter PostFilter) (PostSummaries, error) {
	page := 1
	if filter.Page != nil {
		page = *filter.Page
	}

	var (
		postPage *blog.PostPage
		err      error
	)
	switch {
	case filter.Category != nil && *filter.Category != "":
		_, postPage, err = s.manager.PostsByCategory(ctx, *filter.Category, page)
	case filter.Author != nil && *filter.Author != "":
		_, postPage, err = s.manager.Profile(ctx, *filter.Author, nil, page)
	default:
		postPage, err = s.manager.Posts(ctx, page)
	}

	if errors.Is(err, blog.ErrNotFound) {
		return nil, zenrpc.NewStringError(404, "category or author not found")
	} else if err != nil {
		return nil, err
	}

	return NewPostSummaries(postPage.Posts), nil
}

// Count returns the number of publicly visible posts.
//
//zenrpc:return count of visible posts
//zenrpc:500 internal server error
func (s *BlogService) Count(ctx context.Context) (int, error) {
	return s.manager.VisiblePostCount(ctx, nil, nil)
}

// ByID retrieves a single publicly visible post with full text.
//
//zenrpc:id post numeric ID
//zenrpc:return post with full text
//zenrpc:400 id must be positive
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *BlogService) ByID(ctx context.Context, req PostByIDRequest) (*Post, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	post, err := s.manager.PostByID(ctx, req.ID, nil)
	if errors.Is(err, blog.ErrNotFound) {
		return nil, zenrpc.NewStringError(404, "post not found")
	} else if err != nil {
		return nil, err
	}

	result := NewPost(*post)
	return &result, nil
}

// Categories retrieves all published categories ordered by title.
//
//zenrpc:return list of categories
//zenrpc:404 categories not found
//zenrpc:500 internal server error
func (s *BlogService) Categories(ctx context.Context) (Categories, error) {
	categories, err := s.manager.Categories(ctx)
	if err != nil {
		return nil, err
	}

	if len(categories) == 0 {
		return nil, zenrpc.NewStringError(404, "categories not found")
	}

	return NewCategories(categories), nil
}
