package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blogicum/internal/blog"
)

type apiPostsRequest struct {
	CategorySlug string `query:"category"`
	Page         *int   `query:"page"`
}

func (h *Handler) handleAPIError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleAPIError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// APIPosts handles GET /api/v1/posts
// @Summary List visible posts
// @Description Retrieves publicly visible posts with optional category filtering and pagination. Returns summaries (without text) sorted by pubDate DESC, at most 10 per page
// @Tags posts
// @Produce json
// @Param category query string false "Filter by category slug"
// @Param page query int false "Page number (default: 1, clamped into range)"
// @Success 200 {array} rest.PostSummary
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/posts [get]
func (h *Handler) APIPosts(c echo.Context) error {
	var req apiPostsRequest
	if err := c.Bind(&req); err != nil {
		return h.handleAPIError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	page := 1
	if req.Page != nil {
		page = *req.Page
	}

	var (
		postPage *blog.PostPage
		err      error
	)
	if req.CategorySlug != "" {
		_, postPage, err = h.blog.PostsByCategory(c.Request().Context(), req.CategorySlug, page)
	} else {
		postPage, err = h.blog.Posts(c.Request().Context(), page)
	}

	if errors.Is(err, blog.ErrNotFound) {
		return h.handleAPIError(c, err, http.StatusNotFound, "category not found")
	} else if err != nil {
		return h.handleAPIError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewPostSummaries(postPage.Posts))
}

// APIPostCount handles GET /api/v1/posts/count
// @Summary Count visible posts
// @Description Returns the number of publicly visible posts
// @Tags posts
// @Produce json
// @Success 200 {integer} int
// @Failure 500 {object} map[string]string
// @Router /api/v1/posts/count [get]
func (h *Handler) APIPostCount(c echo.Context) error {
	count, err := h.blog.VisiblePostCount(c.Request().Context(), nil, nil)
	if err != nil {
		return h.handleAPIError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, count)
}

// APIPostByID handles GET /api/v1/posts/:id
// @Summary Get post by ID
// @Description Retrieves a single post with full text. Hidden posts are 404 unless the requester is their author
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} rest.Post
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/posts/{id} [get]
func (h *Handler) APIPostByID(c echo.Context) error {
	postID, err := idParam(c, "id")
	if err != nil {
		return h.handleAPIError(c, err, http.StatusNotFound, "post not found")
	}

	post, err := h.blog.PostByID(c.Request().Context(), postID, currentUser(c))
	if errors.Is(err, blog.ErrNotFound) {
		return h.handleAPIError(c, err, http.StatusNotFound, "post not found")
	} else if err != nil {
		return h.handleAPIError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewPost(*post))
}

// APICategories handles GET /api/v1/categories
// @Summary List published categories
// @Description Retrieves all published categories ordered by title
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *Handler) APICategories(c echo.Context) error {
	categories, err := h.blog.Categories(c.Request().Context())
	if err != nil {
		return h.handleAPIError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewCategories(categories))
}
