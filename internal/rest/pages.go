package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Index handles GET / with the paginated listing of visible posts.
func (h *Handler) Index(c echo.Context) error {
	page, err := h.blog.Posts(c.Request().Context(), pageParam(c))
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Render(http.StatusOK, "index.html", echo.Map{
		"CurrentUser": currentUser(c),
		"Page":        page,
	})
}

// CategoryPosts handles GET /category/:slug. Unknown and unpublished
// categories are both 404.
func (h *Handler) CategoryPosts(c echo.Context) error {
	category, page, err := h.blog.PostsByCategory(c.Request().Context(), c.Param("slug"), pageParam(c))
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Render(http.StatusOK, "category.html", echo.Map{
		"CurrentUser": currentUser(c),
		"Category":    category,
		"Page":        page,
	})
}

// PostDetail handles GET /posts/:id. The author sees the post regardless of
// visibility; everyone else gets 404 unless all visibility criteria hold.
func (h *Handler) PostDetail(c echo.Context) error {
	postID, err := idParam(c, "id")
	if err != nil {
		return h.renderError(c, err)
	}

	viewer := currentUser(c)
	post, err := h.blog.PostByID(c.Request().Context(), postID, viewer)
	if err != nil {
		return h.renderError(c, err)
	}

	comments, err := h.blog.Comments(c.Request().Context(), postID)
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Render(http.StatusOK, "detail.html", echo.Map{
		"CurrentUser": viewer,
		"Post":        post,
		"Comments":    comments,
	})
}

// ProfileView handles GET /profile/:username. Owners see all of their posts,
// other viewers only the publicly visible ones.
func (h *Handler) ProfileView(c echo.Context) error {
	viewer := currentUser(c)
	profile, page, err := h.blog.Profile(c.Request().Context(), c.Param("username"), viewer, pageParam(c))
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Render(http.StatusOK, "profile.html", echo.Map{
		"CurrentUser": viewer,
		"Profile":     profile,
		"Page":        page,
		"IsOwner":     viewer != nil && viewer.ID == profile.ID,
	})
}

// Health handles GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
