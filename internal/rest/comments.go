package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blogicum/internal/blog"
)

// CommentCreate handles POST /posts/:id/comment
func (h *Handler) CommentCreate(c echo.Context) error {
	postID, err := idParam(c, "id")
	if err != nil {
		return h.renderError(c, err)
	}

	author := currentUser(c)

	var form blog.CommentForm
	if err := c.Bind(&form); err != nil {
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/posts/%d", postID))
	}

	_, err = h.blog.AddComment(c.Request().Context(), *author, postID, form)
	if errors.Is(err, blog.ErrInvalidForm) {
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/posts/%d", postID))
	} else if err != nil {
		return h.renderError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/posts/%d", postID))
}

// CommentEditForm handles GET /posts/:id/comment/:comment_id/edit.
// Only the comment's author may open it; anyone else gets 404.
func (h *Handler) CommentEditForm(c echo.Context) error {
	postID, err := idParam(c, "id")
	if err != nil {
		return h.renderError(c, err)
	}
	commentID, err := idParam(c, "comment_id")
	if err != nil {
		return h.renderError(c, err)
	}

	viewer := currentUser(c)
	comment, err := h.blog.CommentForEdit(c.Request().Context(), *viewer, commentID)
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Render(http.StatusOK, "comment_form.html", echo.Map{
		"CurrentUser": viewer,
		"Comment":     comment,
		"Action":      fmt.Sprintf("/posts/%d/comment/%d/edit", postID, commentID),
	})
}

// CommentEdit handles POST /posts/:id/comment/:comment_id/edit
func (h *Handler) CommentEdit(c echo.Context) error {
	postID, err := idParam(c, "id")
	if err != nil {
		return h.renderError(c, err)
	}
	commentID, err := idParam(c, "comment_id")
	if err != nil {
		return h.renderError(c, err)
	}

	viewer := currentUser(c)

	var form blog.CommentForm
	if err := c.Bind(&form); err != nil {
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/posts/%d/comment/%d/edit", postID, commentID))
	}

	_, err = h.blog.UpdateComment(c.Request().Context(), *viewer, commentID, form)
	if errors.Is(err, blog.ErrInvalidForm) {
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/posts/%d/comment/%d/edit", postID, commentID))
	} else if err != nil {
		return h.renderError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/posts/%d", postID))
}

// CommentDelete handles POST /posts/:id/comment/:comment_id/delete
func (h *Handler) CommentDelete(c echo.Context) error {
	commentID, err := idParam(c, "comment_id")
	if err != nil {
		return h.renderError(c, err)
	}

	viewer := currentUser(c)
	postID, err := h.blog.DeleteComment(c.Request().Context(), *viewer, commentID)
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/posts/%d", postID))
}
