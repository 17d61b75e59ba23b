package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blogicum/internal/blog"
)

// PostCreateForm handles GET /posts/create
func (h *Handler) PostCreateForm(c echo.Context) error {
	categories, err := h.blog.Categories(c.Request().Context())
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Render(http.StatusOK, "post_form.html", echo.Map{
		"CurrentUser": currentUser(c),
		"Categories":  categories,
		"Form":        blog.PostForm{IsPublished: true},
		"Action":      "/posts/create",
	})
}

// PostCreate handles POST /posts/create. The author is always the signed-in
// user; success redirects to their profile.
func (h *Handler) PostCreate(c echo.Context) error {
	author := currentUser(c)

	var form blog.PostForm
	if err := c.Bind(&form); err != nil {
		return h.rerenderPostForm(c, form, "/posts/create", err)
	}

	_, err := h.blog.CreatePost(c.Request().Context(), *author, form)
	if errors.Is(err, blog.ErrInvalidForm) {
		return h.rerenderPostForm(c, form, "/posts/create", err)
	} else if err != nil {
		return h.renderError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, "/profile/"+author.Username)
}

// PostEditForm handles GET /posts/:id/edit. A non-author is sent back to the
// post detail instead of seeing the form.
func (h *Handler) PostEditForm(c echo.Context) error {
	postID, err := idParam(c, "id")
	if err != nil {
		return h.renderError(c, err)
	}

	viewer := currentUser(c)
	post, err := h.blog.PostForEdit(c.Request().Context(), *viewer, postID)
	switch {
	case errors.Is(err, blog.ErrForbidden):
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/posts/%d", postID))
	case err != nil:
		return h.renderError(c, err)
	}

	categories, err := h.blog.Categories(c.Request().Context())
	if err != nil {
		return h.renderError(c, err)
	}

	form := blog.PostForm{
		Title:       post.Title,
		Text:        post.Text,
		PubDate:     post.PubDate.Format("2006-01-02T15:04"),
		CategoryID:  post.CategoryID,
		IsPublished: post.IsPublished,
	}
	if post.Location != nil {
		form.Location = *post.Location
	}
	if post.Image != nil {
		form.Image = *post.Image
	}

	return c.Render(http.StatusOK, "post_form.html", echo.Map{
		"CurrentUser": viewer,
		"Categories":  categories,
		"Form":        form,
		"Action":      fmt.Sprintf("/posts/%d/edit", postID),
	})
}

// PostEdit handles POST /posts/:id/edit
func (h *Handler) PostEdit(c echo.Context) error {
	postID, err := idParam(c, "id")
	if err != nil {
		return h.renderError(c, err)
	}

	viewer := currentUser(c)
	action := fmt.Sprintf("/posts/%d/edit", postID)

	var form blog.PostForm
	if err := c.Bind(&form); err != nil {
		return h.rerenderPostForm(c, form, action, err)
	}

	_, err = h.blog.UpdatePost(c.Request().Context(), *viewer, postID, form)
	switch {
	case errors.Is(err, blog.ErrForbidden):
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/posts/%d", postID))
	case errors.Is(err, blog.ErrInvalidForm):
		return h.rerenderPostForm(c, form, action, err)
	case err != nil:
		return h.renderError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, "/profile/"+viewer.Username)
}

// PostDelete handles POST /posts/:id/delete. Author or staff only; anyone
// else gets 404.
func (h *Handler) PostDelete(c echo.Context) error {
	postID, err := idParam(c, "id")
	if err != nil {
		return h.renderError(c, err)
	}

	viewer := currentUser(c)
	if err := h.blog.DeletePost(c.Request().Context(), *viewer, postID); err != nil {
		return h.renderError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, "/profile/"+viewer.Username)
}

func (h *Handler) rerenderPostForm(c echo.Context, form blog.PostForm, action string, formErr error) error {
	categories, err := h.blog.Categories(c.Request().Context())
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Render(http.StatusBadRequest, "post_form.html", echo.Map{
		"CurrentUser": currentUser(c),
		"Categories":  categories,
		"Form":        form,
		"Action":      action,
		"Error":       formErr.Error(),
	})
}
