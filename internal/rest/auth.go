package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blogicum/internal/blog"
)

// RegistrationForm handles GET /auth/registration
func (h *Handler) RegistrationForm(c echo.Context) error {
	return c.Render(http.StatusOK, "registration.html", echo.Map{
		"CurrentUser": currentUser(c),
		"Form":        blog.RegisterForm{},
	})
}

// Registration handles POST /auth/registration. A fresh account is signed in
// right away and lands on its profile.
func (h *Handler) Registration(c echo.Context) error {
	var form blog.RegisterForm
	if err := c.Bind(&form); err != nil {
		return h.rerenderAuthForm(c, "registration.html", form, err)
	}

	user, err := h.blog.Register(c.Request().Context(), form)
	if errors.Is(err, blog.ErrInvalidForm) || errors.Is(err, blog.ErrUsernameTaken) {
		return h.rerenderAuthForm(c, "registration.html", form, err)
	} else if err != nil {
		return h.renderError(c, err)
	}

	session, err := h.blog.Login(c.Request().Context(), blog.LoginForm{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		return h.renderError(c, err)
	}
	h.setSessionCookie(c, session)

	return c.Redirect(http.StatusSeeOther, "/profile/"+user.Username)
}

// LoginForm handles GET /auth/login
func (h *Handler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{
		"CurrentUser": currentUser(c),
		"Form":        blog.LoginForm{},
	})
}

// Login handles POST /auth/login
func (h *Handler) Login(c echo.Context) error {
	var form blog.LoginForm
	if err := c.Bind(&form); err != nil {
		return h.rerenderAuthForm(c, "login.html", form, err)
	}

	session, err := h.blog.Login(c.Request().Context(), form)
	if errors.Is(err, blog.ErrInvalidForm) || errors.Is(err, blog.ErrInvalidCredentials) {
		return h.rerenderAuthForm(c, "login.html", form, err)
	} else if err != nil {
		return h.renderError(c, err)
	}

	h.setSessionCookie(c, session)
	return c.Redirect(http.StatusSeeOther, "/profile/"+form.Username)
}

// Logout handles POST /auth/logout
func (h *Handler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		if err := h.blog.Logout(c.Request().Context(), cookie.Value); err != nil {
			h.log.Error("logout failed", "error", err)
		}
	}
	h.clearSessionCookie(c)

	return c.Redirect(http.StatusSeeOther, "/")
}

// ProfileEditForm handles GET /profile/edit. It always edits the signed-in
// user; there is no way to address another profile.
func (h *Handler) ProfileEditForm(c echo.Context) error {
	user := currentUser(c)

	form := blog.ProfileForm{
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}

	return c.Render(http.StatusOK, "profile_form.html", echo.Map{
		"CurrentUser": user,
		"Form":        form,
	})
}

// ProfileEdit handles POST /profile/edit
func (h *Handler) ProfileEdit(c echo.Context) error {
	user := currentUser(c)

	var form blog.ProfileForm
	if err := c.Bind(&form); err != nil {
		return h.rerenderAuthForm(c, "profile_form.html", form, err)
	}

	updated, err := h.blog.UpdateProfile(c.Request().Context(), *user, form)
	if errors.Is(err, blog.ErrInvalidForm) || errors.Is(err, blog.ErrUsernameTaken) {
		return h.rerenderAuthForm(c, "profile_form.html", form, err)
	} else if err != nil {
		return h.renderError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, "/profile/"+updated.Username)
}

func (h *Handler) rerenderAuthForm(c echo.Context, name string, form interface{}, formErr error) error {
	return c.Render(http.StatusBadRequest, name, echo.Map{
		"CurrentUser": currentUser(c),
		"Form":        form,
		"Error":       formErr.Error(),
	})
}
