package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/daniilsolovey/blogicum/internal/blog"
)

const (
	sessionCookie  = "session"
	currentUserKey = "currentUser"
)

type Handler struct {
	blog         *blog.Manager
	log          *slog.Logger
	cookieSecure bool
}

func NewHandler(manager *blog.Manager, log *slog.Logger) *Handler {
	return &Handler{
		blog: manager,
		log:  log,
	}
}

// WithSecureCookies marks issued session cookies Secure.
func (h *Handler) WithSecureCookies(secure bool) *Handler {
	h.cookieSecure = secure
	return h
}

// RegisterRoutes builds the echo instance with all pages, forms and the JSON API.
func (h *Handler) RegisterRoutes() (*echo.Echo, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(middleware.Recover())
	e.Use(h.requestLogger)
	e.Use(h.withUser)

	e.GET("/", h.Index)
	e.GET("/category/:slug", h.CategoryPosts)
	e.GET("/posts/:id", h.PostDetail)

	e.GET("/posts/create", h.PostCreateForm, h.requireAuth)
	e.POST("/posts/create", h.PostCreate, h.requireAuth)
	e.GET("/posts/:id/edit", h.PostEditForm, h.requireAuth)
	e.POST("/posts/:id/edit", h.PostEdit, h.requireAuth)
	e.POST("/posts/:id/delete", h.PostDelete, h.requireAuth)

	e.POST("/posts/:id/comment", h.CommentCreate, h.requireAuth)
	e.GET("/posts/:id/comment/:comment_id/edit", h.CommentEditForm, h.requireAuth)
	e.POST("/posts/:id/comment/:comment_id/edit", h.CommentEdit, h.requireAuth)
	e.POST("/posts/:id/comment/:comment_id/delete", h.CommentDelete, h.requireAuth)

	e.GET("/profile/edit", h.ProfileEditForm, h.requireAuth)
	e.POST("/profile/edit", h.ProfileEdit, h.requireAuth)
	e.GET("/profile/:username", h.ProfileView)

	e.GET("/auth/registration", h.RegistrationForm)
	e.POST("/auth/registration", h.Registration)
	e.GET("/auth/login", h.LoginForm)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/logout", h.Logout, h.requireAuth)

	api := e.Group("/api/v1")
	api.GET("/posts", h.APIPosts)
	api.GET("/posts/count", h.APIPostCount)
	api.GET("/posts/:id", h.APIPostByID)
	api.GET("/categories", h.APICategories)

	e.GET("/health", h.Health)

	return e, nil
}

// withUser resolves the session cookie into the signed-in user for every request.
func (h *Handler) withUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(sessionCookie)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		user, err := h.blog.UserByToken(c.Request().Context(), cookie.Value)
		if err != nil {
			h.log.Error("session lookup failed", "error", err)
			return next(c)
		}
		if user != nil {
			c.Set(currentUserKey, user)
		}
		return next(c)
	}
}

// requireAuth sends anonymous visitors to the login page.
func (h *Handler) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if currentUser(c) == nil {
			return c.Redirect(http.StatusSeeOther, "/auth/login")
		}
		return next(c)
	}
}

func (h *Handler) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.Request().RemoteAddr,
		)
		return nil
	}
}

func currentUser(c echo.Context) *blog.User {
	user, _ := c.Get(currentUserKey).(*blog.User)
	return user
}

func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func idParam(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, blog.ErrNotFound
	}
	return id, nil
}

// renderError maps domain errors onto the error page. Everything the viewer
// may not see or touch is a 404.
func (h *Handler) renderError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, blog.ErrNotFound):
		return c.Render(http.StatusNotFound, "error.html", echo.Map{
			"CurrentUser": currentUser(c),
			"Status":      http.StatusNotFound,
			"Message":     "Page not found",
		})
	default:
		h.log.Error("request failed", "error", err, "path", c.Request().URL.Path)
		return c.Render(http.StatusInternalServerError, "error.html", echo.Map{
			"CurrentUser": currentUser(c),
			"Status":      http.StatusInternalServerError,
			"Message":     "Internal error",
		})
	}
}

func (h *Handler) setSessionCookie(c echo.Context, session *blog.Session) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
