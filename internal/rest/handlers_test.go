package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/daniilsolovey/blogicum/internal/db"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	var err error
	testDB, err = db.SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	tx, err := testDB.Begin()
	require.NoError(t, err, "failed to begin transaction")

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	manager := blog.NewManager(db.New(tx))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e, err := NewHandler(manager, logger).RegisterRoutes()
	require.NoError(t, err)
	return e
}

func get(e *echo.Echo, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func postForm(e *echo.Echo, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// loginAs signs a fixture user in and returns their session cookie.
func loginAs(t *testing.T, e *echo.Echo, username string) *http.Cookie {
	t.Helper()

	rec := postForm(e, "/auth/login", url.Values{
		"username": {username},
		"password": {db.TestPassword},
	}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code, "login for %q failed", username)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "session" && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatalf("no session cookie issued for %q", username)
	return nil
}

func TestIndexPage(t *testing.T) {
	e := newTestServer(t)

	rec := get(e, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "A week in Samarkand")
	assert.NotContains(t, body, "Scheduled for the future")
	assert.NotContains(t, body, "Unpublished draft")
	assert.NotContains(t, body, "Post in a hidden category")
}

func TestIndexPagination(t *testing.T) {
	e := newTestServer(t)

	rec := get(e, "/?page=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Weeknotes 10")

	// Out-of-range pages clamp instead of erroring.
	rec = get(e, "/?page=999", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Weeknotes 10")
}

func TestCategoryPage(t *testing.T) {
	e := newTestServer(t)

	t.Run("Published", func(t *testing.T) {
		rec := get(e, "/category/travel", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Travel")
		assert.Contains(t, rec.Body.String(), "A week in Samarkand")
	})

	t.Run("UnpublishedIs404", func(t *testing.T) {
		rec := get(e, "/category/hidden", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("UnknownIs404", func(t *testing.T) {
		rec := get(e, "/category/no-such", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPostDetail(t *testing.T) {
	e := newTestServer(t)

	t.Run("VisiblePost", func(t *testing.T) {
		rec := get(e, "/posts/1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Registan at dawn")
		assert.Contains(t, rec.Body.String(), "Great shots, which lens?")
	})

	t.Run("FutureDatedIs404ForAnonymous", func(t *testing.T) {
		rec := get(e, "/posts/5", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("AuthorSeesFutureDated", func(t *testing.T) {
		cookie := loginAs(t, e, "alice")
		rec := get(e, "/posts/5", cookie)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("OtherUserGets404ForFutureDated", func(t *testing.T) {
		cookie := loginAs(t, e, "bob")
		rec := get(e, "/posts/5", cookie)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("NonNumericIDIs404", func(t *testing.T) {
		rec := get(e, "/posts/abc", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProfilePage(t *testing.T) {
	e := newTestServer(t)

	t.Run("VisitorSeesPublicPostsOnly", func(t *testing.T) {
		rec := get(e, "/profile/alice", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, "A week in Samarkand")
		assert.NotContains(t, body, "Unpublished draft")
	})

	t.Run("OwnerSeesEverything", func(t *testing.T) {
		cookie := loginAs(t, e, "alice")
		rec := get(e, "/profile/alice", cookie)
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, "Unpublished draft")
		assert.Contains(t, body, "Scheduled for the future")
	})

	t.Run("UnknownUserIs404", func(t *testing.T) {
		rec := get(e, "/profile/nobody", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAuthFlow(t *testing.T) {
	e := newTestServer(t)

	t.Run("LoginIssuesSessionCookie", func(t *testing.T) {
		cookie := loginAs(t, e, "alice")
		assert.True(t, cookie.HttpOnly)
		assert.NotEmpty(t, cookie.Value)
	})

	t.Run("WrongPasswordRerendersForm", func(t *testing.T) {
		rec := postForm(e, "/auth/login", url.Values{
			"username": {"alice"},
			"password": {"not-the-password"},
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("RegistrationSignsIn", func(t *testing.T) {
		rec := postForm(e, "/auth/registration", url.Values{
			"username": {"dave"},
			"email":    {"dave@example.com"},
			"password": {"longenough"},
		}, nil)
		require.Equal(t, http.StatusSeeOther, rec.Code)

		var issued bool
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == "session" && cookie.Value != "" {
				issued = true
			}
		}
		assert.True(t, issued, "registration should issue a session cookie")
	})

	t.Run("DuplicateUsernameRerendersForm", func(t *testing.T) {
		rec := postForm(e, "/auth/registration", url.Values{
			"username": {"alice"},
			"email":    {"again@example.com"},
			"password": {"longenough"},
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("LogoutDropsSession", func(t *testing.T) {
		cookie := loginAs(t, e, "bob")

		rec := postForm(e, "/auth/logout", nil, cookie)
		require.Equal(t, http.StatusSeeOther, rec.Code)

		// The old token no longer resolves, so a guarded page redirects to login.
		rec = get(e, "/posts/create", cookie)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestPostCreate(t *testing.T) {
	e := newTestServer(t)

	t.Run("AnonymousIsRedirectedToLogin", func(t *testing.T) {
		rec := get(e, "/posts/create", nil)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("ValidFormRedirectsToProfile", func(t *testing.T) {
		cookie := loginAs(t, e, "bob")

		rec := postForm(e, "/posts/create", url.Values{
			"title":        {"Written through the form"},
			"text":         {"Some body."},
			"pub_date":     {"2024-01-10T09:00"},
			"category":     {"2"},
			"is_published": {"true"},
		}, cookie)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/profile/bob", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("InvalidFormRerendersWith400", func(t *testing.T) {
		cookie := loginAs(t, e, "bob")

		rec := postForm(e, "/posts/create", url.Values{
			"title":    {""},
			"text":     {"No title."},
			"pub_date": {"2024-01-10T09:00"},
			"category": {"2"},
		}, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPostEdit(t *testing.T) {
	e := newTestServer(t)

	editForm := url.Values{
		"title":        {"Edited through the form"},
		"text":         {"New body."},
		"pub_date":     {"2024-01-10T09:00"},
		"category":     {"1"},
		"is_published": {"true"},
	}

	t.Run("AuthorCanEdit", func(t *testing.T) {
		cookie := loginAs(t, e, "alice")

		rec := postForm(e, "/posts/1/edit", editForm, cookie)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/profile/alice", rec.Header().Get(echo.HeaderLocation))

		rec = get(e, "/posts/1", nil)
		assert.Contains(t, rec.Body.String(), "Edited through the form")
	})

	t.Run("NonAuthorIsRedirectedToDetail", func(t *testing.T) {
		cookie := loginAs(t, e, "bob")

		rec := postForm(e, "/posts/1/edit", editForm, cookie)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/posts/1", rec.Header().Get(echo.HeaderLocation))

		// Nothing changed.
		rec = get(e, "/posts/1", nil)
		assert.Contains(t, rec.Body.String(), "A week in Samarkand")
	})

	t.Run("NonAuthorEditFormIsRedirectedToDetail", func(t *testing.T) {
		cookie := loginAs(t, e, "bob")

		rec := get(e, "/posts/1/edit", cookie)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/posts/1", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("NonAuthorEditFormOfHiddenPostAlsoRedirects", func(t *testing.T) {
		// Post 5 is future-dated. Both edit arms treat a non-author the same
		// way regardless of the post's visibility.
		cookie := loginAs(t, e, "bob")

		rec := get(e, "/posts/5/edit", cookie)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/posts/5", rec.Header().Get(echo.HeaderLocation))

		rec = postForm(e, "/posts/5/edit", editForm, cookie)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/posts/5", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("AuthorGetsEditFormForHiddenPost", func(t *testing.T) {
		cookie := loginAs(t, e, "alice")

		rec := get(e, "/posts/5/edit", cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Scheduled for the future")
	})
}

func TestPostDelete(t *testing.T) {
	t.Run("AuthorCanDelete", func(t *testing.T) {
		e := newTestServer(t)
		cookie := loginAs(t, e, "alice")

		rec := postForm(e, "/posts/1/delete", nil, cookie)
		require.Equal(t, http.StatusSeeOther, rec.Code)

		rec = get(e, "/posts/1", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("StaffCanDelete", func(t *testing.T) {
		e := newTestServer(t)
		cookie := loginAs(t, e, "carol")

		rec := postForm(e, "/posts/1/delete", nil, cookie)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})

	t.Run("NonAuthorGets404", func(t *testing.T) {
		e := newTestServer(t)
		cookie := loginAs(t, e, "bob")

		rec := postForm(e, "/posts/1/delete", nil, cookie)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = get(e, "/posts/1", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCommentRoutes(t *testing.T) {
	e := newTestServer(t)

	t.Run("CreateRedirectsToPost", func(t *testing.T) {
		cookie := loginAs(t, e, "carol")

		rec := postForm(e, "/posts/1/comment", url.Values{"text": {"From the form"}}, cookie)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/posts/1", rec.Header().Get(echo.HeaderLocation))

		rec = get(e, "/posts/1", nil)
		assert.Contains(t, rec.Body.String(), "From the form")
	})

	t.Run("NonAuthorEditIs404", func(t *testing.T) {
		cookie := loginAs(t, e, "alice")

		// Comment 1 belongs to bob.
		rec := postForm(e, "/posts/1/comment/1/edit", url.Values{"text": {"Hijack"}}, cookie)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("NonAuthorDeleteIs404", func(t *testing.T) {
		cookie := loginAs(t, e, "carol")

		rec := postForm(e, "/posts/1/comment/1/delete", nil, cookie)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("AuthorDeleteRedirectsToPost", func(t *testing.T) {
		cookie := loginAs(t, e, "bob")

		rec := postForm(e, "/posts/1/comment/1/delete", nil, cookie)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/posts/1", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("AnonymousIsRedirectedToLogin", func(t *testing.T) {
		rec := postForm(e, "/posts/1/comment", url.Values{"text": {"Drive-by"}}, nil)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("MalformedBodyRedirectsBackNot404", func(t *testing.T) {
		cookie := loginAs(t, e, "carol")

		// A body that fails form decoding is a bad submission, not a
		// missing resource.
		req := httptest.NewRequest(http.MethodPost, "/posts/1/comment", strings.NewReader("text=%zz"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/posts/1", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("MalformedEditBodyRedirectsToEditForm", func(t *testing.T) {
		cookie := loginAs(t, e, "bob")

		req := httptest.NewRequest(http.MethodPost, "/posts/1/comment/1/edit", strings.NewReader("text=%zz"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/posts/1/comment/1/edit", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestAPIPosts(t *testing.T) {
	e := newTestServer(t)

	t.Run("ListsVisiblePosts", func(t *testing.T) {
		rec := get(e, "/api/v1/posts", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var posts []PostSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
		assert.Len(t, posts, 10)
	})

	t.Run("FiltersByCategory", func(t *testing.T) {
		rec := get(e, "/api/v1/posts?category=travel", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var posts []PostSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
		assert.Len(t, posts, 2)
	})

	t.Run("UnknownCategoryIs404", func(t *testing.T) {
		rec := get(e, "/api/v1/posts?category=no-such", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Count", func(t *testing.T) {
		rec := get(e, "/api/v1/posts/count", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var count int
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &count))
		assert.Equal(t, 13, count)
	})

	t.Run("HiddenPostIs404ForAnonymous", func(t *testing.T) {
		rec := get(e, "/api/v1/posts/5", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("AuthorSeesHiddenPost", func(t *testing.T) {
		cookie := loginAs(t, e, "alice")
		rec := get(e, "/api/v1/posts/5", cookie)
		require.Equal(t, http.StatusOK, rec.Code)

		var post Post
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
		assert.Equal(t, 5, post.PostID)
	})

	t.Run("Categories", func(t *testing.T) {
		rec := get(e, "/api/v1/categories", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var categories []Category
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
		assert.Len(t, categories, 2)
	})
}

func TestHealth(t *testing.T) {
	e := newTestServer(t)

	rec := get(e, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
