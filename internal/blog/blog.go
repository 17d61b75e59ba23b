package blog

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/daniilsolovey/blogicum/internal/db"
)

// Manager holds the visibility and permission rules of the blog. Everything
// the HTTP and RPC layers do with content goes through it.
type Manager struct {
	db       *db.Repository
	validate *validator.Validate
	// loc is the default timezone assigned to zone-less submitted timestamps.
	loc *time.Location
}

func NewManager(repo *db.Repository) *Manager {
	return &Manager{
		db:       repo,
		validate: validator.New(),
		loc:      time.Local,
	}
}

// WithLocation overrides the default timezone for submitted timestamps.
func (m *Manager) WithLocation(loc *time.Location) *Manager {
	m.loc = loc
	return m
}

// Posts returns one page of publicly visible posts, newest first.
func (m *Manager) Posts(ctx context.Context, page int) (*PostPage, error) {
	return m.listPosts(ctx, db.PostFilter{}, page)
}

// PostsByCategory returns a published category and one page of its visible
// posts. An unknown or unpublished category is ErrNotFound.
func (m *Manager) PostsByCategory(ctx context.Context, slug string, page int) (*Category, *PostPage, error) {
	dbCategory, err := m.db.PublishedCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, nil, fmt.Errorf("db get category: %w", err)
	} else if dbCategory == nil {
		return nil, nil, ErrNotFound
	}

	postPage, err := m.listPosts(ctx, db.PostFilter{CategoryID: &dbCategory.ID}, page)
	if err != nil {
		return nil, nil, err
	}

	category := NewCategory(dbCategory)
	return &category, postPage, nil
}

// Profile returns a user and one page of their posts. The owner sees all own
// posts regardless of visibility; everyone else gets the public filter.
func (m *Manager) Profile(ctx context.Context, username string, viewer *User, page int) (*User, *PostPage, error) {
	dbUser, err := m.db.UserByUsername(ctx, username)
	if err != nil {
		return nil, nil, fmt.Errorf("db get user: %w", err)
	} else if dbUser == nil {
		return nil, nil, ErrNotFound
	}

	var postPage *PostPage
	if viewer != nil && viewer.ID == dbUser.ID {
		postPage, err = m.listOwnPosts(ctx, dbUser.ID, page)
	} else {
		postPage, err = m.listPosts(ctx, db.PostFilter{AuthorID: &dbUser.ID}, page)
	}
	if err != nil {
		return nil, nil, err
	}

	user := NewUser(dbUser)
	return &user, postPage, nil
}

// PostByID returns a single post. The author sees it unconditionally; any
// other viewer gets ErrNotFound unless every visibility criterion holds.
func (m *Manager) PostByID(ctx context.Context, postID int, viewer *User) (*Post, error) {
	dbPost, err := m.db.PostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get post: %w", err)
	} else if dbPost == nil {
		return nil, ErrNotFound
	}

	if viewer == nil || viewer.ID != dbPost.AuthorID {
		now := time.Now()
		if dbPost.PubDate.After(now) ||
			!dbPost.IsPublished ||
			dbPost.Category == nil ||
			!dbPost.Category.IsPublished {
			return nil, ErrNotFound
		}
	}

	post := NewPost(dbPost)
	return &post, nil
}

// Comments returns all comments of a post, oldest first.
func (m *Manager) Comments(ctx context.Context, postID int) ([]Comment, error) {
	list, err := m.db.CommentsByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get comments: %w", err)
	}

	return NewComments(list), nil
}

// Categories returns all published categories.
func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	list, err := m.db.PublishedCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

// VisiblePostCount returns how many posts the public listing contains.
func (m *Manager) VisiblePostCount(ctx context.Context, categoryID, authorID *int) (int, error) {
	count, err := m.db.VisiblePostCount(ctx, db.PostFilter{CategoryID: categoryID, AuthorID: authorID}, time.Now())
	if err != nil {
		return 0, fmt.Errorf("db get post count: %w", err)
	}
	return count, nil
}

// CreatePost validates the form and stores a new post owned by author.
func (m *Manager) CreatePost(ctx context.Context, author User, form PostForm) (*Post, error) {
	dbPost, err := m.postFromForm(form)
	if err != nil {
		return nil, err
	}
	dbPost.AuthorID = author.ID
	dbPost.CreatedAt = time.Now()

	if err := m.db.CreatePost(ctx, dbPost); err != nil {
		return nil, fmt.Errorf("db create post: %w", err)
	}

	return m.PostByID(ctx, dbPost.ID, &author)
}

// PostForEdit fetches a post for pre-filling the edit form, without any
// visibility filtering. The same guard as UpdatePost applies: a viewer who is
// not the author gets ErrForbidden.
func (m *Manager) PostForEdit(ctx context.Context, viewer User, postID int) (*Post, error) {
	dbPost, err := m.db.PostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get post: %w", err)
	} else if dbPost == nil {
		return nil, ErrNotFound
	}

	if dbPost.AuthorID != viewer.ID {
		return nil, ErrForbidden
	}

	post := NewPost(dbPost)
	return &post, nil
}

// UpdatePost applies the form to an existing post. A viewer who is not the
// author gets ErrForbidden; the handler turns that into a redirect to the
// post detail, matching the update guard.
func (m *Manager) UpdatePost(ctx context.Context, viewer User, postID int, form PostForm) (*Post, error) {
	dbPost, err := m.db.PostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get post: %w", err)
	} else if dbPost == nil {
		return nil, ErrNotFound
	}

	if dbPost.AuthorID != viewer.ID {
		return nil, ErrForbidden
	}

	updated, err := m.postFromForm(form)
	if err != nil {
		return nil, err
	}
	updated.ID = dbPost.ID

	if err := m.db.UpdatePost(ctx, updated); err != nil {
		return nil, fmt.Errorf("db update post: %w", err)
	}

	return m.PostByID(ctx, postID, &viewer)
}

// DeletePost removes a post. Only the author or staff may delete; anyone else
// gets ErrNotFound.
func (m *Manager) DeletePost(ctx context.Context, viewer User, postID int) error {
	dbPost, err := m.db.PostByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("db get post: %w", err)
	} else if dbPost == nil {
		return ErrNotFound
	}

	if dbPost.AuthorID != viewer.ID && !viewer.IsStaff {
		return ErrNotFound
	}

	if err := m.db.DeletePost(ctx, postID); err != nil {
		return fmt.Errorf("db delete post: %w", err)
	}
	return nil
}

// AddComment attaches a comment by author to an existing post.
func (m *Manager) AddComment(ctx context.Context, author User, postID int, form CommentForm) (*Comment, error) {
	if err := m.validate.Struct(form); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	dbPost, err := m.db.PostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get post: %w", err)
	} else if dbPost == nil {
		return nil, ErrNotFound
	}

	dbComment := &db.Comment{
		Text:      form.Text,
		AuthorID:  author.ID,
		PostID:    postID,
		CreatedAt: time.Now(),
	}
	if err := m.db.CreateComment(ctx, dbComment); err != nil {
		return nil, fmt.Errorf("db create comment: %w", err)
	}

	comment := NewComment(dbComment)
	return &comment, nil
}

// UpdateComment edits a comment. Only its author may; anyone else gets
// ErrNotFound.
func (m *Manager) UpdateComment(ctx context.Context, viewer User, commentID int, form CommentForm) (*Comment, error) {
	dbComment, err := m.commentOwnedBy(ctx, viewer, commentID)
	if err != nil {
		return nil, err
	}

	if err := m.validate.Struct(form); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	dbComment.Text = form.Text
	if err := m.db.UpdateComment(ctx, dbComment); err != nil {
		return nil, fmt.Errorf("db update comment: %w", err)
	}

	comment := NewComment(dbComment)
	return &comment, nil
}

// DeleteComment removes a comment under the same author-only guard.
func (m *Manager) DeleteComment(ctx context.Context, viewer User, commentID int) (postID int, err error) {
	dbComment, err := m.commentOwnedBy(ctx, viewer, commentID)
	if err != nil {
		return 0, err
	}

	if err := m.db.DeleteComment(ctx, commentID); err != nil {
		return 0, fmt.Errorf("db delete comment: %w", err)
	}
	return dbComment.PostID, nil
}

// CommentForEdit fetches a comment for pre-filling the edit form, applying
// the author-only guard.
func (m *Manager) CommentForEdit(ctx context.Context, viewer User, commentID int) (*Comment, error) {
	dbComment, err := m.commentOwnedBy(ctx, viewer, commentID)
	if err != nil {
		return nil, err
	}

	comment := NewComment(dbComment)
	return &comment, nil
}

// UpdateProfile edits the current user's own profile; there is no way to
// address anyone else's.
func (m *Manager) UpdateProfile(ctx context.Context, user User, form ProfileForm) (*User, error) {
	if err := m.validate.Struct(form); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	if form.Username != user.Username {
		existing, err := m.db.UserByUsername(ctx, form.Username)
		if err != nil {
			return nil, fmt.Errorf("db get user: %w", err)
		}
		if existing != nil {
			return nil, ErrUsernameTaken
		}
	}

	dbUser, err := m.db.UserByID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("db get user: %w", err)
	} else if dbUser == nil {
		return nil, ErrNotFound
	}

	dbUser.Username = form.Username
	dbUser.FirstName = form.FirstName
	dbUser.LastName = form.LastName
	dbUser.Email = form.Email

	if err := m.db.UpdateUser(ctx, dbUser); err != nil {
		return nil, fmt.Errorf("db update user: %w", err)
	}

	updated := NewUser(dbUser)
	return &updated, nil
}

func (m *Manager) listPosts(ctx context.Context, filter db.PostFilter, page int) (*PostPage, error) {
	now := time.Now()

	count, err := m.db.VisiblePostCount(ctx, filter, now)
	if err != nil {
		return nil, fmt.Errorf("db get post count: %w", err)
	}

	pagination := paginate(count, page, PageSize)
	posts, err := m.db.VisiblePosts(ctx, filter, now, pagination.PageSize, pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("db get posts: %w", err)
	}

	return &PostPage{Posts: NewPosts(posts), Pagination: pagination}, nil
}

func (m *Manager) listOwnPosts(ctx context.Context, authorID, page int) (*PostPage, error) {
	count, err := m.db.PostsByAuthorCount(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("db get post count: %w", err)
	}

	pagination := paginate(count, page, PageSize)
	posts, err := m.db.PostsByAuthor(ctx, authorID, pagination.PageSize, pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("db get posts: %w", err)
	}

	return &PostPage{Posts: NewPosts(posts), Pagination: pagination}, nil
}

func (m *Manager) postFromForm(form PostForm) (*db.Post, error) {
	if err := m.validate.Struct(form); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	pubDate, err := NormalizePubDate(form.PubDate, m.loc)
	if err != nil {
		return nil, err
	}

	dbPost := &db.Post{
		Title:       form.Title,
		Text:        form.Text,
		PubDate:     pubDate,
		CategoryID:  form.CategoryID,
		IsPublished: form.IsPublished,
	}
	if form.Location != "" {
		dbPost.Location = &form.Location
	}
	if form.Image != "" {
		dbPost.Image = &form.Image
	}
	return dbPost, nil
}

func (m *Manager) commentOwnedBy(ctx context.Context, viewer User, commentID int) (*db.Comment, error) {
	dbComment, err := m.db.CommentByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("db get comment: %w", err)
	} else if dbComment == nil {
		return nil, ErrNotFound
	}

	if dbComment.AuthorID != viewer.ID {
		return nil, ErrNotFound
	}

	return dbComment, nil
}
