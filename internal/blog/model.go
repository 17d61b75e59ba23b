package blog

import "time"

type User struct {
	ID        int
	Username  string
	FirstName string
	LastName  string
	Email     string
	IsStaff   bool
	CreatedAt time.Time
}

type Category struct {
	ID          int
	Title       string
	Description *string
	Slug        string
	IsPublished bool
}

type Post struct {
	ID           int
	Title        string
	Text         string
	PubDate      time.Time
	Location     *string
	CategoryID   int
	IsPublished  bool
	Image        *string
	AuthorID     int
	CreatedAt    time.Time
	CommentCount int
	Category     Category
	Author       User
}

type Comment struct {
	ID        int
	Text      string
	AuthorID  int
	PostID    int
	CreatedAt time.Time
	Author    User
}

// Session is what a successful login hands back to the HTTP layer.
type Session struct {
	Token     string
	ExpiresAt time.Time
}
