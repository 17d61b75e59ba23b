package blog

import (
	"fmt"
	"time"
)

// PostForm carries the post create/edit form fields. PubDate arrives as the
// raw datetime-local string and is normalized before persistence.
type PostForm struct {
	Title       string `form:"title" validate:"required,max=256"`
	Text        string `form:"text" validate:"required"`
	PubDate     string `form:"pub_date" validate:"required"`
	Location    string `form:"location" validate:"max=256"`
	CategoryID  int    `form:"category" validate:"required,gt=0"`
	IsPublished bool   `form:"is_published"`
	Image       string `form:"image" validate:"max=1024"`
}

type CommentForm struct {
	Text string `form:"text" validate:"required"`
}

type ProfileForm struct {
	Username  string `form:"username" validate:"required,max=150"`
	FirstName string `form:"first_name" validate:"max=150"`
	LastName  string `form:"last_name" validate:"max=150"`
	Email     string `form:"email" validate:"omitempty,email"`
}

type RegisterForm struct {
	Username  string `form:"username" validate:"required,max=150"`
	FirstName string `form:"first_name" validate:"max=150"`
	LastName  string `form:"last_name" validate:"max=150"`
	Email     string `form:"email" validate:"omitempty,email"`
	Password  string `form:"password" validate:"required,min=8"`
}

type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// pubDateLayouts are the accepted zone-less formats, as submitted by
// datetime-local inputs.
var pubDateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// NormalizePubDate parses a submitted publication timestamp. Values carrying
// an explicit zone (RFC 3339) keep it; zone-less values are interpreted in
// loc, so every stored timestamp is timezone-aware and comparable to now.
func NormalizePubDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	for _, layout := range pubDateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: unrecognized publication date %q", ErrInvalidForm, value)
}
