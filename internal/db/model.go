// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Category struct {
		ID, Title, Description, Slug, IsPublished, CreatedAt string
	}
	Comment struct {
		ID, Text, AuthorID, PostID, CreatedAt string

		Author, Post string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	Post struct {
		ID, Title, Text, PubDate, Location, CategoryID, IsPublished, Image, AuthorID, CreatedAt string

		Author, Category string
	}
	Session struct {
		Token, UserID, ExpiresAt, CreatedAt string

		User string
	}
	User struct {
		ID, Username, FirstName, LastName, Email, PasswordHash, IsStaff, CreatedAt string
	}
}{
	Category: struct {
		ID, Title, Description, Slug, IsPublished, CreatedAt string
	}{
		ID:          "categoryId",
		Title:       "title",
		Description: "description",
		Slug:        "slug",
		IsPublished: "isPublished",
		CreatedAt:   "createdAt",
	},
	Comment: struct {
		ID, Text, AuthorID, PostID, CreatedAt string

		Author, Post string
	}{
		ID:        "commentId",
		Text:      "text",
		AuthorID:  "authorId",
		PostID:    "postId",
		CreatedAt: "createdAt",

		Author: "Author",
		Post:   "Post",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	Post: struct {
		ID, Title, Text, PubDate, Location, CategoryID, IsPublished, Image, AuthorID, CreatedAt string

		Author, Category string
	}{
		ID:          "postId",
		Title:       "title",
		Text:        "text",
		PubDate:     "pubDate",
		Location:    "location",
		CategoryID:  "categoryId",
		IsPublished: "isPublished",
		Image:       "image",
		AuthorID:    "authorId",
		CreatedAt:   "createdAt",

		Author:   "Author",
		Category: "Category",
	},
	Session: struct {
		Token, UserID, ExpiresAt, CreatedAt string

		User string
	}{
		Token:     "token",
		UserID:    "userId",
		ExpiresAt: "expiresAt",
		CreatedAt: "createdAt",

		User: "User",
	},
	User: struct {
		ID, Username, FirstName, LastName, Email, PasswordHash, IsStaff, CreatedAt string
	}{
		ID:           "userId",
		Username:     "username",
		FirstName:    "firstName",
		LastName:     "lastName",
		Email:        "email",
		PasswordHash: "passwordHash",
		IsStaff:      "isStaff",
		CreatedAt:    "createdAt",
	},
}

var Tables = struct {
	Category struct {
		Name, Alias string
	}
	Comment struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	Post struct {
		Name, Alias string
	}
	Session struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	Comment: struct {
		Name, Alias string
	}{
		Name:  "comments",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	Post: struct {
		Name, Alias string
	}{
		Name:  "posts",
		Alias: "t",
	},
	Session: struct {
		Name, Alias string
	}{
		Name:  "sessions",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          int       `pg:"categoryId,pk"`
	Title       string    `pg:"title,use_zero"`
	Description *string   `pg:"description"`
	Slug        string    `pg:"slug,use_zero"`
	IsPublished bool      `pg:"isPublished,use_zero"`
	CreatedAt   time.Time `pg:"createdAt,use_zero"`
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID        int       `pg:"commentId,pk"`
	Text      string    `pg:"text,use_zero"`
	AuthorID  int       `pg:"authorId,use_zero"`
	PostID    int       `pg:"postId,use_zero"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`

	Author *User `pg:"fk:authorId,rel:has-one"`
	Post   *Post `pg:"fk:postId,rel:has-one"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID          int       `pg:"postId,pk"`
	Title       string    `pg:"title,use_zero"`
	Text        string    `pg:"text,use_zero"`
	PubDate     time.Time `pg:"pubDate,use_zero"`
	Location    *string   `pg:"location"`
	CategoryID  int       `pg:"categoryId,use_zero"`
	IsPublished bool      `pg:"isPublished,use_zero"`
	Image       *string   `pg:"image"`
	AuthorID    int       `pg:"authorId,use_zero"`
	CreatedAt   time.Time `pg:"createdAt,use_zero"`

	// CommentCount is filled by listing queries via a subquery expression.
	CommentCount int `pg:"comment_count,scanonly"`

	Author   *User     `pg:"fk:authorId,rel:has-one"`
	Category *Category `pg:"fk:categoryId,rel:has-one"`
}

type Session struct {
	tableName struct{} `pg:"sessions,alias:t,discard_unknown_columns"`

	Token     string    `pg:"token,pk"`
	UserID    int       `pg:"userId,use_zero"`
	ExpiresAt time.Time `pg:"expiresAt,use_zero"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`

	User *User `pg:"fk:userId,rel:has-one"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID           int       `pg:"userId,pk"`
	Username     string    `pg:"username,use_zero"`
	FirstName    string    `pg:"firstName,use_zero"`
	LastName     string    `pg:"lastName,use_zero"`
	Email        string    `pg:"email,use_zero"`
	PasswordHash string    `pg:"passwordHash,use_zero"`
	IsStaff      bool      `pg:"isStaff,use_zero"`
	CreatedAt    time.Time `pg:"createdAt,use_zero"`
}
