package rpc

import "time"

type PostFilter struct {
	Category *string `json:"category"`
	Author   *string `json:"author"`
	Page     *int    `json:"page"`
}

type PostByIDRequest struct {
	ID int `json:"id"`
}

type Category struct {
	CategoryID int    `json:"categoryId"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
}

type Post struct {
	PostID       int       `json:"postId"`
	CategoryID   int       `json:"categoryId"`
	Title        string    `json:"title"`
	Text         string    `json:"text"`
	PubDate      time.Time `json:"pubDate"`
	Location     *string   `json:"location,omitempty"`
	Author       string    `json:"author"`
	CommentCount int       `json:"commentCount"`
	Category     Category  `json:"category"`
}

type PostSummary struct {
	PostID       int       `json:"postId"`
	CategoryID   int       `json:"categoryId"`
	Title        string    `json:"title"`
	PubDate      time.Time `json:"pubDate"`
	Author       string    `json:"author"`
	CommentCount int       `json:"commentCount"`
	Category     Category  `json:"category"`
}

type (
	Categories    []Category
	PostSummaries []PostSummary
)
