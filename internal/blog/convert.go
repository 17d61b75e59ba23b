package blog

import (
	"github.com/daniilsolovey/blogicum/internal/db"
)

func NewUser(u *db.User) User {
	return User{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsStaff:   u.IsStaff,
		CreatedAt: u.CreatedAt,
	}
}

func NewCategory(c *db.Category) Category {
	return Category{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Slug:        c.Slug,
		IsPublished: c.IsPublished,
	}
}

func NewPost(p *db.Post) Post {
	post := Post{
		ID:           p.ID,
		Title:        p.Title,
		Text:         p.Text,
		PubDate:      p.PubDate,
		Location:     p.Location,
		CategoryID:   p.CategoryID,
		IsPublished:  p.IsPublished,
		Image:        p.Image,
		AuthorID:     p.AuthorID,
		CreatedAt:    p.CreatedAt,
		CommentCount: p.CommentCount,
	}

	if p.Category != nil {
		post.Category = NewCategory(p.Category)
	}

	if p.Author != nil {
		post.Author = NewUser(p.Author)
	}

	return post
}

func NewPosts(list []db.Post) []Post {
	posts := make([]Post, len(list))
	for i := range list {
		posts[i] = NewPost(&list[i])
	}
	return posts
}

func NewComment(c *db.Comment) Comment {
	comment := Comment{
		ID:        c.ID,
		Text:      c.Text,
		AuthorID:  c.AuthorID,
		PostID:    c.PostID,
		CreatedAt: c.CreatedAt,
	}

	if c.Author != nil {
		comment.Author = NewUser(c.Author)
	}

	return comment
}

func NewComments(list []db.Comment) []Comment {
	comments := make([]Comment, len(list))
	for i := range list {
		comments[i] = NewComment(&list[i])
	}
	return comments
}

func NewCategories(list []db.Category) []Category {
	categories := make([]Category, len(list))
	for i := range list {
		categories[i] = NewCategory(&list[i])
	}
	return categories
}
