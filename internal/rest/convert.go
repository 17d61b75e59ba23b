package rest

import "github.com/daniilsolovey/blogicum/internal/blog"

func NewCategory(c blog.Category) Category {
	return Category{
		CategoryID: c.ID,
		Title:      c.Title,
		Slug:       c.Slug,
	}
}

func NewCategories(list []blog.Category) []Category {
	categories := make([]Category, len(list))
	for i := range list {
		categories[i] = NewCategory(list[i])
	}
	return categories
}

func NewPost(p blog.Post) Post {
	return Post{
		PostID:       p.ID,
		CategoryID:   p.CategoryID,
		Title:        p.Title,
		Text:         p.Text,
		PubDate:      p.PubDate,
		Location:     p.Location,
		Author:       p.Author.Username,
		CommentCount: p.CommentCount,
		Category:     NewCategory(p.Category),
	}
}

func NewPostSummary(p blog.Post) PostSummary {
	return PostSummary{
		PostID:       p.ID,
		CategoryID:   p.CategoryID,
		Title:        p.Title,
		PubDate:      p.PubDate,
		Author:       p.Author.Username,
		CommentCount: p.CommentCount,
		Category:     NewCategory(p.Category),
	}
}

func NewPostSummaries(list []blog.Post) []PostSummary {
	summaries := make([]PostSummary, len(list))
	for i := range list {
		summaries[i] = NewPostSummary(list[i])
	}
	return summaries
}
