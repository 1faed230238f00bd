package rpc

import "github.com/daniilsolovey/blog-platform/internal/blog"

func NewPost(p blog.Post) Post {
	return Post{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		Content:          p.Content,
		Excerpt:          p.Summary(),
		FeaturedImageURL: p.FeaturedImageURL,
		Author:           authorName(p),
		Category:         newCategoryPtr(p.Category),
		Tags:             p.TagNames(),
		Status:           string(p.Status),
		PublishedAt:      p.PublishedAt,
		CreatedAt:        p.CreatedAt,
	}
}

func NewPostSummary(p blog.Post) PostSummary {
	return PostSummary{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Summary(),
		Author:      authorName(p),
		Category:    newCategoryPtr(p.Category),
		Tags:        p.TagNames(),
		PublishedAt: p.PublishedAt,
	}
}

func NewPostPage(p *blog.PostPage) PostPage {
	return PostPage{
		Posts:      NewPostSummaries(p.Posts),
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}

func NewCategory(c blog.Category) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
	}
}

func NewTag(t blog.Tag) Tag {
	return Tag{
		ID:   t.ID,
		Name: t.Name,
	}
}

func newCategoryPtr(c *blog.Category) *Category {
	if c == nil {
		return nil
	}

	category := NewCategory(*c)
	return &category
}

func authorName(p blog.Post) string {
	if p.Author == nil {
		return ""
	}

	return p.Author.Username
}
