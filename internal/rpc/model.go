package rpc

import (
	"time"

	"github.com/daniilsolovey/blog-platform/internal/blog"
	"github.com/google/uuid"
)

type PostFilter struct {
	//search optional case-sensitive substring of title or content
	Search string `json:"search,omitempty"`
	//categorySlug optional category filter
	CategorySlug string `json:"categorySlug,omitempty"`
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//pageSize=10 items per page, at most 100
	PageSize *int `json:"pageSize,omitempty"`
}

func (f PostFilter) ToModel() blog.PostFilter {
	filter := blog.PostFilter{
		Search:       f.Search,
		CategorySlug: f.CategorySlug,
	}
	if f.Page != nil {
		filter.Page = *f.Page
	}
	if f.PageSize != nil {
		filter.PageSize = *f.PageSize
	}

	return filter
}

type Category struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
}

type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Post struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Content          string     `json:"content"`
	Excerpt          string     `json:"excerpt"`
	FeaturedImageURL *string    `json:"featuredImageUrl,omitempty"`
	Author           string     `json:"author"`
	Category         *Category  `json:"category,omitempty"`
	Tags             []string   `json:"tags"`
	Status           string     `json:"status"`
	PublishedAt      *time.Time `json:"publishedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// PostSummary is a post without its content.
type PostSummary struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Author      string     `json:"author"`
	Category    *Category  `json:"category,omitempty"`
	Tags        []string   `json:"tags"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

type PostPage struct {
	Posts      PostSummaries `json:"posts"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}
