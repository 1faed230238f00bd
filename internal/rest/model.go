package rest

import (
	"time"

	"github.com/google/uuid"
)

type PostsRequest struct {
	Search       string `query:"search"`
	CategoryID   *int   `query:"categoryId"`
	CategorySlug string `query:"categorySlug"`
	Status       string `query:"status"`
	Page         int    `query:"page"`
	PageSize     int    `query:"pageSize"`
}

type RelatedRequest struct {
	CategoryID int `query:"categoryId"`
	Limit      int `query:"limit"`
}

type CreatePostRequest struct {
	Title            string   `json:"title"`
	Content          string   `json:"content"`
	Excerpt          *string  `json:"excerpt"`
	FeaturedImageURL *string  `json:"featuredImageUrl"`
	CategoryID       *int     `json:"categoryId"`
	Tags             []string `json:"tags"`
	Status           *string  `json:"status"`
}

// UpdatePostRequest is a partial patch, absent fields are left unchanged.
type UpdatePostRequest struct {
	Title            *string  `json:"title"`
	Content          *string  `json:"content"`
	Excerpt          *string  `json:"excerpt"`
	FeaturedImageURL *string  `json:"featuredImageUrl"`
	CategoryID       *int     `json:"categoryId"`
	Tags             []string `json:"tags"`
	Status           *string  `json:"status"`
}

type CategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type Category struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Author struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type Post struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Content          string     `json:"content"`
	Excerpt          string     `json:"excerpt"`
	FeaturedImageURL *string    `json:"featuredImageUrl"`
	CategoryID       *int       `json:"categoryId"`
	Category         *Category  `json:"category"`
	Tags             []string   `json:"tags"`
	Status           string     `json:"status"`
	AuthorID         uuid.UUID  `json:"authorId"`
	Author           *Author    `json:"author,omitempty"`
	PublishedAt      *time.Time `json:"publishedAt"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type PostPage struct {
	Data       []Post `json:"data"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}

type Stats struct {
	TotalPosts      int `json:"totalPosts"`
	PublishedPosts  int `json:"publishedPosts"`
	DraftPosts      int `json:"draftPosts"`
	TotalCategories int `json:"totalCategories"`
	TotalUsers      int `json:"totalUsers"`
}
