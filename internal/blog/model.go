package blog

import (
	"fmt"
	"time"

	"github.com/daniilsolovey/blog-platform/internal/db"
)

type PostStatus string

const (
	StatusDraft     PostStatus = "Draft"
	StatusPublished PostStatus = "Published"
)

// ParseStatus validates a status name coming from callers.
func ParseStatus(s string) (PostStatus, error) {
	switch PostStatus(s) {
	case StatusDraft, StatusPublished:
		return PostStatus(s), nil
	}

	return "", fmt.Errorf("%w: unknown status %q", ErrValidation, s)
}

func (s PostStatus) id() int {
	if s == StatusPublished {
		return db.StatusPublished
	}

	return db.StatusDraft
}

func newPostStatus(statusID int) PostStatus {
	if statusID == db.StatusPublished {
		return StatusPublished
	}

	return StatusDraft
}

type User struct {
	db.User
}

type Category struct {
	db.Category
	Slug string
}

type Tag struct {
	db.Tag
}

type Post struct {
	db.Post
	Status   PostStatus
	Author   *User
	Category *Category
	Tags     []Tag
}

// Summary is the excerpt shown in listings: the stored excerpt when present,
// otherwise the leading part of the content.
func (p Post) Summary() string {
	if p.Excerpt != nil && *p.Excerpt != "" {
		return *p.Excerpt
	}

	return Excerpt(p.Content)
}

func (p Post) TagNames() []string {
	names := make([]string, len(p.Tags))
	for i := range p.Tags {
		names[i] = p.Tags[i].Name
	}

	return names
}

// CreatePostInput holds the fields of a new post. Status defaults to Draft.
// A nil Tags leaves the post untagged.
type CreatePostInput struct {
	Title            string
	Content          string
	Excerpt          *string
	FeaturedImageURL *string
	CategoryID       *int
	Tags             []string
	Status           *PostStatus
}

// UpdatePostInput is a partial patch: nil fields keep their current value.
// A non-nil Tags, even empty, replaces all tags of the post.
type UpdatePostInput struct {
	Title            *string
	Content          *string
	Excerpt          *string
	FeaturedImageURL *string
	CategoryID       *int
	Tags             []string
	Status           *PostStatus
}

// PostFilter carries the optional predicates and paging of post listings.
// Which predicates apply depends on the query, see AllPosts, PublishedPosts and AuthorPosts.
type PostFilter struct {
	Search       string
	CategoryID   *int
	CategorySlug string
	Status       *PostStatus
	Page         int
	PageSize     int
}

type PostPage struct {
	Posts      []Post
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

type CategoryInput struct {
	Name        string
	Description *string
}

type Stats struct {
	TotalPosts      int
	PublishedPosts  int
	DraftPosts      int
	TotalCategories int
	TotalUsers      int
}

// Config tunes the write path of the manager.
type Config struct {
	// MaxSlugAttempts bounds the probes of the slug uniqueness loop.
	MaxSlugAttempts int
	// ConflictRetries is how many times a write rejected by a unique constraint is retried.
	ConflictRetries uint64
	ConflictBackoff time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxSlugAttempts: 1000,
		ConflictRetries: 3,
		ConflictBackoff: 20 * time.Millisecond,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.MaxSlugAttempts <= 0 {
		c.MaxSlugAttempts = def.MaxSlugAttempts
	}
	if c.ConflictRetries == 0 {
		c.ConflictRetries = def.ConflictRetries
	}
	if c.ConflictBackoff <= 0 {
		c.ConflictBackoff = def.ConflictBackoff
	}

	return c
}

