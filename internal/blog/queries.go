package blog

import (
	"context"
	"fmt"
	"strings"

	"github.com/daniilsolovey/blog-platform/internal/db"
	"github.com/google/uuid"
)

const (
	DefaultPage         = 1
	DefaultPageSize     = 10
	MaxPageSize         = 100
	DefaultRelatedLimit = 3
)

func (f PostFilter) pager() (db.Pager, error) {
	if f.Page < 0 || f.PageSize < 0 {
		return db.Pager{}, fmt.Errorf("%w: page and pageSize must be positive: page=%d, pageSize=%d", ErrValidation, f.Page, f.PageSize)
	}

	pager := db.Pager{Page: f.Page, PageSize: f.PageSize}
	if pager.Page == 0 {
		pager.Page = DefaultPage
	}
	if pager.PageSize == 0 {
		pager.PageSize = DefaultPageSize
	}
	if pager.PageSize > MaxPageSize {
		pager.PageSize = MaxPageSize
	}

	return pager, nil
}

func (f PostFilter) statusID() (*int, error) {
	if f.Status == nil {
		return nil, nil
	}

	status, err := ParseStatus(string(*f.Status))
	if err != nil {
		return nil, err
	}
	id := status.id()

	return &id, nil
}

// AllPosts lists every post regardless of status, newest created first.
// Search, CategoryID and Status apply.
func (m *Manager) AllPosts(ctx context.Context, filter PostFilter) (*PostPage, error) {
	pager, err := filter.pager()
	if err != nil {
		return nil, err
	}
	statusID, err := filter.statusID()
	if err != nil {
		return nil, err
	}

	return m.postPage(ctx, &db.PostSearch{
		Query:      filter.Search,
		CategoryID: filter.CategoryID,
		StatusID:   statusID,
		Order:      db.OrderByCreatedAt,
	}, pager)
}

// PublishedPosts lists published posts by effective publish date. Search and CategorySlug apply.
func (m *Manager) PublishedPosts(ctx context.Context, filter PostFilter) (*PostPage, error) {
	pager, err := filter.pager()
	if err != nil {
		return nil, err
	}

	statusID := db.StatusPublished
	search := &db.PostSearch{
		Query:    filter.Search,
		StatusID: &statusID,
		Order:    db.OrderByPublishDate,
	}
	if filter.CategorySlug != "" {
		search.CategorySlug = &filter.CategorySlug
	}

	return m.postPage(ctx, search, pager)
}

// AuthorPosts lists the posts of one author, newest created first. Search and Status apply.
func (m *Manager) AuthorPosts(ctx context.Context, authorID uuid.UUID, filter PostFilter) (*PostPage, error) {
	pager, err := filter.pager()
	if err != nil {
		return nil, err
	}
	statusID, err := filter.statusID()
	if err != nil {
		return nil, err
	}

	return m.postPage(ctx, &db.PostSearch{
		Query:    filter.Search,
		StatusID: statusID,
		AuthorID: &authorID,
		Order:    db.OrderByCreatedAt,
	}, pager)
}

// RelatedPosts returns up to limit published posts of the category, never including postID itself.
func (m *Manager) RelatedPosts(ctx context.Context, postID uuid.UUID, categoryID, limit int) ([]Post, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must be positive: %d", ErrValidation, limit)
	} else if limit == 0 {
		limit = DefaultRelatedLimit
	} else if limit > MaxPageSize {
		limit = MaxPageSize
	}

	statusID := db.StatusPublished
	list, err := m.db.Posts(ctx, &db.PostSearch{
		CategoryID: &categoryID,
		StatusID:   &statusID,
		ExcludeID:  &postID,
		Order:      db.OrderByPublishDate,
	}, db.Pager{Page: 1, PageSize: limit})
	if err != nil {
		return nil, fmt.Errorf("db get related posts: %w", err)
	}

	posts := NewPosts(list)
	if err := m.fillTags(ctx, posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (m *Manager) PostByID(ctx context.Context, id uuid.UUID) (*Post, error) {
	post, err := m.db.PostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get post by id: %w", err)
	} else if post == nil {
		return nil, fmt.Errorf("%w: post %s", ErrNotFound, id)
	}

	return m.post(ctx, post)
}

// PostBySlug finds a post by its stored slug. Slugs are always lowercase, so is the lookup.
func (m *Manager) PostBySlug(ctx context.Context, slug string) (*Post, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrValidation)
	}

	post, err := m.db.PostBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get post by slug: %w", err)
	} else if post == nil {
		return nil, fmt.Errorf("%w: post %q", ErrNotFound, slug)
	}

	return m.post(ctx, post)
}

func (m *Manager) postPage(ctx context.Context, search *db.PostSearch, pager db.Pager) (*PostPage, error) {
	list, err := m.db.Posts(ctx, search, pager)
	if err != nil {
		return nil, fmt.Errorf("db get posts: %w", err)
	}

	total, err := m.db.PostsCount(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("db get posts count: %w", err)
	}

	posts := NewPosts(list)
	if err := m.fillTags(ctx, posts); err != nil {
		return nil, err
	}

	return &PostPage{
		Posts:      posts,
		Total:      total,
		Page:       pager.Page,
		PageSize:   pager.PageSize,
		TotalPages: (total + pager.PageSize - 1) / pager.PageSize,
	}, nil
}
