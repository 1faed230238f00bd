package blog

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/blog-platform/internal/db"
)

// Stats returns the platform-wide counters shown on the admin dashboard.
func (m *Manager) Stats(ctx context.Context) (*Stats, error) {
	var (
		stats     Stats
		err       error
		published = db.StatusPublished
		draft     = db.StatusDraft
	)

	if stats.TotalPosts, err = m.db.PostsCount(ctx, nil); err != nil {
		return nil, fmt.Errorf("db count posts: %w", err)
	}
	if stats.PublishedPosts, err = m.db.PostsCount(ctx, &db.PostSearch{StatusID: &published}); err != nil {
		return nil, fmt.Errorf("db count published posts: %w", err)
	}
	if stats.DraftPosts, err = m.db.PostsCount(ctx, &db.PostSearch{StatusID: &draft}); err != nil {
		return nil, fmt.Errorf("db count draft posts: %w", err)
	}
	if stats.TotalCategories, err = m.db.CategoriesCount(ctx); err != nil {
		return nil, fmt.Errorf("db count categories: %w", err)
	}
	if stats.TotalUsers, err = m.db.UsersCount(ctx); err != nil {
		return nil, fmt.Errorf("db count users: %w", err)
	}

	return &stats, nil
}
