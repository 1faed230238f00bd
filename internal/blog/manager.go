package blog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/daniilsolovey/blog-platform/internal/db"
	"github.com/google/uuid"
)

type PostStore interface {
	Posts(ctx context.Context, search *db.PostSearch, pager db.Pager) ([]db.Post, error)
	PostsCount(ctx context.Context, search *db.PostSearch) (int, error)
	PostByID(ctx context.Context, postID uuid.UUID) (*db.Post, error)
	PostBySlug(ctx context.Context, slug string) (*db.Post, error)
	PostExists(ctx context.Context, postID uuid.UUID) (bool, error)
	AddPost(ctx context.Context, post *db.Post) error
	UpdatePost(ctx context.Context, post *db.Post) error
	DeletePost(ctx context.Context, postID uuid.UUID) error
}

type TagStore interface {
	Tags(ctx context.Context) ([]db.Tag, error)
	TagsByIDs(ctx context.Context, tagIDs []int) ([]db.Tag, error)
	TagByName(ctx context.Context, name string) (*db.Tag, error)
	AddTag(ctx context.Context, tag *db.Tag) error
}

type CategoryStore interface {
	Categories(ctx context.Context) ([]db.Category, error)
	CategoryByID(ctx context.Context, categoryID int) (*db.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*db.Category, error)
	AddCategory(ctx context.Context, category *db.Category) error
	UpdateCategory(ctx context.Context, category *db.Category) error
	DeleteCategory(ctx context.Context, categoryID int) error
	CategoryPostsCount(ctx context.Context, categoryID int) (int, error)
}

type UserStore interface {
	UserByID(ctx context.Context, userID uuid.UUID) (*db.User, error)
	UserExists(ctx context.Context, userID uuid.UUID) (bool, error)
}

type StatsStore interface {
	CategoriesCount(ctx context.Context) (int, error)
	UsersCount(ctx context.Context) (int, error)
}

// Store is everything the manager persists through. *db.Repository implements it.
type Store interface {
	PostStore
	TagStore
	CategoryStore
	UserStore
	StatsStore
}

var _ Store = (*db.Repository)(nil)

type Manager struct {
	db     Store
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

func NewManager(store Store, cfg Config, logger *slog.Logger) *Manager {
	return &Manager{
		db:     store,
		cfg:    cfg.withDefaults(),
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// fillTags loads the tags of all posts in a single query.
func (m *Manager) fillTags(ctx context.Context, posts Posts) error {
	ids := posts.UniqueTagIDs()
	if len(ids) == 0 {
		posts.SetTags(nil)
		return nil
	}

	tags, err := m.db.TagsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to attach tags to posts: %w", err)
	}

	posts.SetTags(NewTags(tags))

	return nil
}

// post materializes a single stored post with its tags.
func (m *Manager) post(ctx context.Context, in *db.Post) (*Post, error) {
	posts := Posts{*NewPost(in)}
	if err := m.fillTags(ctx, posts); err != nil {
		return nil, err
	}

	return &posts[0], nil
}
