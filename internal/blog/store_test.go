package blog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/daniilsolovey/blog-platform/internal/db"
	"github.com/google/uuid"
)

// noOpLogger creates a logger that discards all output for tests
func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// memStore is an in-memory Store. The *Func fields override single operations.
type memStore struct {
	posts      map[uuid.UUID]db.Post
	tags       []db.Tag
	categories []db.Category
	users      map[uuid.UUID]db.User

	slugProbes int
	tagInserts int

	addPostFunc    func(ctx context.Context, post *db.Post) error
	updatePostFunc func(ctx context.Context, post *db.Post) error
	addTagFunc     func(ctx context.Context, tag *db.Tag) error
	postsFunc      func(ctx context.Context, search *db.PostSearch, pager db.Pager) ([]db.Post, error)
}

var _ Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		posts: make(map[uuid.UUID]db.Post),
		users: make(map[uuid.UUID]db.User),
	}
}

func (s *memStore) withUser(id uuid.UUID, role string) *memStore {
	s.users[id] = db.User{ID: id, Username: "user-" + id.String()[:8], Role: role}
	return s
}

func (s *memStore) withCategory(name string) int {
	id := len(s.categories) + 1
	s.categories = append(s.categories, db.Category{ID: id, Name: name})
	return id
}

func (s *memStore) withPost(p db.Post) db.Post {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.StatusID == 0 {
		p.StatusID = db.StatusDraft
	}
	s.posts[p.ID] = p
	return p
}

func (s *memStore) category(id *int) *db.Category {
	if id == nil {
		return nil
	}
	for i := range s.categories {
		if s.categories[i].ID == *id {
			c := s.categories[i]
			return &c
		}
	}
	return nil
}

func (s *memStore) materialize(p db.Post) db.Post {
	if u, ok := s.users[p.AuthorID]; ok {
		p.Author = &u
	}
	p.Category = s.category(p.CategoryID)
	p.TagIDs = append([]int(nil), p.TagIDs...)
	return p
}

func (s *memStore) match(p db.Post, search *db.PostSearch) bool {
	if search == nil {
		return true
	}
	if search.Query != "" && !strings.Contains(p.Title, search.Query) && !strings.Contains(p.Content, search.Query) {
		return false
	}
	if search.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *search.CategoryID) {
		return false
	}
	if search.CategorySlug != nil {
		c := s.category(p.CategoryID)
		if c == nil || CategorySlug(c.Name) != *search.CategorySlug {
			return false
		}
	}
	if search.StatusID != nil && p.StatusID != *search.StatusID {
		return false
	}
	if search.AuthorID != nil && p.AuthorID != *search.AuthorID {
		return false
	}
	if search.ExcludeID != nil && p.ID == *search.ExcludeID {
		return false
	}
	return true
}

func (s *memStore) filtered(search *db.PostSearch) []db.Post {
	var out []db.Post
	for _, p := range s.posts {
		if s.match(p, search) {
			out = append(out, s.materialize(p))
		}
	}

	byPublish := search != nil && search.Order == db.OrderByPublishDate
	key := func(p db.Post) time.Time {
		if byPublish && p.PublishedAt != nil {
			return *p.PublishedAt
		}
		return p.CreatedAt
	}
	sort.Slice(out, func(i, j int) bool {
		ki, kj := key(out[i]), key(out[j])
		if !ki.Equal(kj) {
			return ki.After(kj)
		}
		return out[i].ID.String() > out[j].ID.String()
	})
	return out
}

func (s *memStore) Posts(ctx context.Context, search *db.PostSearch, pager db.Pager) ([]db.Post, error) {
	if s.postsFunc != nil {
		return s.postsFunc(ctx, search, pager)
	}
	if pager.Page < 1 || pager.PageSize < 1 {
		return nil, fmt.Errorf("invalid pager %+v", pager)
	}
	all := s.filtered(search)
	start := pager.Offset()
	if start >= len(all) {
		return []db.Post{}, nil
	}
	end := start + pager.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (s *memStore) PostsCount(_ context.Context, search *db.PostSearch) (int, error) {
	return len(s.filtered(search)), nil
}

func (s *memStore) PostByID(_ context.Context, postID uuid.UUID) (*db.Post, error) {
	p, ok := s.posts[postID]
	if !ok {
		return nil, nil
	}
	p = s.materialize(p)
	return &p, nil
}

func (s *memStore) PostBySlug(_ context.Context, slug string) (*db.Post, error) {
	s.slugProbes++
	for _, p := range s.posts {
		if p.Slug == slug {
			p = s.materialize(p)
			return &p, nil
		}
	}
	return nil, nil
}

func (s *memStore) PostExists(_ context.Context, postID uuid.UUID) (bool, error) {
	_, ok := s.posts[postID]
	return ok, nil
}

func (s *memStore) slugTaken(slug string, owner uuid.UUID) bool {
	for _, p := range s.posts {
		if p.Slug == slug && p.ID != owner {
			return true
		}
	}
	return false
}

func (s *memStore) AddPost(ctx context.Context, post *db.Post) error {
	if s.addPostFunc != nil {
		if err := s.addPostFunc(ctx, post); err != nil {
			return err
		}
	}
	if s.slugTaken(post.Slug, post.ID) {
		return fmt.Errorf("failed to insert post: %w", db.ErrUniqueViolation)
	}
	p := *post
	p.Author, p.Category, p.Status = nil, nil, nil
	s.posts[p.ID] = p
	return nil
}

func (s *memStore) UpdatePost(ctx context.Context, post *db.Post) error {
	if s.updatePostFunc != nil {
		if err := s.updatePostFunc(ctx, post); err != nil {
			return err
		}
	}
	if s.slugTaken(post.Slug, post.ID) {
		return fmt.Errorf("failed to update post: %w", db.ErrUniqueViolation)
	}
	current, ok := s.posts[post.ID]
	if !ok {
		return nil
	}
	p := *post
	p.Author, p.Category, p.Status = nil, nil, nil
	p.AuthorID = current.AuthorID
	p.CreatedAt = current.CreatedAt
	s.posts[p.ID] = p
	return nil
}

func (s *memStore) DeletePost(_ context.Context, postID uuid.UUID) error {
	delete(s.posts, postID)
	return nil
}

func (s *memStore) Tags(_ context.Context) ([]db.Tag, error) {
	out := append([]db.Tag(nil), s.tags...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memStore) TagsByIDs(_ context.Context, tagIDs []int) ([]db.Tag, error) {
	var out []db.Tag
	for _, t := range s.tags {
		for _, id := range tagIDs {
			if t.ID == id {
				out = append(out, t)
			}
		}
	}
	return out, nil
}

func (s *memStore) TagByName(_ context.Context, name string) (*db.Tag, error) {
	for _, t := range s.tags {
		if strings.EqualFold(t.Name, name) {
			tag := t
			return &tag, nil
		}
	}
	return nil, nil
}

func (s *memStore) AddTag(ctx context.Context, tag *db.Tag) error {
	if s.addTagFunc != nil {
		if err := s.addTagFunc(ctx, tag); err != nil {
			return err
		}
	}
	for _, t := range s.tags {
		if strings.EqualFold(t.Name, tag.Name) {
			return fmt.Errorf("failed to insert tag: %w", db.ErrUniqueViolation)
		}
	}
	s.tagInserts++
	tag.ID = len(s.tags) + 1
	s.tags = append(s.tags, *tag)
	return nil
}

func (s *memStore) Categories(_ context.Context) ([]db.Category, error) {
	out := append([]db.Category(nil), s.categories...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memStore) CategoryByID(_ context.Context, categoryID int) (*db.Category, error) {
	return s.category(&categoryID), nil
}

func (s *memStore) CategoryBySlug(_ context.Context, slug string) (*db.Category, error) {
	for _, c := range s.categories {
		if CategorySlug(c.Name) == slug {
			category := c
			return &category, nil
		}
	}
	return nil, nil
}

func (s *memStore) nameTaken(name string, owner int) bool {
	for _, c := range s.categories {
		if c.Name == name && c.ID != owner {
			return true
		}
	}
	return false
}

func (s *memStore) AddCategory(_ context.Context, category *db.Category) error {
	if s.nameTaken(category.Name, 0) {
		return fmt.Errorf("failed to insert category: %w", db.ErrUniqueViolation)
	}
	category.ID = len(s.categories) + 1
	s.categories = append(s.categories, *category)
	return nil
}

func (s *memStore) UpdateCategory(_ context.Context, category *db.Category) error {
	if s.nameTaken(category.Name, category.ID) {
		return fmt.Errorf("failed to update category: %w", db.ErrUniqueViolation)
	}
	for i := range s.categories {
		if s.categories[i].ID == category.ID {
			s.categories[i] = *category
		}
	}
	return nil
}

func (s *memStore) DeleteCategory(_ context.Context, categoryID int) error {
	for i := range s.categories {
		if s.categories[i].ID == categoryID {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *memStore) CategoryPostsCount(_ context.Context, categoryID int) (int, error) {
	return len(s.filtered(&db.PostSearch{CategoryID: &categoryID})), nil
}

func (s *memStore) CategoriesCount(_ context.Context) (int, error) {
	return len(s.categories), nil
}

func (s *memStore) UserByID(_ context.Context, userID uuid.UUID) (*db.User, error) {
	u, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *memStore) UserExists(_ context.Context, userID uuid.UUID) (bool, error) {
	_, ok := s.users[userID]
	return ok, nil
}

func (s *memStore) UsersCount(_ context.Context) (int, error) {
	return len(s.users), nil
}

// testClock returns increasing times, one minute apart.
type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time {
	c.t = c.t.Add(time.Minute)
	return c.t
}

func testClockStart() time.Time {
	return time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
}

func newTestManager(t *testing.T, store *memStore) (*Manager, *testClock) {
	t.Helper()
	clock := &testClock{t: testClockStart()}
	m := NewManager(store, Config{
		MaxSlugAttempts: 1000,
		ConflictRetries: 2,
		ConflictBackoff: time.Millisecond,
	}, noOpLogger())
	m.now = clock.now
	return m, clock
}

func ptr[T any](v T) *T { return &v }
