package rpc

import (
	"context"
	"errors"

	"github.com/daniilsolovey/blog-platform/internal/blog"
	"github.com/google/uuid"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

// BlogService provides read-only RPC methods over published posts and their taxonomy.
type BlogService struct {
	zenrpc.Service
	manager *blog.Manager
}

func NewBlogService(manager *blog.Manager) *BlogService {
	return &BlogService{manager: manager}
}

// Published retrieves published posts with optional search and category filters, with pagination.
// Returns PostSummary (without content) sorted by publish date DESC.
//
//zenrpc:filter search, categorySlug, page and pageSize
//zenrpc:return page of post summaries
//zenrpc:400 invalid pagination
//zenrpc:500 internal server error
func (s *BlogService) Published(ctx context.Context, filter PostFilter) (*PostPage, error) {
	page, err := s.manager.PublishedPosts(ctx, filter.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	result := NewPostPage(page)
	return &result, nil
}

// BySlug retrieves a single post by slug with full content, category and tags.
//
//zenrpc:slug post slug
//zenrpc:return post with full content
//zenrpc:400 slug is required
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *BlogService) BySlug(ctx context.Context, slug string) (*Post, error) {
	post, err := s.manager.PostBySlug(ctx, slug)
	if err != nil {
		return nil, newError(err)
	}

	result := NewPost(*post)
	return &result, nil
}

// Related retrieves published posts of the same category, excluding the given post.
//
//zenrpc:id source post id
//zenrpc:categoryId category of the source post
//zenrpc:limit=3 maximum number of posts
//zenrpc:return list of post summaries
//zenrpc:400 invalid id or limit
//zenrpc:500 internal server error
func (s *BlogService) Related(ctx context.Context, id string, categoryId int, limit *int) (PostSummaries, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, zenrpc.NewStringError(400, "invalid post id")
	}

	n := blog.DefaultRelatedLimit
	if limit != nil {
		n = *limit
	}

	posts, err := s.manager.RelatedPosts(ctx, postID, categoryId, n)
	if err != nil {
		return nil, newError(err)
	}

	return NewPostSummaries(posts), nil
}

// Categories retrieves all categories ordered by name.
//
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s *BlogService) Categories(ctx context.Context) (Categories, error) {
	categories, err := s.manager.Categories(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return NewCategories(categories), nil
}

// Tags retrieves all tags ordered by name.
//
//zenrpc:return list of tags
//zenrpc:500 internal server error
func (s *BlogService) Tags(ctx context.Context) (Tags, error) {
	tags, err := s.manager.Tags(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return NewTags(tags), nil
}

// newError converts blog error kinds to RPC errors. Unknown errors keep no details.
func newError(err error) error {
	switch {
	case errors.Is(err, blog.ErrValidation), errors.Is(err, blog.ErrPreconditionFailed):
		return zenrpc.NewStringError(400, err.Error())
	case errors.Is(err, blog.ErrNotFound):
		return zenrpc.NewStringError(404, err.Error())
	}

	return zenrpc.NewStringError(500, "internal error")
}
