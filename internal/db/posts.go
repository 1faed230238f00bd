package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

// Posts retrieves posts matching search, with pagination.
// Author and category are loaded via relations, tags are left as TagIDs.
func (r *Repository) Posts(ctx context.Context, search *PostSearch, pager Pager) ([]Post, error) {
	if err := pager.validate(); err != nil {
		return nil, err
	}

	var posts []Post
	query := r.db.ModelContext(ctx, &posts).
		Relation(Columns.Post.Author).
		Relation(Columns.Post.Category)

	query = search.apply(query)

	err := search.order(query).
		Limit(pager.PageSize).
		Offset(pager.Offset()).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, nil
}

// PostsCount returns the number of posts matching search, ignoring pagination.
func (r *Repository) PostsCount(ctx context.Context, search *PostSearch) (int, error) {
	query := r.db.ModelContext(ctx, (*Post)(nil))
	if search.joinsCategory() {
		query = query.Relation(Columns.Post.Category)
	}

	count, err := search.apply(query).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get posts count: %w", err)
	}

	return count, nil
}

func (r *Repository) PostByID(ctx context.Context, postID uuid.UUID) (*Post, error) {
	post := &Post{ID: postID}
	err := r.db.ModelContext(ctx, post).
		Relation(Columns.Post.Author).
		Relation(Columns.Post.Category).
		WherePK().
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

func (r *Repository) PostBySlug(ctx context.Context, slug string) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Relation(Columns.Post.Author).
		Relation(Columns.Post.Category).
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}

	return post, nil
}

func (r *Repository) PostExists(ctx context.Context, postID uuid.UUID) (bool, error) {
	exists, err := r.db.ModelContext(ctx, (*Post)(nil)).
		Where(`"t"."postId" = ?`, postID).
		Exists()
	if err != nil {
		return false, fmt.Errorf("failed to check post existence: %w", err)
	}

	return exists, nil
}

func (r *Repository) AddPost(ctx context.Context, post *Post) error {
	if post.TagIDs == nil {
		post.TagIDs = []int{}
	}

	if _, err := r.db.ModelContext(ctx, post).Insert(); err != nil {
		return writeErr("failed to insert post", err)
	}

	return nil
}

// UpdatePost writes every mutable column of post. Author and creation time are never touched.
func (r *Repository) UpdatePost(ctx context.Context, post *Post) error {
	if post.TagIDs == nil {
		post.TagIDs = []int{}
	}

	_, err := r.db.ModelContext(ctx, post).
		Column(
			Columns.Post.Title,
			Columns.Post.Slug,
			Columns.Post.Content,
			Columns.Post.Excerpt,
			Columns.Post.FeaturedImageURL,
			Columns.Post.CategoryID,
			Columns.Post.TagIDs,
			Columns.Post.StatusID,
			Columns.Post.PublishedAt,
			Columns.Post.UpdatedAt,
		).
		WherePK().
		Update()
	if err != nil {
		return writeErr("failed to update post", err)
	}

	return nil
}

func (r *Repository) DeletePost(ctx context.Context, postID uuid.UUID) error {
	if _, err := r.db.ModelContext(ctx, &Post{ID: postID}).WherePK().Delete(); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}
