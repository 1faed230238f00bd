package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/daniilsolovey/blog-platform/internal/db"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

// fallbackSlug is the base used when a title has no characters left after slug normalization.
const fallbackSlug = "post"

// CreatePost stores a new post written by authorID.
func (m *Manager) CreatePost(ctx context.Context, authorID uuid.UUID, in CreatePostInput) (*Post, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	status := StatusDraft
	if in.Status != nil {
		s, err := ParseStatus(string(*in.Status))
		if err != nil {
			return nil, err
		}
		status = s
	}

	exists, err := m.db.UserExists(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check author: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: author %s does not exist", ErrValidation, authorID)
	}

	if err := m.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	tags, err := m.ResolveTags(ctx, in.Tags)
	if err != nil {
		return nil, err
	}

	now := m.now()
	post := &db.Post{
		ID:               uuid.New(),
		Title:            title,
		Content:          in.Content,
		Excerpt:          in.Excerpt,
		FeaturedImageURL: in.FeaturedImageURL,
		AuthorID:         authorID,
		CategoryID:       in.CategoryID,
		TagIDs:           tagIDs(tags),
		StatusID:         status.id(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if status == StatusPublished {
		post.PublishedAt = &now
	}

	if err := m.writeWithSlug(ctx, post, GenerateBaseSlug(title), nil, m.db.AddPost); err != nil {
		return nil, err
	}

	m.logger.InfoContext(ctx, "post created", "postId", post.ID, "slug", post.Slug, "authorId", authorID)

	return m.PostByID(ctx, post.ID)
}

// UpdatePost applies the supplied fields of in to the post. A new title always regenerates the slug,
// the post may keep its own slug. PublishedAt is set only on the first transition into Published.
func (m *Manager) UpdatePost(ctx context.Context, id uuid.UUID, in UpdatePostInput) (*Post, error) {
	var title string
	if in.Title != nil {
		title = strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title must not be empty", ErrValidation)
		}
	}
	if in.Status != nil {
		if _, err := ParseStatus(string(*in.Status)); err != nil {
			return nil, err
		}
	}

	current, err := m.db.PostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get post by id: %w", err)
	} else if current == nil {
		return nil, fmt.Errorf("%w: post %s", ErrNotFound, id)
	}

	if err := m.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	post := *current
	post.Author, post.Category, post.Status = nil, nil, nil

	if in.Title != nil {
		post.Title = title
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.Excerpt != nil {
		post.Excerpt = in.Excerpt
	}
	if in.FeaturedImageURL != nil {
		post.FeaturedImageURL = in.FeaturedImageURL
	}
	if in.CategoryID != nil {
		post.CategoryID = in.CategoryID
	}

	now := m.now()
	if in.Status != nil {
		post.StatusID = in.Status.id()
		if *in.Status == StatusPublished && post.PublishedAt == nil {
			post.PublishedAt = &now
		}
	}

	if in.Tags != nil {
		tags, err := m.ResolveTags(ctx, in.Tags)
		if err != nil {
			return nil, err
		}
		post.TagIDs = tagIDs(tags)
	}

	post.UpdatedAt = now

	if in.Title != nil {
		err = m.writeWithSlug(ctx, &post, GenerateBaseSlug(title), &id, m.db.UpdatePost)
	} else {
		err = conflictErr(m.db.UpdatePost(ctx, &post), post.Slug)
	}
	if err != nil {
		return nil, err
	}

	m.logger.InfoContext(ctx, "post updated", "postId", id, "slug", post.Slug)

	return m.PostByID(ctx, id)
}

// DeletePost removes the post together with its tag associations.
func (m *Manager) DeletePost(ctx context.Context, id uuid.UUID) error {
	exists, err := m.db.PostExists(ctx, id)
	if err != nil {
		return fmt.Errorf("db check post: %w", err)
	} else if !exists {
		return fmt.Errorf("%w: post %s", ErrNotFound, id)
	}

	if err := m.db.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("db delete post: %w", err)
	}

	m.logger.InfoContext(ctx, "post deleted", "postId", id)

	return nil
}

// UniqueSlug probes base, base-1, base-2... and returns the first slug not used by another post.
// A slug held by exclude counts as free.
func (m *Manager) UniqueSlug(ctx context.Context, base string, exclude *uuid.UUID) (string, error) {
	if base == "" {
		base = fallbackSlug
	}

	for counter := 0; counter < m.cfg.MaxSlugAttempts; counter++ {
		candidate := UniqueSuffix(base, counter)

		existing, err := m.db.PostBySlug(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to probe slug %q: %w", candidate, err)
		}

		if existing == nil || (exclude != nil && existing.ID == *exclude) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: no free slug for %q after %d attempts", ErrConflict, base, m.cfg.MaxSlugAttempts)
}

// writeWithSlug resolves a unique slug and writes the post. A write rejected by the unique
// constraint means another request claimed the slug in between, so both steps are retried with backoff.
func (m *Manager) writeWithSlug(ctx context.Context, post *db.Post, base string, exclude *uuid.UUID, write func(context.Context, *db.Post) error) error {
	backoff := retry.WithMaxRetries(m.cfg.ConflictRetries, retry.NewExponential(m.cfg.ConflictBackoff))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		slug, err := m.UniqueSlug(ctx, base, exclude)
		if err != nil {
			return err
		}
		post.Slug = slug

		err = write(ctx, post)
		if errors.Is(err, db.ErrUniqueViolation) {
			m.logger.WarnContext(ctx, "slug claimed concurrently, retrying", "slug", slug, "error", err)
			return retry.RetryableError(err)
		}

		return err
	})

	return conflictErr(err, post.Slug)
}

func conflictErr(err error, slug string) error {
	if errors.Is(err, db.ErrUniqueViolation) {
		return fmt.Errorf("%w: slug %q is already taken: %v", ErrConflict, slug, err)
	} else if err != nil && !errors.Is(err, ErrConflict) {
		return fmt.Errorf("db write post: %w", err)
	}

	return err
}

func (m *Manager) checkCategory(ctx context.Context, categoryID *int) error {
	if categoryID == nil {
		return nil
	}

	category, err := m.db.CategoryByID(ctx, *categoryID)
	if err != nil {
		return fmt.Errorf("db get category by id: %w", err)
	} else if category == nil {
		return fmt.Errorf("%w: category %d does not exist", ErrValidation, *categoryID)
	}

	return nil
}
