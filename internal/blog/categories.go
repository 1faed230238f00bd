package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/daniilsolovey/blog-platform/internal/db"
)

func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	list, err := m.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

func (m *Manager) CategoryByID(ctx context.Context, id int) (*Category, error) {
	category, err := m.db.CategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get category by id: %w", err)
	} else if category == nil {
		return nil, fmt.Errorf("%w: category %d", ErrNotFound, id)
	}

	return NewCategory(category), nil
}

// CategoryBySlug matches slug against the slug computed from each category name.
func (m *Manager) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	category, err := m.db.CategoryBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get category by slug: %w", err)
	} else if category == nil {
		return nil, fmt.Errorf("%w: category %q", ErrNotFound, slug)
	}

	return NewCategory(category), nil
}

func (m *Manager) CreateCategory(ctx context.Context, in CategoryInput) (*Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	category := &db.Category{
		Name:        name,
		Description: in.Description,
		CreatedAt:   m.now(),
	}
	if err := categoryWriteErr(m.db.AddCategory(ctx, category), name); err != nil {
		return nil, err
	}

	m.logger.InfoContext(ctx, "category created", "categoryId", category.ID, "name", name)

	return NewCategory(category), nil
}

// UpdateCategory replaces name and description.
func (m *Manager) UpdateCategory(ctx context.Context, id int, in CategoryInput) (*Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	category, err := m.db.CategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get category by id: %w", err)
	} else if category == nil {
		return nil, fmt.Errorf("%w: category %d", ErrNotFound, id)
	}

	category.Name = name
	category.Description = in.Description
	if err := categoryWriteErr(m.db.UpdateCategory(ctx, category), name); err != nil {
		return nil, err
	}

	return NewCategory(category), nil
}

// DeleteCategory refuses to remove a category still referenced by posts.
func (m *Manager) DeleteCategory(ctx context.Context, id int) error {
	category, err := m.db.CategoryByID(ctx, id)
	if err != nil {
		return fmt.Errorf("db get category by id: %w", err)
	} else if category == nil {
		return fmt.Errorf("%w: category %d", ErrNotFound, id)
	}

	count, err := m.db.CategoryPostsCount(ctx, id)
	if err != nil {
		return fmt.Errorf("db count category posts: %w", err)
	} else if count > 0 {
		return fmt.Errorf("%w: cannot delete category, %d posts are using it", ErrPreconditionFailed, count)
	}

	if err := m.db.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("db delete category: %w", err)
	}

	m.logger.InfoContext(ctx, "category deleted", "categoryId", id)

	return nil
}

func categoryWriteErr(err error, name string) error {
	if errors.Is(err, db.ErrUniqueViolation) {
		return fmt.Errorf("%w: category %q already exists", ErrConflict, name)
	} else if err != nil {
		return fmt.Errorf("db write category: %w", err)
	}

	return nil
}
