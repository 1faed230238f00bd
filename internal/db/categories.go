package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) CategoryByID(ctx context.Context, categoryID int) (*Category, error) {
	category := &Category{ID: categoryID}
	err := r.db.ModelContext(ctx, category).WherePK().Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

// CategoryBySlug matches the slug computed from the category name, see blog.CategorySlug.
func (r *Repository) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`replace(lower("t"."name"), ' ', '-') = ?`, slug).
		Limit(1).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	return category, nil
}

func (r *Repository) AddCategory(ctx context.Context, category *Category) error {
	if _, err := r.db.ModelContext(ctx, category).Insert(); err != nil {
		return writeErr("failed to insert category", err)
	}

	return nil
}

func (r *Repository) UpdateCategory(ctx context.Context, category *Category) error {
	_, err := r.db.ModelContext(ctx, category).
		Column(Columns.Category.Name, Columns.Category.Description).
		WherePK().
		Update()
	if err != nil {
		return writeErr("failed to update category", err)
	}

	return nil
}

func (r *Repository) DeleteCategory(ctx context.Context, categoryID int) error {
	if _, err := r.db.ModelContext(ctx, &Category{ID: categoryID}).WherePK().Delete(); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

// CategoryPostsCount returns how many posts reference the category.
func (r *Repository) CategoryPostsCount(ctx context.Context, categoryID int) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Post)(nil)).
		Where(`"t"."categoryId" = ?`, categoryID).
		Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count category posts: %w", err)
	}

	return count, nil
}

func (r *Repository) CategoriesCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Category)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get categories count: %w", err)
	}

	return count, nil
}
