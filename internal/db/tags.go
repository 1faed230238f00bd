package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

func (r *Repository) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.ModelContext(ctx, &tags).
		OrderExpr(`"name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, nil
}

func (r *Repository) TagsByIDs(ctx context.Context, tagIDs []int) ([]Tag, error) {
	if len(tagIDs) == 0 {
		return []Tag{}, nil
	}

	tags := []Tag{}
	err := r.db.ModelContext(ctx, &tags).
		Where(`"tagId" IN (?)`, pg.In(tagIDs)).
		OrderExpr(`"name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags by ids: %w", err)
	}

	return tags, nil
}

// TagByName finds a tag by case-insensitive name match.
func (r *Repository) TagByName(ctx context.Context, name string) (*Tag, error) {
	tag := &Tag{}
	err := r.db.ModelContext(ctx, tag).
		Where(`lower("t"."name") = lower(?)`, name).
		Limit(1).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get tag by name: %w", err)
	}

	return tag, nil
}

func (r *Repository) AddTag(ctx context.Context, tag *Tag) error {
	if _, err := r.db.ModelContext(ctx, tag).Insert(); err != nil {
		return writeErr("failed to insert tag", err)
	}

	return nil
}
