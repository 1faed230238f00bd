package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/daniilsolovey/blog-platform/internal/db"
)

// ResolveTags maps names to stored tags, creating the ones never seen before with the supplied casing.
// Names are matched case-insensitively and duplicates collapse to the first occurrence.
func (m *Manager) ResolveTags(ctx context.Context, names []string) ([]Tag, error) {
	seen := make(map[string]struct{}, len(names))
	tags := make([]Tag, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		tag, err := m.tagByName(ctx, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}

	return tags, nil
}

// tagByName is the get-or-create step for a single name.
func (m *Manager) tagByName(ctx context.Context, name string) (*Tag, error) {
	existing, err := m.db.TagByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up tag %q: %w", name, err)
	} else if existing != nil {
		return NewTag(existing), nil
	}

	created := &db.Tag{Name: name}
	err = m.db.AddTag(ctx, created)
	if errors.Is(err, db.ErrUniqueViolation) {
		// created concurrently by another request
		existing, err = m.db.TagByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to re-read tag %q: %w", name, err)
		} else if existing == nil {
			return nil, fmt.Errorf("%w: tag %q", ErrConflict, name)
		}
		return NewTag(existing), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to create tag %q: %w", name, err)
	}

	m.logger.DebugContext(ctx, "tag created", "tagId", created.ID, "name", name)

	return NewTag(created), nil
}

func (m *Manager) Tags(ctx context.Context) ([]Tag, error) {
	list, err := m.db.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get tags: %w", err)
	}

	return NewTags(list), nil
}

func tagIDs(tags []Tag) []int {
	ids := make([]int, len(tags))
	for i := range tags {
		ids[i] = tags[i].ID
	}

	return ids
}
