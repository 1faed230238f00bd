package blog

import (
	"github.com/daniilsolovey/blog-platform/internal/db"
	"github.com/google/uuid"
)

// ExcerptLength is the number of runes kept by Excerpt.
const ExcerptLength = 200

// Excerpt cuts content to ExcerptLength runes and marks the cut with an ellipsis.
func Excerpt(content string) string {
	r := []rune(content)
	if len(r) <= ExcerptLength {
		return content
	}

	return string(r[:ExcerptLength]) + "..."
}

func NewUser(in *db.User) *User {
	if in == nil || in.ID == uuid.Nil {
		return nil
	}

	return &User{User: *in}
}

// NewCategory returns nil for a missing category, including the empty row of an unmatched join.
func NewCategory(in *db.Category) *Category {
	if in == nil || in.ID == 0 {
		return nil
	}

	return &Category{
		Category: *in,
		Slug:     CategorySlug(in.Name),
	}
}

func NewTag(in *db.Tag) *Tag {
	if in == nil {
		return nil
	}

	return &Tag{Tag: *in}
}

func NewPost(in *db.Post) *Post {
	if in == nil {
		return nil
	}

	post := &Post{
		Post:     *in,
		Status:   newPostStatus(in.StatusID),
		Author:   NewUser(in.Author),
		Category: NewCategory(in.Category),
	}
	return post
}
