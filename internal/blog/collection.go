package blog

import (
	"github.com/daniilsolovey/blog-platform/internal/db"
)

type (
	Posts      []Post
	Tags       []Tag
	Categories []Category
)

func NewPosts(in []db.Post) Posts {
	out := make(Posts, 0, len(in))
	for i := range in {
		out = append(out, *NewPost(&in[i]))
	}

	return out
}

func NewTags(in []db.Tag) Tags {
	out := make(Tags, 0, len(in))
	for i := range in {
		out = append(out, *NewTag(&in[i]))
	}

	return out
}

func NewCategories(in []db.Category) Categories {
	out := make(Categories, 0, len(in))
	for i := range in {
		if c := NewCategory(&in[i]); c != nil {
			out = append(out, *c)
		}
	}

	return out
}

// UniqueTagIDs returns every tag id referenced by the posts, each once.
func (ll Posts) UniqueTagIDs() []int {
	seen := make(map[int]struct{})
	var ids []int
	for i := range ll {
		for _, id := range ll[i].TagIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	return ids
}

func (ll Tags) IndexByID() map[int]Tag {
	index := make(map[int]Tag, len(ll))
	for i := range ll {
		index[ll[i].ID] = ll[i]
	}

	return index
}

// SetTags resolves the TagIDs of every post against tags, keeping the stored order.
// Ids without a matching tag are skipped.
func (ll Posts) SetTags(tags Tags) {
	tagIndex := tags.IndexByID()
	for i := range ll {
		ll[i].Tags = make([]Tag, 0, len(ll[i].TagIDs))
		for _, tagID := range ll[i].TagIDs {
			if tag, ok := tagIndex[tagID]; ok {
				ll[i].Tags = append(ll[i].Tags, tag)
			}
		}
	}
}
