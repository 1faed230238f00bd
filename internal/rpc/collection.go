package rpc

import "github.com/daniilsolovey/blog-platform/internal/blog"

type Posts []Post

type PostSummaries []PostSummary

type Categories []Category

type Tags []Tag

func NewPosts(in []blog.Post) Posts {
	return Map(in, NewPost)
}

func NewPostSummaries(in []blog.Post) PostSummaries {
	return Map(in, NewPostSummary)
}

func NewCategories(in []blog.Category) Categories {
	return Map(in, NewCategory)
}

func NewTags(in []blog.Tag) Tags {
	return Map(in, NewTag)
}

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}
