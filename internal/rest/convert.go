package rest

import "github.com/daniilsolovey/blog-platform/internal/blog"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewPost(p blog.Post) Post {
	post := Post{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		Content:          p.Content,
		Excerpt:          p.Summary(),
		FeaturedImageURL: p.FeaturedImageURL,
		CategoryID:       p.CategoryID,
		Tags:             p.TagNames(),
		Status:           string(p.Status),
		AuthorID:         p.AuthorID,
		PublishedAt:      p.PublishedAt,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}

	if p.Category != nil {
		category := NewCategory(*p.Category)
		post.Category = &category
	}

	if p.Author != nil {
		post.Author = &Author{ID: p.Author.ID, Username: p.Author.Username}
	}

	return post
}

func NewPosts(list []blog.Post) []Post {
	return Map(list, NewPost)
}

func NewPostPage(p *blog.PostPage) PostPage {
	return PostPage{
		Data:       NewPosts(p.Posts),
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}

func NewCategory(c blog.Category) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
	}
}

func NewCategories(list []blog.Category) []Category {
	return Map(list, NewCategory)
}

func NewTag(t blog.Tag) Tag {
	return Tag{ID: t.ID, Name: t.Name}
}

func NewTags(list []blog.Tag) []Tag {
	return Map(list, NewTag)
}

func NewStats(s blog.Stats) Stats {
	return Stats(s)
}

func (r PostsRequest) filter() (blog.PostFilter, error) {
	filter := blog.PostFilter{
		Search:       r.Search,
		CategoryID:   r.CategoryID,
		CategorySlug: r.CategorySlug,
		Page:         r.Page,
		PageSize:     r.PageSize,
	}

	if r.Status != "" {
		status, err := blog.ParseStatus(r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

func parseStatus(s *string) (*blog.PostStatus, error) {
	if s == nil {
		return nil, nil
	}

	status, err := blog.ParseStatus(*s)
	if err != nil {
		return nil, err
	}

	return &status, nil
}

func (r CreatePostRequest) input() (blog.CreatePostInput, error) {
	status, err := parseStatus(r.Status)
	if err != nil {
		return blog.CreatePostInput{}, err
	}

	return blog.CreatePostInput{
		Title:            r.Title,
		Content:          r.Content,
		Excerpt:          r.Excerpt,
		FeaturedImageURL: r.FeaturedImageURL,
		CategoryID:       r.CategoryID,
		Tags:             r.Tags,
		Status:           status,
	}, nil
}

func (r UpdatePostRequest) input() (blog.UpdatePostInput, error) {
	status, err := parseStatus(r.Status)
	if err != nil {
		return blog.UpdatePostInput{}, err
	}

	return blog.UpdatePostInput{
		Title:            r.Title,
		Content:          r.Content,
		Excerpt:          r.Excerpt,
		FeaturedImageURL: r.FeaturedImageURL,
		CategoryID:       r.CategoryID,
		Tags:             r.Tags,
		Status:           status,
	}, nil
}

func (r CategoryRequest) input() blog.CategoryInput {
	return blog.CategoryInput{Name: r.Name, Description: r.Description}
}
