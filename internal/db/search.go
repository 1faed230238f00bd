package db

import (
	"fmt"

	"github.com/go-pg/pg/v10/orm"
	"github.com/google/uuid"
)

type PostOrder int

const (
	// OrderByCreatedAt sorts newest created first.
	OrderByCreatedAt PostOrder = iota
	// OrderByPublishDate sorts by publishedAt, falling back to createdAt for unpublished rows.
	OrderByPublishDate
)

// PostSearch holds the optional predicates applied to a posts query. Nil fields are ignored.
type PostSearch struct {
	// Query is a case-sensitive substring matched against title or content.
	Query        string
	CategoryID   *int
	CategorySlug *string
	StatusID     *int
	AuthorID     *uuid.UUID
	ExcludeID    *uuid.UUID
	Order        PostOrder
}

type Pager struct {
	Page     int
	PageSize int
}

func (p Pager) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Pager) validate() error {
	if p.Page < 1 || p.PageSize < 1 {
		return fmt.Errorf(
			"page or pageSize must be greater than 0: page=%d, pageSize=%d",
			p.Page, p.PageSize,
		)
	}

	return nil
}

// joinsCategory reports whether the predicates reference the joined category row.
func (s *PostSearch) joinsCategory() bool {
	return s != nil && s.CategorySlug != nil
}

func (s *PostSearch) apply(query *orm.Query) *orm.Query {
	if s == nil {
		return query
	}

	if s.Query != "" {
		query = query.Where(`(strpos("t"."title", ?0) > 0 OR strpos("t"."content", ?0) > 0)`, s.Query)
	}

	if s.CategoryID != nil {
		query = query.Where(`"t"."categoryId" = ?`, *s.CategoryID)
	}

	if s.CategorySlug != nil {
		query = query.Where(`replace(lower("category"."name"), ' ', '-') = ?`, *s.CategorySlug)
	}

	if s.StatusID != nil {
		query = query.Where(`"t"."statusId" = ?`, *s.StatusID)
	}

	if s.AuthorID != nil {
		query = query.Where(`"t"."authorId" = ?`, *s.AuthorID)
	}

	if s.ExcludeID != nil {
		query = query.Where(`"t"."postId" <> ?`, *s.ExcludeID)
	}

	return query
}

func (s *PostSearch) order(query *orm.Query) *orm.Query {
	if s != nil && s.Order == OrderByPublishDate {
		return query.OrderExpr(`COALESCE("t"."publishedAt", "t"."createdAt") DESC, "t"."postId" DESC`)
	}

	return query.OrderExpr(`"t"."createdAt" DESC, "t"."postId" DESC`)
}
