// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"

	"github.com/google/uuid"
)

var Columns = struct {
	Category struct {
		ID, Name, Description, CreatedAt string
	}
	Post struct {
		ID, Title, Slug, Content, Excerpt, FeaturedImageURL, AuthorID, CategoryID, TagIDs, StatusID, PublishedAt, CreatedAt, UpdatedAt string

		Author, Category, Status string
	}
	Status struct {
		ID string
	}
	Tag struct {
		ID, Name string
	}
	User struct {
		ID, Username, Email, Role, CreatedAt string
	}
}{
	Category: struct {
		ID, Name, Description, CreatedAt string
	}{
		ID:          "categoryId",
		Name:        "name",
		Description: "description",
		CreatedAt:   "createdAt",
	},
	Post: struct {
		ID, Title, Slug, Content, Excerpt, FeaturedImageURL, AuthorID, CategoryID, TagIDs, StatusID, PublishedAt, CreatedAt, UpdatedAt string

		Author, Category, Status string
	}{
		ID:               "postId",
		Title:            "title",
		Slug:             "slug",
		Content:          "content",
		Excerpt:          "excerpt",
		FeaturedImageURL: "featuredImageUrl",
		AuthorID:         "authorId",
		CategoryID:       "categoryId",
		TagIDs:           "tagIds",
		StatusID:         "statusId",
		PublishedAt:      "publishedAt",
		CreatedAt:        "createdAt",
		UpdatedAt:        "updatedAt",

		Author:   "Author",
		Category: "Category",
		Status:   "Status",
	},
	Status: struct {
		ID string
	}{
		ID: "statusId",
	},
	Tag: struct {
		ID, Name string
	}{
		ID:   "tagId",
		Name: "name",
	},
	User: struct {
		ID, Username, Email, Role, CreatedAt string
	}{
		ID:        "userId",
		Username:  "username",
		Email:     "email",
		Role:      "role",
		CreatedAt: "createdAt",
	},
}

var Tables = struct {
	Category struct {
		Name, Alias string
	}
	Post struct {
		Name, Alias string
	}
	Status struct {
		Name, Alias string
	}
	Tag struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	Post: struct {
		Name, Alias string
	}{
		Name:  "posts",
		Alias: "t",
	},
	Status: struct {
		Name, Alias string
	}{
		Name:  "statuses",
		Alias: "t",
	},
	Tag: struct {
		Name, Alias string
	}{
		Name:  "tags",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          int       `pg:"categoryId,pk"`
	Name        string    `pg:"name,use_zero"`
	Description *string   `pg:"description"`
	CreatedAt   time.Time `pg:"createdAt,use_zero"`
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID               uuid.UUID  `pg:"postId,pk,type:uuid"`
	Title            string     `pg:"title,use_zero"`
	Slug             string     `pg:"slug,use_zero"`
	Content          string     `pg:"content,use_zero"`
	Excerpt          *string    `pg:"excerpt"`
	FeaturedImageURL *string    `pg:"featuredImageUrl"`
	AuthorID         uuid.UUID  `pg:"authorId,type:uuid,use_zero"`
	CategoryID       *int       `pg:"categoryId"`
	TagIDs           []int      `pg:"tagIds,array,use_zero"`
	StatusID         int        `pg:"statusId,use_zero"`
	PublishedAt      *time.Time `pg:"publishedAt"`
	CreatedAt        time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt        time.Time  `pg:"updatedAt,use_zero"`

	Author   *User     `pg:"fk:authorId,rel:has-one"`
	Category *Category `pg:"fk:categoryId,rel:has-one"`
	Status   *Status   `pg:"fk:statusId,rel:has-one"`
}

type Status struct {
	tableName struct{} `pg:"statuses,alias:t,discard_unknown_columns"`

	ID int `pg:"statusId,pk"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID   int    `pg:"tagId,pk"`
	Name string `pg:"name,use_zero"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID        uuid.UUID `pg:"userId,pk,type:uuid"`
	Username  string    `pg:"username,use_zero"`
	Email     string    `pg:"email,use_zero"`
	Role      string    `pg:"role,use_zero"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`
}
