// Package blog stores blog posts. Readers only ever see published posts;
// editors update and delete by id regardless of status.
package blog

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("blog post not found")

// Post status values.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// DefaultAuthor is applied when a post is created without an author.
const DefaultAuthor = "Luv Suneja"

// Post is a blog article.
type Post struct {
	ID          string
	Title       string
	Excerpt     string
	Content     string
	Category    string
	ReadTime    string
	Author      string
	PublishDate time.Time
	Featured    bool
	Tags        []string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateParams for creating a post. Nil Author means DefaultAuthor while an
// empty one is stored as given. Nil PublishDate means the creation time and
// empty Status published.
type CreateParams struct {
	Title       string
	Excerpt     string
	Content     string
	Category    string
	ReadTime    string
	Author      *string
	PublishDate *time.Time
	Featured    bool
	Tags        []string
	Status      string
}

// UpdateParams for a partial update. Nil fields are left untouched.
type UpdateParams struct {
	Title       *string
	Excerpt     *string
	Content     *string
	Category    *string
	ReadTime    *string
	Author      *string
	PublishDate *time.Time
	Featured    *bool
	Tags        *[]string
	Status      *string
}

// Store defines blog operations.
type Store interface {
	// List returns published posts, newest publishDate first, at most 100.
	List(ctx context.Context) ([]Post, error)
	// Get returns a published post; drafts are reported as ErrNotFound.
	Get(ctx context.Context, id string) (*Post, error)
	Create(ctx context.Context, params CreateParams) (*Post, error)
	// Update returns the stored post whatever its status.
	Update(ctx context.Context, id string, params UpdateParams) (*Post, error)
	Delete(ctx context.Context, id string) error
}
