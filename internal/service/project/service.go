// Package project stores portfolio projects.
package project

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("project not found")

// Project is a portfolio case study.
type Project struct {
	ID          string
	Title       string
	Description string
	Impact      string
	Category    string
	TechStack   []string
	Featured    bool
	Order       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateParams for creating a project. Nil Featured means true, nil Order 0.
type CreateParams struct {
	Title       string
	Description string
	Impact      string
	Category    string
	TechStack   []string
	Featured    *bool
	Order       *int
}

// UpdateParams for a partial update. Nil fields are left untouched; non-nil
// zero values are written.
type UpdateParams struct {
	Title       *string
	Description *string
	Impact      *string
	Category    *string
	TechStack   *[]string
	Featured    *bool
	Order       *int
}

// Store defines project operations.
type Store interface {
	// List returns featured projects by ascending order, at most 100.
	List(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, id string) (*Project, error)
	Create(ctx context.Context, params CreateParams) (*Project, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Project, error)
	Delete(ctx context.Context, id string) error
}
