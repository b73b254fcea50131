// Package services stores the consulting services offered on the portfolio.
package services

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("service not found")

// Service is one offered service.
type Service struct {
	ID          string
	Title       string
	Description string
	Features    []string
	Order       int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateParams for creating a service. Nil Order means 0, nil Active true.
type CreateParams struct {
	Title       string
	Description string
	Features    []string
	Order       *int
	Active      *bool
}

// UpdateParams for a partial update; nil fields are skipped.
type UpdateParams struct {
	Title       *string
	Description *string
	Features    *[]string
	Order       *int
	Active      *bool
}

// Store defines service operations.
type Store interface {
	// List returns active services by ascending order, at most 100.
	List(ctx context.Context) ([]Service, error)
	Get(ctx context.Context, id string) (*Service, error)
	Create(ctx context.Context, params CreateParams) (*Service, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Service, error)
	Delete(ctx context.Context, id string) error
}
