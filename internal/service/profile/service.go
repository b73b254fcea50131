// Package profile stores the single portfolio owner profile.
package profile

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned until the profile has been seeded.
var ErrNotFound = errors.New("profile not found")

// Profile is the site owner's contact and summary record.
type Profile struct {
	Name        string
	Title       string
	Subtitle    string
	Location    string
	Email       string
	Phone       string
	LinkedIn    string
	Bio         string
	Experience  string
	TeamLed     string
	CostSavings string
	UpdatedAt   time.Time
}

// UpdateParams for a partial update. Nil fields are left untouched.
type UpdateParams struct {
	Name        *string
	Title       *string
	Subtitle    *string
	Location    *string
	Email       *string
	Phone       *string
	LinkedIn    *string
	Bio         *string
	Experience  *string
	TeamLed     *string
	CostSavings *string
}

// Store defines profile operations. There is no create or delete; the
// profile is provisioned by the seeder.
type Store interface {
	Get(ctx context.Context) (*Profile, error)
	Update(ctx context.Context, params UpdateParams) (*Profile, error)
}
