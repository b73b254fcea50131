// Package profile serves the singleton /profile resource.
package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	applog "github.com/janisto/portfolio-api/internal/platform/logging"
	profilesvc "github.com/janisto/portfolio-api/internal/service/profile"
)

// Register registers profile endpoints.
func Register(api huma.API, store profilesvc.Store, security []map[string][]string) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/profile",
		Summary:     "Get the portfolio profile",
		Description: "Returns the site owner's profile. Responds 404 until the profile is seeded.",
		Tags:        []string{"Profile"},
	}, func(ctx context.Context, _ *ProfileGetInput) (*ProfileOutput, error) {
		p, err := store.Get(ctx)
		if err != nil {
			return nil, mapStoreError(ctx, err)
		}
		return &ProfileOutput{Body: toHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPut,
		Path:        "/profile",
		Summary:     "Update the portfolio profile",
		Description: "Updates the supplied fields. Only provided fields are changed.",
		Tags:        []string{"Profile"},
		Security:    security,
	}, func(ctx context.Context, input *ProfileUpdateInput) (*ProfileOutput, error) {
		b := input.Body
		p, err := store.Update(ctx, profilesvc.UpdateParams{
			Name:        b.Name,
			Title:       b.Title,
			Subtitle:    b.Subtitle,
			Location:    b.Location,
			Email:       b.Email,
			Phone:       b.Phone,
			LinkedIn:    b.LinkedIn,
			Bio:         b.Bio,
			Experience:  b.Experience,
			TeamLed:     b.TeamLed,
			CostSavings: b.CostSavings,
		})
		if err != nil {
			return nil, mapStoreError(ctx, err)
		}
		return &ProfileOutput{Body: toHTTPProfile(p)}, nil
	})
}

func mapStoreError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, profilesvc.ErrNotFound):
		return huma.Error404NotFound("Profile not found")
	default:
		applog.LogError(ctx, "profile store failed", err)
		return huma.Error500InternalServerError("internal error")
	}
}
