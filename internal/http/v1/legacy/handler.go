// Package legacy keeps the banner and status check endpoints older clients
// still call.
package legacy

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/portfolio-api/internal/platform/logging"
	"github.com/janisto/portfolio-api/internal/platform/timeutil"
	statussvc "github.com/janisto/portfolio-api/internal/service/status"
)

const bannerMessage = "Luv Suneja Portfolio API"

// Register wires the banner and status routes. version is reported by the
// banner.
func Register(api huma.API, store statussvc.Store, version string) {
	huma.Register(api, huma.Operation{
		OperationID: "get-banner",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "API banner",
		Tags:        []string{"Legacy"},
	}, func(context.Context, *struct{}) (*BannerOutput, error) {
		return &BannerOutput{Body: Banner{Message: bannerMessage, Version: version}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-status-check",
		Method:        http.MethodPost,
		Path:          "/status",
		Summary:       "Record a status check",
		Tags:          []string{"Legacy"},
		DefaultStatus: http.StatusOK,
	}, func(ctx context.Context, input *StatusCreateInput) (*StatusCheckOutput, error) {
		c, err := store.Create(ctx, input.Body.ClientName)
		if err != nil {
			applog.LogError(ctx, "status check insert failed", err)
			return nil, huma.Error500InternalServerError("internal error")
		}
		applog.LogInfo(ctx, "status check recorded", zap.String("client_name", c.ClientName))
		return &StatusCheckOutput{Body: toHTTPCheck(c)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-status-checks",
		Method:      http.MethodGet,
		Path:        "/status",
		Summary:     "List status checks",
		Description: "Returns up to 1000 recorded status checks.",
		Tags:        []string{"Legacy"},
	}, func(ctx context.Context, _ *struct{}) (*StatusListOutput, error) {
		checks, err := store.List(ctx)
		if err != nil {
			applog.LogError(ctx, "status check list failed", err)
			return nil, huma.Error500InternalServerError("internal error")
		}
		body := make([]StatusCheck, 0, len(checks))
		for i := range checks {
			body = append(body, toHTTPCheck(&checks[i]))
		}
		return &StatusListOutput{Body: body}, nil
	})
}

func toHTTPCheck(c *statussvc.Check) StatusCheck {
	return StatusCheck{
		ID:         c.ID,
		ClientName: c.ClientName,
		Timestamp:  timeutil.NewTime(c.Timestamp),
	}
}
