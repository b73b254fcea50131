// Package services serves the /services endpoints.
package services

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	applog "github.com/janisto/portfolio-api/internal/platform/logging"
	"github.com/janisto/portfolio-api/internal/platform/pagination"
	servicesvc "github.com/janisto/portfolio-api/internal/service/services"
)

const cursorKind = "service"

// Register registers service endpoints.
func Register(api huma.API, store servicesvc.Store, prefix string, security []map[string][]string) {
	huma.Register(api, huma.Operation{
		OperationID: "list-services",
		Method:      http.MethodGet,
		Path:        "/services",
		Summary:     "List active services",
		Tags:        []string{"Services"},
	}, func(ctx context.Context, input *ServiceListInput) (*ServiceListOutput, error) {
		items, err := store.List(ctx)
		if err != nil {
			return nil, mapStoreError(ctx, err)
		}
		page, err := pagination.Paginate(items, input.Params, cursorKind,
			func(s servicesvc.Service) string { return s.ID }, prefix+"/services", url.Values{})
		if err != nil {
			return nil, huma.Error400BadRequest("invalid cursor")
		}
		body := make([]Service, len(page.Items))
		for i := range page.Items {
			body[i] = toHTTPService(&page.Items[i])
		}
		return &ServiceListOutput{Link: page.Link, Body: body}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-service",
		Method:      http.MethodGet,
		Path:        "/services/{id}",
		Summary:     "Get a service",
		Description: "Returns a service by id, including inactive ones.",
		Tags:        []string{"Services"},
	}, func(ctx context.Context, input *ServicePathInput) (*ServiceOutput, error) {
		s, err := store.Get(ctx, input.ID)
		if err != nil {
			return nil, mapStoreError(ctx, err)
		}
		return &ServiceOutput{Body: toHTTPService(s)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-service",
		Method:        http.MethodPost,
		Path:          "/services",
		Summary:       "Create a service",
		Tags:          []string{"Services"},
		DefaultStatus: http.StatusOK,
		Security:      security,
	}, func(ctx context.Context, input *ServiceCreateInput) (*ServiceOutput, error) {
		s, err := store.Create(ctx, servicesvc.CreateParams{
			Title:       input.Body.Title,
			Description: input.Body.Description,
			Features:    input.Body.Features,
			Order:       input.Body.Order,
			Active:      input.Body.Active,
		})
		if err != nil {
			return nil, mapStoreError(ctx, err)
		}
		return &ServiceOutput{Body: toHTTPService(s)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-service",
		Method:      http.MethodPut,
		Path:        "/services/{id}",
		Summary:     "Update a service",
		Tags:        []string{"Services"},
		Security:    security,
	}, func(ctx context.Context, input *ServiceUpdateInput) (*ServiceOutput, error) {
		s, err := store.Update(ctx, input.ID, servicesvc.UpdateParams{
			Title:       input.Body.Title,
			Description: input.Body.Description,
			Features:    input.Body.Features,
			Order:       input.Body.Order,
			Active:      input.Body.Active,
		})
		if err != nil {
			return nil, mapStoreError(ctx, err)
		}
		return &ServiceOutput{Body: toHTTPService(s)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-service",
		Method:      http.MethodDelete,
		Path:        "/services/{id}",
		Summary:     "Delete a service",
		Tags:        []string{"Services"},
		Security:    security,
	}, func(ctx context.Context, input *ServicePathInput) (*ServiceDeleteOutput, error) {
		if err := store.Delete(ctx, input.ID); err != nil {
			return nil, mapStoreError(ctx, err)
		}
		return &ServiceDeleteOutput{Body: MessageBody{Message: "Service deleted successfully"}}, nil
	})
}

func mapStoreError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, servicesvc.ErrNotFound):
		return huma.Error404NotFound("Service not found")
	default:
		applog.LogError(ctx, "service store failed", err)
		return huma.Error500InternalServerError("internal error")
	}
}
