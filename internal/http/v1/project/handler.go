// Package project serves the /projects endpoints.
package project

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	applog "github.com/janisto/portfolio-api/internal/platform/logging"
	"github.com/janisto/portfolio-api/internal/platform/pagination"
	projectsvc "github.com/janisto/portfolio-api/internal/service/project"
)

const cursorKind = "project"

// Register registers project endpoints. security is attached to mutating
// operations; nil leaves them open.
func Register(api huma.API, store projectsvc.Store, prefix string, security []map[string][]string) {
	huma.Register(api, huma.Operation{
		OperationID: "list-projects",
		Method:      http.MethodGet,
		Path:        "/projects",
		Summary:     "List featured projects",
		Description: "Returns featured projects in ascending display order.",
		Tags:        []string{"Projects"},
	}, func(ctx context.Context, input *ProjectListInput) (*ProjectListOutput, error) {
		projects, err := store.List(ctx)
		if err != nil {
			return nil, mapStoreError(ctx, err)
		}
		page, err := pagination.Paginate(projects, input.Params, cursorKind,
			func(p projectsvc.Project) string { return p.ID }, prefix+"/projects", url.Values{})
		if err != nil {
			return nil, huma.Error400BadRequest("invalid cursor")
		}
		body := make([]Project, 0, len(page.Items))
		for i := range page.Items {
			body = append(body, toHTTPProject(&page.Items[i]))
		}
		return &ProjectListOutput{Link: page.Link, Body: body}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-project",
		Method:      http.MethodGet,
		Path:        "/projects/{id}",
		Summary:     "Get a project",
		Tags:        []string{"Projects"},
	}, func(ctx context.Context, input *ProjectPathInput) (*ProjectOutput, error) {
		p, err := store.Get(ctx, input.ID)
		if err != nil {
			return nil, mapStoreError(ctx, err)
		}
		return &ProjectOutput{Body: toHTTPProject(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-project",
		Method:        http.MethodPost,
		Path:          "/projects",
		Summary:       "Create a project",
		Description:   "Creates a project. Featured defaults to true and order to 0.",
		Tags:          []string{"Projects"},
		DefaultStatus: http.StatusOK,
		Security:      security,
	}, func(ctx context.Context, input *ProjectCreateInput) (*ProjectOutput, error) {
		p, err := store.Create(ctx, projectsvc.CreateParams{
			Title:       input.Body.Title,
			Description: input.Body.Description,
			Impact:      input.Body.Impact,
			TechStack:   input.Body.TechStack,
			Category:    input.Body.Category,
			Featured:    input.Body.Featured,
			Order:       input.Body.Order,
		})
		if err != nil {
			return nil, mapStoreError(ctx, err)
		}
		return &ProjectOutput{Body: toHTTPProject(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-project",
		Method:      http.MethodPut,
		Path:        "/projects/{id}",
		Summary:     "Update a project",
		Description: "Applies the supplied fields. Omitted fields keep their stored values.",
		Tags:        []string{"Projects"},
		Security:    security,
	}, func(ctx context.Context, input *ProjectUpdateInput) (*ProjectOutput, error) {
		p, err := store.Update(ctx, input.ID, projectsvc.UpdateParams{
			Title:       input.Body.Title,
			Description: input.Body.Description,
			Impact:      input.Body.Impact,
			TechStack:   input.Body.TechStack,
			Category:    input.Body.Category,
			Featured:    input.Body.Featured,
			Order:       input.Body.Order,
		})
		if err != nil {
			return nil, mapStoreError(ctx, err)
		}
		return &ProjectOutput{Body: toHTTPProject(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-project",
		Method:      http.MethodDelete,
		Path:        "/projects/{id}",
		Summary:     "Delete a project",
		Tags:        []string{"Projects"},
		Security:    security,
	}, func(ctx context.Context, input *ProjectPathInput) (*DeleteOutput, error) {
		if err := store.Delete(ctx, input.ID); err != nil {
			return nil, mapStoreError(ctx, err)
		}
		out := &DeleteOutput{}
		out.Body.Message = "Project deleted successfully"
		return out, nil
	})
}

func mapStoreError(ctx context.Context, err error) error {
	if errors.Is(err, projectsvc.ErrNotFound) {
		return huma.Error404NotFound("Project not found")
	}
	applog.LogError(ctx, "project store failed", err)
	return huma.Error500InternalServerError("internal error")
}
