package services

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/portfolio-api/internal/platform/pagination"
)

// ServiceListInput for GET /services
type ServiceListInput struct {
	pagination.Params
}

// ServicePathInput identifies a service by id.
type ServicePathInput struct {
	ID string `path:"id" doc:"Service ID"`
}

// ServiceCreateInput for POST /services
type ServiceCreateInput struct {
	Body struct {
		Title       string   `json:"title"            required:"true" doc:"Service title"     example:"AI Strategy Consulting"`
		Description string   `json:"description"      required:"true" doc:"Service summary"`
		Features    []string `json:"features"         required:"true" doc:"Included deliverables"`
		Order       *int     `json:"order,omitempty"                  doc:"Defaults to 0"     example:"1"`
		Active      *bool    `json:"active,omitempty"                 doc:"Defaults to true"  example:"true"`
	}
}

// Resolve rejects an explicit JSON null for features, which would otherwise
// decode to a nil slice and pass the required check.
func (i *ServiceCreateInput) Resolve(huma.Context) []error {
	if i.Body.Features == nil {
		return []error{&huma.ErrorDetail{
			Location: "body.features",
			Message:  "expected array, got null",
		}}
	}
	return nil
}

// ServiceUpdateInput for PUT /services/{id}
type ServiceUpdateInput struct {
	ID   string `path:"id" doc:"Service ID"`
	Body struct {
		Title       *string   `json:"title,omitempty"       doc:"Service title"`
		Description *string   `json:"description,omitempty" doc:"Service summary"`
		Features    *[]string `json:"features,omitempty"    doc:"Included deliverables"`
		Order       *int      `json:"order,omitempty"       doc:"Ascending display order"`
		Active      *bool     `json:"active,omitempty"      doc:"Offered on the site"`
	}
}
