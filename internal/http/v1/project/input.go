package project

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/portfolio-api/internal/platform/pagination"
)

// ProjectListInput for GET /projects
type ProjectListInput struct {
	pagination.Params
}

// ProjectPathInput identifies a project by id.
type ProjectPathInput struct {
	ID string `path:"id" doc:"Project ID"`
}

// ProjectCreateInput for POST /projects
type ProjectCreateInput struct {
	Body struct {
		Title       string   `json:"title"              required:"true" doc:"Project title"           example:"AI Document Pipeline"`
		Description string   `json:"description"        required:"true" doc:"What was built"`
		Impact      string   `json:"impact"             required:"true" doc:"Business outcome"        example:"Cut processing time by 80%"`
		TechStack   []string `json:"techStack"          required:"true" doc:"Technologies used"`
		Category    string   `json:"category"           required:"true" doc:"Project category"        example:"AI/ML"`
		Featured    *bool    `json:"featured,omitempty"                 doc:"Defaults to true"        example:"true"`
		Order       *int     `json:"order,omitempty"                    doc:"Defaults to 0"           example:"1"`
	}
}

// Resolve rejects an explicit JSON null for techStack, which would otherwise
// decode to a nil slice and pass the required check.
func (i *ProjectCreateInput) Resolve(huma.Context) []error {
	if i.Body.TechStack == nil {
		return []error{&huma.ErrorDetail{
			Location: "body.techStack",
			Message:  "expected array, got null",
		}}
	}
	return nil
}

// ProjectUpdateInput for PUT /projects/{id}
type ProjectUpdateInput struct {
	ID   string `path:"id" doc:"Project ID"`
	Body struct {
		Title       *string   `json:"title,omitempty"       doc:"Project title"`
		Description *string   `json:"description,omitempty" doc:"What was built"`
		Impact      *string   `json:"impact,omitempty"      doc:"Business outcome"`
		TechStack   *[]string `json:"techStack,omitempty"   doc:"Technologies used"`
		Category    *string   `json:"category,omitempty"    doc:"Project category"`
		Featured    *bool     `json:"featured,omitempty"    doc:"Shown on the portfolio"`
		Order       *int      `json:"order,omitempty"       doc:"Ascending display order"`
	}
}
