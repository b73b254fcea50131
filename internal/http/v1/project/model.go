package project

import (
	"github.com/janisto/portfolio-api/internal/platform/timeutil"
	projectsvc "github.com/janisto/portfolio-api/internal/service/project"
)

// Project is the project response body.
type Project struct {
	ID          string        `json:"id"          doc:"Unique identifier"        example:"3f0c8f5e-8a57-4f3e-9d43-5f8f3a1c2b7d"`
	Title       string        `json:"title"       doc:"Project title"            example:"AI Document Pipeline"`
	Description string        `json:"description" doc:"What was built"`
	Impact      string        `json:"impact"      doc:"Business outcome"         example:"Cut processing time by 80%"`
	TechStack   []string      `json:"techStack"   doc:"Technologies used"        example:"[\"Go\",\"GCP\"]"`
	Category    string        `json:"category"    doc:"Project category"         example:"AI/ML"`
	Featured    bool          `json:"featured"    doc:"Shown on the portfolio"   example:"true"`
	Order       int           `json:"order"       doc:"Ascending display order"  example:"1"`
	CreatedAt   timeutil.Time `json:"createdAt"   doc:"Creation timestamp"       example:"2025-07-27T00:00:00.000Z"`
	UpdatedAt   timeutil.Time `json:"updatedAt"   doc:"Last update timestamp"    example:"2025-07-27T00:00:00.000Z"`
}

func toHTTPProject(p *projectsvc.Project) Project {
	return Project{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Impact:      p.Impact,
		TechStack:   p.TechStack,
		Category:    p.Category,
		Featured:    p.Featured,
		Order:       p.Order,
		CreatedAt:   timeutil.NewTime(p.CreatedAt),
		UpdatedAt:   timeutil.NewTime(p.UpdatedAt),
	}
}
