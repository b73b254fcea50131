package services

import (
	"github.com/janisto/portfolio-api/internal/platform/timeutil"
	servicesvc "github.com/janisto/portfolio-api/internal/service/services"
)

// Service is the service response body.
type Service struct {
	ID          string        `json:"id"          doc:"Unique identifier"`
	Title       string        `json:"title"       doc:"Service title"           example:"AI Strategy Consulting"`
	Description string        `json:"description" doc:"Service summary"`
	Features    []string      `json:"features"    doc:"Included deliverables"`
	Order       int           `json:"order"       doc:"Ascending display order" example:"1"`
	Active      bool          `json:"active"      doc:"Offered on the site"     example:"true"`
	CreatedAt   timeutil.Time `json:"createdAt"   doc:"Creation timestamp"      example:"2025-07-27T00:00:00.000Z"`
	UpdatedAt   timeutil.Time `json:"updatedAt"   doc:"Last update timestamp"   example:"2025-07-27T00:00:00.000Z"`
}

func toHTTPService(s *servicesvc.Service) Service {
	return Service{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Features:    s.Features,
		Order:       s.Order,
		Active:      s.Active,
		CreatedAt:   timeutil.NewTime(s.CreatedAt),
		UpdatedAt:   timeutil.NewTime(s.UpdatedAt),
	}
}
