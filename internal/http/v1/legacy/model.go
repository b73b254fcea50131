package legacy

import "github.com/janisto/portfolio-api/internal/platform/timeutil"

// Banner identifies the API.
type Banner struct {
	Message string `json:"message" doc:"API name"    example:"Luv Suneja Portfolio API"`
	Version string `json:"version" doc:"API version" example:"1.0.0"`
}

// StatusCheck records a client check-in.
type StatusCheck struct {
	ID         string        `json:"id"          doc:"Unique identifier"`
	ClientName string        `json:"client_name" doc:"Reporting client" example:"web"`
	Timestamp  timeutil.Time `json:"timestamp"   doc:"Check-in time"    example:"2025-07-27T00:00:00.000Z"`
}
