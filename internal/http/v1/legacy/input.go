package legacy

// StatusCreateInput is the request body for recording a status check.
type StatusCreateInput struct {
	Body struct {
		ClientName string `json:"client_name" required:"true" doc:"Reporting client" example:"web"`
	}
}
