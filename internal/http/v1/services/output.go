package services

// ServiceListOutput for GET /services
type ServiceListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body []Service
}

// ServiceOutput returns a single service.
type ServiceOutput struct {
	Body Service
}

// MessageBody carries a confirmation message.
type MessageBody struct {
	Message string `json:"message" example:"Service deleted successfully"`
}

// ServiceDeleteOutput for DELETE /services/{id}
type ServiceDeleteOutput struct {
	Body MessageBody
}
