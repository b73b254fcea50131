package project

// ProjectListOutput for GET /projects
type ProjectListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body []Project
}

// ProjectOutput returns a single project.
type ProjectOutput struct {
	Body Project
}

// DeleteOutput confirms a deletion.
type DeleteOutput struct {
	Body struct {
		Message string `json:"message" example:"Project deleted successfully"`
	}
}
