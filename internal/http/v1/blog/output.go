package blog

// BlogListOutput for GET /blog
type BlogListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body []BlogPost
}

// BlogPostOutput returns a single post.
type BlogPostOutput struct {
	Body BlogPost
}

// BlogDeleteOutput for DELETE /blog/{id}
type BlogDeleteOutput struct {
	Body struct {
		Message string `json:"message" example:"Blog post deleted successfully"`
	}
}
