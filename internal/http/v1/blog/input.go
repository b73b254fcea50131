package blog

import (
	"time"

	"github.com/janisto/portfolio-api/internal/platform/pagination"
)

// BlogListInput for GET /blog
type BlogListInput struct {
	pagination.Params
}

// BlogPathInput identifies a post by id.
type BlogPathInput struct {
	ID string `path:"id" doc:"Blog post ID"`
}

// BlogCreateInput for POST /blog
type BlogCreateInput struct {
	Body struct {
		Title       string     `json:"title"                 required:"true" doc:"Post title"`
		Excerpt     string     `json:"excerpt"               required:"true" doc:"Teaser shown in lists"`
		Content     string     `json:"content"               required:"true" doc:"Full post body"`
		Category    string     `json:"category"              required:"true" doc:"Post category"`
		ReadTime    string     `json:"readTime"              required:"true" doc:"Estimated reading time" example:"5 min read"`
		Author      *string    `json:"author,omitempty"                      doc:"Defaults to Luv Suneja when absent"`
		PublishDate *time.Time `json:"publishDate,omitempty"                 doc:"Defaults to the creation time"`
		Featured    bool       `json:"featured,omitempty"                    doc:"Highlighted post"`
		Tags        []string   `json:"tags,omitempty"                        doc:"Post tags"`
		Status      string     `json:"status,omitempty"                      doc:"Publication status"     enum:"draft,published" default:"published"`
	}
}

// BlogUpdateInput for PUT /blog/{id}
type BlogUpdateInput struct {
	ID   string `path:"id" doc:"Blog post ID"`
	Body struct {
		Title       *string    `json:"title,omitempty"       doc:"Post title"`
		Excerpt     *string    `json:"excerpt,omitempty"     doc:"Teaser shown in lists"`
		Content     *string    `json:"content,omitempty"     doc:"Full post body"`
		Category    *string    `json:"category,omitempty"    doc:"Post category"`
		ReadTime    *string    `json:"readTime,omitempty"    doc:"Estimated reading time"`
		Author      *string    `json:"author,omitempty"      doc:"Author name"`
		PublishDate *time.Time `json:"publishDate,omitempty" doc:"Publication timestamp"`
		Featured    *bool      `json:"featured,omitempty"    doc:"Highlighted post"`
		Tags        *[]string  `json:"tags,omitempty"        doc:"Post tags"`
		Status      *string    `json:"status,omitempty"      doc:"Publication status" enum:"draft,published"`
	}
}
