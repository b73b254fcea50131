package blog

import (
	"github.com/janisto/portfolio-api/internal/platform/timeutil"
	blogsvc "github.com/janisto/portfolio-api/internal/service/blog"
)

// BlogPost is the blog post response body.
type BlogPost struct {
	ID          string        `json:"id"          doc:"Unique identifier"`
	Title       string        `json:"title"       doc:"Post title"              example:"AI is now"`
	Excerpt     string        `json:"excerpt"     doc:"Teaser shown in lists"`
	Content     string        `json:"content"     doc:"Full post body"`
	Category    string        `json:"category"    doc:"Post category"           example:"AI Strategy"`
	ReadTime    string        `json:"readTime"    doc:"Estimated reading time"  example:"5 min read"`
	Author      string        `json:"author"      doc:"Author name"             example:"Luv Suneja"`
	PublishDate timeutil.Time `json:"publishDate" doc:"Publication timestamp"   example:"2025-07-27T00:00:00.000Z"`
	Featured    bool          `json:"featured"    doc:"Highlighted post"        example:"false"`
	Tags        []string      `json:"tags"        doc:"Post tags"`
	Status      string        `json:"status"      doc:"Publication status"      enum:"draft,published"`
	CreatedAt   timeutil.Time `json:"createdAt"   doc:"Creation timestamp"      example:"2025-07-27T00:00:00.000Z"`
	UpdatedAt   timeutil.Time `json:"updatedAt"   doc:"Last update timestamp"   example:"2025-07-27T00:00:00.000Z"`
}

func toHTTPPost(p *blogsvc.Post) BlogPost {
	return BlogPost{
		ID:          p.ID,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		Content:     p.Content,
		Category:    p.Category,
		ReadTime:    p.ReadTime,
		Author:      p.Author,
		PublishDate: timeutil.NewTime(p.PublishDate),
		Featured:    p.Featured,
		Tags:        p.Tags,
		Status:      p.Status,
		CreatedAt:   timeutil.NewTime(p.CreatedAt),
		UpdatedAt:   timeutil.NewTime(p.UpdatedAt),
	}
}
