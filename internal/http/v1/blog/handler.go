// Package blog serves the /blog endpoints.
package blog

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	applog "github.com/janisto/portfolio-api/internal/platform/logging"
	"github.com/janisto/portfolio-api/internal/platform/pagination"
	blogsvc "github.com/janisto/portfolio-api/internal/service/blog"
)

const cursorKind = "blog"

// Register registers blog endpoints. Reads only see published posts; updates
// and deletes address any post by id.
func Register(api huma.API, store blogsvc.Store, prefix string, security []map[string][]string) {
	huma.Register(api, huma.Operation{
		OperationID: "list-blog-posts",
		Method:      http.MethodGet,
		Path:        "/blog",
		Summary:     "List published blog posts",
		Description: "Returns published posts, newest first.",
		Tags:        []string{"Blog"},
	}, func(ctx context.Context, input *BlogListInput) (*BlogListOutput, error) {
		posts, err := store.List(ctx)
		if err != nil {
			return nil, mapStoreError(ctx, err)
		}
		page, err := pagination.Paginate(posts, input.Params, cursorKind,
			func(p blogsvc.Post) string { return p.ID }, prefix+"/blog", url.Values{})
		if err != nil {
			return nil, huma.Error400BadRequest("invalid cursor")
		}
		body := make([]BlogPost, 0, len(page.Items))
		for i := range page.Items {
			body = append(body, toHTTPPost(&page.Items[i]))
		}
		return &BlogListOutput{Link: page.Link, Body: body}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-blog-post",
		Method:      http.MethodGet,
		Path:        "/blog/{id}",
		Summary:     "Get a published blog post",
		Tags:        []string{"Blog"},
	}, func(ctx context.Context, input *BlogPathInput) (*BlogPostOutput, error) {
		p, err := store.Get(ctx, input.ID)
		if err != nil {
			return nil, mapStoreError(ctx, err)
		}
		return &BlogPostOutput{Body: toHTTPPost(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-blog-post",
		Method:        http.MethodPost,
		Path:          "/blog",
		Summary:       "Create a blog post",
		Description:   "Author defaults to Luv Suneja, publishDate to now and status to published.",
		Tags:          []string{"Blog"},
		DefaultStatus: http.StatusOK,
		Security:      security,
	}, func(ctx context.Context, input *BlogCreateInput) (*BlogPostOutput, error) {
		b := input.Body
		p, err := store.Create(ctx, blogsvc.CreateParams{
			Title:       b.Title,
			Excerpt:     b.Excerpt,
			Content:     b.Content,
			Category:    b.Category,
			ReadTime:    b.ReadTime,
			Author:      b.Author,
			PublishDate: b.PublishDate,
			Featured:    b.Featured,
			Tags:        b.Tags,
			Status:      b.Status,
		})
		if err != nil {
			return nil, mapStoreError(ctx, err)
		}
		return &BlogPostOutput{Body: toHTTPPost(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-blog-post",
		Method:      http.MethodPut,
		Path:        "/blog/{id}",
		Summary:     "Update a blog post",
		Description: "Applies the supplied fields to a post of any status.",
		Tags:        []string{"Blog"},
		Security:    security,
	}, func(ctx context.Context, input *BlogUpdateInput) (*BlogPostOutput, error) {
		b := input.Body
		p, err := store.Update(ctx, input.ID, blogsvc.UpdateParams{
			Title:       b.Title,
			Excerpt:     b.Excerpt,
			Content:     b.Content,
			Category:    b.Category,
			ReadTime:    b.ReadTime,
			Author:      b.Author,
			PublishDate: b.PublishDate,
			Featured:    b.Featured,
			Tags:        b.Tags,
			Status:      b.Status,
		})
		if err != nil {
			return nil, mapStoreError(ctx, err)
		}
		return &BlogPostOutput{Body: toHTTPPost(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-blog-post",
		Method:      http.MethodDelete,
		Path:        "/blog/{id}",
		Summary:     "Delete a blog post",
		Tags:        []string{"Blog"},
		Security:    security,
	}, func(ctx context.Context, input *BlogPathInput) (*BlogDeleteOutput, error) {
		if err := store.Delete(ctx, input.ID); err != nil {
			return nil, mapStoreError(ctx, err)
		}
		out := &BlogDeleteOutput{}
		out.Body.Message = "Blog post deleted successfully"
		return out, nil
	})
}

func mapStoreError(ctx context.Context, err error) error {
	if errors.Is(err, blogsvc.ErrNotFound) {
		return huma.Error404NotFound("Blog post not found")
	}
	applog.LogError(ctx, "blog store failed", err)
	return huma.Error500InternalServerError("internal error")
}
