package blog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"github.com/janisto/portfolio-api/internal/platform/docstore"
	applog "github.com/janisto/portfolio-api/internal/platform/logging"
	appmiddleware "github.com/janisto/portfolio-api/internal/platform/middleware"
	"github.com/janisto/portfolio-api/internal/platform/respond"
	blogsvc "github.com/janisto/portfolio-api/internal/service/blog"
)

func newTestRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(appmiddleware.RequestID(), applog.RequestLogger(), respond.Recoverer())
	api := humachi.New(router, huma.DefaultConfig("BlogTest", "test"))
	Register(api, blogsvc.NewDocumentStore(docstore.NewMemoryDatabase()), "", nil)
	return router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func createPost(t *testing.T, router http.Handler, overrides map[string]any) BlogPost {
	t.Helper()
	fields := map[string]any{
		"title":    "T",
		"excerpt":  "e",
		"content":  "c",
		"category": "AI",
		"readTime": "5 min read",
	}
	for k, v := range overrides {
		fields[k] = v
	}
	body, err := json.Marshal(fields)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	resp := serve(router, http.MethodPost, "/blog", string(body))
	if resp.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var p BlogPost
	if err := json.Unmarshal(resp.Body.Bytes(), &p); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	return p
}

func listPosts(t *testing.T, router http.Handler) []BlogPost {
	t.Helper()
	resp := serve(router, http.MethodGet, "/blog", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", resp.Code)
	}
	var posts []BlogPost
	if err := json.Unmarshal(resp.Body.Bytes(), &posts); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	return posts
}

func TestCreateDefaults(t *testing.T) {
	p := createPost(t, newTestRouter(), nil)
	if p.Author != "Luv Suneja" || p.Status != "published" || p.Featured {
		t.Fatalf("unexpected defaults %+v", p)
	}
	if !p.PublishDate.Equal(p.CreatedAt.Time) {
		t.Fatalf("expected publishDate = createdAt, got %v %v", p.PublishDate, p.CreatedAt)
	}
	if p.Tags == nil {
		t.Fatal("expected tags to serialize as an empty array")
	}
}

func TestCreateAuthorAbsentVersusEmpty(t *testing.T) {
	router := newTestRouter()
	if p := createPost(t, router, map[string]any{"author": "Guest Writer"}); p.Author != "Guest Writer" {
		t.Fatalf("expected supplied author, got %q", p.Author)
	}
	if p := createPost(t, router, map[string]any{"author": ""}); p.Author != "" {
		t.Fatalf("expected explicit empty author kept, got %q", p.Author)
	}
}

func TestDraftInvisibleToReaders(t *testing.T) {
	router := newTestRouter()
	draft := createPost(t, router, map[string]any{"status": "draft"})

	resp := serve(router, http.MethodGet, "/blog/"+draft.ID, "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for draft, got %d", resp.Code)
	}
	var problem huma.ErrorModel
	if err := json.Unmarshal(resp.Body.Bytes(), &problem); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if problem.Detail != "Blog post not found" {
		t.Fatalf("unexpected detail %q", problem.Detail)
	}
	if posts := listPosts(t, router); len(posts) != 0 {
		t.Fatalf("expected no listed posts, got %d", len(posts))
	}
}

func TestDraftUpdatableAndDeletable(t *testing.T) {
	router := newTestRouter()
	draft := createPost(t, router, map[string]any{"status": "draft"})

	resp := serve(router, http.MethodPut, "/blog/"+draft.ID, `{"status":"published"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 updating a draft, got %d: %s", resp.Code, resp.Body.String())
	}
	if resp := serve(router, http.MethodGet, "/blog/"+draft.ID, ""); resp.Code != http.StatusOK {
		t.Fatalf("expected published post readable, got %d", resp.Code)
	}

	other := createPost(t, router, map[string]any{"status": "draft"})
	resp = serve(router, http.MethodDelete, "/blog/"+other.ID, "")
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), "Blog post deleted successfully") {
		t.Fatalf("unexpected delete response %d %s", resp.Code, resp.Body.String())
	}
}

func TestListNewestFirst(t *testing.T) {
	router := newTestRouter()
	createPost(t, router, map[string]any{"title": "older", "publishDate": "2025-01-01T00:00:00Z"})
	createPost(t, router, map[string]any{"title": "newer", "publishDate": "2025-06-01T00:00:00+02:00"})

	posts := listPosts(t, router)
	if len(posts) != 2 || posts[0].Title != "newer" || posts[1].Title != "older" {
		t.Fatalf("unexpected order %+v", posts)
	}
}

func TestInvalidStatusRejected(t *testing.T) {
	router := newTestRouter()
	resp := serve(router, http.MethodPost, "/blog",
		`{"title":"T","excerpt":"e","content":"c","category":"AI","readTime":"5","status":"archived"}`)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
}

func TestUpdateMissingPost(t *testing.T) {
	resp := serve(newTestRouter(), http.MethodPut, "/blog/nope", `{"title":"x"}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
