package seed

import (
	"context"
	"testing"
	"time"

	"github.com/janisto/portfolio-api/internal/platform/docstore"
	blogsvc "github.com/janisto/portfolio-api/internal/service/blog"
	profilesvc "github.com/janisto/portfolio-api/internal/service/profile"
	projectsvc "github.com/janisto/portfolio-api/internal/service/project"
	servicesvc "github.com/janisto/portfolio-api/internal/service/services"
)

func TestLoadStampsTimestamps(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c, err := Load(now)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Profile.Name != "Luv Suneja" || !c.Profile.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected profile: %+v", c.Profile)
	}
	if len(c.Projects) != 4 || len(c.Services) != 4 || len(c.Posts) != 1 {
		t.Fatalf("unexpected counts: %d projects, %d services, %d posts", len(c.Projects), len(c.Services), len(c.Posts))
	}
	for _, p := range c.Projects {
		if !p.CreatedAt.Equal(now) || !p.UpdatedAt.Equal(now) {
			t.Fatalf("project %s not stamped", p.ID)
		}
	}
	post := c.Posts[0]
	if post.ID != "ai-is-now" || post.Status != blogsvc.StatusPublished {
		t.Fatalf("unexpected post: %s %s", post.ID, post.Status)
	}
	if want := time.Date(2025, 7, 27, 0, 0, 0, 0, time.UTC); !post.PublishDate.Equal(want) {
		t.Fatalf("expected publish date %v, got %v", want, post.PublishDate)
	}
}

func TestRunPopulatesStore(t *testing.T) {
	ctx := context.Background()
	db := docstore.NewMemoryDatabase()

	if err := Run(ctx, db); err != nil {
		t.Fatalf("run: %v", err)
	}

	p, err := profilesvc.NewDocumentStore(db).Get(ctx)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if p.Location != "Dubai, UAE" {
		t.Fatalf("unexpected location %q", p.Location)
	}

	projects, err := projectsvc.NewDocumentStore(db).List(ctx)
	if err != nil {
		t.Fatalf("projects: %v", err)
	}
	if len(projects) != 4 || projects[0].ID != "ai-bi-assistant" || projects[3].ID != "hs-code-classification" {
		t.Fatalf("unexpected projects: %+v", projects)
	}

	services, err := servicesvc.NewDocumentStore(db).List(ctx)
	if err != nil {
		t.Fatalf("services: %v", err)
	}
	if len(services) != 4 || services[0].ID != "ai-ml-consulting" {
		t.Fatalf("unexpected services: %+v", services)
	}

	post, err := blogsvc.NewDocumentStore(db).Get(ctx, "ai-is-now")
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if post.Author != blogsvc.DefaultAuthor || len(post.Tags) != 3 {
		t.Fatalf("unexpected post: %+v", post)
	}
}

func TestRunReplacesExistingContent(t *testing.T) {
	ctx := context.Background()
	db := docstore.NewMemoryDatabase()
	projects := projectsvc.NewDocumentStore(db)

	if _, err := projects.Create(ctx, projectsvc.CreateParams{
		Title:       "Stale",
		Description: "left over",
		Impact:      "none",
		Category:    "Other",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	for range 2 {
		if err := Run(ctx, db); err != nil {
			t.Fatalf("run: %v", err)
		}
	}

	list, err := projects.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 4 {
		t.Fatalf("expected 4 projects after reseed, got %d", len(list))
	}
	for _, p := range list {
		if p.Title == "Stale" {
			t.Fatal("stale project survived seeding")
		}
	}
}
