// Package seed loads the bundled portfolio content into a document store.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/janisto/portfolio-api/internal/platform/docstore"
	applog "github.com/janisto/portfolio-api/internal/platform/logging"
	"github.com/janisto/portfolio-api/internal/platform/timeutil"
	blogsvc "github.com/janisto/portfolio-api/internal/service/blog"
	profilesvc "github.com/janisto/portfolio-api/internal/service/profile"
	projectsvc "github.com/janisto/portfolio-api/internal/service/project"
	servicesvc "github.com/janisto/portfolio-api/internal/service/services"
)

//go:embed fixture.json
var fixtureJSON []byte

type fixture struct {
	Profile struct {
		Name        string `json:"name"`
		Title       string `json:"title"`
		Subtitle    string `json:"subtitle"`
		Location    string `json:"location"`
		Email       string `json:"email"`
		Phone       string `json:"phone"`
		LinkedIn    string `json:"linkedin"`
		Bio         string `json:"bio"`
		Experience  string `json:"experience"`
		TeamLed     string `json:"teamLed"`
		CostSavings string `json:"costSavings"`
	} `json:"profile"`
	Projects []struct {
		ID          string   `json:"id"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Impact      string   `json:"impact"`
		TechStack   []string `json:"techStack"`
		Category    string   `json:"category"`
		Featured    bool     `json:"featured"`
		Order       int      `json:"order"`
	} `json:"projects"`
	Services []struct {
		ID          string   `json:"id"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Features    []string `json:"features"`
		Order       int      `json:"order"`
		Active      bool     `json:"active"`
	} `json:"services"`
	BlogPosts []struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Excerpt     string    `json:"excerpt"`
		Content     string    `json:"content"`
		Category    string    `json:"category"`
		ReadTime    string    `json:"readTime"`
		PublishDate time.Time `json:"publishDate"`
		Featured    bool      `json:"featured"`
		Author      string    `json:"author"`
		Tags        []string  `json:"tags"`
		Status      string    `json:"status"`
	} `json:"blogPosts"`
}

// Content is the decoded seed data, stamped with a single creation time.
type Content struct {
	Profile  profilesvc.Profile
	Projects []projectsvc.Project
	Services []servicesvc.Service
	Posts    []blogsvc.Post
}

// Load decodes the embedded fixture. now becomes every createdAt and
// updatedAt value.
func Load(now time.Time) (*Content, error) {
	var f fixture
	if err := json.Unmarshal(fixtureJSON, &f); err != nil {
		return nil, fmt.Errorf("decode seed fixture: %w", err)
	}

	c := &Content{
		Profile: profilesvc.Profile{
			Name:        f.Profile.Name,
			Title:       f.Profile.Title,
			Subtitle:    f.Profile.Subtitle,
			Location:    f.Profile.Location,
			Email:       f.Profile.Email,
			Phone:       f.Profile.Phone,
			LinkedIn:    f.Profile.LinkedIn,
			Bio:         f.Profile.Bio,
			Experience:  f.Profile.Experience,
			TeamLed:     f.Profile.TeamLed,
			CostSavings: f.Profile.CostSavings,
			UpdatedAt:   now,
		},
	}
	for _, p := range f.Projects {
		c.Projects = append(c.Projects, projectsvc.Project{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Impact:      p.Impact,
			Category:    p.Category,
			TechStack:   p.TechStack,
			Featured:    p.Featured,
			Order:       p.Order,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	for _, s := range f.Services {
		c.Services = append(c.Services, servicesvc.Service{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Features:    s.Features,
			Order:       s.Order,
			Active:      s.Active,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	for _, b := range f.BlogPosts {
		c.Posts = append(c.Posts, blogsvc.Post{
			ID:          b.ID,
			Title:       b.Title,
			Excerpt:     b.Excerpt,
			Content:     b.Content,
			Category:    b.Category,
			ReadTime:    b.ReadTime,
			Author:      b.Author,
			PublishDate: b.PublishDate.UTC(),
			Featured:    b.Featured,
			Tags:        b.Tags,
			Status:      b.Status,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return c, nil
}

// Run replaces the profile, projects, services and blog_posts collections
// with the bundled content. A failing collection is logged and skipped; the
// returned error joins every failure.
func Run(ctx context.Context, db docstore.Database) error {
	content, err := Load(timeutil.NowMillis())
	if err != nil {
		return err
	}

	steps := []struct {
		collection string
		count      int
		replace    func(context.Context) error
	}{
		{profilesvc.Collection, 1, func(ctx context.Context) error {
			return profilesvc.NewDocumentStore(db).Replace(ctx, content.Profile)
		}},
		{projectsvc.Collection, len(content.Projects), func(ctx context.Context) error {
			return projectsvc.NewDocumentStore(db).Replace(ctx, content.Projects)
		}},
		{servicesvc.Collection, len(content.Services), func(ctx context.Context) error {
			return servicesvc.NewDocumentStore(db).Replace(ctx, content.Services)
		}},
		{blogsvc.Collection, len(content.Posts), func(ctx context.Context) error {
			return blogsvc.NewDocumentStore(db).Replace(ctx, content.Posts)
		}},
	}

	var errs []error
	for _, step := range steps {
		if err := step.replace(ctx); err != nil {
			applog.LogError(ctx, "seed collection failed", err, zap.String("collection", step.collection))
			errs = append(errs, fmt.Errorf("seed %s: %w", step.collection, err))
			continue
		}
		applog.LogInfo(ctx, "seeded collection",
			zap.String("collection", step.collection), zap.Int("documents", step.count))
	}
	return errors.Join(errs...)
}
