package routes

import (
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	bloghandler "github.com/janisto/portfolio-api/internal/http/v1/blog"
	"github.com/janisto/portfolio-api/internal/http/v1/legacy"
	profilehandler "github.com/janisto/portfolio-api/internal/http/v1/profile"
	projecthandler "github.com/janisto/portfolio-api/internal/http/v1/project"
	serviceshandler "github.com/janisto/portfolio-api/internal/http/v1/services"
	"github.com/janisto/portfolio-api/internal/platform/auth"
	blogsvc "github.com/janisto/portfolio-api/internal/service/blog"
	profilesvc "github.com/janisto/portfolio-api/internal/service/profile"
	projectsvc "github.com/janisto/portfolio-api/internal/service/project"
	servicesvc "github.com/janisto/portfolio-api/internal/service/services"
	statussvc "github.com/janisto/portfolio-api/internal/service/status"
)

// Stores groups the resource stores served by the API.
type Stores struct {
	Profile  profilesvc.Store
	Projects projectsvc.Store
	Services servicesvc.Store
	Blog     blogsvc.Store
	Status   statussvc.Store
}

// Register wires all HTTP routes into the provided API router. A nil verifier
// leaves mutating operations unauthenticated.
func Register(api huma.API, version string, verifier auth.Verifier, stores Stores) {
	prefix := apiPrefix(api)

	var security []map[string][]string
	if verifier != nil {
		api.UseMiddleware(auth.NewAuthMiddleware(api, verifier))
		security = auth.BearerRequirement()
	}

	legacy.Register(api, stores.Status, version)
	profilehandler.Register(api, stores.Profile, security)
	projecthandler.Register(api, stores.Projects, prefix, security)
	serviceshandler.Register(api, stores.Services, prefix, security)
	bloghandler.Register(api, stores.Blog, prefix, security)
}

func apiPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return ""
}
