package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/janisto/portfolio-api/internal/http/health"
	"github.com/janisto/portfolio-api/internal/http/v1/routes"
	"github.com/janisto/portfolio-api/internal/platform/auth"
	"github.com/janisto/portfolio-api/internal/platform/config"
	"github.com/janisto/portfolio-api/internal/platform/docstore"
	"github.com/janisto/portfolio-api/internal/platform/firebase"
	applog "github.com/janisto/portfolio-api/internal/platform/logging"
	"github.com/janisto/portfolio-api/internal/platform/metrics"
	appmiddleware "github.com/janisto/portfolio-api/internal/platform/middleware"
	"github.com/janisto/portfolio-api/internal/platform/respond"
	blogsvc "github.com/janisto/portfolio-api/internal/service/blog"
	profilesvc "github.com/janisto/portfolio-api/internal/service/profile"
	projectsvc "github.com/janisto/portfolio-api/internal/service/project"
	servicesvc "github.com/janisto/portfolio-api/internal/service/services"
	statussvc "github.com/janisto/portfolio-api/internal/service/status"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "1.0.0"

const (
	apiPrefix = "/api"
	docsPath  = "/docs"
)

func main() {
	ctx := context.Background()
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(ctx, "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(ctx, "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogFatal(ctx, "config load failed", err)
	}

	var clients *firebase.Clients
	if cfg.Store.Driver == config.DriverFirestore || cfg.Auth.Enabled {
		clients, err = firebase.InitializeClients(ctx, firebase.Config{
			ProjectID:                    cfg.Firebase.ProjectID,
			GoogleApplicationCredentials: cfg.Firebase.CredentialsFile,
			DatabaseID:                   cfg.Store.Database,
			EnableAuth:                   cfg.Auth.Enabled,
			EnableFirestore:              cfg.Store.Driver == config.DriverFirestore,
		})
		if err != nil {
			applog.LogFatal(ctx, "firebase init failed", err)
		}
	}

	storeOpts := docstore.Options{
		Driver:   cfg.Store.Driver,
		MongoURL: cfg.Store.MongoURL,
		Database: cfg.Store.Database,
		Timeout:  cfg.Store.Timeout,
	}
	if clients != nil {
		storeOpts.Firestore = clients.TakeFirestore()
	}
	db, err := docstore.Connect(ctx, storeOpts)
	if err != nil {
		applog.LogFatal(ctx, "store connect failed", err, zap.String("driver", cfg.Store.Driver))
	}
	if err := db.EnsureIndexes(ctx, indexes()); err != nil {
		applog.LogFatal(ctx, "store index setup failed", err)
	}

	var verifier auth.Verifier
	if cfg.Auth.Enabled {
		verifier = auth.NewFirebaseVerifier(clients.Auth)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterCollectors(reg)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           newHandler(cfg, db, verifier, reg),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(ctx, "server listening",
			zap.String("addr", srv.Addr), zap.String("driver", cfg.Store.Driver), zap.Bool("admin_auth", cfg.Auth.Enabled))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(ctx, "listen failed", err, zap.String("addr", srv.Addr))
	case <-stop:
		applog.LogInfo(ctx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		applog.LogError(shutdownCtx, "server shutdown error", err)
	}
	if err := db.Close(shutdownCtx); err != nil {
		applog.LogError(shutdownCtx, "store close error", err)
	}
	if clients != nil {
		if err := clients.Close(); err != nil {
			applog.LogError(shutdownCtx, "firebase close error", err)
		}
	}
	applog.LogInfo(ctx, "server exited")
}

func indexes() []docstore.Index {
	var all []docstore.Index
	all = append(all, projectsvc.Indexes...)
	all = append(all, servicesvc.Indexes...)
	all = append(all, blogsvc.Indexes...)
	return all
}

// newHandler builds the full router: base middleware, the huma API under
// /api, plus /health, /metrics and a /docs redirect at the root.
func newHandler(cfg *config.Config, db docstore.Database, verifier auth.Verifier, gatherer prometheus.Gatherer) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security(apiPrefix+docsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(cfg.CORS.AllowedOrigins()),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		metrics.Middleware,
		appmiddleware.NewWriteLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).Middleware,
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler(db))
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	router.Get(docsPath, func(w http.ResponseWriter, r *http.Request) {
		respond.WriteRedirect(w, r, apiPrefix+docsPath, http.StatusMovedPermanently)
	})

	apiRouter := chi.NewRouter()
	apiRouter.NotFound(respond.NotFoundHandler())
	apiRouter.MethodNotAllowed(respond.MethodNotAllowedHandler())

	humaCfg := huma.DefaultConfig("Portfolio API", Version)
	humaCfg.Servers = []*huma.Server{{URL: apiPrefix}}
	humaCfg.DocsPath = docsPath
	if verifier != nil {
		humaCfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
			auth.SchemeName: auth.SecurityScheme(),
		}
	}
	api := humachi.New(apiRouter, humaCfg)
	addCBORContentTypes(api)

	routes.Register(api, Version, verifier, routes.Stores{
		Profile:  profilesvc.NewDocumentStore(db),
		Projects: projectsvc.NewDocumentStore(db),
		Services: servicesvc.NewDocumentStore(db),
		Blog:     blogsvc.NewDocumentStore(db),
		Status:   statussvc.NewDocumentStore(db),
	})

	router.Mount(apiPrefix, apiRouter)
	return router
}

// addCBORContentTypes advertises CBOR alongside JSON for every operation in
// the OpenAPI document.
func addCBORContentTypes(api huma.API) {
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)
}
