// Command seed replaces the portfolio collections with the bundled content.
// It runs offline, never as part of the server.
//
// Flags:
//
//	--dry-run  decode the fixture without touching the store
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/janisto/portfolio-api/internal/platform/config"
	"github.com/janisto/portfolio-api/internal/platform/docstore"
	"github.com/janisto/portfolio-api/internal/platform/firebase"
	applog "github.com/janisto/portfolio-api/internal/platform/logging"
	"github.com/janisto/portfolio-api/internal/platform/timeutil"
	"github.com/janisto/portfolio-api/internal/seed"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "decode the fixture without touching the store")
	flag.Parse()
	os.Exit(run(context.Background(), *dryRun))
}

func run(ctx context.Context, dryRun bool) int {
	defer func() { _ = applog.Sync() }()

	if dryRun {
		content, err := seed.Load(timeutil.NowMillis())
		if err != nil {
			applog.LogError(ctx, "fixture invalid", err)
			return 1
		}
		applog.LogInfo(ctx, "fixture ok",
			zap.Int("projects", len(content.Projects)),
			zap.Int("services", len(content.Services)),
			zap.Int("blog_posts", len(content.Posts)))
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogError(ctx, "config load failed", err)
		return 1
	}

	opts := docstore.Options{
		Driver:   cfg.Store.Driver,
		MongoURL: cfg.Store.MongoURL,
		Database: cfg.Store.Database,
		Timeout:  cfg.Store.Timeout,
	}
	if cfg.Store.Driver == config.DriverFirestore {
		clients, err := firebase.InitializeClients(ctx, firebase.Config{
			ProjectID:                    cfg.Firebase.ProjectID,
			GoogleApplicationCredentials: cfg.Firebase.CredentialsFile,
			DatabaseID:                   cfg.Store.Database,
			EnableFirestore:              true,
		})
		if err != nil {
			applog.LogError(ctx, "firebase init failed", err)
			return 1
		}
		opts.Firestore = clients.TakeFirestore()
	}

	db, err := docstore.Connect(ctx, opts)
	if err != nil {
		applog.LogError(ctx, "store connect failed", err, zap.String("driver", cfg.Store.Driver))
		return 1
	}
	defer func() {
		if err := db.Close(ctx); err != nil {
			applog.LogError(ctx, "store close error", err)
		}
	}()

	applog.LogInfo(ctx, "seeding started", zap.String("driver", cfg.Store.Driver))
	if err := seed.Run(ctx, db); err != nil {
		applog.LogError(ctx, "seeding finished with errors", err)
		return 1
	}
	applog.LogInfo(ctx, "seeding completed")
	return 0
}
