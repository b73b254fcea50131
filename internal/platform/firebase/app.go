// Package firebase initializes Firebase Admin SDK clients.
package firebase

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Config holds Firebase settings.
type Config struct {
	ProjectID                    string
	GoogleApplicationCredentials string // path to a service account JSON file
	// DatabaseID selects a named Firestore database; empty means "(default)".
	DatabaseID string
	// EnableAuth and EnableFirestore select which clients are created.
	EnableAuth      bool
	EnableFirestore bool
}

// Clients holds initialized Firebase clients. Unrequested clients are nil.
type Clients struct {
	Auth      *auth.Client
	Firestore *firestore.Client
}

// InitializeClients creates the requested clients.
func InitializeClients(ctx context.Context, cfg Config) (*Clients, error) {
	var opts []option.ClientOption
	if cfg.GoogleApplicationCredentials != "" {
		creds, err := os.ReadFile(cfg.GoogleApplicationCredentials)
		if err != nil {
			return nil, fmt.Errorf("read credentials: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(creds))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}

	clients := &Clients{}
	if cfg.EnableAuth {
		if clients.Auth, err = app.Auth(ctx); err != nil {
			return nil, fmt.Errorf("firebase auth: %w", err)
		}
	}
	if cfg.EnableFirestore {
		if cfg.DatabaseID != "" {
			clients.Firestore, err = firestore.NewClientWithDatabase(ctx, cfg.ProjectID, cfg.DatabaseID, opts...)
		} else {
			clients.Firestore, err = app.Firestore(ctx)
		}
		if err != nil {
			return nil, fmt.Errorf("firestore: %w", err)
		}
	}
	return clients, nil
}

// TakeFirestore hands the Firestore client to a new owner. Close no longer
// touches it afterwards.
func (c *Clients) TakeFirestore() *firestore.Client {
	fs := c.Firestore
	c.Firestore = nil
	return fs
}

// Close closes the Firestore client unless it was taken.
func (c *Clients) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}
