package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/janisto/portfolio-api/internal/platform/mongodb"
)

// Options selects and configures a backend.
type Options struct {
	Driver   string // mongodb, firestore or memory
	MongoURL string
	Database string
	Timeout  time.Duration
	// Firestore is the client used by the firestore driver. Ownership moves
	// to the returned Database.
	Firestore *firestore.Client
}

// Connect opens the configured backend.
func Connect(ctx context.Context, opts Options) (Database, error) {
	switch opts.Driver {
	case "mongodb":
		client, err := mongodb.Connect(ctx, opts.MongoURL, opts.Timeout)
		if err != nil {
			return nil, err
		}
		return NewMongoDatabase(client, opts.Database), nil
	case "firestore":
		if opts.Firestore == nil {
			return nil, errors.New("docstore: firestore driver requires a client")
		}
		return NewFirestoreDatabase(opts.Firestore), nil
	case "memory":
		return NewMemoryDatabase(), nil
	default:
		return nil, fmt.Errorf("docstore: unknown driver %q", opts.Driver)
	}
}
