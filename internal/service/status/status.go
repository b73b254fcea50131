// Package status keeps the legacy client status check log.
package status

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/janisto/portfolio-api/internal/platform/docstore"
	"github.com/janisto/portfolio-api/internal/platform/timeutil"
)

// Collection is the backing collection name.
const Collection = "status_checks"

const listLimit = 1000

// Check records that a client called in.
type Check struct {
	ID         string    `bson:"id"          firestore:"id"`
	ClientName string    `bson:"client_name" firestore:"client_name"`
	Timestamp  time.Time `bson:"timestamp"   firestore:"timestamp"`
}

// Store defines status check operations.
type Store interface {
	Create(ctx context.Context, clientName string) (*Check, error)
	// List returns up to 1000 checks in the backend's natural order.
	List(ctx context.Context) ([]Check, error)
}

// DocumentStore implements Store on a docstore collection.
type DocumentStore struct {
	col docstore.Collection[Check]
}

func NewDocumentStore(db docstore.Database) *DocumentStore {
	return &DocumentStore{col: docstore.Open[Check](db, Collection)}
}

func (s *DocumentStore) Create(ctx context.Context, clientName string) (*Check, error) {
	c := Check{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  timeutil.NowMillis(),
	}
	if err := s.col.Insert(ctx, c.ID, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *DocumentStore) List(ctx context.Context) ([]Check, error) {
	return s.col.Find(ctx, docstore.Query{Limit: listLimit})
}

var _ Store = (*DocumentStore)(nil)
