// Package docstore is a small document-store abstraction over MongoDB,
// Firestore and an in-process memory backend. It supports exactly what the
// resource stores need: equality filters, a single sort key and a limit.
package docstore

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no document matches.
	ErrNotFound = errors.New("docstore: document not found")
	// ErrAlreadyExists is returned when inserting a duplicate id.
	ErrAlreadyExists = errors.New("docstore: document already exists")
)

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Filter matches documents whose Field equals Value.
type Filter struct {
	Field string
	Value any
}

// Eq builds an equality filter.
func Eq(field string, value any) Filter {
	return Filter{Field: field, Value: value}
}

// Query selects documents. Zero Limit means unlimited; empty OrderBy leaves
// the backend's natural order.
type Query struct {
	Filters   []Filter
	OrderBy   string
	Direction Direction
	Limit     int
}

// Fields maps stored field names to new values for a partial update.
type Fields map[string]any

// Index declares a single-field index.
type Index struct {
	Collection string
	Field      string
	Direction  Direction
	Unique     bool
}

// Collection is a typed view over one collection. T must carry both bson and
// firestore struct tags with identical field names.
type Collection[T any] interface {
	Find(ctx context.Context, q Query) ([]T, error)
	// FindOne returns the first match or ErrNotFound.
	FindOne(ctx context.Context, filters ...Filter) (*T, error)
	Insert(ctx context.Context, id string, doc T) error
	// Update sets fields on the first match or returns ErrNotFound.
	Update(ctx context.Context, filters []Filter, fields Fields) error
	// Delete removes the first match or returns ErrNotFound.
	Delete(ctx context.Context, filters ...Filter) error
	// Clear removes every document in the collection.
	Clear(ctx context.Context) error
}

// Database owns the backend client.
type Database interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	EnsureIndexes(ctx context.Context, indexes []Index) error
	driver() string
}

// Open returns the named collection of db, instrumented with metrics.
func Open[T any](db Database, name string) Collection[T] {
	var c Collection[T]
	switch d := db.(type) {
	case *MongoDatabase:
		c = &mongoCollection[T]{col: d.db.Collection(name)}
	case *FirestoreDatabase:
		c = &firestoreCollection[T]{client: d.client, name: name}
	case *MemoryDatabase:
		c = &memoryCollection[T]{db: d, name: name}
	default:
		panic("docstore: unsupported database " + db.driver())
	}
	return &instrumentedCollection[T]{next: c, name: name}
}
