package docstore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreDatabase is a Database backed by a Firestore client. Document IDs
// equal entity ids.
//
// Equality filters combined with OrderBy on another field need composite
// indexes in production; the emulator creates them on demand.
type FirestoreDatabase struct {
	client *firestore.Client
}

// NewFirestoreDatabase wraps client. Close closes it.
func NewFirestoreDatabase(client *firestore.Client) *FirestoreDatabase {
	return &FirestoreDatabase{client: client}
}

func (d *FirestoreDatabase) driver() string { return "firestore" }

// Ping lists at most one collection.
func (d *FirestoreDatabase) Ping(ctx context.Context) error {
	_, err := d.client.Collections(ctx).Next()
	if errors.Is(err, iterator.Done) {
		return nil
	}
	return err
}

func (d *FirestoreDatabase) Close(context.Context) error {
	return d.client.Close()
}

// EnsureIndexes is a no-op; Firestore indexes are declared in firestore.indexes.json.
func (d *FirestoreDatabase) EnsureIndexes(context.Context, []Index) error {
	return nil
}

type firestoreCollection[T any] struct {
	client *firestore.Client
	name   string
}

func (c *firestoreCollection[T]) query(filters []Filter) firestore.Query {
	q := c.client.Collection(c.name).Query
	for _, f := range filters {
		q = q.Where(f.Field, "==", f.Value)
	}
	return q
}

func (c *firestoreCollection[T]) Find(ctx context.Context, qry Query) ([]T, error) {
	q := c.query(qry.Filters)
	if qry.OrderBy != "" {
		dir := firestore.Asc
		if qry.Direction == Descending {
			dir = firestore.Desc
		}
		q = q.OrderBy(qry.OrderBy, dir)
	}
	if qry.Limit > 0 {
		q = q.Limit(qry.Limit)
	}
	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(snaps))
	for _, snap := range snaps {
		var doc T
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func (c *firestoreCollection[T]) FindOne(ctx context.Context, filters ...Filter) (*T, error) {
	snaps, err := c.query(filters).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, ErrNotFound
	}
	var doc T
	if err := snaps[0].DataTo(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *firestoreCollection[T]) Insert(ctx context.Context, id string, doc T) error {
	ref := c.client.Collection(c.name).NewDoc()
	if id != "" {
		ref = c.client.Collection(c.name).Doc(id)
	}
	_, err := ref.Create(ctx, doc)
	if status.Code(err) == codes.AlreadyExists {
		return ErrAlreadyExists
	}
	return err
}

func (c *firestoreCollection[T]) Update(ctx context.Context, filters []Filter, fields Fields) error {
	q := c.query(filters).Limit(1)
	return c.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snaps, err := tx.Documents(q).GetAll()
		if err != nil {
			return err
		}
		if len(snaps) == 0 {
			return ErrNotFound
		}
		if len(fields) == 0 {
			return nil
		}
		updates := make([]firestore.Update, 0, len(fields))
		for path, v := range fields {
			updates = append(updates, firestore.Update{Path: path, Value: v})
		}
		return tx.Update(snaps[0].Ref, updates)
	})
}

func (c *firestoreCollection[T]) Delete(ctx context.Context, filters ...Filter) error {
	q := c.query(filters).Limit(1)
	return c.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snaps, err := tx.Documents(q).GetAll()
		if err != nil {
			return err
		}
		if len(snaps) == 0 {
			return ErrNotFound
		}
		return tx.Delete(snaps[0].Ref)
	})
}

func (c *firestoreCollection[T]) Clear(ctx context.Context) error {
	refs, err := c.client.Collection(c.name).DocumentRefs(ctx).GetAll()
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		return nil
	}
	bw := c.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(refs))
	for _, ref := range refs {
		job, err := bw.Delete(ref)
		if err != nil {
			bw.End()
			return err
		}
		jobs = append(jobs, job)
	}
	bw.End()
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return err
		}
	}
	return nil
}
