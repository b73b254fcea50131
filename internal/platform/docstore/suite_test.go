package docstore

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testDoc struct {
	ID     string    `bson:"id"     firestore:"id"`
	Name   string    `bson:"name"   firestore:"name"`
	Order  int       `bson:"order"  firestore:"order"`
	Active bool      `bson:"active" firestore:"active"`
	Tags   []string  `bson:"tags"   firestore:"tags"`
	At     time.Time `bson:"at"     firestore:"at"`
}

// runCollectionSuite checks the behavior every backend must share.
func runCollectionSuite(t *testing.T, db Database, name string) {
	t.Helper()
	ctx := context.Background()

	if err := db.EnsureIndexes(ctx, []Index{{Collection: name, Field: "id", Unique: true}}); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	col := Open[testDoc](db, name)
	at := time.Date(2025, 7, 27, 8, 15, 30, 123000000, time.UTC)

	for _, d := range []testDoc{
		{ID: "a", Name: "alpha", Order: 2, Active: true, Tags: []string{"x"}, At: at},
		{ID: "b", Name: "bravo", Order: 1, Active: false, At: at.Add(time.Hour)},
		{ID: "c", Name: "charlie", Order: 0, Active: true, At: at.Add(-time.Hour)},
	} {
		if err := col.Insert(ctx, d.ID, d); err != nil {
			t.Fatalf("insert %s: %v", d.ID, err)
		}
	}

	if err := col.Insert(ctx, "a", testDoc{ID: "a"}); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	active, err := col.Find(ctx, Query{Filters: []Filter{Eq("active", true)}, OrderBy: "order"})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if ids(active) != "c,a" {
		t.Fatalf("expected c,a got %s", ids(active))
	}

	newest, err := col.Find(ctx, Query{OrderBy: "at", Direction: Descending, Limit: 2})
	if err != nil {
		t.Fatalf("find desc: %v", err)
	}
	if ids(newest) != "b,a" {
		t.Fatalf("expected b,a got %s", ids(newest))
	}

	got, err := col.FindOne(ctx, Eq("id", "a"))
	if err != nil {
		t.Fatalf("find one: %v", err)
	}
	if got.Name != "alpha" || !got.At.Equal(at) || len(got.Tags) != 1 {
		t.Fatalf("unexpected document %+v", got)
	}
	if _, err := col.FindOne(ctx, Eq("id", "missing")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := col.Update(ctx, []Filter{Eq("id", "b")}, Fields{"active": true, "tags": []string{}}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = col.FindOne(ctx, Eq("id", "b"))
	if err != nil {
		t.Fatalf("find updated: %v", err)
	}
	if !got.Active || len(got.Tags) != 0 || got.Name != "bravo" || got.Order != 1 {
		t.Fatalf("unexpected updated document %+v", got)
	}
	if err := col.Update(ctx, []Filter{Eq("id", "missing")}, Fields{"name": "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}

	if err := col.Delete(ctx, Eq("id", "a")); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := col.Delete(ctx, Eq("id", "a")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	if err := col.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	rest, err := col.Find(ctx, Query{})
	if err != nil {
		t.Fatalf("find after clear: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("expected empty collection, got %d", len(rest))
	}
}

func ids(docs []testDoc) string {
	out := ""
	for i, d := range docs {
		if i > 0 {
			out += ","
		}
		out += d.ID
	}
	return out
}
