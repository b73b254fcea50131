package docstore

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestMemoryCollection(t *testing.T) {
	runCollectionSuite(t, NewMemoryDatabase(), "docs")
}

func TestMemoryFindKeepsInsertionOrderWithoutSort(t *testing.T) {
	col := Open[testDoc](NewMemoryDatabase(), "docs")
	ctx := context.Background()
	for _, id := range []string{"z", "m", "a"} {
		if err := col.Insert(ctx, id, testDoc{ID: id}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	docs, err := col.Find(ctx, Query{})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if ids(docs) != "z,m,a" {
		t.Fatalf("expected insertion order, got %s", ids(docs))
	}
}

func TestMemoryStableSortOnTies(t *testing.T) {
	col := Open[testDoc](NewMemoryDatabase(), "docs")
	ctx := context.Background()
	for _, d := range []testDoc{{ID: "1", Order: 1}, {ID: "2", Order: 0}, {ID: "3", Order: 1}} {
		if err := col.Insert(ctx, d.ID, d); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	docs, err := col.Find(ctx, Query{OrderBy: "order"})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if ids(docs) != "2,1,3" {
		t.Fatalf("expected 2,1,3 got %s", ids(docs))
	}
}

func TestMemoryFilterMatchesIntAcrossWidths(t *testing.T) {
	col := Open[testDoc](NewMemoryDatabase(), "docs")
	ctx := context.Background()
	if err := col.Insert(ctx, "x", testDoc{ID: "x", Order: 5}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := col.FindOne(ctx, Eq("order", int64(5))); err != nil {
		t.Fatalf("expected int64 filter to match stored int: %v", err)
	}
}

func TestMemoryInsertWithoutIDGeneratesKey(t *testing.T) {
	col := Open[testDoc](NewMemoryDatabase(), "docs")
	ctx := context.Background()
	for range 2 {
		if err := col.Insert(ctx, "", testDoc{Name: "anon"}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	docs, _ := col.Find(ctx, Query{})
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}
}

func TestMemoryFindOneWithoutFilters(t *testing.T) {
	col := Open[testDoc](NewMemoryDatabase(), "profile")
	ctx := context.Background()
	if _, err := col.FindOne(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty collection, got %v", err)
	}
	if err := col.Insert(ctx, "", testDoc{Name: "only"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	got, err := col.FindOne(ctx)
	if err != nil || got.Name != "only" {
		t.Fatalf("expected singleton, got %+v %v", got, err)
	}
	if err := col.Update(ctx, nil, Fields{"name": "renamed"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = col.FindOne(ctx)
	if got.Name != "renamed" {
		t.Fatalf("expected renamed, got %s", got.Name)
	}
}

func TestMemoryCanceledContext(t *testing.T) {
	col := Open[testDoc](NewMemoryDatabase(), "docs")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := col.Find(ctx, Query{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if err := col.Insert(ctx, "a", testDoc{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMemoryPingError(t *testing.T) {
	db := NewMemoryDatabase()
	if err := db.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected ping error: %v", err)
	}
	db.SetPingError(errors.New("down"))
	if err := db.Ping(context.Background()); err == nil {
		t.Fatal("expected ping error")
	}
}

func TestMemoryConcurrentInserts(t *testing.T) {
	col := Open[testDoc](NewMemoryDatabase(), "docs")
	ctx := context.Background()
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = col.Insert(ctx, "", testDoc{Name: "n"})
		}()
	}
	wg.Wait()
	docs, err := col.Find(ctx, Query{})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(docs) != 50 {
		t.Fatalf("expected 50 docs, got %d", len(docs))
	}
}

func TestConnectUnknownDriver(t *testing.T) {
	if _, err := Connect(context.Background(), Options{Driver: "sqlite"}); err == nil {
		t.Fatal("expected error for unknown driver")
	}
	if _, err := Connect(context.Background(), Options{Driver: "firestore"}); err == nil {
		t.Fatal("expected error without firestore client")
	}
	db, err := Connect(context.Background(), Options{Driver: "memory"})
	if err != nil {
		t.Fatalf("connect memory: %v", err)
	}
	if _, ok := db.(*MemoryDatabase); !ok {
		t.Fatalf("expected memory database, got %T", db)
	}
}
