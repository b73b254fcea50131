package docstore

import (
	"context"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/janisto/portfolio-api/internal/testutil"
)

func setupFirestore(t *testing.T) *FirestoreDatabase {
	t.Helper()
	testutil.SkipIfFirestoreUnavailable(t)
	testutil.SetupEmulator(t)
	testutil.ClearFirestore(t)

	client, err := firestore.NewClient(context.Background(), testutil.ProjectID)
	if err != nil {
		t.Fatalf("firestore client: %v", err)
	}
	db := NewFirestoreDatabase(client)
	t.Cleanup(func() { _ = db.Close(context.Background()) })
	return db
}

func TestFirestoreCollection(t *testing.T) {
	db := setupFirestore(t)
	runCollectionSuite(t, db, "docs_"+uuid.NewString()[:8])
}

func TestFirestorePing(t *testing.T) {
	db := setupFirestore(t)
	if err := db.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
