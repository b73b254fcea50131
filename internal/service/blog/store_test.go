package blog

import (
	"context"
	"errors"
	"reflect"
	"slices"
	"testing"
	"time"

	"github.com/janisto/portfolio-api/internal/platform/docstore"
)

func newStore(t *testing.T) *DocumentStore {
	t.Helper()
	return NewDocumentStore(docstore.NewMemoryDatabase())
}

func ptr[T any](v T) *T { return &v }

func TestCreateDefaults(t *testing.T) {
	s := newStore(t)
	p, err := s.Create(context.Background(), CreateParams{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Author != DefaultAuthor {
		t.Fatalf("expected default author, got %q", p.Author)
	}
	if p.Status != StatusPublished || p.Featured {
		t.Fatalf("unexpected defaults status=%q featured=%v", p.Status, p.Featured)
	}
	if !p.PublishDate.Equal(p.CreatedAt) || !p.CreatedAt.Equal(p.UpdatedAt) {
		t.Fatalf("expected publishDate == createdAt == updatedAt, got %v %v %v", p.PublishDate, p.CreatedAt, p.UpdatedAt)
	}
	if p.Tags == nil {
		t.Fatal("expected empty tags slice")
	}
}

func TestCreateKeepsSuppliedAuthorAndDate(t *testing.T) {
	s := newStore(t)
	when := time.Date(2024, 6, 1, 9, 0, 0, 0, time.FixedZone("X", 3600))
	p, err := s.Create(context.Background(), CreateParams{Title: "t", Author: ptr("Guest"), PublishDate: &when})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Author != "Guest" || !p.PublishDate.Equal(when) || p.PublishDate.Location() != time.UTC {
		t.Fatalf("unexpected post %+v", p)
	}
}

func TestCreateKeepsExplicitEmptyAuthor(t *testing.T) {
	s := newStore(t)
	p, err := s.Create(context.Background(), CreateParams{Title: "t", Author: ptr("")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Author != "" {
		t.Fatalf("expected empty author kept, got %q", p.Author)
	}
	stored, err := s.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Author != "" {
		t.Fatalf("expected empty author stored, got %q", stored.Author)
	}
}

func TestDraftHiddenFromReaders(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	draft, _ := s.Create(ctx, CreateParams{Title: "draft", Status: StatusDraft})

	if _, err := s.Get(ctx, draft.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for draft, got %v", err)
	}
	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}
}

func TestDraftEditableByID(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	draft, _ := s.Create(ctx, CreateParams{Title: "draft", Status: StatusDraft})

	got, err := s.Update(ctx, draft.ID, UpdateParams{Title: ptr("renamed")})
	if err != nil {
		t.Fatalf("update draft: %v", err)
	}
	if got.Title != "renamed" || got.Status != StatusDraft {
		t.Fatalf("unexpected update result %+v", got)
	}

	got, err = s.Update(ctx, draft.ID, UpdateParams{Status: ptr(StatusPublished)})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if _, err := s.Get(ctx, got.ID); err != nil {
		t.Fatalf("expected published post readable: %v", err)
	}

	if err := s.Delete(ctx, draft.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"old", "newest", "middle"} {
		offset := []int{0, 48, 24}[i]
		when := base.Add(time.Duration(offset) * time.Hour)
		if _, err := s.Create(ctx, CreateParams{Title: title, PublishDate: &when}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var titles []string
	for _, p := range list {
		titles = append(titles, p.Title)
	}
	if !slices.Equal(titles, []string{"newest", "middle", "old"}) {
		t.Fatalf("unexpected order %v", titles)
	}
}

func TestUpdateTagsToEmpty(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	p, _ := s.Create(ctx, CreateParams{Title: "t", Tags: []string{"go", "ai"}, Featured: true})

	got, err := s.Update(ctx, p.ID, UpdateParams{Tags: ptr([]string{}), Featured: ptr(false)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(got.Tags) != 0 || got.Featured || got.Title != "t" {
		t.Fatalf("unexpected update result %+v", got)
	}
}

func TestMissingPost(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	if _, err := s.Update(ctx, "missing", UpdateParams{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update: expected ErrNotFound, got %v", err)
	}
	if err := s.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete: expected ErrNotFound, got %v", err)
	}
}

func TestReplace(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	_, _ = s.Create(ctx, CreateParams{Title: "before"})

	when := time.Date(2025, 7, 27, 0, 0, 0, 0, time.UTC)
	err := s.Replace(ctx, []Post{{ID: "ai-is-now", Title: "AI is now", Status: StatusPublished, PublishDate: when}})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	got, err := s.Get(ctx, "ai-is-now")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.PublishDate.Equal(when) {
		t.Fatalf("unexpected publish date %v", got.PublishDate)
	}
	list, _ := s.List(ctx)
	if len(list) != 1 {
		t.Fatalf("expected 1 post, got %d", len(list))
	}
}

func TestUpdateEmptyPayloadOnlyTouchesUpdatedAt(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	when := time.Date(2025, 7, 27, 0, 0, 0, 0, time.UTC)
	created, err := s.Create(ctx, CreateParams{
		Title:       "AI is now",
		Excerpt:     "e",
		Content:     "c",
		Category:    "Strategic Insights",
		ReadTime:    "8 min read",
		Author:      ptr("Guest"),
		PublishDate: &when,
		Featured:    true,
		Tags:        []string{"AI", "Strategy"},
		Status:      StatusDraft,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.Update(ctx, created.ID, UpdateParams{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !got.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("expected updatedAt after %v, got %v", created.UpdatedAt, got.UpdatedAt)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) || !got.PublishDate.Equal(created.PublishDate) {
		t.Fatalf("timestamps changed: %+v", got)
	}
	got.UpdatedAt, got.CreatedAt, got.PublishDate = created.UpdatedAt, created.CreatedAt, created.PublishDate
	if !reflect.DeepEqual(*got, *created) {
		t.Fatalf("expected other fields untouched:\n got %+v\nwant %+v", *got, *created)
	}
}
