package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/janisto/portfolio-api/internal/platform/auth"
	"github.com/janisto/portfolio-api/internal/platform/docstore"
	applog "github.com/janisto/portfolio-api/internal/platform/logging"
	"github.com/janisto/portfolio-api/internal/platform/timeutil"
)

const (
	Collection = "services"
	listLimit  = 100
)

var Indexes = []docstore.Index{
	{Collection: Collection, Field: "id", Unique: true},
	{Collection: Collection, Field: "order"},
}

type document struct {
	ID          string    `bson:"id"          firestore:"id"`
	Title       string    `bson:"title"       firestore:"title"`
	Description string    `bson:"description" firestore:"description"`
	Features    []string  `bson:"features"    firestore:"features"`
	Order       int       `bson:"order"       firestore:"order"`
	Active      bool      `bson:"active"      firestore:"active"`
	CreatedAt   time.Time `bson:"createdAt"   firestore:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"   firestore:"updatedAt"`
}

func newDocument(s Service) document {
	return document{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Features:    orEmpty(s.Features),
		Order:       s.Order,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (d document) service() Service {
	return Service{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Features:    orEmpty(d.Features),
		Order:       d.Order,
		Active:      d.Active,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (p UpdateParams) fields() docstore.Fields {
	f := docstore.Fields{}
	if p.Title != nil {
		f["title"] = *p.Title
	}
	if p.Description != nil {
		f["description"] = *p.Description
	}
	if p.Features != nil {
		f["features"] = orEmpty(*p.Features)
	}
	if p.Order != nil {
		f["order"] = *p.Order
	}
	if p.Active != nil {
		f["active"] = *p.Active
	}
	return f
}

func audit(ctx context.Context, action, id string, err error) {
	ev := applog.AuditEvent{
		Action:     action,
		Actor:      auth.ActorID(ctx),
		Resource:   "service",
		ResourceID: id,
		Result:     applog.AuditSuccess,
	}
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		ev.Result, ev.Category = applog.AuditFailure, "not_found"
	default:
		ev.Result, ev.Category = applog.AuditFailure, "internal_error"
	}
	applog.LogAuditEvent(ctx, ev)
}

func notFound(err error) error {
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// DocumentStore implements Store on a docstore collection.
type DocumentStore struct {
	col docstore.Collection[document]
}

func NewDocumentStore(db docstore.Database) *DocumentStore {
	return &DocumentStore{col: docstore.Open[document](db, Collection)}
}

func (s *DocumentStore) List(ctx context.Context) ([]Service, error) {
	docs, err := s.col.Find(ctx, docstore.Query{
		Filters: []docstore.Filter{docstore.Eq("active", true)},
		OrderBy: "order",
		Limit:   listLimit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]Service, len(docs))
	for i, d := range docs {
		out[i] = d.service()
	}
	return out, nil
}

// Get returns a service by id regardless of Active.
func (s *DocumentStore) Get(ctx context.Context, id string) (*Service, error) {
	d, err := s.col.FindOne(ctx, docstore.Eq("id", id))
	if err != nil {
		return nil, notFound(err)
	}
	svc := d.service()
	return &svc, nil
}

func (s *DocumentStore) Create(ctx context.Context, params CreateParams) (*Service, error) {
	now := timeutil.NowMillis()
	svc := Service{
		ID:          uuid.NewString(),
		Title:       params.Title,
		Description: params.Description,
		Features:    orEmpty(params.Features),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if params.Order != nil {
		svc.Order = *params.Order
	}
	if params.Active != nil {
		svc.Active = *params.Active
	}

	err := s.col.Insert(ctx, svc.ID, newDocument(svc))
	audit(ctx, "create", svc.ID, err)
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *DocumentStore) Update(ctx context.Context, id string, params UpdateParams) (*Service, error) {
	byID := docstore.Eq("id", id)
	fields := params.fields()
	current, err := s.col.FindOne(ctx, byID)
	if err == nil {
		fields["updatedAt"] = timeutil.NowMillisAfter(current.UpdatedAt)
		err = s.col.Update(ctx, []docstore.Filter{byID}, fields)
	}
	err = notFound(err)
	audit(ctx, "update", id, err)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *DocumentStore) Delete(ctx context.Context, id string) error {
	err := notFound(s.col.Delete(ctx, docstore.Eq("id", id)))
	audit(ctx, "delete", id, err)
	return err
}

// Replace empties the collection and inserts items verbatim.
func (s *DocumentStore) Replace(ctx context.Context, items []Service) error {
	if err := s.col.Clear(ctx); err != nil {
		return err
	}
	for _, svc := range items {
		if err := s.col.Insert(ctx, svc.ID, newDocument(svc)); err != nil {
			return err
		}
	}
	return nil
}

var _ Store = (*DocumentStore)(nil)
