package project

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

// Collection is the backing collection name.
const Collection = "projects"

const listLimit = 100

// Indexes backs the id lookup and the list sort.
var Indexes = []docstore.Index{
	{Collection: Collection, Field: "id", Unique: true},
	{Collection: Collection, Field: "order"},
}

type document struct {
	ID          string    `bson:"id"          firestore:"id"`
	Title       string    `bson:"title"       firestore:"title"`
	Description string    `bson:"description" firestore:"description"`
	Impact      string    `bson:"impact"      firestore:"impact"`
	TechStack   []string  `bson:"techStack"   firestore:"techStack"`
	Category    string    `bson:"category"    firestore:"category"`
	Featured    bool      `bson:"featured"    firestore:"featured"`
	Order       int       `bson:"order"       firestore:"order"`
	CreatedAt   time.Time `bson:"createdAt"   firestore:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"   firestore:"updatedAt"`
}

func (d document) project() Project {
	tech := d.TechStack
	if tech == nil {
		tech = []string{}
	}
	return Project{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Impact:      d.Impact,
		Category:    d.Category,
		TechStack:   tech,
		Featured:    d.Featured,
		Order:       d.Order,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (p UpdateParams) fields() docstore.Fields {
	f := docstore.Fields{}
	if p.Title != nil {
		f["title"] = *p.Title
	}
	if p.Description != nil {
		f["description"] = *p.Description
	}
	if p.Impact != nil {
		f["impact"] = *p.Impact
	}
	if p.Category != nil {
		f["category"] = *p.Category
	}
	if p.TechStack != nil {
		f["techStack"] = nonNil(*p.TechStack)
	}
	if p.Featured != nil {
		f["featured"] = *p.Featured
	}
	if p.Order != nil {
		f["order"] = *p.Order
	}
	return f
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	if errors.Is(err, ErrNotFound) {
		return "not_found"
	}
	return "internal_error"
}

func audit(ctx context.Context, action, id string, err error) {
	ev := applog.AuditEvent{
		Action:     action,
		Actor:      auth.ActorID(ctx),
		Resource:   "project",
		ResourceID: id,
		Result:     applog.AuditSuccess,
	}
	if err != nil {
		ev.Result = applog.AuditFailure
		ev.Category = categorizeError(err)
	}
	applog.LogAuditEvent(ctx, ev)
}

func translate(err error) error {
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// DocumentStore implements Store on a docstore collection.
type DocumentStore struct {
	col docstore.Collection[document]
}

// NewDocumentStore opens the projects collection of db.
func NewDocumentStore(db docstore.Database) *DocumentStore {
	return &DocumentStore{col: docstore.Open[document](db, Collection)}
}

func (s *DocumentStore) List(ctx context.Context) ([]Project, error) {
	docs, err := s.col.Find(ctx, docstore.Query{
		Filters: []docstore.Filter{docstore.Eq("featured", true)},
		OrderBy: "order",
		Limit:   listLimit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]Project, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.project())
	}
	return out, nil
}

func (s *DocumentStore) Get(ctx context.Context, id string) (*Project, error) {
	d, err := s.col.FindOne(ctx, docstore.Eq("id", id))
	if err != nil {
		return nil, translate(err)
	}
	p := d.project()
	return &p, nil
}

func (s *DocumentStore) Create(ctx context.Context, params CreateParams) (*Project, error) {
	now := timeutil.NowMillis()
	d := document{
		ID:          uuid.NewString(),
		Title:       params.Title,
		Description: params.Description,
		Impact:      params.Impact,
		TechStack:   nonNil(params.TechStack),
		Category:    params.Category,
		Featured:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if params.Featured != nil {
		d.Featured = *params.Featured
	}
	if params.Order != nil {
		d.Order = *params.Order
	}

	err := s.col.Insert(ctx, d.ID, d)
	audit(ctx, "create", d.ID, err)
	if err != nil {
		return nil, err
	}
	p := d.project()
	return &p, nil
}

// Update applies the supplied fields and returns the stored result. A delete
// racing the re-read surfaces as ErrNotFound.
func (s *DocumentStore) Update(ctx context.Context, id string, params UpdateParams) (*Project, error) {
	byID := docstore.Eq("id", id)
	fields := params.fields()
	current, err := s.col.FindOne(ctx, byID)
	if err == nil {
		fields["updatedAt"] = timeutil.NowMillisAfter(current.UpdatedAt)
		err = s.col.Update(ctx, []docstore.Filter{byID}, fields)
	}
	err = translate(err)
	audit(ctx, "update", id, err)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *DocumentStore) Delete(ctx context.Context, id string) error {
	err := translate(s.col.Delete(ctx, docstore.Eq("id", id)))
	audit(ctx, "delete", id, err)
	return err
}

// Replace empties the collection and inserts items as given, keeping their
// ids and timestamps.
func (s *DocumentStore) Replace(ctx context.Context, items []Project) error {
	if err := s.col.Clear(ctx); err != nil {
		return err
	}
	for _, p := range items {
		d := document{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Impact:      p.Impact,
			TechStack:   nonNil(p.TechStack),
			Category:    p.Category,
			Featured:    p.Featured,
			Order:       p.Order,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		}
		if err := s.col.Insert(ctx, d.ID, d); err != nil {
			return err
		}
	}
	return nil
}

var _ Store = (*DocumentStore)(nil)
