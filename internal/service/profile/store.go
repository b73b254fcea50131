package profile

import (
	"context"
	"errors"
	"time"

	"github.com/janisto/portfolio-api/internal/platform/auth"
	"github.com/janisto/portfolio-api/internal/platform/docstore"
	applog "github.com/janisto/portfolio-api/internal/platform/logging"
	"github.com/janisto/portfolio-api/internal/platform/timeutil"
)

// Collection is the backing collection name.
const Collection = "profile"

type document struct {
	Name        string    `bson:"name"        firestore:"name"`
	Title       string    `bson:"title"       firestore:"title"`
	Subtitle    string    `bson:"subtitle"    firestore:"subtitle"`
	Location    string    `bson:"location"    firestore:"location"`
	Email       string    `bson:"email"       firestore:"email"`
	Phone       string    `bson:"phone"       firestore:"phone"`
	LinkedIn    string    `bson:"linkedin"    firestore:"linkedin"`
	Bio         string    `bson:"bio"         firestore:"bio"`
	Experience  string    `bson:"experience"  firestore:"experience"`
	TeamLed     string    `bson:"teamLed"     firestore:"teamLed"`
	CostSavings string    `bson:"costSavings" firestore:"costSavings"`
	UpdatedAt   time.Time `bson:"updatedAt"   firestore:"updatedAt"`
}

func (d document) profile() Profile {
	return Profile(d)
}

func (p UpdateParams) fields() docstore.Fields {
	f := docstore.Fields{}
	for key, v := range map[string]*string{
		"name":        p.Name,
		"title":       p.Title,
		"subtitle":    p.Subtitle,
		"location":    p.Location,
		"email":       p.Email,
		"phone":       p.Phone,
		"linkedin":    p.LinkedIn,
		"bio":         p.Bio,
		"experience":  p.Experience,
		"teamLed":     p.TeamLed,
		"costSavings": p.CostSavings,
	} {
		if v != nil {
			f[key] = *v
		}
	}
	return f
}

func translate(err error) error {
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// DocumentStore implements Store on a docstore collection holding at most
// one document.
type DocumentStore struct {
	col docstore.Collection[document]
}

// NewDocumentStore opens the profile collection of db.
func NewDocumentStore(db docstore.Database) *DocumentStore {
	return &DocumentStore{col: docstore.Open[document](db, Collection)}
}

func (s *DocumentStore) Get(ctx context.Context) (*Profile, error) {
	d, err := s.col.FindOne(ctx)
	if err != nil {
		return nil, translate(err)
	}
	p := d.profile()
	return &p, nil
}

func (s *DocumentStore) Update(ctx context.Context, params UpdateParams) (*Profile, error) {
	fields := params.fields()
	current, err := s.col.FindOne(ctx)
	if err == nil {
		fields["updatedAt"] = timeutil.NowMillisAfter(current.UpdatedAt)
		err = s.col.Update(ctx, nil, fields)
	}
	err = translate(err)

	ev := applog.AuditEvent{
		Action:   "update",
		Actor:    auth.ActorID(ctx),
		Resource: "profile",
		Result:   applog.AuditSuccess,
	}
	if err != nil {
		ev.Result = applog.AuditFailure
		ev.Category = "internal_error"
		if errors.Is(err, ErrNotFound) {
			ev.Category = "not_found"
		}
	}
	applog.LogAuditEvent(ctx, ev)

	if err != nil {
		return nil, err
	}
	return s.Get(ctx)
}

// Replace empties the collection and stores p as the only profile.
func (s *DocumentStore) Replace(ctx context.Context, p Profile) error {
	if err := s.col.Clear(ctx); err != nil {
		return err
	}
	return s.col.Insert(ctx, "", document(p))
}

var _ Store = (*DocumentStore)(nil)
