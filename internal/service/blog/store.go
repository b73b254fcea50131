package blog

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
const Collection = "blog_posts"

const listLimit = 100

// Indexes backs the id lookup and the list sort. Firestore additionally needs
// a composite index on (status asc, publishDate desc) for List.
var Indexes = []docstore.Index{
	{Collection: Collection, Field: "id", Unique: true},
	{Collection: Collection, Field: "publishDate", Direction: docstore.Descending},
}

type document struct {
	ID          string    `bson:"id"          firestore:"id"`
	Title       string    `bson:"title"       firestore:"title"`
	Excerpt     string    `bson:"excerpt"     firestore:"excerpt"`
	Content     string    `bson:"content"     firestore:"content"`
	Category    string    `bson:"category"    firestore:"category"`
	ReadTime    string    `bson:"readTime"    firestore:"readTime"`
	Author      string    `bson:"author"      firestore:"author"`
	PublishDate time.Time `bson:"publishDate" firestore:"publishDate"`
	Featured    bool      `bson:"featured"    firestore:"featured"`
	Tags        []string  `bson:"tags"        firestore:"tags"`
	Status      string    `bson:"status"      firestore:"status"`
	CreatedAt   time.Time `bson:"createdAt"   firestore:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"   firestore:"updatedAt"`
}

func fromPost(p Post) document {
	return document{
		ID:          p.ID,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		Content:     p.Content,
		Category:    p.Category,
		ReadTime:    p.ReadTime,
		Author:      p.Author,
		PublishDate: p.PublishDate,
		Featured:    p.Featured,
		Tags:        nonNil(p.Tags),
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (d document) post() Post {
	return Post{
		ID:          d.ID,
		Title:       d.Title,
		Excerpt:     d.Excerpt,
		Content:     d.Content,
		Category:    d.Category,
		ReadTime:    d.ReadTime,
		Author:      d.Author,
		PublishDate: d.PublishDate,
		Featured:    d.Featured,
		Tags:        nonNil(d.Tags),
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (p UpdateParams) fields() docstore.Fields {
	f := docstore.Fields{}
	set := func(key string, v *string) {
		if v != nil {
			f[key] = *v
		}
	}
	set("title", p.Title)
	set("excerpt", p.Excerpt)
	set("content", p.Content)
	set("category", p.Category)
	set("readTime", p.ReadTime)
	set("author", p.Author)
	set("status", p.Status)
	if p.PublishDate != nil {
		f["publishDate"] = p.PublishDate.UTC().Truncate(time.Millisecond)
	}
	if p.Featured != nil {
		f["featured"] = *p.Featured
	}
	if p.Tags != nil {
		f["tags"] = nonNil(*p.Tags)
	}
	return f
}

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
		Resource:   "blog_post",
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

// NewDocumentStore opens the blog_posts collection of db.
func NewDocumentStore(db docstore.Database) *DocumentStore {
	return &DocumentStore{col: docstore.Open[document](db, Collection)}
}

func (s *DocumentStore) List(ctx context.Context) ([]Post, error) {
	docs, err := s.col.Find(ctx, docstore.Query{
		Filters:   []docstore.Filter{docstore.Eq("status", StatusPublished)},
		OrderBy:   "publishDate",
		Direction: docstore.Descending,
		Limit:     listLimit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]Post, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.post())
	}
	return out, nil
}

func (s *DocumentStore) Get(ctx context.Context, id string) (*Post, error) {
	d, err := s.col.FindOne(ctx, docstore.Eq("id", id), docstore.Eq("status", StatusPublished))
	if err != nil {
		return nil, translate(err)
	}
	p := d.post()
	return &p, nil
}

func (s *DocumentStore) getAny(ctx context.Context, id string) (*Post, error) {
	d, err := s.col.FindOne(ctx, docstore.Eq("id", id))
	if err != nil {
		return nil, translate(err)
	}
	p := d.post()
	return &p, nil
}

func (s *DocumentStore) Create(ctx context.Context, params CreateParams) (*Post, error) {
	now := timeutil.NowMillis()
	p := Post{
		ID:          uuid.NewString(),
		Title:       params.Title,
		Excerpt:     params.Excerpt,
		Content:     params.Content,
		Category:    params.Category,
		ReadTime:    params.ReadTime,
		Author:      DefaultAuthor,
		PublishDate: now,
		Featured:    params.Featured,
		Tags:        nonNil(params.Tags),
		Status:      params.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if params.Author != nil {
		p.Author = *params.Author
	}
	if p.Status == "" {
		p.Status = StatusPublished
	}
	if params.PublishDate != nil {
		p.PublishDate = params.PublishDate.UTC().Truncate(time.Millisecond)
	}

	err := s.col.Insert(ctx, p.ID, fromPost(p))
	audit(ctx, "create", p.ID, err)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *DocumentStore) Update(ctx context.Context, id string, params UpdateParams) (*Post, error) {
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
	return s.getAny(ctx, id)
}

func (s *DocumentStore) Delete(ctx context.Context, id string) error {
	err := translate(s.col.Delete(ctx, docstore.Eq("id", id)))
	audit(ctx, "delete", id, err)
	return err
}

// Replace empties the collection and inserts posts as given.
func (s *DocumentStore) Replace(ctx context.Context, posts []Post) error {
	if err := s.col.Clear(ctx); err != nil {
		return err
	}
	for _, p := range posts {
		if err := s.col.Insert(ctx, p.ID, fromPost(p)); err != nil {
			return err
		}
	}
	return nil
}

var _ Store = (*DocumentStore)(nil)
