package docstore

import (
	"cmp"
	"context"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryDatabase keeps documents in process memory. Documents are stored in
// their BSON form so filters and sorts see the same field names and value
// types the MongoDB backend does.
type MemoryDatabase struct {
	mu          sync.RWMutex
	collections map[string]*memoryTable
	pingErr     error
}

type memoryTable struct {
	ids  []string
	docs map[string]bson.M
}

// NewMemoryDatabase returns an empty database.
func NewMemoryDatabase() *MemoryDatabase {
	return &MemoryDatabase{collections: make(map[string]*memoryTable)}
}

func (d *MemoryDatabase) driver() string { return "memory" }

// SetPingError makes Ping fail with err; nil restores health.
func (d *MemoryDatabase) SetPingError(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pingErr = err
}

func (d *MemoryDatabase) Ping(context.Context) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.pingErr
}

func (d *MemoryDatabase) Close(context.Context) error { return nil }

func (d *MemoryDatabase) EnsureIndexes(context.Context, []Index) error { return nil }

// table returns the named table, creating it. Callers hold d.mu for writing.
func (d *MemoryDatabase) table(name string) *memoryTable {
	t, ok := d.collections[name]
	if !ok {
		t = &memoryTable{docs: make(map[string]bson.M)}
		d.collections[name] = t
	}
	return t
}

// ordered returns documents in insertion order. Callers hold d.mu.
func (t *memoryTable) ordered() []bson.M {
	out := make([]bson.M, 0, len(t.ids))
	for _, id := range t.ids {
		out = append(out, t.docs[id])
	}
	return out
}

// firstMatch returns the key of the first document matching filters.
func (t *memoryTable) firstMatch(filters []bson.E) (string, bool) {
	for _, id := range t.ids {
		if matches(t.docs[id], filters) {
			return id, true
		}
	}
	return "", false
}

func (t *memoryTable) remove(id string) {
	delete(t.docs, id)
	t.ids = slices.DeleteFunc(t.ids, func(s string) bool { return s == id })
}

type memoryCollection[T any] struct {
	db   *MemoryDatabase
	name string
}

func (c *memoryCollection[T]) Find(ctx context.Context, q Query) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	filters, err := normalizeFilters(q.Filters)
	if err != nil {
		return nil, err
	}

	c.db.mu.RLock()
	var matched []bson.M
	if t, ok := c.db.collections[c.name]; ok {
		for _, doc := range t.ordered() {
			if matches(doc, filters) {
				matched = append(matched, doc)
			}
		}
	}
	c.db.mu.RUnlock()

	if q.OrderBy != "" {
		slices.SortStableFunc(matched, func(a, b bson.M) int {
			order := compareValues(a[q.OrderBy], b[q.OrderBy])
			if q.Direction == Descending {
				return -order
			}
			return order
		})
	}
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}

	out := make([]T, 0, len(matched))
	for _, m := range matched {
		doc, err := fromBSON[T](m)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func (c *memoryCollection[T]) FindOne(ctx context.Context, filters ...Filter) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	norm, err := normalizeFilters(filters)
	if err != nil {
		return nil, err
	}

	c.db.mu.RLock()
	var found bson.M
	if t, ok := c.db.collections[c.name]; ok {
		if id, ok := t.firstMatch(norm); ok {
			found = t.docs[id]
		}
	}
	c.db.mu.RUnlock()

	if found == nil {
		return nil, ErrNotFound
	}
	doc, err := fromBSON[T](found)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *memoryCollection[T]) Insert(ctx context.Context, id string, doc T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m, err := toBSON(doc)
	if err != nil {
		return err
	}
	if id == "" {
		id = uuid.NewString()
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()
	t := c.db.table(c.name)
	if _, exists := t.docs[id]; exists {
		return ErrAlreadyExists
	}
	t.ids = append(t.ids, id)
	t.docs[id] = m
	return nil
}

func (c *memoryCollection[T]) Update(ctx context.Context, filters []Filter, fields Fields) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	norm, err := normalizeFilters(filters)
	if err != nil {
		return err
	}
	set, err := toBSON(map[string]any(fields))
	if err != nil {
		return err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()
	t := c.db.table(c.name)
	id, ok := t.firstMatch(norm)
	if !ok {
		return ErrNotFound
	}
	updated := make(bson.M, len(t.docs[id])+len(set))
	for k, v := range t.docs[id] {
		updated[k] = v
	}
	for k, v := range set {
		updated[k] = v
	}
	t.docs[id] = updated
	return nil
}

func (c *memoryCollection[T]) Delete(ctx context.Context, filters ...Filter) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	norm, err := normalizeFilters(filters)
	if err != nil {
		return err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()
	t := c.db.table(c.name)
	id, ok := t.firstMatch(norm)
	if !ok {
		return ErrNotFound
	}
	t.remove(id)
	return nil
}

func (c *memoryCollection[T]) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.db.mu.Lock()
	defer c.db.mu.Unlock()
	delete(c.db.collections, c.name)
	return nil
}

func toBSON(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("docstore: encode: %w", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("docstore: decode: %w", err)
	}
	return m, nil
}

func fromBSON[T any](m bson.M) (T, error) {
	var doc T
	raw, err := bson.Marshal(m)
	if err != nil {
		return doc, fmt.Errorf("docstore: encode: %w", err)
	}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("docstore: decode: %w", err)
	}
	return doc, nil
}

// normalizeFilters passes filter values through BSON so they compare equal
// to stored values of the same logical type.
func normalizeFilters(filters []Filter) ([]bson.E, error) {
	if len(filters) == 0 {
		return nil, nil
	}
	in := bson.M{}
	for _, f := range filters {
		in[f.Field] = f.Value
	}
	m, err := toBSON(in)
	if err != nil {
		return nil, err
	}
	out := make([]bson.E, 0, len(filters))
	for _, f := range filters {
		out = append(out, bson.E{Key: f.Field, Value: m[f.Field]})
	}
	return out, nil
}

func matches(doc bson.M, filters []bson.E) bool {
	for _, f := range filters {
		v, ok := doc[f.Key]
		if !ok || !equalValues(v, f.Value) {
			return false
		}
	}
	return true
}

func equalValues(a, b any) bool {
	if an, ok := number(a); ok {
		if bn, ok := number(b); ok {
			return an == bn
		}
	}
	return reflect.DeepEqual(a, b)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// compareValues orders BSON scalars. Missing values sort first; mismatched
// types compare equal so the stable sort keeps insertion order.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	if an, ok := number(a); ok {
		if bn, ok := number(b); ok {
			return cmp.Compare(an, bn)
		}
	}
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return cmp.Compare(av, bv)
		}
	case primitive.DateTime:
		if bv, ok := b.(primitive.DateTime); ok {
			return cmp.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			default:
				return 1
			}
		}
	}
	return 0
}
