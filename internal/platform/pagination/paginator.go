package pagination

import (
	"net/url"
	"strconv"
)

// Page is one slice of a list.
type Page[T any] struct {
	Items []T
	// Link is the RFC 8288 header value, empty when everything fits on one page.
	Link string
}

// Paginate cuts the page after the cursor out of items. kind tags cursors so
// one list's cursor is rejected by another. A cursor whose item has since
// disappeared restarts from the first page.
func Paginate[T any](items []T, p Params, kind string, id func(T) string, baseURL string, query url.Values) (Page[T], error) {
	cur, err := DecodeCursor(p.Cursor)
	if err != nil {
		return Page[T]{}, err
	}
	if p.Cursor != "" && cur.Kind != kind {
		return Page[T]{}, ErrInvalidCursor
	}
	limit := p.PageSize()

	start := 0
	if cur.Value != "" {
		for i, it := range items {
			if id(it) == cur.Value {
				start = i + 1
				break
			}
		}
	}
	end := min(start+limit, len(items))
	page := items[start:end]

	var next, prev string
	if end < len(items) && len(page) > 0 {
		next = Cursor{Kind: kind, Value: id(page[len(page)-1])}.Encode()
	}
	if start > 0 {
		// The previous page ends just before items[start-limit].
		before := ""
		if start > limit {
			before = id(items[start-limit-1])
		}
		prev = Cursor{Kind: kind, Value: before}.Encode()
	}

	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	q.Set("limit", strconv.Itoa(limit))
	return Page[T]{Items: page, Link: BuildLinkHeader(baseURL, q, next, prev)}, nil
}
