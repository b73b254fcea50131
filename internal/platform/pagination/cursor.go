package pagination

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrInvalidCursor means the cursor is malformed or belongs to another list.
var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor marks the last item of the previous page. An empty Value points
// before the first item.
type Cursor struct {
	Kind  string
	Value string
}

// Encode returns an opaque URL-safe token.
func (c Cursor) Encode() string {
	return base64.RawURLEncoding.EncodeToString([]byte(c.Kind + ":" + c.Value))
}

// DecodeCursor parses a token from Encode. The empty string decodes to the
// zero Cursor.
func DecodeCursor(s string) (Cursor, error) {
	if s == "" {
		return Cursor{}, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	kind, value, ok := strings.Cut(string(raw), ":")
	if !ok || kind == "" {
		return Cursor{}, ErrInvalidCursor
	}
	return Cursor{Kind: kind, Value: value}, nil
}
