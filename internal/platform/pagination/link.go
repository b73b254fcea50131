package pagination

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildLinkHeader returns next/prev links for baseURL, keeping query but
// replacing its cursor.
func BuildLinkHeader(baseURL string, query url.Values, next, prev string) string {
	var links []string
	add := func(cursor, rel string) {
		if cursor == "" {
			return
		}
		q := url.Values{}
		for k, v := range query {
			q[k] = append([]string(nil), v...)
		}
		q.Set("cursor", cursor)
		links = append(links, fmt.Sprintf(`<%s?%s>; rel="%s"`, baseURL, q.Encode(), rel))
	}
	add(next, "next")
	add(prev, "prev")
	return strings.Join(links, ", ")
}
