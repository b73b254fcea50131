// Package pagination slices list results into cursor pages and builds RFC
// 8288 Link headers for them.
package pagination

// MaxLimit is the largest page, equal to the list cap of every resource.
const MaxLimit = 100

// Params embeds into huma list inputs.
type Params struct {
	Cursor string `query:"cursor" doc:"Opaque cursor from a previous Link header"`
	Limit  int    `query:"limit"  doc:"Maximum items per page" default:"100" minimum:"1" maximum:"100"`
}

// PageSize returns Limit clamped to [1, MaxLimit], treating zero as MaxLimit.
func (p Params) PageSize() int {
	switch {
	case p.Limit <= 0, p.Limit > MaxLimit:
		return MaxLimit
	default:
		return p.Limit
	}
}
