// Package parser infers broadsheet column schemas and extracts student
// results from worksheet cell grids.
package parser

import "strings"

// headerAliases maps raw broadsheet header labels to internal keys.
// "sim %" is a recurring typo for "sum %" in source workbooks.
var headerAliases = map[string]string{
	"mid":       "mid_term_score",
	"exam":      "exam_score",
	"total":     "total_score",
	"mid %":     "mid term %",
	"mid total": "mid term total",
	"sim %":     "sum total %",
	"sum %":     "sum total %",
	"1st term":  "1st term total",
	"2nd term":  "2nd term total",
	"3rd term":  "3rd term total",
	"cumtotal":  "cumulative (session) total",
	"av. total": "average total",
	"av. %":     "average %",
}

// NormalizeHeader canonicalizes a raw header label to its internal key.
// Input is trimmed and lowercased before lookup; labels with no alias
// pass through in that folded form.
func NormalizeHeader(raw string) string {
	folded := strings.ToLower(strings.TrimSpace(raw))
	if key, ok := headerAliases[folded]; ok {
		return key
	}
	return folded
}
