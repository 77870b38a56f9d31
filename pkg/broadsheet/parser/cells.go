package parser

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCase trims a name and capitalizes each word. A fresh Caser per
// call: cases.Caser carries state and is not safe for concurrent use,
// and sheets are processed in parallel.
func titleCase(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}

// cellText renders a cell value as text. Absent cells yield "".
func cellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// cellNumber converts a numeric cell value to a float, or nil for absent
// and non-numeric cells. Values are never coerced to zero.
func cellNumber(v any) *float64 {
	switch t := v.(type) {
	case int64:
		f := float64(t)
		return &f
	case float64:
		f := t
		return &f
	default:
		return nil
	}
}
