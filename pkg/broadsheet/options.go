// Package broadsheet extracts per-term student results from school
// broadsheet workbooks.
package broadsheet

import "github.com/edenplace/reportsheet-go/pkg/broadsheet/parser"

// Options configures extraction behavior.
type Options struct {
	// Inferrer overrides schema inference. Nil selects the positional
	// heuristic.
	Inferrer parser.Inferrer
	// Parallel specifies whether worksheets are processed concurrently.
	// If nil, defaults to true for multi-sheet workbooks.
	Parallel *bool
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) inferrer() parser.Inferrer {
	if o.Inferrer != nil {
		return o.Inferrer
	}
	return parser.HeuristicInferrer{}
}

// ShouldParallelize returns whether a workbook with the given sheet count
// is processed concurrently.
func (o Options) ShouldParallelize(sheets int) bool {
	if o.Parallel != nil {
		return *o.Parallel
	}
	return sheets > 1
}
