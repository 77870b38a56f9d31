// Package models defines data structures for broadsheet extraction.
package models

// Score-type keys recorded under a subject, as they appear after header
// normalization.
const (
	ScoreMidTerm = "mid_term_score"
	ScoreExam    = "exam_score"
	ScoreTotal   = "total_score"
)

// SchemaInfo locates one scored field on a worksheet.
type SchemaInfo struct {
	// Column is the 1-based column index holding the field.
	Column int `json:"column"`
	// Overall is the maximum obtainable value annotated in the header,
	// nil when the header carries no annotation.
	Overall *float64 `json:"overall,omitempty"`
}

// SubjectSchema maps a score-type key (mid_term_score, exam_score,
// total_score) to the location of that score for one subject.
type SubjectSchema map[string]SchemaInfo

// BroadsheetSchema describes the inferred column layout of one term sheet.
// It is built once per worksheet and read-only afterward.
type BroadsheetSchema struct {
	// Term is the worksheet title, trimmed and title-cased.
	Term string `json:"term"`
	// Subjects maps subject name to the per-score-type layout.
	Subjects map[string]SubjectSchema `json:"subjects"`
	// Aggregates maps aggregate name (sum, average, percentage columns)
	// to its location.
	Aggregates map[string]SchemaInfo `json:"aggregates"`
	// TeachersComment is the positional teacher comment column,
	// nil when the sheet yielded no data columns at all.
	TeachersComment *SchemaInfo `json:"teachers_comment,omitempty"`
	// CoordinatorsComment is the positional coordinator comment column,
	// nil when the sheet yielded no data columns at all.
	CoordinatorsComment *SchemaInfo `json:"coordinators_comment,omitempty"`
}

// Empty reports whether inference found no subjects and no aggregates.
// An empty schema is a valid degenerate state meaning "no usable data",
// not an error.
func (s BroadsheetSchema) Empty() bool {
	return len(s.Subjects) == 0 && len(s.Aggregates) == 0
}

// LastColumn returns the highest column recorded for any subject or
// aggregate, or 0 when the schema is empty.
func (s BroadsheetSchema) LastColumn() int {
	last := 0
	for _, subject := range s.Subjects {
		for _, info := range subject {
			if info.Column > last {
				last = info.Column
			}
		}
	}
	for _, info := range s.Aggregates {
		if info.Column > last {
			last = info.Column
		}
	}
	return last
}
