// Package grading maps overall percentages to report-sheet grade labels.
// It is consulted by report rendering only, never by extraction.
package grading

// Grade is a report-sheet grade label.
type Grade string

// School grade bands.
const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
	GradeF Grade = "F"
)

// Of returns the grade for an overall percentage. The second return is
// false when the percentage is absent and no grade can be evaluated.
func Of(percentage *float64) (Grade, bool) {
	if percentage == nil {
		return "", false
	}
	switch p := *percentage; {
	case p >= 70:
		return GradeA, true
	case p >= 60:
		return GradeB, true
	case p >= 50:
		return GradeC, true
	case p >= 45:
		return GradeD, true
	case p >= 40:
		return GradeE, true
	default:
		return GradeF, true
	}
}
