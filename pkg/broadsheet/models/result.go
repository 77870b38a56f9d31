package models

// StudentInfo identifies one student row on a worksheet.
type StudentInfo struct {
	// Name is the student name, trimmed and title-cased.
	Name string `json:"name"`
	// Row is the 1-based worksheet row holding the student's data.
	Row int `json:"row"`
}

// SubjectScore holds the three score components for one subject.
// A nil component means the cell was absent, never zero.
type SubjectScore struct {
	MidTermScore *float64 `json:"mid_term_score"`
	ExamScore    *float64 `json:"exam_score"`
	TotalScore   *float64 `json:"total_score"`
}

// StudentResult is the normalized result record for one student in one term.
type StudentResult struct {
	// Term is the term name the result belongs to.
	Term string `json:"term"`
	// Student is the student name.
	Student string `json:"student"`
	// Subjects maps subject name to the student's scores.
	Subjects map[string]SubjectScore `json:"subjects"`
	// Aggregates maps aggregate name to the student's value, nil for
	// absent cells.
	Aggregates map[string]*float64 `json:"aggregates"`
	// TeachersComment is the trimmed teacher comment, nil when blank.
	TeachersComment *string `json:"teachers_comment"`
	// CoordinatorsComment is the trimmed coordinator comment, nil when blank.
	CoordinatorsComment *string `json:"coordinators_comment"`
}
