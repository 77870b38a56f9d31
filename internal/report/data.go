// Package report renders student term report sheets as HTML.
package report

import (
	"sort"

	"github.com/edenplace/reportsheet-go/pkg/broadsheet/grading"
	"github.com/edenplace/reportsheet-go/pkg/broadsheet/models"
)

// BehaviouralTraits lists the traits graded on a primary report sheet.
var BehaviouralTraits = []string{
	"Punctuality",
	"Class Attendance",
	"Neatness",
	"Relationship with Others",
	"Sense of Responsibility",
	"Obedience",
	"Attentiveness",
	"Reliability",
	"Self-Control",
	"Spirit of Cooperation",
	"Honesty",
	"Handling of Tools",
	"Handwriting",
	"Games",
}

// TraitLevels are the accepted behavioural grades: A excellent, B high,
// C acceptable, E unnoticed.
var TraitLevels = []string{"A", "B", "C", "E"}

// overallPercentAggregate is the aggregate the overall grade derives from.
const overallPercentAggregate = "sum total %"

// ReportData carries everything a report sheet needs: the extracted
// result plus the fields supplied per report (class details, attendance,
// term dates, behavioural grades).
type ReportData struct {
	Term                     string                         `json:"term"`
	StudentName              string                         `json:"student_name"`
	ClassName                string                         `json:"class_name"`
	Subjects                 map[string]models.SubjectScore `json:"subjects_scores"`
	Aggregates               map[string]*float64            `json:"aggregates_values"`
	ScoresSchema             models.SubjectSchema           `json:"scores_schemas"`
	AggregatesSchema         map[string]models.SchemaInfo   `json:"aggregates_schemas"`
	TeachersComment          string                         `json:"teachers_comment"`
	CoordinatorsComment      string                         `json:"coordinators_comment"`
	OverallPercentage        *float64                       `json:"overall_percentage_obtained"`
	OverallGrade             string                         `json:"overall_grade"`
	NumberOfStudentsInClass  int                            `json:"number_of_students_in_class"`
	ClassAverageAge          float64                        `json:"class_average_age"`
	NumberOfDaysSchoolOpened int                            `json:"number_of_days_school_opened"`
	NumberOfDaysPresent      int                            `json:"number_of_days_present"`
	NumberOfDaysAbsent       int                            `json:"number_of_days_absent"`
	TermEndDate              string                         `json:"term_end_date"`
	NextTermStartDate        string                         `json:"next_term_start_date"`
	BehaviouralScores        map[string]string              `json:"behavioural_scores"`
}

// FromResult pre-fills a ReportData from one extracted result and the
// schema it was extracted under. Per-report fields (class details,
// attendance, dates) remain to be supplied by the caller.
func FromResult(result models.StudentResult, schema models.BroadsheetSchema) ReportData {
	data := ReportData{
		Term:              result.Term,
		StudentName:       result.Student,
		Subjects:          result.Subjects,
		Aggregates:        result.Aggregates,
		ScoresSchema:      scoresSchema(schema),
		AggregatesSchema:  schema.Aggregates,
		OverallPercentage: result.Aggregates[overallPercentAggregate],
	}
	if result.TeachersComment != nil {
		data.TeachersComment = *result.TeachersComment
	}
	if result.CoordinatorsComment != nil {
		data.CoordinatorsComment = *result.CoordinatorsComment
	}
	if grade, ok := grading.Of(data.OverallPercentage); ok {
		data.OverallGrade = string(grade)
	}
	data.BehaviouralScores = make(map[string]string, len(BehaviouralTraits))
	for _, trait := range BehaviouralTraits {
		data.BehaviouralScores[trait] = "E"
	}
	return data
}

// scoresSchema picks one subject's score layout for the header
// annotations; every subject shares the same obtainable values.
func scoresSchema(schema models.BroadsheetSchema) models.SubjectSchema {
	names := make([]string, 0, len(schema.Subjects))
	for name := range schema.Subjects {
		names = append(names, name)
	}
	if len(names) == 0 {
		return models.SubjectSchema{}
	}
	sort.Strings(names)
	return schema.Subjects[names[0]]
}

// MissingFields returns the names of required fields still blank, in
// stable order. Coordinator comments and absent-day counts may be empty.
func (d ReportData) MissingFields() []string {
	var missing []string
	text := []struct {
		label string
		value string
	}{
		{"Term", d.Term},
		{"Student Name", d.StudentName},
		{"Class Name", d.ClassName},
		{"Teachers Comment", d.TeachersComment},
		{"Term End Date", d.TermEndDate},
		{"Next Term Start Date", d.NextTermStartDate},
	}
	for _, f := range text {
		if f.value == "" {
			missing = append(missing, f.label)
		}
	}
	counts := []struct {
		label string
		value int
	}{
		{"Number Of Students In Class", d.NumberOfStudentsInClass},
		{"Number Of Days School Opened", d.NumberOfDaysSchoolOpened},
		{"Number Of Days Present", d.NumberOfDaysPresent},
	}
	for _, f := range counts {
		if f.value <= 0 {
			missing = append(missing, f.label)
		}
	}
	return missing
}
