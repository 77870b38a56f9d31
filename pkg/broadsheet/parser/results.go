package parser

import (
	"strings"

	"github.com/edenplace/reportsheet-go/pkg/broadsheet/models"
	"github.com/edenplace/reportsheet-go/pkg/broadsheet/sheet"
)

// ExtractResult reads one student's row under an inferred schema. Absent
// cells stay absent: scores and aggregates are never defaulted to zero,
// and blank comments normalize to nil rather than an empty string. No
// numeric validation happens here; extraction is schema-driven, not
// type-enforcing.
func ExtractResult(ws sheet.Worksheet, schema models.BroadsheetSchema, student models.StudentInfo) models.StudentResult {
	return models.StudentResult{
		Term:                schema.Term,
		Student:             student.Name,
		Subjects:            subjectScores(ws, student.Row, schema.Subjects),
		Aggregates:          aggregateValues(ws, student.Row, schema.Aggregates),
		TeachersComment:     commentValue(ws, student.Row, schema.TeachersComment),
		CoordinatorsComment: commentValue(ws, student.Row, schema.CoordinatorsComment),
	}
}

func subjectScores(ws sheet.Worksheet, row int, subjects map[string]models.SubjectSchema) map[string]models.SubjectScore {
	scores := make(map[string]models.SubjectScore, len(subjects))
	for subject, subjectSchema := range subjects {
		scores[subject] = models.SubjectScore{
			MidTermScore: scoreValue(ws, row, subjectSchema, models.ScoreMidTerm),
			ExamScore:    scoreValue(ws, row, subjectSchema, models.ScoreExam),
			TotalScore:   scoreValue(ws, row, subjectSchema, models.ScoreTotal),
		}
	}
	return scores
}

// scoreValue reads one score component. A subject whose header never
// declared the component yields an absent score.
func scoreValue(ws sheet.Worksheet, row int, subjectSchema models.SubjectSchema, scoreType string) *float64 {
	info, ok := subjectSchema[scoreType]
	if !ok {
		return nil
	}
	return cellNumber(ws.Cell(row, info.Column))
}

func aggregateValues(ws sheet.Worksheet, row int, aggregates map[string]models.SchemaInfo) map[string]*float64 {
	values := make(map[string]*float64, len(aggregates))
	for aggregate, info := range aggregates {
		values[aggregate] = cellNumber(ws.Cell(row, info.Column))
	}
	return values
}

func commentValue(ws sheet.Worksheet, row int, info *models.SchemaInfo) *string {
	if info == nil {
		return nil
	}
	comment := strings.TrimSpace(cellText(ws.Cell(row, info.Column)))
	if comment == "" {
		return nil
	}
	return &comment
}
