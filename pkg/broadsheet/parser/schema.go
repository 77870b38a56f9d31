package parser

import (
	"strings"

	"github.com/tiendc/go-deepcopy"

	"github.com/edenplace/reportsheet-go/pkg/broadsheet/models"
	"github.com/edenplace/reportsheet-go/pkg/broadsheet/sheet"
)

// Broadsheet layout constants. Rows 1-3 are the header region: row 1
// carries subject/aggregate group titles (merged across a group), row 2
// the score-type or aggregate label, row 3 the overall obtainable value.
// Subject columns come in visual groups of three starting at column 3;
// student names live in column 2 from row 4 down.
const (
	titleRow        = 1
	labelRow        = 2
	overallRow      = 3
	firstDataColumn = 3
	groupWidth      = 3
	nameColumn      = 2
	firstStudentRow = 4
)

// Inferrer produces a BroadsheetSchema for a worksheet. The default is
// the positional heuristic; an explicit layout can substitute via
// StaticInferrer without touching extraction.
type Inferrer interface {
	Infer(ws sheet.Worksheet) models.BroadsheetSchema
}

// HeuristicInferrer discovers the column layout from the header region
// alone, mirroring the broadsheet's visual 3-column subject grouping.
// Sheets whose subjects span other than three columns will mis-infer
// labels rather than fail; the batching is a structural precondition of
// the source layout.
type HeuristicInferrer struct{}

// InferSchema runs the default heuristic inference on a worksheet.
func InferSchema(ws sheet.Worksheet) models.BroadsheetSchema {
	return HeuristicInferrer{}.Infer(ws)
}

// Infer scans the header region and returns the discovered schema. A
// sheet with no recognizable header content yields an empty schema with
// unset comment columns; callers treat that as "no usable data", not an
// error.
func (HeuristicInferrer) Infer(ws sheet.Worksheet) models.BroadsheetSchema {
	schema := models.BroadsheetSchema{
		Term:       titleCase(ws.Title()),
		Subjects:   map[string]models.SubjectSchema{},
		Aggregates: map[string]models.SchemaInfo{},
	}

	lastColumn := 0
	maxCol := ws.MaxCol()
	for start := firstDataColumn; start <= maxCol; start += groupWidth {
		// A merged title cell physically populates only the first column
		// of its group, so the owning subject is carried across the group.
		carried := ""
		for col := start; col < start+groupWidth && col <= maxCol; col++ {
			verdict := classifyColumn(
				cellText(ws.Cell(titleRow, col)),
				cellText(ws.Cell(labelRow, col)),
				col,
				cellNumber(ws.Cell(overallRow, col)),
				carried,
			)
			switch verdict.kind {
			case verdictSkip:
			case verdictAggregateField:
				schema.Aggregates[verdict.field] = verdict.info
				lastColumn = verdict.info.Column
			case verdictNewSubject, verdictSubjectField:
				if _, ok := schema.Subjects[verdict.subject]; !ok {
					schema.Subjects[verdict.subject] = models.SubjectSchema{}
				}
				if verdict.field == "" {
					break
				}
				schema.Subjects[verdict.subject][verdict.field] = verdict.info
				lastColumn = verdict.info.Column
				carried = verdict.subject
			}
		}
	}

	if lastColumn > 0 {
		// Comments always trail the data columns and carry no overall.
		schema.TeachersComment = &models.SchemaInfo{Column: lastColumn + 1}
		schema.CoordinatorsComment = &models.SchemaInfo{Column: lastColumn + 2}
	}
	return schema
}

type verdictKind int

const (
	verdictSkip verdictKind = iota
	verdictNewSubject
	verdictSubjectField
	verdictAggregateField
)

// columnVerdict is the classification of one header column.
type columnVerdict struct {
	kind    verdictKind
	subject string // normalized owning subject, for subject verdicts
	field   string // normalized row-2 label; empty for a bare title
	info    models.SchemaInfo
}

// classifyColumn decides what one header column contributes to the
// schema given the title carried from earlier columns of its group.
// Aggregate labels containing "comment" are skipped: comment columns are
// located positionally, never by header.
func classifyColumn(title, label string, col int, overall *float64, carried string) columnVerdict {
	info := models.SchemaInfo{Column: col, Overall: overall}
	label = strings.TrimSpace(label)

	if strings.TrimSpace(title) != "" {
		verdict := columnVerdict{kind: verdictNewSubject, subject: NormalizeHeader(title)}
		if label != "" {
			verdict.field = NormalizeHeader(label)
			verdict.info = info
		}
		return verdict
	}

	if carried == "" {
		if label == "" {
			return columnVerdict{kind: verdictSkip}
		}
		field := NormalizeHeader(label)
		if strings.Contains(field, "comment") {
			return columnVerdict{kind: verdictSkip}
		}
		return columnVerdict{kind: verdictAggregateField, field: field, info: info}
	}

	if label == "" {
		return columnVerdict{kind: verdictSkip}
	}
	return columnVerdict{
		kind:    verdictSubjectField,
		subject: carried,
		field:   NormalizeHeader(label),
		info:    info,
	}
}

// StaticInferrer substitutes an explicitly configured layout for the
// positional heuristic. Every call returns an independent copy of the
// prototype so results derived from one sheet cannot alias another's
// schema; only the term name is taken from the worksheet.
type StaticInferrer struct {
	Layout models.BroadsheetSchema
}

// Infer returns a deep copy of the configured layout with the term name
// set from the worksheet title.
func (s StaticInferrer) Infer(ws sheet.Worksheet) models.BroadsheetSchema {
	var schema models.BroadsheetSchema
	if err := deepcopy.Copy(&schema, &s.Layout); err != nil {
		// The layout is plain data; failing to copy it is a programming error.
		panic(err)
	}
	schema.Term = titleCase(ws.Title())
	return schema
}
