package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edenplace/reportsheet-go/pkg/broadsheet/models"
	"github.com/edenplace/reportsheet-go/pkg/broadsheet/sheet"
)

// termGrid builds a sheet with one subject group (columns 3-5) and one
// aggregate group (columns 6-8), the layout real broadsheets use.
func termGrid(title string) *sheet.Grid {
	return sheet.NewGrid(title, [][]any{
		{nil, nil, "Maths", nil, nil, nil, nil, nil},
		{"S/N", "Name", "MID", "EXAM", "TOTAL", "Mid Total", "Sum %", "1st Term"},
		{nil, nil, float64(50), float64(100), float64(150), float64(150), float64(100), float64(150)},
		{float64(1), "john doe", float64(45), float64(80), float64(125), float64(125), float64(83), float64(125)},
	})
}

func TestInferSchemaEmptyHeader(t *testing.T) {
	ws := sheet.NewGrid("first term", [][]any{{nil, nil, nil}, {nil, nil, nil}, {nil, nil, nil}})

	schema := InferSchema(ws)

	assert.Equal(t, "First Term", schema.Term)
	assert.True(t, schema.Empty())
	assert.Empty(t, schema.Subjects)
	assert.Empty(t, schema.Aggregates)
	assert.Nil(t, schema.TeachersComment)
	assert.Nil(t, schema.CoordinatorsComment)
}

func TestInferSchemaSubjectsAndAggregates(t *testing.T) {
	schema := InferSchema(termGrid("first term"))

	assert.Equal(t, "First Term", schema.Term)

	maths, ok := schema.Subjects["maths"]
	require.True(t, ok, "subject maths not inferred: %v", schema.Subjects)
	require.Contains(t, maths, models.ScoreMidTerm)
	require.Contains(t, maths, models.ScoreExam)
	require.Contains(t, maths, models.ScoreTotal)
	assert.Equal(t, 3, maths[models.ScoreMidTerm].Column)
	assert.Equal(t, 4, maths[models.ScoreExam].Column)
	assert.Equal(t, 5, maths[models.ScoreTotal].Column)
	require.NotNil(t, maths[models.ScoreMidTerm].Overall)
	assert.Equal(t, 50.0, *maths[models.ScoreMidTerm].Overall)
	require.NotNil(t, maths[models.ScoreTotal].Overall)
	assert.Equal(t, 150.0, *maths[models.ScoreTotal].Overall)

	require.Contains(t, schema.Aggregates, "mid term total")
	require.Contains(t, schema.Aggregates, "sum total %")
	require.Contains(t, schema.Aggregates, "1st term total")
	assert.Equal(t, 6, schema.Aggregates["mid term total"].Column)
	assert.Equal(t, 7, schema.Aggregates["sum total %"].Column)
	assert.Equal(t, 8, schema.Aggregates["1st term total"].Column)
	require.NotNil(t, schema.Aggregates["sum total %"].Overall)
	assert.Equal(t, 100.0, *schema.Aggregates["sum total %"].Overall)
}

func TestInferSchemaCommentColumnsTrailData(t *testing.T) {
	schema := InferSchema(termGrid("Second Term"))

	last := schema.LastColumn()
	assert.Equal(t, 8, last)
	require.NotNil(t, schema.TeachersComment)
	require.NotNil(t, schema.CoordinatorsComment)
	assert.Equal(t, last+1, schema.TeachersComment.Column)
	assert.Equal(t, last+2, schema.CoordinatorsComment.Column)
	assert.Nil(t, schema.TeachersComment.Overall)
	assert.Nil(t, schema.CoordinatorsComment.Overall)
}

func TestInferSchemaSkipsCommentHeaders(t *testing.T) {
	// An aggregate group whose label mentions "comment" is located
	// positionally, never recorded from the header.
	ws := sheet.NewGrid("Third Term", [][]any{
		{nil, nil, "Maths", nil, nil, nil, nil, nil},
		{nil, nil, "MID", "EXAM", "TOTAL", "Sum %", "Teacher's Comment", nil},
		{nil, nil, float64(50), float64(100), float64(150), float64(100), nil, nil},
	})

	schema := InferSchema(ws)

	assert.NotContains(t, schema.Aggregates, "teacher's comment")
	require.NotNil(t, schema.TeachersComment)
	assert.Equal(t, 7, schema.TeachersComment.Column)
	assert.Equal(t, 8, schema.CoordinatorsComment.Column)
}

func TestInferSchemaCarriesMergedTitle(t *testing.T) {
	// The merged title cell populates only the first column of its group;
	// the remaining two columns belong to the same subject.
	ws := sheet.NewGrid("First Term", [][]any{
		{nil, nil, "English", nil, nil, "Basic Science", nil, nil},
		{nil, nil, "MID", "EXAM", "TOTAL", "MID", "EXAM", "TOTAL"},
		{nil, nil, float64(50), float64(100), float64(150), float64(50), float64(100), float64(150)},
	})

	schema := InferSchema(ws)

	require.Len(t, schema.Subjects, 2)
	english := schema.Subjects["english"]
	science := schema.Subjects["basic science"]
	require.NotNil(t, english)
	require.NotNil(t, science)
	assert.Equal(t, 3, english[models.ScoreMidTerm].Column)
	assert.Equal(t, 5, english[models.ScoreTotal].Column)
	assert.Equal(t, 6, science[models.ScoreMidTerm].Column)
	assert.Equal(t, 8, science[models.ScoreTotal].Column)
}

func TestInferSchemaIdempotent(t *testing.T) {
	ws := termGrid("First Term")

	first := InferSchema(ws)
	second := InferSchema(ws)

	assert.Equal(t, first, second)
}

func TestStaticInferrerCopiesLayout(t *testing.T) {
	overall := 100.0
	prototype := models.BroadsheetSchema{
		Subjects: map[string]models.SubjectSchema{
			"maths": {models.ScoreMidTerm: {Column: 3, Overall: &overall}},
		},
		Aggregates:          map[string]models.SchemaInfo{"sum total %": {Column: 6}},
		TeachersComment:     &models.SchemaInfo{Column: 7},
		CoordinatorsComment: &models.SchemaInfo{Column: 8},
	}
	inferrer := StaticInferrer{Layout: prototype}
	ws := sheet.NewGrid("first term", nil)

	schema := inferrer.Infer(ws)
	assert.Equal(t, "First Term", schema.Term)
	assert.Equal(t, prototype.Subjects, schema.Subjects)

	// Mutating the inferred copy must not leak into the prototype.
	schema.Subjects["english"] = models.SubjectSchema{}
	*schema.Subjects["maths"][models.ScoreMidTerm].Overall = 999
	assert.NotContains(t, prototype.Subjects, "english")
	assert.Equal(t, 100.0, *prototype.Subjects["maths"][models.ScoreMidTerm].Overall)
}
