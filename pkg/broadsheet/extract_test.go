package broadsheet

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/edenplace/reportsheet-go/pkg/broadsheet/models"
	"github.com/edenplace/reportsheet-go/pkg/broadsheet/sheet"
)

// saveFirstTermWorkbook writes a single-sheet workbook: subject Maths at
// columns 3-5 with overalls 50/100/150, comments at columns 6-7, one
// student at row 4.
func saveFirstTermWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	name := "First Term"
	f.SetSheetName(f.GetSheetName(0), name)
	f.SetCellValue(name, "C1", "Maths")
	f.SetCellValue(name, "C2", "MID")
	f.SetCellValue(name, "D2", "EXAM")
	f.SetCellValue(name, "E2", "TOTAL")
	f.SetCellValue(name, "C3", 50)
	f.SetCellValue(name, "D3", 100)
	f.SetCellValue(name, "E3", 150)
	f.SetCellValue(name, "B4", "john doe")
	f.SetCellValue(name, "C4", 45)
	f.SetCellValue(name, "D4", 80)
	f.SetCellValue(name, "E4", 125)
	f.SetCellValue(name, "F4", "Good")

	path := filepath.Join(t.TempDir(), "broadsheet.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestExtractEndToEnd(t *testing.T) {
	data, err := Extract(saveFirstTermWorkbook(t), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "broadsheet.xlsx", data.BookName)
	require.Contains(t, data.Terms, "First Term")
	term := data.Terms["First Term"]

	maths, ok := term.Schema.Subjects["maths"]
	require.True(t, ok)
	assert.Equal(t, 3, maths[models.ScoreMidTerm].Column)
	require.NotNil(t, maths[models.ScoreExam].Overall)
	assert.Equal(t, 100.0, *maths[models.ScoreExam].Overall)
	require.NotNil(t, term.Schema.TeachersComment)
	assert.Equal(t, 6, term.Schema.TeachersComment.Column)
	assert.Equal(t, 7, term.Schema.CoordinatorsComment.Column)

	require.Len(t, term.Results, 1)
	result := term.Results[0]
	assert.Equal(t, "First Term", result.Term)
	assert.Equal(t, "John Doe", result.Student)
	score := result.Subjects["maths"]
	require.NotNil(t, score.MidTermScore)
	require.NotNil(t, score.ExamScore)
	require.NotNil(t, score.TotalScore)
	assert.Equal(t, 45.0, *score.MidTermScore)
	assert.Equal(t, 80.0, *score.ExamScore)
	assert.Equal(t, 125.0, *score.TotalScore)
	require.NotNil(t, result.TeachersComment)
	assert.Equal(t, "Good", *result.TeachersComment)
	assert.Nil(t, result.CoordinatorsComment)
}

func termSheet(title, student string) *sheet.Grid {
	return sheet.NewGrid(title, [][]any{
		{nil, nil, "Maths"},
		{nil, nil, "MID", "EXAM", "TOTAL"},
		{nil, nil, float64(50), float64(100), float64(150)},
		{nil, student, float64(40), float64(70), float64(110)},
	})
}

func TestExtractWorkbookDuplicateTermLastWins(t *testing.T) {
	// Both sheet names normalize to "First Term"; the later sheet must
	// win under either execution mode, never a merge of both.
	for _, parallel := range []bool{true, false} {
		wb := &sheet.Workbook{
			Name: "dup.xlsx",
			Sheets: []*sheet.Grid{
				termSheet("first term", "ada obi"),
				termSheet("FIRST TERM", "john doe"),
			},
		}
		opts := Options{Parallel: &parallel}

		data := ExtractWorkbook(wb, opts)

		require.Len(t, data.Terms, 1, "parallel=%v", parallel)
		term := data.Terms["First Term"]
		require.Len(t, term.Results, 1, "parallel=%v", parallel)
		assert.Equal(t, "John Doe", term.Results[0].Student, "parallel=%v", parallel)
	}
}

func TestExtractWorkbookPrunesLeadingBlankRows(t *testing.T) {
	// A title banner above the header must not shift the schema rows.
	rows := [][]any{
		nil,
		{nil, nil, nil},
		{nil, nil, "Maths"},
		{nil, nil, "MID", "EXAM", "TOTAL"},
		{nil, nil, float64(50), float64(100), float64(150)},
		{nil, "john doe", float64(45), float64(80), float64(125)},
	}
	wb := &sheet.Workbook{Name: "banner.xlsx", Sheets: []*sheet.Grid{sheet.NewGrid("First Term", rows)}}

	data := ExtractWorkbook(wb, DefaultOptions())

	term := data.Terms["First Term"]
	require.Contains(t, term.Schema.Subjects, "maths")
	require.Len(t, term.Results, 1)
	assert.Equal(t, "John Doe", term.Results[0].Student)
}

func TestExtractWorkbookSheetWithoutStudents(t *testing.T) {
	wb := &sheet.Workbook{
		Name: "empty.xlsx",
		Sheets: []*sheet.Grid{sheet.NewGrid("Second Term", [][]any{
			{nil, nil, "Maths"},
			{nil, nil, "MID", "EXAM", "TOTAL"},
			{nil, nil, float64(50), float64(100), float64(150)},
		})},
	}

	data := ExtractWorkbook(wb, DefaultOptions())

	term, ok := data.Terms["Second Term"]
	require.True(t, ok, "a studentless sheet still contributes its term key")
	assert.NotNil(t, term.Results)
	assert.Empty(t, term.Results)
}

func TestExtractWorkbookUnrecognizableSheet(t *testing.T) {
	wb := &sheet.Workbook{
		Name:   "blank.xlsx",
		Sheets: []*sheet.Grid{sheet.NewGrid("Notes", [][]any{nil, nil, nil})},
	}

	data := ExtractWorkbook(wb, DefaultOptions())

	term, ok := data.Terms["Notes"]
	require.True(t, ok)
	assert.True(t, term.Schema.Empty())
	assert.Nil(t, term.Schema.TeachersComment)
	assert.Empty(t, term.Results)
}

func TestExtractFileNotFound(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultOptions())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileNotFound))
}

func TestExtractInvalidWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-workbook.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("this is not xlsx"), 0644))

	_, err := Extract(path, DefaultOptions())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidWorkbook))
}
