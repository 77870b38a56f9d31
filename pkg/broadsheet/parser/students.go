package parser

import (
	"strings"

	"github.com/edenplace/reportsheet-go/pkg/broadsheet/models"
	"github.com/edenplace/reportsheet-go/pkg/broadsheet/sheet"
)

// Students scans the name column below the header region and returns one
// StudentInfo per named row, in ascending row order. Rows with a blank
// name cell are skipped without terminating the scan, so interior and
// trailing blanks never cut the sheet short.
func Students(ws sheet.Worksheet) []models.StudentInfo {
	var students []models.StudentInfo
	for row := firstStudentRow; row <= ws.MaxRow(); row++ {
		name := cellText(ws.Cell(row, nameColumn))
		if strings.TrimSpace(name) == "" {
			continue
		}
		students = append(students, models.StudentInfo{
			Name: titleCase(name),
			Row:  row,
		})
	}
	return students
}
