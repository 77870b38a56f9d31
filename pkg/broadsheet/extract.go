package broadsheet

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/edenplace/reportsheet-go/pkg/broadsheet/models"
	"github.com/edenplace/reportsheet-go/pkg/broadsheet/parser"
	"github.com/edenplace/reportsheet-go/pkg/broadsheet/sheet"
)

// Extract loads an xlsx broadsheet and extracts every term sheet. The
// returned map is keyed by term name; errors occur only at the load
// boundary, never during extraction itself.
func Extract(path string, opts Options) (*models.BroadsheetData, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	wb, err := sheet.OpenWorkbook(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	return ExtractWorkbook(wb, opts), nil
}

// ExtractWorkbook extracts every sheet of a pre-loaded workbook. Sheets
// are independent, so they may run concurrently; results are merged in
// workbook order afterward, which keeps duplicate term names resolving
// last-write-wins no matter which sheet finished first. A sheet with no
// students contributes an empty results list under its term key.
func ExtractWorkbook(wb *sheet.Workbook, opts Options) *models.BroadsheetData {
	inferrer := opts.inferrer()
	terms := make([]models.TermData, len(wb.Sheets))

	if opts.ShouldParallelize(len(wb.Sheets)) {
		g := new(errgroup.Group)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i, ws := range wb.Sheets {
			g.Go(func() error {
				terms[i] = extractSheet(ws, inferrer)
				return nil
			})
		}
		_ = g.Wait() // per-sheet extraction cannot fail
	} else {
		for i, ws := range wb.Sheets {
			terms[i] = extractSheet(ws, inferrer)
		}
	}

	data := &models.BroadsheetData{
		BookName: wb.Name,
		Terms:    make(map[string]models.TermData, len(terms)),
	}
	for _, term := range terms {
		data.Terms[term.Schema.Term] = term
	}
	return data
}

func extractSheet(ws *sheet.Grid, inferrer parser.Inferrer) models.TermData {
	pruned := sheet.PruneLeadingRows(ws)
	schema := inferrer.Infer(pruned)
	students := parser.Students(pruned)

	results := make([]models.StudentResult, 0, len(students))
	for _, student := range students {
		results = append(results, parser.ExtractResult(pruned, schema, student))
	}

	slog.Debug("extracted term sheet",
		"term", schema.Term,
		"subjects", len(schema.Subjects),
		"aggregates", len(schema.Aggregates),
		"students", len(results))
	return models.TermData{Schema: schema, Results: results}
}
