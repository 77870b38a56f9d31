package report

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/edenplace/reportsheet-go/pkg/broadsheet/models"
)

// ErrMissingFields indicates required report fields are still blank.
var ErrMissingFields = errors.New("missing report fields")

//go:embed report.html
var reportHTML string

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"score":     formatScore,
	"label":     formatLabel,
	"scoreHead": scoreHeading,
	"aggHead":   aggregateHeading,
}).Parse(reportHTML))

// Render writes the report sheet HTML for the given data. It fails with
// ErrMissingFields before rendering anything when required fields are
// blank.
func Render(w io.Writer, data ReportData) error {
	if missing := data.MissingFields(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	return reportTemplate.Execute(w, data)
}

// formatScore renders an optional numeric value, "nil" when absent.
func formatScore(v *float64) string {
	if v == nil {
		return "nil"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// formatLabel turns an internal key into a display heading.
func formatLabel(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "_", " "))
}

// scoreHeading annotates a score-type heading with its overall
// obtainable value when the schema recorded one.
func scoreHeading(schema models.SubjectSchema, key string) string {
	heading := formatLabel(key)
	if info, ok := schema[key]; ok && info.Overall != nil {
		heading = fmt.Sprintf("%s (%s)", heading, formatScore(info.Overall))
	}
	return heading
}

// aggregateHeading annotates an aggregate heading with its overall
// obtainable value when the schema recorded one.
func aggregateHeading(schema map[string]models.SchemaInfo, name string) string {
	heading := formatLabel(name)
	if info, ok := schema[name]; ok && info.Overall != nil {
		heading = fmt.Sprintf("%s (%s)", heading, formatScore(info.Overall))
	}
	return heading
}
