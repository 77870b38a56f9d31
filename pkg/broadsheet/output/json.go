// Package output serializes extraction results.
package output

import (
	"encoding/json"

	"github.com/edenplace/reportsheet-go/pkg/broadsheet/models"
)

// ToJSON serializes a whole workbook's extraction output.
func ToJSON(data *models.BroadsheetData, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(data, "", "  ")
	}
	return json.Marshal(data)
}

// TermToJSON serializes a single term's schema and results.
func TermToJSON(term *models.TermData, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(term, "", "  ")
	}
	return json.Marshal(term)
}
