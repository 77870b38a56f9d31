package models

// TermData pairs the inferred schema of one term sheet with the results
// extracted under it, in worksheet row order.
type TermData struct {
	// Schema is the inferred column layout for the term.
	Schema BroadsheetSchema `json:"broadsheet_schema"`
	// Results holds one record per student row. Empty (non-nil) when the
	// sheet had no students.
	Results []StudentResult `json:"students_results"`
}

// BroadsheetData represents the extraction output for a whole workbook.
type BroadsheetData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Terms maps term name to that term's schema and results. When two
	// sheets normalize to the same term name the later sheet wins.
	Terms map[string]TermData `json:"terms"`
}
