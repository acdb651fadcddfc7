package models

// Summary holds counts describing a finished conversion.
type Summary struct {
	// Rows is the number of data rows (header excluded).
	Rows int `json:"rows"`
	// Columns is the header width after projection.
	Columns int `json:"columns"`
	// Filled maps each projected key to the number of rows that had a value for it.
	Filled map[string]int `json:"filled"`
}

// Result is the output of converting one order export file.
type Result struct {
	// BookName is the input file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet the rows were read from; empty for CSV input.
	SheetName string `json:"sheet_name,omitempty"`
	// Grid holds the header and data rows with projected columns appended.
	Grid Grid `json:"grid"`
	// Summary describes the projected columns.
	Summary Summary `json:"summary"`
}
