package parser

import (
	"strings"

	"github.com/ukaji3/attrcols-go/pkg/attrcols/models"
)

// RecordsFromGrid builds one record per data row, keyed by header name.
// Header names and values are unquoted with UnquoteCell; the grid is not modified.
// Only the cells a row actually has are present, so a short row lacks the
// trailing columns.
func RecordsFromGrid(grid models.Grid) []models.Record {
	header := make([]string, grid.Width())
	for j, name := range grid.Header() {
		header[j] = UnquoteCell(strings.TrimSpace(name))
	}
	data := grid.DataRows()
	records := make([]models.Record, 0, len(data))
	for _, row := range data {
		rec := make(models.Record, len(row))
		for j, cell := range row {
			if j < len(header) {
				rec[header[j]] = UnquoteCell(cell)
			}
		}
		records = append(records, rec)
	}
	return records
}

// DropBlankRows removes data rows consisting of a single empty cell, which is
// how the tokenizer represents an empty line. It returns the number removed.
func DropBlankRows(grid models.Grid) (models.Grid, int) {
	if len(grid) == 0 {
		return grid, 0
	}
	kept := grid[:1]
	dropped := 0
	for _, row := range grid[1:] {
		if isBlankRow(row) {
			dropped++
			continue
		}
		kept = append(kept, row)
	}
	return kept, dropped
}

func isBlankRow(row models.Row) bool {
	return len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "")
}
