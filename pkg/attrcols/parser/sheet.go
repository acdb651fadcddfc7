package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/attrcols-go/pkg/attrcols/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheetRows returns the formatted cell values of a sheet.
func ReadSheetRows(f *excelize.File, sheetName string) ([][]string, error) {
	return f.GetRows(sheetName)
}

// RecordsFromRows builds one record per data row, keyed by header name.
// Spreadsheet rows lose their trailing empty cells, so every record is padded
// to the header width with empty values.
func RecordsFromRows(rows [][]string) []models.Record {
	if len(rows) == 0 {
		return nil
	}
	header := rows[0]
	records := make([]models.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(models.Record, len(header))
		for j, name := range header {
			name = strings.TrimSpace(name)
			if j < len(row) {
				rec[name] = row[j]
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

// SerializeRows renders rows as delimited text in the given dialect.
// Cells containing a separator are wrapped in quotes; quotes inside cells are
// escaped so they never toggle quoting.
func SerializeRows(rows [][]string, d Dialect) string {
	var sb strings.Builder
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(d.LineSep)
		}
		n := max(len(row), width)
		for j := 0; j < n; j++ {
			if j > 0 {
				sb.WriteString(d.FieldSep)
			}
			if j < len(row) {
				sb.WriteString(serializeCell(row[j], d))
			}
		}
	}
	return sb.String()
}

func serializeCell(cell string, d Dialect) string {
	quote := string(d.Quote)
	escaped := strings.ReplaceAll(cell, quote, string(d.Escape)+quote)
	if needsQuotes(cell, d) {
		return quote + escaped + quote
	}
	return escaped
}

// needsQuotes reports whether a cell holds a separator, or starts or ends with a
// character of one and could merge with the separator written next to it.
func needsQuotes(cell string, d Dialect) bool {
	if strings.Contains(cell, d.FieldSep) || strings.Contains(cell, d.LineSep) {
		return true
	}
	if cell == "" {
		return false
	}
	seps := d.FieldSep + d.LineSep
	first, _ := utf8.DecodeRuneInString(cell)
	last, _ := utf8.DecodeLastRuneInString(cell)
	return strings.ContainsRune(seps, first) || strings.ContainsRune(seps, last)
}

// UnescapeQuotes removes the escape character in front of quotes in every cell.
// It undoes the escaping added by SerializeRows once the text is tokenized.
func UnescapeQuotes(grid models.Grid, d Dialect) {
	escaped := string(d.Escape) + string(d.Quote)
	for _, row := range grid {
		for j, cell := range row {
			row[j] = strings.ReplaceAll(cell, escaped, string(d.Quote))
		}
	}
}
