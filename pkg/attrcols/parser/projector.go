package parser

import "github.com/ukaji3/attrcols-go/pkg/attrcols/models"

// Sentinel is appended in place of a key absent from a row.
const Sentinel = "NA"

// Project appends one column per key to the grid, in keyOrder.
// lookups are paired positionally with the data rows. A key counts as present
// when its value is non-empty; "0" is a value. Data rows are first padded or
// truncated to the header width so the finished grid is rectangular.
// The grid is modified in place and returned.
func Project(grid models.Grid, lookups []models.Record, keyOrder []string, sentinel string) (models.Grid, error) {
	if len(grid) == 0 || len(lookups) != len(grid)-1 {
		return nil, &RowCountMismatchError{Records: len(lookups), Rows: max(len(grid)-1, 0)}
	}

	width := grid.Width()
	grid[0] = append(grid[0], keyOrder...)

	for i, lookup := range lookups {
		row := normalizeRow(grid[i+1], width)
		for _, key := range keyOrder {
			if v, ok := lookup[key]; ok && v != "" {
				row = append(row, v)
			} else {
				row = append(row, sentinel)
			}
		}
		grid[i+1] = row
	}

	return grid, nil
}

// normalizeRow returns row resized to width cells.
func normalizeRow(row models.Row, width int) models.Row {
	if len(row) > width {
		return row[:width:width]
	}
	for len(row) < width {
		row = append(row, "")
	}
	return row
}
