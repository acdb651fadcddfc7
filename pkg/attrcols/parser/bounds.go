package parser

import (
	"fmt"

	"github.com/ukaji3/attrcols-go/pkg/attrcols/models"
	"github.com/xuri/excelize/v2"
)

// DataRange returns the cell range (e.g., "A1:P10") covering the non-empty cells of a grid.
// It returns an empty string for a grid without data.
func DataRange(grid models.Grid) (string, error) {
	top, bottom := -1, -1
	left, right := -1, -1
	for r, row := range grid {
		first, last := cellSpan(row)
		if first < 0 {
			continue
		}
		if top < 0 {
			top = r
		}
		bottom = r
		if left < 0 || first < left {
			left = first
		}
		right = max(right, last)
	}
	if top < 0 {
		return "", nil
	}

	startCell, err := excelize.CoordinatesToCellName(left+1, top+1)
	if err != nil {
		return "", err
	}
	endCell, err := excelize.CoordinatesToCellName(right+1, bottom+1)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", startCell, endCell), nil
}

// cellSpan returns the indexes of the first and last non-empty cells of a row,
// or -1, -1 for a blank row.
func cellSpan(row models.Row) (first, last int) {
	first, last = -1, -1
	for i, cell := range row {
		if cell == "" {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	return first, last
}

// FilledCounts counts, per key, the data rows whose projected value is not the sentinel.
// The projected columns are the last len(keys) columns of the grid.
func FilledCounts(grid models.Grid, keys []string, sentinel string) map[string]int {
	counts := make(map[string]int, len(keys))
	offset := grid.Width() - len(keys)
	if offset < 0 {
		return counts
	}
	for i, key := range keys {
		counts[key] = countFilled(grid, offset+i, sentinel)
	}
	return counts
}

// countFilled counts data rows holding a value other than sentinel in column col.
func countFilled(grid models.Grid, col int, sentinel string) int {
	count := 0
	for _, row := range grid.DataRows() {
		if col < len(row) && row[col] != "" && row[col] != sentinel {
			count++
		}
	}
	return count
}
