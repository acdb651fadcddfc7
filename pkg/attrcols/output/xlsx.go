// Package output writes converted grids to xlsx, csv and json.
package output

import (
	"fmt"

	"github.com/ukaji3/attrcols-go/pkg/attrcols/models"
	"github.com/ukaji3/attrcols-go/pkg/attrcols/parser"
	"github.com/xuri/excelize/v2"
)

// ToXLSX builds a workbook holding the grid in a single sheet.
// The header row is bold and carries an autofilter over the data range.
func ToXLSX(grid models.Grid, sheetName string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		f.Close()
		return nil, err
	}

	for i, row := range grid {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			f.Close()
			return nil, err
		}
		values := []string(row)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if len(grid) == 0 {
		return f, nil
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetRowStyle(sheetName, 1, 1, style); err != nil {
		f.Close()
		return nil, err
	}

	rangeRef, err := parser.DataRange(grid)
	if err != nil {
		f.Close()
		return nil, err
	}
	if rangeRef != "" {
		if err := f.AutoFilter(sheetName, rangeRef, nil); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// WriteXLSX writes the grid as a workbook to path.
func WriteXLSX(grid models.Grid, sheetName, path string) error {
	f, err := ToXLSX(grid, sheetName)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}
