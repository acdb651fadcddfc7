package attrcols

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/attrcols-go/pkg/attrcols/models"
	"github.com/ukaji3/attrcols-go/pkg/attrcols/parser"
)

// Convert converts an order export file (csv or xlsx) and summarizes the result.
func Convert(path string, opts Options) (*models.Result, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	bookName := filepath.Base(path)
	log := opts.logger().With(zap.String("file", bookName))
	opts.Logger = log

	var (
		grid      models.Grid
		sheetName string
		err       error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, NewConversionError(bookName, StageRead, err)
		}
		grid, err = ConvertCSV(string(data), opts)
	case ".xlsx", ".xlsm":
		var f *excelize.File
		f, err = excelize.OpenFile(path)
		if err != nil {
			return nil, NewConversionError(bookName, StageRead, err)
		}
		defer f.Close()
		grid, sheetName, err = ConvertWorkbook(f, opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, bookName)
	}
	if err != nil {
		var convErr *ConversionError
		if errors.As(err, &convErr) && convErr.File == "" {
			convErr.File = bookName
		}
		return nil, err
	}

	keys := KeyOrder()
	result := &models.Result{
		BookName:  bookName,
		SheetName: sheetName,
		Grid:      grid,
		Summary: models.Summary{
			Rows:    len(grid.DataRows()),
			Columns: grid.Width(),
			Filled:  parser.FilledCounts(grid, keys, Sentinel),
		},
	}
	log.Info("conversion finished",
		zap.Int("rows", result.Summary.Rows),
		zap.Int("columns", result.Summary.Columns))
	return result, nil
}

// ConvertCSV converts the text of a csv order export.
func ConvertCSV(text string, opts Options) (models.Grid, error) {
	return convertCSV(text, keyOrder, opts)
}

func convertCSV(text string, keys []string, opts Options) (models.Grid, error) {
	log := opts.logger()
	text = strings.TrimPrefix(text, "\ufeff")

	dialect := parser.CSVDialect(parser.DetectLineSep(text))
	grid, err := parser.Tokenize(text, dialect)
	if err != nil {
		return nil, NewConversionError("", StageTokenize, err)
	}

	grid, dropped := parser.DropBlankRows(grid)
	if dropped > 0 {
		log.Warn("dropped blank lines", zap.Int("count", dropped))
	}
	log.Debug("csv tokenized", zap.Int("rows", len(grid)), zap.Int("columns", grid.Width()))

	records := parser.RecordsFromGrid(grid)
	return convertRows(records, grid, keys, opts)
}

// ConvertWorkbook converts the order sheet of a workbook.
// It returns the converted grid and the name of the sheet it was read from.
func ConvertWorkbook(f *excelize.File, opts Options) (models.Grid, string, error) {
	log := opts.logger()

	sheetName, err := resolveSheet(f, opts.SheetName)
	if err != nil {
		return nil, "", NewConversionError("", StageRead, err)
	}

	rows, err := parser.ReadSheetRows(f, sheetName)
	if err != nil {
		return nil, sheetName, NewConversionError("", StageRead, err)
	}
	log.Debug("sheet read", zap.String("sheet", sheetName), zap.Int("rows", len(rows)))

	records := parser.RecordsFromRows(rows)
	text := parser.SerializeRows(rows, parser.SheetDialect)
	grid, err := parser.Tokenize(text, parser.SheetDialect)
	if err != nil {
		return nil, sheetName, NewConversionError("", StageTokenize, err)
	}
	parser.UnescapeQuotes(grid, parser.SheetDialect)

	grid, err = convertRows(records, grid, keyOrder, opts)
	return grid, sheetName, err
}

// ConvertRows appends the KeyOrder columns to grid using the structured records
// paired positionally with its data rows. The attributes of every record are
// merged into it before projection, overriding same named fields.
// Any failure aborts the conversion and no grid is returned.
func ConvertRows(records []models.Record, grid models.Grid, opts Options) (models.Grid, error) {
	return convertRows(records, grid, keyOrder, opts)
}

func convertRows(records []models.Record, grid models.Grid, keys []string, opts Options) (models.Grid, error) {
	log := opts.logger()

	if len(grid) == 0 || len(records) != len(grid)-1 {
		return nil, NewConversionError("", StageProject,
			&parser.RowCountMismatchError{Records: len(records), Rows: max(len(grid)-1, 0)})
	}
	if ragged := parser.RaggedRows(grid); len(ragged) > 0 {
		log.Warn("rows differ from header width", zap.Ints("rows", ragged), zap.Int("width", grid.Width()))
	}

	lookups := make([]models.Record, len(records))
	for i, rec := range records {
		cell, column := parser.ResolveAttributesCell(rec)
		attrs, err := parser.ExtractAttributes(cell)
		if err != nil {
			var missing *parser.MissingAttributesError
			if errors.As(err, &missing) {
				missing.Row = i + 1
			}
			return nil, NewConversionError("", StageAttributes, err)
		}
		log.Debug("attributes extracted",
			zap.Int("row", i+1), zap.String("column", column), zap.Int("keys", len(attrs)))

		lookup := rec.Clone()
		lookup.Merge(attrs)
		lookups[i] = lookup
	}

	out, err := parser.Project(grid.Clone(), lookups, keys, Sentinel)
	if err != nil {
		return nil, NewConversionError("", StageProject, err)
	}
	if opts.TrimQuotes {
		trimQuotes(out)
	}
	return out, nil
}

func trimQuotes(grid models.Grid) {
	for _, row := range grid {
		for j, cell := range row {
			row[j] = parser.UnquoteCell(cell)
		}
	}
}

// resolveSheet returns name if the workbook has it, or the first sheet if name is empty.
func resolveSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if name == "" {
		if len(sheets) == 0 {
			return "", ErrSheetNotFound
		}
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}

// DefaultOutputPath returns the path next to input named "<name>-updated.<format>".
func DefaultOutputPath(input, format string) string {
	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(input), name+"-updated."+format)
}
