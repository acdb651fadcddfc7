// Package parser provides the text tokenizer, attribute extraction and column
// projection used to convert order exports.
package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/attrcols-go/pkg/attrcols/models"
)

const (
	// DefaultQuote is the group character toggling literal separators.
	DefaultQuote = '"'
	// DefaultEscape suppresses the toggle of an immediately following quote.
	DefaultEscape = '\\'
)

// Dialect describes the separators and quoting of delimited text.
type Dialect struct {
	LineSep  string
	FieldSep string
	Quote    rune
	Escape   rune
}

// CSVDialect returns the dialect of comma separated exports using lineSep.
func CSVDialect(lineSep string) Dialect {
	return Dialect{
		LineSep:  lineSep,
		FieldSep: ",",
		Quote:    DefaultQuote,
		Escape:   DefaultEscape,
	}
}

// SheetDialect is the dialect used to serialize spreadsheet rows.
var SheetDialect = Dialect{
	LineSep:  "\r\n",
	FieldSep: "\t\t",
	Quote:    DefaultQuote,
	Escape:   DefaultEscape,
}

// DetectLineSep returns "\r\n" if the first newline outside quotes is preceded
// by a carriage return, "\n" otherwise. Quotes follow the same toggle and escape
// rules as Tokenize.
func DetectLineSep(text string) string {
	inQuote := false
	var prev rune = -1
	for _, r := range text {
		switch {
		case r == '\n' && !inQuote:
			if prev == '\r' {
				return "\r\n"
			}
			return "\n"
		case r == DefaultQuote && prev != DefaultEscape:
			inQuote = !inQuote
		}
		prev = r
	}
	return "\n"
}

// Tokenize splits text into a grid of rows and cells.
// The quote character toggles whether separators are data; it is kept in the
// cell text. A quote preceded by the escape character does not toggle.
// Rows may be ragged. An unterminated quote at the end of the text is not an error.
func Tokenize(text string, d Dialect) (models.Grid, error) {
	if d.LineSep == "" || d.FieldSep == "" ||
		!strings.Contains(text, d.LineSep) || !strings.Contains(text, d.FieldSep) {
		return nil, &MalformedInputError{LineSep: d.LineSep, FieldSep: d.FieldSep}
	}

	var (
		grid    models.Grid
		row     models.Row
		buf     strings.Builder
		inQuote bool
		prev    rune = -1
		pending bool
	)

	flushCell := func() {
		row = append(row, buf.String())
		buf.Reset()
	}

	for i := 0; i < len(text); {
		if !inQuote {
			if strings.HasPrefix(text[i:], d.LineSep) {
				flushCell()
				grid = append(grid, row)
				row = nil
				pending = false
				i += len(d.LineSep)
				prev = -1
				continue
			}
			if strings.HasPrefix(text[i:], d.FieldSep) {
				flushCell()
				pending = true
				i += len(d.FieldSep)
				prev = -1
				continue
			}
		}

		r, size := utf8.DecodeRuneInString(text[i:])
		buf.WriteString(text[i : i+size])
		if r == d.Quote && prev != d.Escape {
			inQuote = !inQuote
		}
		pending = true
		prev = r
		i += size
	}

	// flush without a trailing separator
	if pending {
		flushCell()
		grid = append(grid, row)
	}

	return grid, nil
}

// UnquoteCell strips one enclosing pair of quotes and unescapes inner quotes.
// Cells not wrapped in quotes are returned unchanged.
func UnquoteCell(s string) string {
	if len(s) < 2 || s[0] != DefaultQuote || s[len(s)-1] != DefaultQuote {
		return s
	}
	return strings.ReplaceAll(s[1:len(s)-1], `\"`, `"`)
}

// RaggedRows returns the indexes of rows whose width differs from the header.
func RaggedRows(grid models.Grid) []int {
	var ragged []int
	width := grid.Width()
	for i := 1; i < len(grid); i++ {
		if len(grid[i]) != width {
			ragged = append(ragged, i)
		}
	}
	return ragged
}
