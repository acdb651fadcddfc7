package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedInput indicates the text has no line or field separator.
var ErrMalformedInput = errors.New("malformed input")

// ErrMissingAttributes indicates a row has none of the attribute source columns.
var ErrMissingAttributes = errors.New("missing attributes column")

// ErrRowCountMismatch indicates structured rows and grid rows disagree in count.
var ErrRowCountMismatch = errors.New("row count mismatch")

// MalformedInputError reports the separators the text was expected to contain.
type MalformedInputError struct {
	LineSep  string
	FieldSep string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%v: expected line separator %q and field separator %q", ErrMalformedInput, e.LineSep, e.FieldSep)
}

func (e *MalformedInputError) Unwrap() error {
	return ErrMalformedInput
}

// MissingAttributesError reports the data row (1-based) lacking an attributes column.
type MissingAttributesError struct {
	Row     int
	Columns []string
}

func (e *MissingAttributesError) Error() string {
	if e.Row <= 0 {
		return fmt.Sprintf("%v: none of %s found", ErrMissingAttributes, quoteAll(e.Columns))
	}
	return fmt.Sprintf("%v: row %d has none of %s", ErrMissingAttributes, e.Row, quoteAll(e.Columns))
}

func (e *MissingAttributesError) Unwrap() error {
	return ErrMissingAttributes
}

// RowCountMismatchError reports the two disagreeing counts.
type RowCountMismatchError struct {
	Records int
	Rows    int
}

func (e *RowCountMismatchError) Error() string {
	return fmt.Sprintf("%v: %d structured rows, %d grid data rows", ErrRowCountMismatch, e.Records, e.Rows)
}

func (e *RowCountMismatchError) Unwrap() error {
	return ErrRowCountMismatch
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, " or ")
}
