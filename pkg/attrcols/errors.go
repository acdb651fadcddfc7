package attrcols

import (
	"errors"
	"fmt"

	"github.com/ukaji3/attrcols-go/pkg/attrcols/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input file is neither csv nor xlsx.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrSheetNotFound indicates the workbook has no sheet with the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// Core conversion failures, matched with errors.Is.
var (
	ErrMalformedInput    = parser.ErrMalformedInput
	ErrMissingAttributes = parser.ErrMissingAttributes
	ErrRowCountMismatch  = parser.ErrRowCountMismatch
)

// Conversion stages reported by ConversionError.
const (
	StageRead       = "read"
	StageTokenize   = "tokenize"
	StageAttributes = "attributes"
	StageProject    = "project"
)

// ConversionError represents an error during conversion of one file.
type ConversionError struct {
	File  string
	Stage string
	Err   error
}

func (e *ConversionError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("conversion error (%s): %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("conversion error in %q (%s): %v", e.File, e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(file, stage string, err error) *ConversionError {
	return &ConversionError{
		File:  file,
		Stage: stage,
		Err:   err,
	}
}
