package parser

import (
	"strings"

	"github.com/ukaji3/attrcols-go/pkg/attrcols/models"
)

// Attribute source columns, in order of preference.
const (
	NoteAttributesColumn    = "Note Attributes"
	AdditionalDetailsColumn = "Additional Details"
)

// AttributeColumns lists the recognized attribute source columns by preference.
var AttributeColumns = []string{NoteAttributesColumn, AdditionalDetailsColumn}

// ResolveAttributesCell returns the attributes cell of a record and the column it
// was read from. The first column of AttributeColumns present in the record wins,
// even when its value is empty. It returns nil if no column is present.
func ResolveAttributesCell(rec models.Record) (*string, string) {
	for _, col := range AttributeColumns {
		if v, ok := rec[col]; ok {
			return &v, col
		}
	}
	return nil, ""
}

// ExtractAttributes parses newline separated "key: value" lines into a map.
// A leading quote and a trailing quote are removed when the cell starts with one.
// Lines without a colon are skipped; later duplicates overwrite earlier ones.
func ExtractAttributes(cell *string) (models.AttributeMap, error) {
	if cell == nil {
		return nil, &MissingAttributesError{Columns: AttributeColumns}
	}

	text := *cell
	if strings.HasPrefix(text, string(DefaultQuote)) {
		text = strings.TrimPrefix(text, string(DefaultQuote))
		text = strings.TrimSuffix(text, string(DefaultQuote))
	}

	attrs := make(models.AttributeMap)
	for _, line := range strings.Split(text, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		attrs[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return attrs, nil
}
