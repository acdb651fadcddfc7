// Package attrcols converts order exports by promoting the "key: value" lines of
// their attributes column into fixed, ordered columns.
package attrcols

import (
	"go.uber.org/zap"

	"github.com/ukaji3/attrcols-go/pkg/attrcols/parser"
)

// DefaultSheetName is the sheet read from and written to by default.
const DefaultSheetName = "Orders"

// Sentinel is written for a key a row has no value for.
const Sentinel = parser.Sentinel

var keyOrder = []string{
	"utm_source",
	"utm_campaign",
	"utm_medium",
	"utm_term",
	"utm_content",
	"gclid",
	"fbclid",
	"checkout_token",
	"cart_token",
	"PG Transaction Id",
	"Breeze Order Id",
	"CustomerGSTIN",
	"Company Name",
}

// KeyOrder returns the keys appended as columns to every converted file, in order.
func KeyOrder() []string {
	return append([]string(nil), keyOrder...)
}

// Options configures conversion behavior.
type Options struct {
	// SheetName is the workbook sheet holding the orders.
	// If empty, the first sheet is used.
	SheetName string
	// TrimQuotes strips one enclosing pair of quotes from every output cell.
	TrimQuotes bool
	// Logger receives progress and warnings. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		SheetName: DefaultSheetName,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
