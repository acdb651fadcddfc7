package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/attrcols-go/pkg/attrcols/models"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		dialect  Dialect
		expected models.Grid
	}{
		{
			name:    "plain rows",
			input:   "h1,h2,h3\na,b,c\nd,e,f",
			dialect: CSVDialect("\n"),
			expected: models.Grid{
				{"h1", "h2", "h3"},
				{"a", "b", "c"},
				{"d", "e", "f"},
			},
		},
		{
			name:    "quoted field separator",
			input:   "h1,h2\n1,\"a,b\"",
			dialect: CSVDialect("\n"),
			expected: models.Grid{
				{"h1", "h2"},
				{"1", `"a,b"`},
			},
		},
		{
			name:    "quoted line separator",
			input:   "Order,Additional Details\n1,\"utm_source: google\nutm_campaign: spring\"",
			dialect: CSVDialect("\n"),
			expected: models.Grid{
				{"Order", "Additional Details"},
				{"1", "\"utm_source: google\nutm_campaign: spring\""},
			},
		},
		{
			name:    "escaped quote does not toggle",
			input:   "h1,h2\n1,a\\\"b,c",
			dialect: CSVDialect("\n"),
			expected: models.Grid{
				{"h1", "h2"},
				{"1", `a\"b`, "c"},
			},
		},
		{
			name:    "unescaped quote toggles",
			input:   "h1,h2\n1,a\"b,c",
			dialect: CSVDialect("\n"),
			expected: models.Grid{
				{"h1", "h2"},
				{"1", `a"b,c`},
			},
		},
		{
			name:    "unterminated quote flushes",
			input:   "h1,h2\n1,\"abc,def\nxyz",
			dialect: CSVDialect("\n"),
			expected: models.Grid{
				{"h1", "h2"},
				{"1", "\"abc,def\nxyz"},
			},
		},
		{
			name:    "trailing line separator",
			input:   "a,b\n1,2\n",
			dialect: CSVDialect("\n"),
			expected: models.Grid{
				{"a", "b"},
				{"1", "2"},
			},
		},
		{
			name:    "trailing empty cell",
			input:   "a,b\n1,",
			dialect: CSVDialect("\n"),
			expected: models.Grid{
				{"a", "b"},
				{"1", ""},
			},
		},
		{
			name:    "blank line",
			input:   "a,b\n\n1,2",
			dialect: CSVDialect("\n"),
			expected: models.Grid{
				{"a", "b"},
				{""},
				{"1", "2"},
			},
		},
		{
			name:    "crlf lines",
			input:   "a,b\r\n1,\"x\r\ny\"\r\n",
			dialect: CSVDialect("\r\n"),
			expected: models.Grid{
				{"a", "b"},
				{"1", "\"x\r\ny\""},
			},
		},
		{
			name:    "sheet dialect",
			input:   "a\t\tb\r\n1\t\tx\ty\r\n2\t\t",
			dialect: SheetDialect,
			expected: models.Grid{
				{"a", "b"},
				{"1", "x\ty"},
				{"2", ""},
			},
		},
		{
			name:    "multibyte text",
			input:   "名前,値\n東京,\"a,é\"",
			dialect: CSVDialect("\n"),
			expected: models.Grid{
				{"名前", "値"},
				{"東京", `"a,é"`},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := Tokenize(tt.input, tt.dialect)
			if err != nil {
				t.Fatalf("Tokenize(%q) failed: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.expected, grid); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestTokenizeUniformWidth(t *testing.T) {
	input := "id,name,total\n1,alpha,10\n2,beta,20\n3,gamma,30\n4,delta,40"
	grid, err := Tokenize(input, CSVDialect("\n"))
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if len(grid) != 5 {
		t.Fatalf("Expected 5 rows, got %d", len(grid))
	}
	for i, row := range grid {
		if len(row) != 3 {
			t.Errorf("row %d has %d cells, expected 3", i, len(row))
		}
	}
	if ragged := RaggedRows(grid); len(ragged) != 0 {
		t.Errorf("RaggedRows = %v, expected none", ragged)
	}
}

func TestTokenizeMalformed(t *testing.T) {
	tests := []struct {
		input   string
		dialect Dialect
	}{
		{"abc", CSVDialect("\n")},
		{"a,b", CSVDialect("\n")},
		{"a\nb", CSVDialect("\n")},
		{"a,b\nc,d", CSVDialect("\r\n")},
		{"", SheetDialect},
	}

	for _, tt := range tests {
		grid, err := Tokenize(tt.input, tt.dialect)
		if !errors.Is(err, ErrMalformedInput) {
			t.Errorf("Tokenize(%q) error = %v, expected ErrMalformedInput", tt.input, err)
		}
		if grid != nil {
			t.Errorf("Tokenize(%q) returned partial grid %v", tt.input, grid)
		}
		var malformed *MalformedInputError
		if errors.As(err, &malformed) && malformed.FieldSep != tt.dialect.FieldSep {
			t.Errorf("MalformedInputError.FieldSep = %q, expected %q", malformed.FieldSep, tt.dialect.FieldSep)
		}
	}
}

func TestUnquoteCell(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"a,b"`, "a,b"},
		{`"say \"hi\""`, `say "hi"`},
		{`plain`, "plain"},
		{`"`, `"`},
		{`""`, ""},
		{`"open`, `"open`},
		{``, ``},
	}

	for _, tt := range tests {
		result := UnquoteCell(tt.input)
		if result != tt.expected {
			t.Errorf("UnquoteCell(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestDetectLineSep(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a,b\r\n1,2", "\r\n"},
		{"a,b\n1,2", "\n"},
		{"a,b", "\n"},
		{"a,b\n1,\"x\r\ny\"\n", "\n"},
		{"a,\"b\nc\"\r\n1,2", "\r\n"},
		{"a,\\\"b\r\n1,2\n", "\r\n"},
		{"a,\"b\r\nc", "\n"},
	}

	for _, tt := range tests {
		result := DetectLineSep(tt.input)
		if result != tt.expected {
			t.Errorf("DetectLineSep(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestRaggedRows(t *testing.T) {
	grid := models.Grid{
		{"a", "b", "c"},
		{"1", "2", "3"},
		{"1"},
		{"1", "2", "3", "4"},
	}
	if diff := cmp.Diff([]int{2, 3}, RaggedRows(grid)); diff != "" {
		t.Errorf("RaggedRows mismatch (-want +got):\n%s", diff)
	}
}
