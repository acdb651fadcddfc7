// Package models defines data structures for order export conversion.
package models

// Row is an ordered sequence of cell values.
type Row []string

// Grid is an ordered sequence of rows. The first row is the header.
type Grid []Row

// Header returns the first row, or nil for an empty grid.
func (g Grid) Header() Row {
	if len(g) == 0 {
		return nil
	}
	return g[0]
}

// DataRows returns every row after the header.
func (g Grid) DataRows() []Row {
	if len(g) < 2 {
		return nil
	}
	return g[1:]
}

// Width returns the header length.
func (g Grid) Width() int {
	return len(g.Header())
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append(Row(nil), row...)
	}
	return out
}
