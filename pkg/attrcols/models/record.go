package models

// Record is a structured row keyed by header name.
// A key is present when the source row has a cell for that column, even if empty.
type Record map[string]string

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Merge copies every entry of attrs into r. Entries of attrs win on collision.
func (r Record) Merge(attrs AttributeMap) {
	for k, v := range attrs {
		r[k] = v
	}
}

// AttributeMap maps attribute keys to values extracted from a single cell.
type AttributeMap map[string]string
