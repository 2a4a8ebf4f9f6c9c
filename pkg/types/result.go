package types

import (
	"fmt"
	"strings"
)

// Issues is the ordered list of validation messages for one record. An empty
// list means the record is valid.
type Issues []string

// Valid reports whether there are no issues.
func (iss Issues) Valid() bool { return len(iss) == 0 }

// String joins the messages with ", ".
func (iss Issues) String() string { return strings.Join(iss, ", ") }

// BulkEntry is one successfully built row of a bulk run.
type BulkEntry struct {
	Row    int // 1-based index of the input row
	Record *Record
	Issues Issues
}

// RowError reports a row that could not be built.
type RowError struct {
	Row int // 1-based index of the input row
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("error processing row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// BulkResult holds the outcome of building many rows. Entries and Failures
// each preserve input order; a row appears in exactly one of them.
type BulkResult struct {
	Entries  []BulkEntry
	Failures []*RowError
}

// Records returns the built records in input order.
func (r BulkResult) Records() []*Record {
	out := make([]*Record, 0, len(r.Entries))
	for _, e := range r.Entries {
		out = append(out, e.Record)
	}
	return out
}

// InvalidCount returns the number of built records with validation issues.
func (r BulkResult) InvalidCount() int {
	n := 0
	for _, e := range r.Entries {
		if !e.Issues.Valid() {
			n++
		}
	}
	return n
}
