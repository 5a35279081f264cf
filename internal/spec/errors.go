package spec

import "fmt"

// ParseError marks a malformed selection document: bad syntax, unknown
// fields, invalid selector values, or a selector mixing action with
// hunks/ids. Detected before any diff or reconstruction work happens.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return "invalid selection spec: " + e.Msg
}

// SelectionError marks a selector that references a hunk the file does
// not have: an index out of range or an id with no match. Index is -1
// for id references.
type SelectionError struct {
	Path  string
	Index int
	ID    string
}

func (e *SelectionError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s: no hunk with id %s", e.Path, e.ID)
	}
	return fmt.Sprintf("%s: hunk index %d out of range", e.Path, e.Index)
}
