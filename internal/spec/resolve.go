package spec

import "github.com/keshon/jjhunk/internal/diff"

// Decision is the resolved outcome for one file: a whole-file action,
// or the set of selected hunk indexes (selected hunks take the new
// side, everything else reverts to the old side).
type Decision struct {
	Whole    bool
	Action   Action
	Selected map[int]bool
}

// Selects reports whether the hunk at index takes its new side.
func (d Decision) Selects(index int) bool {
	if d.Whole {
		return d.Action == ActionKeep
	}
	return d.Selected[index]
}

// KeepsTail reports which side carries content that selectors cannot
// reach (truncated regions, binary bodies): the new side only under a
// whole-file keep.
func (d Decision) KeepsTail() bool {
	return d.Whole && d.Action == ActionKeep
}

// Resolve turns the selector for one file into a Decision. A nil
// selector means the path was unlisted and def applies to the whole
// file. Hunk references that do not match any of fd's hunks fail with a
// SelectionError.
func Resolve(fd diff.FileDiff, sel *FileSelector, def Action) (Decision, error) {
	if sel == nil {
		return Decision{Whole: true, Action: def}, nil
	}
	if sel.Action != "" {
		return Decision{Whole: true, Action: sel.Action}, nil
	}

	selected := make(map[int]bool, len(sel.Hunks))
	for _, ref := range sel.Hunks {
		if ref.ID == "" {
			if ref.Index >= len(fd.Hunks) {
				return Decision{}, &SelectionError{Path: fd.Path, Index: ref.Index}
			}
			selected[ref.Index] = true
			continue
		}
		index, ok := indexOfID(fd.Hunks, ref.ID)
		if !ok {
			return Decision{}, &SelectionError{Path: fd.Path, Index: -1, ID: ref.ID}
		}
		selected[index] = true
	}
	return Decision{Selected: selected}, nil
}

func indexOfID(hunks []diff.Hunk, id string) (int, bool) {
	for _, h := range hunks {
		if h.ID == id {
			return h.Index, true
		}
	}
	return 0, false
}

// Visibility says how a file shows up in listing output when a spec is
// supplied as a preview filter.
type Visibility int

const (
	ShowAll Visibility = iota
	ShowNone
	ShowSelected
)

// Listing classifies path for display filtering: reset hides the file,
// keep shows every hunk, a hunk selector shows the matching subset.
// Unlike Resolve this never fails; unmatched references simply select
// nothing.
func (s *Spec) Listing(path string) (Visibility, *FileSelector) {
	if s == nil {
		return ShowAll, nil
	}

	sel := s.SelectorFor(path)
	if sel == nil {
		if s.Default == ActionReset {
			return ShowNone, nil
		}
		return ShowAll, nil
	}
	if sel.Action == ActionKeep {
		return ShowAll, nil
	}
	if sel.Action == ActionReset || len(sel.Hunks) == 0 {
		return ShowNone, nil
	}
	return ShowSelected, sel
}
