package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the amount of unchanged text attached to each side of
// a hunk for display.
const contextLines = 1

// File diffs two versions of one file into an ordered hunk sequence.
// Status and RenameFrom are left for the caller to fill in; the engine
// only knows about content.
func File(path string, oldContent, newContent []byte, opts Options) (FileDiff, error) {
	fd := FileDiff{
		Path:    path,
		Hunks:   []Hunk{},
		OldSize: len(oldContent),
		NewSize: len(newContent),
	}

	mode := opts.Binary
	if mode == "" {
		mode = BinaryMark
	}
	switch mode {
	case BinarySkip, BinaryMark, BinaryInclude:
	default:
		return fd, fmt.Errorf("unknown binary mode %q", opts.Binary)
	}

	if IsBinaryData(oldContent) || IsBinaryData(newContent) {
		fd.IsBinary = true
		if mode == BinaryInclude && !contentEqual(oldContent, newContent) {
			fd.Hunks = append(fd.Hunks, opaqueHunk(path, oldContent, newContent))
		}
		return fd, nil
	}

	if contentEqual(oldContent, newContent) {
		return fd, nil
	}

	oldText, oldTrunc := Truncate(string(oldContent), opts.MaxBytes, opts.MaxLines)
	newText, newTrunc := Truncate(string(newContent), opts.MaxBytes, opts.MaxLines)
	fd.Truncated = oldTrunc || newTrunc
	fd.OldSize = len(oldText)
	fd.NewSize = len(newText)

	fd.Hunks = hunksBetween(path, oldText, newText)
	return fd, nil
}

// StatusBetween derives a file status from which sides exist.
func StatusBetween(oldExists, newExists bool) Status {
	switch {
	case !oldExists && newExists:
		return StatusAdded
	case oldExists && !newExists:
		return StatusRemoved
	default:
		return StatusModified
	}
}

// hunksBetween runs a line-level Myers diff and folds the edit script
// into maximal runs of divergence separated by unchanged gaps.
func hunksBetween(path, oldText, newText string) []Hunk {
	dmp := diffmatchpatch.New()
	oldChars, newChars, lineIndex := dmp.DiffLinesToChars(oldText, newText)
	edits := dmp.DiffMain(oldChars, newChars, false)
	edits = dmp.DiffCharsToLines(edits, lineIndex)

	oldLines := SplitLines(oldText)

	var (
		hunks       []Hunk
		removed     strings.Builder
		added       strings.Builder
		inHunk      bool
		beforeLine  = 1
		afterLine   = 1
		beforeStart int
		afterStart  int
		beforeLen   int
		afterLen    int
	)

	flush := func() {
		before := LineRange{Start: beforeStart, Lines: beforeLen}
		after := LineRange{Start: afterStart, Lines: afterLen}
		hunks = append(hunks, buildHunk(path, len(hunks), removed.String(), added.String(), before, after, oldLines))
		removed.Reset()
		added.Reset()
		beforeLen, afterLen = 0, 0
		inHunk = false
	}

	open := func() {
		if !inHunk {
			inHunk = true
			beforeStart = beforeLine
			afterStart = afterLine
			beforeLen, afterLen = 0, 0
		}
	}

	for _, edit := range edits {
		n := CountLines(edit.Text)
		switch edit.Type {
		case diffmatchpatch.DiffEqual:
			if inHunk {
				flush()
			}
			beforeLine += n
			afterLine += n
		case diffmatchpatch.DiffDelete:
			open()
			removed.WriteString(edit.Text)
			beforeLen += n
			beforeLine += n
		case diffmatchpatch.DiffInsert:
			open()
			added.WriteString(edit.Text)
			afterLen += n
			afterLine += n
		}
	}
	if inHunk {
		flush()
	}

	return hunks
}

func buildHunk(path string, index int, removed, added string, before, after LineRange, oldLines []string) Hunk {
	kind := kindOf(removed, added)
	return Hunk{
		Index:   index,
		ID:      hunkID(path, kind, removed, added, before, after),
		Kind:    kind,
		Removed: removed,
		Added:   added,
		Before:  before,
		After:   after,
		Context: buildContext(oldLines, before),
	}
}

// opaqueHunk represents a binary change as one replace spanning the
// whole file, for BinaryInclude mode.
func opaqueHunk(path string, oldContent, newContent []byte) Hunk {
	removed := string(oldContent)
	added := string(newContent)
	before := LineRange{Start: 1, Lines: CountLines(removed)}
	after := LineRange{Start: 1, Lines: CountLines(added)}
	kind := kindOf(removed, added)
	return Hunk{
		Index:   0,
		ID:      hunkID(path, kind, removed, added, before, after),
		Kind:    kind,
		Removed: removed,
		Added:   added,
		Before:  before,
		After:   after,
	}
}

func kindOf(removed, added string) Kind {
	switch {
	case removed == "" && added != "":
		return KindInsert
	case removed != "" && added == "":
		return KindDelete
	default:
		return KindReplace
	}
}

// buildContext picks the unchanged lines adjacent to the hunk in the
// old content. Both versions agree there, so the old side suffices.
func buildContext(oldLines []string, before LineRange) *Context {
	if len(oldLines) == 0 {
		return nil
	}

	start := before.Start - 1
	if start > len(oldLines) {
		start = len(oldLines)
	}
	preFrom := start - contextLines
	if preFrom < 0 {
		preFrom = 0
	}
	postFrom := start + before.Lines
	if postFrom > len(oldLines) {
		postFrom = len(oldLines)
	}
	postTo := postFrom + contextLines
	if postTo > len(oldLines) {
		postTo = len(oldLines)
	}

	pre := strings.Join(oldLines[preFrom:start], "")
	post := strings.Join(oldLines[postFrom:postTo], "")
	if pre == "" && post == "" {
		return nil
	}
	return &Context{Before: pre, After: post}
}
