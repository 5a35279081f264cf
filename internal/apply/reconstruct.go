// Package apply rebuilds file content from a diff and a resolved
// selection decision, and reconciles whole snapshot trees in place.
package apply

import (
	"bytes"

	"github.com/keshon/jjhunk/internal/diff"
	"github.com/keshon/jjhunk/internal/spec"
)

// Reconstruct produces the final byte content of one file. It walks the
// hunks in order with a cursor over the old content: unchanged gaps are
// copied verbatim from the old bytes, each hunk emits its new side when
// selected and its old side otherwise. Regions untouched by any hunk
// come out byte-identical; no re-encoding or newline normalization
// happens anywhere.
func Reconstruct(oldContent, newContent []byte, fd diff.FileDiff, dec spec.Decision) []byte {
	if fd.IsBinary && len(fd.Hunks) == 0 {
		if dec.KeepsTail() {
			return newContent
		}
		return oldContent
	}

	oldBody := oldContent
	if fd.OldSize < len(oldBody) {
		oldBody = oldBody[:fd.OldSize]
	}
	lines := diff.SplitLines(string(oldBody))

	var buf bytes.Buffer
	cursor := 0 // 0-based line index into the old content
	for _, h := range fd.Hunks {
		gapEnd := h.Before.Start - 1
		for ; cursor < gapEnd && cursor < len(lines); cursor++ {
			buf.WriteString(lines[cursor])
		}
		if dec.Selects(h.Index) {
			buf.WriteString(h.Added)
		} else {
			buf.WriteString(h.Removed)
		}
		cursor += h.Before.Lines
	}
	for ; cursor < len(lines); cursor++ {
		buf.WriteString(lines[cursor])
	}

	// Content beyond a truncation limit is never addressable by hunks;
	// it follows the whole-file fallback side.
	if fd.Truncated {
		if dec.KeepsTail() {
			if fd.NewSize <= len(newContent) {
				buf.Write(newContent[fd.NewSize:])
			}
		} else if fd.OldSize <= len(oldContent) {
			buf.Write(oldContent[fd.OldSize:])
		}
	}

	return buf.Bytes()
}
