package diff_test

import (
	"strings"
	"testing"

	"github.com/keshon/jjhunk/internal/diff"
)

func mustDiff(t *testing.T, path, oldText, newText string, opts diff.Options) diff.FileDiff {
	t.Helper()
	fd, err := diff.File(path, []byte(oldText), []byte(newText), opts)
	if err != nil {
		t.Fatalf("File(%q): %v", path, err)
	}
	return fd
}

func TestFileUnchanged(t *testing.T) {
	fd := mustDiff(t, "a.txt", "same\ncontent\n", "same\ncontent\n", diff.Options{})
	if len(fd.Hunks) != 0 {
		t.Fatalf("expected no hunks for identical content, got %d", len(fd.Hunks))
	}
	if fd.IsBinary || fd.Truncated {
		t.Fatalf("unexpected flags: binary=%v truncated=%v", fd.IsBinary, fd.Truncated)
	}
}

func TestFileSingleReplace(t *testing.T) {
	fd := mustDiff(t, "a.txt", "a\nb\nc\n", "a\nx\nc\n", diff.Options{})
	if len(fd.Hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(fd.Hunks))
	}

	h := fd.Hunks[0]
	if h.Kind != diff.KindReplace {
		t.Errorf("kind = %q, want replace", h.Kind)
	}
	if h.Removed != "b\n" || h.Added != "x\n" {
		t.Errorf("sides = %q / %q, want b\\n / x\\n", h.Removed, h.Added)
	}
	if h.Before != (diff.LineRange{Start: 2, Lines: 1}) {
		t.Errorf("before = %+v", h.Before)
	}
	if h.After != (diff.LineRange{Start: 2, Lines: 1}) {
		t.Errorf("after = %+v", h.After)
	}
	if !strings.HasPrefix(h.ID, diff.HunkIDPrefix) {
		t.Errorf("id %q missing prefix", h.ID)
	}
	if h.Context == nil || h.Context.Before != "a\n" || h.Context.After != "c\n" {
		t.Errorf("context = %+v", h.Context)
	}
}

func TestFileInsert(t *testing.T) {
	fd := mustDiff(t, "a.txt", "a\nc\n", "a\nb\nc\n", diff.Options{})
	if len(fd.Hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(fd.Hunks))
	}
	h := fd.Hunks[0]
	if h.Kind != diff.KindInsert {
		t.Errorf("kind = %q, want insert", h.Kind)
	}
	if h.Removed != "" || h.Added != "b\n" {
		t.Errorf("sides = %q / %q", h.Removed, h.Added)
	}
	if h.Before != (diff.LineRange{Start: 2, Lines: 0}) {
		t.Errorf("before = %+v", h.Before)
	}
	if h.After != (diff.LineRange{Start: 2, Lines: 1}) {
		t.Errorf("after = %+v", h.After)
	}
}

func TestFileDelete(t *testing.T) {
	fd := mustDiff(t, "a.txt", "a\nb\nc\n", "a\nc\n", diff.Options{})
	if len(fd.Hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(fd.Hunks))
	}
	h := fd.Hunks[0]
	if h.Kind != diff.KindDelete {
		t.Errorf("kind = %q, want delete", h.Kind)
	}
	if h.Removed != "b\n" || h.Added != "" {
		t.Errorf("sides = %q / %q", h.Removed, h.Added)
	}
	if h.Before != (diff.LineRange{Start: 2, Lines: 1}) {
		t.Errorf("before = %+v", h.Before)
	}
}

func TestFileMultipleHunks(t *testing.T) {
	fd := mustDiff(t, "a.txt", "1\n2\n3\n4\n", "1\nX\n3\nY\n", diff.Options{})
	if len(fd.Hunks) != 2 {
		t.Fatalf("expected 2 hunks, got %d", len(fd.Hunks))
	}
	if fd.Hunks[0].Index != 0 || fd.Hunks[1].Index != 1 {
		t.Errorf("indexes = %d, %d", fd.Hunks[0].Index, fd.Hunks[1].Index)
	}
	if fd.Hunks[0].Removed != "2\n" || fd.Hunks[0].Added != "X\n" {
		t.Errorf("hunk 0 sides = %q / %q", fd.Hunks[0].Removed, fd.Hunks[0].Added)
	}
	if fd.Hunks[1].Removed != "4\n" || fd.Hunks[1].Added != "Y\n" {
		t.Errorf("hunk 1 sides = %q / %q", fd.Hunks[1].Removed, fd.Hunks[1].Added)
	}
	if fd.Hunks[1].Before.Start != 4 {
		t.Errorf("hunk 1 before start = %d, want 4", fd.Hunks[1].Before.Start)
	}
}

func TestFileNoTrailingNewline(t *testing.T) {
	fd := mustDiff(t, "a.txt", "a\nb", "a\nc", diff.Options{})
	if len(fd.Hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(fd.Hunks))
	}
	h := fd.Hunks[0]
	if h.Removed != "b" || h.Added != "c" {
		t.Errorf("sides = %q / %q, want bare b / c", h.Removed, h.Added)
	}
}

func TestFileCreated(t *testing.T) {
	fd := mustDiff(t, "a.txt", "", "x\ny\n", diff.Options{})
	if len(fd.Hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(fd.Hunks))
	}
	h := fd.Hunks[0]
	if h.Kind != diff.KindInsert || h.Added != "x\ny\n" {
		t.Errorf("hunk = %+v", h)
	}
	if h.Context != nil {
		t.Errorf("expected no context for empty old content, got %+v", h.Context)
	}
}

func TestFileEmptied(t *testing.T) {
	fd := mustDiff(t, "a.txt", "x\ny\n", "", diff.Options{})
	if len(fd.Hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(fd.Hunks))
	}
	if h := fd.Hunks[0]; h.Kind != diff.KindDelete || h.Removed != "x\ny\n" {
		t.Errorf("hunk = %+v", h)
	}
}

func TestFileBinaryMark(t *testing.T) {
	fd, err := diff.File("a.bin", []byte{0x00, 0x01}, []byte{0x00, 0x02}, diff.Options{Binary: diff.BinaryMark})
	if err != nil {
		t.Fatal(err)
	}
	if !fd.IsBinary {
		t.Fatal("expected binary flag")
	}
	if len(fd.Hunks) != 0 {
		t.Fatalf("mark mode must not produce hunks, got %d", len(fd.Hunks))
	}
}

func TestFileBinaryInclude(t *testing.T) {
	oldContent := []byte{0x00, 0x01}
	newContent := []byte{0x00, 0x02, 0x03}
	fd, err := diff.File("a.bin", oldContent, newContent, diff.Options{Binary: diff.BinaryInclude})
	if err != nil {
		t.Fatal(err)
	}
	if !fd.IsBinary {
		t.Fatal("expected binary flag")
	}
	if len(fd.Hunks) != 1 {
		t.Fatalf("include mode wants one opaque hunk, got %d", len(fd.Hunks))
	}
	h := fd.Hunks[0]
	if h.Removed != string(oldContent) || h.Added != string(newContent) {
		t.Errorf("opaque hunk does not span whole file: %q / %q", h.Removed, h.Added)
	}
}

func TestFileBinaryIncludeUnchanged(t *testing.T) {
	content := []byte{0x00, 0x01}
	fd, err := diff.File("a.bin", content, content, diff.Options{Binary: diff.BinaryInclude})
	if err != nil {
		t.Fatal(err)
	}
	if len(fd.Hunks) != 0 {
		t.Fatalf("identical binary content must produce no hunks, got %d", len(fd.Hunks))
	}
}

func TestFileUnknownBinaryMode(t *testing.T) {
	if _, err := diff.File("a", nil, []byte("x\n"), diff.Options{Binary: "shrug"}); err == nil {
		t.Fatal("expected error for unknown binary mode")
	}
}

func TestFileTruncatedByLines(t *testing.T) {
	fd := mustDiff(t, "a.txt", "a\nb\nc\n", "a\nX\nc\n", diff.Options{MaxLines: 2})
	if !fd.Truncated {
		t.Fatal("expected truncated flag")
	}
	if fd.OldSize != 4 || fd.NewSize != 4 {
		t.Errorf("diffed sizes = %d / %d, want 4 / 4", fd.OldSize, fd.NewSize)
	}
	if len(fd.Hunks) != 1 || fd.Hunks[0].Removed != "b\n" || fd.Hunks[0].Added != "X\n" {
		t.Errorf("hunks = %+v", fd.Hunks)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		name          string
		in            string
		maxBytes      int
		maxLines      int
		want          string
		wantTruncated bool
	}{
		{"no limits", "a\nb\n", 0, 0, "a\nb\n", false},
		{"under limits", "a\nb\n", 100, 100, "a\nb\n", false},
		{"line limit", "a\nb\nc\n", 0, 2, "a\nb\n", true},
		{"byte limit", "abcdef", 4, 0, "abcd", true},
		{"byte limit rune boundary", "héllo", 2, 0, "h", true},
		{"both limits", "aaaa\nb\n", 3, 1, "aaa", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, truncated := diff.Truncate(tc.in, tc.maxBytes, tc.maxLines)
			if got != tc.want || truncated != tc.wantTruncated {
				t.Errorf("Truncate(%q, %d, %d) = %q, %v; want %q, %v",
					tc.in, tc.maxBytes, tc.maxLines, got, truncated, tc.want, tc.wantTruncated)
			}
		})
	}
}

func TestStatusBetween(t *testing.T) {
	cases := []struct {
		oldExists, newExists bool
		want                 diff.Status
	}{
		{false, true, diff.StatusAdded},
		{true, false, diff.StatusRemoved},
		{true, true, diff.StatusModified},
		{false, false, diff.StatusModified},
	}
	for _, tc := range cases {
		if got := diff.StatusBetween(tc.oldExists, tc.newExists); got != tc.want {
			t.Errorf("StatusBetween(%v, %v) = %q, want %q", tc.oldExists, tc.newExists, got, tc.want)
		}
	}
}

func TestSplitLinesRoundTrip(t *testing.T) {
	for _, text := range []string{"", "a", "a\n", "a\nb", "a\nb\n", "\n\n"} {
		if got := strings.Join(diff.SplitLines(text), ""); got != text {
			t.Errorf("SplitLines(%q) does not rejoin: %q", text, got)
		}
	}
}

func TestCountLines(t *testing.T) {
	cases := map[string]int{"": 0, "a": 1, "a\n": 1, "a\nb": 2, "a\nb\n": 2, "\n": 1}
	for text, want := range cases {
		if got := diff.CountLines(text); got != want {
			t.Errorf("CountLines(%q) = %d, want %d", text, got, want)
		}
	}
}

func TestIsBinaryData(t *testing.T) {
	if diff.IsBinaryData([]byte("plain text\n")) {
		t.Error("text flagged as binary")
	}
	if diff.IsBinaryData(nil) {
		t.Error("empty content flagged as binary")
	}
	if !diff.IsBinaryData([]byte{0x00, 0x41}) {
		t.Error("NUL byte not flagged")
	}
	if !diff.IsBinaryData([]byte{0xff, 0xfe}) {
		t.Error("invalid UTF-8 not flagged")
	}
}
