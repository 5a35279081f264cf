package diff_test

import (
	"strings"
	"testing"

	"github.com/keshon/jjhunk/internal/diff"
)

func TestHunkIDStable(t *testing.T) {
	first := mustDiff(t, "a.txt", "a\nb\nc\n", "a\nx\nc\n", diff.Options{})
	second := mustDiff(t, "a.txt", "a\nb\nc\n", "a\nx\nc\n", diff.Options{})

	if first.Hunks[0].ID != second.Hunks[0].ID {
		t.Fatalf("same inputs produced different ids: %s vs %s", first.Hunks[0].ID, second.Hunks[0].ID)
	}

	hexPart := strings.TrimPrefix(first.Hunks[0].ID, diff.HunkIDPrefix)
	if len(hexPart) != 64 {
		t.Errorf("id digest length = %d, want 64 hex chars", len(hexPart))
	}
}

func TestHunkIDVariesWithPath(t *testing.T) {
	a := mustDiff(t, "a.txt", "a\nb\n", "a\nx\n", diff.Options{})
	b := mustDiff(t, "b.txt", "a\nb\n", "a\nx\n", diff.Options{})
	if a.Hunks[0].ID == b.Hunks[0].ID {
		t.Fatal("identical change in different files must not share an id")
	}
}

func TestHunkIDVariesWithContent(t *testing.T) {
	a := mustDiff(t, "a.txt", "a\nb\n", "a\nx\n", diff.Options{})
	b := mustDiff(t, "a.txt", "a\nb\n", "a\ny\n", diff.Options{})
	if a.Hunks[0].ID == b.Hunks[0].ID {
		t.Fatal("different added text must not share an id")
	}
}

func TestNormalizeID(t *testing.T) {
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"hunk-deadbeef", "hunk-deadbeef", true},
		{"id:deadbeef", "hunk-deadbeef", true},
		{"sha:deadbeef", "hunk-deadbeef", true},
		{"sha256:deadbeef", "hunk-deadbeef", true},
		{"deadbeef", "hunk-deadbeef", true},
		{"DEADBEEF", "hunk-deadbeef", true},
		{"  hunk-ab  ", "hunk-ab", true},
		{"", "", false},
		{"hunk-", "", false},
		{"not-hex!", "", false},
		{"id:zz", "", false},
	}
	for _, tc := range cases {
		got, ok := diff.NormalizeID(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("NormalizeID(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}
