package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/keshon/jjhunk/internal/diff"
	"github.com/keshon/jjhunk/internal/render"
)

func sampleEntries() []render.FileEntry {
	return []render.FileEntry{
		{
			Path:   "pkg/a.go",
			Status: "modified",
			Hunks: []diff.Hunk{
				{Index: 0, ID: "hunk-aa", Kind: diff.KindReplace, Removed: "old\n", Added: "new\n",
					Before: diff.LineRange{Start: 2, Lines: 1}, After: diff.LineRange{Start: 2, Lines: 1}},
				{Index: 1, ID: "hunk-bb", Kind: diff.KindInsert, Added: "more\n",
					Before: diff.LineRange{Start: 5, Lines: 0}, After: diff.LineRange{Start: 5, Lines: 1}},
			},
		},
		{
			Path:   "docs/readme.md",
			Status: "added",
			Hunks: []diff.Hunk{
				{Index: 0, ID: "hunk-cc", Kind: diff.KindInsert, Added: "hi\n",
					Before: diff.LineRange{Start: 1, Lines: 0}, After: diff.LineRange{Start: 1, Lines: 1}},
			},
		},
	}
}

func TestWriteOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := render.WriteOutput(&buf, render.FormatJSON, sampleEntries(), render.GroupNone); err != nil {
		t.Fatal(err)
	}

	var doc struct {
		Files []struct {
			Path  string `json:"path"`
			Hunks []struct {
				ID string `json:"id"`
			} `json:"hunks"`
		} `json:"files"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if len(doc.Files) != 2 || doc.Files[0].Path != "pkg/a.go" {
		t.Errorf("unexpected document: %+v", doc)
	}
	if len(doc.Files[0].Hunks) != 2 || doc.Files[0].Hunks[0].ID != "hunk-aa" {
		t.Errorf("unexpected hunks: %+v", doc.Files[0].Hunks)
	}
}

func TestWriteOutputYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := render.WriteOutput(&buf, render.FormatYAML, sampleEntries(), render.GroupNone); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "path: pkg/a.go") || !strings.Contains(out, "id: hunk-aa") {
		t.Errorf("yaml output missing fields:\n%s", out)
	}
}

func TestWriteOutputTextGroupedByDirectory(t *testing.T) {
	var buf bytes.Buffer
	if err := render.WriteOutput(&buf, render.FormatText, sampleEntries(), render.GroupDirectory); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{"pkg:", "docs:", "M pkg/a.go", "A docs/readme.md", "hunk 0 replace hunk-aa", "    - old", "    + new"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteOutputGroupedByExtension(t *testing.T) {
	var buf bytes.Buffer
	if err := render.WriteOutput(&buf, render.FormatText, sampleEntries(), render.GroupExtension); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "go:") || !strings.Contains(out, "md:") {
		t.Errorf("extension groups missing:\n%s", out)
	}
}

func TestWriteSummaryText(t *testing.T) {
	var buf bytes.Buffer
	if err := render.WriteSummary(&buf, render.FormatText, sampleEntries(), render.GroupNone); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "M pkg/a.go (2 hunks)") || !strings.Contains(out, "A docs/readme.md (1 hunks)") {
		t.Errorf("summary output:\n%s", out)
	}
}

func TestWriteSpecTemplate(t *testing.T) {
	var buf bytes.Buffer
	entries := append(sampleEntries(), render.FileEntry{Path: "img.bin", Status: "modified", Binary: true})
	if err := render.WriteSpecTemplate(&buf, render.FormatJSON, entries); err != nil {
		t.Fatal(err)
	}

	var tpl render.SpecTemplate
	if err := json.Unmarshal(buf.Bytes(), &tpl); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if tpl.Default != "reset" {
		t.Errorf("default = %q, want reset", tpl.Default)
	}
	if got := tpl.Files["pkg/a.go"].IDs; len(got) != 2 || got[0] != "hunk-aa" {
		t.Errorf("ids for pkg/a.go = %v", got)
	}
	if tpl.Files["img.bin"].Action != "keep" {
		t.Errorf("binary entry = %+v", tpl.Files["img.bin"])
	}
}

func TestWriteSpecTemplateRejectsText(t *testing.T) {
	var buf bytes.Buffer
	if err := render.WriteSpecTemplate(&buf, render.FormatText, sampleEntries()); err == nil {
		t.Fatal("expected error for text format")
	}
}

func TestParseFormat(t *testing.T) {
	for _, value := range []string{"json", "yaml", "text"} {
		if _, err := render.ParseFormat(value); err != nil {
			t.Errorf("ParseFormat(%q): %v", value, err)
		}
	}
	if _, err := render.ParseFormat("xml"); err == nil {
		t.Error("ParseFormat accepted xml")
	}
}

func TestParseGrouping(t *testing.T) {
	for _, value := range []string{"none", "directory", "extension", "status"} {
		if _, err := render.ParseGrouping(value); err != nil {
			t.Errorf("ParseGrouping(%q): %v", value, err)
		}
	}
	if _, err := render.ParseGrouping("author"); err == nil {
		t.Error("ParseGrouping accepted author")
	}
}
