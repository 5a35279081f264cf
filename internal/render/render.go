package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type filesOutput struct {
	Files []FileEntry `json:"files" yaml:"files"`
}

type groupsOutput struct {
	Groups []Group `json:"groups" yaml:"groups"`
}

type summaryFilesOutput struct {
	Files []FileSummary `json:"files" yaml:"files"`
}

type summaryGroupsOutput struct {
	Groups []SummaryGroup `json:"groups" yaml:"groups"`
}

// WriteOutput renders the full hunk inventory.
func WriteOutput(w io.Writer, format Format, files []FileEntry, grouping Grouping) error {
	if grouping == GroupNone {
		return WriteDocument(w, format, filesOutput{Files: files}, func() string {
			return filesText(files)
		})
	}
	groups := groupFiles(files, grouping)
	return WriteDocument(w, format, groupsOutput{Groups: groups}, func() string {
		return groupedText(groups)
	})
}

// WriteSummary renders file-level summaries with hunk counts.
func WriteSummary(w io.Writer, format Format, files []FileEntry, grouping Grouping) error {
	if grouping == GroupNone {
		summaries := make([]FileSummary, 0, len(files))
		for _, file := range files {
			summaries = append(summaries, summarize(file))
		}
		return WriteDocument(w, format, summaryFilesOutput{Files: summaries}, func() string {
			return summariesText(summaries)
		})
	}
	groups := groupSummaries(files, grouping)
	return WriteDocument(w, format, summaryGroupsOutput{Groups: groups}, func() string {
		return groupedSummaryText(groups)
	})
}

// WriteSpecTemplate renders a ready-to-edit selection spec listing
// every hunk id with a reset default. Text output is not supported.
func WriteSpecTemplate(w io.Writer, format Format, files []FileEntry) error {
	if format == FormatText {
		return fmt.Errorf("--spec-template does not support text output (use json or yaml)")
	}
	return WriteDocument(w, format, BuildSpecTemplate(files), nil)
}

// WriteDocument writes v in the given format, using text() for the
// text rendering.
func WriteDocument(w io.Writer, format Format, v any, text func() string) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatText:
		if text == nil {
			return fmt.Errorf("no text rendering for this output")
		}
		_, err := io.WriteString(w, text())
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
