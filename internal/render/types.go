// Package render shapes computed diffs into the list and preview
// output formats: json, yaml, and text, flat or grouped.
package render

import (
	"fmt"

	"github.com/keshon/jjhunk/internal/diff"
)

// Format selects the output serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case FormatJSON, FormatYAML, FormatText:
		return Format(value), nil
	default:
		return "", fmt.Errorf("unknown format %q (want json, yaml or text)", value)
	}
}

// Grouping selects how files are bucketed in the output.
type Grouping string

const (
	GroupNone      Grouping = "none"
	GroupDirectory Grouping = "directory"
	GroupExtension Grouping = "extension"
	GroupStatus    Grouping = "status"
)

func ParseGrouping(value string) (Grouping, error) {
	switch Grouping(value) {
	case GroupNone, GroupDirectory, GroupExtension, GroupStatus:
		return Grouping(value), nil
	default:
		return "", fmt.Errorf("unknown grouping %q (want none, directory, extension or status)", value)
	}
}

// RenameInfo records the path pair of a renamed or copied file.
type RenameInfo struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// FileEntry is one file with its full hunk inventory.
type FileEntry struct {
	Path      string      `json:"path" yaml:"path"`
	Status    string      `json:"status" yaml:"status"`
	Rename    *RenameInfo `json:"rename,omitempty" yaml:"rename,omitempty"`
	Hunks     []diff.Hunk `json:"hunks" yaml:"hunks"`
	Binary    bool        `json:"binary,omitempty" yaml:"binary,omitempty"`
	Truncated bool        `json:"truncated,omitempty" yaml:"truncated,omitempty"`
}

// FileSummary is a FileEntry reduced to its hunk count.
type FileSummary struct {
	Path      string      `json:"path" yaml:"path"`
	Status    string      `json:"status" yaml:"status"`
	Rename    *RenameInfo `json:"rename,omitempty" yaml:"rename,omitempty"`
	HunkCount int         `json:"hunk_count" yaml:"hunk_count"`
	Binary    bool        `json:"binary,omitempty" yaml:"binary,omitempty"`
	Truncated bool        `json:"truncated,omitempty" yaml:"truncated,omitempty"`
}

func summarize(file FileEntry) FileSummary {
	return FileSummary{
		Path:      file.Path,
		Status:    file.Status,
		Rename:    file.Rename,
		HunkCount: len(file.Hunks),
		Binary:    file.Binary,
		Truncated: file.Truncated,
	}
}
