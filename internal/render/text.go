package render

import (
	"fmt"
	"strings"
)

func filesText(files []FileEntry) string {
	var lines []string
	appendFilesText(&lines, files)
	return joinLines(lines)
}

func groupedText(groups []Group) string {
	var lines []string
	for i, group := range groups {
		lines = append(lines, groupHeader(group.Name))
		appendFilesText(&lines, group.Files)
		if i+1 < len(groups) {
			lines = append(lines, "")
		}
	}
	return joinLines(lines)
}

func summariesText(files []FileSummary) string {
	var lines []string
	appendSummaryText(&lines, files)
	return joinLines(lines)
}

func groupedSummaryText(groups []SummaryGroup) string {
	var lines []string
	for i, group := range groups {
		lines = append(lines, groupHeader(group.Name))
		appendSummaryText(&lines, group.Files)
		if i+1 < len(groups) {
			lines = append(lines, "")
		}
	}
	return joinLines(lines)
}

func appendFilesText(lines *[]string, files []FileEntry) {
	for _, file := range files {
		*lines = append(*lines, fileHeader(file))
		for _, h := range file.Hunks {
			*lines = append(*lines, fmt.Sprintf(
				"  hunk %d %s %s (before %d+%d after %d+%d)",
				h.Index, h.Kind, h.ID,
				h.Before.Start, h.Before.Lines,
				h.After.Start, h.After.Lines,
			))
			for _, line := range splitDisplayLines(h.Removed) {
				*lines = append(*lines, "    - "+line)
			}
			for _, line := range splitDisplayLines(h.Added) {
				*lines = append(*lines, "    + "+line)
			}
		}
	}
}

func appendSummaryText(lines *[]string, files []FileSummary) {
	for _, file := range files {
		line := fmt.Sprintf("%s %s (%d hunks)", statusChar(file.Status), file.Path, file.HunkCount)
		if file.Rename != nil {
			line += fmt.Sprintf(" (%s -> %s)", file.Rename.From, file.Rename.To)
		}
		if file.Binary {
			line += " [binary]"
		}
		if file.Truncated {
			line += " [truncated]"
		}
		*lines = append(*lines, line)
	}
}

func fileHeader(file FileEntry) string {
	header := fmt.Sprintf("%s %s", statusChar(file.Status), file.Path)
	if file.Rename != nil {
		header += fmt.Sprintf(" (%s -> %s)", file.Rename.From, file.Rename.To)
	}
	if file.Binary {
		header += " [binary]"
	}
	if file.Truncated {
		header += " [truncated]"
	}
	return header
}

func groupHeader(name string) string {
	if name == "." || name == "" {
		return "<root>:"
	}
	return name + ":"
}

func statusChar(status string) string {
	switch status {
	case "modified":
		return "M"
	case "added":
		return "A"
	case "removed":
		return "D"
	case "renamed":
		return "R"
	case "copied":
		return "C"
	default:
		return "?"
	}
}

func splitDisplayLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
