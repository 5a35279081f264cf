// Package jj is the boundary to the host VCS: it shells out to jj for
// diff summaries and file contents, and runs jj commands with a
// selection spec handed off through the environment.
package jj

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/keshon/jjhunk/internal/config"
)

// summaryTemplate makes jj diff emit one JSON object per changed file.
const summaryTemplate = `"{\"status\":" ++ self.status().escape_json() ++ ",\"path\":" ++ self.path().display().escape_json() ++ ",\"source\":" ++ self.source().path().display().escape_json() ++ ",\"target\":" ++ self.target().path().display().escape_json() ++ "}\n"`

// SummaryEntry is one changed file as reported by jj diff.
type SummaryEntry struct {
	Status string `json:"status"`
	Path   string `json:"path"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// PrimaryPath is the path an entry is keyed by in specs and output.
func (e SummaryEntry) PrimaryPath() string {
	switch {
	case e.Path != "":
		return e.Path
	case e.Target != "":
		return e.Target
	default:
		return e.Source
	}
}

// Rename reports the from/to pair for renamed or copied entries.
func (e SummaryEntry) Rename() (from, to string, ok bool) {
	if e.Status != "renamed" && e.Status != "copied" {
		return "", "", false
	}
	if e.Source == "" {
		return "", "", false
	}
	to = e.Target
	if to == "" {
		to = e.Path
	}
	return e.Source, to, true
}

// Paths lists every distinct path the entry touches, for glob matching.
func (e SummaryEntry) Paths() []string {
	var paths []string
	if e.Path != "" {
		paths = append(paths, e.Path)
	}
	if e.Source != "" && e.Source != e.Path {
		paths = append(paths, e.Source)
	}
	if e.Target != "" && e.Target != e.Path && e.Target != e.Source {
		paths = append(paths, e.Target)
	}
	return paths
}

// FilePaths resolves which path holds each side's content. An empty
// side does not exist in that snapshot.
func (e SummaryEntry) FilePaths() (before, after string) {
	primary := e.PrimaryPath()
	switch e.Status {
	case "added":
		return "", primary
	case "removed":
		return primary, ""
	case "renamed", "copied":
		before, after = e.Source, e.Target
		if before == "" {
			before = primary
		}
		if after == "" {
			after = primary
		}
		return before, after
	default:
		return primary, primary
	}
}

// ResolveRevisions maps a revset to the before/after revisions to read
// file contents from. Empty after means the working copy.
func ResolveRevisions(rev string) (before, after string) {
	if rev != "" {
		return fmt.Sprintf("(%s)^", rev), rev
	}
	return "@-", ""
}

// DiffSummary lists the files changed in rev (or the working copy).
func DiffSummary(rev string) ([]SummaryEntry, error) {
	args := []string{"diff", "--template", summaryTemplate}
	if rev != "" {
		args = append(args, "-r", rev)
	}

	out, err := exec.Command("jj", args...).Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("jj diff failed: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("run jj diff: %w", err)
	}

	var entries []SummaryEntry
	for i, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var entry SummaryEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, fmt.Errorf("parse diff summary line %d: %w", i+1, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// FileShow reads a file's content at rev (or the working copy).
// Missing files come back empty; jj reports absent paths as errors, and
// an absent side is an empty side for diffing purposes.
func FileShow(rev, path string) []byte {
	args := []string{"file", "show"}
	if rev != "" {
		args = append(args, "-r", rev)
	}
	args = append(args, path)

	out, err := exec.Command("jj", args...).Output()
	if err != nil {
		return nil
	}
	return out
}

// LoadFilePair reads both sides of one summary entry.
func LoadFilePair(beforeRev, afterRev string, entry SummaryEntry) (oldContent, newContent []byte) {
	beforePath, afterPath := entry.FilePaths()
	if beforePath != "" {
		oldContent = FileShow(beforeRev, beforePath)
	}
	if afterPath != "" {
		newContent = FileShow(afterRev, afterPath)
	}
	return oldContent, newContent
}

// RunWithSelection writes the spec to a temp file, exports its path in
// the selection env var, and runs jj with the given arguments attached
// to this process's stdio.
func RunWithSelection(args []string, specContent string) error {
	tmp, err := os.CreateTemp("", config.ToolName+"-*.spec")
	if err != nil {
		return fmt.Errorf("create spec temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(specContent); err != nil {
		tmp.Close()
		return fmt.Errorf("write spec temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write spec temp file: %w", err)
	}

	cmd := exec.Command("jj", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), config.SpecEnvVar+"="+tmpPath)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("jj %s failed: %w", args[0], err)
	}
	return nil
}
