// Package spec parses selection specifications and resolves them
// against computed file diffs into per-hunk keep/revert decisions.
package spec

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/keshon/jjhunk/internal/diff"
)

// Action is a whole-file decision: keep the new content or reset to the
// old content.
type Action string

const (
	ActionKeep  Action = "keep"
	ActionReset Action = "reset"
)

// Spec maps repository-relative paths to selectors, with a default
// action for unlisted paths.
type Spec struct {
	Files   map[string]FileSelector
	Default Action
}

// FileSelector is either a whole-file action or a set of hunk
// references; never both.
type FileSelector struct {
	Action Action
	Hunks  []HunkRef
}

// HunkRef addresses one hunk by index or by normalized id. ID empty
// means the reference is by index.
type HunkRef struct {
	Index int
	ID    string
}

// Matches reports whether the selector's hunk references include h.
func (sel *FileSelector) Matches(h diff.Hunk) bool {
	for _, ref := range sel.Hunks {
		if ref.ID == "" && ref.Index == h.Index {
			return true
		}
		if ref.ID != "" && ref.ID == h.ID {
			return true
		}
	}
	return false
}

// SelectorFor returns the selector for path, or nil when the path is
// unlisted and the default applies.
func (s *Spec) SelectorFor(path string) *FileSelector {
	if s == nil {
		return nil
	}
	if sel, ok := s.Files[path]; ok {
		return &sel
	}
	return nil
}

type rawSpec struct {
	Files   map[string]rawSelector `json:"files" yaml:"files"`
	Default string                 `json:"default" yaml:"default"`
}

type rawSelector struct {
	Action string   `json:"action" yaml:"action"`
	Hunks  []any    `json:"hunks" yaml:"hunks"`
	IDs    []string `json:"ids" yaml:"ids"`
}

// Parse reads a selection document as JSON first, then as YAML, and
// validates the selector shapes.
func Parse(input string) (*Spec, error) {
	raw, jsonErr := parseJSON(input)
	if jsonErr != nil {
		var yamlErr error
		raw, yamlErr = parseYAML(input)
		if yamlErr != nil {
			return nil, &ParseError{Msg: fmt.Sprintf("document is neither valid JSON (%v) nor valid YAML (%v)", jsonErr, yamlErr)}
		}
	}
	return buildSpec(raw)
}

func parseJSON(input string) (rawSpec, error) {
	var raw rawSpec
	dec := json.NewDecoder(strings.NewReader(input))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return rawSpec{}, err
	}
	return raw, nil
}

func parseYAML(input string) (rawSpec, error) {
	var raw rawSpec
	dec := yaml.NewDecoder(strings.NewReader(input))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return rawSpec{}, err
	}
	return raw, nil
}

func buildSpec(raw rawSpec) (*Spec, error) {
	def, err := parseAction(raw.Default, ActionReset)
	if err != nil {
		return nil, err
	}

	s := &Spec{
		Files:   make(map[string]FileSelector, len(raw.Files)),
		Default: def,
	}

	for path, rawSel := range raw.Files {
		sel, err := buildSelector(path, rawSel)
		if err != nil {
			return nil, err
		}
		s.Files[path] = sel
	}
	return s, nil
}

func buildSelector(path string, raw rawSelector) (FileSelector, error) {
	hasHunks := raw.Hunks != nil || raw.IDs != nil

	if raw.Action != "" && hasHunks {
		return FileSelector{}, &ParseError{Msg: fmt.Sprintf("selector for %q sets both action and hunks/ids", path)}
	}

	if raw.Action != "" {
		action, err := parseAction(raw.Action, "")
		if err != nil {
			return FileSelector{}, err
		}
		return FileSelector{Action: action}, nil
	}

	sel := FileSelector{Hunks: []HunkRef{}}
	for _, entry := range raw.Hunks {
		ref, err := toHunkRef(path, entry)
		if err != nil {
			return FileSelector{}, err
		}
		sel.Hunks = appendRef(sel.Hunks, ref)
	}
	for _, id := range raw.IDs {
		normalized, ok := diff.NormalizeID(id)
		if !ok {
			return FileSelector{}, &ParseError{Msg: fmt.Sprintf("invalid hunk id %q for %q", id, path)}
		}
		sel.Hunks = appendRef(sel.Hunks, HunkRef{ID: normalized})
	}
	return sel, nil
}

// appendRef unions refs, dropping duplicates.
func appendRef(refs []HunkRef, ref HunkRef) []HunkRef {
	for _, existing := range refs {
		if existing == ref {
			return refs
		}
	}
	return append(refs, ref)
}

// toHunkRef accepts integers, numeric strings, and hunk ids in any of
// the normalized forms.
func toHunkRef(path string, entry any) (HunkRef, error) {
	switch v := entry.(type) {
	case int:
		return indexRef(path, int64(v))
	case int64:
		return indexRef(path, v)
	case uint64:
		if v > math.MaxInt {
			return HunkRef{}, &ParseError{Msg: fmt.Sprintf("hunk index %d out of range for %q", v, path)}
		}
		return indexRef(path, int64(v))
	case float64:
		if v != math.Trunc(v) {
			return HunkRef{}, &ParseError{Msg: fmt.Sprintf("invalid hunk selector %v for %q", v, path)}
		}
		return indexRef(path, int64(v))
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return HunkRef{}, &ParseError{Msg: fmt.Sprintf("empty hunk selector for %q", path)}
		}
		if index, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return indexRef(path, index)
		}
		normalized, ok := diff.NormalizeID(trimmed)
		if !ok {
			return HunkRef{}, &ParseError{Msg: fmt.Sprintf("invalid hunk selector %q for %q", v, path)}
		}
		return HunkRef{ID: normalized}, nil
	default:
		return HunkRef{}, &ParseError{Msg: fmt.Sprintf("invalid hunk selector %v for %q", entry, path)}
	}
}

func indexRef(path string, index int64) (HunkRef, error) {
	if index < 0 {
		return HunkRef{}, &ParseError{Msg: fmt.Sprintf("negative hunk index %d for %q", index, path)}
	}
	return HunkRef{Index: int(index)}, nil
}

func parseAction(value string, fallback Action) (Action, error) {
	switch value {
	case "":
		if fallback != "" {
			return fallback, nil
		}
		return "", &ParseError{Msg: "empty action"}
	case string(ActionKeep):
		return ActionKeep, nil
	case string(ActionReset):
		return ActionReset, nil
	default:
		return "", &ParseError{Msg: fmt.Sprintf("unknown action %q (want keep or reset)", value)}
	}
}
