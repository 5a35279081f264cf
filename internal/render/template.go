package render

// TemplateEntry is a spec-template selector: either the full id list of
// a diffable file or a whole-file action for binary files.
type TemplateEntry struct {
	IDs    []string `json:"ids,omitempty" yaml:"ids,omitempty"`
	Action string   `json:"action,omitempty" yaml:"action,omitempty"`
}

// SpecTemplate is a ready-to-edit selection spec covering every listed
// hunk, defaulting to reset so that pruning the lists selects changes.
type SpecTemplate struct {
	Files   map[string]TemplateEntry `json:"files" yaml:"files"`
	Default string                   `json:"default" yaml:"default"`
}

func BuildSpecTemplate(files []FileEntry) SpecTemplate {
	entries := make(map[string]TemplateEntry)

	for _, file := range files {
		if len(file.Hunks) == 0 {
			if file.Binary {
				entries[file.Path] = TemplateEntry{Action: "keep"}
			}
			continue
		}

		ids := make([]string, 0, len(file.Hunks))
		for _, h := range file.Hunks {
			ids = append(ids, h.ID)
		}
		entries[file.Path] = TemplateEntry{IDs: ids}
	}

	return SpecTemplate{Files: entries, Default: "reset"}
}
