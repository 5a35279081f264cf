package render

import "path"

// Group is a named bucket of files; buckets keep first-seen order.
type Group struct {
	Name  string      `json:"name" yaml:"name"`
	Files []FileEntry `json:"files" yaml:"files"`
}

// SummaryGroup is the summary counterpart of Group.
type SummaryGroup struct {
	Name  string        `json:"name" yaml:"name"`
	Files []FileSummary `json:"files" yaml:"files"`
}

func groupKey(file FileEntry, grouping Grouping) string {
	switch grouping {
	case GroupDirectory:
		return directoryGroup(file.Path)
	case GroupExtension:
		return extensionGroup(file.Path)
	case GroupStatus:
		return file.Status
	default:
		return ""
	}
}

func groupFiles(files []FileEntry, grouping Grouping) []Group {
	var groups []Group
	index := map[string]int{}

	for _, file := range files {
		key := groupKey(file, grouping)
		if pos, ok := index[key]; ok {
			groups[pos].Files = append(groups[pos].Files, file)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, Group{Name: key, Files: []FileEntry{file}})
	}
	return groups
}

func groupSummaries(files []FileEntry, grouping Grouping) []SummaryGroup {
	var groups []SummaryGroup
	index := map[string]int{}

	for _, file := range files {
		key := groupKey(file, grouping)
		if pos, ok := index[key]; ok {
			groups[pos].Files = append(groups[pos].Files, summarize(file))
			continue
		}
		index[key] = len(groups)
		groups = append(groups, SummaryGroup{Name: key, Files: []FileSummary{summarize(file)}})
	}
	return groups
}

func directoryGroup(p string) string {
	dir := path.Dir(p)
	if dir == "" {
		return "."
	}
	return dir
}

func extensionGroup(p string) string {
	ext := path.Ext(p)
	if ext == "" {
		return "<no-ext>"
	}
	return ext[1:]
}
