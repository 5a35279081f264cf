// Package changes collects the changed-file inventory of a revision:
// the jj diff summary joined with both content snapshots and the
// computed hunk sequence per file.
package changes

import (
	"github.com/keshon/jjhunk/internal/diff"
	"github.com/keshon/jjhunk/internal/jj"
	"github.com/keshon/jjhunk/internal/util"
)

// Options narrow and tune the collected inventory.
type Options struct {
	Rev      string
	Include  []string
	Exclude  []string
	Binary   diff.BinaryMode
	MaxBytes int
	MaxLines int
}

// File is one changed file with both content sides and its diff.
type File struct {
	Path string
	Old  []byte
	New  []byte
	Diff diff.FileDiff
}

// Collect lists the files changed in opts.Rev (or the working copy),
// filtered by the include/exclude globs, and diffs each one. Files load
// and diff concurrently; they share nothing but the immutable options.
// Unchanged files and, in skip mode, binary files are omitted.
func Collect(opts Options) ([]File, error) {
	entries, err := jj.DiffSummary(opts.Rev)
	if err != nil {
		return nil, err
	}
	beforeRev, afterRev := jj.ResolveRevisions(opts.Rev)

	include := NormalizePatterns(opts.Include)
	exclude := NormalizePatterns(opts.Exclude)

	var selected []jj.SummaryEntry
	for _, entry := range entries {
		if entry.PrimaryPath() == "" {
			continue
		}
		if !Included(entry.Paths(), include, exclude) {
			continue
		}
		selected = append(selected, entry)
	}

	slots := make([]*File, len(selected))
	indexes := make([]int, len(selected))
	for i := range selected {
		indexes[i] = i
	}

	err = util.Parallel(indexes, util.WorkerCount(), func(i int) error {
		file, err := load(beforeRev, afterRev, selected[i], opts)
		if err != nil {
			return err
		}
		slots[i] = file
		return nil
	})
	if err != nil {
		return nil, err
	}

	var files []File
	for _, file := range slots {
		if file != nil {
			files = append(files, *file)
		}
	}
	return files, nil
}

// load reads both sides of one entry and diffs them. A nil result means
// the file is excluded from the inventory.
func load(beforeRev, afterRev string, entry jj.SummaryEntry, opts Options) (*File, error) {
	oldContent, newContent := jj.LoadFilePair(beforeRev, afterRev, entry)

	fd, err := diff.File(entry.PrimaryPath(), oldContent, newContent, diff.Options{
		Binary:   opts.Binary,
		MaxBytes: opts.MaxBytes,
		MaxLines: opts.MaxLines,
	})
	if err != nil {
		return nil, err
	}

	if fd.IsBinary && opts.Binary == diff.BinarySkip {
		return nil, nil
	}
	if len(fd.Hunks) == 0 && !fd.IsBinary {
		return nil, nil
	}

	fd.Status = diff.Status(entry.Status)
	if from, _, ok := entry.Rename(); ok {
		fd.RenameFrom = from
	}

	return &File{
		Path: entry.PrimaryPath(),
		Old:  oldContent,
		New:  newContent,
		Diff: fd,
	}, nil
}
