package apply

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/keshon/jjhunk/internal/config"
	"github.com/keshon/jjhunk/internal/diff"
	"github.com/keshon/jjhunk/internal/fs"
	"github.com/keshon/jjhunk/internal/spec"
	"github.com/keshon/jjhunk/internal/util"
)

// Options tune tree reconciliation.
type Options struct {
	Binary diff.BinaryMode
}

type fileOp int

const (
	opNone    fileOp = iota
	opWrite          // rewrite the right-side file with reconstructed content
	opRestore        // copy the left-side file over the right side
	opDelete         // remove the right-side file
)

type plan struct {
	path    string
	op      fileOp
	content []byte
}

// Tree reconciles the right snapshot directory against the left one
// according to s: for every file in either tree, the right side ends up
// holding exactly the selected changes. All files are resolved before
// the first write, so a selection error aborts with the right tree
// untouched. Per-file resolution runs concurrently; files are
// independent by construction.
func Tree(fsys fs.FS, left, right string, s *spec.Spec, opts Options) error {
	paths, err := unionFiles(fsys, left, right)
	if err != nil {
		return err
	}

	plans := make([]plan, len(paths))
	indexes := make([]int, len(paths))
	for i := range paths {
		indexes[i] = i
	}

	err = util.Parallel(indexes, util.WorkerCount(), func(i int) error {
		p, err := planFile(fsys, left, right, paths[i], s, opts)
		if err != nil {
			return err
		}
		plans[i] = p
		return nil
	})
	if err != nil {
		return err
	}

	for _, p := range plans {
		if err := execute(fsys, right, p); err != nil {
			return err
		}
	}
	return nil
}

func planFile(fsys fs.FS, left, right, relPath string, s *spec.Spec, opts Options) (plan, error) {
	leftPath := filepath.Join(left, relPath)
	rightPath := filepath.Join(right, relPath)
	leftExists := fsys.Exists(leftPath)
	rightExists := fsys.Exists(rightPath)

	var oldContent, newContent []byte
	var err error
	if leftExists {
		if oldContent, err = fsys.ReadFile(leftPath); err != nil {
			return plan{}, fmt.Errorf("read %s: %w", leftPath, err)
		}
	}
	if rightExists {
		if newContent, err = fsys.ReadFile(rightPath); err != nil {
			return plan{}, fmt.Errorf("read %s: %w", rightPath, err)
		}
	}

	fd, err := diff.File(relPath, oldContent, newContent, diff.Options{Binary: opts.Binary})
	if err != nil {
		return plan{}, err
	}
	fd.Status = diff.StatusBetween(leftExists, rightExists)

	sel := s.SelectorFor(relPath)

	// Binary files in skip mode always end up as the old content, no
	// matter what the spec says about the path.
	var dec spec.Decision
	if fd.IsBinary && opts.Binary == diff.BinarySkip {
		dec = spec.Decision{Whole: true, Action: spec.ActionReset}
	} else {
		dec, err = spec.Resolve(fd, sel, s.Default)
		if err != nil {
			return plan{}, err
		}
	}

	if dec.Whole {
		switch dec.Action {
		case spec.ActionKeep:
			// The right side already holds the new content.
			return plan{path: relPath, op: opNone}, nil
		default:
			if leftExists {
				return plan{path: relPath, op: opRestore, content: oldContent}, nil
			}
			if rightExists {
				return plan{path: relPath, op: opDelete}, nil
			}
			return plan{path: relPath, op: opNone}, nil
		}
	}

	// Per-hunk selection needs a right-side file to rewrite.
	if !rightExists {
		return plan{path: relPath, op: opNone}, nil
	}

	result := Reconstruct(oldContent, newContent, fd, dec)
	if bytes.Equal(result, newContent) {
		return plan{path: relPath, op: opNone}, nil
	}
	return plan{path: relPath, op: opWrite, content: result}, nil
}

func execute(fsys fs.FS, right string, p plan) error {
	target := filepath.Join(right, p.path)
	switch p.op {
	case opWrite, opRestore:
		if err := fsys.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		if err := util.WriteFileAtomic(fsys, target, p.content); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
	case opDelete:
		if err := fsys.Remove(target); err != nil && !fsys.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", target, err)
		}
	}
	return nil
}

// unionFiles lists every file present in either snapshot, relative
// slash paths, sorted, minus jj's instruction file.
func unionFiles(fsys fs.FS, left, right string) ([]string, error) {
	leftFiles, err := fs.WalkFiles(fsys, left)
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", left, err)
	}
	rightFiles, err := fs.WalkFiles(fsys, right)
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", right, err)
	}

	set := make(map[string]struct{}, len(leftFiles)+len(rightFiles))
	for _, p := range leftFiles {
		set[p] = struct{}{}
	}
	for _, p := range rightFiles {
		set[p] = struct{}{}
	}
	delete(set, config.InstructionsFile)

	return util.SortedKeys(set), nil
}
