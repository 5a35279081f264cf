// Package fs abstracts the filesystem operations jjhunk performs on
// snapshot trees, so tree reconciliation can run against an in-memory
// implementation in tests.
package fs

import (
	"io"
	"os"
	"path"
	"sort"
)

// FS is the filesystem surface used when reading and rewriting snapshot
// trees.
type FS interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Remove(path string) error
	Rename(oldPath, newPath string) error
	Stat(path string) (os.FileInfo, error)
	ReadDir(path string) ([]os.DirEntry, error)
	CreateTempFile(dir, pattern string) (io.WriteCloser, string, error)
	Exists(path string) bool
	IsNotExist(err error) bool
}

// WalkFiles lists every regular file under root, as sorted
// slash-separated paths relative to root. A missing root yields an
// empty list.
func WalkFiles(fsys FS, root string) ([]string, error) {
	if !fsys.Exists(root) {
		return nil, nil
	}

	var files []string
	var walk func(dir, rel string) error
	walk = func(dir, rel string) error {
		entries, err := fsys.ReadDir(dir)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			childRel := path.Join(rel, entry.Name())
			if entry.IsDir() {
				if err := walk(path.Join(dir, entry.Name()), childRel); err != nil {
					return err
				}
				continue
			}
			files = append(files, childRel)
		}
		return nil
	}

	if err := walk(root, ""); err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
