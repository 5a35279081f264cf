package util

import (
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/keshon/jjhunk/internal/fs"
)

// WriteFileAtomic writes data through a temp file in the target
// directory and renames it into place, so readers never observe a
// partially written snapshot file.
func WriteFileAtomic(fsys fs.FS, path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, tmpPath, err := fsys.CreateTempFile(dir, "tmp-*")
	if err != nil {
		return err
	}
	defer fsys.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return fsys.Rename(tmpPath, path)
}

// SortedKeys returns the keys of a map sorted alphabetically.
func SortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WorkerCount returns the number of workers for concurrent operations.
func WorkerCount() int {
	return runtime.NumCPU()
}

// Parallel runs fn concurrently for each item in inputs, limited by
// workerLimit. The first error is returned after all workers finish.
func Parallel[T any](inputs []T, workerLimit int, fn func(T) error) error {
	if len(inputs) == 0 {
		return nil
	}
	if workerLimit < 1 {
		workerLimit = 1
	}

	sem := make(chan struct{}, workerLimit)
	errCh := make(chan error, len(inputs))
	var wg sync.WaitGroup

	for _, in := range inputs {
		sem <- struct{}{}
		wg.Add(1)
		go func(x T) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := fn(x); err != nil {
				errCh <- err
			}
		}(in)
	}

	wg.Wait()
	close(errCh)

	for err := range errCh {
		return err
	}
	return nil
}
