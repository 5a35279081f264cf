package fs

import (
	"io"
	"os"

	"golang.org/x/exp/mmap"
)

// mmapThreshold is the file size above which reads go through a memory
// map instead of a plain read.
const mmapThreshold = 1 << 20

// OSFS is the production implementation of FS over the real filesystem.
type OSFS struct{}

func NewOSFS() *OSFS {
	return &OSFS{}
}

// ReadFile reads path fully, memory-mapping large files.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.Size() < mmapThreshold {
		return os.ReadFile(path)
	}

	reader, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	data := make([]byte, fi.Size())
	if _, err := reader.ReadAt(data, 0); err != nil {
		return nil, err
	}
	return data, nil
}

func (o *OSFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (o *OSFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (o *OSFS) Remove(path string) error {
	return os.Remove(path)
}

func (o *OSFS) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

func (o *OSFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (o *OSFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

func (o *OSFS) CreateTempFile(dir, pattern string) (io.WriteCloser, string, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return nil, "", err
	}
	return f, f.Name(), nil
}

func (o *OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (o *OSFS) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}
