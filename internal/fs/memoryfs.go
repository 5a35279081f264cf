package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// MemoryFS is a pure in-memory FS for tests.
type MemoryFS struct {
	files map[string][]byte
	dirs  map[string]struct{}
}

func NewMemoryFS() *MemoryFS {
	m := &MemoryFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]struct{}),
	}
	m.dirs["."] = struct{}{}
	m.dirs["/"] = struct{}{}
	return m
}

func clean(p string) string {
	if p == "" {
		return "."
	}
	return filepath.ToSlash(filepath.Clean(p))
}

func (m *MemoryFS) ReadFile(p string) ([]byte, error) {
	data, ok := m.files[clean(p)]
	if !ok {
		return nil, iofs.ErrNotExist
	}
	return append([]byte(nil), data...), nil
}

func (m *MemoryFS) WriteFile(p string, data []byte, perm os.FileMode) error {
	p = clean(p)
	if _, ok := m.dirs[path.Dir(p)]; !ok {
		return fmt.Errorf("write %q: directory does not exist", p)
	}
	m.files[p] = append([]byte(nil), data...)
	return nil
}

func (m *MemoryFS) MkdirAll(p string, perm os.FileMode) error {
	cur := ""
	for _, seg := range strings.Split(clean(p), "/") {
		if seg == "" || seg == "." {
			continue
		}
		cur = path.Join(cur, seg)
		m.dirs[cur] = struct{}{}
	}
	return nil
}

func (m *MemoryFS) Remove(p string) error {
	p = clean(p)
	if _, ok := m.files[p]; ok {
		delete(m.files, p)
		return nil
	}
	if _, ok := m.dirs[p]; ok {
		delete(m.dirs, p)
		return nil
	}
	return iofs.ErrNotExist
}

func (m *MemoryFS) Rename(oldPath, newPath string) error {
	oldPath, newPath = clean(oldPath), clean(newPath)
	data, ok := m.files[oldPath]
	if !ok {
		return iofs.ErrNotExist
	}
	if _, ok := m.dirs[path.Dir(newPath)]; !ok {
		return iofs.ErrNotExist
	}
	delete(m.files, oldPath)
	m.files[newPath] = data
	return nil
}

func (m *MemoryFS) Stat(p string) (os.FileInfo, error) {
	p = clean(p)
	if data, ok := m.files[p]; ok {
		return &memInfo{name: path.Base(p), size: int64(len(data))}, nil
	}
	if _, ok := m.dirs[p]; ok {
		return &memInfo{name: path.Base(p), dir: true}, nil
	}
	return nil, iofs.ErrNotExist
}

func (m *MemoryFS) ReadDir(p string) ([]os.DirEntry, error) {
	p = clean(p)
	if _, ok := m.dirs[p]; !ok {
		return nil, iofs.ErrNotExist
	}

	prefix := p
	if prefix != "/" && prefix != "." {
		prefix += "/"
	}

	seen := map[string]bool{}
	var out []os.DirEntry
	for dp := range m.dirs {
		if name := childName(dp, prefix); name != "" && !seen[name] {
			seen[name] = true
			out = append(out, memDirEntry{name: name, dir: true})
		}
	}
	for fp := range m.files {
		if name := childName(fp, prefix); name != "" && !seen[name] {
			seen[name] = true
			out = append(out, memDirEntry{name: name})
		}
	}
	return out, nil
}

// childName returns the first path segment of p below prefix, or "".
func childName(p, prefix string) string {
	if prefix != "/" && prefix != "." {
		if !strings.HasPrefix(p, prefix) {
			return ""
		}
		p = strings.TrimPrefix(p, prefix)
	}
	name := strings.Split(p, "/")[0]
	if name == "." {
		return ""
	}
	return name
}

func (m *MemoryFS) CreateTempFile(dir, pattern string) (io.WriteCloser, string, error) {
	dir = clean(dir)
	if _, ok := m.dirs[dir]; !ok {
		return nil, "", iofs.ErrNotExist
	}

	name := filepath.Join(dir, pattern+"-tmp")
	buf := &bytes.Buffer{}
	return &memWriteCloser{
		buf:     buf,
		onClose: func() { m.files[clean(name)] = buf.Bytes() },
	}, name, nil
}

func (m *MemoryFS) Exists(p string) bool {
	p = clean(p)
	_, isFile := m.files[p]
	_, isDir := m.dirs[p]
	return isFile || isDir
}

func (m *MemoryFS) IsNotExist(err error) bool {
	return errors.Is(err, iofs.ErrNotExist)
}

type memWriteCloser struct {
	buf     *bytes.Buffer
	onClose func()
}

func (w *memWriteCloser) Write(p []byte) (int, error) { return w.buf.Write(p) }
func (w *memWriteCloser) Close() error {
	if w.onClose != nil {
		w.onClose()
	}
	return nil
}

type memInfo struct {
	name string
	size int64
	dir  bool
}

func (i *memInfo) Name() string        { return i.name }
func (i *memInfo) Size() int64         { return i.size }
func (i *memInfo) Mode() iofs.FileMode { return 0o644 }
func (i *memInfo) ModTime() time.Time  { return time.Time{} }
func (i *memInfo) IsDir() bool         { return i.dir }
func (i *memInfo) Sys() any            { return nil }

type memDirEntry struct {
	name string
	dir  bool
}

func (e memDirEntry) Name() string { return e.name }
func (e memDirEntry) IsDir() bool  { return e.dir }
func (e memDirEntry) Type() iofs.FileMode {
	if e.dir {
		return iofs.ModeDir
	}
	return 0
}
func (e memDirEntry) Info() (os.FileInfo, error) {
	return &memInfo{name: e.name, dir: e.dir}, nil
}
