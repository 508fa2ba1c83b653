package testutil

import (
	"fmt"
	"io/fs"
	"os"
	"slices"
	"sort"
	"strings"
)

// MemFS is an in-memory port.FileSystem for tests that need to observe the
// effect of whole rename plans, not just single calls. Files are a flat
// name → contents map; ReadDir ignores its path argument and lists them
// all, matching the single-directory model of the tool.
type MemFS struct {
	files   map[string]string
	tempSeq int

	// RenameHook and RemoveHook, when set, run before the real operation
	// and can inject failures.
	RenameHook func(oldpath, newpath string) error
	RemoveHook func(path string) error
}

// NewMemFS creates a MemFS holding the given filenames; each file's
// contents are its own original name, so data loss shows up in assertions.
func NewMemFS(names ...string) *MemFS {
	m := &MemFS{files: make(map[string]string)}
	for _, name := range names {
		m.files[name] = name
	}
	return m
}

// Names returns all current filenames, sorted.
func (m *MemFS) Names() []string {
	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Contents returns the stored contents of name and whether it exists.
func (m *MemFS) Contents(name string) (string, bool) {
	contents, ok := m.files[name]
	return contents, ok
}

func (m *MemFS) ReadDir(_ string) ([]os.DirEntry, error) {
	entries := make([]os.DirEntry, 0, len(m.files))
	for _, name := range m.Names() {
		entries = append(entries, NewMockFileEntry(name))
	}
	return entries, nil
}

func (m *MemFS) Rename(oldpath, newpath string) error {
	if m.RenameHook != nil {
		if err := m.RenameHook(oldpath, newpath); err != nil {
			return err
		}
	}
	contents, ok := m.files[oldpath]
	if !ok {
		return fmt.Errorf("rename %s: no such file", oldpath)
	}
	delete(m.files, oldpath)
	m.files[newpath] = contents
	return nil
}

func (m *MemFS) Remove(path string) error {
	if m.RemoveHook != nil {
		if err := m.RemoveHook(path); err != nil {
			return err
		}
	}
	if _, ok := m.files[path]; !ok {
		return fmt.Errorf("remove %s: no such file", path)
	}
	delete(m.files, path)
	return nil
}

func (m *MemFS) Exists(path string) bool {
	_, ok := m.files[path]
	return ok
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	contents, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("open %s: no such file", path)
	}
	return []byte(contents), nil
}

func (m *MemFS) WriteFile(path string, data []byte, _ fs.FileMode) error {
	m.files[path] = string(data)
	return nil
}

func (m *MemFS) CreateTemp(pattern string) (string, error) {
	m.tempSeq++
	name := strings.Replace(pattern, "*", fmt.Sprintf("%d", m.tempSeq), 1)
	if name == pattern {
		name = fmt.Sprintf("%s%d", pattern, m.tempSeq)
	}
	m.files[name] = ""
	return name, nil
}

// SnapshotEqual reports whether the filesystem currently holds exactly the
// given names.
func (m *MemFS) SnapshotEqual(names ...string) bool {
	want := slices.Clone(names)
	sort.Strings(want)
	return slices.Equal(m.Names(), want)
}
