package testutil

import (
	"io/fs"
	"os"
	"time"
)

// MockDirEntry implements os.DirEntry for testing.
type MockDirEntry struct {
	EntryName string
	Mode      fs.FileMode
	FileInfo  os.FileInfo
}

func (m *MockDirEntry) Name() string               { return m.EntryName }
func (m *MockDirEntry) IsDir() bool                { return m.Mode.IsDir() }
func (m *MockDirEntry) Type() fs.FileMode          { return m.Mode.Type() }
func (m *MockDirEntry) Info() (os.FileInfo, error) { return m.FileInfo, nil }

// MockFileInfo implements os.FileInfo for testing.
type MockFileInfo struct {
	FileName string
	FileSize int64
	FileMode fs.FileMode
}

func (m *MockFileInfo) Name() string       { return m.FileName }
func (m *MockFileInfo) Size() int64        { return m.FileSize }
func (m *MockFileInfo) Mode() fs.FileMode  { return m.FileMode }
func (m *MockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *MockFileInfo) IsDir() bool        { return m.FileMode.IsDir() }
func (m *MockFileInfo) Sys() any           { return nil }

// NewMockFileEntry creates a MockDirEntry for a regular file.
func NewMockFileEntry(name string) *MockDirEntry {
	return &MockDirEntry{
		EntryName: name,
		FileInfo:  &MockFileInfo{FileName: name, FileMode: 0o644},
	}
}

// NewMockDirDirEntry creates a MockDirEntry for a directory.
func NewMockDirDirEntry(name string) *MockDirEntry {
	return &MockDirEntry{
		EntryName: name,
		Mode:      fs.ModeDir,
		FileInfo:  &MockFileInfo{FileName: name, FileMode: fs.ModeDir | 0o755},
	}
}

// NewMockSymlinkEntry creates a MockDirEntry for a symbolic link.
func NewMockSymlinkEntry(name string) *MockDirEntry {
	return &MockDirEntry{
		EntryName: name,
		Mode:      fs.ModeSymlink,
		FileInfo:  &MockFileInfo{FileName: name, FileMode: fs.ModeSymlink | 0o777},
	}
}
