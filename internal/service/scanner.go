package service

import (
	"fmt"
	"io/fs"

	"github.com/tristan-harris/cbr/internal/domain"
	"github.com/tristan-harris/cbr/internal/port"
)

// ScannerService collects the original filename batch, either from a
// directory listing or from explicit arguments.
type ScannerService struct {
	fs port.FileSystem
}

func NewScannerService(fs port.FileSystem) *ScannerService {
	return &ScannerService{fs: fs}
}

// Scan reads dir and returns the names of regular files and symlinks, in
// directory order. Directories and special files are skipped. A name that
// begins with the deletion marker is rejected, since such a name could not
// be round-tripped through the edit list.
func (s *ScannerService) Scan(dir string, marker byte) (*domain.NameList, error) {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	list := domain.NewNameList()
	for _, entry := range entries {
		mode := entry.Type()
		if !mode.IsRegular() && mode&fs.ModeSymlink == 0 {
			continue
		}
		name := entry.Name()
		if name[0] == marker {
			return nil, fmt.Errorf("%w: %q begins with deletion marker %q",
				domain.ErrInputNaming, name, string(marker))
		}
		if err := list.Add(name); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// FromArgs builds the batch from explicitly named files. Every name must
// exist on disk (symlinks count, targets need not resolve) and must not
// begin with the deletion marker.
func (s *ScannerService) FromArgs(names []string, marker byte) (*domain.NameList, error) {
	list := domain.NewNameList()
	for _, name := range names {
		if err := list.Add(name); err != nil {
			return nil, err
		}
		if name[0] == marker {
			return nil, fmt.Errorf("%w: %q begins with deletion marker %q",
				domain.ErrInputNaming, name, string(marker))
		}
		if !s.fs.Exists(name) {
			return nil, fmt.Errorf("%w: file %q does not exist", domain.ErrInputNaming, name)
		}
	}
	return list, nil
}
