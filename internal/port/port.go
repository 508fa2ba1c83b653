package port

import (
	"context"
	"io/fs"
	"os"

	"github.com/tristan-harris/cbr/internal/domain"
)

//go:generate mockgen -source=port.go -destination=../mock/mock_port.go -package=mock

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	ReadDir(path string) ([]os.DirEntry, error)
	Rename(oldpath, newpath string) error
	Remove(path string) error
	// Exists reports whether a directory entry exists at path. It must not
	// follow symlinks: a dangling symlink still occupies its name.
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error
	// CreateTemp creates an empty uniquely-named file for the edit list
	// and returns its path.
	CreateTemp(pattern string) (string, error)
}

// Editor runs the user's text editor over the edit list.
type Editor interface {
	Edit(ctx context.Context, path string) error
}

// Trasher moves files to the system trash via an external utility.
type Trasher interface {
	Available() bool
	Trash(ctx context.Context, names []string) error
}

// Scanner collects the original filename batch.
type Scanner interface {
	Scan(dir string, marker byte) (*domain.NameList, error)
	FromArgs(names []string, marker byte) (*domain.NameList, error)
}

// Validator checks structural well-formedness of an edit before any
// filesystem mutation.
type Validator interface {
	Validate(originals, targets *domain.NameList) error
}

// Classifier maps each (original, target) pair to its required action.
type Classifier interface {
	Classify(originals, targets *domain.NameList) ([]domain.Action, error)
}

// Planner orders classified actions into a clobber-free execution plan.
type Planner interface {
	Plan(actions []domain.Action) *domain.RenamePlan
}

// Executor performs the plan against the filesystem and reports per-entry
// outcomes.
type Executor interface {
	Execute(ctx context.Context, plan *domain.RenamePlan) ([]domain.OpResult, error)
}
