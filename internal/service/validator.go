package service

import (
	"fmt"
	"slices"

	"github.com/tristan-harris/cbr/internal/domain"
	"github.com/tristan-harris/cbr/internal/port"
)

// ValidatorService checks structural well-formedness of the user's edit
// before anything touches the filesystem. Validation is pure: it reads the
// filesystem but never mutates it.
type ValidatorService struct {
	fs     port.FileSystem
	marker byte
	force  bool
}

func NewValidatorService(fs port.FileSystem, marker byte, force bool) *ValidatorService {
	return &ValidatorService{fs: fs, marker: marker, force: force}
}

// Validate checks the edited target list against the original list,
// failing fast on the first violation:
//
//  1. equal line counts,
//  2. no changed target may clobber a file outside the batch unless
//     force-overwrite is set,
//  3. all non-delete targets are unique.
//
// A target that names another file in the original batch is not a clobber:
// that file is being renamed away in the same run, which is what makes
// swap and cycle renames legal input.
func (v *ValidatorService) Validate(originals, targets *domain.NameList) error {
	if targets.Len() != originals.Len() {
		return fmt.Errorf("%w: edited list has %d entries, original has %d",
			domain.ErrMismatchedCount, targets.Len(), originals.Len())
	}

	for i := 0; i < targets.Len(); i++ {
		target := targets.At(i)
		if target[0] == v.marker {
			continue
		}
		if target == originals.At(i) {
			continue
		}
		if originals.Contains(target) {
			continue
		}
		if !v.force && v.fs.Exists(target) {
			return fmt.Errorf("%w: %q", domain.ErrTargetExists, target)
		}
	}

	// Delete-marker lines never become filenames, so they are exempt from
	// uniqueness.
	var kept []string
	for _, target := range targets.Names() {
		if target[0] != v.marker {
			kept = append(kept, target)
		}
	}
	slices.Sort(kept)
	for i := 0; i+1 < len(kept); i++ {
		if kept[i] == kept[i+1] {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateTarget, kept[i])
		}
	}
	return nil
}
