// Package config holds the run configuration. It is built once in main
// from the command line; the core never reads flags or the environment
// itself.
package config

import (
	"fmt"
	"unicode"

	"github.com/tristan-harris/cbr/internal/domain"
)

// DefaultDelChar marks an edited line for deletion when it appears as the
// line's first character.
const DefaultDelChar = "#"

// Config is the immutable per-run configuration.
type Config struct {
	// DelChar is the deletion-marker character.
	DelChar byte
	// Editor overrides editor resolution when non-empty.
	Editor string
	// Force allows targets to overwrite existing files outside the batch.
	Force bool
	// Silent suppresses per-entry success messages; errors still print.
	Silent bool
	// Trash sends marked files to the system trash instead of deleting.
	Trash bool
	// DryRun computes and displays the plan without executing it.
	DryRun bool
	// Files are explicit input filenames; empty means scan the working
	// directory.
	Files []string
}

// New builds a Config from flag values. delChar arrives as a string
// because flag libraries have no single-character type.
func New(delChar, editor string, force, silent, trash, dryRun bool, files []string) (*Config, error) {
	if len(delChar) != 1 {
		return nil, fmt.Errorf("%w: deletion marker must be a single character, got %q",
			domain.ErrInvalidConfig, delChar)
	}
	marker := delChar[0]
	if marker == '/' || !unicode.IsPrint(rune(marker)) || marker > unicode.MaxASCII {
		return nil, fmt.Errorf("%w: deletion marker %q is not a printable character",
			domain.ErrInvalidConfig, delChar)
	}
	return &Config{
		DelChar: marker,
		Editor:  editor,
		Force:   force,
		Silent:  silent,
		Trash:   trash,
		DryRun:  dryRun,
		Files:   files,
	}, nil
}
