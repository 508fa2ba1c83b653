package domain

import "errors"

var (
	// ErrMismatchedCount reports an edited list whose line count differs
	// from the original listing.
	ErrMismatchedCount = errors.New("mismatched number of lines")

	// ErrDuplicateTarget reports two non-delete targets naming the same file.
	ErrDuplicateTarget = errors.New("output filenames are not unique")

	// ErrTargetExists reports a target that names an existing file outside
	// the batch while force-overwrite is not set.
	ErrTargetExists = errors.New("file already exists")

	// ErrFilesystemOp reports a failed rename or delete syscall.
	ErrFilesystemOp = errors.New("filesystem operation failed")

	// ErrExternalProcess reports a non-zero exit from the editor or the
	// trash utility.
	ErrExternalProcess = errors.New("external process failed")

	// ErrInputNaming reports an input filename that is empty or begins
	// with the deletion marker.
	ErrInputNaming = errors.New("invalid input filename")

	// ErrInvalidConfig reports an unusable run configuration.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoEditor reports that no text editor could be resolved from the
	// flags, the environment, or PATH.
	ErrNoEditor = errors.New("no editor found")
)
