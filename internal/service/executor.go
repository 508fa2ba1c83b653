package service

import (
	"context"
	"fmt"

	"github.com/tristan-harris/cbr/internal/domain"
	"github.com/tristan-harris/cbr/internal/port"
)

// ExecutorService performs the plan against the filesystem: Phase 1
// operations first, then the trash batches, then Phase 2. The first
// failure aborts the run immediately — no retries and no rollback, so
// entries already renamed, deleted, or trashed stay that way. The partial
// result list is always returned so the caller can report what did happen.
type ExecutorService struct {
	fs        port.FileSystem
	trasher   port.Trasher
	chunkSize int
}

func NewExecutorService(fs port.FileSystem, trasher port.Trasher, chunkSize int) *ExecutorService {
	if chunkSize <= 0 {
		chunkSize = domain.DefaultTrashChunkSize
	}
	return &ExecutorService{fs: fs, trasher: trasher, chunkSize: chunkSize}
}

// Execute runs the plan and reports per-entry outcomes in execution order.
func (e *ExecutorService) Execute(ctx context.Context, plan *domain.RenamePlan) ([]domain.OpResult, error) {
	var results []domain.OpResult

	for _, action := range plan.Phase1 {
		switch action.Kind {
		case domain.ActionDelete:
			if err := e.fs.Remove(action.Original); err != nil {
				return results, fmt.Errorf("%w: could not delete %q: %v",
					domain.ErrFilesystemOp, action.Original, err)
			}
			results = append(results, domain.OpResult{Kind: domain.OpRemoved, Original: action.Original})

		case domain.ActionRename:
			if err := e.fs.Rename(action.Original, action.Target); err != nil {
				return results, fmt.Errorf("%w: could not rename %q to %q: %v",
					domain.ErrFilesystemOp, action.Original, action.Target, err)
			}
			results = append(results, domain.OpResult{
				Kind: domain.OpRenamed, Original: action.Original, Target: action.Target,
			})

		case domain.ActionStagedRename:
			// First hop only; the outcome is reported when the second hop
			// lands the file under its true name.
			if err := e.fs.Rename(action.Original, action.TempName); err != nil {
				return results, fmt.Errorf("%w: could not rename %q to %q: %v",
					domain.ErrFilesystemOp, action.Original, action.TempName, err)
			}
		}
	}

	for _, chunk := range plan.Trash.Chunks(e.chunkSize) {
		if err := e.trasher.Trash(ctx, chunk); err != nil {
			// Earlier chunks remain trashed.
			return results, err
		}
		for _, name := range chunk {
			results = append(results, domain.OpResult{Kind: domain.OpTrashed, Original: name})
		}
	}

	for _, action := range plan.Phase2 {
		if err := e.fs.Rename(action.TempName, action.Target); err != nil {
			return results, fmt.Errorf("%w: could not rename %q to %q: %v",
				domain.ErrFilesystemOp, action.TempName, action.Target, err)
		}
		results = append(results, domain.OpResult{
			Kind: domain.OpRenamed, Original: action.Original, Target: action.Target,
		})
	}

	return results, nil
}
