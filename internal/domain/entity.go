package domain

// ActionKind classifies what must happen to a single batch entry.
type ActionKind int

const (
	// ActionUnchanged means the target equals the original; nothing to do.
	ActionUnchanged ActionKind = iota
	// ActionDelete removes the original file outright.
	ActionDelete
	// ActionTrash defers removal of the original to the trash utility.
	ActionTrash
	// ActionRename is a direct rename; the target is not occupied by any
	// other file in the batch.
	ActionRename
	// ActionStagedRename is a rename whose target is currently occupied by
	// another file in the batch; it moves through a temporary name.
	ActionStagedRename
)

// Action pairs one original filename with its classified outcome.
// TempName is set only for ActionStagedRename.
type Action struct {
	Kind     ActionKind
	Original string
	Target   string
	TempName string
}

// RenamePlan is the clobber-free execution order for one batch.
// Phase1 vacates every source path: deletes, direct renames, and the first
// hop of every staged rename (original → temp). Phase2 resolves the staged
// targets (temp → target) once every source has been vacated. Trash
// removal is deferred to the trash utility, batched.
type RenamePlan struct {
	Phase1 []Action
	Phase2 []Action
	Trash  TrashBatch
}

// Empty reports whether the plan performs no work at all.
func (p *RenamePlan) Empty() bool {
	return len(p.Phase1) == 0 && len(p.Phase2) == 0 && p.Trash.Len() == 0
}

// DefaultTrashChunkSize bounds how many paths are handed to a single trash
// utility invocation, well under typical process argument-count limits.
const DefaultTrashChunkSize = 197

// TrashBatch is an ordered set of original filenames slated for trashing.
type TrashBatch struct {
	Names []string
}

// Len returns the number of names in the batch.
func (b TrashBatch) Len() int {
	return len(b.Names)
}

// Chunks partitions the batch into groups of at most size names, in order.
func (b TrashBatch) Chunks(size int) [][]string {
	if size <= 0 || len(b.Names) == 0 {
		return nil
	}
	var chunks [][]string
	for start := 0; start < len(b.Names); start += size {
		end := min(start+size, len(b.Names))
		chunks = append(chunks, b.Names[start:end])
	}
	return chunks
}

// OpKind identifies a completed filesystem outcome.
type OpKind int

const (
	// OpRenamed means Original now lives at Target.
	OpRenamed OpKind = iota
	// OpRemoved means Original was deleted.
	OpRemoved
	// OpTrashed means Original was handed to the trash utility.
	OpTrashed
)

// OpResult is the per-entry outcome report produced by execution, used
// for user-facing messages.
type OpResult struct {
	Kind     OpKind
	Original string
	Target   string
}
