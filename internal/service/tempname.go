package service

import (
	"fmt"

	"github.com/tristan-harris/cbr/internal/port"
)

const tempNamePrefix = "cbr_swap_"

// TempNamer generates temporary filenames for staged renames. Candidates
// are probed against the live filesystem, and a name handed out once is
// never handed out again within the same run, so any number of staged
// renames in one batch receive distinct parking names.
type TempNamer struct {
	fs   port.FileSystem
	next int
	used map[string]struct{}
}

func NewTempNamer(fs port.FileSystem) *TempNamer {
	return &TempNamer{fs: fs, used: make(map[string]struct{})}
}

// Next returns an unused temporary filename in the working directory.
func (t *TempNamer) Next() string {
	for {
		candidate := fmt.Sprintf("%s%d", tempNamePrefix, t.next)
		t.next++
		if _, taken := t.used[candidate]; taken {
			continue
		}
		if t.fs.Exists(candidate) {
			continue
		}
		t.used[candidate] = struct{}{}
		return candidate
	}
}
