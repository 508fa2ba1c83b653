package service

import (
	"fmt"

	"github.com/tristan-harris/cbr/internal/domain"
)

// ClassifierService maps each (original, target) pair to the action
// required to realize it. Classification is per-entry: the only context
// consulted is membership of the target in the original batch, which is
// what decides direct versus staged renames. Execution ordering is the
// planner's concern.
type ClassifierService struct {
	temps  *TempNamer
	marker byte
	trash  bool
}

func NewClassifierService(temps *TempNamer, marker byte, trash bool) *ClassifierService {
	return &ClassifierService{temps: temps, marker: marker, trash: trash}
}

// Classify assigns one action per aligned index. The lists must already
// have passed validation.
func (c *ClassifierService) Classify(originals, targets *domain.NameList) ([]domain.Action, error) {
	if targets.Len() != originals.Len() {
		return nil, fmt.Errorf("%w: edited list has %d entries, original has %d",
			domain.ErrMismatchedCount, targets.Len(), originals.Len())
	}

	actions := make([]domain.Action, originals.Len())
	for i := 0; i < originals.Len(); i++ {
		original := originals.At(i)
		target := targets.At(i)

		switch {
		case original == target:
			actions[i] = domain.Action{Kind: domain.ActionUnchanged, Original: original, Target: target}
		case target[0] == c.marker:
			kind := domain.ActionDelete
			if c.trash {
				kind = domain.ActionTrash
			}
			actions[i] = domain.Action{Kind: kind, Original: original}
		case originals.Contains(target):
			// The desired name is still held by another file in this
			// batch; park under a temp name first.
			actions[i] = domain.Action{
				Kind:     domain.ActionStagedRename,
				Original: original,
				Target:   target,
				TempName: c.temps.Next(),
			}
		default:
			actions[i] = domain.Action{Kind: domain.ActionRename, Original: original, Target: target}
		}
	}
	return actions, nil
}
