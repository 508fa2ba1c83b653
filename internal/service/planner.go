package service

import (
	"github.com/tristan-harris/cbr/internal/domain"
)

// PlannerService orders classified actions into the two-phase, clobber-free
// execution plan. Phase 1 vacates every source path; Phase 2 resolves the
// staged targets, each of which is guaranteed free by then because every
// name in the original batch has either been renamed away or parked under
// a temp name. This holds for permutation cycles of any length without
// computing the cycle decomposition.
type PlannerService struct{}

func NewPlannerService() *PlannerService {
	return &PlannerService{}
}

// Plan is a pure function of the action list; it performs no I/O.
func (p *PlannerService) Plan(actions []domain.Action) *domain.RenamePlan {
	plan := &domain.RenamePlan{}
	for _, action := range actions {
		switch action.Kind {
		case domain.ActionUnchanged:
			// no-op
		case domain.ActionDelete, domain.ActionRename:
			plan.Phase1 = append(plan.Phase1, action)
		case domain.ActionTrash:
			plan.Trash.Names = append(plan.Trash.Names, action.Original)
		case domain.ActionStagedRename:
			plan.Phase1 = append(plan.Phase1, action)
			plan.Phase2 = append(plan.Phase2, action)
		}
	}
	return plan
}
