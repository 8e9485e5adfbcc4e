package solver

import (
	"context"

	"load-optimizer-service/internal/domain"
)

// ScriptedSolver is an in-memory Solver returning canned loads or a canned
// error. It decouples orchestration tests from an actual solver binary.
type ScriptedSolver struct {
	Loads []domain.SuggestedLoad
	Err   error

	// LastInstance captures the most recent input for assertions.
	LastInstance *domain.OptimizationInstance
}

func (s *ScriptedSolver) Optimize(_ context.Context, inst *domain.OptimizationInstance) ([]domain.SuggestedLoad, error) {
	s.LastInstance = inst
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Loads, nil
}
