package ports

import (
	"context"

	"load-optimizer-service/internal/domain"
)

// Port: the external load-optimization solver. One attempt, no retry.
//
// Implementations return domain.SolverFailedError when the solver terminates
// abnormally and domain.SolverOutputInvalidError when it exits cleanly but
// emits output that cannot be parsed.
type Solver interface {
	Optimize(ctx context.Context, inst *domain.OptimizationInstance) ([]domain.SuggestedLoad, error)
}
