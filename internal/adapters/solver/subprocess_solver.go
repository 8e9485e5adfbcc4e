package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/rs/zerolog"

	"load-optimizer-service/internal/domain"
	"load-optimizer-service/internal/platform/obs"
)

// SubprocessSolver invokes the external optimizer as an isolated process,
// passing the serialized instance as a command-line argument and reading a
// JSON array of suggested loads from stdout.
//
// Single attempt, no retry. The subprocess runs under its own timeout-derived
// context rather than the request's, so an aborted client request never kills
// an in-flight solve; the timeout bounds worst-case latency instead.
type SubprocessSolver struct {
	command string
	args    []string
	timeout time.Duration
	log     zerolog.Logger
}

func NewSubprocessSolver(command string, args []string, timeout time.Duration, log zerolog.Logger) *SubprocessSolver {
	if timeout == 0 {
		timeout = 2 * time.Minute
	}
	return &SubprocessSolver{command: command, args: args, timeout: timeout, log: log}
}

// Optimize serializes the instance, runs the solver to completion with both
// streams fully drained, and parses stdout into suggested loads.
func (s *SubprocessSolver) Optimize(
	ctx context.Context,
	inst *domain.OptimizationInstance,
) (_ []domain.SuggestedLoad, err error) {
	defer obs.Time(ctx, s.log, "solver.Optimize")(&err)

	payload, err := json.Marshal(inst)
	if err != nil {
		return nil, fmt.Errorf("subprocess solver: marshal instance: %w", err)
	}

	runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	args := make([]string, 0, len(s.args)+2)
	args = append(args, s.args...)
	args = append(args, "--json", string(payload))

	cmd := exec.CommandContext(runCtx, s.command, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &domain.SolverFailedError{
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
		}
		return nil, &domain.SolverFailedError{ExitCode: -1, Stderr: err.Error()}
	}

	loads, err := ParseOutput(stdout.Bytes())
	if err != nil {
		return nil, err
	}

	return loads, nil
}

// ParseOutput decodes solver stdout into suggested loads. A clean exit with
// output that does not decode is a contract breach, reported as
// SolverOutputInvalidError.
func ParseOutput(raw []byte) ([]domain.SuggestedLoad, error) {
	var loads []domain.SuggestedLoad
	if err := json.Unmarshal(bytes.TrimSpace(raw), &loads); err != nil {
		return nil, &domain.SolverOutputInvalidError{
			Message: "parse solver output",
			Err:     err,
		}
	}
	return loads, nil
}
