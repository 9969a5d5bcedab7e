package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// sagaStep is one forward action of a checkout with its optional undo.
type sagaStep struct {
	name       string
	action     func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

// compensationFailure is reported for every undo that returned an error.
type compensationFailure struct {
	step string
	err  error
}

// sagaResult reports how far a saga went.
type sagaResult struct {
	// failedStep is empty when every step succeeded.
	failedStep string
	err        error
	// compensated lists the steps whose undo ran successfully, in run order.
	compensated []string
	failures    []compensationFailure
}

// runSaga executes steps in order. When a step fails, the undo of every step
// that already completed runs in reverse order; undo errors never replace the
// original error.
func runSaga(ctx context.Context, steps []sagaStep) sagaResult {
	done := make([]sagaStep, 0, len(steps))
	for _, step := range steps {
		if err := step.action(ctx); err != nil {
			res := sagaResult{failedStep: step.name, err: err}
			res.compensated, res.failures = compensate(ctx, done)
			return res
		}
		done = append(done, step)
	}
	return sagaResult{}
}

func compensate(ctx context.Context, done []sagaStep) ([]string, []compensationFailure) {
	var (
		ok       []string
		failures []compensationFailure
	)
	// Undo must run even if the caller gave up on the request.
	ctx = context.WithoutCancel(ctx)
	for i := len(done) - 1; i >= 0; i-- {
		step := done[i]
		if step.compensate == nil {
			continue
		}
		if err := step.compensate(ctx); err != nil {
			log.Error().Err(err).Str("step", step.name).Msg("Compensation failed")
			failures = append(failures, compensationFailure{step: step.name, err: err})
			continue
		}
		ok = append(ok, step.name)
	}
	return ok, failures
}

// joinFailures merges compensation errors for reporting.
func joinFailures(failures []compensationFailure) error {
	errs := make([]error, len(failures))
	for i, f := range failures {
		errs[i] = f.err
	}
	return errors.Join(errs...)
}
