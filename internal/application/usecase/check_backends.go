package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/hyprwarp/internal/application/port"
	"github.com/bnema/hyprwarp/internal/logging"
)

// CheckBackendsUseCase checks every configured backend concurrently.
type CheckBackendsUseCase struct {
	checkers []port.BackendChecker
}

// NewCheckBackendsUseCase creates a new use case.
func NewCheckBackendsUseCase(checkers ...port.BackendChecker) *CheckBackendsUseCase {
	return &CheckBackendsUseCase{checkers: checkers}
}

// CheckBackendsInput contains check options.
type CheckBackendsInput struct {
	// Timeout bounds each check. Zero means no per-check deadline.
	Timeout time.Duration
}

// BackendStatus is the result of a single check.
type BackendStatus struct {
	Name     string
	OK       bool
	Err      error
	Duration time.Duration
}

// CheckBackendsOutput lists check results in registration order.
type CheckBackendsOutput struct {
	Statuses []BackendStatus
}

// Healthy reports whether every check passed.
func (o *CheckBackendsOutput) Healthy() bool {
	for _, s := range o.Statuses {
		if !s.OK {
			return false
		}
	}
	return true
}

// Execute runs all checks and waits for them. A failing check never cancels the others.
func (uc *CheckBackendsUseCase) Execute(ctx context.Context, input CheckBackendsInput) (*CheckBackendsOutput, error) {
	log := logging.FromContext(ctx)
	statuses := make([]BackendStatus, len(uc.checkers))

	var g errgroup.Group
	for i, checker := range uc.checkers {
		g.Go(func() error {
			checkCtx := ctx
			if input.Timeout > 0 {
				var cancel context.CancelFunc
				checkCtx, cancel = context.WithTimeout(ctx, input.Timeout)
				defer cancel()
			}

			start := time.Now()
			err := checker.Check(checkCtx)
			statuses[i] = BackendStatus{
				Name:     checker.Name(),
				OK:       err == nil,
				Err:      err,
				Duration: time.Since(start),
			}
			if err != nil {
				log.Debug().Err(err).Str("backend", checker.Name()).Msg("check failed")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &CheckBackendsOutput{Statuses: statuses}, nil
}
