// Package usecase contains application business logic.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/hyprwarp/internal/application/port"
	"github.com/bnema/hyprwarp/internal/domain/entity"
	"github.com/bnema/hyprwarp/internal/domain/layout"
	"github.com/bnema/hyprwarp/internal/logging"
)

// ErrEmptyLayout is returned when enumeration yields no usable output.
var ErrEmptyLayout = errors.New("no usable outputs")

// LoadLayoutUseCase snapshots the display layout into a registry.
type LoadLayoutUseCase struct {
	enumerator port.OutputEnumerator
}

// NewLoadLayoutUseCase creates a new use case.
func NewLoadLayoutUseCase(enumerator port.OutputEnumerator) *LoadLayoutUseCase {
	return &LoadLayoutUseCase{enumerator: enumerator}
}

// LoadLayoutInput contains options for building the registry.
type LoadLayoutInput struct {
	// Exclude lists output names that never take part in warping.
	Exclude []string
	// LooseVertical is passed through to layout.Options.
	LooseVertical bool
}

// SkippedOutput records an output left out of the registry.
type SkippedOutput struct {
	Output entity.Output
	Reason string
}

// LoadLayoutOutput contains the built registry and what was left out of it.
type LoadLayoutOutput struct {
	Registry *layout.Registry
	Skipped  []SkippedOutput
	Overlaps []layout.Overlap
}

// Execute enumerates outputs once and builds the registry.
// Enumeration failure is returned as an *entity.CapabilityError.
func (uc *LoadLayoutUseCase) Execute(ctx context.Context, input LoadLayoutInput) (*LoadLayoutOutput, error) {
	log := logging.FromContext(ctx).With().Str("component", "layout").Logger()

	outputs, err := uc.enumerator.Outputs(ctx)
	if err != nil {
		return nil, &entity.CapabilityError{Op: "enumerate outputs", Err: err}
	}

	excluded := make(map[string]struct{}, len(input.Exclude))
	for _, name := range input.Exclude {
		excluded[name] = struct{}{}
	}

	registry := layout.NewRegistry(layout.Options{LooseVertical: input.LooseVertical})
	result := &LoadLayoutOutput{Registry: registry}

	for _, o := range outputs {
		if _, skip := excluded[o.Name]; skip {
			result.Skipped = append(result.Skipped, SkippedOutput{Output: o, Reason: "excluded by config"})
			log.Debug().Str("output", o.Name).Msg("output excluded by config")
			continue
		}
		if err := registry.Add(o); err != nil {
			result.Skipped = append(result.Skipped, SkippedOutput{Output: o, Reason: err.Error()})
			log.Warn().Err(err).Str("output", o.Name).Msg("skipping output")
			continue
		}
		log.Debug().
			Str("output", o.Name).
			Int("x", o.X).
			Int("y", o.Y).
			Int("width", o.Width).
			Int("height", o.Height).
			Msg("output registered")
	}

	if registry.Len() == 0 {
		return nil, fmt.Errorf("%w (%d enumerated)", ErrEmptyLayout, len(outputs))
	}

	result.Overlaps = registry.Overlaps()
	for _, ov := range result.Overlaps {
		log.Warn().
			Str("first", ov.First.Name).
			Str("second", ov.Second.Name).
			Msg("outputs overlap, neighbor selection may pick unexpected targets")
	}

	log.Info().Int("outputs", registry.Len()).Msg("layout loaded")
	return result, nil
}
