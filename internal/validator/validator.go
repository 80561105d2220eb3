package validator

import (
	"context"
	"fmt"
	"slices"

	"github.com/aretw0/gridwalk"
	"github.com/aretw0/gridwalk/pkg/domain"
	"github.com/aretw0/gridwalk/pkg/ports"
	"github.com/hashicorp/go-multierror"
)

// ValidateFixtures walks every fixture of the loader and checks it.
// All failures are collected; nil means every fixture passed.
func ValidateFixtures(ctx context.Context, loader ports.GridLoader) error {
	names, err := loader.ListGrids(ctx)
	if err != nil {
		return fmt.Errorf("failed to list grids: %w", err)
	}

	var result *multierror.Error
	for _, name := range names {
		fx, err := loader.GetFixture(ctx, name)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if err := ValidateFixture(ctx, fx); err != nil {
			result = multierror.Append(result, fmt.Errorf("grid %s: %w", name, err))
		}
	}
	return result.ErrorOrNil()
}

// ValidateFixture checks a single fixture:
//   - the object and function faces produce the same output,
//   - the walk stays within R×C payloads and R×C+1 steps,
//   - the result matches Expect, when set.
func ValidateFixture(ctx context.Context, fx domain.Fixture) error {
	engine := gridwalk.New()

	state, err := engine.Walk(ctx, fx.Grid)
	if err != nil {
		return err
	}
	object, err := engine.Solve(ctx, gridwalk.StyleObject, fx.Grid)
	if err != nil {
		return err
	}

	var result *multierror.Error
	if !slices.Equal(object, state.Output) {
		result = multierror.Append(result,
			fmt.Errorf("faces disagree: object %q, function %q", domain.Join(object), state.Result()))
	}

	size := fx.Grid.Size()
	if n := len(state.Payloads()); n > size {
		result = multierror.Append(result, fmt.Errorf("emitted %d payloads from %d cells", n, size))
	}
	if state.Steps > size+1 {
		result = multierror.Append(result, fmt.Errorf("took %d steps, limit is %d", state.Steps, size+1))
	}

	if fx.Expect != "" && fx.Expect != state.Result() {
		result = multierror.Append(result, fmt.Errorf("expected %q, got %q", fx.Expect, state.Result()))
	}
	return result.ErrorOrNil()
}
