package validator

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/gridwalk/pkg/adapters/memory"
	"github.com/aretw0/gridwalk/pkg/domain"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFixtures_Samples(t *testing.T) {
	assert.NoError(t, ValidateFixtures(context.Background(), memory.NewSampleLoader()))
}

func TestValidateFixtures_Collects(t *testing.T) {
	loader, err := memory.NewFromFixtures(
		domain.Fixture{Name: "ok", Grid: domain.MustGrid([][]string{{"a", "b"}}), Expect: "a, b"},
		domain.Fixture{Name: "wrong-1", Grid: domain.MustGrid([][]string{{"a"}}), Expect: "b"},
		domain.Fixture{Name: "wrong-2", Grid: domain.MustGrid([][]string{{">a", "<b"}}), Expect: "a, b"},
		domain.Fixture{Name: "unchecked", Grid: domain.MustGrid([][]string{{"v"}})},
	)
	require.NoError(t, err)

	err = ValidateFixtures(context.Background(), loader)
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
	assert.True(t, strings.Contains(err.Error(), "grid wrong-1"))
	assert.True(t, strings.Contains(err.Error(), `expected "a, b", got "a, b, LOOP"`))
}

func TestValidateFixture_EmptyGrid(t *testing.T) {
	assert.NoError(t, ValidateFixture(context.Background(), domain.Fixture{Name: "empty"}))
}
