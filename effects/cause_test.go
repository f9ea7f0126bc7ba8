package effects_test

import (
	"context"
	"errors"
	"testing"

	"github.com/on-the-ground/effect_fluent_go/effects"
	"github.com/stretchr/testify/assert"
)

func TestCause_Queries(t *testing.T) {
	c := effects.SequentialCause(
		effects.FailureCause("first"),
		effects.SequentialCause(effects.DieCause[string]("defect"), effects.FailureCause("second")),
	)

	assert.True(t, c.IsFailure())
	assert.True(t, c.IsDie())
	assert.False(t, c.IsInterrupted())
	assert.Equal(t, []string{"first", "second"}, c.Failures())
	assert.Equal(t, "Sequential(Fail(first), Sequential(Die(defect), Fail(second)))", c.String())
}

func TestCause_SequentialDropsEmpty(t *testing.T) {
	var empty effects.Cause[string]
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, "Fail(x)", effects.SequentialCause(empty, effects.FailureCause("x")).String())
	assert.Equal(t, "Fail(x)", effects.SequentialCause(effects.FailureCause("x"), empty).String())
}

func TestCause_Squash(t *testing.T) {
	boom := errors.New("boom")
	assert.ErrorIs(t, effects.FailureCause(boom).Squash(), boom)
	assert.EqualError(t, effects.FailureCause(42).Squash(), "42")
	assert.ErrorIs(t, effects.DieCause[string](boom).Squash(), boom)
	assert.ErrorIs(t, effects.InterruptCause[string]().Squash(), context.Canceled)
	assert.NoError(t, effects.Cause[string]{}.Squash())
}

func TestMapCause(t *testing.T) {
	c := effects.SequentialCause(effects.FailureCause("abc"), effects.InterruptCause[string]())
	mapped := effects.MapCause(c, func(s string) int { return len(s) })
	assert.Equal(t, []int{3}, mapped.Failures())
	assert.True(t, mapped.IsInterrupted())
}
