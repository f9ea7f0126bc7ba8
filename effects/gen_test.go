package effects_test

import (
	"context"
	"testing"

	"github.com/on-the-ground/effect_fluent_go/effects"
	"github.com/on-the-ground/effect_fluent_go/shared/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gen[A, E any](body func(y *generator.Yielder) A) effects.Effect[A, E] {
	return effects.Gen[A, E](func() effects.Generator[A] {
		return generator.New(body)
	})
}

func TestGen_ZeroYieldsIsSynchronous(t *testing.T) {
	v, err := effects.RunSync(gen[int, string](func(*generator.Yielder) int { return 7 }))
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestGen_FeedsValuesBack(t *testing.T) {
	eff := gen[int, string](func(y *generator.Yielder) int {
		a := y.Yield(effects.Succeed[int, string](1)).(int)
		b := y.Yield(effects.Succeed[int, effects.Never](2)).(int)
		return a + b
	})
	v, err := effects.RunSync(eff)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestGen_FailureStopsGenerator(t *testing.T) {
	var cleaned, resumed bool
	eff := gen[int, string](func(y *generator.Yielder) int {
		defer func() { cleaned = true }()
		y.Yield(effects.Fail[int]("boom"))
		resumed = true
		return 0
	})

	exit := effects.RunSyncExit(eff)
	assert.Equal(t, "boom", failure(t, exit))
	assert.True(t, cleaned)
	assert.False(t, resumed)
}

func TestGen_InvalidYieldIsDefect(t *testing.T) {
	eff := gen[int, string](func(y *generator.Yielder) int {
		y.Yield(42)
		return 0
	})
	_, err := effects.RunSync(eff)
	assert.ErrorIs(t, err, effects.ErrInvalidYield)
}

func TestGen_MismatchedErrorChannelIsDefect(t *testing.T) {
	eff := gen[int, string](func(y *generator.Yielder) int {
		y.Yield(effects.Succeed[int, error](1))
		return 0
	})
	_, err := effects.RunSync(eff)
	assert.ErrorIs(t, err, effects.ErrInvalidYield)
}

func TestGen_PanicInBodyIsDefect(t *testing.T) {
	eff := gen[int, string](func(y *generator.Yielder) int {
		y.Yield(effects.Void[string]())
		panic("body exploded")
	})
	exit := effects.RunSyncExit(eff)
	c, _ := exit.Cause()
	d, ok := c.Defect()
	require.True(t, ok)
	assert.Equal(t, "body exploded", d)
}

func TestGen_AsyncStep(t *testing.T) {
	eff := gen[string, string](func(y *generator.Yielder) string {
		return y.Yield(effects.Promise(func(context.Context) string { return "async" })).(string)
	})
	v, err := effects.Run(context.Background(), eff)
	require.NoError(t, err)
	assert.Equal(t, "async", v)
}

func TestGen_IsRerunnable(t *testing.T) {
	eff := gen[int, string](func(y *generator.Yielder) int {
		return y.Yield(effects.Succeed[int, string](1)).(int) + 1
	})
	for range 3 {
		v, err := effects.RunSync(eff)
		require.NoError(t, err)
		assert.Equal(t, 2, v)
	}
}
