package effect_test

import (
	"testing"

	"github.com/on-the-ground/effect_fluent_go/effects"
	"github.com/on-the-ground/effect_fluent_go/fluent/effect"
	"github.com/on-the-ground/effect_fluent_go/shared/generator"
	"github.com/on-the-ground/effect_fluent_go/shared/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGen_MixedStepsMatchNativeGen(t *testing.T) {
	fluent := effect.Gen[int, string](func(y *effect.Yielder) int {
		a := effect.Yield(y, effect.Succeed[int, string](1))
		b := effect.Yield(y, effects.Succeed[int, string](2))
		c := effect.YieldAs[int](y, effects.NewYieldWrap(effect.Succeed[int, effect.Never](3)))
		d := effect.Yield(y, effect.Adapt(effect.Map(effect.Succeed[int, string](3), func(n int) int { return n + 1 })))
		return a + b + c + d
	})
	native := effects.Gen[int, string](func() effects.Generator[int] {
		return generator.New(func(y *generator.Yielder) int {
			a := y.Yield(effects.Succeed[int, string](1)).(int)
			b := y.Yield(effects.Succeed[int, string](2)).(int)
			c := y.Yield(effects.Succeed[int, effects.Never](3)).(int)
			d := y.Yield(effects.Succeed[int, string](4)).(int)
			return a + b + c + d
		})
	})

	fv, ferr := fluent.RunSync()
	nv, nerr := effects.RunSync(native)
	require.NoError(t, ferr)
	require.NoError(t, nerr)
	assert.Equal(t, nv, fv)
	assert.Equal(t, 10, fv)
}

func TestGen_FailureEndsBody(t *testing.T) {
	resumed := false
	eff := effect.Gen[int, string](func(y *effect.Yielder) int {
		effect.Yield(y, effect.Fail[int]("boom"))
		resumed = true
		return 0
	})
	assert.Equal(t, "boom", failure(t, eff.RunSyncExit()))
	assert.False(t, resumed)
}

func TestGen_InvalidStepIsDefect(t *testing.T) {
	eff := effect.Gen[int, string](func(y *effect.Yielder) int {
		return effect.YieldAs[int](y, "not an effect")
	})
	_, err := eff.RunSync()
	assert.ErrorIs(t, err, effects.ErrInvalidYield)
}

func TestGen_MistypedResumeIsDefect(t *testing.T) {
	resumed := false
	eff := effect.Gen[int, string](func(y *effect.Yielder) int {
		n := effect.YieldAs[int](y, effect.Succeed[string, string]("seven"))
		resumed = true
		return n
	})
	_, err := eff.RunSync()
	assert.ErrorIs(t, err, effects.ErrInvalidYield)
	assert.ErrorIs(t, err, helper.ErrUnexpectedType)
	assert.False(t, resumed)
}

func TestGen_NilInterfaceResume(t *testing.T) {
	eff := effect.Gen[bool, string](func(y *effect.Yielder) bool {
		err := effect.Yield(y, effect.Succeed[error, string](nil))
		return err == nil
	})
	v, err := eff.RunSync()
	require.NoError(t, err)
	assert.True(t, v)
}

func TestGenWith_BindsSelf(t *testing.T) {
	type counter struct{ step int }
	eff := effect.GenWith[*counter, int, string](&counter{step: 5}, func(self *counter, y *effect.Yielder) int {
		return effect.Yield(y, effect.Succeed[int, string](1)) + self.step
	})
	v, err := eff.RunSync()
	require.NoError(t, err)
	assert.Equal(t, 6, v)
}
