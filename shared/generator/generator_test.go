package generator_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/effect_fluent_go/shared/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_ZeroYields(t *testing.T) {
	g := generator.New(func(*generator.Yielder) int { return 7 })

	step, more := g.Next(nil)
	assert.False(t, more)
	assert.Nil(t, step)
	assert.Equal(t, 7, g.Result())
	assert.True(t, g.Done())
}

func TestGenerator_TwoWayExchange(t *testing.T) {
	g := generator.New(func(y *generator.Yielder) int {
		a := y.Yield("first").(int)
		b := y.Yield("second").(int)
		return a + b
	})

	step, more := g.Next("ignored")
	require.True(t, more)
	assert.Equal(t, "first", step)

	step, more = g.Next(1)
	require.True(t, more)
	assert.Equal(t, "second", step)

	_, more = g.Next(2)
	require.False(t, more)
	assert.Equal(t, 3, g.Result())

	_, more = g.Next(nil)
	assert.False(t, more)
}

func TestGenerator_StopRunsDeferredAndNeverResumes(t *testing.T) {
	var cleaned, resumed bool
	g := generator.New(func(y *generator.Yielder) int {
		defer func() { cleaned = true }()
		y.Yield(1)
		resumed = true
		y.Yield(2)
		return 0
	})

	_, more := g.Next(nil)
	require.True(t, more)

	g.Stop()
	assert.True(t, cleaned)
	assert.False(t, resumed)
	assert.True(t, g.Done())

	_, more = g.Next(nil)
	assert.False(t, more)
	g.Stop()
}

func TestGenerator_StopBeforeStart(t *testing.T) {
	var started bool
	g := generator.New(func(*generator.Yielder) int {
		started = true
		return 1
	})
	g.Stop()
	assert.False(t, started)
}

func TestGenerator_BodyPanicReachesDriver(t *testing.T) {
	boom := errors.New("boom")
	g := generator.New(func(y *generator.Yielder) int {
		y.Yield(nil)
		panic(boom)
	})

	_, more := g.Next(nil)
	require.True(t, more)
	assert.PanicsWithError(t, "boom", func() { g.Next(nil) })
}
