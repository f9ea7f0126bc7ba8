package readable_test

import (
	"strconv"
	"testing"

	"github.com/on-the-ground/effect_fluent_go/fluent/effect"
	"github.com/on-the-ground/effect_fluent_go/fluent/readable"
	"github.com/on-the-ground/effect_fluent_go/fluent/ref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	assert.True(t, readable.Is(readable.Make(effect.Succeed[int, string](1))))
	assert.True(t, readable.Is(ref.UnsafeMake(1)))
	assert.False(t, readable.Is(effect.Succeed[int, string](1)))
	assert.False(t, readable.Is(nil))
}

func TestRefIsReadable(t *testing.T) {
	var r readable.Readable[int, effect.Never] = ref.UnsafeMake(3)
	v, err := r.Get().RunSync()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestMapReadsCurrentValue(t *testing.T) {
	counter := ref.UnsafeMake(1)
	label := readable.Map[int, string, effect.Never](counter, strconv.Itoa)

	v, err := label.Get().RunSync()
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	_, err = counter.Set(2).RunSync()
	require.NoError(t, err)
	v, err = label.Get().RunSync()
	require.NoError(t, err)
	assert.Equal(t, "2", v)
}

func TestMapEffect(t *testing.T) {
	source := readable.Make(effect.Succeed[int, string](4))
	checked := readable.MapEffect(source, func(n int) effect.Effect[int, string] {
		if n > 3 {
			return effect.Fail[int]("too big")
		}
		return effect.Succeed[int, string](n)
	})
	exit := checked.Get().RunSyncExit()
	c, failed := exit.Cause()
	require.True(t, failed)
	e, _ := c.Failure()
	assert.Equal(t, "too big", e)
}

func TestYieldingReadable(t *testing.T) {
	source := readable.Make(effect.Succeed[int, string](5))
	eff := effect.Gen[int, string](func(y *effect.Yielder) int {
		return effect.YieldAs[int](y, source) * 2
	})
	v, err := eff.RunSync()
	require.NoError(t, err)
	assert.Equal(t, 10, v)
}
