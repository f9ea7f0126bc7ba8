package effects_test

import (
	"testing"

	"github.com/on-the-ground/effect_fluent_go/effects"
	"github.com/stretchr/testify/assert"
)

type tagged struct{ id effects.TypeID }

func (t tagged) TypeID() effects.TypeID { return t.id }

func TestHasTypeID(t *testing.T) {
	assert.True(t, effects.HasTypeID(tagged{id: "x"}, "x"))
	assert.False(t, effects.HasTypeID(tagged{id: "y"}, "x"))
	assert.False(t, effects.HasTypeID(tagged{}, ""))
	assert.False(t, effects.HasTypeID(nil, "x"))
	assert.False(t, effects.HasTypeID(42, "x"))
}

func TestYieldWrap(t *testing.T) {
	w := effects.NewYieldWrap(5)
	assert.Equal(t, 5, w.Unwrap())

	v, ok := effects.YieldWrapGet(w)
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = effects.YieldWrapGet(5)
	assert.False(t, ok)
}
