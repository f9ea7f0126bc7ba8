// Package readable names values whose current state can be read as an effect.
package readable

import (
	"github.com/on-the-ground/effect_fluent_go/effects"
	"github.com/on-the-ground/effect_fluent_go/fluent/effect"
)

const TypeID effects.TypeID = "effect-fluent/Readable"

type Readable[A, E any] interface {
	ReadableTypeID() effects.TypeID
	// Get reads the current value each time it runs.
	Get() effect.Effect[A, E]
}

// Is reports whether u is readable. It never panics.
func Is(u any) bool {
	r, ok := u.(interface{ ReadableTypeID() effects.TypeID })
	return ok && r.ReadableTypeID() == TypeID
}

type getter[A, E any] struct {
	get effect.Effect[A, E]
}

// Make builds a Readable from the effect that reads it.
func Make[A, E any](get effect.Effect[A, E]) Readable[A, E] {
	return getter[A, E]{get: get}
}

func (getter[A, E]) ReadableTypeID() effects.TypeID {
	return TypeID
}

func (r getter[A, E]) Get() effect.Effect[A, E] {
	return r.get
}

func (r getter[A, E]) YieldResult() A { panic("phantom") }

func (r getter[A, E]) YieldEffect() any {
	return r.get.AsEffect()
}

// Map is a Readable whose reads are f applied to self's.
func Map[A, B, E any](self Readable[A, E], f func(A) B) Readable[B, E] {
	return Make(effect.Map(self.Get(), f))
}

// MapEffect is a Readable whose reads run f on self's.
func MapEffect[A, B, E any](self Readable[A, E], f func(A) effect.Effect[B, E]) Readable[B, E] {
	return Make(effect.FlatMap(self.Get(), f))
}
