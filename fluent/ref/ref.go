// Package ref is a method-chaining face for effects.Ref.
//
// Every operation returns an infallible effect; nothing touches the cell
// until that effect runs. Updates are compare-and-swap loops, so update
// functions may run more than once and must be pure.
package ref

import (
	"github.com/google/uuid"
	"github.com/on-the-ground/effect_fluent_go/effects"
	"github.com/on-the-ground/effect_fluent_go/fluent/effect"
	"github.com/on-the-ground/effect_fluent_go/fluent/option"
	"github.com/on-the-ground/effect_fluent_go/fluent/readable"
	"github.com/on-the-ground/effect_fluent_go/shared/tuple"
)

const TypeID effects.TypeID = "effect-fluent/Ref"

type Ref[A any] struct {
	typeID effects.TypeID
	ref    *effects.Ref[A]
}

// Make allocates the cell when the effect runs.
func Make[A any](value A) effect.Effect[Ref[A], effect.Never] {
	return effect.Map(effect.Of(effects.MakeRef(value)), Of[A])
}

// UnsafeMake allocates the cell immediately.
func UnsafeMake[A any](value A) Ref[A] {
	return Of(effects.UnsafeMakeRef(value))
}

func Of[A any](native *effects.Ref[A]) Ref[A] {
	return Ref[A]{typeID: TypeID, ref: native}
}

// Is reports whether u was built by this package. Zero Refs are not.
func Is(u any) bool {
	return effects.HasTypeID(u, TypeID)
}

func (r Ref[A]) TypeID() effects.TypeID {
	return r.typeID
}

func (r Ref[A]) ReadableTypeID() effects.TypeID {
	return readable.TypeID
}

func (r Ref[A]) Native() *effects.Ref[A] {
	return r.ref
}

func (r Ref[A]) ID() uuid.UUID {
	return r.ref.ID()
}

// YieldResult is a phantom marker: yielding a Ref in a generator body reads it.
func (Ref[A]) YieldResult() A { panic("phantom") }

func (r Ref[A]) YieldEffect() any {
	return r.ref.Get()
}

// AsEffect is the effect reading the cell.
func (r Ref[A]) AsEffect() effect.Effect[A, effect.Never] {
	return r.Get()
}

func (r Ref[A]) Get() effect.Effect[A, effect.Never] {
	return effect.Of(r.ref.Get())
}

func (r Ref[A]) Set(value A) effect.Effect[struct{}, effect.Never] {
	return effect.Of(r.ref.Set(value))
}

func (r Ref[A]) GetAndSet(value A) effect.Effect[A, effect.Never] {
	return effect.Of(r.ref.GetAndSet(value))
}

func (r Ref[A]) SetAndGet(value A) effect.Effect[A, effect.Never] {
	return effect.Of(r.ref.SetAndGet(value))
}

func (r Ref[A]) GetAndUpdate(f func(A) A) effect.Effect[A, effect.Never] {
	return effect.Of(r.ref.GetAndUpdate(f))
}

func (r Ref[A]) Update(f func(A) A) effect.Effect[struct{}, effect.Never] {
	return effect.Of(r.ref.Update(f))
}

func (r Ref[A]) UpdateAndGet(f func(A) A) effect.Effect[A, effect.Never] {
	return effect.Of(r.ref.UpdateAndGet(f))
}

// Modify stores the second result of f and returns the first.
func (r Ref[A]) Modify(f func(A) (A, A)) effect.Effect[A, effect.Never] {
	return Modify(r, f)
}

// GetAndUpdateSome returns the old value and stores pf's result if it is Some.
func (r Ref[A]) GetAndUpdateSome(pf func(A) option.Option[A]) effect.Effect[A, effect.Never] {
	return Modify(r, func(old A) (A, A) {
		return old, orKeep(pf(old), old)
	})
}

func (r Ref[A]) UpdateSome(pf func(A) option.Option[A]) effect.Effect[struct{}, effect.Never] {
	return r.GetAndUpdateSome(pf).AsVoid()
}

// UpdateSomeAndGet stores pf's result if it is Some and returns the stored value.
func (r Ref[A]) UpdateSomeAndGet(pf func(A) option.Option[A]) effect.Effect[A, effect.Never] {
	return Modify(r, func(old A) (A, A) {
		next := orKeep(pf(old), old)
		return next, next
	})
}

// ModifySome is Modify for a partial f: where f is None, fallback is
// returned and the cell is left as is.
func (r Ref[A]) ModifySome(fallback A, pf func(A) option.Option[tuple.Pair[A, A]]) effect.Effect[A, effect.Never] {
	return ModifySome(r, fallback, pf)
}

// Modify is the method Modify for a result of another type.
func Modify[A, B any](r Ref[A], f func(A) (B, A)) effect.Effect[B, effect.Never] {
	return effect.Of(effects.ModifyRef(r.ref, f))
}

// ModifySome is the method ModifySome for a result of another type.
func ModifySome[A, B any](r Ref[A], fallback B, pf func(A) option.Option[tuple.Pair[B, A]]) effect.Effect[B, effect.Never] {
	return Modify(r, func(old A) (B, A) {
		if p, ok := pf(old).Value(); ok {
			return p.Unpack()
		}
		return fallback, old
	})
}

func orKeep[A any](o option.Option[A], old A) A {
	if next, ok := o.Value(); ok {
		return next
	}
	return old
}
