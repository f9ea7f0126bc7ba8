// Package effect is a method-chaining face for effects.Effect.
//
// An Effect owns exactly one native effects.Effect. Methods cover the
// operations expressible with the receiver's own type parameters; operations
// that change a type parameter are package functions taking the Effect
// first, with a curried ...With form for pipelines. Operations whose result
// nests A or E inside another generic type (ToExit, Either, Timed) are
// package functions too, since such a method would make Effect's
// instantiation recursive.
package effect

import (
	"context"

	"github.com/on-the-ground/effect_fluent_go/effects"
)

const TypeID effects.TypeID = "effect-fluent/Effect"

type (
	Never            = effects.Never
	Cause[E any]     = effects.Cause[E]
	Exit[A, E any]   = effects.Exit[A, E]
	UnknownException = effects.UnknownException
)

type Effect[A, E any] struct {
	typeID effects.TypeID
	effect effects.Effect[A, E]
}

// Of wraps a native effect.
func Of[A, E any](native effects.Effect[A, E]) Effect[A, E] {
	return Effect[A, E]{typeID: TypeID, effect: native}
}

// Is reports whether u was built by this package. Zero Effects are not.
func Is(u any) bool {
	return effects.HasTypeID(u, TypeID)
}

func (e Effect[A, E]) TypeID() effects.TypeID {
	return e.typeID
}

func (e Effect[A, E]) AsEffect() effects.Effect[A, E] {
	return e.effect
}

// YieldResult is a phantom marker naming the value a generator step
// resumes with. It must not be called.
func (Effect[A, E]) YieldResult() A { panic("phantom") }

func (e Effect[A, E]) native() any {
	return e.effect
}

func (e Effect[A, E]) Flip() Effect[E, A] {
	return Of(effects.Flip(e.effect))
}

func (e Effect[A, E]) OrDie() Effect[A, Never] {
	return Of(effects.OrDie(e.effect))
}

func (e Effect[A, E]) AsVoid() Effect[struct{}, E] {
	return Of(effects.AsVoid(e.effect))
}

func (e Effect[A, E]) Tap(f func(A) Effect[struct{}, E]) Effect[A, E] {
	return Tap(e, f)
}

func (e Effect[A, E]) TapError(f func(E) Effect[struct{}, E]) Effect[A, E] {
	return Of(effects.TapError(e.effect, unwrapped(f)))
}

func (e Effect[A, E]) TapDefect(f func(any) Effect[struct{}, E]) Effect[A, E] {
	return Of(effects.TapDefect(e.effect, unwrapped(f)))
}

func (e Effect[A, E]) TapBoth(onFailure func(E) Effect[struct{}, E], onSuccess func(A) Effect[struct{}, E]) Effect[A, E] {
	return Of(effects.TapBoth(e.effect, unwrapped(onFailure), unwrapped(onSuccess)))
}

func (e Effect[A, E]) CatchAll(f func(E) Effect[A, E]) Effect[A, E] {
	return CatchAllWith(e, f)
}

func (e Effect[A, E]) CatchAllCause(f func(Cause[E]) Effect[A, E]) Effect[A, E] {
	return Of(effects.CatchAllCause(e.effect, unwrapped(f)))
}

func (e Effect[A, E]) CatchAllDefect(f func(any) Effect[A, E]) Effect[A, E] {
	return Of(effects.CatchAllDefect(e.effect, unwrapped(f)))
}

// OrElse runs that only if e fails; that is not built otherwise.
func (e Effect[A, E]) OrElse(that func() Effect[A, E]) Effect[A, E] {
	return Of(effects.OrElse(e.effect, func() effects.Effect[A, E] { return that().effect }))
}

func (e Effect[A, E]) FilterOrFail(pred func(A) bool, orFail func(A) E) Effect[A, E] {
	return Of(effects.FilterOrFail(e.effect, pred, orFail))
}

func (e Effect[A, E]) Ensuring(finalizer Effect[struct{}, Never]) Effect[A, E] {
	return Of(effects.Ensuring(e.effect, finalizer.effect))
}

// Pipe applies fs left to right.
func (e Effect[A, E]) Pipe(fs ...func(Effect[A, E]) Effect[A, E]) Effect[A, E] {
	for _, f := range fs {
		e = f(e)
	}
	return e
}

func (e Effect[A, E]) Run(ctx context.Context) (A, error) {
	return effects.Run(ctx, e.effect)
}

func (e Effect[A, E]) RunExit(ctx context.Context) Exit[A, E] {
	return effects.RunExit(ctx, e.effect)
}

func (e Effect[A, E]) RunSync() (A, error) {
	return effects.RunSync(e.effect)
}

func (e Effect[A, E]) RunSyncExit() Exit[A, E] {
	return effects.RunSyncExit(e.effect)
}

func (e Effect[A, E]) RunPromise(ctx context.Context) <-chan Exit[A, E] {
	return effects.RunPromise(ctx, e.effect)
}

func (e Effect[A, E]) String() string {
	return "Effect"
}

// unwrapped adapts a callback producing wrappers to one producing native effects.
func unwrapped[X, B, E any](f func(X) Effect[B, E]) func(X) effects.Effect[B, E] {
	return func(x X) effects.Effect[B, E] {
		return f(x).effect
	}
}
