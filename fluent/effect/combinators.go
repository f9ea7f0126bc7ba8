package effect

import (
	"errors"
	"fmt"

	"code.hybscloud.com/kont"
	"github.com/on-the-ground/effect_fluent_go/effects"
	"github.com/on-the-ground/effect_fluent_go/shared/function"
	"github.com/on-the-ground/effect_fluent_go/shared/tuple"
)

var ErrInvalidAndThen = errors.New("andThen argument is neither an effect, a function nor a value of the result type")

func Map[A, B, E any](e Effect[A, E], f func(A) B) Effect[B, E] {
	return Of(effects.Map(e.effect, f))
}

func FlatMap[A, B, E any](e Effect[A, E], f func(A) Effect[B, E]) Effect[B, E] {
	return Of(effects.FlatMap(e.effect, unwrapped(f)))
}

// AndThen sequences e with next, which may be, in order of precedence:
//
//   - an Effect[B, E] or a native effects.Effect[B, E], run after e
//   - a func(A) Effect[B, E] or func(A) effects.Effect[B, E], fed e's value
//   - a func(A) B, whose result becomes the value
//   - a B, which replaces the value
//
// Anything else is a defect wrapping ErrInvalidAndThen, and so is an Effect
// of other type arguments, even when B is any. A native effect of other type
// arguments is only a plain value when B is any.
func AndThen[A, B, E any](e Effect[A, E], next any) Effect[B, E] {
	if Is(next) {
		if w, ok := next.(Effect[B, E]); ok {
			return Of(effects.AndThen(e.effect, w.effect))
		}
		return invalidAndThen[A, B](e, next)
	}
	switch n := next.(type) {
	case effects.Effect[B, E]:
		return Of(effects.AndThen(e.effect, n))
	case func(A) Effect[B, E]:
		return FlatMap(e, n)
	case func(A) effects.Effect[B, E]:
		return Of(effects.FlatMap(e.effect, n))
	case func(A) B:
		return Map(e, n)
	case B:
		return As(e, n)
	}
	return invalidAndThen[A, B](e, next)
}

func invalidAndThen[A, B, E any](e Effect[A, E], next any) Effect[B, E] {
	return Of(effects.AndThen(e.effect, effects.Die[B, E](fmt.Errorf("%w: %T", ErrInvalidAndThen, next))))
}

func As[A, B, E any](e Effect[A, E], b B) Effect[B, E] {
	return Of(effects.As(e.effect, b))
}

func MapError[A, E, E2 any](e Effect[A, E], f func(E) E2) Effect[A, E2] {
	return Of(effects.MapError(e.effect, f))
}

func MapBoth[A, B, E, E2 any](e Effect[A, E], onFailure func(E) E2, onSuccess func(A) B) Effect[B, E2] {
	return Of(effects.MapBoth(e.effect, onFailure, onSuccess))
}

// CatchAllWith recovers from expected failures into another error channel.
func CatchAllWith[A, E, E2 any](e Effect[A, E], f func(E) Effect[A, E2]) Effect[A, E2] {
	return Of(effects.CatchAll(e.effect, unwrapped(f)))
}

// ToExit turns every outcome of e, failures included, into a value.
func ToExit[A, E any](e Effect[A, E]) Effect[Exit[A, E], Never] {
	return Of(effects.ToExit(e.effect))
}

// Either moves the expected failure of e into the value as a Left.
// Defects and interruption still end the effect.
func Either[A, E any](e Effect[A, E]) Effect[kont.Either[E, A], Never] {
	return Of(effects.Either(e.effect))
}

func Timed[A, E any](e Effect[A, E]) Effect[effects.TimedValue[A], E] {
	return Of(effects.Timed(e.effect))
}

func Zip[A, B, E any](left Effect[A, E], right Effect[B, E]) Effect[tuple.Pair[A, B], E] {
	return Of(effects.Zip(left.effect, right.effect))
}

func ZipWith[A, B, C, E any](left Effect[A, E], right Effect[B, E], f func(A, B) C) Effect[C, E] {
	return Of(effects.ZipWith(left.effect, right.effect, f))
}

// Merge succeeds with whichever channel's value e ends with.
func Merge[A any](e Effect[A, A]) Effect[A, Never] {
	return Of(effects.Merge(e.effect))
}

func Match[A, E, B any](e Effect[A, E], onFailure func(E) B, onSuccess func(A) B) Effect[B, Never] {
	return Of(effects.Match(e.effect, onFailure, onSuccess))
}

func MatchEffect[A, E, B, E2 any](e Effect[A, E], onFailure func(E) Effect[B, E2], onSuccess func(A) Effect[B, E2]) Effect[B, E2] {
	return Of(effects.MatchEffect(e.effect, unwrapped(onFailure), unwrapped(onSuccess)))
}

func MatchCauseEffect[A, E, B, E2 any](e Effect[A, E], onFailure func(Cause[E]) Effect[B, E2], onSuccess func(A) Effect[B, E2]) Effect[B, E2] {
	return Of(effects.MatchCauseEffect(e.effect, unwrapped(onFailure), unwrapped(onSuccess)))
}

// Tap runs f with e's value and keeps that value.
func Tap[A, X, E any](e Effect[A, E], f func(A) Effect[X, E]) Effect[A, E] {
	return Of(effects.Tap(e.effect, unwrapped(f)))
}

func MapWith[A, B, E any](f func(A) B) func(Effect[A, E]) Effect[B, E] {
	return function.Dual1(Map[A, B, E])(f)
}

func FlatMapWith[A, B, E any](f func(A) Effect[B, E]) func(Effect[A, E]) Effect[B, E] {
	return function.Dual1(FlatMap[A, B, E])(f)
}

func AndThenWith[A, B, E any](next any) func(Effect[A, E]) Effect[B, E] {
	return function.Dual1(AndThen[A, B, E])(next)
}

func MapBothWith[A, B, E, E2 any](onFailure func(E) E2, onSuccess func(A) B) func(Effect[A, E]) Effect[B, E2] {
	return function.Dual2(MapBoth[A, B, E, E2])(onFailure, onSuccess)
}

func MapErrorWith[A, E, E2 any](f func(E) E2) func(Effect[A, E]) Effect[A, E2] {
	return function.Dual1(MapError[A, E, E2])(f)
}
