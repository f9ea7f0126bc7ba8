package option

import (
	"errors"
	"fmt"
	"iter"

	"code.hybscloud.com/kont"
	"github.com/on-the-ground/effect_fluent_go/shared/function"
	"github.com/on-the-ground/effect_fluent_go/shared/tuple"
)

var ErrInvalidAndThen = errors.New("andThen argument is neither an option, a function nor a value of the result type")

func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	if a, ok := o.Value(); ok {
		return Some(f(a))
	}
	return None[B]()
}

func FlatMap[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if a, ok := o.Value(); ok {
		return f(a)
	}
	return None[B]()
}

// AndThen is None for None. For Some(a), next may be, in order of precedence:
//
//   - an Option[B] or a native kont.Either[struct{}, B], returned as is
//   - a func(A) Option[B] or func(A) kont.Either[struct{}, B], fed a
//   - a func(A) B, whose result is wrapped in Some
//   - a B, wrapped in Some
//
// Anything else panics with ErrInvalidAndThen, and so does an Option of
// another element type, even when B is any.
func AndThen[A, B any](o Option[A], next any) Option[B] {
	a, ok := o.Value()
	if !ok {
		return None[B]()
	}
	if Is(next) {
		if n, ok := next.(Option[B]); ok {
			return n
		}
		panic(fmt.Errorf("%w: %T", ErrInvalidAndThen, next))
	}
	switch n := next.(type) {
	case kont.Either[struct{}, B]:
		return Of(n)
	case func(A) Option[B]:
		return n(a)
	case func(A) kont.Either[struct{}, B]:
		return Of(n(a))
	case func(A) B:
		return Some(n(a))
	case B:
		return Some(n)
	}
	panic(fmt.Errorf("%w: %T", ErrInvalidAndThen, next))
}

// FilterMap is Some only if o is Some and f maps its value to Some.
func FilterMap[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	return FlatMap(o, f)
}

func FlatMapNullable[A, B any](o Option[A], f func(A) *B) Option[B] {
	return FlatMap(o, LiftNullable(f))
}

func As[A, B any](o Option[A], b B) Option[B] {
	return Map(o, func(A) B { return b })
}

func AsVoid[A any](o Option[A]) Option[struct{}] {
	return As(o, struct{}{})
}

func Match[A, B any](o Option[A], onNone func() B, onSome func(A) B) B {
	if a, ok := o.Value(); ok {
		return onSome(a)
	}
	return onNone()
}

// MatchWith is the data-last form of Match.
func MatchWith[A, B any](onNone func() B, onSome func(A) B) func(Option[A]) B {
	return function.Dual2(Match[A, B])(onNone, onSome)
}

// Flatten removes one level of nesting: Some(Some(a)) is Some(a), anything
// else is None.
func Flatten[A any](oo Option[Option[A]]) Option[A] {
	return FlatMap(oo, function.Identity[Option[A]])
}

func Tap[A, X any](o Option[A], f func(A) Option[X]) Option[A] {
	return FlatMap(o, func(a A) Option[A] {
		return As(f(a), a)
	})
}

func ZipWith[A, B, C any](left Option[A], right Option[B], f func(A, B) C) Option[C] {
	a, ok := left.Value()
	if !ok {
		return None[C]()
	}
	b, ok := right.Value()
	if !ok {
		return None[C]()
	}
	return Some(f(a, b))
}

func Product[A, B any](left Option[A], right Option[B]) Option[tuple.Pair[A, B]] {
	return ZipWith(left, right, tuple.Of[A, B])
}

// ProductMany is Some of self's value followed by every value of rest, or None
// if any of them is None.
func ProductMany[A any](self Option[A], rest []Option[A]) Option[[]A] {
	return FlatMap(self, func(a A) Option[[]A] {
		return Map(All(rest), func(as []A) []A {
			return append([]A{a}, as...)
		})
	})
}

// Ap applies the function in fab to the value in fa.
func Ap[A, B any](fab Option[func(A) B], fa Option[A]) Option[B] {
	return ZipWith(fab, fa, func(f func(A) B, a A) B { return f(a) })
}

func Lift2[A, B, C any](f func(A, B) C) func(Option[A], Option[B]) Option[C] {
	return func(a Option[A], b Option[B]) Option[C] {
		return ZipWith(a, b, f)
	}
}

// All is Some of every value in order, or None at the first None.
// An empty slice gives Some of an empty slice.
func All[A any](opts []Option[A]) Option[[]A] {
	values := make([]A, 0, len(opts))
	for _, o := range opts {
		a, ok := o.Value()
		if !ok {
			return None[[]A]()
		}
		values = append(values, a)
	}
	return Some(values)
}

// AllSeq is All over a sequence. It stops pulling at the first None.
func AllSeq[A any](opts iter.Seq[Option[A]]) Option[[]A] {
	values := []A{}
	for o := range opts {
		a, ok := o.Value()
		if !ok {
			return None[[]A]()
		}
		values = append(values, a)
	}
	return Some(values)
}

// AllMap is Some of every value under its key, or None if any is None.
func AllMap[K comparable, A any](opts map[K]Option[A]) Option[map[K]A] {
	values := make(map[K]A, len(opts))
	for k, o := range opts {
		a, ok := o.Value()
		if !ok {
			return None[map[K]A]()
		}
		values[k] = a
	}
	return Some(values)
}

// FirstSomeOf is the first Some in order, or None if there is none.
func FirstSomeOf[A any](opts []Option[A]) Option[A] {
	for _, o := range opts {
		if o.IsSome() {
			return o
		}
	}
	return None[A]()
}

// ReduceCompact folds the values of the Some elements, skipping every None.
func ReduceCompact[A, B any](opts []Option[A], b B, f func(B, A) B) B {
	for _, o := range opts {
		if a, ok := o.Value(); ok {
			b = f(b, a)
		}
	}
	return b
}

// PartitionMap splits o by the side f sends its value to. None gives two Nones.
func PartitionMap[A, B, C any](o Option[A], f func(A) kont.Either[B, C]) tuple.Pair[Option[B], Option[C]] {
	a, ok := o.Value()
	if !ok {
		return tuple.Of(None[B](), None[C]())
	}
	e := f(a)
	return tuple.Of(GetLeft(e), GetRight(e))
}

// OrElseEither is Some(Left) of o's value, or else Some(Right) of that's value.
func OrElseEither[A, B any](o Option[A], that func() Option[B]) Option[kont.Either[A, B]] {
	if a, ok := o.Value(); ok {
		return Some(kont.Left[A, B](a))
	}
	return Map(that(), kont.Right[A, B])
}

// ToRefinement turns an Option-returning function into a predicate.
func ToRefinement[A, B any](f func(A) Option[B]) func(A) bool {
	return func(a A) bool {
		return f(a).IsSome()
	}
}

// GetOrder orders None before every Some and Somes by ord.
func GetOrder[A any](ord func(A, A) int) func(Option[A], Option[A]) int {
	return func(x, y Option[A]) int {
		a, aSome := x.Value()
		b, bSome := y.Value()
		switch {
		case !aSome && !bSome:
			return 0
		case !aSome:
			return -1
		case !bSome:
			return 1
		}
		return ord(a, b)
	}
}

// GetEquivalence holds for two Nones and for two Somes whose values satisfy eq.
func GetEquivalence[A any](eq func(A, A) bool) func(Option[A], Option[A]) bool {
	return func(x, y Option[A]) bool {
		a, aSome := x.Value()
		b, bSome := y.Value()
		if !aSome || !bSome {
			return aSome == bSome
		}
		return eq(a, b)
	}
}

func MapWith[A, B any](f func(A) B) func(Option[A]) Option[B] {
	return function.Dual1(Map[A, B])(f)
}

func FilterMapWith[A, B any](f func(A) Option[B]) func(Option[A]) Option[B] {
	return function.Dual1(FilterMap[A, B])(f)
}

func AndThenWith[A, B any](next any) func(Option[A]) Option[B] {
	return function.Dual1(AndThen[A, B])(next)
}

// ApWith is Ap with fa applied last.
func ApWith[A, B any](fa Option[A]) func(Option[func(A) B]) Option[B] {
	return function.Dual1(Ap[A, B])(fa)
}
