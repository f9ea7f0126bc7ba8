package effects

import (
	"context"
	"errors"

	"code.hybscloud.com/kont"
	"github.com/on-the-ground/effect_fluent_go/shared/tuple"
)

// Effect describes a computation that succeeds with A or fails with a
// Cause[E]. It does nothing until run, and can be run any number of times.
//
// Requirements are not part of the type: they are read from the
// context.Context the effect is run with (see Context).
type Effect[A, E any] struct {
	cont kont.Eff[A]
}

// YieldResult is a phantom marker naming the value a generator step
// resumes with. It must not be called.
func (Effect[A, E]) YieldResult() A { panic("phantom") }

func (e Effect[A, E]) erase() Effect[any, E] {
	return Map(e, func(a A) any { return a })
}

// erasable is satisfied by every Effect[_, E].
type erasable[E any] interface {
	erase() Effect[any, E]
}

// boxed keeps nil interface values from reaching kont's resume assertion.
type boxed[A any] struct {
	value A
}

func unbox[A any](b boxed[A]) A {
	return b.value
}

// instruction is the only operation kind the fiber handler understands.
type instruction interface {
	exec(rt *runtime) (kont.Resumed, any)
}

type primitive[A, E any] struct {
	kont.Phantom[boxed[A]]
	run func(rt *runtime) (A, *Cause[E])
}

func (p primitive[A, E]) exec(rt *runtime) (kont.Resumed, any) {
	a, c := p.run(rt)
	if c != nil {
		return nil, *c
	}
	return boxed[A]{value: a}, nil
}

func perform[A, E any](run func(rt *runtime) (A, *Cause[E])) Effect[A, E] {
	op := primitive[A, E]{run: run}
	return Effect[A, E]{
		cont: kont.Map(kont.Perform[primitive[A, E], boxed[A]](op), unbox[A]),
	}
}

func raise[A, E any](c Cause[E]) (A, *Cause[E]) {
	var zero A
	return zero, &c
}

func Succeed[A, E any](a A) Effect[A, E] {
	return Effect[A, E]{cont: kont.Pure(a)}
}

func Void[E any]() Effect[struct{}, E] {
	return Succeed[struct{}, E](struct{}{})
}

func Fail[A, E any](err E) Effect[A, E] {
	return FailCause[A](FailureCause(err))
}

func FailSync[A, E any](f func() E) Effect[A, E] {
	return perform(func(*runtime) (A, *Cause[E]) {
		return raise[A](FailureCause(f()))
	})
}

func FailCause[A, E any](c Cause[E]) Effect[A, E] {
	return perform(func(*runtime) (A, *Cause[E]) {
		return raise[A](c)
	})
}

func FailCauseSync[A, E any](f func() Cause[E]) Effect[A, E] {
	return perform(func(*runtime) (A, *Cause[E]) {
		return raise[A](f())
	})
}

func Die[A, E any](defect any) Effect[A, E] {
	return FailCause[A](DieCause[E](defect))
}

func DieMessage[A, E any](message string) Effect[A, E] {
	return FailCauseSync[A](func() Cause[E] {
		return DieCause[E](errors.New(message))
	})
}

func DieSync[A, E any](f func() any) Effect[A, E] {
	return FailCauseSync[A](func() Cause[E] {
		return DieCause[E](f())
	})
}

// Interrupt ends the running effect as if its context had been cancelled.
func Interrupt[A, E any]() Effect[A, E] {
	return FailCause[A](InterruptCause[E]())
}

// Sync runs f when the effect runs. A panic in f becomes a defect.
func Sync[A, E any](f func() A) Effect[A, E] {
	return perform(func(*runtime) (A, *Cause[E]) {
		return f(), nil
	})
}

// Try runs f, classifying a returned error or a panic as an UnknownException failure.
func Try[A any](f func() (A, error)) Effect[A, UnknownException] {
	return TryCatch(f, func(err error) UnknownException {
		return UnknownException{Err: err}
	})
}

// TryCatch runs f, mapping a returned error or a panic with catch.
// A panic in catch itself is a defect.
func TryCatch[A, E any](f func() (A, error), catch func(error) E) Effect[A, E] {
	return perform(func(*runtime) (A, *Cause[E]) {
		a, err := attempt(f)
		if err != nil {
			return raise[A](FailureCause(catch(err)))
		}
		return a, nil
	})
}

func attempt[A any](f func() (A, error)) (a A, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = PanicError{Value: r}
		}
	}()
	return f()
}

// Suspend defers building an effect until it runs.
func Suspend[A, E any](f func() Effect[A, E]) Effect[A, E] {
	return Effect[A, E]{
		cont: func(k func(A) kont.Resumed) kont.Resumed {
			return f().cont(k)
		},
	}
}

// Context reads the context the effect is running with.
func Context() Effect[context.Context, Never] {
	return perform(func(rt *runtime) (context.Context, *Cause[Never]) {
		return rt.ctx, nil
	})
}

func Map[A, B, E any](e Effect[A, E], f func(A) B) Effect[B, E] {
	return Effect[B, E]{cont: kont.Map(e.cont, f)}
}

func FlatMap[A, B, E any](e Effect[A, E], f func(A) Effect[B, E]) Effect[B, E] {
	return Effect[B, E]{
		cont: kont.Bind(e.cont, func(a A) kont.Eff[B] {
			return f(a).cont
		}),
	}
}

// AndThen runs next after e, discarding e's value.
func AndThen[A, B, E any](e Effect[A, E], next Effect[B, E]) Effect[B, E] {
	return Effect[B, E]{cont: kont.Then(e.cont, next.cont)}
}

func As[A, B, E any](e Effect[A, E], b B) Effect[B, E] {
	return Map(e, func(A) B { return b })
}

func AsVoid[A, E any](e Effect[A, E]) Effect[struct{}, E] {
	return As(e, struct{}{})
}

func Zip[A, B, E any](left Effect[A, E], right Effect[B, E]) Effect[tuple.Pair[A, B], E] {
	return ZipWith(left, right, tuple.Of[A, B])
}

func ZipWith[A, B, C, E any](left Effect[A, E], right Effect[B, E], f func(A, B) C) Effect[C, E] {
	return FlatMap(left, func(a A) Effect[C, E] {
		return Map(right, func(b B) C { return f(a, b) })
	})
}

// Widen lets an infallible effect run where an E channel is expected.
func Widen[A, E any](e Effect[A, Never]) Effect[A, E] {
	return Effect[A, E]{cont: e.cont}
}

// Erase forgets the success type.
func Erase[A, E any](e Effect[A, E]) Effect[any, E] {
	return e.erase()
}
