package effect

import (
	"context"

	"github.com/on-the-ground/effect_fluent_go/effects"
)

func Succeed[A, E any](a A) Effect[A, E] {
	return Of(effects.Succeed[A, E](a))
}

func Void[E any]() Effect[struct{}, E] {
	return Of(effects.Void[E]())
}

func Fail[A, E any](err E) Effect[A, E] {
	return Of(effects.Fail[A](err))
}

func FailSync[A, E any](f func() E) Effect[A, E] {
	return Of(effects.FailSync[A](f))
}

func FailCause[A, E any](c Cause[E]) Effect[A, E] {
	return Of(effects.FailCause[A](c))
}

func FailCauseSync[A, E any](f func() Cause[E]) Effect[A, E] {
	return Of(effects.FailCauseSync[A](f))
}

func Die[A, E any](defect any) Effect[A, E] {
	return Of(effects.Die[A, E](defect))
}

func DieMessage[A, E any](message string) Effect[A, E] {
	return Of(effects.DieMessage[A, E](message))
}

func DieSync[A, E any](f func() any) Effect[A, E] {
	return Of(effects.DieSync[A, E](f))
}

func Interrupt[A, E any]() Effect[A, E] {
	return Of(effects.Interrupt[A, E]())
}

// Sync runs f when the effect runs. A panic in f is a defect.
func Sync[A, E any](f func() A) Effect[A, E] {
	return Of(effects.Sync[A, E](f))
}

// Try runs f. A returned error or a panic fails with UnknownException.
func Try[A any](f func() (A, error)) Effect[A, UnknownException] {
	return Of(effects.Try(f))
}

// TryCatch runs f. A returned error or a panic fails with catch's result.
func TryCatch[A, E any](f func() (A, error), catch func(error) E) Effect[A, E] {
	return Of(effects.TryCatch(f, catch))
}

func Suspend[A, E any](f func() Effect[A, E]) Effect[A, E] {
	return Of(effects.Suspend(func() effects.Effect[A, E] { return f().effect }))
}

func Promise[A any](f func(ctx context.Context) A) Effect[A, Never] {
	return Of(effects.Promise(f))
}

func TryPromise[A any](f func(ctx context.Context) (A, error)) Effect[A, UnknownException] {
	return Of(effects.TryPromise(f))
}

func TryPromiseCatch[A, E any](f func(ctx context.Context) (A, error), catch func(error) E) Effect[A, E] {
	return Of(effects.TryPromiseCatch(f, catch))
}

// Async suspends until resume is called. ctx is the running context,
// passed through unchanged: once it is done, the effect is interrupted.
func Async[A, E any](register func(ctx context.Context, resume func(Effect[A, E]))) Effect[A, E] {
	return Of(effects.Async(func(ctx context.Context, resume func(effects.Effect[A, E])) {
		register(ctx, resumeWrapped(resume))
	}))
}

func AsyncEffect[A, E any](register func(ctx context.Context, resume func(Effect[A, E])) Effect[struct{}, E]) Effect[A, E] {
	return Of(effects.AsyncEffect(func(ctx context.Context, resume func(effects.Effect[A, E])) effects.Effect[struct{}, E] {
		return register(ctx, resumeWrapped(resume)).effect
	}))
}

func resumeWrapped[A, E any](resume func(effects.Effect[A, E])) func(Effect[A, E]) {
	return func(e Effect[A, E]) {
		resume(e.effect)
	}
}

// Context reads the context the effect runs with.
func Context() Effect[context.Context, Never] {
	return Of(effects.Context())
}

func FromExit[A, E any](exit Exit[A, E]) Effect[A, E] {
	return Of(effects.FromExit(exit))
}

// Widen lets an infallible Effect stand where an E channel is expected.
func Widen[A, E any](e Effect[A, Never]) Effect[A, E] {
	return Of(effects.Widen[A, E](e.effect))
}
