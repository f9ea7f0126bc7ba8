package effects

import (
	"context"
	"errors"

	"github.com/on-the-ground/effect_fluent_go/effects/internal/handlers"
	effectmodel "github.com/on-the-ground/effect_fluent_go/effects/internal/model"
	"go.uber.org/atomic"
)

var errTaskAbandoned = errors.New("task handler closed before the task finished")

// Async suspends the effect until resume is called with the effect to continue with.
//
// register receives the running context: once it is done the effect is
// interrupted and a later resume is ignored. resume may be called from any
// goroutine; only the first call counts.
func Async[A, E any](register func(ctx context.Context, resume func(Effect[A, E]))) Effect[A, E] {
	return AsyncEffect(func(ctx context.Context, resume func(Effect[A, E])) Effect[struct{}, E] {
		register(ctx, resume)
		return Void[E]()
	})
}

// AsyncEffect is Async whose registration is itself an effect.
// If registration fails, the effect fails without waiting.
func AsyncEffect[A, E any](register func(ctx context.Context, resume func(Effect[A, E])) Effect[struct{}, E]) Effect[A, E] {
	waited := perform(func(rt *runtime) (Effect[A, E], *Cause[E]) {
		if rt.sync {
			return raise[Effect[A, E]](DieCause[E](ErrAsyncInSyncRun))
		}

		resumed := make(chan Effect[A, E], 1)
		var once atomic.Bool
		resume := func(next Effect[A, E]) {
			if once.CompareAndSwap(false, true) {
				resumed <- next
			}
		}

		exit := runExit(rt, register(rt.ctx, resume))
		if c, failed := exit.Cause(); failed {
			return raise[Effect[A, E]](c)
		}

		select {
		case next := <-resumed:
			return next, nil
		case <-rt.ctx.Done():
			return raise[Effect[A, E]](InterruptCause[E]())
		}
	})
	return FlatMap(waited, func(next Effect[A, E]) Effect[A, E] {
		return next
	})
}

// Promise runs f on another goroutine and waits for it. A panic in f is a defect.
//
// If a task handler is registered in the running context, f runs on it.
func Promise[A any](f func(ctx context.Context) A) Effect[A, Never] {
	return awaitTask(
		func(ctx context.Context) (A, error) { return f(ctx), nil },
		func(err error) Cause[Never] { return DieCause[Never](err) },
	)
}

// TryPromise is Promise for functions that can fail. A returned error or a
// panic becomes an UnknownException failure.
func TryPromise[A any](f func(ctx context.Context) (A, error)) Effect[A, UnknownException] {
	return TryPromiseCatch(f, func(err error) UnknownException {
		return UnknownException{Err: err}
	})
}

func TryPromiseCatch[A, E any](f func(ctx context.Context) (A, error), catch func(error) E) Effect[A, E] {
	return awaitTask(f, func(err error) Cause[E] {
		return FailureCause(catch(err))
	})
}

func awaitTask[A, E any](f func(context.Context) (A, error), onError func(error) Cause[E]) Effect[A, E] {
	return perform(func(rt *runtime) (A, *Cause[E]) {
		if rt.sync {
			return raise[A](DieCause[E](ErrAsyncInSyncRun))
		}

		payload := effectmodel.TaskPayload(func(ctx context.Context) (any, error) {
			return attempt(func() (A, error) { return f(ctx) })
		})

		var resultCh <-chan handlers.ResumableResult[any]
		if h, ok := rt.ctx.Value(effectmodel.EffectTask).(handlers.ResumableHandler[effectmodel.TaskPayload, any]); ok {
			resultCh = h.PerformEffect(rt.ctx, payload)
		} else {
			ch := make(chan handlers.ResumableResult[any], 1)
			go func() {
				ch <- handlers.ResumableResultFrom(payload(rt.ctx))
			}()
			resultCh = ch
		}

		select {
		case res, ok := <-resultCh:
			if !ok {
				if rt.ctx.Err() != nil {
					return raise[A](InterruptCause[E]())
				}
				return raise[A](DieCause[E](errTaskAbandoned))
			}
			if res.Err != nil {
				return raise[A](onError(res.Err))
			}
			a, _ := res.Value.(A)
			return a, nil
		case <-rt.ctx.Done():
			return raise[A](InterruptCause[E]())
		}
	})
}
