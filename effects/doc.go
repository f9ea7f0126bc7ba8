// Package effects is a small effect runtime for Go.
//
// An Effect[A, E] describes a computation that succeeds with an A, fails with
// an expected error E, dies with a defect, or is interrupted. Describing it
// does nothing: it runs only when handed to Run, RunExit, RunSync or
// RunPromise.
//
// # How does it work?
//
// An Effect is a kont continuation. Every primitive (Sync, Fail, Async, ...)
// is performed as an operation and interpreted by a fiber handler bound to
// the context.Context of the run. Interruption is cancellation of that
// context: it is observed before each primitive and while waiting on
// asynchronous work, and it cannot be caught.
//
// Failures are tracked as a Cause[E]:
//   - Fail: an expected error in the E channel, recoverable with CatchAll
//   - Die: a defect, such as a panic in user code
//   - Interrupt: the run's context was done
//
// MatchCauseEffect is the only primitive that observes a cause. Every error
// combinator is built on it.
//
// # Handlers
//
// Side effects that belong to the caller's environment are delegated to
// handlers registered in the context, as in:
//
//	ctx, endOfBindingHandler := binding.WithEffectHandler(ctx, effects.NewEffectScopeConfig(1, 1), services)
//	defer endOfBindingHandler()
//
// Handlers are registered via WithXxxEffectHandler(ctx) and served by worker
// pools sized by EffectScopeConfig. The log, binding and task subpackages
// hold the built-in ones; a registered task handler also runs Promise work.
//
// # Generators
//
// Gen drives a Generator one yielded Effect at a time, resuming it with each
// value. A failing step ends the run and the suspended generator is stopped.
//
// Example:
//
//	eff := effects.Gen[int, string](func() effects.Generator[int] {
//	    return generator.New(func(y *generator.Yielder) int {
//	        a := y.Yield(effects.Succeed[int, string](1)).(int)
//	        b := y.Yield(effects.Succeed[int, string](2)).(int)
//	        return a + b
//	    })
//	})
//	v, err := effects.RunSync(eff) // 3, nil
package effects
