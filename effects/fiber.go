package effects

import (
	"context"
	"fmt"

	"code.hybscloud.com/kont"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// runtime is what instructions see of the fiber running them.
type runtime struct {
	ctx     context.Context
	fiberID uuid.UUID
	// sync forbids instructions that wait for another goroutine.
	sync bool
}

func newRuntime(ctx context.Context, sync bool) *runtime {
	return &runtime{ctx: ctx, fiberID: uuid.New(), sync: sync}
}

// uninterruptible shares the fiber but ignores cancellation of its context.
func (rt *runtime) uninterruptible() *runtime {
	return &runtime{ctx: context.WithoutCancel(rt.ctx), fiberID: rt.fiberID, sync: rt.sync}
}

// fiber interprets the instructions of one Effect[A, E].
// Returning false from Dispatch ends the effect with the given Exit.
type fiber[A, E any] struct {
	rt *runtime
}

func (f *fiber[A, E]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	ins, ok := op.(instruction)
	if !ok {
		panic(fmt.Errorf("%w: %T", ErrUnknownInstruction, op))
	}
	if f.rt.ctx.Err() != nil {
		return ExitInterrupt[A, E](), false
	}
	v, raised := ins.exec(f.rt)
	if raised != nil {
		return ExitFailCause[A](adoptCause[E](raised)), false
	}
	return v, true
}

// runExit drives e to completion on the calling goroutine.
// A panic anywhere in e ends it with a defect.
func runExit[A, E any](rt *runtime, e Effect[A, E]) (exit Exit[A, E]) {
	defer func() {
		if r := recover(); r != nil {
			exit = ExitDie[A, E](r)
		}
	}()
	return kont.Handle[*fiber[A, E], Exit[A, E]](
		kont.Map(e.cont, ExitSucceed[A, E]),
		&fiber[A, E]{rt: rt},
	)
}

// RunExit runs e with ctx and reports how it ended.
// Cancelling ctx interrupts e at its next instruction.
func RunExit[A, E any](ctx context.Context, e Effect[A, E]) Exit[A, E] {
	rt := newRuntime(ctx, false)
	exit := runExit(rt, e)
	logExit(rt, exit)
	return exit
}

// Run runs e and returns its value, or a *FiberFailure[E] carrying the cause.
func Run[A, E any](ctx context.Context, e Effect[A, E]) (A, error) {
	return fromExit(RunExit(ctx, e))
}

// RunSyncExit runs e without letting it wait on other goroutines.
// Asynchronous instructions end it with a defect wrapping ErrAsyncInSyncRun.
func RunSyncExit[A, E any](e Effect[A, E]) Exit[A, E] {
	rt := newRuntime(context.Background(), true)
	exit := runExit(rt, e)
	logExit(rt, exit)
	return exit
}

func RunSync[A, E any](e Effect[A, E]) (A, error) {
	return fromExit(RunSyncExit(e))
}

// RunPromise runs e on a new goroutine. The channel receives exactly one Exit.
func RunPromise[A, E any](ctx context.Context, e Effect[A, E]) <-chan Exit[A, E] {
	done := make(chan Exit[A, E], 1)
	go func() {
		done <- RunExit(ctx, e)
	}()
	return done
}

func fromExit[A, E any](exit Exit[A, E]) (A, error) {
	if a, ok := exit.Value(); ok {
		return a, nil
	}
	c, _ := exit.Cause()
	var zero A
	return zero, &FiberFailure[E]{Cause: c}
}

func logExit[A, E any](rt *runtime, exit Exit[A, E]) {
	c, failed := exit.Cause()
	if !failed || !c.IsDie() {
		return
	}
	logger, _ := zap.NewProduction()
	logger.Sugar().Debugf("fiber ended with a defect: fiberId: %v, cause: %v", rt.fiberID, c)
}
