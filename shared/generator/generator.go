// Package generator provides two-way coroutines: a body yields steps to its
// driver and receives the driver's reply as the result of each yield.
package generator

import (
	"iter"
)

type stopSignal struct{}

// Yielder is handed to a generator body. It is only valid inside that body.
type Yielder struct {
	yield func(any) bool
	sent  *any
}

// Yield suspends the body, hands step to the driver and returns the value the
// driver passes to the next call of Next.
//
// If the driver stops the generator while the body is suspended, Yield does
// not return: the body is unwound and deferred calls run.
func (y *Yielder) Yield(step any) any {
	if !y.yield(step) {
		panic(stopSignal{})
	}
	return *y.sent
}

// Generator is a single-shot coroutine producing steps of type any and a final result R.
type Generator[R any] struct {
	next     func() (any, bool)
	stop     func()
	sent     any
	result   R
	finished bool
}

func New[R any](body func(y *Yielder) R) *Generator[R] {
	g := &Generator[R]{}
	seq := func(yield func(any) bool) {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(stopSignal); ok {
					return
				}
				panic(r)
			}
		}()
		g.result = body(&Yielder{yield: yield, sent: &g.sent})
	}
	g.next, g.stop = iter.Pull(iter.Seq[any](seq))
	return g
}

// Next resumes the body with sent and runs it up to its next yield.
// It returns the yielded step and true, or nil and false once the body has returned.
// The value sent with the first call is discarded.
// A panic in the body is propagated to the caller of Next.
func (g *Generator[R]) Next(sent any) (any, bool) {
	if g.finished {
		return nil, false
	}
	g.sent = sent
	step, ok := g.next()
	if !ok {
		g.finished = true
		g.sent = nil
	}
	return step, ok
}

// Result is the body's return value. It is meaningful once Next returned false.
func (g *Generator[R]) Result() R {
	return g.result
}

// Done reports whether the body ran to completion or was stopped.
func (g *Generator[R]) Done() bool {
	return g.finished
}

// Stop abandons a suspended body, running its deferred calls. Stop is idempotent.
func (g *Generator[R]) Stop() {
	if g.finished {
		return
	}
	g.finished = true
	g.stop()
}
