package effects

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrInvalidYield       = errors.New("generator yielded a value that is not an effect")
	ErrAsyncInSyncRun     = errors.New("cannot run an asynchronous effect synchronously")
	ErrInterrupted        = fmt.Errorf("fiber interrupted: %w", context.Canceled)
	ErrUnknownInstruction = errors.New("unknown effect instruction")
)

// Never is the error type of effects that cannot fail.
type Never struct{}

type causeKind uint8

const (
	causeEmpty causeKind = iota
	causeFail
	causeDie
	causeInterrupt
	causeSequential
)

// Cause is the full story of why an effect did not succeed: expected
// failures of type E, defects, interruptions, or a sequence of those.
type Cause[E any] struct {
	kind   causeKind
	err    E
	defect any
	left   *Cause[E]
	right  *Cause[E]
}

func FailureCause[E any](err E) Cause[E] {
	return Cause[E]{kind: causeFail, err: err}
}

func DieCause[E any](defect any) Cause[E] {
	return Cause[E]{kind: causeDie, defect: defect}
}

func InterruptCause[E any]() Cause[E] {
	return Cause[E]{kind: causeInterrupt}
}

// SequentialCause joins two causes that happened one after the other.
// An empty side is dropped.
func SequentialCause[E any](left, right Cause[E]) Cause[E] {
	switch {
	case left.kind == causeEmpty:
		return right
	case right.kind == causeEmpty:
		return left
	}
	return Cause[E]{kind: causeSequential, left: &left, right: &right}
}

func (c Cause[E]) IsEmpty() bool {
	return c.kind == causeEmpty
}

func (c Cause[E]) IsFailure() bool {
	_, ok := c.Failure()
	return ok
}

func (c Cause[E]) IsDie() bool {
	_, ok := c.Defect()
	return ok
}

func (c Cause[E]) IsInterrupted() bool {
	return c.find(func(n Cause[E]) bool { return n.kind == causeInterrupt }) != nil
}

// Failure returns the first expected failure, in order of occurrence.
func (c Cause[E]) Failure() (E, bool) {
	if n := c.find(func(n Cause[E]) bool { return n.kind == causeFail }); n != nil {
		return n.err, true
	}
	var zero E
	return zero, false
}

// Failures returns every expected failure, in order of occurrence.
func (c Cause[E]) Failures() []E {
	var errs []E
	c.walk(func(n Cause[E]) bool {
		if n.kind == causeFail {
			errs = append(errs, n.err)
		}
		return false
	})
	return errs
}

// Defect returns the first defect, in order of occurrence.
func (c Cause[E]) Defect() (any, bool) {
	if n := c.find(func(n Cause[E]) bool { return n.kind == causeDie }); n != nil {
		return n.defect, true
	}
	return nil, false
}

// Squash collapses the cause into one error, preferring failures over
// defects over interruption.
func (c Cause[E]) Squash() error {
	if err, ok := c.Failure(); ok {
		return asError(err)
	}
	if d, ok := c.Defect(); ok {
		return asError(d)
	}
	if c.IsInterrupted() {
		return ErrInterrupted
	}
	return nil
}

func (c Cause[E]) String() string {
	switch c.kind {
	case causeFail:
		return fmt.Sprintf("Fail(%v)", c.err)
	case causeDie:
		return fmt.Sprintf("Die(%v)", c.defect)
	case causeInterrupt:
		return "Interrupt"
	case causeSequential:
		return fmt.Sprintf("Sequential(%s, %s)", c.left, c.right)
	}
	return "Empty"
}

func (c Cause[E]) find(pred func(Cause[E]) bool) *Cause[E] {
	var found *Cause[E]
	c.walk(func(n Cause[E]) bool {
		if pred(n) {
			found = &n
			return true
		}
		return false
	})
	return found
}

// walk visits leaves left to right until visit returns true.
func (c Cause[E]) walk(visit func(Cause[E]) bool) bool {
	if c.kind == causeSequential {
		return c.left.walk(visit) || c.right.walk(visit)
	}
	return visit(c)
}

// MapCause rewrites every expected failure with f, keeping the shape of the cause.
func MapCause[E, E2 any](c Cause[E], f func(E) E2) Cause[E2] {
	switch c.kind {
	case causeFail:
		return FailureCause(f(c.err))
	case causeDie:
		return DieCause[E2](c.defect)
	case causeInterrupt:
		return InterruptCause[E2]()
	case causeSequential:
		return SequentialCause(MapCause(*c.left, f), MapCause(*c.right, f))
	}
	return Cause[E2]{}
}

// retypeCause moves a cause into another error channel. Expected failures,
// which callers have already ruled out, are kept as defects.
func retypeCause[E2, E any](c Cause[E]) Cause[E2] {
	switch c.kind {
	case causeFail:
		return DieCause[E2](c.err)
	case causeDie:
		return DieCause[E2](c.defect)
	case causeInterrupt:
		return InterruptCause[E2]()
	case causeSequential:
		return SequentialCause(retypeCause[E2](*c.left), retypeCause[E2](*c.right))
	}
	return Cause[E2]{}
}

// adoptCause accepts a cause raised by an instruction into the E channel.
// Instructions of infallible effects raise Cause[Never].
func adoptCause[E any](raw any) Cause[E] {
	switch c := raw.(type) {
	case Cause[E]:
		return c
	case Cause[Never]:
		return retypeCause[E](c)
	default:
		return DieCause[E](fmt.Errorf("cause of unexpected type %T: %v", raw, raw))
	}
}

func asError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return fmt.Errorf("%v", v)
}

// FiberFailure is the error Run returns when an effect does not succeed.
type FiberFailure[E any] struct {
	Cause Cause[E]
}

func (f *FiberFailure[E]) Error() string {
	return "fiber failure: " + f.Cause.String()
}

func (f *FiberFailure[E]) Unwrap() error {
	return f.Cause.Squash()
}

// UnknownException classifies an error or panic caught by Try or TryPromise
// when no catch mapping is given.
type UnknownException struct {
	Err error
}

func (u UnknownException) Error() string {
	return "unknown exception: " + u.Err.Error()
}

func (u UnknownException) Unwrap() error {
	return u.Err
}

// PanicError carries a value recovered from a panic.
type PanicError struct {
	Value any
}

func (p PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

func (p PanicError) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}
