package effects

import (
	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// Ref is a mutable cell shared between fibers. Every update is a
// compare-and-swap loop, so update functions may run more than once and
// must be pure.
type Ref[A any] struct {
	id   uuid.UUID
	cell *atomic.Pointer[A]
}

// MakeRef allocates the cell when the effect runs.
func MakeRef[A any](value A) Effect[*Ref[A], Never] {
	return Sync[*Ref[A], Never](func() *Ref[A] {
		return UnsafeMakeRef(value)
	})
}

// UnsafeMakeRef allocates the cell immediately.
func UnsafeMakeRef[A any](value A) *Ref[A] {
	return &Ref[A]{id: uuid.New(), cell: atomic.NewPointer(&value)}
}

func (r *Ref[A]) ID() uuid.UUID {
	return r.id
}

// UnsafeGet reads the cell outside of an effect.
func (r *Ref[A]) UnsafeGet() A {
	return *r.cell.Load()
}

func (r *Ref[A]) Get() Effect[A, Never] {
	return Sync[A, Never](r.UnsafeGet)
}

func (r *Ref[A]) Set(value A) Effect[struct{}, Never] {
	return Sync[struct{}, Never](func() struct{} {
		r.cell.Store(&value)
		return struct{}{}
	})
}

func (r *Ref[A]) GetAndSet(value A) Effect[A, Never] {
	return Sync[A, Never](func() A {
		return *r.cell.Swap(&value)
	})
}

func (r *Ref[A]) SetAndGet(value A) Effect[A, Never] {
	return As(r.Set(value), value)
}

func (r *Ref[A]) GetAndUpdate(f func(A) A) Effect[A, Never] {
	return ModifyRef(r, func(old A) (A, A) { return old, f(old) })
}

func (r *Ref[A]) Update(f func(A) A) Effect[struct{}, Never] {
	return AsVoid(r.GetAndUpdate(f))
}

func (r *Ref[A]) UpdateAndGet(f func(A) A) Effect[A, Never] {
	return ModifyRef(r, func(old A) (A, A) {
		next := f(old)
		return next, next
	})
}

// Modify stores the second result of f and returns the first.
func (r *Ref[A]) Modify(f func(A) (A, A)) Effect[A, Never] {
	return ModifyRef(r, f)
}

// ModifyRef is Modify for a result of another type.
func ModifyRef[A, B any](r *Ref[A], f func(A) (B, A)) Effect[B, Never] {
	return Sync[B, Never](func() B {
		for {
			old := r.cell.Load()
			b, next := f(*old)
			if r.cell.CompareAndSwap(old, &next) {
				return b
			}
		}
	})
}
