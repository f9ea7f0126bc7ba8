// Package option is a method-chaining optional value over kont.Either.
//
// An Option is None or Some(value). It is immutable: every combinator returns
// a new Option. Combinators that change the value type are package functions
// taking the Option first, with a curried ...With form for pipelines.
package option

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"reflect"

	"code.hybscloud.com/kont"
	"github.com/cespare/xxhash/v2"
	"github.com/on-the-ground/effect_fluent_go/effects"
	"github.com/on-the-ground/effect_fluent_go/shared/function"
)

const TypeID effects.TypeID = "effect-fluent/Option"

var ErrNoSuchElement = errors.New("option is None")

const (
	tagSome = "Some"
	tagNone = "None"
)

var (
	someSeed = xxhash.Sum64String(tagSome)
	noneHash = xxhash.Sum64String(tagNone)
)

type Option[A any] struct {
	typeID effects.TypeID
	option kont.Either[struct{}, A]
}

func Some[A any](value A) Option[A] {
	return Option[A]{
		typeID: TypeID,
		option: kont.Right[struct{}](value),
	}
}

func None[A any]() Option[A] {
	return Option[A]{
		typeID: TypeID,
		option: kont.Left[struct{}, A](struct{}{}),
	}
}

// Of wraps a native optional: Right is Some, Left is None.
func Of[A any](native kont.Either[struct{}, A]) Option[A] {
	if v, ok := native.GetRight(); ok {
		return Some(v)
	}
	return None[A]()
}

// Is reports whether u was built by this package. Zero Options are not.
func Is(u any) bool {
	return effects.HasTypeID(u, TypeID)
}

// FromNullable is None for a nil pointer and Some of the pointee otherwise.
func FromNullable[A any](p *A) Option[A] {
	if p == nil {
		return None[A]()
	}
	return Some(*p)
}

// FromIterable is Some of the first element of seq, or None if seq is empty.
func FromIterable[A any](seq iter.Seq[A]) Option[A] {
	for a := range seq {
		return Some(a)
	}
	return None[A]()
}

func GetRight[E, A any](e kont.Either[E, A]) Option[A] {
	if a, ok := e.GetRight(); ok {
		return Some(a)
	}
	return None[A]()
}

func GetLeft[E, A any](e kont.Either[E, A]) Option[E] {
	if l, ok := e.GetLeft(); ok {
		return Some(l)
	}
	return None[E]()
}

func LiftPredicate[A any](pred func(A) bool) func(A) Option[A] {
	return func(a A) Option[A] {
		if pred(a) {
			return Some(a)
		}
		return None[A]()
	}
}

func LiftNullable[X, A any](f func(X) *A) func(X) Option[A] {
	return function.Flow(f, FromNullable[A])
}

// LiftThrowable turns an error or a panic of f into None.
func LiftThrowable[X, A any](f func(X) (A, error)) func(X) Option[A] {
	return func(x X) (o Option[A]) {
		defer func() {
			if r := recover(); r != nil {
				o = None[A]()
			}
		}()
		a, err := f(x)
		if err != nil {
			return None[A]()
		}
		return Some(a)
	}
}

func Void() Option[struct{}] {
	return Some(struct{}{})
}

func (o Option[A]) TypeID() effects.TypeID {
	return o.typeID
}

// AsOption returns the native optional.
func (o Option[A]) AsOption() kont.Either[struct{}, A] {
	return o.option
}

func (o Option[A]) IsSome() bool {
	return o.option.IsRight()
}

func (o Option[A]) IsNone() bool {
	return !o.IsSome()
}

// Value returns the value and true for Some, the zero value and false for None.
func (o Option[A]) Value() (A, bool) {
	return o.option.GetRight()
}

// Get returns ErrNoSuchElement for None.
func (o Option[A]) Get() (A, error) {
	if a, ok := o.Value(); ok {
		return a, nil
	}
	var zero A
	return zero, ErrNoSuchElement
}

func (o Option[A]) GetOrElse(onNone func() A) A {
	if a, ok := o.Value(); ok {
		return a
	}
	return onNone()
}

func (o Option[A]) GetOrZero() A {
	a, _ := o.Value()
	return a
}

// GetOrPanic panics with ErrNoSuchElement for None.
func (o Option[A]) GetOrPanic() A {
	return o.GetOrPanicWith(func() error { return ErrNoSuchElement })
}

func (o Option[A]) GetOrPanicWith(onNone func() error) A {
	if a, ok := o.Value(); ok {
		return a
	}
	panic(onNone())
}

// OrElse returns o if it is Some. that is only called for None.
func (o Option[A]) OrElse(that func() Option[A]) Option[A] {
	if o.IsSome() {
		return o
	}
	return that()
}

func (o Option[A]) OrElseSome(onNone func() A) Option[A] {
	if o.IsSome() {
		return o
	}
	return Some(onNone())
}

func (o Option[A]) Filter(pred func(A) bool) Option[A] {
	if a, ok := o.Value(); ok && pred(a) {
		return o
	}
	return None[A]()
}

func (o Option[A]) Exists(pred func(A) bool) bool {
	a, ok := o.Value()
	return ok && pred(a)
}

// Contains compares with the value's Equal method if it has one, else deeply.
func (o Option[A]) Contains(a A) bool {
	return o.Exists(func(v A) bool { return equalValues(v, a) })
}

func (o Option[A]) ContainsWith(eq func(A, A) bool, a A) bool {
	return o.Exists(func(v A) bool { return eq(v, a) })
}

// Tap keeps o if f yields Some for its value, and is None otherwise.
func (o Option[A]) Tap(f func(A) Option[struct{}]) Option[A] {
	return Tap(o, f)
}

// Pipe applies fs left to right.
func (o Option[A]) Pipe(fs ...func(Option[A]) Option[A]) Option[A] {
	for _, f := range fs {
		o = f(o)
	}
	return o
}

// Equal reports whether that is an Option[A] with the same tag and an equal value.
func (o Option[A]) Equal(that any) bool {
	other, ok := that.(Option[A])
	if !ok {
		return false
	}
	a, aSome := o.Value()
	b, bSome := other.Value()
	if !aSome || !bSome {
		return aSome == bSome
	}
	return equalValues(a, b)
}

// Hash is equal for equal Options. Every None has the same hash. It is
// computed on each call, so a Some holding a pointer follows what it points to.
func (o Option[A]) Hash() uint64 {
	a, ok := o.Value()
	if !ok {
		return noneHash
	}
	return (hashValue(a) * 53) ^ someSeed
}

func (o Option[A]) String() string {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		if a, ok := o.Value(); ok {
			return fmt.Sprintf("Some(%v)", a)
		}
		return tagNone
	}
	return string(b)
}

func (o Option[A]) MarshalJSON() ([]byte, error) {
	if a, ok := o.Value(); ok {
		return json.Marshal(struct {
			ID    string `json:"_id"`
			Tag   string `json:"_tag"`
			Value A      `json:"value"`
		}{"Option", tagSome, a})
	}
	return json.Marshal(struct {
		ID  string `json:"_id"`
		Tag string `json:"_tag"`
	}{"Option", tagNone})
}

// stepValue is what a generator body is resumed with.
func (o Option[A]) stepValue() (any, bool) {
	return o.Value()
}

func equalValues(a, b any) bool {
	if e, ok := a.(interface{ Equal(any) bool }); ok {
		return e.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}
