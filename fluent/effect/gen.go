package effect

import (
	"fmt"

	"github.com/on-the-ground/effect_fluent_go/effects"
	"github.com/on-the-ground/effect_fluent_go/shared/generator"
	"github.com/on-the-ground/effect_fluent_go/shared/helper"
)

// Yielder is handed to the body of Gen.
type Yielder struct {
	y *generator.Yielder
}

// Yieldable is anything a Gen body can yield that names its resume value:
// fluent and native effects, and readable refs.
type Yieldable[A any] interface {
	YieldResult() A
}

// Yield runs step and returns its value. A failing step ends the body.
func Yield[A any](y *Yielder, step Yieldable[A]) A {
	return resumed[A](y.y.Yield(step))
}

// YieldAs yields a step that does not carry its result type, such as a
// carrier built with effects.NewYieldWrap. If the step's value is not an A,
// the effect dies with a defect wrapping effects.ErrInvalidYield.
func YieldAs[A any](y *Yielder, step any) A {
	return resumed[A](y.y.Yield(step))
}

func resumed[A any](v any) A {
	a, err := helper.Assert[A](v)
	if err != nil {
		panic(fmt.Errorf("%w: resumed with %w", effects.ErrInvalidYield, err))
	}
	return a
}

// Adapt returns step unchanged. Bodies that pipe a value before yielding
// it use Adapt as the identity stage.
func Adapt[T any](step T) T {
	return step
}

// Gen runs body as an effect. Each yielded step may be a fluent Effect, a
// native effects.Effect, a readable ref, or any of these inside one
// effects.YieldWrap carrier; all are run the same way. Steps must fail with
// E or not at all.
func Gen[A, E any](body func(y *Yielder) A) Effect[A, E] {
	return Of(effects.Gen[A, E](func() effects.Generator[A] {
		return adaptedGenerator[A]{generator.New(func(gy *generator.Yielder) A {
			return body(&Yielder{y: gy})
		})}
	}))
}

// GenWith is Gen with self bound as the body's first argument.
func GenWith[S, A, E any](self S, body func(self S, y *Yielder) A) Effect[A, E] {
	return Gen[A, E](func(y *Yielder) A {
		return body(self, y)
	})
}

type adaptedGenerator[A any] struct {
	*generator.Generator[A]
}

func (g adaptedGenerator[A]) Next(sent any) (any, bool) {
	step, more := g.Generator.Next(sent)
	if !more {
		return nil, false
	}
	return nativeStep(step), true
}

// nativeStep strips a carrier and a fluent wrapper, leaving what the
// runtime drives.
func nativeStep(step any) any {
	if inner, ok := effects.YieldWrapGet(step); ok {
		step = inner
	}
	if w, ok := step.(interface{ native() any }); ok && Is(step) {
		return w.native()
	}
	if r, ok := step.(interface{ YieldEffect() any }); ok {
		return r.YieldEffect()
	}
	return step
}
