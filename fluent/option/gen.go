package option

import (
	"fmt"

	"code.hybscloud.com/kont"
	"github.com/on-the-ground/effect_fluent_go/effects"
	"github.com/on-the-ground/effect_fluent_go/shared/generator"
	"github.com/on-the-ground/effect_fluent_go/shared/helper"
)

// Yielder is handed to the body of Gen.
type Yielder struct {
	y *generator.Yielder
}

// Yield returns the value of a Some. Yielding None ends the body: Yield does
// not return and Gen is None.
func Yield[A any](y *Yielder, o Option[A]) A {
	return resumed[A](y.y.Yield(o))
}

// YieldNative is Yield for a native optional.
func YieldNative[A any](y *Yielder, native kont.Either[struct{}, A]) A {
	return Yield(y, Of(native))
}

// YieldAs yields a step that does not carry its value type, such as an
// Option inside an effects.YieldWrap carrier. If the Some holds something
// other than an A, Gen panics with an error wrapping effects.ErrInvalidYield.
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

// Gen runs body synchronously, resuming it with the value of each yielded
// Some. It is Some of the body's result, or None as soon as a None is
// yielded; the body is then unwound without being resumed.
//
// Yielding anything but an Option, bare or in one effects.YieldWrap carrier,
// panics with effects.ErrInvalidYield, as does resuming YieldAs with a value
// of the wrong type.
func Gen[A any](body func(y *Yielder) A) Option[A] {
	g := generator.New(func(gy *generator.Yielder) A {
		return body(&Yielder{y: gy})
	})
	defer g.Stop()

	var sent any
	for {
		step, more := g.Next(sent)
		if !more {
			return Some(g.Result())
		}
		value, some := stepValue(step)
		if !some {
			return None[A]()
		}
		sent = value
	}
}

// GenWith is Gen with self bound as the body's first argument.
func GenWith[S, A any](self S, body func(self S, y *Yielder) A) Option[A] {
	return Gen(func(y *Yielder) A {
		return body(self, y)
	})
}

func stepValue(step any) (any, bool) {
	if inner, ok := effects.YieldWrapGet(step); ok {
		step = inner
	}
	if o, ok := step.(interface{ stepValue() (any, bool) }); ok {
		return o.stepValue()
	}
	panic(fmt.Errorf("%w: %T", effects.ErrInvalidYield, step))
}
