package effects

import "fmt"

// Generator is a steppable computation driven by Gen. Each step it yields
// must be an Effect; Gen runs it and resumes the generator with its value.
type Generator[A any] interface {
	// Next resumes with sent and returns the next step, or false once finished.
	Next(sent any) (step any, more bool)
	Result() A
	// Stop abandons a suspended generator.
	Stop()
}

// Gen runs the generator built by start, one yielded effect at a time.
//
// A step must be an Effect[_, E] or an infallible Effect[_, Never]. Any
// other step ends the effect with a defect wrapping ErrInvalidYield.
// Failures of a step end the effect unchanged. However the effect ends,
// a suspended generator is stopped.
func Gen[A, E any](start func() Generator[A]) Effect[A, E] {
	return Suspend(func() Effect[A, E] {
		var g Generator[A]
		body := Suspend(func() Effect[A, E] {
			g = start()
			return genStep[A, E](g, nil)
		})
		return Ensuring(body, Sync[struct{}, Never](func() struct{} {
			if g != nil {
				g.Stop()
			}
			return struct{}{}
		}))
	})
}

func genStep[A, E any](g Generator[A], sent any) Effect[A, E] {
	return Suspend(func() Effect[A, E] {
		step, more := g.Next(sent)
		if !more {
			return Succeed[A, E](g.Result())
		}
		eff, err := asStep[E](step)
		if err != nil {
			return Die[A, E](err)
		}
		return FlatMap(eff, func(v any) Effect[A, E] {
			return genStep[A, E](g, v)
		})
	})
}

func asStep[E any](step any) (Effect[any, E], error) {
	switch s := step.(type) {
	case erasable[E]:
		return s.erase(), nil
	case erasable[Never]:
		return Widen[any, E](s.erase()), nil
	}
	return Effect[any, E]{}, fmt.Errorf("%w: %T", ErrInvalidYield, step)
}
