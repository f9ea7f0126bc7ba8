package effects

import "code.hybscloud.com/kont"

// MatchCauseEffect runs e and continues with onFailure or onSuccess.
// It is the only combinator that observes a Cause; the others below are
// built on it. Interruption of the running context cannot be recovered.
func MatchCauseEffect[A, E, B, E2 any](
	e Effect[A, E],
	onFailure func(Cause[E]) Effect[B, E2],
	onSuccess func(A) Effect[B, E2],
) Effect[B, E2] {
	exited := perform(func(rt *runtime) (Exit[A, E], *Cause[E2]) {
		exit := runExit(rt, e)
		if rt.ctx.Err() != nil {
			return raise[Exit[A, E]](InterruptCause[E2]())
		}
		return exit, nil
	})
	return FlatMap(exited, func(exit Exit[A, E]) Effect[B, E2] {
		return MatchExit(exit, onFailure, onSuccess)
	})
}

func ToExit[A, E any](e Effect[A, E]) Effect[Exit[A, E], Never] {
	return MatchCauseEffect(e,
		func(c Cause[E]) Effect[Exit[A, E], Never] {
			return Succeed[Exit[A, E], Never](ExitFailCause[A](c))
		},
		func(a A) Effect[Exit[A, E], Never] {
			return Succeed[Exit[A, E], Never](ExitSucceed[A, E](a))
		},
	)
}

func FromExit[A, E any](exit Exit[A, E]) Effect[A, E] {
	return MatchExit(exit, FailCause[A, E], Succeed[A, E])
}

func CatchAllCause[A, E, E2 any](e Effect[A, E], f func(Cause[E]) Effect[A, E2]) Effect[A, E2] {
	return MatchCauseEffect(e, f, Succeed[A, E2])
}

// CatchAll recovers from expected failures. Defects and interruption pass through.
func CatchAll[A, E, E2 any](e Effect[A, E], f func(E) Effect[A, E2]) Effect[A, E2] {
	return CatchAllCause(e, func(c Cause[E]) Effect[A, E2] {
		if err, ok := c.Failure(); ok {
			return f(err)
		}
		return FailCause[A](retypeCause[E2](c))
	})
}

func CatchAllDefect[A, E any](e Effect[A, E], f func(any) Effect[A, E]) Effect[A, E] {
	return CatchAllCause(e, func(c Cause[E]) Effect[A, E] {
		if defect, ok := c.Defect(); ok {
			return f(defect)
		}
		return FailCause[A](c)
	})
}

func OrElse[A, E, E2 any](e Effect[A, E], that func() Effect[A, E2]) Effect[A, E2] {
	return CatchAll(e, func(E) Effect[A, E2] { return that() })
}

func MapError[A, E, E2 any](e Effect[A, E], f func(E) E2) Effect[A, E2] {
	return CatchAllCause(e, func(c Cause[E]) Effect[A, E2] {
		return FailCause[A](MapCause(c, f))
	})
}

func MapBoth[A, B, E, E2 any](e Effect[A, E], onFailure func(E) E2, onSuccess func(A) B) Effect[B, E2] {
	return Map(MapError(e, onFailure), onSuccess)
}

// Flip swaps the success and failure channels.
func Flip[A, E any](e Effect[A, E]) Effect[E, A] {
	return MatchCauseEffect(e,
		func(c Cause[E]) Effect[E, A] {
			if err, ok := c.Failure(); ok {
				return Succeed[E, A](err)
			}
			return FailCause[E](retypeCause[A](c))
		},
		Fail[E, A],
	)
}

// OrDie turns expected failures into defects.
func OrDie[A, E any](e Effect[A, E]) Effect[A, Never] {
	return CatchAll(e, func(err E) Effect[A, Never] {
		return Die[A, Never](err)
	})
}

// Merge succeeds with either channel's value.
func Merge[A any](e Effect[A, A]) Effect[A, Never] {
	return CatchAll(e, Succeed[A, Never])
}

func Match[A, E, B any](e Effect[A, E], onFailure func(E) B, onSuccess func(A) B) Effect[B, Never] {
	return MatchEffect(e,
		func(err E) Effect[B, Never] { return Succeed[B, Never](onFailure(err)) },
		func(a A) Effect[B, Never] { return Succeed[B, Never](onSuccess(a)) },
	)
}

func MatchEffect[A, E, B, E2 any](e Effect[A, E], onFailure func(E) Effect[B, E2], onSuccess func(A) Effect[B, E2]) Effect[B, E2] {
	return MatchCauseEffect(e,
		func(c Cause[E]) Effect[B, E2] {
			if err, ok := c.Failure(); ok {
				return onFailure(err)
			}
			return FailCause[B](retypeCause[E2](c))
		},
		onSuccess,
	)
}

// Either moves the outcome into the success channel. Defects still end the effect.
func Either[A, E any](e Effect[A, E]) Effect[kont.Either[E, A], Never] {
	return Match(e, kont.Left[E, A], kont.Right[E, A])
}

func Tap[A, X, E any](e Effect[A, E], f func(A) Effect[X, E]) Effect[A, E] {
	return FlatMap(e, func(a A) Effect[A, E] {
		return As(f(a), a)
	})
}

func TapErrorCause[A, X, E any](e Effect[A, E], f func(Cause[E]) Effect[X, E]) Effect[A, E] {
	return CatchAllCause(e, func(c Cause[E]) Effect[A, E] {
		return AndThen(f(c), FailCause[A](c))
	})
}

func TapError[A, X, E any](e Effect[A, E], f func(E) Effect[X, E]) Effect[A, E] {
	return TapErrorCause(e, func(c Cause[E]) Effect[struct{}, E] {
		if err, ok := c.Failure(); ok {
			return AsVoid(f(err))
		}
		return Void[E]()
	})
}

func TapDefect[A, X, E any](e Effect[A, E], f func(any) Effect[X, E]) Effect[A, E] {
	return TapErrorCause(e, func(c Cause[E]) Effect[struct{}, E] {
		if defect, ok := c.Defect(); ok {
			return AsVoid(f(defect))
		}
		return Void[E]()
	})
}

func TapBoth[A, X, Y, E any](e Effect[A, E], onFailure func(E) Effect[X, E], onSuccess func(A) Effect[Y, E]) Effect[A, E] {
	return Tap(TapError(e, onFailure), onSuccess)
}

func FilterOrFail[A, E any](e Effect[A, E], pred func(A) bool, orFail func(A) E) Effect[A, E] {
	return FlatMap(e, func(a A) Effect[A, E] {
		if pred(a) {
			return Succeed[A, E](a)
		}
		return Fail[A](orFail(a))
	})
}

// Ensuring runs finalizer after e however e ends, including interruption.
// The finalizer itself is not interruptible. A defect in the finalizer is
// appended to e's cause.
func Ensuring[A, E, X any](e Effect[A, E], finalizer Effect[X, Never]) Effect[A, E] {
	exited := perform(func(rt *runtime) (Exit[A, E], *Cause[E]) {
		exit := runExit(rt, e)
		fin := runExit(rt.uninterruptible(), finalizer)
		finCause, finFailed := fin.Cause()
		if !finFailed {
			return exit, nil
		}
		c, _ := exit.Cause()
		return ExitFailCause[A](SequentialCause(c, retypeCause[E](finCause))), nil
	})
	return FlatMap(exited, FromExit[A, E])
}
