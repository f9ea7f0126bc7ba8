package effects

import (
	"fmt"

	"code.hybscloud.com/kont"
)

// Exit is the outcome of running an effect: a success value or a Cause.
type Exit[A, E any] struct {
	either kont.Either[Cause[E], A]
}

func ExitSucceed[A, E any](a A) Exit[A, E] {
	return Exit[A, E]{either: kont.Right[Cause[E]](a)}
}

func ExitFailCause[A, E any](c Cause[E]) Exit[A, E] {
	return Exit[A, E]{either: kont.Left[Cause[E], A](c)}
}

func ExitFail[A, E any](err E) Exit[A, E] {
	return ExitFailCause[A](FailureCause(err))
}

func ExitDie[A, E any](defect any) Exit[A, E] {
	return ExitFailCause[A](DieCause[E](defect))
}

func ExitInterrupt[A, E any]() Exit[A, E] {
	return ExitFailCause[A](InterruptCause[E]())
}

func (x Exit[A, E]) IsSuccess() bool {
	return x.either.IsRight()
}

func (x Exit[A, E]) IsFailure() bool {
	return x.either.IsLeft()
}

func (x Exit[A, E]) Value() (A, bool) {
	return x.either.GetRight()
}

func (x Exit[A, E]) Cause() (Cause[E], bool) {
	return x.either.GetLeft()
}

// Either views the exit as Left(cause) or Right(value).
func (x Exit[A, E]) Either() kont.Either[Cause[E], A] {
	return x.either
}

func (x Exit[A, E]) String() string {
	return MatchExit(x,
		func(c Cause[E]) string { return fmt.Sprintf("Failure(%s)", c) },
		func(a A) string { return fmt.Sprintf("Success(%v)", a) },
	)
}

func MatchExit[A, E, T any](x Exit[A, E], onFailure func(Cause[E]) T, onSuccess func(A) T) T {
	return kont.MatchEither(x.either, onFailure, onSuccess)
}
