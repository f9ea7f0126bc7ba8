package effects

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

func NewTimeSpan(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}

type TimeBounded interface {
	TimeSpan() TimeSpan
}

var _ TimeBounded = TimedValue[int]{}

// TimedValue is a value together with the span of wall-clock time it took to produce.
type TimedValue[A any] struct {
	Value A
	Span  TimeSpan
}

func (t TimedValue[A]) TimeSpan() TimeSpan {
	return t.Span
}

func (t TimedValue[A]) Duration() time.Duration {
	return t.Span.Duration()
}

// Timed measures e from its start to its success.
func Timed[A, E any](e Effect[A, E]) Effect[TimedValue[A], E] {
	return FlatMap(Sync[time.Time, E](time.Now), func(start time.Time) Effect[TimedValue[A], E] {
		return Map(e, func(a A) TimedValue[A] {
			return TimedValue[A]{Value: a, Span: NewTimeSpan(start, time.Now())}
		})
	})
}
