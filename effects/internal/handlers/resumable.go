package handlers

import (
	"context"
	"errors"

	effectmodel "github.com/on-the-ground/effect_fluent_go/effects/internal/model"
	"go.uber.org/zap"
)

func NewResumableHandler[P any, R any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, P) (R, error),
	teardown func(),
) ResumableHandler[P, R] {
	ctx, cancelFn := context.WithCancel(ctx)
	scope := newEffectScope[ResumableEffectMessage[P, R]](func() {
		teardown()
		cancelFn()
	})
	scope.dispatcher = NewSingleQueue(ctx, bufferSize, resumeWith(handleFn), abandon[P, R])
	return ResumableHandler[P, R]{effectScope: scope}
}

func NewPartitionableResumableHandler[P effectmodel.Partitionable, R any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	handleFn func(context.Context, P) (R, error),
	teardown func(),
) ResumableHandler[P, R] {
	ctx, cancelFn := context.WithCancel(ctx)
	scope := newEffectScope[ResumableEffectMessage[P, R]](func() {
		teardown()
		cancelFn()
	})
	scope.dispatcher = NewPartitionedQueue(
		ctx,
		config.NumWorkers,
		config.BufferSize,
		resumeWith(handleFn),
		abandon[P, R],
	)
	return ResumableHandler[P, R]{effectScope: scope}
}

func resumeWith[P, R any](
	handleFn func(context.Context, P) (R, error),
) func(context.Context, ResumableEffectMessage[P, R]) {
	return func(ctx context.Context, msg ResumableEffectMessage[P, R]) {
		select {
		case <-ctx.Done():
		case msg.ResumeCh <- ResumableResultFrom(handleFn(ctx, msg.Payload)):
		}
		close(msg.ResumeCh)
	}
}

// abandon releases the performer of a message the handler shut down before serving.
func abandon[P, R any](msg ResumableEffectMessage[P, R]) {
	close(msg.ResumeCh)
}

type ResumableHandler[P any, R any] struct {
	*effectScope[ResumableEffectMessage[P, R]]
}

// PerformEffect enqueues payload and returns the channel its result arrives on.
// The channel is closed without a value if the handler shuts down first.
func (rh ResumableHandler[P, R]) PerformEffect(ctx context.Context, payload P) (resultCh <-chan ResumableResult[R]) {
	// buffered so the worker never blocks on a performer that gave up
	resumeCh := make(chan ResumableResult[R], 1)
	msg := ResumableEffectMessage[P, R]{
		Payload:  payload,
		ResumeCh: resumeCh,
	}
	if err := rh.dispatcher.Dispatch(ctx, msg); err != nil {
		if errors.Is(err, ErrHandlerClosed) {
			zap.L().Warn(
				"effect handler already closed",
				zap.String("effectId", rh.EffectId),
				zap.Any("payload", payload),
			)
		}
		close(resumeCh)
	}
	return resumeCh
}

// ResumableResult represents the result of handled effects.
type ResumableResult[T any] struct {
	Value T
	Err   error
}

func ResumableResultFrom[R any](res R, err error) ResumableResult[R] {
	return ResumableResult[R]{Value: res, Err: err}
}

var _ effectmodel.Partitionable = ResumableEffectMessage[any, any]{}

type ResumableEffectMessage[P any, R any] struct {
	Payload  P
	ResumeCh chan ResumableResult[R]
}

func (rem ResumableEffectMessage[P, R]) PartitionKey() string {
	if p, ok := any(rem.Payload).(effectmodel.Partitionable); ok {
		return p.PartitionKey()
	}
	return ""
}
