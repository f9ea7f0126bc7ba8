package handlers

import (
	"context"

	effectmodel "github.com/on-the-ground/effect_fluent_go/effects/internal/model"
	"go.uber.org/zap"
)

// NewFireAndForgetEffectHandler serves payloads on one worker, in order.
// Payloads still queued when the handler closes are logged and dropped.
func NewFireAndForgetEffectHandler[T any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	handleFn func(context.Context, T),
	teardown func(),
) FireAndForgetHandler[T] {
	ctx, cancelFn := context.WithCancel(ctx)
	scope := newEffectScope[T](func() {
		cancelFn()
		teardown()
	})
	scope.dispatcher = NewSingleQueue(ctx, config.BufferSize, handleFn, func(payload T) {
		zap.L().Warn(
			"effect handler closed before handling payload",
			zap.String("effectId", scope.EffectId),
			zap.Any("payload", payload),
		)
	})
	return FireAndForgetHandler[T]{effectScope: scope}
}

type FireAndForgetHandler[T any] struct {
	*effectScope[T]
}

// FireAndForgetEffect enqueues payload without waiting for it to be handled.
// It returns ErrHandlerClosed after Close, or ctx's error if ctx is done first.
func (ffh FireAndForgetHandler[T]) FireAndForgetEffect(ctx context.Context, payload T) error {
	return ffh.dispatcher.Dispatch(ctx, payload)
}
