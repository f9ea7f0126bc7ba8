package effects

import (
	"context"

	"github.com/on-the-ground/effect_fluent_go/effects/internal/handlers"
	"github.com/on-the-ground/effect_fluent_go/effects/internal/helper"
	effectmodel "github.com/on-the-ground/effect_fluent_go/effects/internal/model"
	"go.uber.org/zap"
)

var (
	ErrNoEffectHandler = effectmodel.ErrNoEffectHandler
	ErrHandlerClosed   = handlers.ErrHandlerClosed
)

// EffectScopeConfig sizes the worker pool behind a handler.
type EffectScopeConfig = effectmodel.EffectScopeConfig

// NewEffectScopeConfig defaults non-positive sizes to 1.
func NewEffectScopeConfig(bufferSize int, numWorkers int) EffectScopeConfig {
	return effectmodel.NewEffectScopeConfig(bufferSize, numWorkers)
}

// WithResumablePartitionableEffectHandler registers a resumable effect handler for a given effect enum.
//
// This handler supports hash-based partitioning via PartitionKey(), and is suitable for effects
// like service lookups where per-key ordering matters.
//
// Usage:
//
//	ctx, end := WithResumablePartitionableEffectHandler(ctx, config, MyEffectEnum, handleFn)
//	defer end()
func WithResumablePartitionableEffectHandler[P effectmodel.Partitionable, R any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, P) (R, error),
	teardown ...func(),
) (context.Context, func() context.Context) {
	logger := zap.L()
	td := normalizeTeardown(teardown)
	handler := handlers.NewPartitionableResumableHandler(ctx, config, handleFn, td)
	ctxWith := context.WithValue(ctx, enum, handler)
	logger.Sugar().Debugf("created resumable effect handler: effectId: %v, enum: %v", handler.EffectId, enum)

	return ctxWith, func() context.Context {
		handler.Close()
		logger.Sugar().Debugf("closed resumable effect handler: effectId: %v, enum: %v", handler.EffectId, enum)
		return ctx
	}
}

// WithResumableEffectHandler registers a resumable effect handler for a given effect enum.
//
// This handler is suitable for effects that don't require ordering by key.
func WithResumableEffectHandler[P effectmodel.Partitionable, R any](
	ctx context.Context,
	bufferSize int,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, P) (R, error),
	teardown ...func(),
) (context.Context, func() context.Context) {
	logger := zap.L()
	td := normalizeTeardown(teardown)
	handler := handlers.NewResumableHandler(ctx, bufferSize, handleFn, td)
	ctxWith := context.WithValue(ctx, enum, handler)
	logger.Sugar().Debugf("created resumable effect handler: effectId: %v, enum: %v", handler.EffectId, enum)

	return ctxWith, func() context.Context {
		handler.Close()
		logger.Sugar().Debugf("closed resumable effect handler: effectId: %v, enum: %v", handler.EffectId, enum)
		return ctx
	}
}

// PerformResumableEffect sends a payload to the resumable effect handler and returns
// the channel its result is delivered on.
// Returns ErrNoEffectHandler if nothing is registered for the enum.
func PerformResumableEffect[P effectmodel.Partitionable, R any](
	ctx context.Context,
	enum effectmodel.EffectEnum,
	payload P,
) (<-chan handlers.ResumableResult[R], error) {
	handler, err := helper.Handler[handlers.ResumableHandler[P, R]](ctx, enum)
	if err != nil {
		return nil, err
	}
	return handler.PerformEffect(ctx, payload), nil
}

// WithFireAndForgetEffectHandler registers a fire-and-forget effect handler for a given effect enum.
//
// Suitable for one-shot effects like logging or telemetry.
// This handler executes without returning a result.
func WithFireAndForgetEffectHandler[P any](
	ctx context.Context,
	bufferSize int,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, P),
	teardown ...func(),
) (context.Context, func() context.Context) {
	logger := zap.L()
	td := normalizeTeardown(teardown)
	handler := handlers.NewFireAndForgetEffectHandler(
		ctx,
		effectmodel.NewEffectScopeConfig(bufferSize, 1),
		handleFn,
		td,
	)
	ctxWith := context.WithValue(ctx, enum, handler)
	logger.Sugar().Debugf("created fire/forget effect handler: effectId: %v, enum: %v", handler.EffectId, enum)

	return ctxWith, func() context.Context {
		handler.Close()
		logger.Sugar().Debugf("closed fire/forget effect handler: effectId: %v, enum: %v", handler.EffectId, enum)
		return ctx
	}
}

// FireAndForgetEffect hands the payload to the handler registered for enum.
// Returns ErrNoEffectHandler if nothing is registered, or ErrHandlerClosed if
// the handler was torn down while ctx still carries it.
func FireAndForgetEffect[P any](
	ctx context.Context,
	enum effectmodel.EffectEnum,
	payload P,
) error {
	handler, err := helper.Handler[handlers.FireAndForgetHandler[P]](ctx, enum)
	if err != nil {
		return err
	}
	return handler.FireAndForgetEffect(ctx, payload)
}

// HasEffectHandler reports whether a handler is registered for enum.
func HasEffectHandler(ctx context.Context, enum effectmodel.EffectEnum) bool {
	return helper.HasHandler(ctx, enum)
}

// normalizeTeardown flattens optional teardown functions into a single callable.
//
// Accepts either 0 or 1 teardown functions. Panics if more than one is passed.
func normalizeTeardown(teardown []func()) func() {
	switch len(teardown) {
	case 1:
		return teardown[0]
	case 0:
		return func() {}
	default:
		panic("normalizeTeardown: only one or zero teardown functions allowed")
	}
}
