package task

import (
	"context"
	"errors"

	"github.com/on-the-ground/effect_fluent_go/effects"
	"github.com/on-the-ground/effect_fluent_go/effects/internal/handlers"
	effectmodel "github.com/on-the-ground/effect_fluent_go/effects/internal/model"
)

// Payload is a blocking computation handed to the task handler.
type Payload = effectmodel.TaskPayload

type Result = handlers.ResumableResult[any]

var ErrTaskAbandoned = errors.New("task result channel closed")

// WithEffectHandler registers the task handler. Promise-style effects
// started under the returned context run their work on it.
func WithEffectHandler(
	ctx context.Context,
	bufferSize int,
) (context.Context, func() context.Context) {
	return effects.WithResumableEffectHandler(
		ctx,
		bufferSize,
		effectmodel.EffectTask,
		func(ctx context.Context, fn Payload) (any, error) {
			done := make(chan Result, 1)
			go func() {
				select {
				case <-ctx.Done():
					close(done)
					return
				default:
				}
				done <- handlers.ResumableResultFrom(fn(ctx))
			}()

			select {
			case res, ok := <-done:
				if !ok {
					return nil, ErrTaskAbandoned
				}
				return res.Value, res.Err
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		},
	)
}

// Effect hands payload to the task handler in ctx and returns the channel
// its result arrives on.
func Effect(ctx context.Context, payload Payload) (<-chan Result, error) {
	return effects.PerformResumableEffect[Payload, any](ctx, effectmodel.EffectTask, payload)
}
