package binding

import (
	"context"
	"errors"
	"fmt"

	"github.com/on-the-ground/effect_fluent_go/effects"
	effectmodel "github.com/on-the-ground/effect_fluent_go/effects/internal/model"
)

var ErrKeyNotFound = errors.New("key not found")

// Payload is the key looked up by the Binding effect.
type Payload string

func (bp Payload) PartitionKey() string {
	return string(bp)
}

// WithEffectHandler registers a resumable, partitionable handler serving lookups from bindingMap.
//
//   - Keys missing locally are delegated to a handler of an upper scope, if any.
//   - Returns a context with the handler registered, and a teardown closing it.
//   - After an early teardown, use the context the teardown returns.
func WithEffectHandler(
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	bindingMap map[string]any,
) (context.Context, func() context.Context) {
	bindingHandler := &bindingHandler{
		bindingMap: normalizeBindingMap(bindingMap),
	}
	return effects.WithResumablePartitionableEffectHandler[Payload, any](
		ctx,
		config,
		effectmodel.EffectBinding,
		bindingHandler.handle,
	)
}

// Effect looks key up through the Binding handler in ctx.
//
// Returns ErrKeyNotFound if neither this scope nor an upper one binds key,
// and effects.ErrNoEffectHandler if no Binding handler is registered.
func Effect(ctx context.Context, key string) (val any, err error) {
	resultCh, err := effects.PerformResumableEffect[Payload, any](ctx, effectmodel.EffectBinding, Payload(key))
	if err != nil {
		return nil, err
	}
	select {
	case res, ok := <-resultCh:
		if ok {
			return res.Value, res.Err
		}
	case <-ctx.Done():
	}
	if err = ctx.Err(); err == nil {
		err = fmt.Errorf("binding handler closed while looking up %q", key)
	}
	return nil, err
}

func normalizeBindingMap(bm map[string]any) map[string]any {
	if bm == nil {
		bm = make(map[string]any)
	}
	return bm
}

type bindingHandler struct {
	bindingMap map[string]any
}

// handle looks the key up locally, then in the upper scope.
// ctx here is the one the handler was registered with, so the lookup
// cannot reach this handler again.
func (bh bindingHandler) handle(ctx context.Context, payload Payload) (any, error) {
	key := string(payload)
	if v, ok := bh.bindingMap[key]; ok {
		return v, nil
	}
	if !effects.HasEffectHandler(ctx, effectmodel.EffectBinding) {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return Effect(ctx, key)
}
