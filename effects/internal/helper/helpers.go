package helper

import (
	"context"
	"fmt"

	effectmodel "github.com/on-the-ground/effect_fluent_go/effects/internal/model"
	sharedHelper "github.com/on-the-ground/effect_fluent_go/shared/helper"
)

// Handler returns the handler registered under enum in ctx, typed as H.
//
// The handler's type carries the payload and result types it was registered
// with, so a perform whose payload type differs from the registration fails
// here with ErrUnexpectedType rather than reaching the handler.
func Handler[H any](ctx context.Context, enum effectmodel.EffectEnum) (H, error) {
	raw := ctx.Value(enum)
	if raw == nil {
		var zero H
		return zero, fmt.Errorf("%w: %v", effectmodel.ErrNoEffectHandler, enum)
	}
	h, err := sharedHelper.Assert[H](raw)
	if err != nil {
		return h, fmt.Errorf("handler for %v: %w", enum, err)
	}
	return h, nil
}

// HasHandler reports whether anything is registered under enum in ctx.
func HasHandler(ctx context.Context, enum effectmodel.EffectEnum) bool {
	return ctx.Value(enum) != nil
}
