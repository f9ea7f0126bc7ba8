package effect

import (
	"context"
	"errors"
	"fmt"

	"github.com/on-the-ground/effect_fluent_go/effects"
	"github.com/on-the-ground/effect_fluent_go/effects/binding"
	"github.com/on-the-ground/effect_fluent_go/effects/log"
)

var ErrUnregisteredService = errors.New("service is not registered")

// Service reads the requirement bound to key by the binding handler in the
// running context. A missing or mistyped binding is a defect wrapping
// ErrUnregisteredService.
func Service[S any](key string) Effect[S, Never] {
	return Of(effects.FlatMap(effects.Context(), func(ctx context.Context) effects.Effect[S, Never] {
		s, err := binding.GetFromBindingEffect[S](ctx, key)
		if err != nil {
			return effects.Die[S, Never](fmt.Errorf("%w: %q: %w", ErrUnregisteredService, key, err))
		}
		return effects.Succeed[S, Never](s)
	}))
}

// Log emits a structured entry through the log handler in the running
// context. Without a handler it does nothing. A handler that is registered
// but can no longer take entries, such as one already torn down, is a defect.
func Log[E any](level log.LogLevel, msg string, fields map[string]any) Effect[struct{}, E] {
	return Of(effects.FlatMap(effects.Widen[context.Context, E](effects.Context()), func(ctx context.Context) effects.Effect[struct{}, E] {
		if !log.HasHandler(ctx) {
			return effects.Void[E]()
		}
		if err := log.Effect(ctx, level, msg, fields); err != nil {
			return effects.Die[struct{}, E](fmt.Errorf("log %q: %w", msg, err))
		}
		return effects.Void[E]()
	}))
}
