package binding_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/on-the-ground/effect_fluent_go/effects"
	"github.com/on-the-ground/effect_fluent_go/effects/binding"
	effectmodel "github.com/on-the-ground/effect_fluent_go/effects/internal/model"
	"github.com/on-the-ground/effect_fluent_go/effects/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingEffect_BasicLookup(t *testing.T) {
	ctx, endOfLogHandler := log.WithTestEffectHandler(context.Background())
	defer endOfLogHandler()

	ctx, closeFn := binding.WithEffectHandler(ctx, effectmodel.NewEffectScopeConfig(1, 1), map[string]any{
		"foo": 123,
	})
	defer closeFn()

	v, err := binding.Effect(ctx, "foo")
	require.NoError(t, err)
	assert.Equal(t, 123, v)
}

func TestBindingEffect_KeyNotFound(t *testing.T) {
	ctx, closeFn := binding.WithEffectHandler(context.Background(), effectmodel.NewEffectScopeConfig(1, 1), map[string]any{
		"foo": 123,
	})
	defer closeFn()

	_, err := binding.Effect(ctx, "bar")
	assert.ErrorIs(t, err, binding.ErrKeyNotFound)
}

func TestBindingEffect_NoHandler(t *testing.T) {
	_, err := binding.Effect(context.Background(), "foo")
	assert.ErrorIs(t, err, effects.ErrNoEffectHandler)
}

func TestBindingEffect_DelegatesToUpperScope(t *testing.T) {
	upperCtx, upperClose := binding.WithEffectHandler(context.Background(), effectmodel.NewEffectScopeConfig(1, 1), map[string]any{
		"upper": "delegated",
	})
	defer upperClose()

	lowerCtx, lowerClose := binding.WithEffectHandler(upperCtx, effectmodel.NewEffectScopeConfig(1, 1), nil)
	defer lowerClose()

	v, err := binding.Effect(lowerCtx, "upper")
	require.NoError(t, err)
	assert.Equal(t, "delegated", v)

	_, err = binding.Effect(lowerCtx, "nowhere")
	assert.ErrorIs(t, err, binding.ErrKeyNotFound)
}

func TestBindingEffect_TypedLookup(t *testing.T) {
	ctx, closeFn := binding.WithEffectHandler(context.Background(), effectmodel.NewEffectScopeConfig(1, 1), map[string]any{
		"port": 8080,
	})
	defer closeFn()

	port, err := binding.GetFromBindingEffect[int](ctx, "port")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)

	_, err = binding.GetFromBindingEffect[string](ctx, "port")
	assert.Error(t, err)

	assert.Panics(t, func() { binding.MustGetFromBindingEffect[int](ctx, "missing") })
}

func TestBindingEffect_ConcurrentPartitionedAccess(t *testing.T) {
	bindings := make(map[string]any)
	for i := range 10 {
		bindings[fmt.Sprintf("key%d", i)] = fmt.Sprintf("value%d", i)
	}

	ctx, cancel := binding.WithEffectHandler(context.Background(), effectmodel.NewEffectScopeConfig(10, 10), bindings)
	defer cancel()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make(map[string]int)
	)

	numRequests := 1000
	wg.Add(numRequests)
	for i := range numRequests {
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key%d", i%len(bindings))

			v, err := binding.Effect(ctx, key)
			mu.Lock()
			defer mu.Unlock()
			if assert.NoError(t, err) {
				assert.Equal(t, fmt.Sprintf("value%d", i%len(bindings)), v)
				results[key]++
			}
		}(i)
	}
	wg.Wait()

	for i := range 10 {
		assert.Positive(t, results[fmt.Sprintf("key%d", i)])
	}
}
