package handlers_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/on-the-ground/effect_fluent_go/effects/internal/handlers"
	effectmodel "github.com/on-the-ground/effect_fluent_go/effects/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFireAndForgetEffectHandler_BasicExecution(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan string, 1)
	handler := handlers.NewFireAndForgetEffectHandler(
		ctx,
		effectmodel.NewEffectScopeConfig(10, 1),
		func(_ context.Context, msg string) {
			received <- msg
		},
		func() {},
	)
	defer handler.Close()

	require.NoError(t, handler.FireAndForgetEffect(ctx, "hello"))

	select {
	case msg := <-received:
		assert.Equal(t, "hello", msg)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for handler")
	}
}

func TestFireAndForgetEffectHandler_CancelContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	time.Sleep(100 * time.Millisecond)

	var called atomic.Bool
	handler := handlers.NewFireAndForgetEffectHandler(
		ctx,
		effectmodel.NewEffectScopeConfig(10, 1),
		func(context.Context, string) {
			called.Store(true)
		},
		func() {},
	)
	defer handler.Close()

	err := handler.FireAndForgetEffect(ctx, "should-not-send")
	assert.Error(t, err)

	time.Sleep(50 * time.Millisecond)
	assert.False(t, called.Load(), "handler should not have been called")
}

func TestFireAndForgetEffectHandler_TeardownRunsOnce(t *testing.T) {
	var teardowns atomic.Int32
	handler := handlers.NewFireAndForgetEffectHandler(
		context.Background(),
		effectmodel.NewEffectScopeConfig(1, 1),
		func(context.Context, int) {},
		func() { teardowns.Add(1) },
	)

	handler.Close()
	handler.Close()
	assert.EqualValues(t, 1, teardowns.Load())
}

func TestFireAndForgetEffectHandler_SendAfterCloseIsRejected(t *testing.T) {
	handler := handlers.NewFireAndForgetEffectHandler(
		context.Background(),
		effectmodel.NewEffectScopeConfig(1, 1),
		func(context.Context, int) {},
		func() {},
	)
	handler.Close()

	assert.NotPanics(t, func() {
		err := handler.FireAndForgetEffect(context.Background(), 1)
		assert.ErrorIs(t, err, handlers.ErrHandlerClosed)
	})
}

func TestFireAndForgetEffectHandler_SendRacingClose(t *testing.T) {
	for range 50 {
		handler := handlers.NewFireAndForgetEffectHandler(
			context.Background(),
			effectmodel.NewEffectScopeConfig(4, 1),
			func(context.Context, int) {},
			func() {},
		)
		var wg sync.WaitGroup
		for i := range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := handler.FireAndForgetEffect(context.Background(), i)
				if err != nil {
					assert.ErrorIs(t, err, handlers.ErrHandlerClosed)
				}
			}()
		}
		handler.Close()
		wg.Wait()
	}
}
