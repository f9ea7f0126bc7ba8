package task_test

import (
	"context"
	"testing"
	"time"

	"github.com/on-the-ground/effect_fluent_go/effects"
	"github.com/on-the-ground/effect_fluent_go/effects/log"
	"github.com/on-the-ground/effect_fluent_go/effects/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskEffect_Success(t *testing.T) {
	ctx, endOfLogHandler := log.WithTestEffectHandler(context.Background())
	defer endOfLogHandler()

	ctx, endOfTaskHandler := task.WithEffectHandler(ctx, 1)
	defer endOfTaskHandler()

	ch, err := task.Effect(ctx, func(ctx context.Context) (any, error) {
		time.Sleep(50 * time.Millisecond)
		return "ok", nil
	})
	require.NoError(t, err)

	select {
	case res := <-ch:
		require.NoError(t, res.Err)
		assert.Equal(t, "ok", res.Value)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for task result")
	}
}

func TestTaskEffect_Cancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	ctx, endOfTaskHandler := task.WithEffectHandler(ctx, 1)
	defer endOfTaskHandler()

	ch, err := task.Effect(ctx, func(ctx context.Context) (any, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
			return "too late", nil
		}
	})
	require.NoError(t, err)

	select {
	case res, ok := <-ch:
		if ok {
			assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for task result")
	}
}

func TestTaskEffect_Sequential(t *testing.T) {
	ctx, endOfTaskHandler := task.WithEffectHandler(context.Background(), 10)
	defer endOfTaskHandler()

	results := make([]<-chan task.Result, 0, 5)
	for i := range 5 {
		ch, err := task.Effect(ctx, func(context.Context) (any, error) {
			time.Sleep(time.Duration(5+i*5) * time.Millisecond)
			return i * 2, nil
		})
		require.NoError(t, err)
		results = append(results, ch)
	}

	for i, ch := range results {
		select {
		case res := <-ch:
			require.NoError(t, res.Err)
			assert.Equal(t, i*2, res.Value)
		case <-time.After(time.Second):
			t.Fatalf("timeout waiting for task %d", i)
		}
	}
}

func TestTaskEffect_NoHandler(t *testing.T) {
	_, err := task.Effect(context.Background(), func(context.Context) (any, error) { return nil, nil })
	assert.ErrorIs(t, err, effects.ErrNoEffectHandler)
}

func TestPromise_RunsOnTaskHandler(t *testing.T) {
	ctx, endOfTaskHandler := task.WithEffectHandler(context.Background(), 1)
	defer endOfTaskHandler()

	v, err := effects.Run(ctx, effects.Promise(func(context.Context) int { return 42 }))
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}
