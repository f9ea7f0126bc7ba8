package effects_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/on-the-ground/effect_fluent_go/effects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsync_ResumesFromAnotherGoroutine(t *testing.T) {
	eff := effects.Async(func(ctx context.Context, resume func(effects.Effect[int, string])) {
		go func() {
			time.Sleep(10 * time.Millisecond)
			resume(effects.Succeed[int, string](42))
		}()
	})

	v, err := effects.Run(context.Background(), eff)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestAsync_OnlyFirstResumeCounts(t *testing.T) {
	eff := effects.Async(func(_ context.Context, resume func(effects.Effect[int, string])) {
		resume(effects.Succeed[int, string](1))
		resume(effects.Fail[int]("ignored"))
	})

	v, err := effects.Run(context.Background(), eff)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestAsync_RegistrationSeesRuntimeContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "runtime")

	var seen any
	eff := effects.Async(func(ctx context.Context, resume func(effects.Effect[int, string])) {
		seen = ctx.Value(key{})
		resume(effects.Succeed[int, string](0))
	})
	_, err := effects.Run(ctx, eff)
	require.NoError(t, err)
	assert.Equal(t, "runtime", seen)
}

func TestAsync_InterruptedByCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	registered := make(chan context.Context, 1)
	eff := effects.Async(func(ctx context.Context, resume func(effects.Effect[int, string])) {
		registered <- ctx
	})

	done := effects.RunPromise(ctx, eff)
	signal := <-registered
	cancel()

	select {
	case exit := <-done:
		c, failed := exit.Cause()
		require.True(t, failed)
		assert.True(t, c.IsInterrupted())
		assert.Error(t, signal.Err())
	case <-time.After(time.Second):
		t.Fatal("async effect was not interrupted")
	}
}

func TestAsyncEffect_FailingRegistration(t *testing.T) {
	eff := effects.AsyncEffect(func(context.Context, func(effects.Effect[int, string])) effects.Effect[struct{}, string] {
		return effects.Fail[struct{}]("cannot register")
	})
	exit := effects.RunExit(context.Background(), eff)
	assert.Equal(t, "cannot register", failure(t, exit))
}

func TestRunSync_RejectsAsync(t *testing.T) {
	eff := effects.Async(func(_ context.Context, resume func(effects.Effect[int, string])) {
		resume(effects.Succeed[int, string](1))
	})
	_, err := effects.RunSync(eff)
	assert.ErrorIs(t, err, effects.ErrAsyncInSyncRun)

	_, err = effects.RunSync(effects.Promise(func(context.Context) int { return 1 }))
	assert.ErrorIs(t, err, effects.ErrAsyncInSyncRun)
}

func TestPromise(t *testing.T) {
	v, err := effects.Run(context.Background(), effects.Promise(func(context.Context) string { return "done" }))
	require.NoError(t, err)
	assert.Equal(t, "done", v)

	exit := effects.RunExit(context.Background(), effects.Promise(func(context.Context) string { panic("rejected") }))
	c, _ := exit.Cause()
	assert.True(t, c.IsDie())
}

func TestTryPromise(t *testing.T) {
	boom := errors.New("boom")
	exit := effects.RunExit(context.Background(), effects.TryPromise(func(context.Context) (int, error) {
		return 0, boom
	}))
	assert.ErrorIs(t, failure(t, exit), boom)

	exit2 := effects.RunExit(context.Background(), effects.TryPromiseCatch(
		func(context.Context) (int, error) { return 0, boom },
		func(err error) string { return "mapped " + err.Error() },
	))
	assert.Equal(t, "mapped boom", failure(t, exit2))
}

func TestRunExit_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exit := effects.RunExit(ctx, effects.Sync[int, string](func() int { return 1 }))
	c, failed := exit.Cause()
	require.True(t, failed)
	assert.True(t, c.IsInterrupted())
}

func TestContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, 5)
	got, err := effects.Run(ctx, effects.Map(effects.Context(), func(ctx context.Context) any {
		return ctx.Value(key{})
	}))
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}
