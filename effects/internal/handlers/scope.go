package handlers

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// effectScope is the lifetime of one registered handler. Close may be called
// from any goroutine, any number of times; only the first call tears down.
// Performs racing with Close fail with ErrHandlerClosed instead of panicking.
type effectScope[T any] struct {
	EffectId   string
	dispatcher WorkerDispatcher[T]
	closeFn    func()
	closeOnce  sync.Once
}

func (es *effectScope[T]) Close() {
	es.closeOnce.Do(func() {
		es.closeFn()
		zap.L().Debug("effect scope closed", zap.String("effectId", es.EffectId))
	})
}

// newEffectScope leaves dispatcher unset so the caller can build one that
// logs against the scope's EffectId.
func newEffectScope[T any](teardown func()) *effectScope[T] {
	return &effectScope[T]{
		EffectId: uuid.New().String(),
		closeFn:  teardown,
	}
}
