package handlers

import (
	"context"
	"errors"
	"sync"

	effectmodel "github.com/on-the-ground/effect_fluent_go/effects/internal/model"
)

var ErrHandlerClosed = errors.New("effect handler is closed")

// WorkerDispatcher hands effect messages to the workers serving a handler scope.
type WorkerDispatcher[T any] interface {
	// Dispatch enqueues msg. It returns ErrHandlerClosed once the scope has
	// shut down, or ctx's error if the performer gives up first.
	Dispatch(ctx context.Context, msg T) error
}

// lane is one worker and its queue. The queue is never closed: senders are
// fenced off by closed, and whatever is still buffered at shutdown goes to drop.
type lane[T any] struct {
	mu     sync.RWMutex
	closed bool
	done   <-chan struct{}
	ch     chan T
}

func startLane[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
	drop func(T),
	ready func(),
) *lane[T] {
	l := &lane[T]{done: ctx.Done(), ch: make(chan T, bufferSize)}
	go func() {
		ready()
		for {
			select {
			case <-ctx.Done():
				l.shutdown(drop)
				return
			case msg := <-l.ch:
				if ctx.Err() != nil {
					drop(msg)
					l.shutdown(drop)
					return
				}
				handleFn(ctx, msg)
			}
		}
	}()
	return l
}

func (l *lane[T]) send(ctx context.Context, msg T) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return ErrHandlerClosed
	}
	select {
	case <-l.done:
		return ErrHandlerClosed
	default:
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		return ErrHandlerClosed
	case l.ch <- msg:
		return nil
	}
}

// shutdown waits out senders in flight, then drops what they left behind.
func (l *lane[T]) shutdown(drop func(T)) {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
	for {
		select {
		case msg := <-l.ch:
			drop(msg)
		default:
			return
		}
	}
}

func dropNothing[T any](T) {}

type singleQueue[T any] struct {
	lane *lane[T]
}

func (q singleQueue[T]) Dispatch(ctx context.Context, msg T) error {
	return q.lane.send(ctx, msg)
}

// NewSingleQueue starts one worker serving messages in arrival order until ctx
// is done. Messages still queued then are passed to drop, which may be nil.
func NewSingleQueue[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
	drop func(T),
) WorkerDispatcher[T] {
	if drop == nil {
		drop = dropNothing[T]
	}
	ready := make(chan struct{})
	l := startLane(ctx, bufferSize, handleFn, drop, func() { close(ready) })
	<-ready
	return singleQueue[T]{lane: l}
}

type partitionedQueue[T effectmodel.Partitionable] struct {
	lanes []*lane[T]
}

func (pq partitionedQueue[T]) Dispatch(ctx context.Context, msg T) error {
	return pq.lanes[getIndexByHash(msg, len(pq.lanes))].send(ctx, msg)
}

// NewPartitionedQueue starts numWorkers workers. Messages sharing a
// PartitionKey always land on the same worker, so they are handled in order.
func NewPartitionedQueue[T effectmodel.Partitionable](
	ctx context.Context,
	numWorkers, bufferSize int,
	handleFn func(context.Context, T),
	drop func(T),
) WorkerDispatcher[T] {
	if drop == nil {
		drop = dropNothing[T]
	}
	lanes := make([]*lane[T], numWorkers)
	ready := sync.WaitGroup{}
	for i := range numWorkers {
		ready.Add(1)
		lanes[i] = startLane(ctx, bufferSize, handleFn, drop, ready.Done)
	}
	ready.Wait()
	return partitionedQueue[T]{lanes: lanes}
}
