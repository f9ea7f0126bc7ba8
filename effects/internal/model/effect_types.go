package effectmodel

import (
	"context"
	"errors"
)

type EffectEnum string

const (
	EffectLog     EffectEnum = "effect_fluent_go_effect_enum_log"
	EffectBinding EffectEnum = "effect_fluent_go_effect_enum_binding"
	EffectTask    EffectEnum = "effect_fluent_go_effect_enum_task"
)

var ErrNoEffectHandler = errors.New("no effect handler registered for this effect")

type EffectScopeConfig struct {
	BufferSize int // default: 1
	NumWorkers int // default: 1
}

func NewEffectScopeConfig(bufferSize int, numWorkers int) EffectScopeConfig {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return EffectScopeConfig{
		BufferSize: bufferSize,
		NumWorkers: numWorkers,
	}
}

type Partitionable interface {
	PartitionKey() string
}

// TaskPayload is a blocking computation run by the task handler.
// It lives here so the runtime can reach a registered task handler
// without importing the task package.
type TaskPayload func(context.Context) (any, error)

func (TaskPayload) PartitionKey() string {
	return "unpartitioned"
}
