package domain

import (
	"context"
	"time"
)

// StageEvent describes entry into or exit from a pipeline stage.
type StageEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Node      string    `json:"node"`
	// RetryCount is the retry counter at the time of the event.
	RetryCount int `json:"retry_count"`
	// Duration is only set on stage-leave events.
	Duration time.Duration `json:"duration,omitempty"`
}

// LifecycleHooks defines optional callbacks for engine observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnStageEnter func(context.Context, *StageEvent)
	OnStageLeave func(context.Context, *StageEvent)
}
