// Package runtime walks the fixed stage graph for one query at a time.
//
// Execution is strictly sequential: a stage's state update is committed
// before the next transition is evaluated, and at most one capability call
// is in flight per execution. Distinct executions share nothing and may run
// concurrently.
package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/nithin218/mindmate/pkg/domain"
)

// Engine drives a Graph from its entry node to a terminal node.
type Engine struct {
	graph  *Graph
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability callbacks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a structured logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an executor for the given graph.
func NewEngine(graph *Graph, opts ...EngineOption) (*Engine, error) {
	if err := graph.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		graph:  graph,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Run executes the graph over the initial state and returns the terminal
// state. The only error it returns is a failed capability call (wrapped as
// domain.CapabilityError by the stage) or a context cancellation; every
// other outcome resolves to a terminal state with FinalOutput set.
func (e *Engine) Run(ctx context.Context, initial *domain.State) (*domain.State, error) {
	state := initial
	current := e.graph.Entry

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		stage, ok := e.graph.Nodes[current]
		if !ok {
			return nil, fmt.Errorf("runtime: unknown node %q", current)
		}

		e.emitEnter(ctx, current, state)
		e.logger.Debug("stage enter", "node", current, "retry_count", state.RetryCount)

		started := time.Now()
		next, err := stage(ctx, state)
		if err != nil {
			e.logger.Error("stage failed", "node", current, "err", err)
			return nil, err
		}
		state = next

		e.emitLeave(ctx, current, state, time.Since(started))
		e.logger.Debug("stage leave", "node", current, "duration", time.Since(started))

		if cond, ok := e.graph.Conditional[current]; ok {
			verdict := cond.Route(state)
			target, ok := cond.Targets[verdict]
			if !ok {
				return nil, fmt.Errorf("runtime: node %q has no target for verdict %q", current, verdict)
			}
			e.logger.Info("conditional route", "node", current, "verdict", verdict, "target", target)
			current = target
			continue
		}

		target, ok := e.graph.Edges[current]
		if !ok {
			// Terminal node.
			return state, nil
		}
		current = target
	}
}

func (e *Engine) emitEnter(ctx context.Context, node string, state *domain.State) {
	if e.hooks.OnStageEnter == nil {
		return
	}
	e.hooks.OnStageEnter(ctx, &domain.StageEvent{
		Timestamp:  time.Now(),
		Node:       node,
		RetryCount: state.RetryCount,
	})
}

func (e *Engine) emitLeave(ctx context.Context, node string, state *domain.State, elapsed time.Duration) {
	if e.hooks.OnStageLeave == nil {
		return
	}
	e.hooks.OnStageLeave(ctx, &domain.StageEvent{
		Timestamp:  time.Now(),
		Node:       node,
		RetryCount: state.RetryCount,
		Duration:   elapsed,
	})
}
