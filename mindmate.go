package mindmate

import (
	"context"
	"log/slog"

	"github.com/nithin218/mindmate/internal/pipeline"
	"github.com/nithin218/mindmate/internal/runtime"
	"github.com/nithin218/mindmate/pkg/capability"
	"github.com/nithin218/mindmate/pkg/domain"
)

// Assistant is the high-level entry point for the library. It wraps the
// internal graph runtime and exposes a single question-in, state-out API.
type Assistant struct {
	engine *runtime.Engine
	logger *slog.Logger
}

// Option defines a functional option for configuring the Assistant.
type Option func(*settings)

type settings struct {
	logger       *slog.Logger
	hooks        domain.LifecycleHooks
	pipelineOpts []pipeline.Option
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks fired around each stage.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *settings) {
		s.hooks = hooks
	}
}

// WithMaxRetries overrides the ethical-rejection retry bound.
func WithMaxRetries(n int) Option {
	return func(s *settings) {
		s.pipelineOpts = append(s.pipelineOpts, pipeline.WithMaxRetries(n))
	}
}

// New builds an Assistant over the given capability client.
func New(client capability.Client, opts ...Option) (*Assistant, error) {
	var cfg settings
	for _, opt := range opts {
		opt(&cfg)
	}

	engineOpts := []runtime.EngineOption{
		runtime.WithLifecycleHooks(cfg.hooks),
	}
	if cfg.logger != nil {
		engineOpts = append(engineOpts, runtime.WithLogger(cfg.logger))
	}

	engine, err := runtime.NewEngine(pipeline.New(client, cfg.pipelineOpts...), engineOpts...)
	if err != nil {
		return nil, err
	}

	return &Assistant{engine: engine, logger: cfg.logger}, nil
}

// Respond runs one user question through the full pipeline and returns the
// terminal state. The answer is in State.FinalOutput; the per-stage audit
// trail is in State.Trace.
func (a *Assistant) Respond(ctx context.Context, question string) (*domain.State, error) {
	return a.engine.Run(ctx, domain.NewState(question))
}
