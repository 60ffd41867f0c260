// Package pipeline assembles the mental-health assistant graph: six
// capability-backed stages, the retry controller, and the fallback terminal,
// wired by one conditional edge after the ethical review.
package pipeline

import (
	"github.com/nithin218/mindmate/internal/runtime"
	"github.com/nithin218/mindmate/pkg/capability"
	"github.com/nithin218/mindmate/pkg/domain"
)

// Option configures the graph assembly.
type Option func(*config)

type config struct {
	maxRetries int
}

// WithMaxRetries overrides the retry bound (default domain.MaxRetries).
func WithMaxRetries(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.maxRetries = n
		}
	}
}

// New builds the fixed stage graph over the given capability client.
//
//	rewrite -> emotion_analysis -> cbt_agent -> resource_schedule -> ethical_guardian
//	ethical_guardian --pass--> writer (terminal)
//	ethical_guardian --fail--> increment_retry -> cbt_agent
//	ethical_guardian --exhausted--> max_retries_handler (terminal)
func New(client capability.Client, opts ...Option) *runtime.Graph {
	cfg := config{maxRetries: domain.MaxRetries}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &runtime.Graph{
		Entry: domain.NodeRewrite,
		Nodes: map[string]domain.Stage{
			domain.NodeRewrite:          rewriteStage(client),
			domain.NodeEmotionAnalysis:  emotionStage(client),
			domain.NodeCBTAgent:         cbtStage(client),
			domain.NodeResourceSchedule: scheduleStage(client),
			domain.NodeEthicalGuardian:  ethicsStage(client),
			domain.NodeWriter:           writerStage(client),
			domain.NodeIncrementRetry:   incrementRetryStage(),
			domain.NodeMaxRetries:       fallbackStage(),
		},
		Edges: map[string]string{
			domain.NodeRewrite:          domain.NodeEmotionAnalysis,
			domain.NodeEmotionAnalysis:  domain.NodeCBTAgent,
			domain.NodeCBTAgent:         domain.NodeResourceSchedule,
			domain.NodeResourceSchedule: domain.NodeEthicalGuardian,
			// The only cycle in the graph.
			domain.NodeIncrementRetry: domain.NodeCBTAgent,
		},
		Conditional: map[string]runtime.Conditional{
			domain.NodeEthicalGuardian: {
				Route: supervisorRouter(cfg.maxRetries),
				Targets: map[runtime.Verdict]string{
					runtime.VerdictPass:      domain.NodeWriter,
					runtime.VerdictFail:      domain.NodeIncrementRetry,
					runtime.VerdictExhausted: domain.NodeMaxRetries,
				},
			},
		},
	}
}

// supervisorRouter evaluates the state after the ethical review. The retry
// ceiling is checked here, not in the retry controller, so the controller
// stays a pure increment.
func supervisorRouter(maxRetries int) runtime.Router {
	return func(state *domain.State) runtime.Verdict {
		if state.EthicalCheck {
			return runtime.VerdictPass
		}
		if state.RetryCount >= maxRetries {
			return runtime.VerdictExhausted
		}
		return runtime.VerdictFail
	}
}
