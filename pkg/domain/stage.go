package domain

import "context"

// Stage is a single unit of the pipeline: it maps a state snapshot to a new
// snapshot, usually through exactly one external capability call.
//
// A stage must only set the fields it owns and append at most one trace
// entry; everything else on the returned state is carried over verbatim.
type Stage func(ctx context.Context, state *State) (*State, error)

// Node identifiers of the fixed pipeline graph.
const (
	NodeRewrite          = "rewrite"
	NodeEmotionAnalysis  = "emotion_analysis"
	NodeCBTAgent         = "cbt_agent"
	NodeResourceSchedule = "resource_schedule"
	NodeEthicalGuardian  = "ethical_guardian"
	NodeWriter           = "writer"
	NodeIncrementRetry   = "increment_retry"
	NodeMaxRetries       = "max_retries_handler"
)

// Trace roles, as recorded by each stage. They differ from node IDs where the
// stage persona differs from its position in the graph.
const (
	RoleRewrite          = "rewrite"
	RoleEmotionAnalyst   = "emotion_analyst"
	RoleCBTAgent         = "cbt_agent"
	RoleResourceSchedule = "resource_schedule"
	RoleEthicalGuardian  = "ethical_guardian"
	RoleWriter           = "writer"
)

// MaxRetries bounds the ethical-rejection loop: the therapeutic response is
// generated at most MaxRetries+1 times before the fallback terminal fires.
const MaxRetries = 3

// FallbackMessage is the deterministic terminal output once retries are
// exhausted. It is served verbatim, regardless of prior pipeline content.
const FallbackMessage = "I apologize, but I'm unable to provide a suitable response at this time. Please consider speaking with a qualified mental health professional for personalized support."
