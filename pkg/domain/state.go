package domain

// TraceEntry is one line of the append-only audit log. Role identifies the
// stage that produced it; Content is the raw capability output.
type TraceEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// State represents one snapshot of a pipeline execution.
//
// Stages never mutate a snapshot in place: each stage clones the incoming
// state, sets the fields it owns, appends its trace entry and returns the
// clone. Earlier snapshots therefore stay valid for replay and debugging.
type State struct {
	// UserQuery is set once at entry and never rewritten.
	UserQuery string `json:"user_query"`

	// RewrittenQuery is the normalized form of UserQuery.
	RewrittenQuery string `json:"rewritten_query"`

	// Emotion is the primary emotion label (e.g. "anxiety", "sadness").
	Emotion string `json:"emotion"`

	// TherapeuticResponse is regenerated on every retry attempt.
	TherapeuticResponse string `json:"therapeutic_response"`

	// ScheduleRecommendation is recomputed alongside each therapeutic response.
	ScheduleRecommendation string `json:"schedule_recommendation"`

	// EthicalCheck gates the routing after the ethical review. Defaults to true.
	EthicalCheck bool `json:"ethical_check"`

	// EthicalFeedback carries the reviewer's diagnostic text.
	EthicalFeedback string `json:"ethical_feedback"`

	// FinalOutput is the terminal result, set by the writer or the fallback.
	FinalOutput string `json:"final_output"`

	// Trace records every stage invocation in execution order. Never pruned.
	Trace []TraceEntry `json:"trace"`

	// RetryCount is monotonically non-decreasing; only the retry controller
	// increments it.
	RetryCount int `json:"retry_count"`
}

// NewState creates the entry state for a query: all fields at their defaults
// except the query itself.
func NewState(userQuery string) *State {
	return &State{
		UserQuery:    userQuery,
		EthicalCheck: true,
		Trace:        []TraceEntry{},
	}
}

// Clone returns a copy of the state with its own trace slice, so appends on
// the copy never leak into the original snapshot.
func (s *State) Clone() *State {
	next := *s
	next.Trace = make([]TraceEntry, len(s.Trace), len(s.Trace)+1)
	copy(next.Trace, s.Trace)
	return &next
}

// AppendTrace records a stage invocation on this snapshot.
func (s *State) AppendTrace(role, content string) {
	s.Trace = append(s.Trace, TraceEntry{Role: role, Content: content})
}
