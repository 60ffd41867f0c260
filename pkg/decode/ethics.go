package decode

import (
	"encoding/json"
	"strings"
)

// EthicsVerdict is the structured payload expected from the ethical guardian.
type EthicsVerdict struct {
	Ethical  bool     `mapstructure:"ethical"`
	Feedback string   `mapstructure:"feedback"`
	Concerns []string `mapstructure:"concerns"`
}

// Fallback feedback strings for the heuristic tier.
const (
	feedbackApproved = "Ethical review completed"
	feedbackFlagged  = "Ethical concerns identified in response"
)

// ethicsFlagWords mark an unparseable review as a rejection.
var ethicsFlagWords = []string{"harmful", "inappropriate", "unethical", "dangerous"}

// Ethics resolves the review outcome from raw capability output.
//
// Strict tier: a JSON object with "ethical" and "feedback" fields is used
// verbatim (a missing "ethical" field defaults to approval). On parse
// failure, the review is approved unless the raw text contains one of the
// flag words.
func Ethics(raw string) (ethical bool, feedback string) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err == nil {
		verdict := EthicsVerdict{Ethical: true}
		if err := decodeLoose(payload, &verdict); err == nil {
			return verdict.Ethical, verdict.Feedback
		}
	}

	lower := strings.ToLower(raw)
	for _, word := range ethicsFlagWords {
		if strings.Contains(lower, word) {
			return false, feedbackFlagged
		}
	}
	return true, feedbackApproved
}
