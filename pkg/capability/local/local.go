// Package local provides a deterministic, offline implementation of the
// capability port. It answers every stage from fixed keyword tables and
// templates, which makes it suitable for demos without an API key and for
// exercising the full pipeline in tests.
package local

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nithin218/mindmate/pkg/capability"
	"github.com/nithin218/mindmate/pkg/domain"
)

// Client implements capability.Client without any network access.
type Client struct{}

// New creates a deterministic capability client.
func New() *Client {
	return &Client{}
}

// Complete dispatches on the calling stage.
func (c *Client) Complete(_ context.Context, req capability.Request) (string, error) {
	switch req.Stage {
	case domain.NodeRewrite:
		return rewrite(req.User), nil
	case domain.NodeEmotionAnalysis:
		return analyzeEmotion(req.User)
	case domain.NodeCBTAgent:
		return therapize(req.User), nil
	case domain.NodeResourceSchedule:
		return schedule(req.User)
	case domain.NodeEthicalGuardian:
		return review(req.User)
	case domain.NodeWriter:
		return compose(req.User), nil
	default:
		return "", fmt.Errorf("local capability: unknown stage %q", req.Stage)
	}
}

// rewrite normalizes whitespace and trims filler; a stand-in for the remote
// rewrite persona.
func rewrite(query string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(query)), " ")
}

// analyzeEmotion scores the keyword table and emits the structured payload
// the emotion decoder expects on its strict tier.
func analyzeEmotion(text string) (string, error) {
	lower := strings.ToLower(text)

	best := "neutral"
	bestScore := 0
	secondary := []string{}
	for _, cat := range emotionKeywords {
		score := 0
		for _, marker := range cat.markers {
			if strings.Contains(lower, marker) {
				score++
			}
		}
		if score > bestScore {
			if best != "neutral" {
				secondary = append(secondary, best)
			}
			best, bestScore = cat.label, score
		} else if score > 0 {
			secondary = append(secondary, cat.label)
		}
	}

	confidence := "low"
	switch {
	case bestScore >= 2:
		confidence = "high"
	case bestScore == 1:
		confidence = "medium"
	}

	payload := map[string]any{
		"emotion":            best,
		"confidence":         confidence,
		"secondary_emotions": secondary,
	}
	out, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("local capability: marshal emotion payload: %w", err)
	}
	return string(out), nil
}

// therapize picks the CBT template for the emotion named in the request.
// The stage sends "Query: ...\nEmotion: <label>".
func therapize(text string) string {
	emotion := extractField(text, "Emotion")
	if tpl, ok := cbtTemplates[emotion]; ok {
		return tpl
	}
	return cbtTemplates["neutral"]
}

// schedule returns the per-emotion recommendation template as JSON.
func schedule(text string) (string, error) {
	emotion := extractField(text, "Emotion")
	tpl, ok := scheduleTemplates[emotion]
	if !ok {
		tpl = defaultSchedule
	}
	out, err := json.MarshalIndent(tpl, "", "  ")
	if err != nil {
		return "", fmt.Errorf("local capability: marshal schedule: %w", err)
	}
	return string(out), nil
}

// review runs the safety checklist over the submitted content and emits the
// structured verdict the ethics decoder expects.
func review(content string) (string, error) {
	lower := strings.ToLower(content)

	var concerns []string
	for _, phrase := range dismissivePhrases {
		if strings.Contains(lower, phrase) {
			concerns = append(concerns, fmt.Sprintf("Contains potentially dismissive language: %q", phrase))
		}
	}
	for _, term := range medicalTerms {
		if strings.Contains(lower, term) {
			concerns = append(concerns, fmt.Sprintf("May contain inappropriate medical advice: %q", term))
		}
	}
	for _, promise := range boundaryPromises {
		if strings.Contains(lower, promise) {
			concerns = append(concerns, fmt.Sprintf("Contains inappropriate promises: %q", promise))
		}
	}

	verdict := map[string]any{
		"ethical":  len(concerns) == 0,
		"feedback": "Review passed: content is supportive and within boundaries",
		"concerns": concerns,
	}
	if len(concerns) > 0 {
		verdict["feedback"] = "Revision needed: " + strings.Join(concerns, "; ")
	}
	out, err := json.Marshal(verdict)
	if err != nil {
		return "", fmt.Errorf("local capability: marshal review: %w", err)
	}
	return string(out), nil
}

// compose wraps the accumulated content in the final, user-facing format.
func compose(content string) string {
	var b strings.Builder
	b.WriteString("Thank you for reaching out. Here is a plan put together for you.\n\n")
	b.WriteString(content)
	b.WriteString("\n\nYou've taken an important step by asking. Be patient and kind with yourself.")
	return b.String()
}

// extractField pulls a "Label: value" line out of a stage user message.
func extractField(text, label string) string {
	for _, line := range strings.Split(text, "\n") {
		if rest, ok := strings.CutPrefix(line, label+": "); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}
