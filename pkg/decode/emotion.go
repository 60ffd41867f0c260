// Package decode turns raw capability output into typed stage verdicts.
//
// Each decoder has two tiers: a strict structured parse first, then a fixed,
// ordered keyword heuristic over the raw text. Parse failure is never fatal;
// it only downgrades the result to the heuristic tier.
package decode

import (
	"encoding/json"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// EmotionVerdict is the structured payload expected from the emotion analyst.
type EmotionVerdict struct {
	Emotion    string   `mapstructure:"emotion"`
	Confidence string   `mapstructure:"confidence"`
	Secondary  []string `mapstructure:"secondary_emotions"`
}

// emotionRules is the heuristic tier: checked in order, first match wins.
// No scoring; the order is part of the contract.
var emotionRules = []struct {
	markers []string
	label   string
}{
	{[]string{"anxiety"}, "anxiety"},
	{[]string{"depression", "sad"}, "sadness"},
	{[]string{"anger", "angry"}, "anger"},
	{[]string{"fear", "scared"}, "fear"},
	{[]string{"joy", "happy"}, "joy"},
}

// Emotion resolves the primary emotion from raw capability output.
//
// Strict tier: a JSON object with an "emotion" field is used verbatim (an
// object without the field resolves to "neutral"). Anything that fails the
// strict tier falls through to the marker scan.
func Emotion(raw string) string {
	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err == nil {
		var verdict EmotionVerdict
		if err := decodeLoose(payload, &verdict); err == nil {
			if verdict.Emotion != "" {
				return verdict.Emotion
			}
			return "neutral"
		}
	}

	lower := strings.ToLower(raw)
	for _, rule := range emotionRules {
		for _, marker := range rule.markers {
			if strings.Contains(lower, marker) {
				return rule.label
			}
		}
	}
	return "neutral"
}

// decodeLoose maps a generic JSON payload onto a typed verdict, tolerating
// providers that stringify booleans or numbers.
func decodeLoose(payload map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(payload)
}
