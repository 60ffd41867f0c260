package decode_test

import (
	"testing"

	"github.com/nithin218/mindmate/pkg/decode"
	"github.com/stretchr/testify/assert"
)

func TestEmotion_StrictTier(t *testing.T) {
	raw := `{"emotion": "anxiety", "confidence": "high", "secondary_emotions": ["fear"]}`
	assert.Equal(t, "anxiety", decode.Emotion(raw))
}

func TestEmotion_StrictTier_MissingField(t *testing.T) {
	// A valid object without an emotion field is neutral, not a heuristic hit,
	// even if the rest of the payload mentions marker words.
	raw := `{"confidence": "low", "note": "possible depression"}`
	assert.Equal(t, "neutral", decode.Emotion(raw))
}

func TestEmotion_HeuristicTier(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "depression resolves to sadness",
			raw:  "I think the person is dealing with depression and sadness",
			want: "sadness",
		},
		{
			name: "anxiety beats depression by priority order",
			raw:  "signs of both anxiety and depression here",
			want: "anxiety",
		},
		{
			name: "angry marker",
			raw:  "The user sounds very ANGRY about the situation",
			want: "anger",
		},
		{
			name: "scared marker",
			raw:  "they seem scared of the outcome",
			want: "fear",
		},
		{
			name: "happy marker",
			raw:  "overall a happy tone",
			want: "joy",
		},
		{
			name: "no markers",
			raw:  "a flat description with no markers at all",
			want: "neutral",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decode.Emotion(tt.raw))
		})
	}
}
