package capability

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// GroqBaseURL is the OpenAI-compatible endpoint exposed by Groq.
const GroqBaseURL = "https://api.groq.com/openai/v1"

// ChatConfig configures a ChatClient.
type ChatConfig struct {
	// APIKey authenticates against the provider.
	APIKey string
	// BaseURL selects the provider endpoint. Empty means the OpenAI default;
	// set GroqBaseURL for Groq.
	BaseURL string
	// Model is the chat model name, e.g. "llama-3.3-70b-versatile".
	Model string
	// Logger is optional; nil disables logging.
	Logger *slog.Logger
}

// ChatClient implements Client against any OpenAI-compatible chat-completions
// endpoint. It performs no transport retries: a failed call surfaces to the
// pipeline as a capability failure.
type ChatClient struct {
	client openai.Client
	model  string
	logger *slog.Logger
}

// NewChatClient builds a chat-completions capability client.
func NewChatClient(cfg ChatConfig) (*ChatClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("capability: missing API key")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("capability: missing model name")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &ChatClient{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
		logger: logger,
	}, nil
}

// Complete sends one system+user exchange and returns the assistant text.
func (c *ChatClient) Complete(ctx context.Context, req Request) (string, error) {
	c.logger.Debug("capability call", "stage", req.Stage, "model", c.model)

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion for stage %q: %w", req.Stage, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion for stage %q: empty response", req.Stage)
	}

	return resp.Choices[0].Message.Content, nil
}
