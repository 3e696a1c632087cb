// ABOUTME: OpenAI client for chat completions, single-shot and streamed
// ABOUTME: Works against any OpenAI-compatible endpoint via BaseURL (e.g. Ollama)
package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultTimeout bounds a single completion or a whole stream
const DefaultTimeout = 2 * time.Minute

// ClientConfig holds configuration for the OpenAI client
type ClientConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:  apiKey,
		Timeout: DefaultTimeout,
	}
}

// OpenAIClient wraps the OpenAI API client
type OpenAIClient struct {
	client  *openai.Client
	timeout time.Duration
}

var _ Client = (*OpenAIClient)(nil)

// NewOpenAIClient creates a new OpenAI client with the given API key using default configuration
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	return NewOpenAIClientWithConfig(DefaultConfig(apiKey))
}

// NewOpenAIClientWithConfig creates a new OpenAI client with custom configuration.
// An API key is required unless a custom BaseURL is set.
func NewOpenAIClientWithConfig(config *ClientConfig) (*OpenAIClient, error) {
	if config.APIKey == "" && config.BaseURL == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	cfg := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		cfg.BaseURL = config.BaseURL
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &OpenAIClient{
		client:  openai.NewClientWithConfig(cfg),
		timeout: timeout,
	}, nil
}

// Complete returns the first choice of a non-streamed chat completion
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, chatRequest(req, false))
	if err != nil {
		return "", fmt.Errorf("chat completion (model %s): %w", req.Model, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion (model %s): no completion choices returned", req.Model)
	}
	return resp.Choices[0].Message.Content, nil
}

// Stream yields content deltas of a streamed chat completion in arrival order
func (c *OpenAIClient) Stream(ctx context.Context, req Request) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		ctx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		stream, err := c.client.CreateChatCompletionStream(ctx, chatRequest(req, true))
		if err != nil {
			yield("", fmt.Errorf("chat completion stream (model %s): %w", req.Model, err))
			return
		}
		defer stream.Close()

		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield("", fmt.Errorf("chat completion stream (model %s): %w", req.Model, err))
				return
			}
			if len(resp.Choices) == 0 {
				continue
			}
			if delta := resp.Choices[0].Delta.Content; delta != "" {
				if !yield(delta, nil) {
					return
				}
			}
		}
	}
}

func chatRequest(req Request, stream bool) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		}
	}
	return openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: req.Temperature,
		Stream:      stream,
	}
}
