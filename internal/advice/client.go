// Package advice generates short advisory text for reminders via DeepSeek's
// OpenAI-compatible chat-completion API. Advice is strictly best effort: any
// failure here is logged by the caller and the reminder is created without it.
package advice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	defaultBaseURL = "https://api.deepseek.com/v1"
	defaultModel   = "deepseek-chat"

	// A hung completion call must not stall reminder creation forever.
	requestTimeout = 15 * time.Second
)

// ErrClientNotInitialised is returned when attempting to call the API without
// a configured client.
var ErrClientNotInitialised = errors.New("advice client not initialised")

// Client wraps the chat-completion API used to generate reminder advice.
type Client struct {
	client *openai.Client
	model  openai.ChatModel
}

// New returns an advice client when apiKey is provided, otherwise an inert
// client whose calls fail with ErrClientNotInitialised.
func New(apiKey string) *Client {
	if apiKey == "" {
		return &Client{}
	}
	client := openai.NewClient(option.WithAPIKey(apiKey), option.WithBaseURL(defaultBaseURL))
	return &Client{
		client: &client,
		model:  openai.ChatModel(defaultModel),
	}
}

// Advice asks the model for brief advice on the reminder message. A response
// without completion content is treated the same as a transport failure.
func (c *Client) Advice(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("message cannot be empty")
	}
	if c.client == nil {
		return "", ErrClientNotInitialised
	}

	req := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(fmt.Sprintf("Please generate brief advice for this reminder: %s", message)),
					},
				},
			},
		},
		Temperature: openai.Float(0.5),
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion received")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("completion is missing content")
	}
	return text, nil
}
