// Package ai wraps the external generation service behind two calls:
// a question/answer batch and a single concept explanation. It is a
// stateless remote-call wrapper; retry policy, if any, belongs to the
// caller.
package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Karoll-e/career-boost/internal/config"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ErrGeneration covers every adapter failure: upstream errors,
// malformed output and timeouts. Callers match with errors.Is.
var ErrGeneration = errors.New("ai generation failed")

// QuestionAnswer is one generated interview question with its answer.
type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Source is one attributed external reference inside an explanation.
type Source struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Explanation is a long-form elaboration of a single question.
type Explanation struct {
	Title       string   `json:"title"`
	Explanation string   `json:"explanation"`
	Sources     []Source `json:"sources"`
}

// Generator is the boundary the rest of the service depends on.
type Generator interface {
	GenerateBatch(ctx context.Context, role, experience, topicsToFocus string, count int) ([]QuestionAnswer, error)
	Explain(ctx context.Context, question string) (*Explanation, error)
}

// Client calls an OpenAI-compatible chat completion API.
type Client struct {
	model   string
	timeout time.Duration

	// indirection so tests can run without the network
	complete func(ctx context.Context, prompt string) (string, error)
}

var _ Generator = (*Client)(nil)

// NewClient builds a Client from configuration.
func NewClient(cfg config.AIConfig) *Client {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	api := openai.NewClient(opts...)

	model := cfg.Model
	if model == "" {
		model = openai.ChatModelGPT4oMini
	}

	c := &Client{
		model:   model,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
	c.complete = func(ctx context.Context, prompt string) (string, error) {
		completion, err := api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(prompt),
			},
			Model: c.model,
		})
		if err != nil {
			return "", err
		}
		if len(completion.Choices) == 0 {
			return "", fmt.Errorf("empty completion")
		}
		return completion.Choices[0].Message.Content, nil
	}
	return c
}

// GenerateBatch asks for exactly count question/answer pairs.
func (c *Client) GenerateBatch(ctx context.Context, role, experience, topicsToFocus string, count int) ([]QuestionAnswer, error) {
	if role == "" || experience == "" || topicsToFocus == "" {
		return nil, fmt.Errorf("%w: missing generation parameters", ErrGeneration)
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive", ErrGeneration)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := c.complete(ctx, questionAnswerPrompt(role, experience, topicsToFocus, count))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	batch, err := parseBatch(raw, count)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return batch, nil
}

// Explain asks for one structured explanation document.
func (c *Client) Explain(ctx context.Context, question string) (*Explanation, error) {
	if question == "" {
		return nil, fmt.Errorf("%w: question is empty", ErrGeneration)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := c.complete(ctx, conceptExplainPrompt(question))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	exp, err := parseExplanation(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return exp, nil
}
