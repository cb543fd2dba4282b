// Package openai adapts the OpenAI chat-completions API to the narrow
// model interface the extraction use case depends on.
package openai

import (
	"context"
	"errors"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"

	"resume-parser/pkg/llm"
)

type Client struct {
	api         *goopenai.Client
	Model       string
	maxTokens   int
	temperature float32
}

func New(apiKey, model string, maxTokens int, temperature float64) *Client {
	if model == "" {
		model = goopenai.GPT4o
	}
	return &Client{
		api:         goopenai.NewClient(apiKey),
		Model:       model,
		maxTokens:   maxTokens,
		temperature: float32(temperature),
	}
}

// ExtractJSON forces the model to call the given function and returns the
// raw JSON arguments of that call.
func (c *Client) ExtractJSON(ctx context.Context, systemPrompt, userPrompt string, fn llm.FunctionSchema) (string, llm.Usage, error) {
	req := goopenai.ChatCompletionRequest{
		Model: c.Model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: userPrompt},
		},
		Tools: []goopenai.Tool{{
			Type: goopenai.ToolTypeFunction,
			Function: &goopenai.FunctionDefinition{
				Name:        fn.Name,
				Description: fn.Description,
				Parameters:  fn.Parameters,
			},
		}},
		ToolChoice: goopenai.ToolChoice{
			Type:     goopenai.ToolTypeFunction,
			Function: goopenai.ToolFunction{Name: fn.Name},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", llm.Usage{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", llm.Usage{}, errors.New("no choices returned by model")
	}

	usage := llm.Usage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
	}
	if resp.Usage.PromptTokensDetails != nil {
		usage.CachedInputTokens = resp.Usage.PromptTokensDetails.CachedTokens
		usage.InputTokens -= usage.CachedInputTokens
		if usage.InputTokens < 0 {
			usage.InputTokens = 0
		}
	}

	msg := resp.Choices[0].Message
	for _, call := range msg.ToolCalls {
		if call.Function.Name == fn.Name {
			return call.Function.Arguments, usage, nil
		}
	}
	return "", usage, fmt.Errorf("model did not call %s", fn.Name)
}
