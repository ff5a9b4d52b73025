// Package llm talks to an OpenAI-compatible endpoint. It serves two roles:
// an agent backend for gateways that expose the chat completion shape, and
// a salvage step that coerces malformed agent output back into the result
// schema.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const defaultModel = openai.GPT4oMini

type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient builds a client for api.openai.com or, when baseURL is
// non-empty, any OpenAI-compatible gateway.
func NewOpenAIClient(apiKey, baseURL, model string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is not set")
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = defaultModel
	}
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg), model: model}, nil
}

// RunTask submits the practice-check task as a chat completion. The
// outputSchema argument is unused here: the schema is already embedded in
// the system prompt and the task text.
func (c *OpenAIClient) RunTask(ctx context.Context, task, _ string) (string, error) {
	content, err := c.completeJSON(ctx, agentSystemPrompt, task)
	if err != nil {
		return "", err
	}
	return extractResultsArray(content)
}

// SalvageResults asks the model to restructure a malformed payload into the
// result schema. One shot, no invention of data.
func (c *OpenAIClient) SalvageResults(ctx context.Context, raw string) (string, error) {
	if len(raw) > 60000 {
		raw = raw[:60000] + "\n... (truncated)"
	}

	content, err := c.completeJSON(ctx, salvageSystemPrompt, "RAW AGENT OUTPUT:\n"+raw)
	if err != nil {
		return "", err
	}
	return extractResultsArray(content)
}

func (c *OpenAIClient) completeJSON(ctx context.Context, system, user string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0,
	}

	var resp openai.ChatCompletionResponse
	var err error

	for attempt := 0; attempt < 5; attempt++ {
		resp, err = c.client.CreateChatCompletion(ctx, req)
		if err == nil {
			break
		}
		if strings.Contains(err.Error(), "429") {
			time.Sleep(time.Duration(3*(1<<attempt)) * time.Second)
			continue
		}
		return "", err
	}
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices")
	}
	return strings.Trim(resp.Choices[0].Message.Content, "`"), nil
}

// extractResultsArray unwraps the {"results": [...]} envelope the JSON
// response format forces on us and returns the bare array.
func extractResultsArray(content string) (string, error) {
	var envelope struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal([]byte(content), &envelope); err != nil {
		return "", fmt.Errorf("json parse error: %w | content: %s", err, content)
	}
	if len(envelope.Results) == 0 || string(envelope.Results) == "null" {
		return "[]", nil
	}
	return string(envelope.Results), nil
}
