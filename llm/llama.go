package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 512
	defaultTopP        = 0.95
)

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// LlamaClient talks to a llama.cpp-compatible server over its OpenAI-style
// chat completions endpoint.
type LlamaClient struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewLlamaClient creates a client for the server at baseURL (for example
// "http://127.0.0.1:8080"). The model name is passed through to the server;
// llama.cpp ignores it when a single model is loaded.
func NewLlamaClient(baseURL, model string, timeout time.Duration) *LlamaClient {
	return &LlamaClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model,omitempty"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	TopP        float64       `json:"top_p"`
	Stop        []string      `json:"stop,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *LlamaClient) Generate(ctx context.Context, prompt, systemPrompt string, opts ...Option) (string, error) {
	params := generationParams{
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
		TopP:        defaultTopP,
	}
	for _, opt := range opts {
		opt(&params)
	}

	var messages []chatMessage
	if systemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
		TopP:        params.TopP,
		Stop:        params.Stop,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading llm response: %w", err)
	}

	var parsed chatResponse
	if resp.StatusCode != http.StatusOK {
		// The body may not be JSON at all (a proxy error page, for example),
		// so the error payload is decoded on a best-effort basis.
		if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error != nil {
			return "", fmt.Errorf("llm server returned %d: %s", resp.StatusCode, parsed.Error.Message)
		}
		return "", fmt.Errorf("llm server returned %d", resp.StatusCode)
	}

	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decoding llm response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("llm response contained no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

func (c *LlamaClient) Classify(ctx context.Context, text string, options []string, systemPrompt string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("classification requires at least one option")
	}

	prompt := fmt.Sprintf(`Classify the following text into one of these categories: %s

Text: %s

You MUST respond with exactly one option, without any explanation or extra text.

Category:`, strings.Join(options, ", "), text)

	response, err := c.Generate(ctx, prompt, systemPrompt,
		WithTemperature(0.3),
		WithMaxTokens(50),
	)
	if err != nil {
		return "", err
	}

	response = strings.ToLower(strings.TrimSpace(response))
	for _, option := range options {
		if strings.Contains(response, strings.ToLower(option)) {
			return option, nil
		}
	}

	return options[0], nil
}

func (c *LlamaClient) ExtractJSON(ctx context.Context, prompt, systemPrompt string) (map[string]any, error) {
	response, err := c.Generate(ctx, prompt+`

You MUST respond with only valid JSON, without any explanation or extra text outside the JSON object.

JSON:`, systemPrompt,
		WithTemperature(0.3),
		WithMaxTokens(512),
	)
	if err != nil {
		return nil, err
	}

	blob := jsonObjectPattern.FindString(response)
	if blob == "" {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(blob), &result); err != nil {
		return nil, fmt.Errorf("invalid JSON in response: %w", err)
	}

	return result, nil
}

func (c *LlamaClient) Available(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
