// Package llm provides clients for local large language model servers used to
// extract structured classification fields from file names and content.
package llm

import "context"

// Option adjusts generation parameters for a single request.
type Option func(*generationParams)

type generationParams struct {
	Temperature float64
	MaxTokens   int
	TopP        float64
	Stop        []string
}

// WithTemperature overrides the sampling temperature.
func WithTemperature(t float64) Option {
	return func(p *generationParams) { p.Temperature = t }
}

// WithMaxTokens overrides the completion token limit.
func WithMaxTokens(n int) Option {
	return func(p *generationParams) { p.MaxTokens = n }
}

// WithStop sets stop sequences for the completion.
func WithStop(stop ...string) Option {
	return func(p *generationParams) { p.Stop = stop }
}

// Client is the interface all LLM backends implement.
type Client interface {
	// Generate produces a free-form completion for the given prompt. The
	// system prompt may be empty.
	Generate(ctx context.Context, prompt, systemPrompt string, opts ...Option) (string, error)

	// Classify picks one of the provided options for the given text. The
	// result is always a member of options.
	Classify(ctx context.Context, text string, options []string, systemPrompt string) (string, error)

	// ExtractJSON prompts for a JSON object and decodes the first JSON blob
	// found in the response.
	ExtractJSON(ctx context.Context, prompt, systemPrompt string) (map[string]any, error)

	// Available reports whether the backend is reachable and ready.
	Available(ctx context.Context) bool
}
