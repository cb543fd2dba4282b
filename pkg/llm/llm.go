package llm

import (
	"context"
	"encoding/json"
)

// FunctionSchema describes a function-calling tool presented to the model.
// Parameters holds a JSON Schema object.
type FunctionSchema struct {
	Name        string
	Description string
	Parameters  json.RawMessage
}

// Usage is the token accounting reported by a provider for one call.
type Usage struct {
	InputTokens       int
	CachedInputTokens int
	OutputTokens      int
}

// StructuredModel is the minimal abstraction over chat LLM providers used
// by the domain: one forced function call, raw JSON arguments back. It
// intentionally hides concrete providers to preserve dependency direction.
type StructuredModel interface {
	ExtractJSON(ctx context.Context, systemPrompt, userPrompt string, fn FunctionSchema) (string, Usage, error)
}
