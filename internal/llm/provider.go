package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over remote model backends. The coach
// pipeline treats every provider the same way: send a Request, get
// structured JSON back, and re-check it before trusting it.
type Provider interface {
	// Generate sends the request and returns the model's output. When the
	// request carries a Schema, the provider uses its native structured
	// output mechanism and the returned Content is schema-validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider targets.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far. Quiz and sheet generation use
	// a single user message; the chat command accumulates turns.
	Messages []Message

	// Schema, when set, constrains the response to the given JSON
	// structure. When nil the response Content is the raw text wrapped
	// as a JSON value.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]. Zero value means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "mcq-batch".
	Name string

	// Description guides the model toward the intended content.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. Schema-validated JSON when the
	// request had a Schema, otherwise the raw text.
	Content json.RawMessage

	// Usage reports token consumption for this call.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token counts for a single call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
