package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nourlabs/coach/internal/llm"
)

const remoteSystemPrompt = "Tu es Professeur Nour, un coach d'étude. " +
	"Génère des QCM en français de qualité : une seule bonne réponse, " +
	"3 distracteurs plausibles, une justification courte citant le texte. " +
	"Réponds en JSON strict."

// RemoteConfig controls the remote MCQ refinement request.
type RemoteConfig struct {
	MaxTokens   int
	Temperature float64

	// MaxMaterial caps the course-text excerpt sent to the provider,
	// in runes.
	MaxMaterial int
}

// DefaultRemoteConfig returns the recommended refinement settings.
func DefaultRemoteConfig() RemoteConfig {
	return RemoteConfig{
		MaxTokens:   2048,
		Temperature: 0.7,
		MaxMaterial: 3500,
	}
}

// RemoteGenerator asks a provider for an MCQ batch shaped like the local
// pipeline's output. Its output is untrusted: the batch is re-validated
// and any violation is an error, so callers can fall back to the local
// pipeline. One request, no retries — the fallback is the retry policy.
type RemoteGenerator struct {
	provider llm.Provider
	cfg      RemoteConfig
}

// NewRemoteGenerator creates a RemoteGenerator.
func NewRemoteGenerator(provider llm.Provider, cfg RemoteConfig) *RemoteGenerator {
	return &RemoteGenerator{provider: provider, cfg: cfg}
}

// Generate requests count questions grounded in material. The returned
// items have passed both batch validation and per-item validation;
// any other outcome is an error.
func (g *RemoteGenerator) Generate(ctx context.Context, material string, topics []string, count int) ([]Item, error) {
	ctx = llm.WithPurpose(ctx, "make-mcq")

	req := llm.Request{
		System: remoteSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: g.userMessage(material, topics, count)},
		},
		Schema:      BatchSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("remote MCQ generation: %w", err)
	}

	var batch Batch
	if err := json.Unmarshal(resp.Content, &batch); err != nil {
		return nil, fmt.Errorf("parse MCQ batch: %w", err)
	}

	if v := ValidateBatch(batch); !v.OK {
		return nil, fmt.Errorf("invalid MCQ batch: %s", strings.Join(v.Errors, "; "))
	}

	items := make([]Item, 0, len(batch.Items))
	for _, wire := range batch.Items {
		item, err := FromWire(wire)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (g *RemoteGenerator) userMessage(material string, topics []string, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Nombre de questions : %d\n", count)
	if len(topics) > 0 {
		fmt.Fprintf(&b, "Thèmes : %s\n", strings.Join(topics, ", "))
	}
	b.WriteString("\nTexte du cours :\n")
	r := []rune(material)
	if g.cfg.MaxMaterial > 0 && len(r) > g.cfg.MaxMaterial {
		r = r[:g.cfg.MaxMaterial]
	}
	b.WriteString(string(r))
	return b.String()
}

// FromWire converts a validated wire item into an Item, normalizing the
// answer polymorphism (index vs indices) into the Answer variant.
func FromWire(wire BatchItem) (Item, error) {
	var answer Answer
	switch {
	case wire.AnswerIndex != nil:
		answer = SingleIndex(*wire.AnswerIndex)
	case len(wire.AnswerIndices) > 0:
		answer = MultiIndex(wire.AnswerIndices...)
	default:
		return Item{}, fmt.Errorf("item %s: missing answer", wire.ID)
	}
	return Item{
		ID:         wire.ID,
		Question:   wire.Question,
		Options:    wire.Options,
		Answer:     answer,
		Rationale:  wire.Rationale,
		Citations:  wire.Citations,
		Difficulty: Difficulty(wire.Difficulty),
		Bloom:      Bloom(wire.Bloom),
	}, nil
}

// ToWire converts an Item to its wire form for persistence or export.
func ToWire(it Item) BatchItem {
	wire := BatchItem{
		ID:         it.ID,
		Question:   it.Question,
		Options:    it.Options,
		Difficulty: string(it.Difficulty),
		Bloom:      string(it.Bloom),
		Rationale:  it.Rationale,
		Citations:  it.Citations,
	}
	if it.Answer.IsMulti() {
		wire.AnswerIndices = it.Answer.Indices()
	} else {
		idx := it.Answer.Indices()[0]
		wire.AnswerIndex = &idx
	}
	return wire
}
