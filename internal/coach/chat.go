package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/nourlabs/coach/internal/lexical"
	"github.com/nourlabs/coach/internal/llm"
	"github.com/nourlabs/coach/internal/sheets"
)

const chatSystemPrompt = "Tu es Professeur Nour, un coach d'étude bienveillant et exigeant. " +
	"Réponds en français, de façon structurée et concise."

const sheetsSystemPrompt = "Tu es Professeur Nour. Rédige des fiches de révision en français " +
	"à partir du cours fourni : puces courtes, paragraphes synthétiques, développement complet. " +
	"Cite les articles mentionnés dans le texte. Réponds en JSON strict."

const (
	chatMaxTokens   = 1024
	sheetsMaxTokens = 4096

	// groundedSentences caps how much retrieved context a grounded
	// question carries.
	groundedSentences = 12
)

// ErrNoProvider is returned by the chat operations when the service was
// built without a remote provider.
var ErrNoProvider = errors.New("no remote provider configured")

// Chat sends a free-form question to the provider. Unlike generation,
// chat has no local fallback, so transient provider failures are retried
// with backoff before surfacing.
func (s *Service) Chat(ctx context.Context, history []llm.Message) (string, error) {
	if s.provider == nil {
		return "", ErrNoProvider
	}
	ctx = llm.WithPurpose(ctx, "chat")
	ctx, cancel := s.deadline(ctx)
	defer cancel()

	p := llm.WithRetry(s.provider, s.cfg.LLM.Retry)
	resp, err := p.Generate(ctx, llm.Request{
		System:    chatSystemPrompt,
		Messages:  history,
		MaxTokens: chatMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}
	return decodeText(resp.Content), nil
}

// GroundedChat answers a question using only the sentences of the course
// text most relevant to it, retrieved with the keyword ranker. The
// material keeps the model anchored to what the learner actually read.
func (s *Service) GroundedChat(ctx context.Context, question, material string) (string, error) {
	if s.provider == nil {
		return "", ErrNoProvider
	}
	ctx = llm.WithPurpose(ctx, "grounded-chat")
	ctx, cancel := s.deadline(ctx)
	defer cancel()

	ranked := lexical.RankSentences(material, lexical.Tokenize(question))
	if len(ranked) > groundedSentences {
		ranked = ranked[:groundedSentences]
	}

	var b strings.Builder
	b.WriteString("Extraits du cours :\n")
	for _, sent := range ranked {
		b.WriteString("- ")
		b.WriteString(sent)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nQuestion : %s\n", question)
	b.WriteString("Réponds uniquement à partir des extraits ci-dessus. " +
		"Si les extraits ne suffisent pas, dis-le.")

	p := llm.WithRetry(s.provider, s.cfg.LLM.Retry)
	resp, err := p.Generate(ctx, llm.Request{
		System:    chatSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		MaxTokens: chatMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("grounded chat: %w", err)
	}
	return decodeText(resp.Content), nil
}

// remoteSheets issues the single bounded sheet-generation request.
// The provider batch stands only if the sheet validator accepts it.
func (s *Service) remoteSheets(ctx context.Context, raw string, analysis Analysis) (sheets.Batch, bool) {
	ctx = llm.WithPurpose(ctx, "sheets-3views")
	ctx, cancel := s.deadline(ctx)
	defer cancel()

	var b strings.Builder
	fmt.Fprintf(&b, "Thèmes : %s\n\nTexte du cours :\n", strings.Join(analysis.Titles(), ", "))
	r := []rune(raw)
	if limit := s.cfg.Remote.MaxMaterial; limit > 0 && len(r) > limit {
		r = r[:limit]
	}
	b.WriteString(string(r))

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    sheetsSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		Schema:    sheets.BatchSchema,
		MaxTokens: sheetsMaxTokens,
	})
	if err != nil {
		return sheets.Batch{}, false
	}

	var batch sheets.Batch
	if err := json.Unmarshal(resp.Content, &batch); err != nil {
		return sheets.Batch{}, false
	}
	if v := sheets.ValidateBatch(batch); !v.OK {
		return sheets.Batch{}, false
	}
	return batch, true
}

// decodeText unwraps a provider response that may arrive either as a
// JSON string value or as raw text.
func decodeText(content json.RawMessage) string {
	var s string
	if err := json.Unmarshal(content, &s); err == nil {
		return s
	}
	return string(content)
}
