// Package coach is the service layer: it runs the local analysis and
// generation pipeline, overlays the optional remote refinement, and
// persists results through the store. The local pipeline is the source
// of truth; remote output is an untrusted upgrade that must earn its
// place by passing the same validators.
package coach

import (
	"context"
	"time"

	"github.com/nourlabs/coach/internal/keyterms"
	"github.com/nourlabs/coach/internal/lexical"
	"github.com/nourlabs/coach/internal/llm"
	"github.com/nourlabs/coach/internal/quizgen"
	"github.com/nourlabs/coach/internal/segment"
	"github.com/nourlabs/coach/internal/sheets"
	"github.com/nourlabs/coach/internal/store"
)

// Config tunes the service.
type Config struct {
	// LLM carries the provider timeout and the chat retry policy.
	LLM llm.Config

	// Remote tunes the MCQ refinement request.
	Remote quizgen.RemoteConfig

	// TermsPerSection caps key terms extracted per section.
	TermsPerSection int
}

// DefaultServiceConfig returns the recommended settings.
func DefaultServiceConfig() Config {
	return Config{
		LLM:             llm.DefaultConfig(),
		Remote:          quizgen.DefaultRemoteConfig(),
		TermsPerSection: 6,
	}
}

// Service runs the study-coaching operations. A nil provider means
// local-only operation; a nil store means no persistence. Both are
// valid configurations.
type Service struct {
	provider llm.Provider
	st       *store.Store
	cfg      Config
}

// New creates a Service.
func New(provider llm.Provider, st *store.Store, cfg Config) *Service {
	if cfg.TermsPerSection <= 0 {
		cfg.TermsPerSection = DefaultServiceConfig().TermsPerSection
	}
	return &Service{provider: provider, st: st, cfg: cfg}
}

// Theme is one analyzed section of the course text.
type Theme struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	KeyTerms []string `json:"key_terms"`
}

// Analysis is the structured view of a raw course text.
type Analysis struct {
	Themes []Theme `json:"themes"`
}

// Titles returns the theme titles in document order.
func (a Analysis) Titles() []string {
	out := make([]string, len(a.Themes))
	for i, t := range a.Themes {
		out[i] = t.Title
	}
	return out
}

// Analyze segments the raw text and extracts key terms per theme.
// Total: any input yields at least one theme.
func (s *Service) Analyze(raw string) Analysis {
	sections := segment.Segment(raw)
	themes := make([]Theme, len(sections))
	for i, sec := range sections {
		themes[i] = Theme{
			Title:    sec.Title,
			Body:     sec.Body,
			KeyTerms: keyterms.Extract(sec.Body, s.cfg.TermsPerSection),
		}
	}
	return Analysis{Themes: themes}
}

// QuizOptions controls quiz generation.
type QuizOptions struct {
	// Count is the number of questions wanted. Zero means 12.
	Count int

	// ExamMode switches option ordering to the seeded, reproducible
	// permutation.
	ExamMode bool

	// Remote asks the configured provider to refine the quiz. Ignored
	// when no provider is set; any remote failure silently keeps the
	// local result.
	Remote bool
}

const defaultQuizCount = 12

// GenerateQuiz builds a quiz from raw course text. It never fails: the
// local pipeline always produces validator-clean items, and the remote
// overlay only replaces them when its output survives re-validation.
func (s *Service) GenerateQuiz(ctx context.Context, raw string, opts QuizOptions) []quizgen.Item {
	if opts.Count <= 0 {
		opts.Count = defaultQuizCount
	}

	analysis := s.Analyze(raw)
	items := s.localQuiz(analysis, opts.Count)

	if opts.Remote && s.provider != nil {
		if remote, ok := s.remoteQuiz(ctx, raw, analysis, opts.Count); ok {
			items = remote
		}
	}

	for i := range items {
		items[i] = quizgen.WithOrder(items[i], opts.ExamMode)
	}
	return items
}

// localQuiz walks the analyzed themes and assembles one item per key
// term, scored against the theme's own sentences, until count is met.
func (s *Service) localQuiz(analysis Analysis, count int) []quizgen.Item {
	var items []quizgen.Item
	seen := make(map[string]bool)

	for _, theme := range analysis.Themes {
		pool := lexical.SplitSentences(theme.Body)
		terms := theme.KeyTerms
		if len(terms) == 0 {
			terms = []string{theme.Title}
		}
		for _, term := range terms {
			if len(items) >= count {
				return items
			}
			item := quizgen.Build(term, theme.Body, theme.Title)
			if seen[item.ID] {
				continue
			}
			seen[item.ID] = true
			proof := lexical.FindProof(term+" "+item.CorrectText(), pool)
			items = append(items, quizgen.Score(item, proof))
		}
	}
	return items
}

// remoteQuiz issues the single bounded refinement request. Anything
// short of a fully valid batch reports false and the caller keeps the
// local result.
func (s *Service) remoteQuiz(ctx context.Context, raw string, analysis Analysis, count int) ([]quizgen.Item, bool) {
	ctx, cancel := s.deadline(ctx)
	defer cancel()

	gen := quizgen.NewRemoteGenerator(s.provider, s.cfg.Remote)
	items, err := gen.Generate(ctx, raw, s.allTerms(analysis), count)
	if err != nil || len(items) == 0 {
		return nil, false
	}

	pool := lexical.SplitSentences(raw)
	for i := range items {
		proof := lexical.FindProof(items[i].Question+" "+items[i].CorrectText(), pool)
		items[i] = quizgen.Score(items[i], proof)
	}
	return items, true
}

func (s *Service) allTerms(analysis Analysis) []string {
	var out []string
	for _, t := range analysis.Themes {
		out = append(out, t.KeyTerms...)
	}
	return out
}

func (s *Service) deadline(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.cfg.LLM.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

// GenerateSheets builds the three-view revision sheets. Local synthesis
// always succeeds; when remote is requested and a provider is set, its
// batch replaces the local one only after passing the sheet validator.
func (s *Service) GenerateSheets(ctx context.Context, raw string, remote bool) sheets.Batch {
	analysis := s.Analyze(raw)
	themes := make([]sheets.Theme, len(analysis.Themes))
	for i, t := range analysis.Themes {
		themes[i] = sheets.Theme{Title: t.Title, Text: t.Body, Keywords: t.KeyTerms}
	}
	batch := sheets.BuildAll(themes)

	if remote && s.provider != nil {
		if remoteBatch, ok := s.remoteSheets(ctx, raw, analysis); ok {
			batch = remoteBatch
		}
	}
	return batch
}
