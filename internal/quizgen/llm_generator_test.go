package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nourlabs/coach/internal/llm"
)

func remoteBatchJSON(t *testing.T, b Batch) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func remoteBatch() Batch {
	return Batch{
		Status: StatusOK,
		Items: []BatchItem{
			{
				ID:          "mcq_remote1",
				Question:    "Quelle est la meilleure définition de « contrat » ?",
				Options:     []string{"un accord de volontés", "une sanction", "un fait juridique", "une preuve"},
				AnswerIndex: intPtr(0),
				Difficulty:  "easy",
				Bloom:       "rappel",
				Rationale:   "Voir l'énoncé.",
			},
		},
	}
}

func TestRemoteGenerator_ValidBatch(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: remoteBatchJSON(t, remoteBatch())},
	)
	g := NewRemoteGenerator(mock, DefaultRemoteConfig())

	items, err := g.Generate(context.Background(), "Le contrat est un accord de volontés.", []string{"contrat"}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d", len(items))
	}
	it := items[0]
	if it.CorrectText() != "un accord de volontés" {
		t.Fatalf("correct = %q", it.CorrectText())
	}
	if res := ValidateItem(it); !res.OK {
		t.Fatalf("converted item invalid: %v", res.Errors)
	}
}

func TestRemoteGenerator_SendsSchemaAndMaterial(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: remoteBatchJSON(t, remoteBatch())},
	)
	g := NewRemoteGenerator(mock, DefaultRemoteConfig())

	_, err := g.Generate(context.Background(), "Texte du chapitre.", []string{"contrat", "nullité"}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema != BatchSchema {
		t.Fatal("request must carry the MCQ batch schema")
	}
	body := req.Messages[0].Content
	for _, want := range []string{"Texte du chapitre.", "contrat, nullité", "5"} {
		if !strings.Contains(body, want) {
			t.Fatalf("prompt missing %q:\n%s", want, body)
		}
	}
}

func TestRemoteGenerator_TruncatesMaterial(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: remoteBatchJSON(t, remoteBatch())},
	)
	cfg := DefaultRemoteConfig()
	cfg.MaxMaterial = 50
	g := NewRemoteGenerator(mock, cfg)

	_, err := g.Generate(context.Background(), strings.Repeat("mot ", 100), nil, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body := mock.Calls[0].Messages[0].Content; len([]rune(body)) > 200 {
		t.Fatalf("material not truncated, prompt is %d runes", len([]rune(body)))
	}
}

func TestRemoteGenerator_ProviderErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := NewRemoteGenerator(mock, DefaultRemoteConfig())

	if _, err := g.Generate(context.Background(), "texte", nil, 1); err == nil {
		t.Fatal("expected error")
	}
	// Single attempt, no retry.
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d", mock.CallCount())
	}
}

func TestRemoteGenerator_MalformedJSONRejected(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"status": "ok", "items": [`)},
	)
	g := NewRemoteGenerator(mock, DefaultRemoteConfig())

	if _, err := g.Generate(context.Background(), "texte", nil, 1); err == nil {
		t.Fatal("expected error")
	}
}

func TestRemoteGenerator_InvalidBatchRejected(t *testing.T) {
	b := remoteBatch()
	b.Items[0].Question = "Un accord de volontés, n'est-ce pas ?" // leaks the answer
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: remoteBatchJSON(t, b)},
	)
	g := NewRemoteGenerator(mock, DefaultRemoteConfig())

	_, err := g.Generate(context.Background(), "texte", nil, 1)
	if err == nil {
		t.Fatal("expected error for a leaking batch")
	}
	if !strings.Contains(err.Error(), "answer leakage") {
		t.Fatalf("error = %v", err)
	}
}

func TestWireRoundTrip(t *testing.T) {
	single := Item{
		ID:         "mcq_s",
		Question:   "Q ?",
		Options:    []string{"a", "b", "c", "d"},
		Answer:     SingleIndex(2),
		Difficulty: DifficultyMedium,
		Bloom:      BloomComprehension,
	}
	wire := ToWire(single)
	if wire.AnswerIndex == nil || *wire.AnswerIndex != 2 || wire.AnswerIndices != nil {
		t.Fatalf("single wire form = %+v", wire)
	}
	back, err := FromWire(wire)
	if err != nil {
		t.Fatal(err)
	}
	if back.Answer.IsMulti() || !back.Answer.Contains(2) {
		t.Fatalf("round trip lost the answer: %+v", back.Answer)
	}

	multi := single
	multi.Answer = MultiIndex(0, 3)
	wire = ToWire(multi)
	if wire.AnswerIndex != nil || len(wire.AnswerIndices) != 2 {
		t.Fatalf("multi wire form = %+v", wire)
	}
	back, err = FromWire(wire)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Answer.IsMulti() || !back.Answer.Contains(3) {
		t.Fatalf("round trip lost indices: %+v", back.Answer)
	}
}

func TestFromWire_MissingAnswer(t *testing.T) {
	if _, err := FromWire(BatchItem{ID: "x"}); err == nil {
		t.Fatal("expected error for missing answer")
	}
}
