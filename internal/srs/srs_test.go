package srs

import (
	"encoding/json"
	"testing"
	"time"
)

var day = 24 * time.Hour

func TestAdd_SchedulesFirstReview(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	q := &Queue{}
	added := q.Add(Card{Kind: KindQuestion, ID: "mcq_ab", Prompt: "Quelle est la sanction ?"}, now)
	if !added {
		t.Fatal("expected the card to be added")
	}
	c := q.Cards[0]
	if c.Stage != 0 {
		t.Errorf("Stage = %d, want 0", c.Stage)
	}
	if !c.NextReview.Equal(now.AddDate(0, 0, 1)) {
		t.Errorf("NextReview = %v, want one day out", c.NextReview)
	}
}

func TestAdd_DedupesByKindAndPrompt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	q := &Queue{}
	q.Add(Card{Kind: KindQuestion, ID: "mcq_aa", Prompt: "Quelle est la sanction ?"}, now)
	if q.Add(Card{Kind: KindQuestion, ID: "mcq_bb", Prompt: "QUELLE EST LA SANCTION ?"}, now) {
		t.Error("same prompt with a fresh id must not enqueue twice")
	}
	if !q.Add(Card{Kind: KindSheet, Prompt: "Quelle est la sanction ?"}, now) {
		t.Error("same prompt under another kind is a distinct card")
	}
	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}
}

func TestDue_MostOverdueFirst(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	q := &Queue{Cards: []*Card{
		{Kind: KindQuestion, Prompt: "un peu en retard", NextReview: now.Add(-1 * day)},
		{Kind: KindQuestion, Prompt: "pas encore dû", NextReview: now.Add(2 * day)},
		{Kind: KindQuestion, Prompt: "très en retard", NextReview: now.Add(-5 * day)},
	}}
	due := q.Due(now)
	if len(due) != 2 {
		t.Fatalf("Due() returned %d cards, want 2", len(due))
	}
	if due[0].Prompt != "très en retard" || due[1].Prompt != "un peu en retard" {
		t.Errorf("due order = %q, %q", due[0].Prompt, due[1].Prompt)
	}
}

func TestRecord_CorrectAdvancesLadder(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	q := &Queue{}
	q.Add(Card{Kind: KindQuestion, Prompt: "la nullité"}, now)

	now = now.Add(1 * day)
	q.Record("la nullité", true, now)
	c := q.Cards[0]
	if c.Stage != 1 {
		t.Errorf("Stage = %d, want 1", c.Stage)
	}
	if !c.NextReview.Equal(now.AddDate(0, 0, 3)) {
		t.Errorf("NextReview = %v, want three days out", c.NextReview)
	}
}

func TestRecord_IncorrectResets(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	q := &Queue{Cards: []*Card{{
		Kind: KindQuestion, Prompt: "la prescription",
		Stage: 3, ConsecutiveHits: 3, NextReview: now,
	}}}
	q.Record("la prescription", false, now)
	c := q.Cards[0]
	if c.Stage != 0 || c.ConsecutiveHits != 0 {
		t.Errorf("reset left Stage=%d hits=%d", c.Stage, c.ConsecutiveHits)
	}
	if !c.NextReview.Equal(now.AddDate(0, 0, 1)) {
		t.Errorf("NextReview = %v, want one day out", c.NextReview)
	}
}

func TestRecord_Graduates(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	q := &Queue{}
	q.Add(Card{Kind: KindQuestion, Prompt: "le dol"}, now)

	for i := 0; i < GraduationHits; i++ {
		now = now.AddDate(0, 0, q.Cards[0].IntervalDays())
		q.Record("le dol", true, now)
	}
	c := q.Cards[0]
	if !c.Graduated {
		t.Fatalf("card not graduated after %d correct reviews", GraduationHits)
	}
	if c.IntervalDays() != GraduatedIntervalDays {
		t.Errorf("IntervalDays() = %d, want %d", c.IntervalDays(), GraduatedIntervalDays)
	}
	if !c.NextReview.Equal(now.AddDate(0, 0, GraduatedIntervalDays)) {
		t.Errorf("NextReview = %v", c.NextReview)
	}
}

func TestRecord_UnknownPromptIgnored(t *testing.T) {
	q := &Queue{}
	q.Record("jamais vue", true, time.Now()) // must not panic
	if q.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", q.Len())
	}
}

func TestRemove(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	q := &Queue{}
	q.Add(Card{Kind: KindSheet, Prompt: "La force majeure"}, now)
	if !q.Remove("la force majeure") {
		t.Fatal("expected removal")
	}
	if q.Remove("la force majeure") {
		t.Fatal("second removal must report absence")
	}
}

func TestQueue_JSONRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	q := &Queue{}
	q.Add(Card{Kind: KindQuestion, ID: "mcq_cd", Prompt: "Q ?", Theme: "Le contrat", Reason: "Réponse incorrecte"}, now)

	raw, err := json.Marshal(q)
	if err != nil {
		t.Fatal(err)
	}
	var back Queue
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	if back.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", back.Len())
	}
	c := back.Cards[0]
	if c.Theme != "Le contrat" || c.Reason != "Réponse incorrecte" {
		t.Errorf("round trip lost fields: %+v", c)
	}
	if !c.NextReview.Equal(q.Cards[0].NextReview) {
		t.Errorf("NextReview = %v, want %v", c.NextReview, q.Cards[0].NextReview)
	}
}

func TestOverdueDays(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	c := &Card{NextReview: now.Add(-3 * day)}
	if got := c.OverdueDays(now); got < 2.99 || got > 3.01 {
		t.Errorf("OverdueDays() = %f, want ~3.0", got)
	}
	c = &Card{NextReview: now.Add(day)}
	if got := c.OverdueDays(now); got != 0 {
		t.Errorf("OverdueDays() = %f, want 0", got)
	}
}

func TestDaysUntilReview(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := &Card{NextReview: now.Add(108 * time.Hour)} // 4.5 days
	if got := c.DaysUntilReview(now); got != 5 {
		t.Errorf("DaysUntilReview() = %d, want 5", got)
	}
	c = &Card{NextReview: now.Add(-day)}
	if got := c.DaysUntilReview(now); got != 0 {
		t.Errorf("DaysUntilReview() = %d, want 0", got)
	}
}
