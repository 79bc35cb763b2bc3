// Package srs keeps the spaced-repetition review queue: questions the
// learner missed or flagged, and sheets they reported low confidence on,
// scheduled on an expanding interval ladder.
package srs

import (
	"sort"
	"strings"
	"time"
)

// Kind separates review cards by origin.
type Kind string

const (
	KindQuestion Kind = "qcm"
	KindSheet    Kind = "sheet"
)

// BaseIntervals is the expanding review schedule in days. Stage 0 is the
// first review after a card enters the queue.
var BaseIntervals = []int{1, 3, 7, 14, 30, 60}

// GraduationHits is the number of consecutive correct reviews after which
// a card graduates.
const GraduationHits = 6

// GraduatedIntervalDays is the review interval for graduated cards.
const GraduatedIntervalDays = 90

// Card is one review item. Prompt is the question text for KindQuestion
// cards and the sheet title for KindSheet cards.
type Card struct {
	Kind   Kind   `json:"kind"`
	ID     string `json:"id,omitempty"`
	Prompt string `json:"prompt"`
	Theme  string `json:"theme,omitempty"`
	Reason string `json:"reason,omitempty"`

	Stage           int       `json:"stage"`
	ConsecutiveHits int       `json:"consecutive_hits"`
	Graduated       bool      `json:"graduated"`
	NextReview      time.Time `json:"next_review"`
	LastReview      time.Time `json:"last_review"`
}

// IsDue reports whether the card is at or past its review date.
func (c *Card) IsDue(now time.Time) bool {
	return !now.Before(c.NextReview)
}

// OverdueDays returns how many days past due the card is, 0 when not due.
func (c *Card) OverdueDays(now time.Time) float64 {
	if now.Before(c.NextReview) {
		return 0
	}
	return now.Sub(c.NextReview).Hours() / 24.0
}

// IntervalDays returns the card's current review interval.
func (c *Card) IntervalDays() int {
	if c.Graduated {
		return GraduatedIntervalDays
	}
	if c.Stage >= len(BaseIntervals) {
		return BaseIntervals[len(BaseIntervals)-1]
	}
	return BaseIntervals[c.Stage]
}

// DaysUntilReview returns the number of days until the next review,
// 0 when already due.
func (c *Card) DaysUntilReview(now time.Time) int {
	if c.IsDue(now) {
		return 0
	}
	return int(c.NextReview.Sub(now).Hours()/24.0) + 1
}

// Queue is the full review state. The zero value is usable; it also
// round-trips through encoding/json for blob persistence.
type Queue struct {
	Cards []*Card `json:"cards"`
}

// Add enqueues a card unless an equivalent one is already present.
// Equivalence is same kind and same prompt, so regenerated questions with
// fresh ids do not pile up. Returns true when the card was added.
func (q *Queue) Add(card Card, now time.Time) bool {
	for _, existing := range q.Cards {
		if existing.Kind == card.Kind && strings.EqualFold(existing.Prompt, card.Prompt) {
			return false
		}
	}
	card.Stage = 0
	card.ConsecutiveHits = 0
	card.Graduated = false
	card.LastReview = now
	card.NextReview = now.AddDate(0, 0, BaseIntervals[0])
	q.Cards = append(q.Cards, &card)
	return true
}

// Due returns the cards at or past their review date, most overdue first.
// Ties keep queue order.
func (q *Queue) Due(now time.Time) []*Card {
	var due []*Card
	for _, c := range q.Cards {
		if c.IsDue(now) {
			due = append(due, c)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].OverdueDays(now) > due[j].OverdueDays(now)
	})
	return due
}

// Record updates a card's schedule after a review answer. A correct
// answer advances the ladder and eventually graduates the card; an
// incorrect one resets it to the first interval.
func (q *Queue) Record(prompt string, correct bool, now time.Time) {
	var card *Card
	for _, c := range q.Cards {
		if strings.EqualFold(c.Prompt, prompt) {
			card = c
			break
		}
	}
	if card == nil {
		return
	}

	card.LastReview = now
	if correct {
		card.ConsecutiveHits++
		if !card.Graduated {
			card.Stage++
			if card.ConsecutiveHits >= GraduationHits {
				card.Graduated = true
			}
		}
	} else {
		card.ConsecutiveHits = 0
		card.Stage = 0
		card.Graduated = false
	}
	card.NextReview = now.AddDate(0, 0, card.IntervalDays())
}

// Remove drops the card with the given prompt. Returns true when found.
func (q *Queue) Remove(prompt string) bool {
	for i, c := range q.Cards {
		if strings.EqualFold(c.Prompt, prompt) {
			q.Cards = append(q.Cards[:i], q.Cards[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of cards in the queue.
func (q *Queue) Len() int { return len(q.Cards) }
