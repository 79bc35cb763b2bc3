// Package quizgen builds, validates, and scores multiple-choice questions
// from raw course text, with no network access and no language model.
// A remote provider can refine its output, but everything the package
// produces locally is already well-formed.
package quizgen

import "strings"

// Difficulty buckets a question's estimated demand on the learner.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Bloom tags the cognitive level targeted by a question. Values follow
// the French Bloom-taxonomy labels used on the wire.
type Bloom string

const (
	BloomRecall        Bloom = "rappel"
	BloomComprehension Bloom = "compréhension"
	BloomApplication   Bloom = "application"
	BloomAnalysis      Bloom = "analyse"
)

// Reliability is the traffic-light confidence label on whether the
// correct answer is unambiguously distinguishable from its distractors.
type Reliability string

const (
	ReliabilityGreen  Reliability = "green"
	ReliabilityOrange Reliability = "orange"
	ReliabilityRed    Reliability = "red"
)

// AnsweredState records the learner's response to an item.
type AnsweredState string

const (
	AnsweredNone      AnsweredState = ""
	AnsweredCorrect   AnsweredState = "correct"
	AnsweredIncorrect AnsweredState = "incorrect"
)

// Answer is the normalized correct-answer variant: a single option index
// or a set of indices. The zero value is SingleIndex(0).
type Answer struct {
	indices []int
	multi   bool
}

// SingleIndex builds a single-answer Answer.
func SingleIndex(i int) Answer {
	return Answer{indices: []int{i}}
}

// MultiIndex builds a multi-answer Answer. Duplicate indices collapse.
func MultiIndex(indices ...int) Answer {
	seen := make(map[int]struct{}, len(indices))
	var out []int
	for _, i := range indices {
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}
	return Answer{indices: out, multi: true}
}

// IsMulti reports whether the answer accepts several options.
func (a Answer) IsMulti() bool { return a.multi }

// Indices returns the accepted option indices. Never empty for a
// validator-accepted item.
func (a Answer) Indices() []int {
	if len(a.indices) == 0 {
		return []int{0}
	}
	out := make([]int, len(a.indices))
	copy(out, a.indices)
	return out
}

// Contains reports whether option index i is accepted as correct.
func (a Answer) Contains(i int) bool {
	for _, idx := range a.Indices() {
		if idx == i {
			return true
		}
	}
	return false
}

// OptionScore pairs an option with its proof-overlap score.
type OptionScore struct {
	Option string  `json:"option"`
	Score  float64 `json:"score"`
}

// Meta carries the post-hoc scoring attached by Score. Nil until scored.
type Meta struct {
	Difficulty  Difficulty    `json:"difficulty"`
	Reliability Reliability   `json:"reliability"`
	Proof       string        `json:"proof"`
	Support     []OptionScore `json:"support"`
}

// Item is a fully assembled multiple-choice question. Items are values:
// learner responses and flags produce new items via Respond and Flag
// rather than in-place mutation.
type Item struct {
	// ID is a deterministic short hash of the term and support sentence,
	// stable across regeneration.
	ID string `json:"id"`

	Question string `json:"question"`

	// Options holds exactly 4 distinct choices once assembled.
	Options []string `json:"options"`

	Answer Answer `json:"-"`

	Rationale string   `json:"rationale,omitempty"`
	Citations []string `json:"citations,omitempty"`

	Difficulty Difficulty `json:"difficulty"`
	Bloom      Bloom      `json:"bloom"`

	// Meta is attached by Score; optional until then.
	Meta *Meta `json:"meta,omitempty"`

	// Order is the currently displayed permutation of Options. Not part
	// of persisted identity; recomputed when the display mode changes.
	Order []string `json:"-"`

	Answered AnsweredState `json:"-"`
	Flagged  bool          `json:"flagged,omitempty"`
}

// CorrectOptions returns the texts of all accepted options, in option
// order.
func (it Item) CorrectOptions() []string {
	var out []string
	for _, i := range it.Answer.Indices() {
		if i >= 0 && i < len(it.Options) {
			out = append(out, it.Options[i])
		}
	}
	return out
}

// CorrectText returns the first accepted option's text, or "" when the
// answer index is out of range.
func (it Item) CorrectText() string {
	if opts := it.CorrectOptions(); len(opts) > 0 {
		return opts[0]
	}
	return ""
}

// Respond returns a copy of it with Answered set from the learner's
// selected option texts: single-answer items need exactly the correct
// option; multi-answer items need set equality with the accepted options.
func Respond(it Item, selected []string) Item {
	if matchesSelection(it, selected) {
		it.Answered = AnsweredCorrect
	} else {
		it.Answered = AnsweredIncorrect
	}
	return it
}

// Flag returns a copy of it marked as learner-reported ambiguous. A
// flagged item's reliability is forced to red when scoring metadata is
// present; Score preserves the override afterwards.
func Flag(it Item) Item {
	it.Flagged = true
	if it.Meta != nil {
		meta := *it.Meta
		meta.Reliability = ReliabilityRed
		it.Meta = &meta
	}
	return it
}

// ResetResponse returns a copy of it with the learner response cleared.
func ResetResponse(it Item) Item {
	it.Answered = AnsweredNone
	return it
}

func matchesSelection(it Item, selected []string) bool {
	correct := it.CorrectOptions()
	if len(correct) == 0 || len(selected) != len(correct) {
		return false
	}
	remaining := make(map[string]int, len(correct))
	for _, c := range correct {
		remaining[foldOption(c)]++
	}
	for _, s := range selected {
		key := foldOption(s)
		if remaining[key] == 0 {
			return false
		}
		remaining[key]--
	}
	return true
}

func foldOption(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
