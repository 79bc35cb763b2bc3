// Package study builds guided session plans: an ordered list of
// diagnostic, reading, learning, practice, recall, and test steps sized
// by the session duration and weighted toward the learner's weak themes.
package study

import (
	"sort"
	"strings"
)

// StepType names a plan step.
type StepType string

const (
	StepDiagnostic StepType = "diagnostic"
	StepRead       StepType = "read"
	StepLearn      StepType = "learn"
	StepPractice   StepType = "practice"
	StepRecall     StepType = "recall"
	StepTest       StepType = "test"
)

// Step is one entry of a session plan. Theme is empty for the opening
// diagnostic and the final test.
type Step struct {
	Type    StepType `json:"type"`
	Theme   string   `json:"theme,omitempty"`
	Size    int      `json:"size,omitempty"`
	Minutes int      `json:"minutes,omitempty"`
	Prompts int      `json:"prompts,omitempty"`
}

const (
	diagnosticSize  = 5
	practiceSize    = 4
	recallPrompts   = 3
	finalTestSize   = 8
	defaultDuration = 60
)

// RecallPrompts are the open questions asked during a recall step.
var RecallPrompts = []string{
	"Donnez la définition.",
	"Citez une exception et sa justification.",
	"Illustrez par un cas pratique bref.",
}

// WeakThemeIndex orders theme indices weakest first. A theme scores 2
// when the learner marked it low-confidence, plus up to 3 points for due
// review prompts mentioning its title. Ties keep document order.
func WeakThemeIndex(themes []string, lowConfidence []string, duePrompts []string) []int {
	low := make(map[string]bool, len(lowConfidence))
	for _, t := range lowConfidence {
		low[strings.ToLower(t)] = true
	}

	type scored struct {
		idx   int
		score int
	}
	ranked := make([]scored, len(themes))
	for i, title := range themes {
		s := 0
		if low[strings.ToLower(title)] {
			s += 2
		}
		hits := 0
		needle := strings.ToLower(title)
		for _, p := range duePrompts {
			if needle != "" && strings.Contains(strings.ToLower(p), needle) {
				hits++
			}
		}
		if hits > 3 {
			hits = 3
		}
		ranked[i] = scored{idx: i, score: s + hits}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]int, len(ranked))
	for i, r := range ranked {
		out[i] = r.idx
	}
	return out
}

// BuildPlan assembles a session plan for the given themes and duration
// in minutes. It opens with a short diagnostic, works through the
// weakest themes with read/learn/practice/recall blocks, and closes with
// a final test. A non-positive duration falls back to one hour.
func BuildPlan(themes []string, durationMin int, lowConfidence []string, duePrompts []string) []Step {
	if durationMin <= 0 {
		durationMin = defaultDuration
	}

	order := WeakThemeIndex(themes, lowConfidence, duePrompts)
	pick := durationMin / 20
	if pick < 2 {
		pick = 2
	}
	if pick > len(order) {
		pick = len(order)
	}
	order = order[:pick]

	denom := len(order)
	if denom < 2 {
		denom = 2
	}
	learnMin := durationMin / (3 * denom)
	if learnMin < 6 {
		learnMin = 6
	}

	steps := []Step{{Type: StepDiagnostic, Size: diagnosticSize}}
	for _, i := range order {
		theme := themes[i]
		steps = append(steps,
			Step{Type: StepRead, Theme: theme},
			Step{Type: StepLearn, Theme: theme, Minutes: learnMin},
			Step{Type: StepPractice, Theme: theme, Size: practiceSize},
			Step{Type: StepRecall, Theme: theme, Prompts: recallPrompts},
		)
	}
	steps = append(steps, Step{Type: StepTest, Size: finalTestSize})
	return steps
}
