package quizgen

import (
	"fmt"
	"regexp"
	"strings"
)

// StatusOK is the marker a provider batch must carry to be considered.
const StatusOK = "ok"

// allOfTheAbove rejects correct answers of the "Toutes les réponses" kind,
// which trivially leak. The check is a literal substring heuristic.
var allOfTheAbove = regexp.MustCompile(`(?i)toutes`)

// Result is a validation verdict: ok plus every violation found, in check
// order. Validation never short-circuits — callers get the full list.
type Result struct {
	OK     bool
	Errors []string
}

func resultFrom(errs []string) Result {
	return Result{OK: len(errs) == 0, Errors: errs}
}

// BatchItem is the wire form of a single MCQ as exchanged with providers
// and the persistence layer.
type BatchItem struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	AnswerIndex   *int     `json:"answer_index,omitempty"`
	AnswerIndices []int    `json:"answer_indices,omitempty"`
	Difficulty    string   `json:"difficulty"`
	Bloom         string   `json:"bloom"`
	Rationale     string   `json:"rationale,omitempty"`
	Citations     []string `json:"citations,omitempty"`
}

// Batch is the wire envelope for a set of MCQs.
type Batch struct {
	Status string      `json:"status"`
	Items  []BatchItem `json:"items"`
}

// ValidateBatch checks a provider-supplied MCQ batch against every
// structural and leakage rule, collecting all violations. Untrusted
// input goes through here before anything downstream consumes it.
func ValidateBatch(b Batch) Result {
	var errs []string
	if b.Status != StatusOK {
		errs = append(errs, "status != ok")
	}
	if len(b.Items) == 0 {
		errs = append(errs, "items empty")
	}
	for _, it := range b.Items {
		errs = append(errs, validateBatchItem(it)...)
	}
	return resultFrom(errs)
}

func validateBatchItem(it BatchItem) []string {
	var errs []string
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf("%s: %s", it.ID, fmt.Sprintf(format, args...)))
	}

	hasSingle := it.AnswerIndex != nil
	hasMulti := it.AnswerIndices != nil
	if !hasSingle && !hasMulti {
		fail("missing answer_index or answer_indices")
	}

	if len(it.Options) != 4 {
		fail("options must be 4")
	}
	// Exact duplicate check at this layer; the synthesizer already folds
	// case and whitespace, this is defense in depth on raw payloads.
	exact := make(map[string]struct{}, len(it.Options))
	for _, o := range it.Options {
		if _, dup := exact[o]; dup {
			fail("duplicate options")
			break
		}
		exact[o] = struct{}{}
	}

	var correct []string
	if hasSingle {
		idx := *it.AnswerIndex
		if idx < 0 || idx > 3 {
			fail("answer_index out of range")
		}
		text := optionAt(it.Options, idx)
		if allOfTheAbove.MatchString(text) {
			fail(`invalid "Toutes les réponses"`)
		}
		correct = append(correct, text)
	}
	if hasMulti {
		if len(it.AnswerIndices) < 1 || len(it.AnswerIndices) > 4 {
			fail("answer_indices size invalid")
		}
		seen := make(map[int]struct{}, len(it.AnswerIndices))
		for _, idx := range it.AnswerIndices {
			if _, dup := seen[idx]; dup {
				fail("duplicate indices in answer_indices")
				break
			}
			seen[idx] = struct{}{}
		}
		for _, idx := range it.AnswerIndices {
			if idx < 0 || idx > 3 {
				fail("answer_indices out of range")
				break
			}
		}
		for _, idx := range it.AnswerIndices {
			correct = append(correct, optionAt(it.Options, idx))
		}
	}

	if strings.TrimSpace(it.Question) == "" {
		fail("empty question")
	}

	if leaks(it.Question, correct) {
		fail("answer leakage in question")
	}

	if !validDifficulty(it.Difficulty) {
		fail("invalid difficulty")
	}
	if !validBloom(it.Bloom) {
		fail("invalid bloom")
	}
	return errs
}

// ValidateItem checks an assembled Item against the single-item invariant
// set: 4 options distinct after case/space folding, answer indices in
// range, non-empty question, no leakage, no "toutes" answer, closed
// difficulty and bloom sets. All violations are collected.
func ValidateItem(it Item) Result {
	var errs []string

	if len(it.Options) != 4 {
		errs = append(errs, "options must be 4")
	}
	folded := make(map[string]struct{}, len(it.Options))
	for _, o := range it.Options {
		key := foldOption(o)
		if _, dup := folded[key]; dup {
			errs = append(errs, "duplicate options")
			break
		}
		folded[key] = struct{}{}
	}

	indices := it.Answer.Indices()
	if len(indices) == 0 {
		errs = append(errs, "missing answer")
	}
	for _, idx := range indices {
		if idx < 0 || idx > 3 {
			errs = append(errs, "answer index out of range")
			break
		}
	}

	if strings.TrimSpace(it.Question) == "" {
		errs = append(errs, "empty question")
	}

	correct := it.CorrectOptions()
	for _, c := range correct {
		if allOfTheAbove.MatchString(c) {
			errs = append(errs, `invalid "Toutes les réponses"`)
			break
		}
	}
	if leaks(it.Question, correct) {
		errs = append(errs, "answer leakage in question")
	}

	if !validDifficulty(string(it.Difficulty)) {
		errs = append(errs, "invalid difficulty")
	}
	if !validBloom(string(it.Bloom)) {
		errs = append(errs, "invalid bloom")
	}
	return resultFrom(errs)
}

// leaks reports whether the question reveals any correct answer: the
// first 8 characters of the answer (case-insensitive, or the whole
// answer when shorter) appearing as a substring of the question.
func leaks(question string, correct []string) bool {
	q := strings.ToLower(question)
	for _, c := range correct {
		r := []rune(strings.ToLower(c))
		if len(r) == 0 {
			continue
		}
		if len(r) > 8 {
			r = r[:8]
		}
		if strings.Contains(q, string(r)) {
			return true
		}
	}
	return false
}

func optionAt(options []string, idx int) string {
	if idx >= 0 && idx < len(options) {
		return options[idx]
	}
	return ""
}

func validDifficulty(d string) bool {
	switch Difficulty(d) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

func validBloom(b string) bool {
	switch Bloom(b) {
	case BloomRecall, BloomComprehension, BloomApplication, BloomAnalysis:
		return true
	}
	return false
}
