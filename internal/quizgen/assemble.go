package quizgen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nourlabs/coach/internal/lexical"
)

const (
	maxAnswerLen    = 160
	maxRationaleLen = 200
)

var (
	defSplit = regexp.MustCompile(`[:\-–]\s+`)

	bloomApplication = regexp.MustCompile(`(?i)\b(calcul|appliquer|résoudre|démontrer)`)
	bloomAnalysis    = regexp.MustCompile(`(?i)\b(analyser|comparer|justifier)`)

	leadingBullet = regexp.MustCompile(`^[\-•–]\s*`)
)

// Build assembles a complete MCQ for a key term found in a section. It is
// total: for any inputs, including empty strings, it returns an item that
// passes ValidateItem — falling back to a generic item when the derived
// content fails validation.
func Build(term, sectionText, topic string) Item {
	support := supportSentence(term, sectionText)
	correct := deriveAnswer(term, support)

	distractors := SynthesizeDistractors(correct, support)
	options := Shuffle(AntiOverlap(append([]string{correct}, distractors...), correct))

	answerIdx := 0
	for i, o := range options {
		if o == correct {
			answerIdx = i
			break
		}
	}

	item := Item{
		ID:         "mcq_" + shortHash(term+support),
		Question:   fmt.Sprintf("Quelle est la meilleure définition de « %s » ?", term),
		Options:    options,
		Answer:     SingleIndex(answerIdx),
		Rationale:  truncate("Réponse appuyée par l'énoncé : « "+cleanSentence(support)+" »", maxRationaleLen),
		Difficulty: difficultyFromSupport(support),
		Bloom:      bloomFromSupport(support),
	}

	if v := ValidateItem(item); !v.OK {
		return fallbackItem(term, topic)
	}
	return item
}

// fallbackItem is the guaranteed-valid generic item substituted when the
// derived content fails validation. Generation must always produce
// something usable.
func fallbackItem(term, topic string) Item {
	label := topic
	if label == "" {
		label = term
	}
	if label == "" {
		label = "ce chapitre"
	}
	return Item{
		ID:       "mcq_" + shortHash(term),
		Question: fmt.Sprintf("Laquelle des propositions suivantes est correcte à propos de « %s » ?", label),
		Options: []string{
			"La définition fidèle au cours",
			"Un exemple sans définition",
			"Une affirmation incorrecte",
			"Une analogie non pertinente",
		},
		Answer:     SingleIndex(0),
		Rationale:  "Formulation de secours (heuristique).",
		Difficulty: DifficultyEasy,
		Bloom:      BloomRecall,
	}
}

// supportSentence picks the first sentence containing the term, else the
// first sentence, else a leading slice of the text.
func supportSentence(term, sectionText string) string {
	sentences := lexical.SplitSentences(sectionText)
	if t := strings.TrimSpace(term); t != "" {
		pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(t) + `\b`)
		if err == nil {
			for _, s := range sentences {
				if pattern.MatchString(s) {
					return s
				}
			}
		}
	}
	if len(sentences) > 0 {
		return sentences[0]
	}
	r := []rune(strings.TrimSpace(sectionText))
	if len(r) > 240 {
		r = r[:240]
	}
	return string(r)
}

// deriveAnswer extracts the correct-answer string from the support
// sentence: the text after the first colon or dash, else the clause
// following "est/constitue/signifie", else the whole sentence — cleaned
// and truncated to 160 characters.
func deriveAnswer(term, support string) string {
	correct := ""
	if parts := defSplit.Split(support, -1); len(parts) > 1 {
		correct = strings.TrimSpace(strings.Join(parts[1:], " "))
	}
	if correct == "" && strings.TrimSpace(term) != "" {
		pattern, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(strings.TrimSpace(term)) + `\s+(?:est|constitue|signifie)\s+([^.!?]+)`)
		if err == nil {
			if m := pattern.FindStringSubmatch(support); m != nil {
				correct = strings.TrimSpace(m[1])
			}
		}
	}
	if correct == "" {
		correct = strings.TrimSpace(support)
	}
	return truncate(cleanSentence(correct), maxAnswerLen)
}

func difficultyFromSupport(support string) Difficulty {
	switch length := len([]rune(support)); {
	case length < 80:
		return DifficultyEasy
	case length < 180:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

func bloomFromSupport(support string) Bloom {
	switch {
	case bloomApplication.MatchString(support):
		return BloomApplication
	case bloomAnalysis.MatchString(support):
		return BloomAnalysis
	default:
		return BloomComprehension
	}
}

// cleanSentence collapses whitespace and strips a leading bullet marker.
func cleanSentence(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(leadingBullet.ReplaceAllString(s, ""))
}

// truncate caps s at n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// shortHash returns the first 6 hex characters of the FNV-1a hash of s,
// the stable short identifier used for item ids.
func shortHash(s string) string {
	return fmt.Sprintf("%08x", HashString(s))[:6]
}
