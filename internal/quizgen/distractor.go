package quizgen

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/nourlabs/coach/internal/lexical"
)

// confusionPairs maps a term to the concept learners most often confuse
// it with. Both directions are listed so lookup stays a single map read.
var confusionPairs = map[string]string{
	"cause":       "conséquence",
	"conséquence": "cause",
	"droit":       "obligation",
	"obligation":  "droit",
	"nécessaire":  "suffisant",
	"suffisant":   "nécessaire",
	"actif":       "passif",
	"passif":      "actif",
	"objectif":    "subjectif",
	"subjectif":   "objectif",
}

// genericFillers pad an option list that synthesis could not fill. They
// are safe by construction: never similar to a real answer, never
// matching the "toutes" rejection pattern.
var genericFillers = []string{
	"Proposition incorrecte",
	"Réponse incomplète",
	"Information non pertinente",
	"Hypothèse plausible mais fausse",
}

var (
	absoluteAlways    = regexp.MustCompile(`(?i)\btoujours\b`)
	absoluteNecessary = regexp.MustCompile(`(?i)\bnécessaire\b`)
)

// NumericDistractors perturbs a numeric answer into plausible neighbors:
// ±10% scaling and ±1/±2 offsets, formatted to match the answer's
// integer or decimal style. Returns nil when the answer does not parse
// as a number.
func NumericDistractors(answer string) []string {
	s := strings.ReplaceAll(strings.TrimSpace(answer), ",", ".")
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return nil
	}
	integral := n == math.Trunc(n) && !strings.Contains(s, ".")

	candidates := []float64{n * 1.1, n * 0.9, n + 1, n - 1, n + 2, n - 2}
	var out []string
	seen := map[string]struct{}{formatNumber(n, integral): {}}
	for _, v := range candidates {
		f := formatNumber(v, integral)
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

// formatNumber renders v like the original answer: bare integer when both
// the answer and v are integral, otherwise rounded to 2 decimals with
// trailing zeros trimmed.
func formatNumber(v float64, answerIntegral bool) string {
	if answerIntegral && v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	rounded := math.Round(v*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// LexicalDistractors derives up to 3 wrong-but-plausible variants of a
// textual answer: a confusion-pair substitute, a negation flip when the
// context uses an absolute qualifier, a truncated partial answer, and a
// reversed noise string as last resort.
func LexicalDistractors(answer, context string) []string {
	a := strings.TrimSpace(answer)
	low := strings.ToLower(a)

	var out []string
	if pair, ok := confusionPairs[low]; ok {
		out = append(out, pair)
	}
	if absoluteAlways.MatchString(context) {
		out = append(out, "parfois")
	}
	if absoluteNecessary.MatchString(context) {
		out = append(out, "suffisant")
	}
	if r := []rune(a); len(r) > 6 {
		out = append(out, string(r[:len(r)-2]))
	}
	if noise := reverseNoise(a); noise != "" {
		out = append(out, noise)
	}

	seen := make(map[string]struct{}, len(out))
	var uniq []string
	for _, d := range out {
		key := strings.ToLower(d)
		if d == "" || key == low {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		uniq = append(uniq, d)
		if len(uniq) == 3 {
			break
		}
	}
	return uniq
}

// reverseNoise reverses the answer and caps it to max(4, len-3) runes.
func reverseNoise(a string) string {
	r := []rune(a)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	limit := len(r) - 3
	if limit < 4 {
		limit = 4
	}
	if len(r) > limit {
		r = r[:limit]
	}
	return strings.TrimSpace(string(r))
}

// SynthesizeDistractors produces up to 3 plausible wrong options for an
// answer given its surrounding context. The numeric path is tried first
// when the answer parses as a number; lexical variants fill the rest.
func SynthesizeDistractors(answer, context string) []string {
	pool := NumericDistractors(answer)
	pool = append(pool, LexicalDistractors(answer, context)...)

	low := strings.ToLower(strings.TrimSpace(answer))
	seen := make(map[string]struct{}, len(pool))
	var out []string
	for _, d := range pool {
		key := strings.ToLower(strings.TrimSpace(d))
		if key == "" || key == low {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, d)
		if len(out) == 3 {
			break
		}
	}
	return out
}

// AntiOverlap normalizes an option pool to exactly 4 distinct entries:
// empties and duplicates are dropped, options too similar to the answer
// (Jaccard > 0.7 or substring either way) or to an already accepted
// option (Jaccard > 0.8) are rejected, the answer is guaranteed present,
// and generic fillers pad any remaining slots. Idempotent for pools that
// contain the answer.
func AntiOverlap(options []string, answer string) []string {
	answer = strings.TrimSpace(answer)
	var out []string
	seen := make(map[string]struct{})

	accept := func(o string) {
		out = append(out, o)
		seen[o] = struct{}{}
	}

	for _, opt := range options {
		o := strings.TrimSpace(opt)
		if o == "" {
			continue
		}
		if _, dup := seen[o]; dup {
			continue
		}
		if answer != "" && o == answer {
			accept(o)
			continue
		}
		if answer != "" {
			if lexical.Jaccard(o, answer) > 0.7 || strings.Contains(o, answer) || strings.Contains(answer, o) {
				continue
			}
		}
		nearDup := false
		for _, e := range out {
			if lexical.Jaccard(e, o) > 0.8 {
				nearDup = true
				break
			}
		}
		if !nearDup {
			accept(o)
		}
	}

	if answer != "" {
		if _, ok := seen[answer]; !ok {
			out = append([]string{answer}, out...)
		}
	}
	if len(out) > 4 {
		out = out[:4]
	}

	for len(out) < 4 {
		out = append(out, pickFiller(out, answer, len(out)))
	}
	return out
}

// pickFiller chooses the next generic filler, cycling from position and
// skipping fillers already present or equal to the answer. If every
// filler collides, a trailing-space variant keeps the options distinct.
func pickFiller(existing []string, answer string, position int) string {
	collides := func(f string) bool {
		if foldOption(f) == foldOption(answer) {
			return true
		}
		for _, e := range existing {
			if foldOption(e) == foldOption(f) {
				return true
			}
		}
		return false
	}
	for i := range genericFillers {
		f := genericFillers[(position+i)%len(genericFillers)]
		if !collides(f) {
			return f
		}
	}
	return genericFillers[position%len(genericFillers)] + " "
}
