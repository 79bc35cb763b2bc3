// Package lexical provides the token-level text metrics shared by the
// question pipeline: tokenization, Jaccard set similarity, sentence
// splitting, keyword-weighted sentence ranking, and proof-sentence lookup.
package lexical

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Tokenize lowercases s and splits it into alphanumeric word tokens.
// Punctuation and symbols act as separators; accents are preserved.
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '-'
	})
}

// TokenSet returns the set of tokens in s.
func TokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range Tokenize(s) {
		set[t] = struct{}{}
	}
	return set
}

// Jaccard computes intersection-over-union of the token sets of a and b.
// Two empty strings score 0, not 1.
func Jaccard(a, b string) float64 {
	sa, sb := TokenSet(a), TokenSet(b)
	if len(sa) == 0 && len(sb) == 0 {
		return 0
	}
	inter := 0
	for t := range sa {
		if _, ok := sb[t]; ok {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

var sentenceEnd = regexp.MustCompile(`([.!?])+\s+`)

// SplitSentences splits text into trimmed sentences on terminal
// punctuation. Whitespace runs are collapsed first so that line breaks
// inside a sentence do not produce spurious splits.
func SplitSentences(text string) []string {
	collapsed := strings.Join(strings.Fields(text), " ")
	marked := sentenceEnd.ReplaceAllString(collapsed, "$1\x00")
	var out []string
	for _, s := range strings.Split(marked, "\x00") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ProofMatch is the best-supporting sentence for a candidate answer and
// its token-overlap score in [0,1].
type ProofMatch struct {
	Text  string
	Score float64
}

// FindProof returns the pool sentence with the highest Jaccard similarity
// to key. Ties resolve to the earliest sentence; an empty pool yields a
// zero ProofMatch.
func FindProof(key string, pool []string) ProofMatch {
	best := ProofMatch{}
	for _, s := range pool {
		if sc := Jaccard(s, key); sc > best.Score {
			best = ProofMatch{Text: s, Score: sc}
		}
	}
	return best
}

// RankSentences orders the sentences of text by keyword weight, most
// relevant first. Each keyword is weighted by a smoothed inverse document
// frequency over the sentence pool, so terms appearing everywhere count
// less than discriminating ones.
func RankSentences(text string, keywords []string) []string {
	sents := SplitSentences(text)
	if len(sents) == 0 || len(keywords) == 0 {
		return sents
	}

	norm := make([]map[string]struct{}, len(sents))
	for i, s := range sents {
		norm[i] = TokenSet(s)
	}

	total := float64(len(sents))
	idf := make(map[string]float64, len(keywords))
	for _, kw := range keywords {
		tokens := Tokenize(kw)
		hits := 0
		for _, set := range norm {
			if containsAll(set, tokens) {
				hits++
			}
		}
		idf[kw] = math.Log((1+total)/float64(1+hits)) + 1
	}

	type scored struct {
		s     string
		score float64
	}
	ranked := make([]scored, len(sents))
	for i, s := range sents {
		sc := 0.0
		for _, kw := range keywords {
			if containsAll(norm[i], Tokenize(kw)) {
				sc += idf[kw]
			}
		}
		ranked[i] = scored{s: s, score: sc}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.s
	}
	return out
}

func containsAll(set map[string]struct{}, tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	for _, t := range tokens {
		if _, ok := set[t]; !ok {
			return false
		}
	}
	return true
}
