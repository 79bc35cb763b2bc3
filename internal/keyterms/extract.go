// Package keyterms extracts candidate concept phrases from course text.
//
// The ranking is a graph-free approximation of TextRank in the RAKE style:
// the token stream is cut into phrase chunks at stopword boundaries, each
// word is scored degree/frequency over those chunks, and a phrase scores
// the sum of its word scores. Headings and "label: value" lines are forced
// candidates ahead of the ranked phrases.
package keyterms

import (
	"regexp"
	"sort"
	"strings"

	"github.com/nourlabs/coach/internal/lexical"
)

// stopwords is the closed French function-word set used as phrase
// delimiters.
var stopwords = func() map[string]struct{} {
	const list = "au aux avec ce ces dans de des du elle en et eux il je " +
		"la le les leur lui ma mais me même mes moi mon ne nos notre nous " +
		"on ou par pas pour qu que qui sa se ses son sur ta te tes toi ton " +
		"tu un une vos votre vous"
	set := make(map[string]struct{})
	for _, w := range strings.Fields(list) {
		set[w] = struct{}{}
	}
	return set
}()

var (
	headingLine = regexp.MustCompile(`^#{1,3}\s+(.+)$`)
	labelLine   = regexp.MustCompile(`^([^:\-–]{2,60})[:\-–]\s`)
)

// Extract returns up to k distinct key terms for text, best first.
// Forced candidates (headings, definition labels) come before ranked
// phrases. Empty input yields an empty slice, never an error.
func Extract(text string, k int) []string {
	if k <= 0 || strings.TrimSpace(text) == "" {
		return nil
	}

	candidates := forcedCandidates(text)
	candidates = append(candidates, rankedPhrases(text)...)

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, k)
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		key := strings.ToLower(c)
		if c == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
		if len(out) == k {
			break
		}
	}
	return out
}

// forcedCandidates collects heading titles and the label part of
// "label: value" lines, in document order.
func forcedCandidates(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if m := headingLine.FindStringSubmatch(line); m != nil {
			out = append(out, m[1])
			continue
		}
		if m := labelLine.FindStringSubmatch(line); m != nil {
			out = append(out, m[1])
		}
	}
	return out
}

// rankedPhrases scores stopword-delimited phrase chunks by summed
// degree/frequency word scores and returns them best first.
func rankedPhrases(text string) []string {
	words := lexical.Tokenize(text)

	var phrases [][]string
	var cur []string
	for _, w := range words {
		if _, stop := stopwords[w]; stop {
			if len(cur) > 0 {
				phrases = append(phrases, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, w)
	}
	if len(cur) > 0 {
		phrases = append(phrases, cur)
	}

	freq := make(map[string]int)
	degree := make(map[string]int)
	for _, ph := range phrases {
		uniq := make(map[string]struct{}, len(ph))
		for _, w := range ph {
			freq[w]++
			degree[w] += len(ph) - 1
			uniq[w] = struct{}{}
		}
		for w := range uniq {
			degree[w] += len(uniq) - 1
		}
	}

	wordScore := make(map[string]float64, len(freq))
	for w, f := range freq {
		wordScore[w] = float64(degree[w]) / float64(f)
	}

	type scored struct {
		phrase string
		score  float64
	}
	ranked := make([]scored, 0, len(phrases))
	for _, ph := range phrases {
		sum := 0.0
		for _, w := range ph {
			sum += wordScore[w]
		}
		ranked = append(ranked, scored{phrase: strings.Join(ph, " "), score: sum})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.phrase
	}
	return out
}
