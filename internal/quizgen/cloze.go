package quizgen

import (
	"math/rand/v2"
	"regexp"
	"strings"
)

// Cloze is a fill-in-the-blank question derived from a single sentence.
type Cloze struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// TrueFalse is a statement the learner judges, possibly flipped from the
// source sentence by swapping its absolute qualifiers.
type TrueFalse struct {
	Statement string `json:"statement"`
	Answer    bool   `json:"answer"`
}

var clozeStrip = regexp.MustCompile(`[^\p{L}\p{N}-]`)

// BuildCloze blanks out a word about a third of the way into the
// sentence. Returns false for sentences too short to make a useful gap
// or when the chosen word is too small to test.
func BuildCloze(sentence string) (Cloze, bool) {
	words := strings.Fields(sentence)
	if len(words) < 6 {
		return Cloze{}, false
	}
	i := len(words) * 35 / 100
	if i < 1 {
		i = 1
	}
	removed := clozeStrip.ReplaceAllString(words[i], "")
	if len([]rune(removed)) < 3 {
		return Cloze{}, false
	}
	blanked := make([]string, len(words))
	copy(blanked, words)
	blanked[i] = "____"
	return Cloze{
		Question: "Complétez : " + strings.Join(blanked, " "),
		Answer:   removed,
	}, true
}

var (
	flipAlways = regexp.MustCompile(`(?i)\btoujours\b`)
	flipNever  = regexp.MustCompile(`(?i)\bjamais\b`)
	flipNe     = regexp.MustCompile(`(?i)\bne\b\s*`)
)

// BuildTrueFalse turns a sentence into a true/false statement. Half the
// time the statement is falsified by flipping absolute qualifiers and
// dropping negation.
func BuildTrueFalse(sentence string) TrueFalse {
	makeFalse := rand.IntN(2) == 1
	text := sentence
	if makeFalse {
		text = flipAlways.ReplaceAllString(text, "parfois")
		text = flipNever.ReplaceAllString(text, "souvent")
		text = flipNe.ReplaceAllString(text, "")
		text = strings.Join(strings.Fields(text), " ")
		// The flip may be a no-op on sentences without qualifiers; the
		// statement is then still true.
		if text == sentence {
			makeFalse = false
		}
	}
	return TrueFalse{
		Statement: "Vrai ou faux : " + text,
		Answer:    !makeFalse,
	}
}
