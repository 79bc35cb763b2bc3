package quizgen

import (
	"sort"

	"github.com/nourlabs/coach/internal/lexical"
)

// Score computes the post-hoc difficulty bucket and reliability tier of
// an assembled item against its proof sentence, and returns a copy of
// the item with Meta attached. A learner flag forces red regardless of
// the computed tier.
func Score(it Item, proof lexical.ProofMatch) Item {
	meta := &Meta{
		Difficulty: scoreDifficulty(it, proof),
		Proof:      proof.Text,
	}
	meta.Reliability, meta.Support = scoreReliability(it, proof)
	if it.Flagged {
		meta.Reliability = ReliabilityRed
	}
	it.Meta = meta
	return it
}

// scoreDifficulty combines a question+answer length score with the mean
// similarity of the wrong options to the proof text: long stems with
// distractors close to the source read harder.
func scoreDifficulty(it Item, proof lexical.ProofMatch) Difficulty {
	length := len([]rune(it.Question)) + len([]rune(it.CorrectText()))
	lenScore := 0.2
	switch {
	case length > 220:
		lenScore = 0.6
	case length > 140:
		lenScore = 0.4
	}

	correct := it.CorrectText()
	sum, n := 0.0, 0
	for _, o := range it.Options {
		if o == correct {
			continue
		}
		sum += lexical.Jaccard(o, proof.Text)
		n++
	}
	avg := 0.0
	if n > 0 {
		avg = sum / float64(n)
	}

	switch score := lenScore + avg; {
	case score > 0.55:
		return DifficultyHard
	case score > 0.3:
		return DifficultyMedium
	default:
		return DifficultyEasy
	}
}

// scoreReliability ranks every option by similarity to the proof text and
// classifies the gap between the correct option and its closest rival.
func scoreReliability(it Item, proof lexical.ProofMatch) (Reliability, []OptionScore) {
	correct := it.CorrectText()
	scores := make([]OptionScore, len(it.Options))
	for i, o := range it.Options {
		scores[i] = OptionScore{Option: o, Score: lexical.Jaccard(o, proof.Text)}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })

	ans, second := 0.0, 0.0
	seenAnswer := false
	for _, s := range scores {
		if !seenAnswer && s.Option == correct {
			ans = s.Score
			seenAnswer = true
			continue
		}
		if s.Score > second {
			second = s.Score
		}
	}

	gap := ans - second
	if gap < 0 {
		gap = 0
	}
	switch {
	case ans >= 0.7 && gap >= 0.25:
		return ReliabilityGreen, scores
	case ans >= 0.5 && gap >= 0.1:
		return ReliabilityOrange, scores
	default:
		return ReliabilityRed, scores
	}
}
