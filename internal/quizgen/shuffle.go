package quizgen

import "math/rand/v2"

// HashString computes the FNV-1a 32-bit hash of s. Used for stable item
// ids and exam-mode shuffle seeds.
func HashString(s string) uint32 {
	h := uint32(2166136261)
	for _, b := range []byte(s) {
		h ^= uint32(b)
		h *= 16777619
	}
	return h
}

// ExamSeed derives the deterministic shuffle seed for a question/answer
// pair, so exam mode reproduces the same option order across sessions
// without storing it.
func ExamSeed(question, answer string) uint32 {
	return HashString(question + "|" + answer)
}

// SeededShuffle returns a permutation of items determined entirely by
// seed: identical (items, seed) pairs yield identical output across
// processes and restarts. The input slice is not modified.
func SeededShuffle[T any](items []T, seed uint32) []T {
	out := make([]T, len(items))
	copy(out, items)
	next := lcg(seed)
	for i := len(out) - 1; i > 0; i-- {
		j := int(next() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Shuffle returns a fresh random permutation of items, for variety across
// renders outside exam mode. The input slice is not modified.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// lcg returns a linear-congruential generator producing floats in [0,1).
// A zero seed is bumped to 1 so the stream never degenerates.
func lcg(seed uint32) func() float64 {
	s := seed
	if s == 0 {
		s = 1
	}
	return func() float64 {
		s = s*1664525 + 1013904223
		return float64(s) / 4294967296
	}
}

// WithOrder returns a copy of it with the display permutation recomputed:
// seeded by question/answer in exam mode, freshly random otherwise.
func WithOrder(it Item, examMode bool) Item {
	if examMode {
		it.Order = SeededShuffle(it.Options, ExamSeed(it.Question, it.CorrectText()))
	} else {
		it.Order = Shuffle(it.Options)
	}
	return it
}
