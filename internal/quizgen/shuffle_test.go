package quizgen

import (
	"reflect"
	"sort"
	"testing"
)

func TestHashString_KnownVectors(t *testing.T) {
	if got := HashString(""); got != 2166136261 {
		t.Fatalf("HashString(\"\") = %d", got)
	}
	// FNV-1a 32-bit test vector.
	if got := HashString("a"); got != 0xe40c292c {
		t.Fatalf("HashString(\"a\") = %#x", got)
	}
	if HashString("contrat") == HashString("Contrat") {
		t.Fatal("hash must be case sensitive")
	}
}

func TestExamSeed_StableAcrossCalls(t *testing.T) {
	a := ExamSeed("Quelle est la définition ?", "un accord de volontés")
	b := ExamSeed("Quelle est la définition ?", "un accord de volontés")
	if a != b {
		t.Fatalf("seeds differ: %d vs %d", a, b)
	}
	if a == ExamSeed("Quelle est la définition ?", "autre réponse") {
		t.Fatal("different answers must produce different seeds")
	}
}

func TestSeededShuffle_Deterministic(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f"}

	first := SeededShuffle(items, 42)
	second := SeededShuffle(items, 42)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed gave %v then %v", first, second)
	}

	other := SeededShuffle(items, 43)
	if reflect.DeepEqual(first, other) {
		t.Fatal("expected different permutations for different seeds")
	}
}

func TestSeededShuffle_PreservesElements(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	out := SeededShuffle(items, 7)

	sortedIn := append([]string(nil), items...)
	sortedOut := append([]string(nil), out...)
	sort.Strings(sortedIn)
	sort.Strings(sortedOut)
	if !reflect.DeepEqual(sortedIn, sortedOut) {
		t.Fatalf("permutation lost elements: %v", out)
	}
}

func TestSeededShuffle_DoesNotMutateInput(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	orig := append([]string(nil), items...)
	_ = SeededShuffle(items, 99)
	if !reflect.DeepEqual(items, orig) {
		t.Fatalf("input mutated: %v", items)
	}
}

func TestSeededShuffle_ZeroSeed(t *testing.T) {
	items := []string{"a", "b", "c"}
	first := SeededShuffle(items, 0)
	second := SeededShuffle(items, 0)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("zero seed must still be deterministic")
	}
}

func TestWithOrder_ExamModeIsReproducible(t *testing.T) {
	it := Item{
		Question: "Quelle est la meilleure définition de « contrat » ?",
		Options:  []string{"un accord de volontés", "une obligation", "un fait juridique", "une sanction"},
		Answer:   SingleIndex(0),
	}

	a := WithOrder(it, true)
	b := WithOrder(it, true)
	if !reflect.DeepEqual(a.Order, b.Order) {
		t.Fatalf("exam order not stable: %v vs %v", a.Order, b.Order)
	}
	if len(a.Order) != len(it.Options) {
		t.Fatalf("order lost options: %v", a.Order)
	}
	// The original item is untouched.
	if it.Order != nil {
		t.Fatal("WithOrder must not mutate its argument")
	}
}
