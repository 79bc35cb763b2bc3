package lexical

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	got := Tokenize("Le contrat, dit « synallagmatique », oblige-t-il ?")
	want := []string{"le", "contrat", "dit", "synallagmatique", "oblige-t-il"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize() = %v", got)
	}
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"le contrat oblige", "le contrat oblige", 1},
		{"le contrat", "la nullité", 0},
		{"", "", 0},
		{"a b", "b c", 1.0 / 3.0},
	}
	for _, tt := range tests {
		if got := Jaccard(tt.a, tt.b); got != tt.want {
			t.Fatalf("Jaccard(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestJaccard_Symmetric(t *testing.T) {
	a, b := "la force majeure libère", "la force obligatoire du contrat"
	if Jaccard(a, b) != Jaccard(b, a) {
		t.Fatal("Jaccard must be symmetric")
	}
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("Première phrase. Deuxième phrase !  Troisième\nphrase ?")
	want := []string{"Première phrase.", "Deuxième phrase !", "Troisième phrase ?"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitSentences() = %v", got)
	}
}

func TestSplitSentences_CollapsesLineBreaks(t *testing.T) {
	got := SplitSentences("Une phrase\ncoupée par un retour\nà la ligne.")
	if len(got) != 1 {
		t.Fatalf("expected 1 sentence, got %v", got)
	}
}

func TestSplitSentences_Empty(t *testing.T) {
	if got := SplitSentences("   "); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestFindProof(t *testing.T) {
	pool := []string{
		"Le contrat oblige les parties.",
		"La force majeure libère le débiteur.",
		"Une phrase sans rapport.",
	}
	got := FindProof("la force majeure libère", pool)
	if got.Text != pool[1] {
		t.Fatalf("proof = %q", got.Text)
	}
	if got.Score <= 0 {
		t.Fatalf("score = %f", got.Score)
	}
}

func TestFindProof_EmptyPool(t *testing.T) {
	got := FindProof("clé", nil)
	if got.Text != "" || got.Score != 0 {
		t.Fatalf("expected zero match, got %+v", got)
	}
}

func TestFindProof_TiesKeepFirst(t *testing.T) {
	pool := []string{"alpha beta", "beta alpha"}
	if got := FindProof("alpha beta", pool); got.Text != pool[0] {
		t.Fatalf("tie must keep the first sentence, got %q", got.Text)
	}
}

func TestRankSentences_KeywordWeighted(t *testing.T) {
	text := "Le contrat oblige les parties. La pluie tombe souvent. Le contrat se forme par un accord."
	got := RankSentences(text, []string{"contrat"})
	if len(got) != 3 {
		t.Fatalf("expected 3 sentences, got %v", got)
	}
	if got[2] != "La pluie tombe souvent." {
		t.Fatalf("keyword-free sentence must rank last, got %v", got)
	}
}

func TestRankSentences_NoKeywordsKeepsOrder(t *testing.T) {
	text := "Première. Deuxième. Troisième."
	got := RankSentences(text, nil)
	want := []string{"Première.", "Deuxième.", "Troisième."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("RankSentences() = %v", got)
	}
}

func TestRankSentences_StableForTies(t *testing.T) {
	text := "Le contrat A. Le contrat B."
	got := RankSentences(text, []string{"contrat"})
	if got[0] != "Le contrat A." {
		t.Fatalf("ties must keep document order, got %v", got)
	}
}
