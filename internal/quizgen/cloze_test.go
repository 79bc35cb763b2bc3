package quizgen

import (
	"strings"
	"testing"
)

func TestBuildCloze_BlanksAWord(t *testing.T) {
	c, ok := BuildCloze("La force majeure libère le débiteur de son obligation contractuelle.")
	if !ok {
		t.Fatal("expected a cloze")
	}
	if !strings.HasPrefix(c.Question, "Complétez : ") {
		t.Fatalf("question = %q", c.Question)
	}
	if !strings.Contains(c.Question, "____") {
		t.Fatalf("no blank in %q", c.Question)
	}
	if len([]rune(c.Answer)) < 3 {
		t.Fatalf("answer = %q", c.Answer)
	}
	if strings.Contains(c.Question, c.Answer) {
		t.Fatalf("answer %q still visible in %q", c.Answer, c.Question)
	}
}

func TestBuildCloze_RejectsShortSentences(t *testing.T) {
	if _, ok := BuildCloze("Trop court pour un trou."); ok {
		t.Fatal("five words must be rejected")
	}
}

func TestBuildCloze_RejectsTinyWords(t *testing.T) {
	// The word at the gap position is two letters; too small to test.
	if _, ok := BuildCloze("le la à le un de la le un de"); ok {
		t.Fatal("expected rejection when the gap word is too short")
	}
}

func TestBuildTrueFalse_Prefix(t *testing.T) {
	tf := BuildTrueFalse("Le contrat oblige les parties.")
	if !strings.HasPrefix(tf.Statement, "Vrai ou faux : ") {
		t.Fatalf("statement = %q", tf.Statement)
	}
}

func TestBuildTrueFalse_NoQualifierStaysTrue(t *testing.T) {
	// Without toujours/jamais/ne there is nothing to falsify, so the
	// statement must always read true, whatever the coin flip said.
	for range 20 {
		tf := BuildTrueFalse("Le contrat oblige les parties.")
		if !tf.Answer {
			t.Fatalf("unfalsifiable statement reported false: %q", tf.Statement)
		}
	}
}

func TestBuildTrueFalse_FlippedQualifierIsFalse(t *testing.T) {
	// Run until the coin lands on the falsifying branch.
	for range 100 {
		tf := BuildTrueFalse("La loi est toujours applicable.")
		if !tf.Answer {
			if !strings.Contains(tf.Statement, "parfois") {
				t.Fatalf("false statement missing flip: %q", tf.Statement)
			}
			return
		}
	}
	t.Fatal("falsifying branch never taken in 100 runs")
}
