package quizgen

import "testing"

func respondItem() Item {
	return Item{
		Question:   "Quelle sanction vise l'inexécution ?",
		Options:    []string{"la résolution", "la nullité", "la caducité", "l'inopposabilité"},
		Answer:     SingleIndex(0),
		Difficulty: DifficultyEasy,
		Bloom:      BloomRecall,
	}
}

func TestRespond_SingleAnswer(t *testing.T) {
	it := respondItem()

	ok := Respond(it, []string{"la résolution"})
	if ok.Answered != AnsweredCorrect {
		t.Fatalf("answered = %q", ok.Answered)
	}

	ko := Respond(it, []string{"la nullité"})
	if ko.Answered != AnsweredIncorrect {
		t.Fatalf("answered = %q", ko.Answered)
	}

	// The original stays untouched.
	if it.Answered != AnsweredNone {
		t.Fatal("Respond must not mutate its argument")
	}
}

func TestRespond_FoldsCaseAndSpace(t *testing.T) {
	it := respondItem()
	got := Respond(it, []string{"  LA RÉSOLUTION "})
	if got.Answered != AnsweredCorrect {
		t.Fatalf("folded selection must match, got %q", got.Answered)
	}
}

func TestRespond_MultiAnswerNeedsSetEquality(t *testing.T) {
	it := respondItem()
	it.Answer = MultiIndex(0, 2)

	if got := Respond(it, []string{"la caducité", "la résolution"}); got.Answered != AnsweredCorrect {
		t.Fatalf("order must not matter, got %q", got.Answered)
	}
	if got := Respond(it, []string{"la résolution"}); got.Answered != AnsweredIncorrect {
		t.Fatal("partial selection must be incorrect")
	}
	if got := Respond(it, []string{"la résolution", "la caducité", "la nullité"}); got.Answered != AnsweredIncorrect {
		t.Fatal("extra selection must be incorrect")
	}
}

func TestResetResponse(t *testing.T) {
	it := Respond(respondItem(), []string{"la résolution"})
	if got := ResetResponse(it); got.Answered != AnsweredNone {
		t.Fatalf("answered = %q", got.Answered)
	}
}

func TestFlag_ForcesRedOnMeta(t *testing.T) {
	it := respondItem()
	it.Meta = &Meta{Reliability: ReliabilityGreen}

	flagged := Flag(it)
	if !flagged.Flagged {
		t.Fatal("Flagged not set")
	}
	if flagged.Meta.Reliability != ReliabilityRed {
		t.Fatalf("reliability = %s", flagged.Meta.Reliability)
	}
	// The original meta is untouched.
	if it.Meta.Reliability != ReliabilityGreen {
		t.Fatal("Flag must not mutate the original meta")
	}
}

func TestAnswer_Indices(t *testing.T) {
	if got := SingleIndex(2).Indices(); len(got) != 1 || got[0] != 2 {
		t.Fatalf("SingleIndex(2).Indices() = %v", got)
	}
	if got := MultiIndex(1, 3, 1).Indices(); len(got) != 2 {
		t.Fatalf("duplicates must collapse, got %v", got)
	}
	// Zero value falls back to the first option.
	var zero Answer
	if got := zero.Indices(); len(got) != 1 || got[0] != 0 {
		t.Fatalf("zero Answer indices = %v", got)
	}
	if !MultiIndex(1, 3).Contains(3) || MultiIndex(1, 3).Contains(0) {
		t.Fatal("Contains misreports membership")
	}
}

func TestCorrectOptions(t *testing.T) {
	it := respondItem()
	it.Answer = MultiIndex(1, 3)
	got := it.CorrectOptions()
	if len(got) != 2 || got[0] != "la nullité" || got[1] != "l'inopposabilité" {
		t.Fatalf("CorrectOptions() = %v", got)
	}

	it.Answer = SingleIndex(9)
	if it.CorrectText() != "" {
		t.Fatal("out-of-range answer must yield empty text")
	}
}
