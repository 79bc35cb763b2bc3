package study

import (
	"reflect"
	"testing"
)

func stepThemes(steps []Step) []string {
	var out []string
	seen := map[string]bool{}
	for _, s := range steps {
		if s.Theme != "" && !seen[s.Theme] {
			seen[s.Theme] = true
			out = append(out, s.Theme)
		}
	}
	return out
}

func TestWeakThemeIndex_LowConfidenceFirst(t *testing.T) {
	themes := []string{"Le contrat", "La nullité", "La prescription"}
	got := WeakThemeIndex(themes, []string{"la nullité"}, nil)
	if got[0] != 1 {
		t.Fatalf("order = %v, low-confidence theme must lead", got)
	}
}

func TestWeakThemeIndex_DuePromptsWeigh(t *testing.T) {
	themes := []string{"Le contrat", "La nullité"}
	due := []string{
		"Quelle est la sanction de la nullité ?",
		"La nullité absolue peut-elle être confirmée ?",
	}
	got := WeakThemeIndex(themes, nil, due)
	if got[0] != 1 {
		t.Fatalf("order = %v, theme with due reviews must lead", got)
	}
}

func TestWeakThemeIndex_HitsCapAtThree(t *testing.T) {
	// Five due prompts on one theme versus low confidence plus two hits
	// on the other: 3 < 2+2, the capped theme loses.
	themes := []string{"Le dol", "La violence"}
	due := []string{
		"le dol 1", "le dol 2", "le dol 3", "le dol 4", "le dol 5",
		"la violence 1", "la violence 2",
	}
	got := WeakThemeIndex(themes, []string{"La violence"}, due)
	if got[0] != 1 {
		t.Fatalf("order = %v, capped hit count must not dominate", got)
	}
}

func TestWeakThemeIndex_TiesKeepOrder(t *testing.T) {
	themes := []string{"A", "B", "C"}
	got := WeakThemeIndex(themes, nil, nil)
	if !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Fatalf("order = %v, ties must keep document order", got)
	}
}

func TestBuildPlan_Shape(t *testing.T) {
	themes := []string{"Le contrat", "La nullité", "La prescription"}
	steps := BuildPlan(themes, 60, nil, nil)

	if steps[0].Type != StepDiagnostic || steps[0].Size != 5 {
		t.Fatalf("first step = %+v", steps[0])
	}
	last := steps[len(steps)-1]
	if last.Type != StepTest || last.Size != 8 {
		t.Fatalf("last step = %+v", last)
	}

	// 60 minutes picks 3 themes, each with read/learn/practice/recall.
	if len(steps) != 1+3*4+1 {
		t.Fatalf("len(steps) = %d", len(steps))
	}
	want := []string{"Le contrat", "La nullité", "La prescription"}
	if got := stepThemes(steps); !reflect.DeepEqual(got, want) {
		t.Fatalf("themes = %v", got)
	}
}

func TestBuildPlan_ShortSessionPicksTwoThemes(t *testing.T) {
	themes := []string{"A", "B", "C", "D"}
	steps := BuildPlan(themes, 30, nil, nil)
	if got := stepThemes(steps); len(got) != 2 {
		t.Fatalf("themes = %v, want 2", got)
	}
}

func TestBuildPlan_LearnMinutes(t *testing.T) {
	steps := BuildPlan([]string{"A", "B", "C"}, 90, nil, nil)
	// 90 minutes, 4 theme budget capped at 3 themes: 90/(3*3) = 10.
	for _, s := range steps {
		if s.Type == StepLearn && s.Minutes != 10 {
			t.Fatalf("learn minutes = %d, want 10", s.Minutes)
		}
	}

	steps = BuildPlan([]string{"A", "B"}, 30, nil, nil)
	// 30/(3*2) = 5, floored to the 6-minute minimum.
	for _, s := range steps {
		if s.Type == StepLearn && s.Minutes != 6 {
			t.Fatalf("learn minutes = %d, want 6", s.Minutes)
		}
	}
}

func TestBuildPlan_WeakThemesLead(t *testing.T) {
	themes := []string{"Le contrat", "La nullité", "La prescription"}
	steps := BuildPlan(themes, 40, []string{"La prescription"}, nil)
	got := stepThemes(steps)
	if len(got) != 2 || got[0] != "La prescription" {
		t.Fatalf("themes = %v, weak theme must lead", got)
	}
}

func TestBuildPlan_NoThemes(t *testing.T) {
	steps := BuildPlan(nil, 60, nil, nil)
	if len(steps) != 2 {
		t.Fatalf("len(steps) = %d, want diagnostic and test only", len(steps))
	}
}

func TestBuildPlan_ZeroDurationDefaults(t *testing.T) {
	themes := []string{"A", "B", "C", "D"}
	steps := BuildPlan(themes, 0, nil, nil)
	if got := stepThemes(steps); len(got) != 3 {
		t.Fatalf("themes = %v, default hour picks 3", got)
	}
}

func TestRecallPrompts(t *testing.T) {
	if len(RecallPrompts) != 3 {
		t.Fatalf("len(RecallPrompts) = %d", len(RecallPrompts))
	}
}
