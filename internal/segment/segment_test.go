package segment

import "testing"

func TestSegment_MarkdownHeadings(t *testing.T) {
	raw := `Préambule avant le premier titre.

# Le contrat
Le contrat est un accord de volontés.

## La nullité
La nullité sanctionne les conditions de formation.`

	got := Segment(raw)
	if len(got) != 3 {
		t.Fatalf("expected 3 sections, got %d: %+v", len(got), got)
	}
	if got[0].Title != DefaultTitle {
		t.Fatalf("leading text must be titled %q, got %q", DefaultTitle, got[0].Title)
	}
	if got[1].Title != "Le contrat" || got[2].Title != "La nullité" {
		t.Fatalf("titles = %q, %q", got[1].Title, got[2].Title)
	}
	if got[1].Body != "Le contrat est un accord de volontés." {
		t.Fatalf("body = %q", got[1].Body)
	}
}

func TestSegment_CapsHeadings(t *testing.T) {
	raw := `TITRE 1 - LES OBLIGATIONS:
L'obligation est un lien de droit.

TITRE 2 - LES CONTRATS
Le contrat naît d'un accord.`

	got := Segment(raw)
	if len(got) != 2 {
		t.Fatalf("expected 2 sections, got %d: %+v", len(got), got)
	}
	if got[0].Title != "TITRE 1 - LES OBLIGATIONS" {
		t.Fatalf("colon must be stripped, got %q", got[0].Title)
	}
}

func TestSegment_TitleLineFallback(t *testing.T) {
	raw := `La force majeure
Un événement imprévisible et irrésistible libère le débiteur, selon la loi.

Les sanctions
L'exécution forcée reste la règle, sous conditions.`

	got := Segment(raw)
	if len(got) != 2 {
		t.Fatalf("expected 2 sections, got %d: %+v", len(got), got)
	}
	if got[0].Title != "La force majeure" || got[1].Title != "Les sanctions" {
		t.Fatalf("titles = %q, %q", got[0].Title, got[1].Title)
	}
}

func TestSegment_CatchAll(t *testing.T) {
	raw := "du texte sans structure, en minuscules, avec des phrases. rien d'autre."
	got := Segment(raw)
	if len(got) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got))
	}
	if got[0].Title != CatchAllTitle {
		t.Fatalf("title = %q", got[0].Title)
	}
	if got[0].Body == "" {
		t.Fatal("catch-all body empty")
	}
}

func TestSegment_EmptyInput(t *testing.T) {
	got := Segment("")
	if len(got) != 1 || got[0].Title != CatchAllTitle {
		t.Fatalf("expected single catch-all section, got %+v", got)
	}
}

func TestSegment_DropsEmptySections(t *testing.T) {
	raw := `# Premier titre
# Second titre
Corps du second.

# Troisième titre
Corps du troisième.`

	got := Segment(raw)
	if len(got) != 2 {
		t.Fatalf("expected 2 sections (empty ones dropped), got %+v", got)
	}
	if got[0].Title != "Second titre" || got[1].Title != "Troisième titre" {
		t.Fatalf("titles = %q, %q", got[0].Title, got[1].Title)
	}
}

func TestIsTitleLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"La force majeure", true},
		{"SECTION FINALE", true},
		{"Les sanctions de l'inexécution:", true},
		{"Une phrase complète, avec ponctuation.", false},
		{"minuscule en tête", false},
		{"", false},
		{"Un titre vraiment beaucoup trop long pour être une ligne de titre plausible dans un cours", false},
	}
	for _, tt := range tests {
		if got := isTitleLine(tt.line); got != tt.want {
			t.Fatalf("isTitleLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
