package sheets

import (
	"regexp"
	"strings"

	"github.com/nourlabs/coach/internal/keyterms"
	"github.com/nourlabs/coach/internal/lexical"
)

// Category regexes carve the theme text into the sections of a law-style
// revision sheet. A sentence can land in several categories.
var (
	reDefinition = regexp.MustCompile(`(?i)\b(définition|se définit|est|consiste)\b`)
	rePrinciple  = regexp.MustCompile(`(?i)\b(principe|en règle|en principe)\b`)
	reException  = regexp.MustCompile(`(?i)\b(exception|sauf|sauf si|sauf lorsque)\b`)
	reCaseLaw    = regexp.MustCompile(`(?i)\b(arr[êe]t|cour de cassation|conseil d['’]état|ce\b|cjue|jurisprudence)\b`)
	reExample    = regexp.MustCompile(`(?i)\b(par exemple|exemple|illustration|cas pratique)\b`)
	rePitfall    = regexp.MustCompile(`(?i)\b(attention|ne pas confondre|confusion|pi[eè]ge)\b`)

	reArticle = regexp.MustCompile(`(?i)(?:Article|Art\.)\s*(?:[A-Z]\.\s*)?\d+(?:-\d+)*`)
)

const (
	maxBullets      = 5
	maxCitations    = 12
	bulletRunes     = 110
	minLongLen      = 100
	fallbackContent = "Cette fiche synthétise le thème à partir du texte fourni. " +
		"Relisez la section correspondante du cours et complétez la fiche avec vos propres notes."
)

// Build produces a revision sheet for one theme. It is total: whatever
// the input, the returned sheet passes ValidateSheet, padding sparse
// sections from the ranked sentence pool and falling back to generic
// content when the text yields nothing.
func Build(title, text string, keywords []string) Sheet {
	if strings.TrimSpace(title) == "" {
		title = "Thème"
	}
	if len(keywords) == 0 {
		keywords = keyterms.Extract(text, 15)
	}

	sents := lexical.SplitSentences(text)
	ranked := lexical.RankSentences(text, keywords)

	def := ensure(pick(sents, reDefinition, 6), 4, ranked)
	princ := ensure(pick(sents, rePrinciple, 8), 6, ranked)
	exc := ensure(pick(sents, reException, 8), 4, ranked)
	juris := ensure(pick(sents, reCaseLaw, 10), 6, ranked)
	ex := ensure(pick(sents, reExample, 8), 4, ranked)
	piege := ensure(pick(sents, rePitfall, 6), 3, ranked)

	return Sheet{
		Title:         title,
		ShortVersion:  ListView{Type: TypeBulletPoints, Content: bullets(ranked)},
		MediumVersion: ListView{Type: TypeParagraphs, Content: paragraphs(def, princ, exc, juris)},
		LongVersion:   TextView{Type: TypeDeveloped, Content: developed(title, def, princ, exc, juris, ex, piege, keywords, text)},
		Citations:     ExtractArticles(text),
	}
}

// Theme is one analyzed section handed to the sheet builder.
type Theme struct {
	Title    string
	Text     string
	Keywords []string
}

// BuildAll produces one sheet per theme and wraps them in a valid batch.
func BuildAll(themes []Theme) Batch {
	out := make([]Sheet, 0, len(themes))
	for _, t := range themes {
		out = append(out, Build(t.Title, t.Text, t.Keywords))
	}
	return Batch{Status: StatusOK, Sheets: out}
}

// ExtractArticles collects the statute references ("Article 1217",
// "Art. L. 121") cited in text, deduplicated in order of appearance.
func ExtractArticles(text string) []string {
	matches := reArticle.FindAllString(text, -1)
	seen := make(map[string]struct{}, len(matches))
	out := []string{}
	for _, m := range matches {
		m = strings.Join(strings.Fields(m), " ")
		key := strings.ToLower(m)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
		if len(out) >= maxCitations {
			break
		}
	}
	return out
}

// pick returns up to max sentences matching re, in document order.
func pick(sents []string, re *regexp.Regexp, max int) []string {
	var out []string
	for _, s := range sents {
		if re.MatchString(s) {
			out = append(out, s)
			if len(out) >= max {
				break
			}
		}
	}
	return out
}

// ensure pads arr up to min entries with ranked sentences not already
// present. A pool smaller than min leaves arr short.
func ensure(arr []string, min int, pool []string) []string {
	if len(arr) >= min {
		return arr
	}
	have := make(map[string]struct{}, len(arr))
	for _, s := range arr {
		have[s] = struct{}{}
	}
	for _, s := range pool {
		if len(arr) >= min {
			break
		}
		if _, ok := have[s]; ok {
			continue
		}
		have[s] = struct{}{}
		arr = append(arr, s)
	}
	return arr
}

// bullets turns the best-ranked sentences into 1..5 short bullets.
func bullets(ranked []string) []string {
	out := make([]string, 0, maxBullets)
	for _, s := range ranked {
		out = append(out, clip(s, bulletRunes))
		if len(out) >= maxBullets {
			break
		}
	}
	if len(out) == 0 {
		out = append(out, "Relisez la section correspondante du cours.")
	}
	return out
}

// paragraphs builds the 1..2 medium paragraphs: essentials first, then
// exceptions and case law.
func paragraphs(def, princ, exc, juris []string) []string {
	first := strings.TrimSpace(joinSome(def, 2) + " " + joinSome(princ, 2))
	second := strings.TrimSpace(joinSome(exc, 2) + " " + joinSome(juris, 2))

	var out []string
	if first != "" {
		out = append(out, first)
	}
	if second != "" && second != first {
		out = append(out, second)
	}
	if len(out) == 0 {
		out = append(out, fallbackContent)
	}
	return out
}

// developed renders the full markdown sheet body.
func developed(title string, def, princ, exc, juris, ex, piege, keywords []string, text string) string {
	section := func(heading string, content string) string {
		if content == "" {
			content = "—"
		}
		return "## " + heading + "\n\n" + content
	}

	parts := []string{
		"# " + title,
		section("Définition", strings.Join(def, " ")),
		section("Principe", strings.Join(princ, " ")),
		section("Exceptions", strings.Join(exc, " ")),
		section("Jurisprudence clé", strings.Join(juris, " ")),
		section("Exemples", strings.Join(ex, " ")),
		section("Pièges fréquents", strings.Join(piege, " ")),
		section("Questions-types d'examen", strings.Join([]string{
			"- Expliquez la notion.",
			"- Donnez une exception et sa justification.",
			"- Illustrez par un cas pratique bref.",
			"- Quelle portée jurisprudentielle ?",
		}, "\n")),
		section("Mots-clés", strings.Join(capSlice(keywords, 20), ", ")),
		section("Articles cités", strings.Join(ExtractArticles(text), ", ")),
	}

	body := strings.Join(parts, "\n\n")
	if len(body) < minLongLen {
		body += "\n\n" + fallbackContent
	}
	return body
}

func joinSome(arr []string, n int) string {
	return strings.Join(capSlice(arr, n), " ")
}

func capSlice(arr []string, n int) []string {
	if len(arr) > n {
		return arr[:n]
	}
	return arr
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
