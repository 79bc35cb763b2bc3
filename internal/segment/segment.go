// Package segment splits raw course text into titled sections.
//
// Segmentation is best-effort and total: it never fails, and always returns
// at least one section. Structure detection degrades in three passes —
// marker headings, free-standing capitalized titles, then a single
// catch-all section holding the whole text.
package segment

import (
	"regexp"
	"strings"
)

// Section is a titled chunk of source text. Sections are immutable once
// returned; a new analysis produces a fresh slice.
type Section struct {
	Title string
	Body  string
}

// DefaultTitle labels text that precedes any detected heading.
const DefaultTitle = "Introduction"

// CatchAllTitle labels the single section returned when no structure
// can be detected at all.
const CatchAllTitle = "Cours"

var (
	// 1-3 leading marker characters followed by text, e.g. "## Le contrat".
	markerHeading = regexp.MustCompile(`^(#{1,3})\s+(.+)$`)

	// An all-caps or numbered standalone line of minimum length,
	// optionally ending with a colon, e.g. "TITRE 2 - LES OBLIGATIONS:".
	capsHeading = regexp.MustCompile(`^[A-Z0-9ÉÈÀÂÊÎÔÛÇŒ][A-Z0-9ÉÈÀÂÊÎÔÛÇŒ\s\-:']{3,}:?\s*$`)
)

// Segment splits raw text into titled sections. Text before the first
// heading is titled "Introduction". The function never returns an empty
// slice: when no heading structure is found it falls back to splitting on
// free-standing capitalized title lines, and finally to a single section
// holding the entire text.
func Segment(raw string) []Section {
	sections := splitOn(raw, func(line string) (string, bool) {
		if m := markerHeading.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[2]), true
		}
		if capsHeading.MatchString(strings.TrimSpace(line)) {
			return strings.TrimSuffix(strings.TrimSpace(line), ":"), true
		}
		return "", false
	})
	if len(sections) >= 2 {
		return sections
	}

	sections = splitOn(raw, func(line string) (string, bool) {
		if isTitleLine(line) {
			return strings.TrimSuffix(strings.TrimSpace(line), ":"), true
		}
		return "", false
	})
	if len(sections) >= 2 {
		return sections
	}

	return []Section{{Title: CatchAllTitle, Body: strings.TrimSpace(raw)}}
}

// splitOn scans lines, starting a new section whenever isHeading matches.
// Sections with an empty body are dropped, except the leading
// "Introduction" block which is only kept when it has content.
func splitOn(raw string, isHeading func(string) (string, bool)) []Section {
	var out []Section
	title := DefaultTitle
	var body []string

	flush := func() {
		b := strings.TrimSpace(strings.Join(body, "\n"))
		if b != "" {
			out = append(out, Section{Title: title, Body: b})
		}
		body = body[:0]
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if t, ok := isHeading(line); ok && t != "" {
			flush()
			title = t
			continue
		}
		body = append(body, line)
	}
	flush()
	return out
}

// isTitleLine reports whether a line looks like a free-standing capitalized
// title: short, starts with an uppercase letter, and carries no sentence
// punctuation.
func isTitleLine(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" || len(s) > 80 {
		return false
	}
	r := []rune(s)
	if !(r[0] >= 'A' && r[0] <= 'Z' || strings.ContainsRune("ÉÈÀÂÊÎÔÛÇŒ", r[0])) {
		return false
	}
	if strings.ContainsAny(s, ".!?,;") {
		return false
	}
	// A bare capitalized word inside running prose is not a title; require
	// either trailing colon, all-caps, or few words.
	if strings.HasSuffix(s, ":") {
		return true
	}
	if s == strings.ToUpper(s) {
		return true
	}
	return len(strings.Fields(s)) <= 6
}
