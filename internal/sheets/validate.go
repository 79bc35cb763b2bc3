package sheets

import (
	"fmt"
	"strings"
)

// StatusOK is the only accepted batch status.
const StatusOK = "ok"

// Result collects every violation found in a batch. OK is true only
// when Errors is empty.
type Result struct {
	OK     bool
	Errors []string
}

// ValidateBatch checks a sheet batch and reports all violations at
// once, one message per broken rule, prefixed with the sheet title.
func ValidateBatch(b Batch) Result {
	var errs []string

	if b.Status != StatusOK {
		errs = append(errs, "status != ok")
	}
	if len(b.Sheets) == 0 {
		errs = append(errs, "sheets empty")
	}

	for _, s := range b.Sheets {
		errs = append(errs, validateSheet(s)...)
	}

	return Result{OK: len(errs) == 0, Errors: errs}
}

// ValidateSheet checks a single sheet.
func ValidateSheet(s Sheet) Result {
	errs := validateSheet(s)
	return Result{OK: len(errs) == 0, Errors: errs}
}

func validateSheet(s Sheet) []string {
	var errs []string

	title := s.Title
	if strings.TrimSpace(title) == "" {
		errs = append(errs, "missing title")
		title = "?"
	}

	if s.ShortVersion.Type != TypeBulletPoints {
		errs = append(errs, fmt.Sprintf("%s: short_version.type must be bullet_points", title))
	}
	if n := len(s.ShortVersion.Content); n == 0 || n > 5 {
		errs = append(errs, fmt.Sprintf("%s: short_version.content 1..5 bullets", title))
	}

	if s.MediumVersion.Type != TypeParagraphs {
		errs = append(errs, fmt.Sprintf("%s: medium_version.type must be paragraphs", title))
	}
	if n := len(s.MediumVersion.Content); n < 1 || n > 2 {
		errs = append(errs, fmt.Sprintf("%s: medium_version.content 1..2 paragraphs", title))
	}

	if s.LongVersion.Type != TypeDeveloped {
		errs = append(errs, fmt.Sprintf("%s: long_version.type must be developed with string content", title))
	}
	if len(s.LongVersion.Content) < 100 {
		errs = append(errs, fmt.Sprintf("%s: long_version too short (<100 chars)", title))
	}

	if s.Citations == nil {
		errs = append(errs, fmt.Sprintf("%s: citations missing", title))
	}

	return errs
}
