package sheets

// View type tags carried on the wire. Validation rejects anything else.
const (
	TypeBulletPoints = "bullet_points"
	TypeParagraphs   = "paragraphs"
	TypeDeveloped    = "developed"
)

// ListView is a sheet view whose content is a list: bullet points for
// the short version, paragraphs for the medium one.
type ListView struct {
	Type    string   `json:"type"`
	Content []string `json:"content"`
}

// TextView is the long, developed view: one continuous text.
type TextView struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Sheet is a revision sheet for one theme, in three sizes. The short
// version holds 1 to 5 bullets, the medium one 1 or 2 paragraphs, the
// long one a developed text of at least 100 characters.
type Sheet struct {
	Title         string   `json:"title"`
	ShortVersion  ListView `json:"short_version"`
	MediumVersion ListView `json:"medium_version"`
	LongVersion   TextView `json:"long_version"`
	Citations     []string `json:"citations"`
}

// Batch is the wire envelope for a set of sheets.
type Batch struct {
	Status string  `json:"status"`
	Sheets []Sheet `json:"sheets"`
}
