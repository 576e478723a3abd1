package models

// Border styles the card editor offers
type BorderStyle string

const (
	BorderSolid  BorderStyle = "solid"
	BorderDashed BorderStyle = "dashed"
	BorderDotted BorderStyle = "dotted"
	BorderDouble BorderStyle = "double"
)

// Outline is a level-gated decorative ring around a link card.
type Outline string

const (
	OutlineNone     Outline = "none"
	OutlineBronzo   Outline = "bronzo"
	OutlineArgento  Outline = "argento"
	OutlineOro      Outline = "oro"
	OutlineDiamante Outline = "diamante"
)

// LinkStyle describes how a link card is drawn.
type LinkStyle struct {
	BorderColor string      `json:"borderColor"`
	BorderWidth int         `json:"borderWidth"` // 1..8
	BorderStyle BorderStyle `json:"borderStyle"`
	Outline     Outline     `json:"outline,omitempty"`
}

// LinkItem is a saved bookmark. Owned by the link service; nothing else
// mutates it directly.
type LinkItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	Style       LinkStyle `json:"style"`
}

// DefaultLinks are the example cards shown before the user saves anything.
// They are not persisted until the first real mutation.
var DefaultLinks = []LinkItem{
	{
		ID:          "1",
		Name:        "Google",
		URL:         "https://google.com",
		Description: "Motore di ricerca",
		Style: LinkStyle{
			BorderColor: "#3b82f6",
			BorderWidth: 2,
			BorderStyle: BorderSolid,
		},
	},
	{
		ID:          "2",
		Name:        "GitHub",
		URL:         "https://github.com",
		Description: "Repository codice",
		Style: LinkStyle{
			BorderColor: "#10b981",
			BorderWidth: 1,
			BorderStyle: BorderDashed,
		},
	},
}
