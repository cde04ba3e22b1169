package model

// CardCategory is the coarse domain category inferred for a detected card.
type CardCategory string

// Card category constants. CategoryGeneral is the fallback when no keyword
// list matches the card's opening fragment.
const (
	CategoryEducation   CardCategory = "education"
	CategoryTransport   CardCategory = "transport"
	CategoryWelfare     CardCategory = "welfare"
	CategoryDevelopment CardCategory = "development"
	CategoryCulture     CardCategory = "culture"
	CategorySafety      CardCategory = "safety"
	CategoryEconomy     CardCategory = "economy"
	CategoryFamily      CardCategory = "family"
	CategoryGeneral     CardCategory = "general"
)

// Card is a sequentially detected group of fragments anchored by a
// heading-like opening fragment. Content may be empty when two opening
// fragments are adjacent; that is a valid card, not an error.
type Card struct {
	Category CardCategory       `json:"category"`
	Header   ClassifiedObject   `json:"header"`
	Content  []ClassifiedObject `json:"content"`
}

// Title returns the card's opening text.
func (c Card) Title() string {
	return c.Header.Content
}
