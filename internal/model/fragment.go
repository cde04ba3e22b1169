// Package model defines the core data structures for the snapmobile pipeline.
package model

// FontStyle represents the weight/slant of a text fragment's font.
type FontStyle string

// Font style constants.
const (
	FontRegular    FontStyle = "regular"
	FontBold       FontStyle = "bold"
	FontItalic     FontStyle = "italic"
	FontBoldItalic FontStyle = "bold_italic"
)

// TextAlignment represents horizontal text alignment.
type TextAlignment string

// Text alignment constants.
const (
	AlignLeft    TextAlignment = "left"
	AlignCenter  TextAlignment = "center"
	AlignRight   TextAlignment = "right"
	AlignJustify TextAlignment = "justify"
)

// TextStyle carries the style metadata reported by the extraction service.
type TextStyle struct {
	FontName  string        `json:"font_name,omitempty"`
	FontStyle FontStyle     `json:"font_style,omitempty"`
	Color     string        `json:"color,omitempty"`
	Alignment TextAlignment `json:"alignment,omitempty"`
	FontSize  float64       `json:"font_size,omitempty"`
}

// BoundingBox is the position of a fragment in PDF page coordinates,
// origin at the top-left corner.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Page   int     `json:"page"`
}

// Overlaps reports whether more than threshold of this box's area is
// covered by other.
func (b BoundingBox) Overlaps(other BoundingBox, threshold float64) bool {
	xOverlap := maxF(0, minF(b.X+b.Width, other.X+other.Width)-maxF(b.X, other.X))
	yOverlap := maxF(0, minF(b.Y+b.Height, other.Y+other.Height)-maxF(b.Y, other.Y))
	area := b.Width * b.Height
	if area <= 0 {
		return false
	}
	return xOverlap*yOverlap/area > threshold
}

// TextFragment is one extracted text unit with optional style and geometry.
// Fragments are immutable once constructed; the pipeline never writes to them.
type TextFragment struct {
	Text        string       `json:"text"`
	Style       *TextStyle   `json:"style,omitempty"`
	BoundingBox *BoundingBox `json:"bbox,omitempty"`
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
