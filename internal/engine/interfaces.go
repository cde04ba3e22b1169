package engine

import (
	"github.com/yang-jeongman/snapmobile/internal/layout"
	"github.com/yang-jeongman/snapmobile/internal/model"
)

// FragmentClassifier assigns a semantic type to every fragment of a
// document.
type FragmentClassifier interface {
	ClassifyBatch(fragments []model.TextFragment, pageHeight float64) []model.ClassifiedObject
}

// LayoutAnalyzer derives per-page geometry and document reading order from
// classified objects.
type LayoutAnalyzer interface {
	AnalyzeLayout(objects []model.ClassifiedObject) layout.DocumentLayout
}

// CardDetector finds card structures in a reading-ordered object stream.
type CardDetector interface {
	DetectCards(ordered []model.ClassifiedObject) []model.Card
}

// LayoutSynthesizer aggregates classified objects and cards into the final
// mobile layout.
type LayoutSynthesizer interface {
	Synthesize(objects []model.ClassifiedObject, cards []model.Card) model.MobileLayout
}
