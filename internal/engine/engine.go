// Package engine orchestrates the document conversion pipeline: classify,
// analyze layout, detect cards, synthesize the mobile layout.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yang-jeongman/snapmobile/internal/common"
	"github.com/yang-jeongman/snapmobile/internal/layout"
	"github.com/yang-jeongman/snapmobile/internal/model"
)

// Config holds configuration options for the conversion engine.
type Config struct {
	// MaxFragments bounds per-document input size as a defensive guard.
	MaxFragments int `mapstructure:"max_fragments"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{MaxFragments: 10000}
}

// Validate rejects unusable limits at construction time.
func (c Config) Validate() error {
	if c.MaxFragments <= 0 {
		return common.NewConfigError("engine.max_fragments", "must be positive")
	}
	return nil
}

// Result carries every artifact of one conversion: the per-fragment
// classifications with HTML hints, the page layouts, the detected cards and
// the final mobile layout.
type Result struct {
	Objects []model.ClassifiedObject `json:"objects"`
	Layout  layout.DocumentLayout    `json:"layout"`
	Cards   []model.Card             `json:"cards"`
	Mobile  model.MobileLayout       `json:"mobile"`
}

// Engine runs the four pipeline stages in order. It holds no per-document
// state; one engine serves any number of documents.
type Engine struct {
	classifier   FragmentClassifier
	analyzer     LayoutAnalyzer
	detector     CardDetector
	synthesizer  LayoutSynthesizer
	maxFragments int
}

// New creates an engine with the given stages and the default configuration.
func New(classifier FragmentClassifier, analyzer LayoutAnalyzer, detector CardDetector, synthesizer LayoutSynthesizer) (*Engine, error) {
	return NewWithConfig(classifier, analyzer, detector, synthesizer, DefaultConfig())
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(classifier FragmentClassifier, analyzer LayoutAnalyzer, detector CardDetector, synthesizer LayoutSynthesizer, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if classifier == nil || analyzer == nil || detector == nil || synthesizer == nil {
		return nil, common.NewConfigError("engine", "all pipeline stages are required")
	}
	return &Engine{
		classifier:   classifier,
		analyzer:     analyzer,
		detector:     detector,
		synthesizer:  synthesizer,
		maxFragments: cfg.MaxFragments,
	}, nil
}

// Convert runs the full pipeline over one document's fragments. The context
// is checked between stages; the stages themselves do no I/O.
func (e *Engine) Convert(ctx context.Context, fragments []model.TextFragment, pageHeight float64) (*Result, error) {
	if len(fragments) > e.maxFragments {
		return nil, fmt.Errorf("document has %d fragments, limit is %d: %w",
			len(fragments), e.maxFragments, common.ErrTooManyFragments)
	}

	slog.Info("Starting conversion", "fragments", len(fragments), "page_height", pageHeight)

	objects := e.classifier.ClassifyBatch(fragments, pageHeight)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := e.analyzer.AnalyzeLayout(objects)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cards := e.detector.DetectCards(doc.Order)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mobileLayout := e.synthesizer.Synthesize(doc.Order, cards)

	slog.Info("Conversion complete",
		"objects", len(objects),
		"pages", len(doc.Pages),
		"cards", len(cards),
		"pledges", len(mobileLayout.PledgeCards))

	return &Result{
		Objects: objects,
		Layout:  doc,
		Cards:   cards,
		Mobile:  mobileLayout,
	}, nil
}
