package classifier

import (
	"fmt"
	"strings"
	"sync"

	"github.com/yang-jeongman/snapmobile/internal/model"
)

// DefaultPageHeight is A4 at 72 DPI, used when the caller supplies no page
// height for position-based rules.
const DefaultPageHeight = 842.0

// Classifier evaluates an immutable rule table against text fragments.
// Concurrent Classify calls across documents are safe; the telemetry log is
// the only mutable state and is guarded internally.
type Classifier struct {
	hints       map[model.ObjectType]model.HTMLHint
	rules       []compiledRule
	mu          sync.Mutex
	corrections []model.Correction
	history     []observation
}

// observation is one classification outcome kept for statistics.
type observation struct {
	objType    model.ObjectType
	confidence float64
}

// New creates a classifier from the given rule table. The table is validated
// and compiled once; a malformed rule fails here, never per call.
func New(rules []Rule) (*Classifier, error) {
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	return &Classifier{
		rules: compiled,
		hints: DefaultHints(),
	}, nil
}

// Classify assigns a semantic type and confidence to one fragment.
//
// Rules are evaluated independently; among the survivors the highest priority
// wins, ties break on higher confidence, and a full tie keeps the earlier
// rule in table order, so the result is deterministic for a fixed table.
// No survivor yields (paragraph, 0.5); empty or whitespace-only text yields
// (paragraph, 0.0).
func (c *Classifier) Classify(text string, style *model.TextStyle, bbox *model.BoundingBox, pageHeight float64) (model.ObjectType, float64) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.TypeParagraph, 0.0
	}
	if pageHeight <= 0 {
		pageHeight = DefaultPageHeight
	}

	bestIdx := -1
	bestConfidence := 0.0
	for i := range c.rules {
		confidence, ok := c.evaluate(&c.rules[i], text, style, bbox, pageHeight)
		if !ok {
			continue
		}
		if bestIdx < 0 ||
			c.rules[i].Priority > c.rules[bestIdx].Priority ||
			(c.rules[i].Priority == c.rules[bestIdx].Priority && confidence > bestConfidence) {
			bestIdx = i
			bestConfidence = confidence
		}
	}

	if bestIdx < 0 {
		return model.TypeParagraph, 0.5
	}
	return c.rules[bestIdx].Type, bestConfidence
}

// evaluate scores one rule against a fragment. A false return means the rule
// was hard-rejected by a content or color gate. Conditions whose data is
// missing (no style, no bbox) are skipped entirely, not failed.
func (c *Classifier) evaluate(r *compiledRule, text string, style *model.TextStyle, bbox *model.BoundingBox, pageHeight float64) (float64, bool) {
	confidence := r.BaseConfidence
	met, total := 0, 0

	if r.content != nil {
		total++
		if !r.content.MatchString(text) {
			return 0, false
		}
		met++
		confidence *= 1.2
	}

	if r.exclude != nil && r.exclude.MatchString(text) {
		return 0, false
	}

	if style != nil {
		if r.MinFontSize != nil {
			total++
			if style.FontSize >= *r.MinFontSize {
				met++
			} else {
				confidence *= 0.5
			}
		}
		if r.MaxFontSize != nil {
			total++
			if style.FontSize <= *r.MaxFontSize {
				met++
			} else {
				confidence *= 0.5
			}
		}
		if r.FontStyle != nil {
			total++
			if style.FontStyle == *r.FontStyle {
				met++
				confidence *= 1.1
			} else {
				confidence *= 0.7
			}
		}
		if r.color != nil {
			total++
			if !r.color.MatchString(style.Color) {
				return 0, false
			}
			met++
			confidence *= 1.3
		}
	}

	if bbox != nil && r.Position != "" {
		total++
		rel := bbox.Y / pageHeight
		switch r.Position {
		case PositionTop:
			if rel < 0.2 {
				met++
				confidence *= 1.1
			}
		case PositionCenter:
			if rel > 0.3 && rel < 0.7 {
				met++
			}
		case PositionBottom:
			if rel > 0.8 {
				met++
				confidence *= 1.1
			}
		}
	}

	if total > 0 {
		confidence *= 0.5 + 0.5*float64(met)/float64(total)
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence, true
}

// ClassifyBatch classifies a document's fragments in order, attaching IDs and
// HTML rendering hints.
func (c *Classifier) ClassifyBatch(fragments []model.TextFragment, pageHeight float64) []model.ClassifiedObject {
	results := make([]model.ClassifiedObject, 0, len(fragments))
	observations := make([]observation, 0, len(fragments))

	for i, frag := range fragments {
		objType, confidence := c.Classify(frag.Text, frag.Style, frag.BoundingBox, pageHeight)

		obj := model.ClassifiedObject{
			ID:         fmt.Sprintf("obj_%d", i),
			Type:       objType,
			Content:    strings.TrimSpace(frag.Text),
			Style:      frag.Style,
			Confidence: confidence,
			HTMLHint:   c.hint(objType),
		}
		if frag.BoundingBox != nil {
			obj.BoundingBox = *frag.BoundingBox
		}
		results = append(results, obj)
		observations = append(observations, observation{objType: objType, confidence: confidence})
	}

	c.mu.Lock()
	c.history = append(c.history, observations...)
	c.mu.Unlock()

	return results
}

func (c *Classifier) hint(objType model.ObjectType) model.HTMLHint {
	if h, ok := c.hints[objType]; ok {
		return h
	}
	return defaultHint
}

// RecordCorrection appends a user correction to the in-memory telemetry log
// for offline analysis. It never alters the rule table and has no effect on
// any subsequent Classify call.
func (c *Classifier) RecordCorrection(original, corrected model.ObjectType, text string, style *model.TextStyle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.corrections = append(c.corrections, model.Correction{
		Original:  original,
		Corrected: corrected,
		Text:      text,
		Style:     style,
	})
}

// Corrections returns a copy of the recorded correction samples.
func (c *Classifier) Corrections() []model.Correction {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Correction, len(c.corrections))
	copy(out, c.corrections)
	return out
}

// TypeStats summarizes classifications observed for one object type.
type TypeStats struct {
	Count         int
	AvgConfidence float64
}

// Stats aggregates the classification history by type.
func (c *Classifier) Stats() map[model.ObjectType]TypeStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	sums := make(map[model.ObjectType]float64)
	counts := make(map[model.ObjectType]int)
	for _, obs := range c.history {
		sums[obs.objType] += obs.confidence
		counts[obs.objType]++
	}

	stats := make(map[model.ObjectType]TypeStats, len(counts))
	for objType, count := range counts {
		stats[objType] = TypeStats{
			Count:         count,
			AvgConfidence: sums[objType] / float64(count),
		}
	}
	return stats
}

// Rules returns the loaded rule table for inspection.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	for i := range c.rules {
		out[i] = c.rules[i].Rule
	}
	return out
}
