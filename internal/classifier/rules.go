// Package classifier assigns a semantic type and confidence to extracted
// text fragments using a priority-ordered, data-driven rule table.
package classifier

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yang-jeongman/snapmobile/internal/common"
	"github.com/yang-jeongman/snapmobile/internal/model"
)

// Position constrains where on the page a rule applies.
type Position string

// Position constants. Relative y = bbox.Y / pageHeight.
const (
	PositionTop    Position = "top"    // relative y < 0.2
	PositionCenter Position = "center" // 0.3 < relative y < 0.7
	PositionBottom Position = "bottom" // relative y > 0.8
)

// Rule is one declarative classification rule. Rules are immutable after
// loading and shared read-only across classifications.
//
// ContentPattern and ColorPattern are gates: a present pattern that fails to
// match removes the rule from consideration entirely. ExcludePattern is the
// inverse gate: text matching it removes the rule. Font size, font style and
// position are soft signals that only adjust confidence.
type Rule struct {
	MinFontSize    *float64
	MaxFontSize    *float64
	FontStyle      *model.FontStyle
	Name           string
	ColorPattern   string
	ContentPattern string
	ExcludePattern string
	Position       Position
	Type           model.ObjectType
	Priority       int
	BaseConfidence float64
}

// compiledRule holds a rule with its regex conditions pre-compiled.
type compiledRule struct {
	content *regexp.Regexp
	exclude *regexp.Regexp
	color   *regexp.Regexp
	Rule
}

// compileRules validates and compiles a rule table. A malformed rule (bad
// regex, inverted font-size bounds, out-of-range confidence) is a
// configuration error surfaced here, never during classification.
func compileRules(rules []Rule) ([]compiledRule, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: empty rule table", common.ErrInvalidRule)
	}

	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		if r.Name == "" {
			return nil, fmt.Errorf("%w: rule with empty name", common.ErrInvalidRule)
		}
		if r.Type == "" {
			return nil, fmt.Errorf("%w: rule %s has no target type", common.ErrInvalidRule, r.Name)
		}
		if r.BaseConfidence <= 0 || r.BaseConfidence > 1 {
			return nil, fmt.Errorf("%w: rule %s base confidence %v outside (0,1]",
				common.ErrInvalidRule, r.Name, r.BaseConfidence)
		}
		if r.MinFontSize != nil && r.MaxFontSize != nil && *r.MinFontSize > *r.MaxFontSize {
			return nil, fmt.Errorf("%w: rule %s has inverted font size bounds",
				common.ErrInvalidRule, r.Name)
		}
		switch r.Position {
		case "", PositionTop, PositionCenter, PositionBottom:
		default:
			return nil, fmt.Errorf("%w: rule %s has unknown position %q",
				common.ErrInvalidRule, r.Name, r.Position)
		}

		cr := compiledRule{Rule: r}
		var err error
		if r.ContentPattern != "" {
			if cr.content, err = compilePattern(r.ContentPattern); err != nil {
				return nil, fmt.Errorf("%w: rule %s content pattern: %v",
					common.ErrInvalidRule, r.Name, err)
			}
		}
		if r.ExcludePattern != "" {
			if cr.exclude, err = compilePattern(r.ExcludePattern); err != nil {
				return nil, fmt.Errorf("%w: rule %s exclude pattern: %v",
					common.ErrInvalidRule, r.Name, err)
			}
		}
		if r.ColorPattern != "" {
			if cr.color, err = compilePattern(r.ColorPattern); err != nil {
				return nil, fmt.Errorf("%w: rule %s color pattern: %v",
					common.ErrInvalidRule, r.Name, err)
			}
		}
		compiled = append(compiled, cr)
	}

	return compiled, nil
}

// compilePattern compiles a rule pattern case-insensitively.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	if !strings.HasPrefix(pattern, "(?i)") {
		pattern = "(?i)" + pattern
	}
	return regexp.Compile(pattern)
}
