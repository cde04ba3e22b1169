package layout

import (
	"strings"

	"github.com/yang-jeongman/snapmobile/internal/common"
	"github.com/yang-jeongman/snapmobile/internal/model"
)

// CategoryKeywords binds one card category to its trigger keywords. Entries
// are checked in slice order against the card header; first hit decides.
type CategoryKeywords struct {
	Category model.CardCategory `mapstructure:"category"`
	Keywords []string           `mapstructure:"keywords"`
}

// CardConfig holds the card detection thresholds and category tables.
type CardConfig struct {
	// SpanThreshold is the maximum vertical distance (in page units) a member
	// fragment may sit below the card's opening fragment.
	SpanThreshold float64 `mapstructure:"span_threshold"`
	// Categories drives header-keyword category inference, in match order.
	Categories []CategoryKeywords `mapstructure:"categories"`
}

// DefaultCardConfig returns a span threshold tuned for one pledge block per
// brochure column and the stock category keyword tables.
func DefaultCardConfig() CardConfig {
	return CardConfig{
		SpanThreshold: 300,
		Categories: []CategoryKeywords{
			{model.CategoryEducation, []string{"교육", "학교", "학군", "대학", "학습", "학원"}},
			{model.CategoryTransport, []string{"교통", "지하철", "철도", "도로", "버스", "환승", "GTX"}},
			{model.CategoryWelfare, []string{"복지", "돌봄", "어르신", "장애인", "경로", "요양"}},
			{model.CategoryDevelopment, []string{"개발", "재개발", "뉴타운", "재건축", "도시재생", "건설"}},
			{model.CategoryCulture, []string{"문화", "체육", "공원", "도서관", "관광", "콘텐츠"}},
			{model.CategorySafety, []string{"안전", "안심", "CCTV", "범죄", "재난", "소방"}},
			{model.CategoryEconomy, []string{"경제", "일자리", "소상공인", "창업", "산업", "투자"}},
			{model.CategoryFamily, []string{"가족", "보육", "육아", "어린이집", "출산", "신혼"}},
		},
	}
}

// Validate rejects unusable thresholds and empty category tables at
// construction time.
func (c CardConfig) Validate() error {
	if c.SpanThreshold <= 0 {
		return common.NewConfigError("cards.span_threshold", "must be positive")
	}
	if len(c.Categories) == 0 {
		return common.NewConfigError("cards.categories", "must not be empty")
	}
	for _, entry := range c.Categories {
		if entry.Category == "" || len(entry.Keywords) == 0 {
			return common.NewConfigError("cards.categories", "entries need a category and at least one keyword")
		}
	}
	return nil
}

// cardOpeners are the object types that start a new card.
var cardOpeners = map[model.ObjectType]struct{}{
	model.TypePromiseNumber: {},
	model.TypePromiseTitle:  {},
	model.TypeSectionTitle:  {},
	model.TypeMainTitle:     {},
}

// Detector finds card-shaped pledge blocks in a reading-ordered object
// stream.
type Detector struct {
	cfg CardConfig
}

// NewDetector creates a card detector, validating the configuration.
func NewDetector(cfg CardConfig) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Detector{cfg: cfg}, nil
}

// DetectCards scans reading-ordered objects for card structures. A card opens
// at an opener-typed object and collects following objects until the next
// opener, a page change, or the vertical span limit. Adjacent openers produce
// cards with empty content; those are still valid cards.
func (d *Detector) DetectCards(ordered []model.ClassifiedObject) []model.Card {
	var cards []model.Card

	i := 0
	for i < len(ordered) {
		header := ordered[i]
		if _, ok := cardOpeners[header.Type]; !ok {
			i++
			continue
		}

		card := model.Card{Header: header}
		j := i + 1
		for j < len(ordered) {
			next := ordered[j]
			if _, ok := cardOpeners[next.Type]; ok {
				break
			}
			if next.BoundingBox.Page != header.BoundingBox.Page {
				break
			}
			if next.BoundingBox.Y-header.BoundingBox.Y > d.cfg.SpanThreshold {
				break
			}
			card.Content = append(card.Content, next)
			j++
		}

		card.Category = d.inferCategory(card.Header.Content)
		cards = append(cards, card)
		i = j
	}

	return cards
}

// inferCategory matches the header text against the category keyword lists.
func (d *Detector) inferCategory(header string) model.CardCategory {
	for _, entry := range d.cfg.Categories {
		for _, kw := range entry.Keywords {
			if strings.Contains(header, kw) {
				return entry.Category
			}
		}
	}
	return model.CategoryGeneral
}
