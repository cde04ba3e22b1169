// Package mobile aggregates classified and carded brochure fragments into
// the final mobile layout record. It is a sequence of explicit heuristics
// over the document, not a general algorithm; the heuristic tables live in
// Config.
package mobile

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/yang-jeongman/snapmobile/internal/model"
)

// Synthesizer builds a MobileLayout from classified objects and detected
// cards. It holds only immutable configuration and is safe for concurrent
// use.
type Synthesizer struct {
	cfg      Config
	district *regexp.Regexp
	yearRe   *regexp.Regexp
}

// NewSynthesizer creates a synthesizer, validating the configuration.
func NewSynthesizer(cfg Config) (*Synthesizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Synthesizer{
		cfg:      cfg,
		district: regexp.MustCompile(cfg.DistrictPattern),
		yearRe:   regexp.MustCompile(`^((?:19|20)\d{2})[\s\.\-년]*`),
	}, nil
}

// Synthesize builds the complete mobile layout. Objects are expected in
// document reading order; empty input yields an empty but valid layout.
func (s *Synthesizer) Synthesize(objects []model.ClassifiedObject, cards []model.Card) model.MobileLayout {
	party := s.detectParty(objects)
	pledges := s.pledgeCards(cards)

	layout := model.MobileLayout{
		Hero: model.Hero{
			Candidate: s.candidateName(objects),
			Slogan:    s.slogan(objects),
			Party:     string(party),
		},
		Theme:           model.ThemeForParty(party),
		PledgeCards:     pledges,
		QuickHighlights: s.quickHighlights(pledges),
		TimelineItems:   s.timeline(objects),
		Achievements:    s.achievements(objects),
		ContactSection:  s.contacts(objects),
		DistrictPledges: s.districtPledges(objects),
	}
	if party == model.PartyUnknown {
		layout.Hero.Party = ""
	}
	return layout
}

// candidateName resolves the hero name. A literal hit against the known-name
// list always wins over the pattern fallback, regardless of where either
// appears in the document.
func (s *Synthesizer) candidateName(objects []model.ClassifiedObject) string {
	for _, obj := range objects {
		for _, name := range s.cfg.KnownNames {
			if strings.Contains(obj.Content, name) {
				return name
			}
		}
	}

	for _, obj := range objects {
		if obj.Type != model.TypeCandidateName {
			continue
		}
		name := strings.TrimSpace(obj.Content)
		if s.plausibleName(name) {
			return name
		}
	}
	return ""
}

// plausibleName accepts 2-4 Hangul syllables, not on the exclusion list,
// starting with an allowed surname syllable.
func (s *Synthesizer) plausibleName(name string) bool {
	runes := []rune(name)
	if len(runes) < 2 || len(runes) > 4 {
		return false
	}
	for _, r := range runes {
		if r < '가' || r > '힣' {
			return false
		}
	}
	for _, excluded := range s.cfg.NameExclusions {
		if name == excluded {
			return false
		}
	}
	initial := string(runes[0])
	for _, allowed := range s.cfg.AllowedInitials {
		if initial == allowed {
			return true
		}
	}
	return false
}

// slogan returns the first slogan-typed fragment of plausible length that
// carries an exclamation mark.
func (s *Synthesizer) slogan(objects []model.ClassifiedObject) string {
	for _, obj := range objects {
		if obj.Type != model.TypeSlogan {
			continue
		}
		text := strings.TrimSpace(obj.Content)
		n := utf8.RuneCountInString(text)
		if n < s.cfg.SloganMinLen || n > s.cfg.SloganMaxLen {
			continue
		}
		if strings.Contains(text, "!") || strings.Contains(text, "！") {
			return text
		}
	}
	return ""
}

// detectParty returns the first party whose keyword appears in any fragment,
// scanning fragments in document order.
func (s *Synthesizer) detectParty(objects []model.ClassifiedObject) model.Party {
	for _, obj := range objects {
		for _, entry := range s.cfg.Parties {
			for _, kw := range entry.Keywords {
				if strings.Contains(obj.Content, kw) {
					return entry.Party
				}
			}
		}
	}
	return model.PartyUnknown
}

// pledgeCards converts detected cards into renderable pledges: general
// category and noise titles are dropped, short titles are dropped, duplicate
// titles keep their first occurrence.
func (s *Synthesizer) pledgeCards(cards []model.Card) []model.PledgeCard {
	var pledges []model.PledgeCard
	seen := make(map[string]struct{})

	for _, card := range cards {
		if card.Category == model.CategoryGeneral {
			continue
		}
		title := strings.TrimSpace(card.Title())
		if utf8.RuneCountInString(title) < s.cfg.TitleMinLen {
			continue
		}
		if containsAny(title, s.cfg.TitleExclusions) {
			continue
		}
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}

		pledge := model.PledgeCard{Title: title, Category: card.Category}
		for _, obj := range card.Content {
			if text := strings.TrimSpace(obj.Content); text != "" {
				pledge.Details = append(pledge.Details, text)
			}
		}
		pledges = append(pledges, pledge)
	}
	return pledges
}

// quickHighlights partitions pledges into highlighted and other, concatenates
// highlighted first and caps the result.
func (s *Synthesizer) quickHighlights(pledges []model.PledgeCard) []model.PledgeCard {
	var highlighted, other []model.PledgeCard
	for _, pledge := range pledges {
		if containsAny(pledge.Title, s.cfg.HighlightKeywords) {
			highlighted = append(highlighted, pledge)
		} else {
			other = append(other, pledge)
		}
	}

	combined := append(highlighted, other...)
	if len(combined) > s.cfg.HighlightCap {
		combined = combined[:s.cfg.HighlightCap]
	}
	return combined
}

// timeline collects timeline-typed fragments, splitting a leading year off
// the content when present.
func (s *Synthesizer) timeline(objects []model.ClassifiedObject) []model.TimelineItem {
	var items []model.TimelineItem
	for _, obj := range objects {
		if obj.Type != model.TypeTimeline {
			continue
		}
		text := strings.TrimSpace(obj.Content)
		if text == "" {
			continue
		}
		item := model.TimelineItem{Content: text}
		if m := s.yearRe.FindStringSubmatch(text); m != nil {
			item.Year = m[1]
			item.Content = strings.TrimSpace(text[len(m[0]):])
		}
		items = append(items, item)
	}
	return items
}

func (s *Synthesizer) achievements(objects []model.ClassifiedObject) []string {
	var out []string
	for _, obj := range objects {
		if obj.Type == model.TypeAchievement {
			if text := strings.TrimSpace(obj.Content); text != "" {
				out = append(out, text)
			}
		}
	}
	return out
}

func (s *Synthesizer) contacts(objects []model.ClassifiedObject) []string {
	var out []string
	for _, obj := range objects {
		if obj.Type == model.TypeContact || obj.Type == model.TypeSNS {
			if text := strings.TrimSpace(obj.Content); text != "" {
				out = append(out, text)
			}
		}
	}
	return out
}

// districtPledges keys district-typed fragments by the first regional name
// found in their content; the rest of the text is split on commas into
// entries.
func (s *Synthesizer) districtPledges(objects []model.ClassifiedObject) map[string][]string {
	result := make(map[string][]string)
	for _, obj := range objects {
		if obj.Type != model.TypeDistrictInfo {
			continue
		}
		text := strings.TrimSpace(obj.Content)
		name := s.district.FindString(text)
		if name == "" {
			continue
		}
		rest := strings.TrimLeft(strings.TrimPrefix(text, name), " \t:·-")
		for _, part := range strings.Split(rest, ",") {
			if entry := strings.TrimSpace(part); entry != "" {
				result[name] = append(result[name], entry)
			}
		}
		if _, ok := result[name]; !ok {
			result[name] = []string{}
		}
	}
	return result
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
