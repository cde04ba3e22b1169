package layout

import (
	"strings"

	"github.com/yang-jeongman/snapmobile/internal/model"
)

// PageType labels the dominant role of a brochure page.
type PageType string

const (
	PageCover       PageType = "cover"
	PageProfile     PageType = "profile"
	PagePledge      PageType = "pledge"
	PageAchievement PageType = "achievement"
	PageContact     PageType = "contact"
	PageContent     PageType = "content"
)

// inferPageType classifies a page by its position, its text and, failing
// those, its object types.
func (a *Analyzer) inferPageType(page, lastPage int, objects []model.ClassifiedObject) PageType {
	// A near-empty first page is a cover.
	if page == 1 && len(objects) <= 5 {
		return PageCover
	}

	var b strings.Builder
	for _, obj := range objects {
		b.WriteString(obj.Content)
		b.WriteByte(' ')
	}
	text := b.String()

	if page == lastPage && containsAny(text, a.cfg.ContactKeywords) {
		return PageContact
	}

	for _, entry := range a.cfg.PageTypeKeywords {
		hits := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(text, kw) {
				hits++
			}
		}
		if hits >= 2 {
			return entry.Type
		}
	}

	// Object-type fallback, checked in fixed precedence order regardless of
	// where the objects sit on the page.
	if hasType(objects, model.TypeTable) {
		return PageProfile
	}
	if hasType(objects, model.TypePromiseNumber) || hasType(objects, model.TypePromiseTitle) {
		return PagePledge
	}
	if hasType(objects, model.TypeAchievement) {
		return PageAchievement
	}

	return PageContent
}

func hasType(objects []model.ClassifiedObject, t model.ObjectType) bool {
	for _, obj := range objects {
		if obj.Type == t {
			return true
		}
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
