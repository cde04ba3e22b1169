package classifier

import "github.com/yang-jeongman/snapmobile/internal/model"

func fontSize(v float64) *float64 { return &v }

func fontStyle(s model.FontStyle) *model.FontStyle { return &s }

// DefaultRules returns the built-in classification rule table. The numeric
// priorities were tuned against real brochures and are kept as-is; when two
// rules share a priority the earlier entry wins a full tie, so the
// domain-specific rules are listed before the generic title rules.
func DefaultRules() []Rule {
	return []Rule{
		// Election-domain rules.
		{
			Name:           "candidate_name",
			Type:           model.TypeCandidateName,
			Priority:       100,
			MinFontSize:    fontSize(20.0),
			ContentPattern: `^[가-힣]{2,4}$`,
			// Party names are also 2-4 Hangul syllables; without this gate
			// they would win here on priority alone.
			ExcludePattern: `(국민의힘|민주당|정의당|무소속|새로운미래|개혁신당)`,
			Position:       PositionTop,
			BaseConfidence: 0.90,
		},
		{
			Name:           "party_info",
			Type:           model.TypePartyInfo,
			Priority:       95,
			ContentPattern: `(국민의힘|더불어민주당|정의당|국민의당|개혁신당|새로운미래|녹색당|기본소득당|무소속)`,
			BaseConfidence: 0.99,
		},
		{
			Name:           "slogan",
			Type:           model.TypeSlogan,
			Priority:       88,
			MinFontSize:    fontSize(16.0),
			ContentPattern: `[!]$|함께|약속|미래|변화|희망`,
			BaseConfidence: 0.85,
		},
		{
			Name:           "pledge_number",
			Type:           model.TypePromiseNumber,
			Priority:       98,
			ContentPattern: `^(공약|약속)?\s*[0-9]+\s*$|^제?\s*[0-9]+\s*(호|번)?공약`,
			BaseConfidence: 0.95,
		},
		{
			Name:           "achievement",
			Type:           model.TypeAchievement,
			Priority:       85,
			ContentPattern: `(실적|성과|완료|달성|유치|확보|신설|개통|증가|감소|\d+%|\d+억|\d+만)`,
			BaseConfidence: 0.80,
		},
		{
			Name:           "district_info",
			Type:           model.TypeDistrictInfo,
			Priority:       84,
			ContentPattern: `^[가-힣]{1,6}(동|구|군|읍|면)\s*[:·\-]`,
			BaseConfidence: 0.85,
		},

		// Lists. The numbered-list rule deliberately outranks pledge_number
		// so that "1. 교육특구 동작" reads as a list entry, not a bare
		// promise number.
		{
			Name:           "bullet_list",
			Type:           model.TypeBulletList,
			Priority:       99,
			ContentPattern: `^[\s]*[·•\-▶▷◆◇★☆✓✔→►]`,
			BaseConfidence: 0.98,
		},
		{
			Name:           "numbered_list",
			Type:           model.TypeNumberedList,
			Priority:       99,
			ContentPattern: `^[\s]*(\d+[\.\)]\s|[①②③④⑤⑥⑦⑧⑨⑩])`,
			BaseConfidence: 0.98,
		},

		// Title hierarchy. The main-title rules have no content gate and
		// survive for any text, so they sit below the gated domain rules;
		// at 100 they would swallow party names and phone numbers.
		{
			Name:           "main_title_large",
			Type:           model.TypeMainTitle,
			Priority:       94,
			MinFontSize:    fontSize(24.0),
			FontStyle:      fontStyle(model.FontBold),
			Position:       PositionTop,
			BaseConfidence: 0.95,
		},
		{
			Name:           "main_title_center",
			Type:           model.TypeMainTitle,
			Priority:       94,
			MinFontSize:    fontSize(18.0),
			ContentPattern: `^.{2,20}$`,
			Position:       PositionCenter,
			BaseConfidence: 0.85,
		},
		{
			Name:           "section_title_blue",
			Type:           model.TypeSectionTitle,
			Priority:       90,
			ColorPattern:   `#(2563EB|1E40AF|3B82F6|0066CC|0000FF)`,
			FontStyle:      fontStyle(model.FontBold),
			BaseConfidence: 0.95,
		},
		{
			Name:           "section_title_red",
			Type:           model.TypeSectionTitle,
			Priority:       90,
			ColorPattern:   `#(DC2626|EF4444|B91C1C|FF0000|CC0000)`,
			FontStyle:      fontStyle(model.FontBold),
			BaseConfidence: 0.95,
		},
		{
			Name:           "section_title_size",
			Type:           model.TypeSectionTitle,
			Priority:       85,
			MinFontSize:    fontSize(14.0),
			MaxFontSize:    fontSize(24.0),
			FontStyle:      fontStyle(model.FontBold),
			BaseConfidence: 0.80,
		},

		// Timeline.
		{
			Name:           "timeline_year",
			Type:           model.TypeTimeline,
			Priority:       92,
			ContentPattern: `^(19|20)\d{2}[\s\.\-년]`,
			BaseConfidence: 0.95,
		},

		// Contact and SNS.
		{
			Name:           "contact_phone",
			Type:           model.TypeContact,
			Priority:       95,
			ContentPattern: `(전화|TEL|☎)?\s*0\d{1,2}[\-\.\s]?\d{3,4}[\-\.\s]?\d{4}`,
			BaseConfidence: 0.98,
		},
		{
			Name:           "contact_email",
			Type:           model.TypeContact,
			Priority:       95,
			ContentPattern: `[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`,
			BaseConfidence: 0.99,
		},
		{
			Name:           "sns_link",
			Type:           model.TypeSNS,
			Priority:       95,
			ContentPattern: `(facebook|instagram|twitter|youtube|blog|naver|kakao|@)`,
			BaseConfidence: 0.95,
		},

		// Page metadata.
		{
			Name:           "page_number",
			Type:           model.TypePageNumber,
			Priority:       90,
			ContentPattern: `^[\s]*-?\s*\d{1,3}\s*-?[\s]*$`,
			Position:       PositionBottom,
			BaseConfidence: 0.90,
		},
		{
			Name:           "header",
			Type:           model.TypeHeader,
			Priority:       80,
			MaxFontSize:    fontSize(10.0),
			Position:       PositionTop,
			BaseConfidence: 0.75,
		},
		{
			Name:           "footer",
			Type:           model.TypeFooter,
			Priority:       80,
			MaxFontSize:    fontSize(10.0),
			Position:       PositionBottom,
			BaseConfidence: 0.75,
		},

		// Quotes.
		{
			Name:           "quote",
			Type:           model.TypeQuote,
			Priority:       88,
			ContentPattern: `^["'""''].*["'""'']$|^「.*」$|^『.*』$`,
			BaseConfidence: 0.92,
		},

		// Fallback body text.
		{
			Name:           "paragraph_default",
			Type:           model.TypeParagraph,
			Priority:       1,
			BaseConfidence: 0.50,
		},
	}
}
