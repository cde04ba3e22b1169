package model

// ObjectType is the closed set of semantic categories a fragment can be
// assigned. Exactly one variant is assigned per fragment.
type ObjectType string

// Text hierarchy.
const (
	TypeMainTitle    ObjectType = "H1"
	TypeSectionTitle ObjectType = "H2"
	TypeSubTitle     ObjectType = "H3"
	TypeParagraph    ObjectType = "P"
	TypeBulletList   ObjectType = "BL"
	TypeNumberedList ObjectType = "NL"
	TypeQuote        ObjectType = "QT"
	TypeCaption      ObjectType = "CAP"
)

// Structural objects.
const (
	TypeCard     ObjectType = "CARD"
	TypeTimeline ObjectType = "TL"
	TypeTable    ObjectType = "TB"
	TypeBox      ObjectType = "BOX"
)

// Visual objects.
const (
	TypeImage     ObjectType = "IMG"
	TypeSignature ObjectType = "SIG"
	TypeLogo      ObjectType = "LOGO"
	TypeIcon      ObjectType = "ICON"
	TypePhoto     ObjectType = "PHOTO"
	TypeChart     ObjectType = "CHART"
)

// Page metadata.
const (
	TypeHeader     ObjectType = "HDR"
	TypeFooter     ObjectType = "FTR"
	TypePageNumber ObjectType = "PGNUM"
	TypeContact    ObjectType = "CONTACT"
	TypeSNS        ObjectType = "SNS"
)

// Election-domain objects.
const (
	TypeCandidateName ObjectType = "CAND"
	TypePartyInfo     ObjectType = "PARTY"
	TypeSlogan        ObjectType = "SLOGAN"
	TypePledge        ObjectType = "PLEDGE"
	TypeAchievement   ObjectType = "ACHV"
	TypePromiseNumber ObjectType = "PNUM"
	TypePromiseTitle  ObjectType = "PTITLE"
	TypeDistrictInfo  ObjectType = "DIST"
)

// AllObjectTypes lists every variant, useful for validation and the review UI.
func AllObjectTypes() []ObjectType {
	return []ObjectType{
		TypeMainTitle, TypeSectionTitle, TypeSubTitle, TypeParagraph,
		TypeBulletList, TypeNumberedList, TypeQuote, TypeCaption,
		TypeCard, TypeTimeline, TypeTable, TypeBox,
		TypeImage, TypeSignature, TypeLogo, TypeIcon, TypePhoto, TypeChart,
		TypeHeader, TypeFooter, TypePageNumber, TypeContact, TypeSNS,
		TypeCandidateName, TypePartyInfo, TypeSlogan, TypePledge,
		TypeAchievement, TypePromiseNumber, TypePromiseTitle, TypeDistrictInfo,
	}
}

// HTMLHint is a rendering suggestion attached to classified objects.
// It is advisory only; the renderer may ignore it.
type HTMLHint struct {
	Tag   string `json:"tag"`
	Class string `json:"class"`
}

// ClassifiedObject is a fragment after classification.
type ClassifiedObject struct {
	ID          string      `json:"id"`
	Type        ObjectType  `json:"type"`
	Content     string      `json:"content"`
	GroupID     string      `json:"group_id,omitempty"`
	HTMLHint    HTMLHint    `json:"html_hint"`
	BoundingBox BoundingBox `json:"bbox"`
	Style       *TextStyle  `json:"style,omitempty"`
	Confidence  float64     `json:"confidence"`
}

// Correction is one telemetry sample recorded when a user overrides a
// classification. It is logged for offline analysis and never feeds back
// into the rule table.
type Correction struct {
	Original  ObjectType `json:"original"`
	Corrected ObjectType `json:"corrected"`
	Text      string     `json:"text"`
	Style     *TextStyle `json:"style,omitempty"`
}
