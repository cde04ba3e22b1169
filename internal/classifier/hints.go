package classifier

import "github.com/yang-jeongman/snapmobile/internal/model"

// defaultHint is used for object types without an explicit mapping.
var defaultHint = model.HTMLHint{Tag: "div", Class: "content"}

// DefaultHints returns the static type-to-markup suggestion table attached to
// classified objects. The renderer treats these as hints, not requirements.
func DefaultHints() map[model.ObjectType]model.HTMLHint {
	return map[model.ObjectType]model.HTMLHint{
		model.TypeMainTitle:     {Tag: "h2", Class: "main-title"},
		model.TypeSectionTitle:  {Tag: "h3", Class: "section-title"},
		model.TypeSubTitle:      {Tag: "h4", Class: "sub-title"},
		model.TypeParagraph:     {Tag: "p", Class: "paragraph"},
		model.TypeBulletList:    {Tag: "ul", Class: "bullet-list"},
		model.TypeNumberedList:  {Tag: "ol", Class: "numbered-list"},
		model.TypeQuote:         {Tag: "blockquote", Class: "quote"},
		model.TypeCaption:       {Tag: "figcaption", Class: "caption"},
		model.TypeTable:         {Tag: "table", Class: "data-table"},
		model.TypeImage:         {Tag: "figure", Class: "image-container"},
		model.TypePhoto:         {Tag: "figure", Class: "photo"},
		model.TypeSignature:     {Tag: "div", Class: "signature-section"},
		model.TypeCandidateName: {Tag: "h1", Class: "candidate-name"},
		model.TypePartyInfo:     {Tag: "div", Class: "party-badge"},
		model.TypeSlogan:        {Tag: "div", Class: "slogan"},
		model.TypePledge:        {Tag: "div", Class: "promise-card"},
		model.TypePromiseNumber: {Tag: "span", Class: "promise-number"},
		model.TypePromiseTitle:  {Tag: "div", Class: "promise-title"},
		model.TypeAchievement:   {Tag: "div", Class: "achievement"},
		model.TypeDistrictInfo:  {Tag: "div", Class: "district-info"},
		model.TypeContact:       {Tag: "address", Class: "contact-info"},
		model.TypeSNS:           {Tag: "a", Class: "sns-link"},
		model.TypeTimeline:      {Tag: "div", Class: "timeline-item"},
	}
}
