package model

// Party identifies a political organization recognized in the source text.
type Party string

// Recognized parties.
const (
	PartyPPP         Party = "국민의힘"
	PartyDPK         Party = "더불어민주당"
	PartyJP          Party = "정의당"
	PartyPP          Party = "국민의당"
	PartyRP          Party = "개혁신당"
	PartyNRP         Party = "새로운미래"
	PartyIndependent Party = "무소속"
	PartyUnknown     Party = "미확인"
)

// PartyTheme is the color scheme the renderer should apply for a party.
type PartyTheme struct {
	Name          string `json:"name"`
	PrimaryColor  string `json:"primary_color"`
	LightColor    string `json:"light_color"`
	DarkColor     string `json:"dark_color"`
	GradientStart string `json:"gradient_start"`
	GradientEnd   string `json:"gradient_end"`
	AccentColor   string `json:"accent_color"`
	TextOnPrimary string `json:"text_on_primary"`
}

var partyThemes = map[Party]PartyTheme{
	PartyPPP: {
		Name:          string(PartyPPP),
		PrimaryColor:  "#E11D48",
		LightColor:    "#FEE2E2",
		DarkColor:     "#BE123C",
		GradientStart: "#E11D48",
		GradientEnd:   "#BE123C",
		AccentColor:   "#F43F5E",
		TextOnPrimary: "#FFFFFF",
	},
	PartyDPK: {
		Name:          string(PartyDPK),
		PrimaryColor:  "#004EA2",
		LightColor:    "#DBEAFE",
		DarkColor:     "#1E3A8A",
		GradientStart: "#004EA2",
		GradientEnd:   "#1E3A8A",
		AccentColor:   "#3B82F6",
		TextOnPrimary: "#FFFFFF",
	},
	PartyJP: {
		Name:          string(PartyJP),
		PrimaryColor:  "#FFCC00",
		LightColor:    "#FEF3C7",
		DarkColor:     "#D97706",
		GradientStart: "#FFCC00",
		GradientEnd:   "#F59E0B",
		AccentColor:   "#F59E0B",
		TextOnPrimary: "#000000",
	},
	PartyPP: {
		Name:          string(PartyPP),
		PrimaryColor:  "#EA5504",
		LightColor:    "#FFEDD5",
		DarkColor:     "#C2410C",
		GradientStart: "#EA5504",
		GradientEnd:   "#C2410C",
		AccentColor:   "#F97316",
		TextOnPrimary: "#FFFFFF",
	},
	PartyRP: {
		Name:          string(PartyRP),
		PrimaryColor:  "#FF6B35",
		LightColor:    "#FED7AA",
		DarkColor:     "#EA580C",
		GradientStart: "#FF6B35",
		GradientEnd:   "#EA580C",
		AccentColor:   "#FB923C",
		TextOnPrimary: "#FFFFFF",
	},
	PartyNRP: {
		Name:          string(PartyNRP),
		PrimaryColor:  "#10B981",
		LightColor:    "#D1FAE5",
		DarkColor:     "#059669",
		GradientStart: "#10B981",
		GradientEnd:   "#059669",
		AccentColor:   "#34D399",
		TextOnPrimary: "#FFFFFF",
	},
	PartyIndependent: {
		Name:          string(PartyIndependent),
		PrimaryColor:  "#6B7280",
		LightColor:    "#F3F4F6",
		DarkColor:     "#374151",
		GradientStart: "#6B7280",
		GradientEnd:   "#374151",
		AccentColor:   "#9CA3AF",
		TextOnPrimary: "#FFFFFF",
	},
	PartyUnknown: {
		Name:          string(PartyUnknown),
		PrimaryColor:  "#6366F1",
		LightColor:    "#E0E7FF",
		DarkColor:     "#4338CA",
		GradientStart: "#6366F1",
		GradientEnd:   "#4338CA",
		AccentColor:   "#818CF8",
		TextOnPrimary: "#FFFFFF",
	},
}

// ThemeForParty returns the color scheme for a party, falling back to the
// neutral unknown-party theme.
func ThemeForParty(party Party) PartyTheme {
	if theme, ok := partyThemes[party]; ok {
		return theme
	}
	return partyThemes[PartyUnknown]
}

// Hero is the top-level identity block of the mobile layout.
type Hero struct {
	Candidate string `json:"candidate,omitempty"`
	Slogan    string `json:"slogan,omitempty"`
	Party     string `json:"party,omitempty"`
}

// PledgeCard is one policy pledge ready for card rendering.
type PledgeCard struct {
	Title    string       `json:"title"`
	Category CardCategory `json:"category"`
	Details  []string     `json:"details,omitempty"`
}

// TimelineItem is one career/history entry with an optional leading year.
type TimelineItem struct {
	Year    string `json:"year,omitempty"`
	Content string `json:"content"`
}

// MobileLayout is the final artifact of the pipeline: a named aggregate of
// everything the mobile renderer needs. It is created once per document and
// never mutated afterwards.
type MobileLayout struct {
	Hero            Hero                `json:"hero"`
	Theme           PartyTheme          `json:"theme"`
	QuickHighlights []PledgeCard        `json:"quick_highlights"`
	PledgeCards     []PledgeCard        `json:"pledge_cards"`
	TimelineItems   []TimelineItem      `json:"timeline_items"`
	Achievements    []string            `json:"achievements"`
	ContactSection  []string            `json:"contact_section"`
	DistrictPledges map[string][]string `json:"district_pledges"`
}
