package mobile

import (
	"regexp"

	"github.com/yang-jeongman/snapmobile/internal/common"
	"github.com/yang-jeongman/snapmobile/internal/model"
)

// PartyKeywords binds one party to the strings that identify it in body
// text. Entries are checked in slice order; first hit decides.
type PartyKeywords struct {
	Party    model.Party `mapstructure:"party"`
	Keywords []string    `mapstructure:"keywords"`
}

// Config holds every heuristic table the synthesizer consults. All of it is
// configuration rather than code so the lists can be tuned per election
// without touching the algorithm.
type Config struct {
	// KnownNames are candidate names matched literally, in document order,
	// before the pattern fallback is tried.
	KnownNames []string `mapstructure:"known_names"`
	// NameExclusions are strings the pattern fallback must never accept:
	// titles, party names, generic campaign nouns.
	NameExclusions []string `mapstructure:"name_exclusions"`
	// AllowedInitials are the Hangul syllables a pattern-matched name may
	// start with (common Korean surnames).
	AllowedInitials []string `mapstructure:"allowed_initials"`
	// SloganMinLen/SloganMaxLen bound the slogan length in runes.
	SloganMinLen int `mapstructure:"slogan_min_len"`
	SloganMaxLen int `mapstructure:"slogan_max_len"`
	// Parties drives party recognition, in match order.
	Parties []PartyKeywords `mapstructure:"parties"`
	// TitleExclusions drop pledge cards whose title is biographical or
	// administrative noise.
	TitleExclusions []string `mapstructure:"title_exclusions"`
	// TitleMinLen is the minimum pledge card title length in runes.
	TitleMinLen int `mapstructure:"title_min_len"`
	// HighlightKeywords promote pledge cards into the quick highlights.
	HighlightKeywords []string `mapstructure:"highlight_keywords"`
	// HighlightCap is the maximum number of quick highlights.
	HighlightCap int `mapstructure:"highlight_cap"`
	// DistrictPattern matches regional names (동/구/군/시/읍/면 suffixes).
	DistrictPattern string `mapstructure:"district_pattern"`
}

// DefaultConfig returns the stock heuristic tables for Korean election
// brochures.
func DefaultConfig() Config {
	return Config{
		KnownNames: []string{"나경원", "이재명", "한동훈", "오세훈", "조국", "이준석"},
		NameExclusions: []string{
			"국민의힘", "민주당", "정의당", "무소속", "국회의원",
			"후보자", "기호", "공약", "약속", "정책", "비전", "미래",
		},
		AllowedInitials: []string{
			"김", "이", "박", "최", "정", "강", "조", "윤", "장", "임",
			"한", "오", "서", "신", "권", "황", "안", "송", "전", "홍",
			"유", "고", "문", "양", "손", "배", "백", "허", "남", "심",
			"노", "하", "곽", "성", "차", "주", "우", "구", "나", "민",
		},
		SloganMinLen: 5,
		SloganMaxLen: 50,
		Parties: []PartyKeywords{
			{model.PartyPPP, []string{"국민의힘", "국민의 힘", "국힘"}},
			{model.PartyDPK, []string{"더불어민주당", "민주당", "더민주"}},
			{model.PartyJP, []string{"정의당"}},
			{model.PartyPP, []string{"국민의당"}},
			{model.PartyRP, []string{"개혁신당"}},
			{model.PartyNRP, []string{"새로운미래"}},
			{model.PartyIndependent, []string{"무소속"}},
		},
		TitleExclusions: []string{
			"학력", "경력", "약력", "프로필", "출생", "이력", "인사말", "의정보고",
		},
		TitleMinLen: 5,
		HighlightKeywords: []string{
			"유치", "신설", "확충", "재개발", "지하철", "교육",
		},
		HighlightCap:    6,
		DistrictPattern: `[가-힣]+(동|구|군|시|읍|면)`,
	}
}

// Validate rejects empty heuristic tables and malformed patterns at
// construction time.
func (c Config) Validate() error {
	if len(c.KnownNames) == 0 {
		return common.NewConfigError("mobile.known_names", "must not be empty")
	}
	if len(c.AllowedInitials) == 0 {
		return common.NewConfigError("mobile.allowed_initials", "must not be empty")
	}
	if c.SloganMinLen <= 0 || c.SloganMaxLen < c.SloganMinLen {
		return common.NewConfigError("mobile.slogan_len", "bounds must be positive and ordered")
	}
	if len(c.Parties) == 0 {
		return common.NewConfigError("mobile.parties", "must not be empty")
	}
	for _, entry := range c.Parties {
		if entry.Party == "" || len(entry.Keywords) == 0 {
			return common.NewConfigError("mobile.parties", "entries need a party and at least one keyword")
		}
	}
	if c.TitleMinLen <= 0 {
		return common.NewConfigError("mobile.title_min_len", "must be positive")
	}
	if c.HighlightCap <= 0 {
		return common.NewConfigError("mobile.highlight_cap", "must be positive")
	}
	if _, err := regexp.Compile(c.DistrictPattern); err != nil {
		return common.NewConfigError("mobile.district_pattern", err.Error())
	}
	return nil
}
