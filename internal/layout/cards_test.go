package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yang-jeongman/snapmobile/internal/model"
)

func newTestDetector(t *testing.T) *Detector {
	t.Helper()
	d, err := NewDetector(DefaultCardConfig())
	require.NoError(t, err)
	return d
}

func typed(id string, objType model.ObjectType, content string, y float64, page int) model.ClassifiedObject {
	return model.ClassifiedObject{
		ID:          id,
		Type:        objType,
		Content:     content,
		BoundingBox: model.BoundingBox{X: 50, Y: y, Page: page},
	}
}

func TestDetectCards_NoOpeners(t *testing.T) {
	d := newTestDetector(t)

	ordered := []model.ClassifiedObject{
		typed("a", model.TypeParagraph, "본문", 100, 1),
		typed("b", model.TypeParagraph, "본문", 140, 1),
	}
	assert.Empty(t, d.DetectCards(ordered))
	assert.Empty(t, d.DetectCards(nil))
}

func TestDetectCards_Membership(t *testing.T) {
	d := newTestDetector(t)

	ordered := []model.ClassifiedObject{
		typed("lead", model.TypeParagraph, "머리말", 50, 1),
		typed("h1", model.TypeSectionTitle, "교통 공약", 100, 1),
		typed("b1", model.TypeParagraph, "지하철 9호선 증차", 140, 1),
		typed("b2", model.TypeBulletList, "- 출근 시간 단축", 180, 1),
		typed("h2", model.TypePromiseTitle, "교육특구 조성", 300, 1),
		typed("b3", model.TypeParagraph, "학교 신설", 340, 1),
	}
	cards := d.DetectCards(ordered)
	require.Len(t, cards, 2)

	assert.Equal(t, "h1", cards[0].Header.ID)
	require.Len(t, cards[0].Content, 2)
	assert.Equal(t, "b1", cards[0].Content[0].ID)
	assert.Equal(t, "b2", cards[0].Content[1].ID)
	assert.Equal(t, model.CategoryTransport, cards[0].Category)

	assert.Equal(t, "h2", cards[1].Header.ID)
	require.Len(t, cards[1].Content, 1)
	assert.Equal(t, model.CategoryEducation, cards[1].Category)
}

func TestDetectCards_AdjacentOpenersYieldEmptyCards(t *testing.T) {
	d := newTestDetector(t)

	ordered := []model.ClassifiedObject{
		typed("h1", model.TypeMainTitle, "공약 모음", 100, 1),
		typed("h2", model.TypeSectionTitle, "복지 공약", 140, 1),
		typed("b1", model.TypeParagraph, "돌봄 센터 확충", 180, 1),
	}
	cards := d.DetectCards(ordered)
	require.Len(t, cards, 2)

	assert.Empty(t, cards[0].Content, "back-to-back openers leave the first card empty")
	assert.Len(t, cards[1].Content, 1)
}

func TestDetectCards_SpanThresholdClosesCard(t *testing.T) {
	d := newTestDetector(t)

	ordered := []model.ClassifiedObject{
		typed("h1", model.TypeSectionTitle, "안전 공약", 100, 1),
		typed("b1", model.TypeParagraph, "CCTV 확대", 400, 1),  // within 300
		typed("b2", model.TypeParagraph, "후속 내용", 401, 1),   // beyond 300
		typed("b3", model.TypeParagraph, "더 먼 내용", 500, 1),
	}
	cards := d.DetectCards(ordered)
	require.Len(t, cards, 1)

	require.Len(t, cards[0].Content, 1)
	assert.Equal(t, "b1", cards[0].Content[0].ID)
	assert.Equal(t, model.CategorySafety, cards[0].Category)
}

func TestDetectCards_PageChangeClosesCard(t *testing.T) {
	d := newTestDetector(t)

	ordered := []model.ClassifiedObject{
		typed("h1", model.TypeSectionTitle, "경제 공약", 700, 1),
		typed("b1", model.TypeParagraph, "일자리 창출", 740, 1),
		typed("b2", model.TypeParagraph, "다음 장 본문", 50, 2),
	}
	cards := d.DetectCards(ordered)
	require.Len(t, cards, 1)

	require.Len(t, cards[0].Content, 1)
	assert.Equal(t, "b1", cards[0].Content[0].ID)
	assert.Equal(t, model.CategoryEconomy, cards[0].Category)
}

func TestInferCategory(t *testing.T) {
	d := newTestDetector(t)

	tests := []struct {
		header string
		want   model.CardCategory
	}{
		{header: "교육특구 동작", want: model.CategoryEducation},
		{header: "GTX 유치", want: model.CategoryTransport},
		{header: "어르신 돌봄 강화", want: model.CategoryWelfare},
		{header: "재개발 신속 추진", want: model.CategoryDevelopment},
		{header: "도서관 건립", want: model.CategoryCulture},
		{header: "CCTV 사각지대 해소", want: model.CategorySafety},
		{header: "소상공인 지원", want: model.CategoryEconomy},
		{header: "출산 축하금", want: model.CategoryFamily},
		{header: "주민과의 약속", want: model.CategoryGeneral},
		// Education is checked before transport, so a mixed header lands
		// on education.
		{header: "학교 앞 도로 정비", want: model.CategoryEducation},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, d.inferCategory(tt.header))
		})
	}
}

func TestCardConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CardConfig)
	}{
		{name: "zero span threshold", mutate: func(c *CardConfig) { c.SpanThreshold = 0 }},
		{name: "no categories", mutate: func(c *CardConfig) { c.Categories = nil }},
		{name: "entry without keywords", mutate: func(c *CardConfig) {
			c.Categories = []CategoryKeywords{{Category: model.CategoryEducation}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCardConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, DefaultCardConfig().Validate())
}
