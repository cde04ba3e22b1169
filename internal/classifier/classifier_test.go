package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yang-jeongman/snapmobile/internal/common"
	"github.com/yang-jeongman/snapmobile/internal/model"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := New(DefaultRules())
	require.NoError(t, err)
	return c
}

func TestClassify_EmptyText(t *testing.T) {
	c := newTestClassifier(t)

	for _, text := range []string{"", "   ", "\n\t"} {
		objType, confidence := c.Classify(text, nil, nil, 0)
		assert.Equal(t, model.TypeParagraph, objType)
		assert.Equal(t, 0.0, confidence)
	}
}

func TestClassify_NoSurvivorFallsBackToParagraph(t *testing.T) {
	rules := []Rule{
		{
			Name:           "only_numbers",
			Type:           model.TypePageNumber,
			Priority:       50,
			ContentPattern: `^\d+$`,
			BaseConfidence: 0.9,
		},
	}
	c, err := New(rules)
	require.NoError(t, err)

	objType, confidence := c.Classify("일반 본문 텍스트입니다", nil, nil, 0)
	assert.Equal(t, model.TypeParagraph, objType)
	assert.Equal(t, 0.5, confidence)
}

func TestClassify_ContentPatternIsGate(t *testing.T) {
	// The higher-priority rule is gated on digits; failing the gate must
	// remove it from contention entirely, letting the lower rule win.
	rules := []Rule{
		{
			Name:           "digits",
			Type:           model.TypePageNumber,
			Priority:       100,
			ContentPattern: `^\d+$`,
			BaseConfidence: 0.95,
		},
		{
			Name:           "hangul",
			Type:           model.TypeSectionTitle,
			Priority:       10,
			ContentPattern: `[가-힣]`,
			BaseConfidence: 0.8,
		},
	}
	c, err := New(rules)
	require.NoError(t, err)

	objType, _ := c.Classify("소제목", nil, nil, 0)
	assert.Equal(t, model.TypeSectionTitle, objType)

	objType, _ = c.Classify("42", nil, nil, 0)
	assert.Equal(t, model.TypePageNumber, objType)
}

func TestClassify_ColorPatternIsGate(t *testing.T) {
	rules := []Rule{
		{
			Name:           "blue_heading",
			Type:           model.TypeSectionTitle,
			Priority:       90,
			ColorPattern:   `#0000FF`,
			BaseConfidence: 0.9,
		},
		{
			Name:           "any_text",
			Type:           model.TypeParagraph,
			Priority:       1,
			BaseConfidence: 0.5,
		},
	}
	c, err := New(rules)
	require.NoError(t, err)

	red := &model.TextStyle{Color: "#FF0000", FontSize: 20}
	objType, _ := c.Classify("소제목", red, nil, 0)
	assert.Equal(t, model.TypeParagraph, objType,
		"color mismatch must exclude the rule even when everything else fits")

	blue := &model.TextStyle{Color: "#0000FF", FontSize: 20}
	objType, _ = c.Classify("소제목", blue, nil, 0)
	assert.Equal(t, model.TypeSectionTitle, objType)
}

func TestClassify_PriorityWins(t *testing.T) {
	c := newTestClassifier(t)

	// Matches both the numbered-list rule and the achievement rule; the
	// list rule must win on priority alone.
	objType, _ := c.Classify("1. 유치 실적 정리", nil, nil, 0)
	assert.Equal(t, model.TypeNumberedList, objType)
}

func TestClassify_UngatedTitleRulesShadowLowerPriorities(t *testing.T) {
	c := newTestClassifier(t)

	// The main-title rules carry no content or color gate, so they survive
	// for any text; short unstyled prose therefore reads as a title unless
	// a higher-priority gated rule claims it first.
	objType, _ := c.Classify("안녕하세요 주민 여러분", nil, nil, 0)
	assert.Equal(t, model.TypeMainTitle, objType)
}

func TestClassify_Deterministic(t *testing.T) {
	c := newTestClassifier(t)
	style := &model.TextStyle{FontSize: 30, FontStyle: model.FontBold}
	bbox := &model.BoundingBox{X: 100, Y: 50, Page: 1}

	firstType, firstConf := c.Classify("나경원", style, bbox, 842)
	for i := 0; i < 5; i++ {
		objType, confidence := c.Classify("나경원", style, bbox, 842)
		assert.Equal(t, firstType, objType)
		assert.Equal(t, firstConf, confidence)
	}
}

func TestClassify_CandidateVersusParty(t *testing.T) {
	c := newTestClassifier(t)
	style := &model.TextStyle{FontSize: 30, FontStyle: model.FontBold}
	bbox := &model.BoundingBox{X: 100, Y: 50, Page: 1}

	objType, confidence := c.Classify("나경원", style, bbox, 842)
	assert.Equal(t, model.TypeCandidateName, objType)
	assert.Greater(t, confidence, 0.9)

	// A party name is also 2-4 Hangul syllables but must never be read as
	// a candidate name.
	objType, _ = c.Classify("국민의힘", style, bbox, 842)
	assert.Equal(t, model.TypePartyInfo, objType)

	objType, _ = c.Classify("국민의힘", nil, nil, 0)
	assert.Equal(t, model.TypePartyInfo, objType)
}

func TestClassify_SNSHandlesAndEmails(t *testing.T) {
	c := newTestClassifier(t)

	// A bare handle is an SNS link even without a platform name.
	objType, _ := c.Classify("@nakw_dongjak", nil, nil, 0)
	assert.Equal(t, model.TypeSNS, objType)

	objType, _ = c.Classify("instagram.com/nakw", nil, nil, 0)
	assert.Equal(t, model.TypeSNS, objType)

	// Full email addresses still read as contact info.
	objType, _ = c.Classify("nakw@assembly.go.kr", nil, nil, 0)
	assert.Equal(t, model.TypeContact, objType)
}

func TestClassify_NumberedListOutranksPromiseNumber(t *testing.T) {
	c := newTestClassifier(t)

	objType, _ := c.Classify("1. 교육특구 동작", nil, nil, 0)
	assert.Equal(t, model.TypeNumberedList, objType)

	objType, _ = c.Classify("공약 1", nil, nil, 0)
	assert.Equal(t, model.TypePromiseNumber, objType)
}

func TestClassify_BareNumberReadsAsPromiseNumber(t *testing.T) {
	c := newTestClassifier(t)

	// A bare digit at the page bottom is almost certainly a page number,
	// but the promise-number rule outranks the page-number rule and its
	// pattern admits bare digits, so it wins. Kept as-is for parity with
	// the tuned table.
	bottom := &model.BoundingBox{X: 280, Y: 800, Page: 1}
	objType, _ := c.Classify("3", nil, bottom, 842)
	assert.Equal(t, model.TypePromiseNumber, objType)
}

func TestClassify_MissingStyleSkipsConditions(t *testing.T) {
	c := newTestClassifier(t)

	// candidate_name declares a minimum font size and a top position; with
	// no style and no bbox those conditions are skipped, and the content
	// gate alone carries the rule.
	objType, confidence := c.Classify("나경원", nil, nil, 0)
	assert.Equal(t, model.TypeCandidateName, objType)
	assert.Greater(t, confidence, 0.9)
}

func TestClassify_SoftFontSizePenalty(t *testing.T) {
	min := 20.0
	rules := []Rule{
		{
			Name:           "big_name",
			Type:           model.TypeCandidateName,
			Priority:       100,
			MinFontSize:    &min,
			ContentPattern: `^[가-힣]{2,4}$`,
			BaseConfidence: 0.90,
		},
	}
	c, err := New(rules)
	require.NoError(t, err)

	big := &model.TextStyle{FontSize: 30}
	small := &model.TextStyle{FontSize: 10}

	bigType, bigConf := c.Classify("나경원", big, nil, 0)
	smallType, smallConf := c.Classify("나경원", small, nil, 0)

	assert.Equal(t, model.TypeCandidateName, bigType)
	assert.Equal(t, model.TypeCandidateName, smallType,
		"font size is a soft signal, never a gate")
	assert.Greater(t, bigConf, smallConf)
}

func TestClassify_PositionBonus(t *testing.T) {
	c := newTestClassifier(t)

	top := &model.BoundingBox{X: 100, Y: 50, Page: 1}
	bottom := &model.BoundingBox{X: 100, Y: 800, Page: 1}

	topType, topConf := c.Classify("나경원", nil, top, 842)
	bottomType, bottomConf := c.Classify("나경원", nil, bottom, 842)

	assert.Equal(t, model.TypeCandidateName, topType)
	assert.Equal(t, model.TypeCandidateName, bottomType)
	assert.Greater(t, topConf, bottomConf)
}

func TestClassify_ConfidenceClipped(t *testing.T) {
	c := newTestClassifier(t)
	style := &model.TextStyle{FontSize: 30, FontStyle: model.FontBold}
	bbox := &model.BoundingBox{X: 100, Y: 50, Page: 1}

	_, confidence := c.Classify("나경원", style, bbox, 842)
	assert.Equal(t, 1.0, confidence)
}

func TestNew_RejectsMalformedRules(t *testing.T) {
	min, max := 20.0, 10.0
	tests := []struct {
		name  string
		rules []Rule
	}{
		{name: "empty table", rules: nil},
		{name: "empty name", rules: []Rule{{Type: model.TypeParagraph, BaseConfidence: 0.5}}},
		{name: "empty type", rules: []Rule{{Name: "r", BaseConfidence: 0.5}}},
		{name: "zero confidence", rules: []Rule{{Name: "r", Type: model.TypeParagraph}}},
		{name: "confidence above one", rules: []Rule{{Name: "r", Type: model.TypeParagraph, BaseConfidence: 1.5}}},
		{name: "inverted font bounds", rules: []Rule{{Name: "r", Type: model.TypeParagraph, BaseConfidence: 0.5, MinFontSize: &min, MaxFontSize: &max}}},
		{name: "unknown position", rules: []Rule{{Name: "r", Type: model.TypeParagraph, BaseConfidence: 0.5, Position: "middle"}}},
		{name: "bad content regex", rules: []Rule{{Name: "r", Type: model.TypeParagraph, BaseConfidence: 0.5, ContentPattern: "["}}},
		{name: "bad color regex", rules: []Rule{{Name: "r", Type: model.TypeParagraph, BaseConfidence: 0.5, ColorPattern: "("}}},
		{name: "bad exclude regex", rules: []Rule{{Name: "r", Type: model.TypeParagraph, BaseConfidence: 0.5, ExcludePattern: "("}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rules)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidRule)
		})
	}

	_, err := New([]Rule{{Name: "ok", Type: model.TypeParagraph, Priority: 1, BaseConfidence: 0.5}})
	assert.NoError(t, err)
}

func TestClassifyBatch(t *testing.T) {
	c := newTestClassifier(t)

	fragments := []model.TextFragment{
		{
			Text:        "나경원",
			Style:       &model.TextStyle{FontSize: 30, FontStyle: model.FontBold},
			BoundingBox: &model.BoundingBox{X: 100, Y: 50, Page: 1},
		},
		{
			Text:        "  02-784-1234  ",
			BoundingBox: &model.BoundingBox{X: 100, Y: 700, Page: 2},
		},
		{Text: "국민의힘"},
	}

	objects := c.ClassifyBatch(fragments, 842)
	require.Len(t, objects, 3)

	assert.Equal(t, "obj_0", objects[0].ID)
	assert.Equal(t, "obj_1", objects[1].ID)
	assert.Equal(t, "obj_2", objects[2].ID)

	assert.Equal(t, model.TypeCandidateName, objects[0].Type)
	assert.Equal(t, model.TypeContact, objects[1].Type)
	assert.Equal(t, model.TypePartyInfo, objects[2].Type)

	assert.Equal(t, "02-784-1234", objects[1].Content, "content is trimmed")
	assert.Equal(t, 2, objects[1].BoundingBox.Page)

	for _, obj := range objects {
		assert.NotEmpty(t, obj.HTMLHint.Tag)
		assert.NotEmpty(t, obj.HTMLHint.Class)
	}
	assert.Equal(t, "h1", objects[0].HTMLHint.Tag)
}

func TestRecordCorrection_DoesNotAffectClassification(t *testing.T) {
	c := newTestClassifier(t)

	before, beforeConf := c.Classify("나경원", nil, nil, 0)
	c.RecordCorrection(before, model.TypeSlogan, "나경원", nil)
	after, afterConf := c.Classify("나경원", nil, nil, 0)

	assert.Equal(t, before, after)
	assert.Equal(t, beforeConf, afterConf)

	corrections := c.Corrections()
	require.Len(t, corrections, 1)
	assert.Equal(t, before, corrections[0].Original)
	assert.Equal(t, model.TypeSlogan, corrections[0].Corrected)
}

func TestStats(t *testing.T) {
	c := newTestClassifier(t)

	fragments := []model.TextFragment{
		{Text: "02-784-1234"},
		{Text: "010-1234-5678"},
		{Text: "나경원"},
	}
	c.ClassifyBatch(fragments, 842)

	stats := c.Stats()
	require.Contains(t, stats, model.TypeContact)
	assert.Equal(t, 2, stats[model.TypeContact].Count)
	assert.Greater(t, stats[model.TypeContact].AvgConfidence, 0.0)

	require.Contains(t, stats, model.TypeCandidateName)
	assert.Equal(t, 1, stats[model.TypeCandidateName].Count)
}
