package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yang-jeongman/snapmobile/internal/model"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(DefaultConfig())
	require.NoError(t, err)
	return a
}

func obj(id string, x, y float64, page int) model.ClassifiedObject {
	return model.ClassifiedObject{
		ID:          id,
		Type:        model.TypeParagraph,
		Content:     id,
		BoundingBox: model.BoundingBox{X: x, Y: y, Page: page},
	}
}

func TestAnalyzeLayout_EmptyInput(t *testing.T) {
	a := newTestAnalyzer(t)

	result := a.AnalyzeLayout(nil)
	assert.Empty(t, result.Pages)
	assert.Empty(t, result.Order)
}

func TestAnalyzeLayout_SingleFragment(t *testing.T) {
	a := newTestAnalyzer(t)

	result := a.AnalyzeLayout([]model.ClassifiedObject{obj("a", 100, 200, 1)})
	require.Contains(t, result.Pages, 1)

	page := result.Pages[1]
	assert.Equal(t, []float64{100}, page.Columns)
	require.Len(t, page.Groups, 1)
	assert.Equal(t, []string{"a"}, page.Groups[0].ObjectIDs)
	assert.Equal(t, []string{"a"}, page.ReadingOrder)
	assert.Equal(t, []string{"a"}, page.Zones.Body, "degenerate y-range puts everything in the body")
	assert.Equal(t, PageCover, page.Type)
}

func TestAnalyzeLayout_GroupsArePartition(t *testing.T) {
	a := newTestAnalyzer(t)

	objects := []model.ClassifiedObject{
		obj("a", 50, 100, 1),
		obj("b", 50, 120, 1),
		obj("c", 50, 200, 1),
		obj("d", 300, 110, 1),
		obj("e", 300, 400, 1),
		obj("f", 50, 700, 1),
	}
	result := a.AnalyzeLayout(objects)
	page := result.Pages[1]

	seen := make(map[string]int)
	for _, g := range page.Groups {
		for _, id := range g.ObjectIDs {
			seen[id]++
		}
	}
	require.Len(t, seen, len(objects), "no object dropped")
	for id, n := range seen {
		assert.Equal(t, 1, n, "object %s appears in exactly one group", id)
	}

	assert.Len(t, page.ReadingOrder, len(objects))
	assert.Len(t, result.Order, len(objects))
	for _, o := range result.Order {
		assert.NotEmpty(t, o.GroupID)
	}
}

func TestAnalyzeLayout_GroupThreshold(t *testing.T) {
	a := newTestAnalyzer(t)

	// 30 units apart stays together, more than 30 splits.
	objects := []model.ClassifiedObject{
		obj("a", 50, 100, 1),
		obj("b", 50, 130, 1),
		obj("c", 50, 161, 1),
	}
	result := a.AnalyzeLayout(objects)
	page := result.Pages[1]

	require.Len(t, page.Groups, 2)
	assert.Equal(t, "page1_group0", page.Groups[0].ID)
	assert.Equal(t, []string{"a", "b"}, page.Groups[0].ObjectIDs)
	assert.Equal(t, "page1_group1", page.Groups[1].ID)
	assert.Equal(t, []string{"c"}, page.Groups[1].ObjectIDs)
}

func TestDetectColumns(t *testing.T) {
	a := newTestAnalyzer(t)

	tests := []struct {
		name string
		xs   []float64
		want []float64
	}{
		{name: "none", xs: nil, want: []float64{}},
		{name: "single", xs: []float64{120}, want: []float64{120}},
		{name: "merged within threshold", xs: []float64{50, 80, 95}, want: []float64{50}},
		{name: "split beyond threshold", xs: []float64{50, 80, 300, 320}, want: []float64{50, 300}},
		{name: "duplicates collapse", xs: []float64{50, 50, 300}, want: []float64{50, 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			objects := make([]model.ClassifiedObject, len(tt.xs))
			for i, x := range tt.xs {
				objects[i] = obj("o", x, float64(i)*10, 1)
			}
			got := a.detectColumns(objects)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnalyzeLayout_TwoColumnReadingOrder(t *testing.T) {
	a := newTestAnalyzer(t)

	// Interleaved y positions across two columns; reading order must finish
	// the left column before starting the right one.
	objects := []model.ClassifiedObject{
		obj("r1", 300, 100, 1),
		obj("l1", 50, 110, 1),
		obj("l2", 50, 300, 1),
		obj("r2", 300, 310, 1),
	}
	result := a.AnalyzeLayout(objects)
	page := result.Pages[1]

	require.Len(t, page.Columns, 2)
	assert.Equal(t, []string{"l1", "l2", "r1", "r2"}, page.ReadingOrder)
}

func TestAnalyzeLayout_SingleColumnReadingOrder(t *testing.T) {
	a := newTestAnalyzer(t)

	objects := []model.ClassifiedObject{
		obj("c", 60, 300, 1),
		obj("a", 50, 100, 1),
		obj("b", 80, 100, 1),
	}
	result := a.AnalyzeLayout(objects)
	page := result.Pages[1]

	require.Len(t, page.Columns, 1)
	assert.Equal(t, []string{"a", "b", "c"}, page.ReadingOrder, "ties on y break on x")
}

func TestAnalyzeLayout_Zones(t *testing.T) {
	a := newTestAnalyzer(t)

	objects := []model.ClassifiedObject{
		obj("top", 50, 0, 1),
		obj("mid", 50, 500, 1),
		obj("bot", 50, 1000, 1),
		obj("edge", 50, 100, 1), // exactly 10%, belongs to the body
		obj("pad", 50, 400, 1),
		obj("pad2", 50, 600, 1),
	}
	result := a.AnalyzeLayout(objects)
	z := result.Pages[1].Zones

	assert.Equal(t, []string{"top"}, z.Header)
	assert.Equal(t, []string{"bot"}, z.Footer)
	assert.ElementsMatch(t, []string{"mid", "edge", "pad", "pad2"}, z.Body)
}

func TestAnalyzeLayout_DocumentOrderSpansPages(t *testing.T) {
	a := newTestAnalyzer(t)

	objects := []model.ClassifiedObject{
		obj("p2a", 50, 100, 2),
		obj("p1a", 50, 100, 1),
		obj("p1b", 50, 200, 1),
	}
	result := a.AnalyzeLayout(objects)

	require.Len(t, result.Order, 3)
	assert.Equal(t, "p1a", result.Order[0].ID)
	assert.Equal(t, "p1b", result.Order[1].ID)
	assert.Equal(t, "p2a", result.Order[2].ID)
}

func TestInferPageType(t *testing.T) {
	a := newTestAnalyzer(t)

	withContent := func(page int, contents ...string) []model.ClassifiedObject {
		objects := make([]model.ClassifiedObject, len(contents))
		for i, content := range contents {
			objects[i] = model.ClassifiedObject{
				ID:          content,
				Type:        model.TypeParagraph,
				Content:     content,
				BoundingBox: model.BoundingBox{X: 50, Y: float64(i) * 40, Page: page},
			}
		}
		return objects
	}
	filler := []string{"본문", "본문", "본문", "본문", "본문", "본문"}

	t.Run("sparse first page is a cover", func(t *testing.T) {
		got := a.inferPageType(1, 3, withContent(1, "나경원", "동작구"))
		assert.Equal(t, PageCover, got)
	})

	t.Run("last page with contact keyword", func(t *testing.T) {
		objects := withContent(3, append(filler, "선거사무소 안내")...)
		assert.Equal(t, PageContact, a.inferPageType(3, 3, objects))
		// Same text on a middle page is not a contact page.
		assert.NotEqual(t, PageContact, a.inferPageType(2, 3, objects))
	})

	t.Run("two keyword hits qualify", func(t *testing.T) {
		objects := withContent(2, append(filler, "핵심 공약", "지하철 유치 추진")...)
		assert.Equal(t, PagePledge, a.inferPageType(2, 3, objects))
	})

	t.Run("one keyword hit does not qualify", func(t *testing.T) {
		objects := withContent(2, append(filler, "공약 안내")...)
		assert.Equal(t, PageContent, a.inferPageType(2, 3, objects))
	})

	t.Run("pledge outranks profile on mixed pages", func(t *testing.T) {
		objects := withContent(2, append(filler, "공약 추진", "학력 및 경력")...)
		assert.Equal(t, PagePledge, a.inferPageType(2, 3, objects))
	})

	t.Run("object type fallback", func(t *testing.T) {
		objects := withContent(2, filler...)
		objects[0].Type = model.TypeTable
		assert.Equal(t, PageProfile, a.inferPageType(2, 3, objects))

		objects[0].Type = model.TypePromiseNumber
		assert.Equal(t, PagePledge, a.inferPageType(2, 3, objects))

		objects[0].Type = model.TypeAchievement
		assert.Equal(t, PageAchievement, a.inferPageType(2, 3, objects))
	})

	t.Run("fallback precedence ignores document order", func(t *testing.T) {
		// A table anywhere on the page wins even when an achievement or
		// promise object comes first.
		objects := withContent(2, filler...)
		objects[0].Type = model.TypeAchievement
		objects[1].Type = model.TypeTable
		assert.Equal(t, PageProfile, a.inferPageType(2, 3, objects))

		objects[1].Type = model.TypePromiseNumber
		assert.Equal(t, PagePledge, a.inferPageType(2, 3, objects))
	})

	t.Run("default content", func(t *testing.T) {
		assert.Equal(t, PageContent, a.inferPageType(2, 3, withContent(2, filler...)))
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero column threshold", mutate: func(c *Config) { c.ColumnThreshold = 0 }},
		{name: "negative group threshold", mutate: func(c *Config) { c.GroupThreshold = -1 }},
		{name: "no page type keywords", mutate: func(c *Config) { c.PageTypeKeywords = nil }},
		{name: "entry without keywords", mutate: func(c *Config) {
			c.PageTypeKeywords = []PageTypeKeywords{{Type: PagePledge}}
		}},
		{name: "no contact keywords", mutate: func(c *Config) { c.ContactKeywords = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, DefaultConfig().Validate())
}
