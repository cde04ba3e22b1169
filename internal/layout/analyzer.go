// Package layout groups classified fragments by page geometry: column
// detection, proximity grouping, reading order, content zones, page typing
// and card-structure detection.
package layout

import (
	"fmt"
	"sort"

	"github.com/yang-jeongman/snapmobile/internal/common"
	"github.com/yang-jeongman/snapmobile/internal/model"
)

// PageTypeKeywords scores one page type; at least two keyword hits on a
// page's text qualify it. Entries are checked in slice order, first
// qualifying type wins.
type PageTypeKeywords struct {
	Type     PageType `mapstructure:"type"`
	Keywords []string `mapstructure:"keywords"`
}

// Config holds the geometric thresholds and keyword tables for layout
// analysis. All keyword lists are configuration, not code, so they can be
// tuned without touching the algorithm.
type Config struct {
	// ColumnThreshold is the x gap (in page units) that opens a new column.
	ColumnThreshold float64 `mapstructure:"column_threshold"`
	// GroupThreshold is the y gap that opens a new proximity group.
	GroupThreshold float64 `mapstructure:"group_threshold"`
	// PageTypeKeywords drives keyword-based page typing, in priority order.
	PageTypeKeywords []PageTypeKeywords `mapstructure:"page_type_keywords"`
	// ContactKeywords marks the last page as a contact page on any hit.
	ContactKeywords []string `mapstructure:"contact_keywords"`
}

// DefaultConfig returns thresholds tuned against A4 brochures at 72 DPI and
// the stock Korean election keyword tables. Pledge outranks profile because
// pledge pages often mention the candidate's career in passing.
func DefaultConfig() Config {
	return Config{
		ColumnThreshold: 50,
		GroupThreshold:  30,
		PageTypeKeywords: []PageTypeKeywords{
			{PagePledge, []string{"공약", "약속", "추진", "실현", "조성", "확충", "유치"}},
			{PageAchievement, []string{"성과", "실적", "완료", "달성", "이뤄낸", "해냈습니다"}},
			{PageProfile, []string{"학력", "경력", "약력", "프로필", "출생", "이력"}},
			{PageContact, []string{"연락처", "전화", "문의", "사무소", "캠프", "후원"}},
		},
		ContactKeywords: []string{"연락처", "전화", "문의", "후원", "사무소"},
	}
}

// Validate rejects unusable thresholds and empty keyword tables at
// construction time.
func (c Config) Validate() error {
	if c.ColumnThreshold <= 0 {
		return common.NewConfigError("layout.column_threshold", "must be positive")
	}
	if c.GroupThreshold <= 0 {
		return common.NewConfigError("layout.group_threshold", "must be positive")
	}
	if len(c.PageTypeKeywords) == 0 {
		return common.NewConfigError("layout.page_type_keywords", "must not be empty")
	}
	for _, entry := range c.PageTypeKeywords {
		if entry.Type == "" || len(entry.Keywords) == 0 {
			return common.NewConfigError("layout.page_type_keywords", "entries need a type and at least one keyword")
		}
	}
	if len(c.ContactKeywords) == 0 {
		return common.NewConfigError("layout.contact_keywords", "must not be empty")
	}
	return nil
}

// ObjectGroup is one proximity group, identified by the member object IDs in
// (y, x) order.
type ObjectGroup struct {
	ID        string   `json:"id"`
	ObjectIDs []string `json:"object_ids"`
}

// Zones assigns object IDs to the page's vertical bands: the first 10% of the
// occupied y-range is the header, the last 10% the footer, the rest body.
type Zones struct {
	Header []string `json:"header"`
	Body   []string `json:"body"`
	Footer []string `json:"footer"`
}

// PageLayout is the analysis result for one page.
type PageLayout struct {
	Type         PageType      `json:"type"`
	Columns      []float64     `json:"columns"`
	Groups       []ObjectGroup `json:"groups"`
	ReadingOrder []string      `json:"reading_order"`
	Zones        Zones         `json:"zones"`
}

// DocumentLayout is the analysis result for a whole document. Order holds
// every object in document reading order (pages ascending, each page in its
// derived reading order) with group IDs filled in.
type DocumentLayout struct {
	Pages map[int]PageLayout       `json:"pages"`
	Order []model.ClassifiedObject `json:"-"`
}

// Analyzer performs geometry-based layout analysis.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an analyzer, validating the configuration.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{cfg: cfg}, nil
}

// AnalyzeLayout analyzes every page of a classified document. Empty input
// returns an empty result rather than an error.
func (a *Analyzer) AnalyzeLayout(objects []model.ClassifiedObject) DocumentLayout {
	result := DocumentLayout{Pages: make(map[int]PageLayout)}
	if len(objects) == 0 {
		return result
	}

	byPage := make(map[int][]model.ClassifiedObject)
	for _, obj := range objects {
		byPage[obj.BoundingBox.Page] = append(byPage[obj.BoundingBox.Page], obj)
	}

	pageNums := make([]int, 0, len(byPage))
	for page := range byPage {
		pageNums = append(pageNums, page)
	}
	sort.Ints(pageNums)
	lastPage := pageNums[len(pageNums)-1]

	for _, page := range pageNums {
		pageObjects := byPage[page]
		columns := a.detectColumns(pageObjects)
		groups, grouped := a.groupByProximity(page, pageObjects)
		ordered := a.readingOrder(grouped, columns)

		layout := PageLayout{
			Type:    a.inferPageType(page, lastPage, pageObjects),
			Columns: columns,
			Groups:  groups,
			Zones:   zones(pageObjects),
		}
		for _, obj := range ordered {
			layout.ReadingOrder = append(layout.ReadingOrder, obj.ID)
		}
		result.Pages[page] = layout
		result.Order = append(result.Order, ordered...)
	}

	return result
}

// detectColumns returns column anchor x positions: sorted distinct x origins,
// greedily merged while the gap from the last anchor stays within the column
// threshold.
func (a *Analyzer) detectColumns(objects []model.ClassifiedObject) []float64 {
	seen := make(map[float64]struct{})
	xs := make([]float64, 0, len(objects))
	for _, obj := range objects {
		x := obj.BoundingBox.X
		if _, ok := seen[x]; !ok {
			seen[x] = struct{}{}
			xs = append(xs, x)
		}
	}
	sort.Float64s(xs)

	if len(xs) < 2 {
		return xs
	}
	columns := []float64{xs[0]}
	for _, x := range xs[1:] {
		if x-columns[len(columns)-1] > a.cfg.ColumnThreshold {
			columns = append(columns, x)
		}
	}
	return columns
}

// groupByProximity partitions a page's objects into groups of vertically
// adjacent fragments. The returned objects carry their group IDs; together
// the groups are a strict partition of the page.
func (a *Analyzer) groupByProximity(page int, objects []model.ClassifiedObject) ([]ObjectGroup, []model.ClassifiedObject) {
	if len(objects) == 0 {
		return nil, nil
	}

	sorted := make([]model.ClassifiedObject, len(objects))
	copy(sorted, objects)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].BoundingBox.Y != sorted[j].BoundingBox.Y {
			return sorted[i].BoundingBox.Y < sorted[j].BoundingBox.Y
		}
		return sorted[i].BoundingBox.X < sorted[j].BoundingBox.X
	})

	var groups []ObjectGroup
	current := ObjectGroup{ID: groupID(page, 0)}
	lastY := sorted[0].BoundingBox.Y

	for i := range sorted {
		y := sorted[i].BoundingBox.Y
		if i > 0 && abs(y-lastY) > a.cfg.GroupThreshold {
			groups = append(groups, current)
			current = ObjectGroup{ID: groupID(page, len(groups))}
		}
		sorted[i].GroupID = current.ID
		current.ObjectIDs = append(current.ObjectIDs, sorted[i].ID)
		lastY = y
	}
	groups = append(groups, current)

	return groups, sorted
}

// readingOrder derives the linear consumption sequence. A single column reads
// top to bottom; multiple columns read each column top to bottom, left to
// right.
func (a *Analyzer) readingOrder(objects []model.ClassifiedObject, columns []float64) []model.ClassifiedObject {
	ordered := make([]model.ClassifiedObject, len(objects))
	copy(ordered, objects)

	if len(columns) <= 1 {
		sort.SliceStable(ordered, func(i, j int) bool {
			if ordered[i].BoundingBox.Y != ordered[j].BoundingBox.Y {
				return ordered[i].BoundingBox.Y < ordered[j].BoundingBox.Y
			}
			return ordered[i].BoundingBox.X < ordered[j].BoundingBox.X
		})
		return ordered
	}

	buckets := make([][]model.ClassifiedObject, len(columns))
	for _, obj := range ordered {
		col := a.columnIndex(obj.BoundingBox.X, columns)
		buckets[col] = append(buckets[col], obj)
	}

	result := make([]model.ClassifiedObject, 0, len(ordered))
	for _, bucket := range buckets {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].BoundingBox.Y < bucket[j].BoundingBox.Y
		})
		result = append(result, bucket...)
	}
	return result
}

// columnIndex buckets an x coordinate into its nearest column anchor.
func (a *Analyzer) columnIndex(x float64, columns []float64) int {
	for i, anchor := range columns {
		if x < anchor+a.cfg.ColumnThreshold {
			return i
		}
	}
	return len(columns) - 1
}

// zones labels each object by its position within the page's occupied
// y-range. A degenerate range (single y) puts everything in the body.
func zones(objects []model.ClassifiedObject) Zones {
	var z Zones
	if len(objects) == 0 {
		return z
	}

	minY, maxY := objects[0].BoundingBox.Y, objects[0].BoundingBox.Y
	for _, obj := range objects[1:] {
		y := obj.BoundingBox.Y
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	span := maxY - minY
	for _, obj := range objects {
		if span <= 0 {
			z.Body = append(z.Body, obj.ID)
			continue
		}
		switch rel := (obj.BoundingBox.Y - minY) / span; {
		case rel < 0.1:
			z.Header = append(z.Header, obj.ID)
		case rel > 0.9:
			z.Footer = append(z.Footer, obj.ID)
		default:
			z.Body = append(z.Body, obj.ID)
		}
	}
	return z
}

func groupID(page, n int) string {
	return fmt.Sprintf("page%d_group%d", page, n)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
