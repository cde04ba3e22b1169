package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yang-jeongman/snapmobile/internal/engine"
	"github.com/yang-jeongman/snapmobile/internal/model"
)

// RenderSummary renders a boxed overview of one conversion result.
func RenderSummary(result *engine.Result) string {
	var b strings.Builder

	hero := result.Mobile.Hero
	writeField(&b, "Candidate", hero.Candidate)
	writeField(&b, "Party", hero.Party)
	writeField(&b, "Slogan", hero.Slogan)

	b.WriteString(fmt.Sprintf("\n%s %d objects on %d pages\n",
		DocIcon, len(result.Objects), len(result.Layout.Pages)))
	b.WriteString(fmt.Sprintf("%s %d cards, %d pledges, %d highlights\n",
		CardIcon, len(result.Cards), len(result.Mobile.PledgeCards), len(result.Mobile.QuickHighlights)))
	b.WriteString(fmt.Sprintf("%s %d timeline items, %d achievements, %d districts",
		ChartIcon, len(result.Mobile.TimelineItems), len(result.Mobile.Achievements), len(result.Mobile.DistrictPledges)))

	return RenderBox("Conversion Summary", b.String())
}

// RenderTypeBreakdown renders a per-type object count table, most frequent
// first.
func RenderTypeBreakdown(objects []model.ClassifiedObject) string {
	counts := make(map[model.ObjectType]int)
	for _, obj := range objects {
		counts[obj.Type]++
	}

	types := make([]model.ObjectType, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		if counts[types[i]] != counts[types[j]] {
			return counts[types[i]] > counts[types[j]]
		}
		return types[i] < types[j]
	})

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render("Type       Count"))
	for _, t := range types {
		b.WriteString(fmt.Sprintf("\n%-10s %5d", t, counts[t]))
	}
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		value = SubtleStyle.Render("(none)")
	} else {
		value = BoldStyle.Render(value)
	}
	b.WriteString(fmt.Sprintf("%s: %s\n", label, value))
}
