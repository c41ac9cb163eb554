package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ecobin-app/ecobin/internal/format"
	"github.com/ecobin-app/ecobin/internal/impact"
	"github.com/ecobin-app/ecobin/internal/timerange"
	"github.com/ecobin-app/ecobin/internal/waste"
)

// Shared lipgloss styles for CLI output.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderStats renders the waste statistics block for one window.
func renderStats(stats waste.Stats, rng timerange.Range) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Waste Statistics (%s)", rng)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Items logged:"), format.Number(int64(stats.TotalItems))))
	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Total weight:"), format.Weight(stats.TotalWeight)))
	b.WriteString(fmt.Sprintf("  %s %s items/day\n", labelStyle.Render("Daily average:"), format.Float(stats.DailyAverage, 2)))
	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Recycling rate:"), format.Percent(stats.RecyclingRate)))

	if len(stats.CategoryBreakdown) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("  By category:"))
		b.WriteString("\n")
		for _, line := range breakdownLines(stats.CategoryBreakdown) {
			b.WriteString("    " + line + "\n")
		}
	}

	return b.String()
}

// breakdownLines renders category counts in catalog display order.
func breakdownLines(breakdown map[waste.Category]int) []string {
	categories := make([]waste.Category, 0, len(breakdown))
	for c := range breakdown {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categoryOrder(categories[i]) < categoryOrder(categories[j])
	})

	lines := make([]string, 0, len(categories))
	for _, c := range categories {
		meta := waste.Describe(c)
		lines = append(lines, fmt.Sprintf("%s %s: %d", meta.Icon, meta.DisplayName, breakdown[c]))
	}
	return lines
}

func categoryOrder(c waste.Category) int {
	for i, known := range waste.Categories {
		if c == known {
			return i
		}
	}
	return len(waste.Categories)
}

// renderImpactTotal renders the aggregate impact block for one window.
func renderImpactTotal(total impact.Total, rng timerange.Range) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Environmental Impact (%s)", rng)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Records:"), format.Number(int64(total.TotalItems))))
	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Carbon saved:"), format.Carbon(total.CarbonSaved)))
	b.WriteString(fmt.Sprintf("  %s %s tree-years\n", labelStyle.Render("Trees equivalent:"), format.Float(total.TreesEquivalent, 2)))
	b.WriteString(fmt.Sprintf("  %s %s liters\n", labelStyle.Render("Water saved:"), format.Float(total.WaterSaved, 0)))
	b.WriteString(fmt.Sprintf("  %s %s kWh\n", labelStyle.Render("Energy saved:"), format.Float(total.EnergySaved, 0)))

	return b.String()
}

// renderImpactRecord renders a freshly derived impact record after logging.
func renderImpactRecord(rec impact.Record) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Carbon footprint:"), format.Carbon(rec.CarbonFootprint)))
	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Carbon saved:"), format.Carbon(rec.CarbonSaved)))
	b.WriteString(fmt.Sprintf("  %s %s tree-years\n", labelStyle.Render("Trees equivalent:"), format.Float(rec.TreesEquivalent, 4)))
	b.WriteString(fmt.Sprintf("  %s %s liters\n", labelStyle.Render("Water saved:"), format.Float(rec.WaterSaved, 0)))
	b.WriteString(fmt.Sprintf("  %s %s kWh\n", labelStyle.Render("Energy saved:"), format.Float(rec.EnergySaved, 0)))

	return b.String()
}

// renderClassification renders a classifier result with its guidance.
func renderClassification(c waste.Classification) string {
	var b strings.Builder
	meta := waste.Describe(c.Category)

	b.WriteString(titleStyle.Render("Classification Result"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s %s %s\n", labelStyle.Render("Category:"), meta.Icon, meta.DisplayName))
	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Confidence:"), format.Percent(c.Confidence*100)))

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("  Disposal suggestions:"))
	b.WriteString("\n")
	for _, s := range c.Suggestions {
		b.WriteString("    - " + s + "\n")
	}

	if len(c.Alternatives) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("  Alternatives:"))
		b.WriteString("\n")
		for _, a := range c.Alternatives {
			b.WriteString("    - " + a + "\n")
		}
	}

	return b.String()
}
