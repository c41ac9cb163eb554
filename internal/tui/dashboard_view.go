package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ecobin-app/ecobin/internal/format"
	"github.com/ecobin-app/ecobin/internal/timerange"
	"github.com/ecobin-app/ecobin/internal/waste"
)

// rangeTabs is the display order of the window selector.
var rangeTabs = []timerange.Range{timerange.Week, timerange.Month, timerange.Year, timerange.All}

// View renders the current view (Bubble Tea interface).
func (m DashboardModel) View() string {
	switch m.state {
	case DashboardStateQuitting:
		return ""
	case DashboardStateError:
		return ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" + m.renderStatusBar()
	case DashboardStateLoading:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderHeader(),
			"Loading...",
			m.renderStatusBar(),
		)
	case DashboardStateReady:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderHeader(),
			m.renderPanels(),
			m.renderStatusBar(),
		)
	default:
		return ""
	}
}

// renderHeader renders the title and the window selector tabs.
func (m DashboardModel) renderHeader() string {
	tabs := make([]string, 0, len(rangeTabs))
	for _, r := range rangeTabs {
		if r == m.rng {
			tabs = append(tabs, ActiveTabStyle.Render(r.String()))
		} else {
			tabs = append(tabs, TabStyle.Render(r.String()))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("EcoBin Dashboard"),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
	)
}

// renderPanels renders the statistics and impact panels side by side, stacking
// them when the terminal is too narrow.
func (m DashboardModel) renderPanels() string {
	stats := PanelStyle.Render(m.renderStatsPanel())
	impact := PanelStyle.Render(m.renderImpactPanel())

	const minSideBySideWidth = 72
	if m.width < minSideBySideWidth {
		return lipgloss.JoinVertical(lipgloss.Left, stats, impact)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, stats, impact)
}

func (m DashboardModel) renderStatsPanel() string {
	stats := m.overview.Stats
	var b strings.Builder

	b.WriteString(PanelTitleStyle.Render("Waste"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", LabelStyle.Render("Items:"), format.Number(int64(stats.TotalItems))))
	b.WriteString(fmt.Sprintf("%s %s\n", LabelStyle.Render("Weight:"), format.Weight(stats.TotalWeight)))
	b.WriteString(fmt.Sprintf("%s %s/day\n", LabelStyle.Render("Daily avg:"), format.Float(stats.DailyAverage, 2)))
	b.WriteString(fmt.Sprintf("%s %s\n", LabelStyle.Render("Recycling:"), format.Percent(stats.RecyclingRate)))

	if len(stats.CategoryBreakdown) > 0 {
		b.WriteString("\n")
		for _, line := range breakdownLines(stats.CategoryBreakdown) {
			b.WriteString(line + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m DashboardModel) renderImpactPanel() string {
	total := m.overview.Impact
	var b strings.Builder

	b.WriteString(PanelTitleStyle.Render("Impact"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", LabelStyle.Render("Carbon saved:"), format.Carbon(total.CarbonSaved)))
	b.WriteString(fmt.Sprintf("%s %s tree-years\n", LabelStyle.Render("Trees:"), format.Float(total.TreesEquivalent, 2)))
	b.WriteString(fmt.Sprintf("%s %s liters\n", LabelStyle.Render("Water:"), format.Float(total.WaterSaved, 0)))
	b.WriteString(fmt.Sprintf("%s %s kWh\n", LabelStyle.Render("Energy:"), format.Float(total.EnergySaved, 0)))

	return strings.TrimRight(b.String(), "\n")
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

// renderStatusBar displays the key hints.
func (m DashboardModel) renderStatusBar() string {
	return m.help.View(m.keys)
}
