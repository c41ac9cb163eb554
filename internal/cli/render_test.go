package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecobin-app/ecobin/internal/impact"
	"github.com/ecobin-app/ecobin/internal/timerange"
	"github.com/ecobin-app/ecobin/internal/waste"
)

func TestBreakdownLines_CatalogOrder(t *testing.T) {
	breakdown := map[waste.Category]int{
		waste.Hazardous: 1,
		waste.Organic:   3,
		waste.Plastic:   2,
	}

	lines := breakdownLines(breakdown)

	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Organic Waste: 3")
	assert.Contains(t, lines[1], "Plastic: 2")
	assert.Contains(t, lines[2], "Hazardous: 1")
}

func TestRenderStats_OmitsEmptyBreakdown(t *testing.T) {
	out := renderStats(waste.Stats{}, timerange.Week)

	assert.Contains(t, out, "Waste Statistics (week)")
	assert.Contains(t, out, "Recycling rate: 0.0%")
	assert.NotContains(t, out, "By category")
}

func TestRenderImpactRecord(t *testing.T) {
	rec := impact.Record{
		Metrics: impact.Metrics{
			CarbonFootprint: 3,
			CarbonSaved:     2.4,
			TreesEquivalent: 0.1102,
			WaterSaved:      200,
			EnergySaved:     100,
		},
	}

	out := renderImpactRecord(rec)

	assert.Contains(t, out, "Carbon footprint: 3.00 kg CO2")
	assert.Contains(t, out, "Carbon saved: 2.40 kg CO2")
	assert.Contains(t, out, "0.1102 tree-years")
	assert.Contains(t, out, "200 liters")
	assert.Contains(t, out, "100 kWh")
}

func TestRenderClassification(t *testing.T) {
	c := waste.Classification{
		Category:    waste.Paper,
		Confidence:  0.85,
		Suggestions: waste.DisposalSuggestions(waste.Paper),
	}

	out := renderClassification(c)

	assert.Contains(t, out, "Paper")
	assert.Contains(t, out, "Confidence: 85.0%")
	assert.Contains(t, out, "Disposal suggestions:")
}
