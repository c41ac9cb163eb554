package impact

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecobin-app/ecobin/internal/waste"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name          string
		record        waste.Record
		wantFootprint float64
		wantSaved     float64
		wantTrees     float64
		wantWater     float64
		wantEnergy    float64
	}{
		{
			// Reference scenario: 2kg of plastic.
			name:          "plastic 2kg",
			record:        waste.Record{Category: waste.Plastic, Weight: 2.0},
			wantFootprint: 3.0,
			wantSaved:     2.4,
			wantTrees:     2.4 / 21.77, // ~0.1103
			wantWater:     200,
			wantEnergy:    100,
		},
		{
			// Unspecified weight uses the 0.5kg default for computation only.
			name:          "hazardous with zero weight",
			record:        waste.Record{Category: waste.Hazardous, Weight: 0},
			wantFootprint: 1.5,
			wantSaved:     1.2,
			wantTrees:     1.2 / 21.77,
			wantWater:     50,
			wantEnergy:    25,
		},
		{
			name:          "organic 1kg",
			record:        waste.Record{Category: waste.Organic, Weight: 1.0},
			wantFootprint: 0.2,
			wantSaved:     0.16,
			wantTrees:     0.16 / 21.77,
			wantWater:     100,
			wantEnergy:    50,
		},
		{
			name:          "electronic 3kg",
			record:        waste.Record{Category: waste.Electronic, Weight: 3.0},
			wantFootprint: 15.0,
			wantSaved:     12.0,
			wantTrees:     12.0 / 21.77,
			wantWater:     300,
			wantEnergy:    150,
		},
		{
			name:          "unknown category uses default factor",
			record:        waste.Record{Category: waste.Category("styrofoam"), Weight: 2.0},
			wantFootprint: 2.0,
			wantSaved:     1.6,
			wantTrees:     1.6 / 21.77,
			wantWater:     200,
			wantEnergy:    100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.record)
			assert.InDelta(t, tt.wantFootprint, got.CarbonFootprint, 1e-9)
			assert.InDelta(t, tt.wantSaved, got.CarbonSaved, 1e-9)
			assert.InDelta(t, tt.wantTrees, got.TreesEquivalent, 1e-9)
			assert.InDelta(t, tt.wantWater, got.WaterSaved, 1e-9)
			assert.InDelta(t, tt.wantEnergy, got.EnergySaved, 1e-9)
		})
	}
}

func TestComputeDeterministic(t *testing.T) {
	rec := waste.Record{Category: waste.Metal, Weight: 1.25}
	assert.Equal(t, Compute(rec), Compute(rec))
}

func TestComputeSavingsRatioHoldsForAllCategories(t *testing.T) {
	for _, c := range waste.Categories {
		rec := waste.Record{Category: c, Weight: 1.7}
		got := Compute(rec)
		assert.InDelta(t, got.CarbonFootprint*0.8, got.CarbonSaved, 1e-9, "category %s", c)
	}
}

func TestComputeDoesNotMutateSource(t *testing.T) {
	rec := waste.Record{Category: waste.Hazardous, Weight: 0}
	_ = Compute(rec)
	assert.Equal(t, 0.0, rec.Weight)
}

func TestCarbonFactor(t *testing.T) {
	assert.Equal(t, 0.2, CarbonFactor(waste.Organic))
	assert.Equal(t, 0.8, CarbonFactor(waste.Paper))
	assert.Equal(t, 0.5, CarbonFactor(waste.Glass))
	assert.Equal(t, 1.5, CarbonFactor(waste.Plastic))
	assert.Equal(t, 2.0, CarbonFactor(waste.Metal))
	assert.Equal(t, 3.0, CarbonFactor(waste.Hazardous))
	assert.Equal(t, 5.0, CarbonFactor(waste.Electronic))
	assert.Equal(t, 1.0, CarbonFactor(waste.Category("unknown")))
}
