// Package impact derives environmental-savings estimates from waste records
// and aggregates them over time windows.
package impact

import (
	"time"

	"github.com/ecobin-app/ecobin/internal/waste"
)

// Metrics holds the derived environmental values for one waste record.
type Metrics struct {
	// CarbonFootprint is the estimated kg CO2 emitted by the item.
	CarbonFootprint float64 `json:"carbon_footprint"`

	// CarbonSaved is the kg CO2 avoided through proper disposal.
	CarbonSaved float64 `json:"carbon_saved"`

	// TreesEquivalent expresses CarbonSaved in mature-tree-years.
	TreesEquivalent float64 `json:"trees_equivalent"`

	// WaterSaved is liters of water saved.
	WaterSaved float64 `json:"water_saved"`

	// EnergySaved is kWh of energy saved.
	EnergySaved float64 `json:"energy_saved"`
}

// Record is a persisted impact estimate attached to exactly one waste
// record. Records are never mutated; they are deleted only via a bulk
// store reset.
type Record struct {
	ID          string `json:"id"`
	WasteItemID string `json:"waste_item_id"`
	Metrics
	RecordedAt time.Time `json:"recorded_at"`
}

// Compute derives the impact metrics for a waste record. It is pure and
// deterministic: the same input always yields the same metrics.
//
// A zero weight substitutes DefaultComputeWeightKg for the computation
// only; the source record is not mutated.
func Compute(rec waste.Record) Metrics {
	weight := rec.Weight
	if weight == 0 {
		weight = DefaultComputeWeightKg
	}

	footprint := weight * CarbonFactor(rec.Category)
	saved := footprint * ProperDisposalSavingsRatio

	return Metrics{
		CarbonFootprint: footprint,
		CarbonSaved:     saved,
		TreesEquivalent: saved / TreeAbsorptionKgPerYear,
		WaterSaved:      weight * WaterSavedLitersPerKg,
		EnergySaved:     weight * EnergySavedKWhPerKg,
	}
}
