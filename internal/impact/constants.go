package impact

import "github.com/ecobin-app/ecobin/internal/waste"

// Impact Formula Constants
//
// Carbon factors convert waste weight to an estimated CO2 footprint:
//
//	carbonFootprint = weight_kg * factor
const (
	// CarbonFactorOrganic is kg CO2 per kg of organic waste.
	CarbonFactorOrganic = 0.2

	// CarbonFactorPaper is kg CO2 per kg of paper.
	CarbonFactorPaper = 0.8

	// CarbonFactorGlass is kg CO2 per kg of glass.
	CarbonFactorGlass = 0.5

	// CarbonFactorPlastic is kg CO2 per kg of plastic.
	CarbonFactorPlastic = 1.5

	// CarbonFactorMetal is kg CO2 per kg of metal.
	CarbonFactorMetal = 2.0

	// CarbonFactorHazardous is kg CO2 per kg of hazardous waste.
	CarbonFactorHazardous = 3.0

	// CarbonFactorElectronic is kg CO2 per kg of electronic waste.
	CarbonFactorElectronic = 5.0

	// CarbonFactorDefault applies to any category outside the fixed set.
	CarbonFactorDefault = 1.0
)

// Derivation constants.
const (
	// ProperDisposalSavingsRatio is the share of the footprint assumed
	// saved through proper disposal.
	ProperDisposalSavingsRatio = 0.8

	// TreeAbsorptionKgPerYear is kg CO2 absorbed by one mature tree per year.
	TreeAbsorptionKgPerYear = 21.77

	// WaterSavedLitersPerKg is liters of water saved per kg of waste
	// diverted.
	WaterSavedLitersPerKg = 100.0

	// EnergySavedKWhPerKg is kWh of energy saved per kg of waste diverted.
	EnergySavedKWhPerKg = 50.0

	// DefaultComputeWeightKg substitutes for an unspecified (zero) weight
	// during impact computation only; the source record keeps its own
	// weight.
	DefaultComputeWeightKg = 0.5
)

// carbonFactors maps each waste category to its carbon factor.
var carbonFactors = map[waste.Category]float64{
	waste.Organic:    CarbonFactorOrganic,
	waste.Paper:      CarbonFactorPaper,
	waste.Glass:      CarbonFactorGlass,
	waste.Plastic:    CarbonFactorPlastic,
	waste.Metal:      CarbonFactorMetal,
	waste.Hazardous:  CarbonFactorHazardous,
	waste.Electronic: CarbonFactorElectronic,
}

// CarbonFactor returns the per-category carbon factor, or the default for
// any category outside the fixed set.
func CarbonFactor(c waste.Category) float64 {
	if factor, ok := carbonFactors[c]; ok {
		return factor
	}
	return CarbonFactorDefault
}
