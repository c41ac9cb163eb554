package waste

// Metadata describes a waste category for display and guidance purposes.
// The catalog is static, defined at process start, and never persisted.
type Metadata struct {
	DisplayName  string
	Color        string
	Icon         string
	Suggestions  []string
	Alternatives []string
}

// genericSuggestion is the fallback guidance for unrecognized categories.
var genericSuggestion = []string{"Follow local waste management guidelines"}

// catalog maps each category to its display metadata and guidance lists.
var catalog = map[Category]Metadata{
	Organic: {
		DisplayName: "Organic Waste",
		Color:       "#4A6741",
		Icon:        "🌱",
		Suggestions: []string{
			"Compost in backyard or community composting facility",
			"Use for gardening and soil enrichment",
			"Avoid putting in regular trash to reduce methane emissions",
		},
		Alternatives: []string{
			"Composting system for food scraps",
			"Reusable produce bags",
			"Meal planning to reduce food waste",
		},
	},
	Plastic: {
		DisplayName: "Plastic",
		Color:       "#6B8CAE",
		Icon:        "♻️",
		Suggestions: []string{
			"Check local recycling guidelines for specific plastic types",
			"Clean and dry before recycling",
			"Consider reusable alternatives for future purchases",
		},
		Alternatives: []string{
			"Reusable water bottles and containers",
			"Beeswax wraps instead of plastic wrap",
			"Glass or stainless steel storage containers",
		},
	},
	Paper: {
		DisplayName: "Paper",
		Color:       "#B8860B",
		Icon:        "📄",
		Suggestions: []string{
			"Recycle through local paper recycling program",
			"Shred sensitive documents before recycling",
			"Consider digital alternatives to reduce paper usage",
		},
		Alternatives: []string{
			"Digital documents and cloud storage",
			"Reusable cloth towels instead of paper towels",
			"Reusable shopping bags instead of paper bags",
		},
	},
	Metal: {
		DisplayName: "Metal",
		Color:       "#8B6914",
		Icon:        "🔩",
		Suggestions: []string{
			"Most metals can be recycled infinitely",
			"Clean food residue from metal containers",
			"Separate different types of metals if required",
		},
	},
	Glass: {
		DisplayName: "Glass",
		Color:       "#C4A484",
		Icon:        "🍾",
		Suggestions: []string{
			"Glass can be recycled endlessly without quality loss",
			"Separate by color if required by local program",
			"Remove lids and caps before recycling",
		},
	},
	Electronic: {
		DisplayName: "Electronic",
		Color:       "#2D5A3D",
		Icon:        "💻",
		Suggestions: []string{
			"Use certified e-waste recycling programs",
			"Remove personal data before disposal",
			"Consider repair or donation before recycling",
		},
	},
	Hazardous: {
		DisplayName: "Hazardous",
		Color:       "#8B4513",
		Icon:        "☠️",
		Suggestions: []string{
			"Never put in regular trash or recycling",
			"Use designated hazardous waste collection programs",
			"Store safely until proper disposal is available",
		},
	},
}

// Describe returns the display metadata for a category.
// Unknown categories get a zero-value entry with the generic suggestion so
// rendering paths never fail.
func Describe(c Category) Metadata {
	if meta, ok := catalog[c]; ok {
		return meta
	}
	return Metadata{DisplayName: string(c), Suggestions: genericSuggestion}
}

// DisposalSuggestions returns the ordered disposal guidance for a category.
// Any unrecognized category gets the generic fallback; the result is never
// empty and the call never fails.
func DisposalSuggestions(c Category) []string {
	if meta, ok := catalog[c]; ok {
		return meta.Suggestions
	}
	return genericSuggestion
}

// Alternatives returns the ordered alternative-product list for a category.
// Only organic, plastic, and paper carry alternatives in the default
// catalog; every other category returns an empty list.
func Alternatives(c Category) []string {
	if meta, ok := catalog[c]; ok {
		return meta.Alternatives
	}
	return nil
}
