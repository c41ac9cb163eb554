// Package format renders numeric values for display with locale-aware
// thousand separators.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// English locale keeps separators consistent across environments.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Number formats an integer with thousand separators.
// Example: Number(18248) returns "18,248".
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// Float formats a float with the given precision and thousand separators
// in the integer part. Example: Float(1234.567, 2) returns "1,234.57".
func Float(f float64, precision int) string {
	if precision <= 0 {
		return Number(int64(math.Round(f)))
	}
	return printer.Sprintf("%.*f", precision, f)
}

// Weight renders a kilogram value, e.g. "2.5 kg".
func Weight(kg float64) string {
	return Float(kg, 1) + " kg"
}

// Carbon renders a kg CO2 value, e.g. "2.40 kg CO2".
func Carbon(kg float64) string {
	return Float(kg, 2) + " kg CO2"
}

// Percent renders a percentage with one decimal, e.g. "75.0%".
func Percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
