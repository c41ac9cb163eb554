// Package waste implements waste record logging, the category catalog, the
// pluggable classifier boundary, and time-windowed waste statistics.
package waste

import (
	"errors"
	"fmt"
)

// Category is one of the fixed waste categories.
type Category string

const (
	// Organic is compostable food and garden waste.
	Organic Category = "organic"

	// Plastic covers all plastic waste.
	Plastic Category = "plastic"

	// Paper covers paper and cardboard.
	Paper Category = "paper"

	// Metal covers metal containers and scrap.
	Metal Category = "metal"

	// Glass covers glass bottles and jars.
	Glass Category = "glass"

	// Electronic is e-waste.
	Electronic Category = "electronic"

	// Hazardous covers chemicals, batteries, and other dangerous waste.
	Hazardous Category = "hazardous"
)

// Categories lists every valid category in display order.
var Categories = []Category{Organic, Plastic, Paper, Metal, Glass, Electronic, Hazardous}

// RecyclableCategories are the categories counted toward the recycling rate.
var RecyclableCategories = []Category{Plastic, Paper, Metal, Glass}

// Validation errors.
var (
	// ErrInvalidCategory indicates a category outside the fixed set.
	ErrInvalidCategory = errors.New("invalid waste category")

	// ErrNegativeWeight indicates a weight below zero.
	ErrNegativeWeight = errors.New("weight cannot be negative")
)

// ParseCategory converts a string into a Category.
// Returns ErrInvalidCategory for values outside the fixed set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// Valid reports whether the category is one of the fixed set.
func (c Category) Valid() bool {
	switch c {
	case Organic, Plastic, Paper, Metal, Glass, Electronic, Hazardous:
		return true
	default:
		return false
	}
}

// Recyclable reports whether the category counts toward the recycling rate.
func (c Category) Recyclable() bool {
	switch c {
	case Plastic, Paper, Metal, Glass:
		return true
	default:
		return false
	}
}

// String returns the category name.
func (c Category) String() string {
	return string(c)
}
