package fuel

import (
	"fmt"
	"strings"
)

type simpleCalculator struct{}

type recursiveCalculator struct{}

// New creates the Calculator for the given variant.
func New(v Variant) (Calculator, error) {
	switch v {
	case VariantSimple:
		return &simpleCalculator{}, nil
	case VariantRecursive:
		return &recursiveCalculator{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, string(v))
	}
}

// ParseVariant resolves a variant name, ignoring case and surrounding whitespace.
func ParseVariant(raw string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(raw)))
	switch v {
	case VariantSimple, VariantRecursive:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, raw)
	}
}

// Requirement returns floor(mass/3) - 2. Small masses yield negative values.
func Requirement(mass int) int {
	return floorDiv(mass, 3) - 2
}

func (c *simpleCalculator) ModuleFuel(mass int) int {
	return Requirement(mass)
}

func (c *recursiveCalculator) ModuleFuel(mass int) int {
	total := 0
	for fuel := Requirement(mass); fuel > 0; fuel = Requirement(fuel) {
		total += fuel
	}
	return total
}

// Sum adds up the fuel required by every module in masses.
func Sum(calc Calculator, masses []int) int {
	total := 0
	for _, mass := range masses {
		total += calc.ModuleFuel(mass)
	}
	return total
}

// floorDiv rounds toward negative infinity, unlike Go's truncating division.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
