package pricing

import (
	"strings"

	"swiftride/internal/domain"
)

// Per-mile rates for each ride category.
const (
	economyRate = 5
	luxuryRate  = 10
	poolRate    = 3
)

// policy is a stateless fare strategy: a display name and a fixed
// per-mile rate.
type policy struct {
	name    string
	perMile float64
}

func (p policy) Name() string { return p.name }

func (p policy) CalculateFare(distanceMiles float64) float64 {
	return distanceMiles * p.perMile
}

// Category lookup is case-insensitive; keys are lower case.
var policies = map[string]domain.FarePolicy{
	"economy": policy{name: "Economy", perMile: economyRate},
	"luxury":  policy{name: "Luxury", perMile: luxuryRate},
	"pool":    policy{name: "Pool", perMile: poolRate},
}

// ForCategory resolves a category string to its fare policy. Unknown
// categories fail with an UnknownCategoryError carrying the input in
// its original case.
func ForCategory(category string) (domain.FarePolicy, error) {
	p, ok := policies[strings.ToLower(category)]
	if !ok {
		return nil, &UnknownCategoryError{Category: category}
	}
	return p, nil
}

// UnknownCategoryError is returned when a ride category is not one of
// the recognized set.
type UnknownCategoryError struct {
	// Category is the requested category, unmodified.
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return "invalid ride type: " + e.Category
}
