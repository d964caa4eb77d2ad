package analytics

import "errors"

// ErrMarginTooHigh is returned when the requested target margin leaves no
// room for cost: at 100% or above the recommended-price formula divides by
// zero or goes negative, so the simulator reports an error instead.
var ErrMarginTooHigh = errors.New("target margin must be below 100%")

// PriceTier bounds one market tier by the maximum price that still falls in
// it. Thresholds are currency-unit specific, so they live in configuration
// rather than in code.
type PriceTier struct {
	MaxPrice float64 `json:"maxPrice" yaml:"max_price"`
	Market   string  `json:"market" yaml:"market"`
}

// DefaultPriceTiers is the built-in tier table, in pesos.
func DefaultPriceTiers() []PriceTier {
	return []PriceTier{
		{MaxPrice: 100, Market: "budget"},
		{MaxPrice: 300, Market: "mid-range"},
		{MaxPrice: 500, Market: "premium"},
		{Market: "luxury"}, // no upper bound
	}
}

// PriceRecommendation is the pricing simulator's output for one recipe.
type PriceRecommendation struct {
	CostPerServing   float64 `json:"costPerServing"`
	TargetMarginPct  float64 `json:"targetMarginPct"`
	RecommendedPrice float64 `json:"recommendedPrice"`
	Market           string  `json:"market"`
}

// RecommendPrice computes the selling price that achieves the target profit
// margin for a given cost per serving, and classifies it against the tier
// table. Tiers are matched in order; an entry with MaxPrice 0 is unbounded.
func RecommendPrice(costPerServing, targetMarginPct float64, tiers []PriceTier) (PriceRecommendation, error) {
	if targetMarginPct >= 100 {
		return PriceRecommendation{}, ErrMarginTooHigh
	}
	if len(tiers) == 0 {
		tiers = DefaultPriceTiers()
	}

	price := costPerServing / (1 - targetMarginPct/100)

	rec := PriceRecommendation{
		CostPerServing:   costPerServing,
		TargetMarginPct:  targetMarginPct,
		RecommendedPrice: price,
	}
	for _, tier := range tiers {
		rec.Market = tier.Market
		if tier.MaxPrice == 0 || price < tier.MaxPrice {
			break
		}
	}
	return rec, nil
}
