package analytics

import "errors"

// ErrNoCompetitorPrice is returned when a comparison is requested without a
// positive competitor price. The operation reports "no input" rather than
// dividing by zero.
var ErrNoCompetitorPrice = errors.New("competitor price is required")

// PricingStrategy labels the market positioning that follows from a price
// comparison.
type PricingStrategy string

const (
	StrategyPremium     PricingStrategy = "premium"
	StrategyValue       PricingStrategy = "value"
	StrategyCompetitive PricingStrategy = "competitive"
	StrategyAligned     PricingStrategy = "aligned"
)

// PriceComparison is the result of comparing the menu's average price to one
// competitor price.
type PriceComparison struct {
	AveragePrice    float64         `json:"averagePrice"`
	CompetitorPrice float64         `json:"competitorPrice"`
	PercentDiff     float64         `json:"percentDiff"`
	Strategy        PricingStrategy `json:"strategy"`
	Recommendation  string          `json:"recommendation"`
}

// ComparePricing positions the menu's average selling price against a
// competitor price. Bands are checked in order; the first match wins.
func ComparePricing(avgOwnPrice, competitorPrice float64) (PriceComparison, error) {
	if competitorPrice <= 0 {
		return PriceComparison{}, ErrNoCompetitorPrice
	}

	diff := (avgOwnPrice - competitorPrice) / competitorPrice * 100

	cmp := PriceComparison{
		AveragePrice:    avgOwnPrice,
		CompetitorPrice: competitorPrice,
		PercentDiff:     diff,
	}

	switch {
	case diff > 20:
		cmp.Strategy = StrategyPremium
		cmp.Recommendation = "Your prices are significantly higher. Consider value justification or price adjustment."
	case diff > 5:
		cmp.Strategy = StrategyPremium
		cmp.Recommendation = "Your prices are moderately higher. Emphasize quality and service."
	case diff < -20:
		cmp.Strategy = StrategyValue
		cmp.Recommendation = "Your prices are much lower. There may be room for price increases."
	case diff < -5:
		cmp.Strategy = StrategyCompetitive
		cmp.Recommendation = "Your prices are competitive. Good positioning for market penetration."
	default:
		cmp.Strategy = StrategyAligned
		cmp.Recommendation = "Your prices are well-aligned with competitors."
	}

	return cmp, nil
}
