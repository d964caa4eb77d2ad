package costing

// PotentialRating is the qualitative profitability rating shown on the
// dashboard for one recipe.
type PotentialRating string

const (
	PotentialExcellent PotentialRating = "Excellent"
	PotentialGood      PotentialRating = "Good"
	PotentialAverage   PotentialRating = "Average"
	PotentialPoor      PotentialRating = "Poor"
)

// BadgeLevel classifies a percentage metric into a display band.
type BadgeLevel string

const (
	BadgeHigh   BadgeLevel = "high"
	BadgeMedium BadgeLevel = "medium"
	BadgeLow    BadgeLevel = "low"
)

// RatePotential rates a recipe from its profit margin and food cost
// percentage. Rules are checked in order; the first match wins.
func RatePotential(profitMargin, foodCostPct float64) PotentialRating {
	switch {
	case profitMargin >= 50 && foodCostPct <= 30:
		return PotentialExcellent
	case profitMargin >= 35 && foodCostPct <= 35:
		return PotentialGood
	case profitMargin >= 25 && foodCostPct <= 40:
		return PotentialAverage
	default:
		return PotentialPoor
	}
}

// ProfitBadge classifies a profit margin percentage.
func ProfitBadge(margin float64) BadgeLevel {
	switch {
	case margin >= 50:
		return BadgeHigh
	case margin >= 30:
		return BadgeMedium
	default:
		return BadgeLow
	}
}

// CostBadge classifies a food cost percentage. Note the band order is the
// inverse of ProfitBadge: a low food cost is the good outcome.
func CostBadge(cost float64) BadgeLevel {
	switch {
	case cost <= 30:
		return BadgeLow
	case cost <= 40:
		return BadgeMedium
	default:
		return BadgeHigh
	}
}

// Flag marks a recipe that needs attention, with the suggested operator
// action. At most one flag applies per recipe.
type Flag struct {
	Issue  string `json:"issue"`
	Impact string `json:"impact"`
	Action string `json:"action"`
}

// AttentionFlag returns the attention flag for a recipe, if any. Rules are
// checked in order; the first match wins.
func AttentionFlag(profitMargin, foodCostPct float64) (Flag, bool) {
	switch {
	case profitMargin < 20:
		return Flag{Issue: "Low Profit", Impact: "High", Action: "Increase Price"}, true
	case foodCostPct > 40:
		return Flag{Issue: "High Food Cost", Impact: "Medium", Action: "Optimize Ingredients"}, true
	case profitMargin < 30:
		return Flag{Issue: "Below Target", Impact: "Low", Action: "Review Pricing"}, true
	default:
		return Flag{}, false
	}
}
