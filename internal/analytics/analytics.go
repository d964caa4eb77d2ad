// Package analytics folds a snapshot of the recipe store into the
// dashboard-level summaries. Every function is a pure function of the
// snapshot passed in; nothing here writes back to the store and results are
// recomputed in full on every dashboard load.
package analytics

import (
	"sort"

	"foodcost/internal/costing"
	"foodcost/internal/models"
)

// DefaultTopCount is how many recipes the performance tables show.
const DefaultTopCount = 5

// RecipePerformance pairs a recipe with its derived metrics and qualitative
// classification for the dashboard tables.
type RecipePerformance struct {
	Recipe       models.Recipe           `json:"recipe"`
	Metrics      costing.Metrics         `json:"metrics"`
	Potential    costing.PotentialRating `json:"potential"`
	ProfitBadge  costing.BadgeLevel      `json:"profitBadge"`
	CostBadge    costing.BadgeLevel      `json:"costBadge"`
	Flag         *costing.Flag           `json:"flag,omitempty"`
}

// Summary holds the dashboard overview panel values. Averages are 0 when the
// collection is empty.
type Summary struct {
	TotalRecipes        int     `json:"totalRecipes"`
	AverageProfitMargin float64 `json:"averageProfitMargin"`
	AverageFoodCost     float64 `json:"averageFoodCost"`
	AverageSellingPrice float64 `json:"averageSellingPrice"`
}

// Summarize computes the overview statistics for a store snapshot.
func Summarize(recipes []models.Recipe) Summary {
	s := Summary{TotalRecipes: len(recipes)}
	if len(recipes) == 0 {
		return s
	}

	var marginSum, costSum, priceSum float64
	for _, r := range recipes {
		m := metricsOf(r)
		marginSum += m.ProfitMargin
		costSum += m.FoodCostPct
		priceSum += r.SellingPrice
	}

	n := float64(len(recipes))
	s.AverageProfitMargin = marginSum / n
	s.AverageFoodCost = costSum / n
	s.AverageSellingPrice = priceSum / n
	return s
}

// Performance derives the per-recipe dashboard rows for a snapshot, in the
// snapshot's iteration order.
func Performance(recipes []models.Recipe) []RecipePerformance {
	rows := make([]RecipePerformance, 0, len(recipes))
	for _, r := range recipes {
		m := metricsOf(r)
		row := RecipePerformance{
			Recipe:      r,
			Metrics:     m,
			Potential:   costing.RatePotential(m.ProfitMargin, m.FoodCostPct),
			ProfitBadge: costing.ProfitBadge(m.ProfitMargin),
			CostBadge:   costing.CostBadge(m.FoodCostPct),
		}
		if flag, ok := costing.AttentionFlag(m.ProfitMargin, m.FoodCostPct); ok {
			row.Flag = &flag
		}
		rows = append(rows, row)
	}
	return rows
}

// TopRecipes returns up to n recipes sorted descending by profit margin.
// The sort is stable: ties keep the snapshot's iteration order.
func TopRecipes(recipes []models.Recipe, n int) []RecipePerformance {
	rows := Performance(recipes)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Metrics.ProfitMargin > rows[j].Metrics.ProfitMargin
	})
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// AttentionRecipes returns up to n flagged recipes in the snapshot's
// iteration order.
func AttentionRecipes(recipes []models.Recipe, n int) []RecipePerformance {
	flagged := make([]RecipePerformance, 0, len(recipes))
	for _, row := range Performance(recipes) {
		if row.Flag == nil {
			continue
		}
		flagged = append(flagged, row)
		if len(flagged) == n {
			break
		}
	}
	return flagged
}

// metricsOf derives metrics for one stored recipe. Stored recipes passed
// validation on save, so a bad serving count here means a corrupted entry;
// it renders as all-zero rather than poisoning the aggregate.
func metricsOf(r models.Recipe) costing.Metrics {
	m, err := costing.ComputeRecipe(r)
	if err != nil {
		return costing.Metrics{}
	}
	return m
}
