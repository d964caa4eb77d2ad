package analytics

import (
	"math"
	"math/rand"
	"time"
)

// Defaults for the projection inputs when the operator has not supplied
// anything. DefaultAvgSellingPrice is the documented fallback used when the
// recipe collection is empty, not a silent zero.
const (
	DefaultDailySales      = 50
	DefaultSeasonalFactor  = 1.0
	DefaultAvgSellingPrice = 150.0
	DefaultBaseRevenue     = 50000.0
	DefaultForecastMonths  = 12
	DefaultTrendDays       = 30
)

// Upper bounds on request-supplied series lengths. Inputs beyond these clamp
// to the bound instead of allocating an unbounded chart.
const (
	MaxForecastMonths = 120
	MaxTrendDays      = 365
)

// RevenueProjection holds projected revenue over the standard windows.
type RevenueProjection struct {
	Daily  float64 `json:"daily"`
	Weekly float64 `json:"weekly"`
	Month  float64 `json:"monthly"`
	Annual float64 `json:"annual"`
}

// ProjectRevenue projects revenue from an assumed daily sales volume, a
// seasonal multiplier, and the average selling price across the collection.
// Pass avgSellingPrice <= 0 to use the documented default for an empty
// collection.
func ProjectRevenue(dailySales, seasonalFactor, avgSellingPrice float64) RevenueProjection {
	if avgSellingPrice <= 0 {
		avgSellingPrice = DefaultAvgSellingPrice
	}
	daily := dailySales * seasonalFactor * avgSellingPrice
	return RevenueProjection{
		Daily:  daily,
		Weekly: daily * 7,
		Month:  daily * 30,
		Annual: daily * 365,
	}
}

// ForecastPoint is one month of the synthetic revenue forecast.
type ForecastPoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// ForecastSeries produces the synthetic revenue forecast: a 5% monthly
// growth trend with a sinusoidal seasonal swing. This is a deterministic
// display placeholder, not a statistical model; the formula is fixed and
// must not be tuned.
func ForecastSeries(baseRevenue float64, months int, from time.Time) []ForecastPoint {
	if baseRevenue <= 0 {
		baseRevenue = DefaultBaseRevenue
	}
	if months <= 0 {
		months = DefaultForecastMonths
	}
	if months > MaxForecastMonths {
		months = MaxForecastMonths
	}

	series := make([]ForecastPoint, 0, months)
	for i := 0; i < months; i++ {
		growth := 1 + float64(i)*0.05
		seasonality := 1 + math.Sin(float64(i+3)*math.Pi/6)*0.2
		series = append(series, ForecastPoint{
			Month:   from.AddDate(0, i, 0).Format("Jan"),
			Revenue: baseRevenue * growth * seasonality,
		})
	}
	return series
}

// TrendPoint is one day of the synthetic profitability trend chart.
type TrendPoint struct {
	Day         string  `json:"day"`
	ProfitPct   float64 `json:"profitPct"`
	FoodCostPct float64 `json:"foodCostPct"`
}

// ProfitabilityTrend produces the dashboard's synthetic day-by-day
// profit-margin and food-cost series, oldest day first. The jitter source is
// injectable so tests can pin the output; pass nil for the default.
func ProfitabilityTrend(days int, from time.Time, rng *rand.Rand) []TrendPoint {
	if days <= 0 {
		days = DefaultTrendDays
	}
	if days > MaxTrendDays {
		days = MaxTrendDays
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(from.UnixNano()))
	}

	series := make([]TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		profit := 45 + math.Sin(float64(i)*0.1)*10 + rng.Float64()*5
		cost := 35 + math.Cos(float64(i)*0.1)*5 + rng.Float64()*3
		series = append(series, TrendPoint{
			Day:         from.AddDate(0, 0, -i).Format("Jan 2"),
			ProfitPct:   math.Max(20, profit),
			FoodCostPct: math.Max(25, cost),
		})
	}
	return series
}
