package analytics

// Recommendation is one fixed marketing recommendation card. These are
// heuristic content, not computed from the store.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Impact      string `json:"impact"`
	Action      string `json:"action"`
}

// Optimization is one fixed cost-optimization suggestion card.
type Optimization struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Savings     string `json:"savings"`
	Difficulty  string `json:"difficulty"`
}

// Alert is one fixed dashboard alert card.
type Alert struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// MarketingRecommendations returns the marketing recommendation cards.
func MarketingRecommendations() []Recommendation {
	return []Recommendation{
		{
			Title:       "Bundle High-Profit Items",
			Description: "Create combo meals featuring your highest-margin recipes to increase average transaction value.",
			Priority:    "high",
			Impact:      "25% revenue increase",
			Action:      "Create bundles",
		},
		{
			Title:       "Promote Premium Items",
			Description: "Focus marketing efforts on items with 40%+ profit margins during peak hours.",
			Priority:    "high",
			Impact:      "15% margin improvement",
			Action:      "Adjust menu placement",
		},
		{
			Title:       "Seasonal Menu Optimization",
			Description: "Introduce seasonal variations of top-performing recipes to maintain interest.",
			Priority:    "medium",
			Impact:      "10% sales boost",
			Action:      "Plan seasonal menu",
		},
		{
			Title:       "Value Perception Strategy",
			Description: "Highlight ingredient quality and preparation methods for premium-priced items.",
			Priority:    "medium",
			Impact:      "5% price tolerance",
			Action:      "Update descriptions",
		},
		{
			Title:       "Cross-Selling Opportunities",
			Description: "Train staff to suggest complementary items that improve overall profitability.",
			Priority:    "low",
			Impact:      "8% transaction value",
			Action:      "Staff training",
		},
	}
}

// CostOptimizations returns the cost-optimization suggestion cards.
func CostOptimizations() []Optimization {
	return []Optimization{
		{
			Title:       "Bulk Purchasing",
			Description: "Negotiate better rates for high-volume ingredients",
			Savings:     "10-15%",
			Difficulty:  "Easy",
		},
		{
			Title:       "Seasonal Sourcing",
			Description: "Adjust menu based on seasonal ingredient availability",
			Savings:     "8-12%",
			Difficulty:  "Medium",
		},
		{
			Title:       "Portion Control",
			Description: "Standardize portions to reduce waste and control costs",
			Savings:     "5-8%",
			Difficulty:  "Easy",
		},
		{
			Title:       "Supplier Diversification",
			Description: "Find alternative suppliers for key ingredients",
			Savings:     "3-7%",
			Difficulty:  "Medium",
		},
		{
			Title:       "Ingredient Substitution",
			Description: "Replace expensive ingredients with cost-effective alternatives",
			Savings:     "15-25%",
			Difficulty:  "Hard",
		},
	}
}

// SmartAlerts returns the fixed dashboard alert cards.
func SmartAlerts() []Alert {
	return []Alert{
		{
			Type:    "success",
			Title:   "Profit Goal Achieved",
			Message: "Your average profit margin is above the 40% target.",
		},
		{
			Type:    "warning",
			Title:   "Ingredient Price Alert",
			Message: "Chicken prices increased by 8% this week. Consider menu adjustments.",
		},
		{
			Type:    "info",
			Title:   "Seasonal Opportunity",
			Message: "Summer ingredients are becoming more affordable. Update seasonal menu.",
		},
		{
			Type:    "danger",
			Title:   "Low Margin Recipe",
			Message: "3 recipes have profit margins below 20%. Review pricing immediately.",
		},
	}
}
