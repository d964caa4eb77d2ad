package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// ApiClient handles API requests to the foodcost API
type ApiClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewApiClient creates a new API client
func NewApiClient() *ApiClient {
	baseURL := os.Getenv("FOODCOST_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return &ApiClient{
		httpClient: &http.Client{
			Timeout: time.Second * 10,
		},
		BaseURL: baseURL,
	}
}

// CheckHealth checks if the API is up and running
func (c *ApiClient) CheckHealth() (bool, error) {
	resp, err := c.httpClient.Get(c.BaseURL + "/health")
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("API health check failed with status code: %d", resp.StatusCode)
	}

	return true, nil
}

// Ingredient is one costed line item of a recipe
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Cost     float64 `json:"cost"`
}

// Recipe is a saved menu item with its ingredient list
type Recipe struct {
	Name         string       `json:"name"`
	Servings     int          `json:"servings"`
	SellingPrice float64      `json:"sellingPrice"`
	LaborCost    float64      `json:"laborCost"`
	Ingredients  []Ingredient `json:"ingredients"`
	TotalCost    float64      `json:"totalCost"`
	LastModified time.Time    `json:"lastModified"`
}

// Metrics holds the derived cost figures for one recipe
type Metrics struct {
	TotalCost      float64 `json:"totalCost"`
	CostPerServing float64 `json:"costPerServing"`
	Profit         float64 `json:"profit"`
	ProfitMargin   float64 `json:"profitMargin"`
	FoodCostPct    float64 `json:"foodCostPct"`
}

// Summary is the dashboard overview panel
type Summary struct {
	TotalRecipes        int     `json:"totalRecipes"`
	AverageProfitMargin float64 `json:"averageProfitMargin"`
	AverageFoodCost     float64 `json:"averageFoodCost"`
	AverageSellingPrice float64 `json:"averageSellingPrice"`
}

// SummaryResponse wraps the summary with its display strings
type SummaryResponse struct {
	Summary Summary           `json:"summary"`
	Display map[string]string `json:"display"`
	HasData bool              `json:"hasData"`
}

// Flag describes why a recipe needs attention
type Flag struct {
	Issue  string `json:"issue"`
	Impact string `json:"impact"`
	Action string `json:"action"`
}

// RecipePerformance is one row of the dashboard performance tables
type RecipePerformance struct {
	Recipe      Recipe  `json:"recipe"`
	Metrics     Metrics `json:"metrics"`
	Potential   string  `json:"potential"`
	ProfitBadge string  `json:"profitBadge"`
	CostBadge   string  `json:"costBadge"`
	Flag        *Flag   `json:"flag,omitempty"`
}

// PriceRecommendation is the pricing simulator's output
type PriceRecommendation struct {
	CostPerServing   float64 `json:"costPerServing"`
	TargetMarginPct  float64 `json:"targetMarginPct"`
	RecommendedPrice float64 `json:"recommendedPrice"`
	Market           string  `json:"market"`
}

// PricingResponse wraps the recommendation with its display strings
type PricingResponse struct {
	Recommendation PriceRecommendation `json:"recommendation"`
	Display        map[string]string   `json:"display"`
}

// GetRecipes retrieves all saved recipes, ordered by name
func (c *ApiClient) GetRecipes() ([]Recipe, error) {
	resp, err := c.httpClient.Get(c.BaseURL + "/api/v1/recipes")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get recipes with status code: %d", resp.StatusCode)
	}

	var recipes []Recipe
	if err := json.NewDecoder(resp.Body).Decode(&recipes); err != nil {
		return nil, err
	}

	return recipes, nil
}

// GetRecipe retrieves one recipe by name
func (c *ApiClient) GetRecipe(name string) (*Recipe, error) {
	resp, err := c.httpClient.Get(c.BaseURL + "/api/v1/recipes/" + url.PathEscape(name))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("recipe %q not found", name)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get recipe with status code: %d", resp.StatusCode)
	}

	var recipe Recipe
	if err := json.NewDecoder(resp.Body).Decode(&recipe); err != nil {
		return nil, err
	}

	return &recipe, nil
}

// DeleteRecipe removes a recipe by name
func (c *ApiClient) DeleteRecipe(name string) error {
	req, err := http.NewRequest("DELETE", c.BaseURL+"/api/v1/recipes/"+url.PathEscape(name), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}

// GetSummary retrieves the dashboard overview
func (c *ApiClient) GetSummary() (*SummaryResponse, error) {
	resp, err := c.httpClient.Get(c.BaseURL + "/api/v1/dashboard/summary")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get summary with status code: %d", resp.StatusCode)
	}

	var summary SummaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

// GetTopRecipes retrieves the best performers by profit margin
func (c *ApiClient) GetTopRecipes() ([]RecipePerformance, error) {
	return c.getPerformance("/api/v1/dashboard/top")
}

// GetAttentionRecipes retrieves the recipes flagged for review
func (c *ApiClient) GetAttentionRecipes() ([]RecipePerformance, error) {
	return c.getPerformance("/api/v1/dashboard/attention")
}

func (c *ApiClient) getPerformance(path string) ([]RecipePerformance, error) {
	resp, err := c.httpClient.Get(c.BaseURL + path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get performance rows with status code: %d", resp.StatusCode)
	}

	var rows []RecipePerformance
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, err
	}

	return rows, nil
}

// SimulatePricing asks for a recommended price for a recipe at a target margin
func (c *ApiClient) SimulatePricing(recipe string, targetMargin float64) (*PricingResponse, error) {
	data, err := json.Marshal(map[string]interface{}{
		"recipe":       recipe,
		"targetMargin": targetMargin,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", c.BaseURL+"/api/v1/dashboard/pricing", bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("pricing simulation failed: %s", string(body))
	}

	var pricing PricingResponse
	if err := json.NewDecoder(resp.Body).Decode(&pricing); err != nil {
		return nil, err
	}

	return &pricing, nil
}
