package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodcost/internal/analytics"
	"foodcost/internal/config"
	"foodcost/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := NewServer(config.Default(), store.NewMemoryStore())
	t.Cleanup(s.Close)
	return s
}

func do(s *Server, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	s.Router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

const adoboJSON = `{
	"name": "Adobo",
	"servings": 4,
	"sellingPrice": 10,
	"laborCost": 5,
	"ingredients": [
		{"name": "pork", "quantity": 2, "unit": "kg", "cost": 1.50},
		{"name": "soy sauce", "quantity": 1, "unit": "l", "cost": 3.00}
	]
}`

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)

	w := do(s, "GET", "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	decode(t, w, &response)
	assert.Equal(t, "ok", response["status"])
}

func TestSaveAndGetRecipe(t *testing.T) {
	s := newTestServer(t)

	w := do(s, "POST", "/api/v1/recipes", adoboJSON)
	require.Equal(t, http.StatusCreated, w.Code)

	var saved map[string]interface{}
	decode(t, w, &saved)
	assert.Equal(t, "Adobo", saved["name"])
	assert.InDelta(t, 11.00, saved["totalCost"].(float64), 1e-9)
	assert.NotEmpty(t, saved["lastModified"])

	w = do(s, "GET", "/api/v1/recipes/Adobo", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSaveRecipe_FiltersPartialRows(t *testing.T) {
	s := newTestServer(t)

	body := `{
		"name": "Sparse",
		"servings": 2,
		"ingredients": [
			{"name": "rice", "quantity": 1, "cost": 2},
			{"name": "", "quantity": 1, "cost": 9},
			{"name": "no quantity", "quantity": 0, "cost": 9}
		]
	}`
	w := do(s, "POST", "/api/v1/recipes", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var saved struct {
		Ingredients []map[string]interface{} `json:"ingredients"`
		TotalCost   float64                  `json:"totalCost"`
	}
	decode(t, w, &saved)
	assert.Len(t, saved.Ingredients, 1)
	assert.InDelta(t, 2.0, saved.TotalCost, 1e-9)
}

func TestSaveRecipe_Invalid(t *testing.T) {
	s := newTestServer(t)

	w := do(s, "POST", "/api/v1/recipes", `{"servings": 4}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(s, "POST", "/api/v1/recipes", `{"name": "x", "servings": 0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(s, "POST", "/api/v1/recipes", "not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRecipes_SortedByName(t *testing.T) {
	s := newTestServer(t)
	for _, name := range []string{"Caldereta", "Adobo", "Bistek"} {
		body := strings.Replace(adoboJSON, "Adobo", name, 1)
		require.Equal(t, http.StatusCreated, do(s, "POST", "/api/v1/recipes", body).Code)
	}

	w := do(s, "GET", "/api/v1/recipes", "")

	require.Equal(t, http.StatusOK, w.Code)
	var recipes []map[string]interface{}
	decode(t, w, &recipes)
	require.Len(t, recipes, 3)
	assert.Equal(t, "Adobo", recipes[0]["name"])
	assert.Equal(t, "Bistek", recipes[1]["name"])
	assert.Equal(t, "Caldereta", recipes[2]["name"])
}

func TestGetRecipe_NotFound(t *testing.T) {
	s := newTestServer(t)

	w := do(s, "GET", "/api/v1/recipes/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRecipe(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, do(s, "POST", "/api/v1/recipes", adoboJSON).Code)

	w := do(s, "DELETE", "/api/v1/recipes/Adobo", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(s, "GET", "/api/v1/recipes/Adobo", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Deleting an absent recipe still succeeds.
	w = do(s, "DELETE", "/api/v1/recipes/Adobo", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestImportAndExportRecipes(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, do(s, "POST", "/api/v1/recipes", adoboJSON).Code)

	payload := `{
		"Pancit": {"name": "Pancit", "servings": 6, "ingredients": []}
	}`
	w := do(s, "POST", "/api/v1/recipes/import", payload)
	require.Equal(t, http.StatusOK, w.Code)

	var result map[string]interface{}
	decode(t, w, &result)
	assert.Equal(t, float64(1), result["imported"])
	assert.Equal(t, "merge", result["mode"])

	w = do(s, "GET", "/api/v1/recipes/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	var exported map[string]interface{}
	decode(t, w, &exported)
	assert.Len(t, exported, 2)
}

func TestImportRecipes_Replace(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, do(s, "POST", "/api/v1/recipes", adoboJSON).Code)

	payload := `{"Pancit": {"name": "Pancit", "servings": 6, "ingredients": []}}`
	w := do(s, "POST", "/api/v1/recipes/import?mode=replace", payload)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(s, "GET", "/api/v1/recipes/Adobo", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestImportRecipes_Rejected(t *testing.T) {
	s := newTestServer(t)

	// One malformed entry rejects the whole batch.
	payload := `{"Bad": {"name": "Bad"}}`
	w := do(s, "POST", "/api/v1/recipes/import", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(s, "POST", "/api/v1/recipes/import?mode=sideways", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearAll(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, do(s, "POST", "/api/v1/recipes", adoboJSON).Code)

	w := do(s, "DELETE", "/api/v1/recipes", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var recipes []map[string]interface{}
	w = do(s, "GET", "/api/v1/recipes", "")
	decode(t, w, &recipes)
	assert.Empty(t, recipes)
}

func TestDraftEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := do(s, "GET", "/api/v1/draft", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(s, "PUT", "/api/v1/draft", adoboJSON)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Metrics struct {
			TotalCost    float64 `json:"totalCost"`
			ProfitMargin float64 `json:"profitMargin"`
		} `json:"metrics"`
	}
	decode(t, w, &response)
	assert.InDelta(t, 11.00, response.Metrics.TotalCost, 1e-9)
	assert.InDelta(t, 72.5, response.Metrics.ProfitMargin, 1e-9)
}

func TestPreviewCosting(t *testing.T) {
	s := newTestServer(t)

	// A partial form with servings still unset previews without error.
	body := `{
		"ingredients": [{"name": "rice", "quantity": 3, "cost": 2}],
		"servings": 0,
		"sellingPrice": 0,
		"laborCost": 1
	}`
	w := do(s, "POST", "/api/v1/costing/preview", body)

	require.Equal(t, http.StatusOK, w.Code)
	var metrics struct {
		TotalCost    float64 `json:"totalCost"`
		ProfitMargin float64 `json:"profitMargin"`
	}
	decode(t, w, &metrics)
	assert.InDelta(t, 7.0, metrics.TotalCost, 1e-9)
	assert.Equal(t, 0.0, metrics.ProfitMargin)
}

func TestEditorSuggestions(t *testing.T) {
	s := newTestServer(t)

	w := do(s, "GET", "/api/v1/editor/suggestions", "")

	require.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Ingredients []string `json:"ingredients"`
		Units       []string `json:"units"`
	}
	decode(t, w, &response)
	assert.NotEmpty(t, response.Ingredients)
	assert.Contains(t, response.Units, "kg")
}

func TestDashboardSummary_Empty(t *testing.T) {
	s := newTestServer(t)

	w := do(s, "GET", "/api/v1/dashboard/summary", "")

	require.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Summary struct {
			TotalRecipes        int     `json:"totalRecipes"`
			AverageProfitMargin float64 `json:"averageProfitMargin"`
		} `json:"summary"`
		Display map[string]string `json:"display"`
		HasData bool              `json:"hasData"`
	}
	decode(t, w, &response)
	assert.Equal(t, 0, response.Summary.TotalRecipes)
	assert.Equal(t, 0.0, response.Summary.AverageProfitMargin)
	assert.False(t, response.HasData)
	assert.Equal(t, "0.0%", response.Display["averageProfitMargin"])
	assert.Equal(t, "₱0.00", response.Display["averageSellingPrice"])
}

func TestDashboardSummary(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, do(s, "POST", "/api/v1/recipes", adoboJSON).Code)

	w := do(s, "GET", "/api/v1/dashboard/summary", "")

	require.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Display map[string]string `json:"display"`
		HasData bool              `json:"hasData"`
	}
	decode(t, w, &response)
	assert.True(t, response.HasData)
	assert.Equal(t, "72.5%", response.Display["averageProfitMargin"])
	assert.Equal(t, "27.5%", response.Display["averageFoodCost"])
	assert.Equal(t, "₱10.00", response.Display["averageSellingPrice"])
}

func TestDashboardTopAndAttention(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, do(s, "POST", "/api/v1/recipes", adoboJSON).Code)

	w := do(s, "GET", "/api/v1/dashboard/top?n=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var top []map[string]interface{}
	decode(t, w, &top)
	assert.Len(t, top, 1)

	// Adobo has a 72.5% margin; nothing needs attention.
	w = do(s, "GET", "/api/v1/dashboard/attention", "")
	require.Equal(t, http.StatusOK, w.Code)
	var attention []map[string]interface{}
	decode(t, w, &attention)
	assert.Empty(t, attention)
}

func TestDashboardForecast(t *testing.T) {
	s := newTestServer(t)

	w := do(s, "GET", "/api/v1/dashboard/forecast?months=6", "")

	require.Equal(t, http.StatusOK, w.Code)
	var series []struct {
		Month   string  `json:"month"`
		Revenue float64 `json:"revenue"`
	}
	decode(t, w, &series)
	require.Len(t, series, 6)
	assert.Positive(t, series[0].Revenue)
}

func TestDashboardTrend(t *testing.T) {
	s := newTestServer(t)

	w := do(s, "GET", "/api/v1/dashboard/trend?days=7", "")

	require.Equal(t, http.StatusOK, w.Code)
	var series []struct {
		ProfitPct   float64 `json:"profitPct"`
		FoodCostPct float64 `json:"foodCostPct"`
	}
	decode(t, w, &series)
	require.Len(t, series, 7)
	for _, pt := range series {
		assert.GreaterOrEqual(t, pt.ProfitPct, 20.0)
		assert.GreaterOrEqual(t, pt.FoodCostPct, 25.0)
	}
}

func TestDashboardForecast_ClampsMonths(t *testing.T) {
	s := newTestServer(t)

	w := do(s, "GET", "/api/v1/dashboard/forecast?months=2000000000", "")

	require.Equal(t, http.StatusOK, w.Code)
	var series []map[string]interface{}
	decode(t, w, &series)
	assert.Len(t, series, analytics.MaxForecastMonths)
}

func TestDashboardTrend_ClampsDays(t *testing.T) {
	s := newTestServer(t)

	w := do(s, "GET", "/api/v1/dashboard/trend?days=2000000000", "")

	require.Equal(t, http.StatusOK, w.Code)
	var series []map[string]interface{}
	decode(t, w, &series)
	assert.Len(t, series, analytics.MaxTrendDays)
}

func TestDashboardProjection_Defaults(t *testing.T) {
	s := newTestServer(t)

	// Empty store: the average price falls back to the documented default.
	w := do(s, "POST", "/api/v1/dashboard/projection", `{}`)

	require.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Projection struct {
			Daily float64 `json:"daily"`
		} `json:"projection"`
	}
	decode(t, w, &response)
	assert.InDelta(t, 50*1.0*150.0, response.Projection.Daily, 1e-9)
}

func TestDashboardPricing(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, do(s, "POST", "/api/v1/recipes", adoboJSON).Code)

	w := do(s, "POST", "/api/v1/dashboard/pricing", `{"recipe": "Adobo", "targetMargin": 25}`)

	require.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Recommendation struct {
			RecommendedPrice float64 `json:"recommendedPrice"`
			Market           string  `json:"market"`
		} `json:"recommendation"`
	}
	decode(t, w, &response)
	// cost per serving 2.75 at a 25% target margin
	assert.InDelta(t, 2.75/0.75, response.Recommendation.RecommendedPrice, 1e-9)
	assert.Equal(t, "budget", response.Recommendation.Market)
}

func TestDashboardPricing_Errors(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, do(s, "POST", "/api/v1/recipes", adoboJSON).Code)

	w := do(s, "POST", "/api/v1/dashboard/pricing", `{"recipe": "missing", "targetMargin": 25}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(s, "POST", "/api/v1/dashboard/pricing", `{"recipe": "Adobo", "targetMargin": 100}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboardCompetitive(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, do(s, "POST", "/api/v1/recipes", adoboJSON).Code)

	w := do(s, "POST", "/api/v1/dashboard/competitive", `{"competitorPrice": 8, "marketSegment": "casual"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Comparison struct {
			Strategy    string  `json:"strategy"`
			PercentDiff float64 `json:"percentDiff"`
		} `json:"comparison"`
		MarketSegment string `json:"marketSegment"`
	}
	decode(t, w, &response)
	// 10 vs 8 is +25%, premium territory.
	assert.Equal(t, "premium", response.Comparison.Strategy)
	assert.InDelta(t, 25, response.Comparison.PercentDiff, 1e-9)
	assert.Equal(t, "casual", response.MarketSegment)
}

// awaitRefreshEvent waits for one hub event on the client channel.
func awaitRefreshEvent(t *testing.T, send <-chan []byte) RefreshEvent {
	t.Helper()
	select {
	case data := <-send:
		var ev RefreshEvent
		require.NoError(t, json.Unmarshal(data, &ev))
		return ev
	case <-time.After(time.Second):
		t.Fatal("no refresh event received")
		return RefreshEvent{}
	}
}

func TestPricingSimulator_CoalescesRefreshEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	cfg.Autosave.PricingDelayMS = 20
	s := NewServer(cfg, store.NewMemoryStore())
	t.Cleanup(s.Close)

	require.Equal(t, http.StatusCreated, do(s, "POST", "/api/v1/recipes", adoboJSON).Code)

	client := &wsClient{id: "dash", send: make(chan []byte, 8), hub: s.hub}
	require.True(t, s.hub.add(client))

	// A burst of keystroke-driven requests collapses into one refresh event.
	for i := 0; i < 3; i++ {
		w := do(s, "POST", "/api/v1/dashboard/pricing", `{"recipe": "Adobo", "targetMargin": 25}`)
		require.Equal(t, http.StatusOK, w.Code)
	}

	ev := awaitRefreshEvent(t, client.send)
	assert.Equal(t, "pricing", ev.Event)

	select {
	case <-client.send:
		t.Fatal("burst produced more than one refresh event")
	case <-time.After(60 * time.Millisecond):
	}
}

func TestCompetitiveAnalysis_EmitsRefreshEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	cfg.Autosave.CompetitiveDelayMS = 10
	s := NewServer(cfg, store.NewMemoryStore())
	t.Cleanup(s.Close)

	require.Equal(t, http.StatusCreated, do(s, "POST", "/api/v1/recipes", adoboJSON).Code)

	client := &wsClient{id: "dash", send: make(chan []byte, 8), hub: s.hub}
	require.True(t, s.hub.add(client))

	w := do(s, "POST", "/api/v1/dashboard/competitive", `{"competitorPrice": 8}`)
	require.Equal(t, http.StatusOK, w.Code)

	ev := awaitRefreshEvent(t, client.send)
	assert.Equal(t, "competitive", ev.Event)
}

func TestDashboardCompetitive_NoPrice(t *testing.T) {
	s := newTestServer(t)

	w := do(s, "POST", "/api/v1/dashboard/competitive", `{"competitorPrice": 0}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]string
	decode(t, w, &response)
	assert.Equal(t, "Enter competitor price to see analysis", response["error"])
}

func TestDashboardPanels(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{
		"/api/v1/dashboard/recommendations",
		"/api/v1/dashboard/optimizations",
		"/api/v1/dashboard/alerts",
	} {
		w := do(s, "GET", path, "")
		require.Equal(t, http.StatusOK, w.Code, path)
		var items []map[string]interface{}
		decode(t, w, &items)
		assert.NotEmpty(t, items, path)
	}
}

func TestDashboardExport(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, do(s, "POST", "/api/v1/recipes", adoboJSON).Code)

	w := do(s, "GET", "/api/v1/dashboard/export", "")

	require.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Timestamp string                            `json:"timestamp"`
		Recipes   map[string]map[string]interface{} `json:"recipes"`
	}
	decode(t, w, &response)
	assert.NotEmpty(t, response.Timestamp)
	assert.Contains(t, response.Recipes, "Adobo")
}

func TestJSONMetrics(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, do(s, "POST", "/api/v1/recipes", adoboJSON).Code)
	preview := `{"ingredients": [{"name": "rice", "quantity": 1, "cost": 2}], "servings": 1}`
	require.Equal(t, http.StatusOK, do(s, "POST", "/api/v1/costing/preview", preview).Code)

	w := do(s, "GET", "/api/v1/metrics", "")

	require.Equal(t, http.StatusOK, w.Code)
	var metrics map[string]interface{}
	decode(t, w, &metrics)
	assert.Contains(t, metrics, "uptime_seconds")
	assert.Equal(t, float64(1), metrics["store_save"])
	assert.Equal(t, float64(1), metrics["costing_previews"])
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	cfg.Auth.Enabled = true
	cfg.Auth.Secret = "test-secret"
	s := NewServer(cfg, store.NewMemoryStore())
	t.Cleanup(s.Close)

	w := do(s, "GET", "/api/v1/recipes", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "operator"})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	req, _ := http.NewRequest("GET", "/api/v1/recipes", nil)
	req.Header.Set("Authorization", signed)
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req, _ = http.NewRequest("GET", "/api/v1/recipes", nil)
	req.Header.Set("Authorization", "garbage")
	rec = httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Health stays open with auth on.
	w = do(s, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
