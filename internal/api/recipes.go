package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"foodcost/internal/costing"
	"foodcost/internal/models"
	"foodcost/internal/store"
)

// Recipe management handlers

// SaveRecipe upserts a recipe by name. Rows with an empty name or a
// non-positive quantity are filtered out before persisting; the response
// carries the stored recipe with its stamped timestamp and total cost.
func (s *Server) SaveRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe.Ingredients = costing.FilterIngredients(recipe.Ingredients)

	saved, err := s.store.SaveRecipe(recipe)
	s.metrics.RecipeSaved(err == nil)
	s.monitor.RecordStoreMutation("save", err == nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.afterMutation("recipes")
	c.JSON(http.StatusCreated, saved)
}

func (s *Server) ListRecipes(c *gin.Context) {
	recipes, err := s.store.ListRecipes()
	if err != nil {
		s.metrics.StoreError()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (s *Server) GetRecipe(c *gin.Context) {
	name := c.Param("name")
	recipe, err := s.store.LoadRecipe(name)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if err != nil {
		s.metrics.StoreError()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe removes the named recipe. Deleting an absent name succeeds.
func (s *Server) DeleteRecipe(c *gin.Context) {
	name := c.Param("name")
	if err := s.store.DeleteRecipe(name); err != nil {
		s.metrics.StoreError()
		s.monitor.RecordStoreMutation("delete", false)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.monitor.RecordStoreMutation("delete", true)
	s.afterMutation("recipes")
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted"})
}

// ImportRecipes applies a JSON batch. The batch is all-or-nothing: one
// malformed entry rejects the whole document and leaves the store untouched.
func (s *Server) ImportRecipes(c *gin.Context) {
	mode := store.ImportMode(c.DefaultQuery("mode", string(store.ImportMerge)))

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable import payload"})
		return
	}

	count, err := s.store.ImportRecipes(payload, mode)
	s.metrics.ImportApplied(string(mode), err == nil)
	s.monitor.RecordStoreMutation("import", err == nil)
	if errors.Is(err, store.ErrBadImportMode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Import failed: " + err.Error()})
		return
	}

	s.afterMutation("recipes")
	c.JSON(http.StatusOK, gin.H{"imported": count, "mode": mode})
}

func (s *Server) ExportRecipes(c *gin.Context) {
	recipes, err := s.store.ExportRecipes()
	if err != nil {
		s.metrics.StoreError()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// ClearAll drops every saved recipe and the draft snapshot.
func (s *Server) ClearAll(c *gin.Context) {
	if err := s.store.ClearAll(); err != nil {
		s.metrics.StoreError()
		s.monitor.RecordStoreMutation("clear", false)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.session.Reset()
	s.monitor.RecordStoreMutation("clear", true)
	s.afterMutation("recipes")
	c.JSON(http.StatusOK, gin.H{"message": "All data cleared"})
}

// Editor support handlers

func (s *Server) GetDraft(c *gin.Context) {
	draft, err := s.store.LoadDraft()
	if errors.Is(err, store.ErrNoDraft) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No draft saved"})
		return
	}
	if err != nil {
		s.metrics.StoreError()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, draft)
}

// PutDraft replaces the editor's form state and returns the recomputed live
// metrics. The draft snapshot itself is written by the session's debounced
// auto-save, never synchronously here.
func (s *Server) PutDraft(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	metrics := s.session.Replace(recipe)
	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}

// CostingPreviewRequest is a possibly partial form posted for a live
// recompute while the user is still typing.
type CostingPreviewRequest struct {
	Ingredients  []models.Ingredient `json:"ingredients"`
	Servings     int                 `json:"servings"`
	SellingPrice float64             `json:"sellingPrice"`
	LaborCost    float64             `json:"laborCost"`
}

// PreviewCosting computes live metrics for a partial form. Partially filled
// rows contribute zero; the result is never persisted.
func (s *Server) PreviewCosting(c *gin.Context) {
	var req CostingPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	metrics := costing.ComputeLive(req.Ingredients, req.Servings, req.SellingPrice, req.LaborCost)
	s.metrics.ObserveCompute(time.Since(start))
	s.monitor.IncrementMetric("costing_previews")

	c.JSON(http.StatusOK, metrics)
}

// EditorSuggestions returns the ingredient-name and unit suggestion sets for
// the editor form.
func (s *Server) EditorSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ingredients": models.SuggestedIngredients(),
		"units":       models.SuggestedUnits(),
	})
}

// afterMutation refreshes the tracked-recipe gauge and nudges any open
// dashboards to re-read the store.
func (s *Server) afterMutation(event string) {
	if recipes, err := s.store.ListRecipes(); err == nil {
		s.metrics.SetRecipeCount(len(recipes))
	}
	s.hub.Broadcast(event)
}
