// Package editor owns the in-progress recipe form. The session's ordered
// ingredient list is the source of truth; any presentation layer renders
// from it and writes back through it, never the other way around.
package editor

import (
	"log"
	"sync"
	"time"

	"foodcost/internal/autosave"
	"foodcost/internal/costing"
	"foodcost/internal/models"
	"foodcost/internal/store"
)

// Session is one editing session over a recipe form. Every mutation runs a
// single synchronous recompute of the derived metrics and arms the debounced
// auto-save; there is no shared "is calculating" flag because the recompute
// path is pure.
type Session struct {
	mu      sync.Mutex
	recipe  models.Recipe
	metrics costing.Metrics
	saved   string // name of the recipe last persisted from this session

	store store.Store
	saver *autosave.Debouncer
}

// NewSession creates a session over an empty form, auto-saving the draft
// snapshot after the given quiet period.
func NewSession(st store.Store, draftDelay time.Duration) *Session {
	s := &Session{
		store: st,
		saver: autosave.NewDebouncer(draftDelay),
	}
	s.reset()
	return s
}

// Recipe returns a copy of the current form state.
func (s *Session) Recipe() models.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Metrics returns the metrics from the latest recompute.
func (s *Session) Metrics() costing.Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metrics
}

// Replace overwrites the whole form with the given state, as when the form
// posts all fields at once. Returns the recomputed metrics.
func (s *Session) Replace(r models.Recipe) costing.Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipe = r
	return s.recompute()
}

// SetName updates the recipe name field.
func (s *Session) SetName(name string) costing.Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipe.Name = name
	return s.recompute()
}

// SetServings updates the serving count field.
func (s *Session) SetServings(n int) costing.Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipe.Servings = n
	return s.recompute()
}

// SetSellingPrice updates the selling price field.
func (s *Session) SetSellingPrice(price float64) costing.Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipe.SellingPrice = price
	return s.recompute()
}

// SetLaborCost updates the labor cost field.
func (s *Session) SetLaborCost(cost float64) costing.Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipe.LaborCost = cost
	return s.recompute()
}

// AddIngredient appends an empty row and returns its index.
func (s *Session) AddIngredient() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipe.Ingredients = append(s.recipe.Ingredients, models.Ingredient{})
	s.recompute()
	return len(s.recipe.Ingredients) - 1
}

// UpdateIngredient replaces the row at index i. Out-of-range updates are
// ignored; the form and the list can briefly disagree while a row animates
// out.
func (s *Session) UpdateIngredient(i int, ing models.Ingredient) costing.Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i >= 0 && i < len(s.recipe.Ingredients) {
		s.recipe.Ingredients[i] = ing
	}
	return s.recompute()
}

// RemoveIngredient deletes the row at index i, preserving the order of the
// remaining rows.
func (s *Session) RemoveIngredient(i int) costing.Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i >= 0 && i < len(s.recipe.Ingredients) {
		s.recipe.Ingredients = append(s.recipe.Ingredients[:i], s.recipe.Ingredients[i+1:]...)
	}
	return s.recompute()
}

// Save filters out partially-filled rows and persists the recipe under its
// name. The live form keeps its unfiltered rows.
func (s *Session) Save() (models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.snapshot()
	r.Ingredients = costing.FilterIngredients(r.Ingredients)

	saved, err := s.store.SaveRecipe(r)
	if err != nil {
		return models.Recipe{}, err
	}
	s.saved = saved.Name
	return saved, nil
}

// RestoreDraft loads the draft snapshot into the form, if one exists.
func (s *Session) RestoreDraft() bool {
	draft, err := s.store.LoadDraft()
	if err != nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipe = draft
	s.recompute()
	return true
}

// Reset clears the form back to a blank recipe with one empty row.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = ""
	s.reset()
}

// Close flushes nothing but stops the pending auto-save, as on page unload.
func (s *Session) Close() {
	s.saver.Stop()
}

func (s *Session) reset() {
	s.recipe = models.NewRecipe()
	s.recipe.Ingredients = []models.Ingredient{{}}
	s.recompute()
}

// recompute derives the live metrics and arms the auto-save. Callers hold
// the mutex.
func (s *Session) recompute() costing.Metrics {
	s.metrics = costing.ComputeLive(
		s.recipe.Ingredients, s.recipe.Servings, s.recipe.SellingPrice, s.recipe.LaborCost)
	s.recipe.TotalCost = s.metrics.TotalCost
	s.saver.Trigger(s.autoSave)
	return s.metrics
}

// autoSave persists the draft snapshot and, when the form still names the
// recipe last saved from this session, refreshes that entry too. Auto-save
// is best effort: failures are logged and never surfaced.
func (s *Session) autoSave() {
	s.mu.Lock()
	r := s.snapshot()
	saved := s.saved
	s.mu.Unlock()

	if saved != "" && r.Name == saved {
		keep := r
		keep.Ingredients = costing.FilterIngredients(keep.Ingredients)
		if _, err := s.store.SaveRecipe(keep); err != nil {
			log.Printf("auto-save: refresh of %q failed: %v", saved, err)
		}
	}

	r.LastModified = time.Now()
	if err := s.store.SaveDraft(r); err != nil {
		log.Printf("auto-save: draft snapshot failed: %v", err)
	}
}

// snapshot deep-copies the recipe so callers cannot alias the session's
// ingredient slice. Callers hold the mutex.
func (s *Session) snapshot() models.Recipe {
	r := s.recipe
	r.Ingredients = append([]models.Ingredient(nil), s.recipe.Ingredients...)
	return r
}
