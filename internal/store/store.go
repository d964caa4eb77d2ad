// Package store implements the recipe persistence contract: a flat mapping
// from recipe name to recipe, persisted as a single serialized blob under a
// well-known key, plus a draft snapshot for reload recovery. The store is
// last-write-wins per recipe entry; there is no optimistic-concurrency
// check. That is a stated limitation of the single-user design, not a bug.
package store

import (
	"errors"

	"foodcost/internal/models"
)

// Well-known storage keys. The recipes blob is a JSON object mapping recipe
// name to recipe; the draft is a single recipe-shaped record with no
// name-uniqueness constraint.
const (
	RecipesKey = "recipes"
	DraftKey   = "currentDraft"
)

// ImportMode selects how an imported batch combines with the existing store.
type ImportMode string

const (
	// ImportMerge unions the batch with the existing store; imported
	// entries win on key collision.
	ImportMerge ImportMode = "merge"
	// ImportReplace discards the existing store entirely.
	ImportReplace ImportMode = "replace"
)

var (
	// ErrNotFound is returned when a named recipe does not exist.
	ErrNotFound = errors.New("recipe not found")
	// ErrNoDraft is returned when no draft snapshot has been saved.
	ErrNoDraft = errors.New("no draft saved")
	// ErrBadImportMode is returned for an unrecognized import mode.
	ErrBadImportMode = errors.New("import mode must be merge or replace")
)

// Store is the persistence contract shared by the editor and the dashboard.
type Store interface {
	// SaveRecipe validates the recipe, stamps LastModified and the derived
	// total cost, and upserts it by name. Any existing entry under the same
	// name is replaced wholesale; there is no field-level merge.
	SaveRecipe(r models.Recipe) (models.Recipe, error)

	// LoadRecipe returns the recipe saved under name, or ErrNotFound.
	LoadRecipe(name string) (models.Recipe, error)

	// ListRecipes returns a snapshot of all recipes ordered by name. The
	// order is the store's stable iteration order; analytics tie-breaking
	// depends on it.
	ListRecipes() ([]models.Recipe, error)

	// DeleteRecipe removes the entry under name. Deleting an absent name
	// is a no-op.
	DeleteRecipe(name string) error

	// ClearAll drops both the recipe collection and the draft snapshot.
	ClearAll() error

	// SaveDraft overwrites the draft snapshot with the in-progress form
	// state. The draft is not validated; it may be partially filled.
	SaveDraft(r models.Recipe) error

	// LoadDraft returns the draft snapshot, or ErrNoDraft.
	LoadDraft() (models.Recipe, error)

	// ImportRecipes parses a JSON document mapping name to recipe and
	// applies it in the given mode. Validation is all-or-nothing: if any
	// entry is malformed the whole batch is rejected and the store is
	// untouched. Returns the number of imported entries.
	ImportRecipes(payload []byte, mode ImportMode) (int, error)

	// ExportRecipes returns the raw name-to-recipe mapping.
	ExportRecipes() (map[string]models.Recipe, error)
}
