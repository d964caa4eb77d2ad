package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"foodcost/internal/costing"
	"foodcost/internal/models"
)

// keyValue is the storage medium underneath the blob contract. Values are
// opaque serialized text; the contract layer owns the shape.
type keyValue interface {
	Get(key string) (value string, ok bool, err error)
	Put(key, value string) error
	Delete(key string) error
}

// blobStore implements Store on top of any keyValue medium. All mutations go
// through a coarse read-modify-write of the whole recipes blob, serialized
// by one mutex: there is a single logical writer in this system.
type blobStore struct {
	mu sync.Mutex
	kv keyValue
}

func newBlobStore(kv keyValue) *blobStore {
	return &blobStore{kv: kv}
}

func (s *blobStore) SaveRecipe(r models.Recipe) (models.Recipe, error) {
	if err := models.ValidateRecipe(&r); err != nil {
		return models.Recipe{}, err
	}

	m, err := costing.ComputeRecipe(r)
	if err != nil {
		return models.Recipe{}, err
	}
	r.TotalCost = m.TotalCost
	r.LastModified = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	recipes, err := s.readRecipes()
	if err != nil {
		return models.Recipe{}, err
	}
	recipes[r.Name] = r
	if err := s.writeRecipes(recipes); err != nil {
		return models.Recipe{}, err
	}
	return r, nil
}

func (s *blobStore) LoadRecipe(name string) (models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipes, err := s.readRecipes()
	if err != nil {
		return models.Recipe{}, err
	}
	r, ok := recipes[name]
	if !ok {
		return models.Recipe{}, ErrNotFound
	}
	return r, nil
}

func (s *blobStore) ListRecipes() ([]models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipes, err := s.readRecipes()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(recipes))
	for name := range recipes {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]models.Recipe, 0, len(names))
	for _, name := range names {
		out = append(out, recipes[name])
	}
	return out, nil
}

func (s *blobStore) DeleteRecipe(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipes, err := s.readRecipes()
	if err != nil {
		return err
	}
	if _, ok := recipes[name]; !ok {
		return nil
	}
	delete(recipes, name)
	return s.writeRecipes(recipes)
}

func (s *blobStore) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(RecipesKey); err != nil {
		return err
	}
	return s.kv.Delete(DraftKey)
}

func (s *blobStore) SaveDraft(r models.Recipe) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Put(DraftKey, string(data))
}

func (s *blobStore) LoadDraft() (models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok, err := s.kv.Get(DraftKey)
	if err != nil {
		return models.Recipe{}, err
	}
	if !ok {
		return models.Recipe{}, ErrNoDraft
	}

	var r models.Recipe
	if err := json.Unmarshal([]byte(value), &r); err != nil {
		return models.Recipe{}, fmt.Errorf("corrupt draft snapshot: %w", err)
	}
	return r, nil
}

func (s *blobStore) ImportRecipes(payload []byte, mode ImportMode) (int, error) {
	if mode != ImportMerge && mode != ImportReplace {
		return 0, ErrBadImportMode
	}

	imported, err := ParseImport(payload)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	final := make(map[string]models.Recipe, len(imported))
	if mode == ImportMerge {
		existing, err := s.readRecipes()
		if err != nil {
			return 0, err
		}
		for name, r := range existing {
			final[name] = r
		}
	}
	for name, r := range imported {
		final[name] = r
	}

	if err := s.writeRecipes(final); err != nil {
		return 0, err
	}
	return len(imported), nil
}

func (s *blobStore) ExportRecipes() (map[string]models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readRecipes()
}

// readRecipes deserializes the recipes blob. A missing key is an empty
// store, not an error.
func (s *blobStore) readRecipes() (map[string]models.Recipe, error) {
	value, ok, err := s.kv.Get(RecipesKey)
	if err != nil {
		return nil, err
	}
	if !ok || value == "" {
		return map[string]models.Recipe{}, nil
	}

	var recipes map[string]models.Recipe
	if err := json.Unmarshal([]byte(value), &recipes); err != nil {
		return nil, fmt.Errorf("corrupt recipe store: %w", err)
	}
	if recipes == nil {
		recipes = map[string]models.Recipe{}
	}
	return recipes, nil
}

func (s *blobStore) writeRecipes(recipes map[string]models.Recipe) error {
	data, err := json.Marshal(recipes)
	if err != nil {
		return err
	}
	return s.kv.Put(RecipesKey, string(data))
}
