package store

import (
	"encoding/json"
	"fmt"

	"foodcost/internal/models"
)

// ParseImport parses and validates an import document. The top level must be
// a JSON object mapping recipe name to recipe, and every entry must carry a
// text name, an ingredients sequence, and a numeric serving count. One bad
// entry rejects the whole batch.
func ParseImport(payload []byte) (map[string]models.Recipe, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("invalid file format: expected JSON object: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("invalid file format: expected JSON object")
	}

	for name, entry := range raw {
		if err := validateImportEntry(entry); err != nil {
			return nil, fmt.Errorf("invalid recipes format: entry %q: %w", name, err)
		}
	}

	var recipes map[string]models.Recipe
	if err := json.Unmarshal(payload, &recipes); err != nil {
		return nil, fmt.Errorf("invalid recipes format: %w", err)
	}
	return recipes, nil
}

// validateImportEntry checks the required-field shape of one entry without
// committing to the full recipe schema, mirroring what the editor's import
// dialog accepts.
func validateImportEntry(entry json.RawMessage) error {
	var fields map[string]interface{}
	if err := json.Unmarshal(entry, &fields); err != nil {
		return fmt.Errorf("not an object: %w", err)
	}

	if name, ok := fields["name"].(string); !ok || name == "" {
		return fmt.Errorf("missing required field %q", "name")
	}
	if _, ok := fields["ingredients"].([]interface{}); !ok {
		return fmt.Errorf("missing required field %q", "ingredients")
	}
	if _, ok := fields["servings"].(float64); !ok {
		return fmt.Errorf("missing required field %q", "servings")
	}
	return nil
}
