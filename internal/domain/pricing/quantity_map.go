package pricing

import (
	"context"
	"encoding/json"

	"cake_calculator/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IngredientLookup fetches an ingredient by ID. A nil ingredient with a nil
// error means the ID does not exist; a non-nil error is an I/O failure and
// aborts the computation.
type IngredientLookup func(ctx context.Context, id int64) (*entities.Ingredient, error)

// ParseQuantityMap parses a serialized quantity map ({"ingredientId": qty}).
// An empty payload is a valid empty map. A malformed payload returns an
// error; callers absorb it as a zero contribution.
func ParseQuantityMap(raw string) (map[int64]decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	var m map[int64]decimal.Decimal
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, err
	}
	return m, nil
}

// quantityMapCost resolves a quantity map to its total ingredient cost,
// one lookup per entry. IDs without a matching ingredient contribute zero;
// that is an expected state (a template may reference a deleted ingredient)
// and is not logged.
func quantityMapCost(ctx context.Context, qty map[int64]decimal.Decimal, lookup IngredientLookup) (decimal.Decimal, error) {
	total := decimal.Zero
	for id, q := range qty {
		ingredient, err := lookup(ctx, id)
		if err != nil {
			return decimal.Zero, err
		}
		if ingredient == nil {
			continue
		}
		total = total.Add(ingredient.CostPerUnit.Mul(q))
	}
	return total, nil
}
