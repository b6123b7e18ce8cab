package pricing

import (
	"context"
	"errors"
	"testing"

	"cake_calculator/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// lookupFrom builds an IngredientLookup over a fixed set of ingredients.
// IDs outside the set resolve to nil, nil (not found).
func lookupFrom(ingredients ...entities.Ingredient) IngredientLookup {
	return func(_ context.Context, id int64) (*entities.Ingredient, error) {
		for i := range ingredients {
			if ingredients[i].ID == id {
				return &ingredients[i], nil
			}
		}
		return nil, nil
	}
}

func TestParseQuantityMap(t *testing.T) {
	t.Run("empty payload is an empty map", func(t *testing.T) {
		m, err := ParseQuantityMap("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(m) != 0 {
			t.Fatalf("expected empty map, got %v", m)
		}
	})

	t.Run("valid payload", func(t *testing.T) {
		m, err := ParseQuantityMap(`{"1": 2.5, "4": 1}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(m) != 2 || !m[1].Equal(dec(t, "2.5")) || !m[4].Equal(dec(t, "1")) {
			t.Fatalf("unexpected map: %v", m)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		if _, err := ParseQuantityMap(`{"1": `); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("non-numeric key", func(t *testing.T) {
		if _, err := ParseQuantityMap(`{"flour": 2}`); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestQuantityMapCost(t *testing.T) {
	ctx := context.Background()
	lookup := lookupFrom(
		entities.Ingredient{ID: 1, Name: "Flour", CostPerUnit: dec(t, "0.80")},
		entities.Ingredient{ID: 2, Name: "Butter", CostPerUnit: dec(t, "3.25")},
	)

	t.Run("accumulates cost per unit times quantity", func(t *testing.T) {
		cost, err := quantityMapCost(ctx, map[int64]decimal.Decimal{1: dec(t, "2"), 2: dec(t, "0.5")}, lookup)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cost.Equal(dec(t, "3.225")) {
			t.Fatalf("cost = %s, want 3.225", cost)
		}
	})

	t.Run("dangling ingredient id contributes zero", func(t *testing.T) {
		cost, err := quantityMapCost(ctx, map[int64]decimal.Decimal{1: dec(t, "2"), 99: dec(t, "10")}, lookup)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cost.Equal(dec(t, "1.60")) {
			t.Fatalf("cost = %s, want 1.60", cost)
		}
	})

	t.Run("lookup failure aborts", func(t *testing.T) {
		failing := func(context.Context, int64) (*entities.Ingredient, error) {
			return nil, errors.New("db down")
		}
		if _, err := quantityMapCost(ctx, map[int64]decimal.Decimal{1: dec(t, "2")}, failing); err == nil {
			t.Fatalf("expected error")
		}
	})
}
