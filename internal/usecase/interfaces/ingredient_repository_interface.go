package interfaces

import (
	"context"

	"cake_calculator/internal/domain/entities"
)

// IIngredientRepository abstracts SQLite persistence for Ingredient.
//
// GetByID returns (nil, nil) when the ID does not exist. Update and Delete
// report whether a row was affected so handlers can answer 404.

type IIngredientRepository interface {
	Create(ctx context.Context, i entities.Ingredient) (entities.Ingredient, error)
	GetByID(ctx context.Context, id int64) (*entities.Ingredient, error)
	GetAll(ctx context.Context) ([]entities.Ingredient, error)
	Update(ctx context.Context, i entities.Ingredient) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
