package interfaces

import (
	"context"

	"cake_calculator/internal/domain/entities"
)

// ICakeRepository abstracts SQLite persistence for Cake.
//
// GetByID and GetAll embed the joined Template; the pricing core reads the
// template's base-ingredient map straight off the returned cake.

type ICakeRepository interface {
	Create(ctx context.Context, c entities.Cake) (entities.Cake, error)
	GetByID(ctx context.Context, id int64) (*entities.Cake, error)
	GetAll(ctx context.Context) ([]entities.Cake, error)
	Update(ctx context.Context, c entities.Cake) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
