package interfaces

import (
	"context"

	"cake_calculator/internal/domain/entities"
)

// IRoleRepository abstracts SQLite persistence for labor roles.

type IRoleRepository interface {
	Create(ctx context.Context, r entities.Role) (entities.Role, error)
	GetByID(ctx context.Context, id int64) (*entities.Role, error)
	GetAll(ctx context.Context) ([]entities.Role, error)
	Update(ctx context.Context, r entities.Role) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
