package interfaces

import (
	"context"

	"cake_calculator/internal/domain/entities"
)

// ITemplateRepository abstracts SQLite persistence for Template.

type ITemplateRepository interface {
	Create(ctx context.Context, t entities.Template) (entities.Template, error)
	GetByID(ctx context.Context, id int64) (*entities.Template, error)
	GetAll(ctx context.Context) ([]entities.Template, error)
	Update(ctx context.Context, t entities.Template) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
