package interfaces

import (
	"context"

	"cake_calculator/internal/domain/entities"
)

// ICatalogRepository abstracts SQLite persistence for the order-form
// catalogs: cake types, shapes, preset sizes, fillings and frostings.
//
// List methods return active records ordered by sort order. ListSizes
// optionally filters by shape.

type ICatalogRepository interface {
	ListTypes(ctx context.Context) ([]entities.CakeType, error)
	GetTypeByID(ctx context.Context, id int64) (*entities.CakeType, error)
	CreateType(ctx context.Context, t entities.CakeType) (entities.CakeType, error)

	ListShapes(ctx context.Context) ([]entities.CakeShape, error)
	GetShapeByID(ctx context.Context, id int64) (*entities.CakeShape, error)
	CreateShape(ctx context.Context, s entities.CakeShape) (entities.CakeShape, error)

	ListSizes(ctx context.Context, shapeID *int64) ([]entities.CakeSize, error)
	GetSizeByID(ctx context.Context, id int64) (*entities.CakeSize, error)
	CreateSize(ctx context.Context, s entities.CakeSize) (entities.CakeSize, error)

	ListFillings(ctx context.Context) ([]entities.Filling, error)
	GetFillingByID(ctx context.Context, id int64) (*entities.Filling, error)
	CreateFilling(ctx context.Context, f entities.Filling) (entities.Filling, error)

	ListFrostings(ctx context.Context) ([]entities.Frosting, error)
	GetFrostingByID(ctx context.Context, id int64) (*entities.Frosting, error)
	CreateFrosting(ctx context.Context, f entities.Frosting) (entities.Frosting, error)
}
