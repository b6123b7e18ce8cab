package usecase

import (
	"context"
	"errors"

	"cake_calculator/internal/domain/entities"
	"cake_calculator/internal/usecase/interfaces"
)

var (
	ErrCakeTypeNotFound  = errors.New("cake type not found")
	ErrCakeShapeNotFound = errors.New("cake shape not found")
	ErrCakeSizeNotFound  = errors.New("cake size not found")
	ErrFillingNotFound   = errors.New("filling not found")
	ErrFrostingNotFound  = errors.New("frosting not found")
)

// ICatalogUseCase serves the order-form catalogs. Lists are pre-filtered to
// active records in sort order by the repository.

type ICatalogUseCase interface {
	ListTypes(ctx context.Context) ([]entities.CakeType, error)
	GetTypeByID(ctx context.Context, id int64) (entities.CakeType, error)
	CreateType(ctx context.Context, t entities.CakeType) (entities.CakeType, error)

	ListShapes(ctx context.Context) ([]entities.CakeShape, error)
	GetShapeByID(ctx context.Context, id int64) (entities.CakeShape, error)
	CreateShape(ctx context.Context, s entities.CakeShape) (entities.CakeShape, error)

	ListSizes(ctx context.Context, shapeID *int64) ([]entities.CakeSize, error)
	GetSizeByID(ctx context.Context, id int64) (entities.CakeSize, error)
	CreateSize(ctx context.Context, s entities.CakeSize) (entities.CakeSize, error)

	ListFillings(ctx context.Context) ([]entities.Filling, error)
	GetFillingByID(ctx context.Context, id int64) (entities.Filling, error)
	CreateFilling(ctx context.Context, f entities.Filling) (entities.Filling, error)

	ListFrostings(ctx context.Context) ([]entities.Frosting, error)
	GetFrostingByID(ctx context.Context, id int64) (entities.Frosting, error)
	CreateFrosting(ctx context.Context, f entities.Frosting) (entities.Frosting, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) ListTypes(ctx context.Context) ([]entities.CakeType, error) {
	return u.repo.ListTypes(ctx)
}

func (u *CatalogUseCase) GetTypeByID(ctx context.Context, id int64) (entities.CakeType, error) {
	t, err := u.repo.GetTypeByID(ctx, id)
	if err != nil {
		return entities.CakeType{}, err
	}
	if t == nil {
		return entities.CakeType{}, ErrCakeTypeNotFound
	}
	return *t, nil
}

func (u *CatalogUseCase) CreateType(ctx context.Context, t entities.CakeType) (entities.CakeType, error) {
	return u.repo.CreateType(ctx, t)
}

func (u *CatalogUseCase) ListShapes(ctx context.Context) ([]entities.CakeShape, error) {
	return u.repo.ListShapes(ctx)
}

func (u *CatalogUseCase) GetShapeByID(ctx context.Context, id int64) (entities.CakeShape, error) {
	s, err := u.repo.GetShapeByID(ctx, id)
	if err != nil {
		return entities.CakeShape{}, err
	}
	if s == nil {
		return entities.CakeShape{}, ErrCakeShapeNotFound
	}
	return *s, nil
}

func (u *CatalogUseCase) CreateShape(ctx context.Context, s entities.CakeShape) (entities.CakeShape, error) {
	return u.repo.CreateShape(ctx, s)
}

func (u *CatalogUseCase) ListSizes(ctx context.Context, shapeID *int64) ([]entities.CakeSize, error) {
	return u.repo.ListSizes(ctx, shapeID)
}

func (u *CatalogUseCase) GetSizeByID(ctx context.Context, id int64) (entities.CakeSize, error) {
	s, err := u.repo.GetSizeByID(ctx, id)
	if err != nil {
		return entities.CakeSize{}, err
	}
	if s == nil {
		return entities.CakeSize{}, ErrCakeSizeNotFound
	}
	return *s, nil
}

func (u *CatalogUseCase) CreateSize(ctx context.Context, s entities.CakeSize) (entities.CakeSize, error) {
	return u.repo.CreateSize(ctx, s)
}

func (u *CatalogUseCase) ListFillings(ctx context.Context) ([]entities.Filling, error) {
	return u.repo.ListFillings(ctx)
}

func (u *CatalogUseCase) GetFillingByID(ctx context.Context, id int64) (entities.Filling, error) {
	f, err := u.repo.GetFillingByID(ctx, id)
	if err != nil {
		return entities.Filling{}, err
	}
	if f == nil {
		return entities.Filling{}, ErrFillingNotFound
	}
	return *f, nil
}

func (u *CatalogUseCase) CreateFilling(ctx context.Context, f entities.Filling) (entities.Filling, error) {
	return u.repo.CreateFilling(ctx, f)
}

func (u *CatalogUseCase) ListFrostings(ctx context.Context) ([]entities.Frosting, error) {
	return u.repo.ListFrostings(ctx)
}

func (u *CatalogUseCase) GetFrostingByID(ctx context.Context, id int64) (entities.Frosting, error) {
	f, err := u.repo.GetFrostingByID(ctx, id)
	if err != nil {
		return entities.Frosting{}, err
	}
	if f == nil {
		return entities.Frosting{}, ErrFrostingNotFound
	}
	return *f, nil
}

func (u *CatalogUseCase) CreateFrosting(ctx context.Context, f entities.Frosting) (entities.Frosting, error) {
	return u.repo.CreateFrosting(ctx, f)
}
