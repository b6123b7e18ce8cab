package usecase

import (
	"context"
	"errors"
	"strings"

	"cake_calculator/internal/domain/entities"
	"cake_calculator/internal/usecase/interfaces"
)

var (
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrInvalidIngredient  = errors.New("invalid ingredient")
)

type IIngredientUseCase interface {
	Create(ctx context.Context, i entities.Ingredient) (entities.Ingredient, error)
	GetByID(ctx context.Context, id int64) (entities.Ingredient, error)
	GetAll(ctx context.Context) ([]entities.Ingredient, error)
	Update(ctx context.Context, i entities.Ingredient) error
	Delete(ctx context.Context, id int64) error
}

type IngredientUseCase struct {
	repo interfaces.IIngredientRepository
}

var _ IIngredientUseCase = (*IngredientUseCase)(nil)

func NewIngredientUseCase(repo interfaces.IIngredientRepository) *IngredientUseCase {
	return &IngredientUseCase{repo: repo}
}

func validateIngredient(i *entities.Ingredient) error {
	i.Name = strings.TrimSpace(i.Name)
	if i.Name == "" {
		return ErrInvalidIngredient
	}
	if i.CostPerUnit.IsNegative() {
		return ErrInvalidIngredient
	}
	return nil
}

func (u *IngredientUseCase) Create(ctx context.Context, i entities.Ingredient) (entities.Ingredient, error) {
	if err := validateIngredient(&i); err != nil {
		return entities.Ingredient{}, err
	}
	return u.repo.Create(ctx, i)
}

func (u *IngredientUseCase) GetByID(ctx context.Context, id int64) (entities.Ingredient, error) {
	i, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Ingredient{}, err
	}
	if i == nil {
		return entities.Ingredient{}, ErrIngredientNotFound
	}
	return *i, nil
}

func (u *IngredientUseCase) GetAll(ctx context.Context) ([]entities.Ingredient, error) {
	return u.repo.GetAll(ctx)
}

func (u *IngredientUseCase) Update(ctx context.Context, i entities.Ingredient) error {
	if err := validateIngredient(&i); err != nil {
		return err
	}
	updated, err := u.repo.Update(ctx, i)
	if err != nil {
		return err
	}
	if !updated {
		return ErrIngredientNotFound
	}
	return nil
}

func (u *IngredientUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrIngredientNotFound
	}
	return nil
}
