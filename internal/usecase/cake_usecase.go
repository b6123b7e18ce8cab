package usecase

import (
	"context"
	"errors"

	"cake_calculator/internal/domain/entities"
	"cake_calculator/internal/usecase/interfaces"
)

var ErrCakeNotFound = errors.New("cake not found")

type ICakeUseCase interface {
	Create(ctx context.Context, c entities.Cake) (entities.Cake, error)
	GetByID(ctx context.Context, id int64) (entities.Cake, error)
	GetAll(ctx context.Context) ([]entities.Cake, error)
	Update(ctx context.Context, c entities.Cake) error
	Delete(ctx context.Context, id int64) error
}

type CakeUseCase struct {
	repo interfaces.ICakeRepository
}

var _ ICakeUseCase = (*CakeUseCase)(nil)

func NewCakeUseCase(repo interfaces.ICakeRepository) *CakeUseCase {
	return &CakeUseCase{repo: repo}
}

func (u *CakeUseCase) Create(ctx context.Context, c entities.Cake) (entities.Cake, error) {
	return u.repo.Create(ctx, c)
}

func (u *CakeUseCase) GetByID(ctx context.Context, id int64) (entities.Cake, error) {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Cake{}, err
	}
	if c == nil {
		return entities.Cake{}, ErrCakeNotFound
	}
	return *c, nil
}

func (u *CakeUseCase) GetAll(ctx context.Context) ([]entities.Cake, error) {
	return u.repo.GetAll(ctx)
}

func (u *CakeUseCase) Update(ctx context.Context, c entities.Cake) error {
	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return err
	}
	if !updated {
		return ErrCakeNotFound
	}
	return nil
}

func (u *CakeUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCakeNotFound
	}
	return nil
}
