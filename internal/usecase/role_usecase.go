package usecase

import (
	"context"
	"errors"
	"strings"

	"cake_calculator/internal/domain/entities"
	"cake_calculator/internal/usecase/interfaces"
)

var (
	ErrRoleNotFound = errors.New("role not found")
	ErrInvalidRole  = errors.New("invalid role")
)

type IRoleUseCase interface {
	Create(ctx context.Context, r entities.Role) (entities.Role, error)
	GetByID(ctx context.Context, id int64) (entities.Role, error)
	GetAll(ctx context.Context) ([]entities.Role, error)
	Update(ctx context.Context, r entities.Role) error
	Delete(ctx context.Context, id int64) error
}

type RoleUseCase struct {
	repo interfaces.IRoleRepository
}

var _ IRoleUseCase = (*RoleUseCase)(nil)

func NewRoleUseCase(repo interfaces.IRoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

func validateRole(r *entities.Role) error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return ErrInvalidRole
	}
	if r.HourlyRate.IsNegative() {
		return ErrInvalidRole
	}
	return nil
}

func (u *RoleUseCase) Create(ctx context.Context, r entities.Role) (entities.Role, error) {
	if err := validateRole(&r); err != nil {
		return entities.Role{}, err
	}
	return u.repo.Create(ctx, r)
}

func (u *RoleUseCase) GetByID(ctx context.Context, id int64) (entities.Role, error) {
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Role{}, err
	}
	if r == nil {
		return entities.Role{}, ErrRoleNotFound
	}
	return *r, nil
}

func (u *RoleUseCase) GetAll(ctx context.Context) ([]entities.Role, error) {
	return u.repo.GetAll(ctx)
}

func (u *RoleUseCase) Update(ctx context.Context, r entities.Role) error {
	if err := validateRole(&r); err != nil {
		return err
	}
	updated, err := u.repo.Update(ctx, r)
	if err != nil {
		return err
	}
	if !updated {
		return ErrRoleNotFound
	}
	return nil
}

func (u *RoleUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRoleNotFound
	}
	return nil
}
