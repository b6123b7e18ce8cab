package usecase

import (
	"context"
	"errors"
	"strings"

	"cake_calculator/internal/domain/entities"
	"cake_calculator/internal/usecase/interfaces"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidTemplate  = errors.New("invalid template")
)

type ITemplateUseCase interface {
	Create(ctx context.Context, t entities.Template) (entities.Template, error)
	GetByID(ctx context.Context, id int64) (entities.Template, error)
	GetAll(ctx context.Context) ([]entities.Template, error)
	Update(ctx context.Context, t entities.Template) error
	Delete(ctx context.Context, id int64) error
}

type TemplateUseCase struct {
	repo interfaces.ITemplateRepository
}

var _ ITemplateUseCase = (*TemplateUseCase)(nil)

func NewTemplateUseCase(repo interfaces.ITemplateRepository) *TemplateUseCase {
	return &TemplateUseCase{repo: repo}
}

func validateTemplate(t *entities.Template) error {
	t.Name = strings.TrimSpace(t.Name)
	t.Size = strings.TrimSpace(t.Size)
	t.Type = strings.TrimSpace(t.Type)
	if t.Name == "" || t.Size == "" || t.Type == "" {
		return ErrInvalidTemplate
	}
	if strings.TrimSpace(t.BaseIngredients) == "" {
		return ErrInvalidTemplate
	}
	return nil
}

func (u *TemplateUseCase) Create(ctx context.Context, t entities.Template) (entities.Template, error) {
	if err := validateTemplate(&t); err != nil {
		return entities.Template{}, err
	}
	return u.repo.Create(ctx, t)
}

func (u *TemplateUseCase) GetByID(ctx context.Context, id int64) (entities.Template, error) {
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Template{}, err
	}
	if t == nil {
		return entities.Template{}, ErrTemplateNotFound
	}
	return *t, nil
}

func (u *TemplateUseCase) GetAll(ctx context.Context) ([]entities.Template, error) {
	return u.repo.GetAll(ctx)
}

func (u *TemplateUseCase) Update(ctx context.Context, t entities.Template) error {
	if err := validateTemplate(&t); err != nil {
		return err
	}
	updated, err := u.repo.Update(ctx, t)
	if err != nil {
		return err
	}
	if !updated {
		return ErrTemplateNotFound
	}
	return nil
}

func (u *TemplateUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTemplateNotFound
	}
	return nil
}
