package usecase

import (
	"context"
	"errors"
	"strings"

	"gestor_manutencao/internal/domain/entities"
	"gestor_manutencao/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrInvalidCategoryID   = errors.New("invalid category id")
	ErrInvalidCategoryName = errors.New("invalid category name")
	ErrCategoryNameTaken   = errors.New("category name already in use")
)

// ICategoryUseCase manages the equipment-category registry. Names are unique
// case-insensitively; deleting a category never touches requests that
// reference its name.

type ICategoryUseCase interface {
	List(ctx context.Context) ([]entities.Category, error)
	Add(ctx context.Context, name string) (entities.Category, error)
	Rename(ctx context.Context, id, name string) (entities.Category, error)
	Delete(ctx context.Context, id string) error
}

type CategoryUseCase struct {
	repo interfaces.ICategoryRepository
}

var _ ICategoryUseCase = (*CategoryUseCase)(nil)

func NewCategoryUseCase(repo interfaces.ICategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

func (u *CategoryUseCase) List(ctx context.Context) ([]entities.Category, error) {
	return u.repo.List(ctx)
}

func (u *CategoryUseCase) Add(ctx context.Context, name string) (entities.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Category{}, ErrInvalidCategoryName
	}
	if err := u.ensureNameFree(ctx, name, ""); err != nil {
		return entities.Category{}, err
	}
	return u.repo.Create(ctx, entities.Category{ID: uuid.NewString(), Name: name})
}

func (u *CategoryUseCase) Rename(ctx context.Context, id, name string) (entities.Category, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Category{}, ErrInvalidCategoryID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Category{}, ErrInvalidCategoryName
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Category{}, err
	}
	if existing.ID == "" {
		return entities.Category{}, ErrCategoryNotFound
	}
	if err := u.ensureNameFree(ctx, name, id); err != nil {
		return entities.Category{}, err
	}

	existing.Name = name
	return u.repo.Update(ctx, existing)
}

func (u *CategoryUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCategoryID
	}
	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrCategoryNotFound
	}
	return u.repo.Delete(ctx, id)
}

func (u *CategoryUseCase) ensureNameFree(ctx context.Context, name, selfID string) error {
	categories, err := u.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range categories {
		if c.ID != selfID && strings.EqualFold(c.Name, name) {
			return ErrCategoryNameTaken
		}
	}
	return nil
}
