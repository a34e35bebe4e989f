package interfaces

import (
	"context"

	"gestor_manutencao/internal/domain/entities"
)

// ICategoryRepository abstracts persistence for the category registry.
// Name uniqueness is enforced by the use case over List; the registry is
// small and read-mostly.

type ICategoryRepository interface {
	Create(ctx context.Context, c entities.Category) (entities.Category, error)
	GetByID(ctx context.Context, id string) (entities.Category, error)
	List(ctx context.Context) ([]entities.Category, error)
	Update(ctx context.Context, c entities.Category) (entities.Category, error)
	Delete(ctx context.Context, id string) error
}
