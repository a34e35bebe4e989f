package interfaces

import (
	"context"

	"gestor_manutencao/internal/domain/entities"
)

// IEmployeeRepository abstracts persistence for the employee registry.

type IEmployeeRepository interface {
	Create(ctx context.Context, e entities.Employee) (entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	List(ctx context.Context) ([]entities.Employee, error)
	Update(ctx context.Context, e entities.Employee) (entities.Employee, error)
	Delete(ctx context.Context, id string) error
}
