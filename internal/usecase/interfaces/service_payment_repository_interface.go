package interfaces

import (
	"context"

	"gestor_manutencao/internal/domain/entities"
)

// IServicePaymentRepository abstracts persistence for ServicePayment.

type IServicePaymentRepository interface {
	Create(ctx context.Context, p entities.ServicePayment) (entities.ServicePayment, error)
	GetByID(ctx context.Context, id string) (entities.ServicePayment, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.ServicePayment, error)
}
