package interfaces

import (
	"context"
	"time"

	"gestor_manutencao/internal/domain/entities"
)

// TransitionUpdate carries the field mutations applied together with a status
// change. Nil pointers leave the stored attribute untouched; non-nil pointers
// overwrite it (an empty string clears a previously set text field).
type TransitionUpdate struct {
	Status entities.RequestStatus

	Price                  *float64
	AssignedEmployee       *string
	RejectionReason        *string
	MaintenanceDescription *string
	Orientations           *string
	RedirectedEmployee     *string
	PaidAt                 *time.Time
	FinalizedAt            *time.Time
}

// IRequestRepository abstracts persistence for MaintenanceRequest.
//
// Create fails with an error when the id already exists.
//
// ApplyTransition must apply the whole update atomically, conditioned on the
// stored status still being expectedStatus. A failed condition (missing record
// or raced status change) returns a zero-value request and a nil error; the
// use case distinguishes the two cases because it reads first.

type IRequestRepository interface {
	Create(ctx context.Context, r entities.MaintenanceRequest) (entities.MaintenanceRequest, error)
	GetByID(ctx context.Context, id string) (entities.MaintenanceRequest, error)
	ListAll(ctx context.Context) ([]entities.MaintenanceRequest, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.MaintenanceRequest, error)
	ListByStatus(ctx context.Context, status entities.RequestStatus) ([]entities.MaintenanceRequest, error)
	ApplyTransition(ctx context.Context, id string, expectedStatus entities.RequestStatus, up TransitionUpdate) (entities.MaintenanceRequest, error)
}
