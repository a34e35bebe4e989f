package entities

import "time"

// RequestStatus represents the lifecycle of a maintenance request.
//
// Wire values are the ones the client/employee frontends already speak.
// Transitions are driven exclusively by the lifecycle operations in the
// request use case; fields are never mutated outside a transition.

type RequestStatus string

const (
	RequestStatusAberta        RequestStatus = "ABERTA"
	RequestStatusOrcada        RequestStatus = "ORÇADA"
	RequestStatusRejeitada     RequestStatus = "REJEITADA"
	RequestStatusAprovada      RequestStatus = "APROVADA"
	RequestStatusRedirecionada RequestStatus = "REDIRECIONADA"
	RequestStatusArrumada      RequestStatus = "ARRUMADA"
	RequestStatusPaga          RequestStatus = "PAGA"
	RequestStatusFinalizada    RequestStatus = "FINALIZADA"
)

// requestStatusSuccessors is the full edge set of the state machine.
// FINALIZADA is terminal; REJEITADA can only be reclaimed back to ABERTA.
var requestStatusSuccessors = map[RequestStatus][]RequestStatus{
	RequestStatusAberta:        {RequestStatusOrcada},
	RequestStatusOrcada:        {RequestStatusRejeitada, RequestStatusAprovada},
	RequestStatusRejeitada:     {RequestStatusAberta},
	RequestStatusAprovada:      {RequestStatusArrumada, RequestStatusRedirecionada},
	RequestStatusRedirecionada: {RequestStatusArrumada, RequestStatusRedirecionada},
	RequestStatusArrumada:      {RequestStatusPaga},
	RequestStatusPaga:          {RequestStatusFinalizada},
	RequestStatusFinalizada:    nil,
}

func (s RequestStatus) Valid() bool {
	_, ok := requestStatusSuccessors[s]
	return ok
}

// CanAdvanceTo reports whether next is a declared successor of s.
func (s RequestStatus) CanAdvanceTo(next RequestStatus) bool {
	for _, allowed := range requestStatusSuccessors[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Field length limits enforced at transition time.
const (
	MaxEquipmentLen              = 100
	MaxDefectDescriptionLen      = 500
	MaxRejectionReasonLen        = 300
	MaxMaintenanceDescriptionLen = 500
	MaxOrientationsLen           = 300
)

// MaintenanceRequest is the central record tracked through the lifecycle.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//   - GSI2 (status-index): status
//
// Category and employee names are stored as plain string snapshots taken at
// transition time. Registry edits and deletes never rewrite past requests.
//
// Optional fields are populated progressively as the status advances and are
// represented as pointers so "unset" survives the round trip to storage.

type MaintenanceRequest struct {
	ID                string        `json:"id"`
	ClientID          string        `json:"client_id"`
	ClientName        string        `json:"client_name"`
	Equipment         string        `json:"equipment"`
	Category          string        `json:"category"`
	DefectDescription string        `json:"defect_description"`
	Status            RequestStatus `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`

	Price                  *float64   `json:"price,omitempty"`
	AssignedEmployee       *string    `json:"assigned_employee,omitempty"`
	RejectionReason        *string    `json:"rejection_reason,omitempty"`
	MaintenanceDescription *string    `json:"maintenance_description,omitempty"`
	Orientations           *string    `json:"orientations,omitempty"`
	RedirectedEmployee     *string    `json:"redirected_employee,omitempty"`
	PaidAt                 *time.Time `json:"paid_at,omitempty"`
	FinalizedAt            *time.Time `json:"finalized_at,omitempty"`
}
