package response

import (
	"time"

	"gestor_manutencao/internal/domain/entities"
)

type MaintenanceRequestResponse struct {
	ID                string    `json:"id"`
	ClientID          string    `json:"client_id"`
	ClientName        string    `json:"client_name"`
	Equipment         string    `json:"equipment"`
	Category          string    `json:"category"`
	DefectDescription string    `json:"defect_description"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	Price                  *float64   `json:"price,omitempty"`
	AssignedEmployee       *string    `json:"assigned_employee,omitempty"`
	RejectionReason        *string    `json:"rejection_reason,omitempty"`
	MaintenanceDescription *string    `json:"maintenance_description,omitempty"`
	Orientations           *string    `json:"orientations,omitempty"`
	RedirectedEmployee     *string    `json:"redirected_employee,omitempty"`
	PaidAt                 *time.Time `json:"paid_at,omitempty"`
	FinalizedAt            *time.Time `json:"finalized_at,omitempty"`
}

func FromMaintenanceRequest(r entities.MaintenanceRequest) MaintenanceRequestResponse {
	return MaintenanceRequestResponse{
		ID:                     r.ID,
		ClientID:               r.ClientID,
		ClientName:             r.ClientName,
		Equipment:              r.Equipment,
		Category:               r.Category,
		DefectDescription:      r.DefectDescription,
		Status:                 string(r.Status),
		CreatedAt:              r.CreatedAt,
		UpdatedAt:              r.UpdatedAt,
		Price:                  r.Price,
		AssignedEmployee:       r.AssignedEmployee,
		RejectionReason:        r.RejectionReason,
		MaintenanceDescription: r.MaintenanceDescription,
		Orientations:           r.Orientations,
		RedirectedEmployee:     r.RedirectedEmployee,
		PaidAt:                 r.PaidAt,
		FinalizedAt:            r.FinalizedAt,
	}
}

func FromMaintenanceRequests(rs []entities.MaintenanceRequest) []MaintenanceRequestResponse {
	out := make([]MaintenanceRequestResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromMaintenanceRequest(r))
	}
	return out
}
