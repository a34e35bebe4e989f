package request

import "encoding/json"

// CreateMaintenanceRequestRequest opens a new request (client action).
type CreateMaintenanceRequestRequest struct {
	Actor             ActorRequest `json:"actor" binding:"required"`
	Equipment         string       `json:"equipment" binding:"required"`
	Category          string       `json:"category" binding:"required"`
	DefectDescription string       `json:"defect_description" binding:"required"`
}

// SubmitQuoteRequest attaches a price to an open request (employee action).
// A non-numeric price fails JSON binding and never reaches the use case.
type SubmitQuoteRequest struct {
	Actor ActorRequest `json:"actor" binding:"required"`
	Price float64      `json:"price" binding:"required"`
}

// RejectQuoteRequest declines a quote with a mandatory reason.
type RejectQuoteRequest struct {
	Actor  ActorRequest `json:"actor" binding:"required"`
	Reason string       `json:"reason" binding:"required"`
}

// ActorOnlyRequest is the payload of transitions that carry no extra data
// (approve, reclaim, finalize).
type ActorOnlyRequest struct {
	Actor ActorRequest `json:"actor" binding:"required"`
}

// PerformMaintenanceRequest records the executed maintenance.
type PerformMaintenanceRequest struct {
	Actor        ActorRequest `json:"actor" binding:"required"`
	Description  string       `json:"description" binding:"required"`
	Orientations string       `json:"orientations"`
}

// RedirectMaintenanceRequest reassigns an in-progress request.
type RedirectMaintenanceRequest struct {
	Actor         ActorRequest `json:"actor" binding:"required"`
	NewEmployeeID string       `json:"new_employee_id" binding:"required"`
}

// PayServiceRequest pays a fixed request. `provider_payload` is forwarded
// as-is to the payment gateway to support varying provider schemas.
type PayServiceRequest struct {
	Actor           ActorRequest    `json:"actor" binding:"required"`
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
