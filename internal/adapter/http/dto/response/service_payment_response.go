package response

import (
	"time"

	"gestor_manutencao/internal/domain/entities"
)

type ServicePaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	RequestID   string    `json:"request_id"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromServicePayment(p entities.ServicePayment) ServicePaymentResponse {
	return ServicePaymentResponse{
		PaymentID:          p.ID,
		ID:                 p.ID,
		RequestID:          p.RequestID,
		PaymentDate:        p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromServicePayments(ps []entities.ServicePayment) []ServicePaymentResponse {
	out := make([]ServicePaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromServicePayment(p))
	}
	return out
}
