package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// ServicePayment is the audit record written when a client pays a fixed
// request.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (request_id-index): request_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for traceability.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging. Both are persisted because provider schemas vary.

type ServicePayment struct {
	ID        string        `json:"id"`
	RequestID string        `json:"request_id"`
	Date      time.Time     `json:"date"`
	Status    PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
