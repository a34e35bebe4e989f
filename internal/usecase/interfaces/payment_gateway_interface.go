package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// PayService uses it to process the payment and persists the provider
// response payload for traceability. Mock mode is handled by the concrete
// gateway so the rest of the system stays provider-agnostic.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
