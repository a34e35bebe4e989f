package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gestor_manutencao/internal/domain/entities"
	"gestor_manutencao/internal/usecase/interfaces"
)

var (
	ErrServicePaymentNotFound = errors.New("service payment not found")
	ErrInvalidPaymentPayload  = errors.New("invalid payment payload")
	ErrGatewayNotConfigured   = errors.New("payment gateway not configured")
)

// IServicePaymentUseCase owns the ARRUMADA -> PAGA leg of the lifecycle.
//
// PayService processes the payment through the gateway (mock mode is handled
// by the gateway itself), persists the provider response as a ServicePayment
// audit record and advances the request with paid_at set.

type IServicePaymentUseCase interface {
	PayService(ctx context.Context, requestID string, actor entities.Actor, payload json.RawMessage) (entities.MaintenanceRequest, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.ServicePayment, error)
}

type ServicePaymentUseCase struct {
	repo        interfaces.IServicePaymentRepository
	requestRepo interfaces.IRequestRepository
	gateway     interfaces.IPaymentGateway
}

var _ IServicePaymentUseCase = (*ServicePaymentUseCase)(nil)

func NewServicePaymentUseCase(repo interfaces.IServicePaymentRepository, requestRepo interfaces.IRequestRepository, gateway interfaces.IPaymentGateway) *ServicePaymentUseCase {
	return &ServicePaymentUseCase{repo: repo, requestRepo: requestRepo, gateway: gateway}
}

func (u *ServicePaymentUseCase) PayService(ctx context.Context, requestID string, actor entities.Actor, payload json.RawMessage) (entities.MaintenanceRequest, error) {
	if err := requireRole(actor, entities.UserRoleClient); err != nil {
		return entities.MaintenanceRequest{}, err
	}
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.MaintenanceRequest{}, ErrInvalidRequestID
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		log.Printf("[payment][usecase] invalid payload (not-json) request_id=%s", requestID)
		return entities.MaintenanceRequest{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured request_id=%s", requestID)
		return entities.MaintenanceRequest{}, ErrGatewayNotConfigured
	}

	req, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if req.ID == "" {
		return entities.MaintenanceRequest{}, ErrRequestNotFound
	}
	if req.Status != entities.RequestStatusArrumada {
		log.Printf("[payment][usecase] request not payable request_id=%s status=%s", requestID, req.Status)
		return entities.MaintenanceRequest{}, ErrRequestStatusNotAllowed
	}

	payload = u.enrichPayload(payload, req)

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed request_id=%s err=%v", requestID, err)
		return entities.MaintenanceRequest{}, err
	}
	log.Printf("[payment][usecase] payment gateway success request_id=%s provider_payment_id=%s provider_status=%s", requestID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed request_id=%s err=%v", requestID, err)
	}

	now := time.Now().UTC()
	p := entities.ServicePayment{
		ID:                 providerPaymentID,
		RequestID:          requestID,
		Date:               now,
		Status:             entities.PaymentStatusAprovado,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	// The audit record is persisted before the status transition. If the
	// transition then loses a race, the record stays behind as a trace of
	// the provider charge while the request keeps its consistent status;
	// reconciliation uses external_reference in the provider payload.
	if _, err := u.repo.Create(ctx, p); err != nil {
		log.Printf("[payment][usecase] payment repository create failed request_id=%s payment_id=%s err=%v", requestID, p.ID, err)
		return entities.MaintenanceRequest{}, err
	}

	updated, err := u.requestRepo.ApplyTransition(ctx, requestID, entities.RequestStatusArrumada, interfaces.TransitionUpdate{
		Status: entities.RequestStatusPaga,
		PaidAt: &now,
	})
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if updated.ID == "" {
		return entities.MaintenanceRequest{}, ErrRequestStatusChanged
	}
	log.Printf("[payment][usecase] pay-service success request_id=%s payment_id=%s", requestID, p.ID)
	return updated, nil
}

// enrichPayload keeps the provider payload reconcilable with the request.
// The amount always comes from the stored quote, never from the caller.
func (u *ServicePaymentUseCase) enrichPayload(payload json.RawMessage, req entities.MaintenanceRequest) json.RawMessage {
	var m map[string]any
	if err := json.Unmarshal(payload, &m); err != nil {
		return payload
	}
	if m == nil {
		m = map[string]any{}
	}
	if _, ok := m["external_reference"]; !ok {
		m["external_reference"] = req.ID
	}
	if _, ok := m["description"]; !ok {
		m["description"] = fmt.Sprintf("Maintenance request %s - %s", req.ID, req.Equipment)
	}
	if req.Price != nil {
		m["transaction_amount"] = *req.Price
	}
	if b, err := json.Marshal(m); err == nil {
		return b
	}
	return payload
}

func (u *ServicePaymentUseCase) ListByRequestID(ctx context.Context, requestID string) ([]entities.ServicePayment, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, ErrInvalidRequestID
	}
	return u.repo.ListByRequestID(ctx, requestID)
}
