// Package memory provides an in-memory implementation of the persistence
// interfaces. It backs tests and local runs without DynamoDB; each Store is
// fully isolated, so test cases never share state.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"gestor_manutencao/internal/domain/entities"
	"gestor_manutencao/internal/usecase/interfaces"
)

type Store struct {
	mu         sync.RWMutex
	requests   map[string]entities.MaintenanceRequest
	categories map[string]entities.Category
	employees  map[string]entities.Employee
	payments   map[string]entities.ServicePayment

	// insertion order, so listings keep the underlying-store order
	requestOrder []string
}

func NewStore() *Store {
	return &Store{
		requests:   map[string]entities.MaintenanceRequest{},
		categories: map[string]entities.Category{},
		employees:  map[string]entities.Employee{},
		payments:   map[string]entities.ServicePayment{},
	}
}

// RequestRepository returns the store's IRequestRepository view.
func (s *Store) RequestRepository() interfaces.IRequestRepository { return (*requestRepo)(s) }

// CategoryRepository returns the store's ICategoryRepository view.
func (s *Store) CategoryRepository() interfaces.ICategoryRepository { return (*categoryRepo)(s) }

// EmployeeRepository returns the store's IEmployeeRepository view.
func (s *Store) EmployeeRepository() interfaces.IEmployeeRepository { return (*employeeRepo)(s) }

// PaymentRepository returns the store's IServicePaymentRepository view.
func (s *Store) PaymentRepository() interfaces.IServicePaymentRepository { return (*paymentRepo)(s) }

type requestRepo Store

var _ interfaces.IRequestRepository = (*requestRepo)(nil)

// errIDExists mirrors the DynamoDB attribute_not_exists create guard, which
// surfaces a duplicate id as a conditional-write error.
var errIDExists = errors.New("id already exists")

func (r *requestRepo) Create(_ context.Context, req entities.MaintenanceRequest) (entities.MaintenanceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.requests[req.ID]; exists {
		return entities.MaintenanceRequest{}, errIDExists
	}
	r.requests[req.ID] = req
	r.requestOrder = append(r.requestOrder, req.ID)
	return req, nil
}

func (r *requestRepo) GetByID(_ context.Context, id string) (entities.MaintenanceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.requests[id], nil
}

func (r *requestRepo) ListAll(_ context.Context) ([]entities.MaintenanceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.MaintenanceRequest, 0, len(r.requestOrder))
	for _, id := range r.requestOrder {
		out = append(out, r.requests[id])
	}
	return out, nil
}

func (r *requestRepo) ListByClientID(_ context.Context, clientID string) ([]entities.MaintenanceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.MaintenanceRequest{}
	for _, id := range r.requestOrder {
		if req := r.requests[id]; req.ClientID == clientID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *requestRepo) ListByStatus(_ context.Context, status entities.RequestStatus) ([]entities.MaintenanceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.MaintenanceRequest{}
	for _, id := range r.requestOrder {
		if req := r.requests[id]; req.Status == status {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *requestRepo) ApplyTransition(_ context.Context, id string, expectedStatus entities.RequestStatus, up interfaces.TransitionUpdate) (entities.MaintenanceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok || req.Status != expectedStatus {
		// same contract as the conditional write: condition failure, no error
		return entities.MaintenanceRequest{}, nil
	}

	req.Status = up.Status
	req.UpdatedAt = time.Now().UTC()
	if up.Price != nil {
		req.Price = copied(*up.Price)
	}
	if up.AssignedEmployee != nil {
		req.AssignedEmployee = textField(*up.AssignedEmployee)
	}
	if up.RejectionReason != nil {
		req.RejectionReason = textField(*up.RejectionReason)
	}
	if up.MaintenanceDescription != nil {
		req.MaintenanceDescription = textField(*up.MaintenanceDescription)
	}
	if up.Orientations != nil {
		req.Orientations = textField(*up.Orientations)
	}
	if up.RedirectedEmployee != nil {
		req.RedirectedEmployee = textField(*up.RedirectedEmployee)
	}
	if up.PaidAt != nil {
		req.PaidAt = copied(up.PaidAt.UTC())
	}
	if up.FinalizedAt != nil {
		req.FinalizedAt = copied(up.FinalizedAt.UTC())
	}

	r.requests[id] = req
	return req, nil
}

// textField mirrors the DynamoDB repositories: writing an empty string
// clears the attribute.
func textField(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func copied[T any](v T) *T {
	return &v
}

type categoryRepo Store

var _ interfaces.ICategoryRepository = (*categoryRepo)(nil)

func (r *categoryRepo) Create(_ context.Context, c entities.Category) (entities.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[c.ID] = c
	return c, nil
}

func (r *categoryRepo) GetByID(_ context.Context, id string) (entities.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.categories[id], nil
}

func (r *categoryRepo) List(_ context.Context) ([]entities.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *categoryRepo) Update(_ context.Context, c entities.Category) (entities.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[c.ID]; !ok {
		return entities.Category{}, nil
	}
	r.categories[c.ID] = c
	return c, nil
}

func (r *categoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, id)
	return nil
}

type employeeRepo Store

var _ interfaces.IEmployeeRepository = (*employeeRepo)(nil)

func (r *employeeRepo) Create(_ context.Context, e entities.Employee) (entities.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees[e.ID] = e
	return e, nil
}

func (r *employeeRepo) GetByID(_ context.Context, id string) (entities.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.employees[id], nil
}

func (r *employeeRepo) List(_ context.Context) ([]entities.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

func (r *employeeRepo) Update(_ context.Context, e entities.Employee) (entities.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[e.ID]; !ok {
		return entities.Employee{}, nil
	}
	r.employees[e.ID] = e
	return e, nil
}

func (r *employeeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.employees, id)
	return nil
}

type paymentRepo Store

var _ interfaces.IServicePaymentRepository = (*paymentRepo)(nil)

func (r *paymentRepo) Create(_ context.Context, p entities.ServicePayment) (entities.ServicePayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[p.ID] = p
	return p, nil
}

func (r *paymentRepo) GetByID(_ context.Context, id string) (entities.ServicePayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.payments[id], nil
}

func (r *paymentRepo) ListByRequestID(_ context.Context, requestID string) ([]entities.ServicePayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.ServicePayment{}
	for _, p := range r.payments {
		if p.RequestID == requestID {
			out = append(out, p)
		}
	}
	return out, nil
}
