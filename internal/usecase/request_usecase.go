package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"gestor_manutencao/internal/domain/entities"
	"gestor_manutencao/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound        = errors.New("maintenance request not found")
	ErrInvalidRequestID       = errors.New("invalid request id")
	ErrInvalidClientID        = errors.New("invalid client id")
	ErrInvalidActor           = errors.New("invalid actor")
	ErrActorRoleNotAllowed    = errors.New("actor role not allowed for this operation")
	ErrInvalidEquipment       = errors.New("invalid equipment description")
	ErrInvalidDefect          = errors.New("invalid defect description")
	ErrUnknownCategory        = errors.New("unknown category")
	ErrInvalidQuotePrice      = errors.New("invalid quote price")
	ErrInvalidRejectionReason = errors.New("invalid rejection reason")
	ErrInvalidMaintenanceDesc = errors.New("invalid maintenance description")
	ErrInvalidOrientations    = errors.New("invalid orientations")
	ErrRedirectTargetNotFound = errors.New("redirect target employee not found")
	ErrRedirectToSelf         = errors.New("cannot redirect to the acting employee")

	// ErrRequestStatusNotAllowed is the precondition failure: the record's
	// current status does not permit the requested operation.
	ErrRequestStatusNotAllowed = errors.New("operation not allowed for current request status")

	// ErrRequestStatusChanged is the conflict case: the status moved between
	// the read and the conditional write.
	ErrRequestStatusChanged = errors.New("request status changed since it was read")
)

// CreateRequestInput is the client command that opens a new request.
type CreateRequestInput struct {
	Actor             entities.Actor
	Equipment         string
	Category          string
	DefectDescription string
}

// RequestFilter holds the optional predicates of FilterRequests. All supplied
// predicates must match. Text matches case-insensitively against equipment,
// client name and category.
type RequestFilter struct {
	Status *entities.RequestStatus
	From   *time.Time
	To     *time.Time
	Text   string
}

// IRequestUseCase is the request lifecycle manager. Every status transition
// goes through exactly one of these operations; there is no direct field
// mutation anywhere else.
//
// Each transition re-validates the actor role (client operations: create,
// approve, reject, reclaim, pay; employee operations: quote, perform,
// redirect, finalize), validates its inputs, checks the status precondition
// against a fresh read and then applies all field mutations plus the status
// change in a single conditional write.

type IRequestUseCase interface {
	CreateRequest(ctx context.Context, in CreateRequestInput) (entities.MaintenanceRequest, error)
	SubmitQuote(ctx context.Context, id string, actor entities.Actor, price float64) (entities.MaintenanceRequest, error)
	ApproveQuote(ctx context.Context, id string, actor entities.Actor) (entities.MaintenanceRequest, error)
	RejectQuote(ctx context.Context, id string, actor entities.Actor, reason string) (entities.MaintenanceRequest, error)
	ReclaimRequest(ctx context.Context, id string, actor entities.Actor) (entities.MaintenanceRequest, error)
	PerformMaintenance(ctx context.Context, id string, actor entities.Actor, description, orientations string) (entities.MaintenanceRequest, error)
	RedirectMaintenance(ctx context.Context, id string, actor entities.Actor, newEmployeeID string) (entities.MaintenanceRequest, error)
	FinalizeRequest(ctx context.Context, id string, actor entities.Actor) (entities.MaintenanceRequest, error)

	GetByID(ctx context.Context, id string) (entities.MaintenanceRequest, error)
	ListForClient(ctx context.Context, clientID string) ([]entities.MaintenanceRequest, error)
	ListOpenForEmployees(ctx context.Context) ([]entities.MaintenanceRequest, error)
	FilterRequests(ctx context.Context, filter RequestFilter) ([]entities.MaintenanceRequest, error)
}

type RequestUseCase struct {
	repo         interfaces.IRequestRepository
	categoryRepo interfaces.ICategoryRepository
	employeeRepo interfaces.IEmployeeRepository
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(repo interfaces.IRequestRepository, categoryRepo interfaces.ICategoryRepository, employeeRepo interfaces.IEmployeeRepository) *RequestUseCase {
	return &RequestUseCase{repo: repo, categoryRepo: categoryRepo, employeeRepo: employeeRepo}
}

func (u *RequestUseCase) CreateRequest(ctx context.Context, in CreateRequestInput) (entities.MaintenanceRequest, error) {
	if err := requireRole(in.Actor, entities.UserRoleClient); err != nil {
		return entities.MaintenanceRequest{}, err
	}

	equipment := strings.TrimSpace(in.Equipment)
	if equipment == "" || utf8.RuneCountInString(equipment) > entities.MaxEquipmentLen {
		return entities.MaintenanceRequest{}, ErrInvalidEquipment
	}
	defect := strings.TrimSpace(in.DefectDescription)
	if defect == "" || utf8.RuneCountInString(defect) > entities.MaxDefectDescriptionLen {
		return entities.MaintenanceRequest{}, ErrInvalidDefect
	}

	// The category must be known at creation time; afterward the request
	// keeps the registry's canonical name as a plain snapshot.
	categoryName, err := u.resolveCategoryName(ctx, in.Category)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}

	now := time.Now().UTC()
	r := entities.MaintenanceRequest{
		ID:                uuid.NewString(),
		ClientID:          in.Actor.ID,
		ClientName:        in.Actor.Name,
		Equipment:         equipment,
		Category:          categoryName,
		DefectDescription: defect,
		Status:            entities.RequestStatusAberta,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	return u.repo.Create(ctx, r)
}

func (u *RequestUseCase) SubmitQuote(ctx context.Context, id string, actor entities.Actor, price float64) (entities.MaintenanceRequest, error) {
	if err := requireRole(actor, entities.UserRoleEmployee); err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if price <= 0 {
		return entities.MaintenanceRequest{}, ErrInvalidQuotePrice
	}

	// A re-quote after reclaim overwrites the previous price and assignee
	// and clears the stale rejection reason.
	return u.transition(ctx, id, []entities.RequestStatus{entities.RequestStatusAberta}, interfaces.TransitionUpdate{
		Status:           entities.RequestStatusOrcada,
		Price:            ptr(price),
		AssignedEmployee: ptr(actor.Name),
		RejectionReason:  ptr(""),
	})
}

func (u *RequestUseCase) ApproveQuote(ctx context.Context, id string, actor entities.Actor) (entities.MaintenanceRequest, error) {
	if err := requireRole(actor, entities.UserRoleClient); err != nil {
		return entities.MaintenanceRequest{}, err
	}
	return u.transition(ctx, id, []entities.RequestStatus{entities.RequestStatusOrcada}, interfaces.TransitionUpdate{
		Status: entities.RequestStatusAprovada,
	})
}

func (u *RequestUseCase) RejectQuote(ctx context.Context, id string, actor entities.Actor, reason string) (entities.MaintenanceRequest, error) {
	if err := requireRole(actor, entities.UserRoleClient); err != nil {
		return entities.MaintenanceRequest{}, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" || utf8.RuneCountInString(reason) > entities.MaxRejectionReasonLen {
		return entities.MaintenanceRequest{}, ErrInvalidRejectionReason
	}
	return u.transition(ctx, id, []entities.RequestStatus{entities.RequestStatusOrcada}, interfaces.TransitionUpdate{
		Status:          entities.RequestStatusRejeitada,
		RejectionReason: ptr(reason),
	})
}

// ReclaimRequest recycles a rejected request back to ABERTA so it can be
// quoted again. The prior price, assignee and rejection reason stay on the
// record until the next quote overwrites them.
func (u *RequestUseCase) ReclaimRequest(ctx context.Context, id string, actor entities.Actor) (entities.MaintenanceRequest, error) {
	if err := requireRole(actor, entities.UserRoleClient); err != nil {
		return entities.MaintenanceRequest{}, err
	}
	return u.transition(ctx, id, []entities.RequestStatus{entities.RequestStatusRejeitada}, interfaces.TransitionUpdate{
		Status: entities.RequestStatusAberta,
	})
}

func (u *RequestUseCase) PerformMaintenance(ctx context.Context, id string, actor entities.Actor, description, orientations string) (entities.MaintenanceRequest, error) {
	if err := requireRole(actor, entities.UserRoleEmployee); err != nil {
		return entities.MaintenanceRequest{}, err
	}
	description = strings.TrimSpace(description)
	if description == "" || utf8.RuneCountInString(description) > entities.MaxMaintenanceDescriptionLen {
		return entities.MaintenanceRequest{}, ErrInvalidMaintenanceDesc
	}
	orientations = strings.TrimSpace(orientations)
	if utf8.RuneCountInString(orientations) > entities.MaxOrientationsLen {
		return entities.MaintenanceRequest{}, ErrInvalidOrientations
	}

	return u.transition(ctx, id, []entities.RequestStatus{entities.RequestStatusAprovada, entities.RequestStatusRedirecionada}, interfaces.TransitionUpdate{
		Status:                 entities.RequestStatusArrumada,
		MaintenanceDescription: ptr(description),
		Orientations:           ptr(orientations),
	})
}

func (u *RequestUseCase) RedirectMaintenance(ctx context.Context, id string, actor entities.Actor, newEmployeeID string) (entities.MaintenanceRequest, error) {
	if err := requireRole(actor, entities.UserRoleEmployee); err != nil {
		return entities.MaintenanceRequest{}, err
	}
	newEmployeeID = strings.TrimSpace(newEmployeeID)
	if newEmployeeID == "" {
		return entities.MaintenanceRequest{}, ErrRedirectTargetNotFound
	}
	if newEmployeeID == actor.ID {
		return entities.MaintenanceRequest{}, ErrRedirectToSelf
	}

	target, err := u.employeeRepo.GetByID(ctx, newEmployeeID)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if target.ID == "" {
		return entities.MaintenanceRequest{}, ErrRedirectTargetNotFound
	}

	return u.transition(ctx, id, []entities.RequestStatus{entities.RequestStatusAprovada, entities.RequestStatusRedirecionada}, interfaces.TransitionUpdate{
		Status:             entities.RequestStatusRedirecionada,
		AssignedEmployee:   ptr(target.Name),
		RedirectedEmployee: ptr(target.Name),
	})
}

func (u *RequestUseCase) FinalizeRequest(ctx context.Context, id string, actor entities.Actor) (entities.MaintenanceRequest, error) {
	if err := requireRole(actor, entities.UserRoleEmployee); err != nil {
		return entities.MaintenanceRequest{}, err
	}
	now := time.Now().UTC()
	return u.transition(ctx, id, []entities.RequestStatus{entities.RequestStatusPaga}, interfaces.TransitionUpdate{
		Status:      entities.RequestStatusFinalizada,
		FinalizedAt: &now,
	})
}

// transition is the shared read-check-update path of every lifecycle
// operation. The conditional write keys on the status observed by the read,
// so a raced transition surfaces as ErrRequestStatusChanged instead of
// silently overwriting.
func (u *RequestUseCase) transition(ctx context.Context, id string, from []entities.RequestStatus, up interfaces.TransitionUpdate) (entities.MaintenanceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MaintenanceRequest{}, ErrInvalidRequestID
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if current.ID == "" {
		return entities.MaintenanceRequest{}, ErrRequestNotFound
	}

	allowed := false
	for _, s := range from {
		if current.Status == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return entities.MaintenanceRequest{}, ErrRequestStatusNotAllowed
	}

	updated, err := u.repo.ApplyTransition(ctx, id, current.Status, up)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if updated.ID == "" {
		return entities.MaintenanceRequest{}, ErrRequestStatusChanged
	}
	return updated, nil
}

func (u *RequestUseCase) GetByID(ctx context.Context, id string) (entities.MaintenanceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MaintenanceRequest{}, ErrInvalidRequestID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if r.ID == "" {
		return entities.MaintenanceRequest{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *RequestUseCase) ListForClient(ctx context.Context, clientID string) ([]entities.MaintenanceRequest, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClientID(ctx, clientID)
}

func (u *RequestUseCase) ListOpenForEmployees(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	return u.repo.ListByStatus(ctx, entities.RequestStatusAberta)
}

func (u *RequestUseCase) FilterRequests(ctx context.Context, filter RequestFilter) ([]entities.MaintenanceRequest, error) {
	var (
		all []entities.MaintenanceRequest
		err error
	)
	if filter.Status != nil {
		all, err = u.repo.ListByStatus(ctx, *filter.Status)
	} else {
		all, err = u.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	text := strings.ToLower(strings.TrimSpace(filter.Text))
	out := make([]entities.MaintenanceRequest, 0, len(all))
	for _, r := range all {
		if filter.From != nil && r.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && r.CreatedAt.After(*filter.To) {
			continue
		}
		if text != "" && !matchesText(r, text) {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func matchesText(r entities.MaintenanceRequest, lowered string) bool {
	return strings.Contains(strings.ToLower(r.Equipment), lowered) ||
		strings.Contains(strings.ToLower(r.ClientName), lowered) ||
		strings.Contains(strings.ToLower(r.Category), lowered)
}

func (u *RequestUseCase) resolveCategoryName(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrUnknownCategory
	}
	categories, err := u.categoryRepo.List(ctx)
	if err != nil {
		return "", err
	}
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return c.Name, nil
		}
	}
	return "", ErrUnknownCategory
}

func requireRole(actor entities.Actor, role entities.UserRole) error {
	if strings.TrimSpace(actor.ID) == "" || strings.TrimSpace(actor.Name) == "" {
		return ErrInvalidActor
	}
	if actor.Role != role {
		return ErrActorRoleNotAllowed
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
