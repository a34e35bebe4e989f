package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"gestor_manutencao/internal/domain/entities"
	"gestor_manutencao/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrInvalidEmployeeID    = errors.New("invalid employee id")
	ErrInvalidEmployeeInput = errors.New("invalid employee input")
	ErrInvalidEmployeeEmail = errors.New("invalid employee email")
	ErrEmployeeEmailTaken   = errors.New("employee email already in use")
)

// Same shape the registration forms validate against: local@domain.tld,
// no whitespace or extra @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// EmployeeInput carries the writable employee fields.
type EmployeeInput struct {
	Name           string
	Email          string
	Phone          string
	Specialization string
}

// IEmployeeUseCase manages the employee registry. Emails are validated for
// shape and unique case-insensitively. Requests reference employees by name
// snapshot only, so edits and deletes never rewrite history.

type IEmployeeUseCase interface {
	List(ctx context.Context) ([]entities.Employee, error)
	Add(ctx context.Context, in EmployeeInput) (entities.Employee, error)
	Update(ctx context.Context, id string, in EmployeeInput) (entities.Employee, error)
	Delete(ctx context.Context, id string) error
}

type EmployeeUseCase struct {
	repo interfaces.IEmployeeRepository
}

var _ IEmployeeUseCase = (*EmployeeUseCase)(nil)

func NewEmployeeUseCase(repo interfaces.IEmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

func (u *EmployeeUseCase) List(ctx context.Context) ([]entities.Employee, error) {
	return u.repo.List(ctx)
}

func (u *EmployeeUseCase) Add(ctx context.Context, in EmployeeInput) (entities.Employee, error) {
	in, err := u.validateInput(ctx, in, "")
	if err != nil {
		return entities.Employee{}, err
	}
	e := entities.Employee{
		ID:             uuid.NewString(),
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Specialization: in.Specialization,
	}
	return u.repo.Create(ctx, e)
}

func (u *EmployeeUseCase) Update(ctx context.Context, id string, in EmployeeInput) (entities.Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Employee{}, ErrInvalidEmployeeID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	if existing.ID == "" {
		return entities.Employee{}, ErrEmployeeNotFound
	}

	in, err = u.validateInput(ctx, in, id)
	if err != nil {
		return entities.Employee{}, err
	}

	existing.Name = in.Name
	existing.Email = in.Email
	existing.Phone = in.Phone
	existing.Specialization = in.Specialization
	return u.repo.Update(ctx, existing)
}

func (u *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEmployeeID
	}
	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrEmployeeNotFound
	}
	return u.repo.Delete(ctx, id)
}

func (u *EmployeeUseCase) validateInput(ctx context.Context, in EmployeeInput, selfID string) (EmployeeInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Specialization = strings.TrimSpace(in.Specialization)

	if in.Name == "" || in.Phone == "" || in.Specialization == "" {
		return EmployeeInput{}, ErrInvalidEmployeeInput
	}
	if !emailPattern.MatchString(in.Email) {
		return EmployeeInput{}, ErrInvalidEmployeeEmail
	}

	employees, err := u.repo.List(ctx)
	if err != nil {
		return EmployeeInput{}, err
	}
	for _, e := range employees {
		if e.ID != selfID && strings.EqualFold(e.Email, in.Email) {
			return EmployeeInput{}, ErrEmployeeEmailTaken
		}
	}
	return in, nil
}
