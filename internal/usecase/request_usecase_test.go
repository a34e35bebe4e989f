package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gestor_manutencao/internal/domain/entities"
	"gestor_manutencao/internal/usecase/interfaces"
	mock_interfaces "gestor_manutencao/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	testClient   = entities.Actor{ID: "client-1", Name: "Ana Souza", Role: entities.UserRoleClient}
	testEmployee = entities.Actor{ID: "emp-1", Name: "Carlos Lima", Role: entities.UserRoleEmployee}
)

func newRequestUseCase(t *testing.T) (*RequestUseCase, *mock_interfaces.MockIRequestRepository, *mock_interfaces.MockICategoryRepository, *mock_interfaces.MockIEmployeeRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIRequestRepository(ctrl)
	categoryRepo := mock_interfaces.NewMockICategoryRepository(ctrl)
	employeeRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
	return NewRequestUseCase(repo, categoryRepo, employeeRepo), repo, categoryRepo, employeeRepo
}

func storedRequest(status entities.RequestStatus) entities.MaintenanceRequest {
	return entities.MaintenanceRequest{
		ID:                "req-1",
		ClientID:          testClient.ID,
		ClientName:        testClient.Name,
		Equipment:         "Notebook Dell",
		Category:          "Eletrônicos",
		DefectDescription: "Não liga",
		Status:            status,
		CreatedAt:         time.Now().UTC().Add(-time.Hour),
		UpdatedAt:         time.Now().UTC().Add(-time.Hour),
	}
}

func TestCreateRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		uc, repo, categoryRepo, _ := newRequestUseCase(t)
		categoryRepo.EXPECT().List(ctx).Return([]entities.Category{{ID: "cat-1", Name: "Eletrônicos"}}, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.MaintenanceRequest) (entities.MaintenanceRequest, error) {
				return r, nil
			})

		created, err := uc.CreateRequest(ctx, CreateRequestInput{
			Actor:             testClient,
			Equipment:         "  Notebook Dell  ",
			Category:          "eletrônicos",
			DefectDescription: "Não liga",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Error("expected generated id")
		}
		if created.Status != entities.RequestStatusAberta {
			t.Errorf("expected status ABERTA, got %s", created.Status)
		}
		if created.Equipment != "Notebook Dell" {
			t.Errorf("expected trimmed equipment, got %q", created.Equipment)
		}
		if created.Category != "Eletrônicos" {
			t.Errorf("expected canonical category name, got %q", created.Category)
		}
		if created.ClientID != testClient.ID || created.ClientName != testClient.Name {
			t.Error("expected client snapshot from actor")
		}
		if created.Price != nil || created.AssignedEmployee != nil {
			t.Error("expected optional fields unset on creation")
		}
	})

	t.Run("employee cannot create", func(t *testing.T) {
		uc, _, _, _ := newRequestUseCase(t)
		_, err := uc.CreateRequest(ctx, CreateRequestInput{
			Actor:             testEmployee,
			Equipment:         "Notebook",
			Category:          "Eletrônicos",
			DefectDescription: "Não liga",
		})
		if !errors.Is(err, ErrActorRoleNotAllowed) {
			t.Errorf("expected ErrActorRoleNotAllowed, got %v", err)
		}
	})

	t.Run("blank equipment", func(t *testing.T) {
		uc, _, _, _ := newRequestUseCase(t)
		_, err := uc.CreateRequest(ctx, CreateRequestInput{
			Actor:             testClient,
			Equipment:         "   ",
			Category:          "Eletrônicos",
			DefectDescription: "Não liga",
		})
		if !errors.Is(err, ErrInvalidEquipment) {
			t.Errorf("expected ErrInvalidEquipment, got %v", err)
		}
	})

	t.Run("equipment over limit", func(t *testing.T) {
		uc, _, _, _ := newRequestUseCase(t)
		_, err := uc.CreateRequest(ctx, CreateRequestInput{
			Actor:             testClient,
			Equipment:         strings.Repeat("x", entities.MaxEquipmentLen+1),
			Category:          "Eletrônicos",
			DefectDescription: "Não liga",
		})
		if !errors.Is(err, ErrInvalidEquipment) {
			t.Errorf("expected ErrInvalidEquipment, got %v", err)
		}
	})

	t.Run("defect over limit", func(t *testing.T) {
		uc, _, _, _ := newRequestUseCase(t)
		_, err := uc.CreateRequest(ctx, CreateRequestInput{
			Actor:             testClient,
			Equipment:         "Notebook",
			Category:          "Eletrônicos",
			DefectDescription: strings.Repeat("x", entities.MaxDefectDescriptionLen+1),
		})
		if !errors.Is(err, ErrInvalidDefect) {
			t.Errorf("expected ErrInvalidDefect, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		uc, _, categoryRepo, _ := newRequestUseCase(t)
		categoryRepo.EXPECT().List(ctx).Return([]entities.Category{{ID: "cat-1", Name: "Eletrônicos"}}, nil)
		_, err := uc.CreateRequest(ctx, CreateRequestInput{
			Actor:             testClient,
			Equipment:         "Notebook",
			Category:          "Marcenaria",
			DefectDescription: "Não liga",
		})
		if !errors.Is(err, ErrUnknownCategory) {
			t.Errorf("expected ErrUnknownCategory, got %v", err)
		}
	})
}

func TestSubmitQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("success overwrites previous quote data", func(t *testing.T) {
		uc, repo, _, _ := newRequestUseCase(t)
		repo.EXPECT().GetByID(ctx, "req-1").Return(storedRequest(entities.RequestStatusAberta), nil)
		repo.EXPECT().ApplyTransition(ctx, "req-1", entities.RequestStatusAberta, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.RequestStatus, up interfaces.TransitionUpdate) (entities.MaintenanceRequest, error) {
				if up.Status != entities.RequestStatusOrcada {
					t.Errorf("expected ORÇADA, got %s", up.Status)
				}
				if up.Price == nil || *up.Price != 150.5 {
					t.Error("expected price set")
				}
				if up.AssignedEmployee == nil || *up.AssignedEmployee != testEmployee.Name {
					t.Error("expected assignee snapshot from actor")
				}
				if up.RejectionReason == nil || *up.RejectionReason != "" {
					t.Error("expected stale rejection reason cleared")
				}
				r := storedRequest(up.Status)
				r.Price = up.Price
				r.AssignedEmployee = up.AssignedEmployee
				return r, nil
			})

		updated, err := uc.SubmitQuote(ctx, "req-1", testEmployee, 150.5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.RequestStatusOrcada {
			t.Errorf("expected ORÇADA, got %s", updated.Status)
		}
	})

	t.Run("non-positive price", func(t *testing.T) {
		uc, _, _, _ := newRequestUseCase(t)
		for _, price := range []float64{0, -10} {
			if _, err := uc.SubmitQuote(ctx, "req-1", testEmployee, price); !errors.Is(err, ErrInvalidQuotePrice) {
				t.Errorf("price %v: expected ErrInvalidQuotePrice, got %v", price, err)
			}
		}
	})

	t.Run("client cannot quote", func(t *testing.T) {
		uc, _, _, _ := newRequestUseCase(t)
		if _, err := uc.SubmitQuote(ctx, "req-1", testClient, 100); !errors.Is(err, ErrActorRoleNotAllowed) {
			t.Errorf("expected ErrActorRoleNotAllowed, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo, _, _ := newRequestUseCase(t)
		repo.EXPECT().GetByID(ctx, "missing").Return(entities.MaintenanceRequest{}, nil)
		if _, err := uc.SubmitQuote(ctx, "missing", testEmployee, 100); !errors.Is(err, ErrRequestNotFound) {
			t.Errorf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("wrong status is a precondition failure", func(t *testing.T) {
		uc, repo, _, _ := newRequestUseCase(t)
		repo.EXPECT().GetByID(ctx, "req-1").Return(storedRequest(entities.RequestStatusPaga), nil)
		if _, err := uc.SubmitQuote(ctx, "req-1", testEmployee, 100); !errors.Is(err, ErrRequestStatusNotAllowed) {
			t.Errorf("expected ErrRequestStatusNotAllowed, got %v", err)
		}
	})

	t.Run("raced status change is a conflict", func(t *testing.T) {
		uc, repo, _, _ := newRequestUseCase(t)
		repo.EXPECT().GetByID(ctx, "req-1").Return(storedRequest(entities.RequestStatusAberta), nil)
		repo.EXPECT().ApplyTransition(ctx, "req-1", entities.RequestStatusAberta, gomock.Any()).
			Return(entities.MaintenanceRequest{}, nil)
		if _, err := uc.SubmitQuote(ctx, "req-1", testEmployee, 100); !errors.Is(err, ErrRequestStatusChanged) {
			t.Errorf("expected ErrRequestStatusChanged, got %v", err)
		}
	})
}

func TestApproveAndRejectQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("approve from ORÇADA", func(t *testing.T) {
		uc, repo, _, _ := newRequestUseCase(t)
		repo.EXPECT().GetByID(ctx, "req-1").Return(storedRequest(entities.RequestStatusOrcada), nil)
		repo.EXPECT().ApplyTransition(ctx, "req-1", entities.RequestStatusOrcada, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.RequestStatus, up interfaces.TransitionUpdate) (entities.MaintenanceRequest, error) {
				return storedRequest(up.Status), nil
			})
		updated, err := uc.ApproveQuote(ctx, "req-1", testClient)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.RequestStatusAprovada {
			t.Errorf("expected APROVADA, got %s", updated.Status)
		}
	})

	t.Run("employee cannot approve", func(t *testing.T) {
		uc, _, _, _ := newRequestUseCase(t)
		if _, err := uc.ApproveQuote(ctx, "req-1", testEmployee); !errors.Is(err, ErrActorRoleNotAllowed) {
			t.Errorf("expected ErrActorRoleNotAllowed, got %v", err)
		}
	})

	t.Run("reject records the reason", func(t *testing.T) {
		uc, repo, _, _ := newRequestUseCase(t)
		repo.EXPECT().GetByID(ctx, "req-1").Return(storedRequest(entities.RequestStatusOrcada), nil)
		repo.EXPECT().ApplyTransition(ctx, "req-1", entities.RequestStatusOrcada, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.RequestStatus, up interfaces.TransitionUpdate) (entities.MaintenanceRequest, error) {
				if up.RejectionReason == nil || *up.RejectionReason != "Muito caro" {
					t.Error("expected trimmed rejection reason")
				}
				r := storedRequest(up.Status)
				r.RejectionReason = up.RejectionReason
				return r, nil
			})
		updated, err := uc.RejectQuote(ctx, "req-1", testClient, "  Muito caro  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.RequestStatusRejeitada {
			t.Errorf("expected REJEITADA, got %s", updated.Status)
		}
	})

	t.Run("reject without reason", func(t *testing.T) {
		uc, _, _, _ := newRequestUseCase(t)
		if _, err := uc.RejectQuote(ctx, "req-1", testClient, "   "); !errors.Is(err, ErrInvalidRejectionReason) {
			t.Errorf("expected ErrInvalidRejectionReason, got %v", err)
		}
	})

	t.Run("reject reason over limit", func(t *testing.T) {
		uc, _, _, _ := newRequestUseCase(t)
		reason := strings.Repeat("x", entities.MaxRejectionReasonLen+1)
		if _, err := uc.RejectQuote(ctx, "req-1", testClient, reason); !errors.Is(err, ErrInvalidRejectionReason) {
			t.Errorf("expected ErrInvalidRejectionReason, got %v", err)
		}
	})
}

func TestReclaimRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("reclaim keeps prior quote fields", func(t *testing.T) {
		uc, repo, _, _ := newRequestUseCase(t)
		rejected := storedRequest(entities.RequestStatusRejeitada)
		price := 80.0
		reason := "Muito caro"
		rejected.Price = &price
		rejected.RejectionReason = &reason

		repo.EXPECT().GetByID(ctx, "req-1").Return(rejected, nil)
		repo.EXPECT().ApplyTransition(ctx, "req-1", entities.RequestStatusRejeitada, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.RequestStatus, up interfaces.TransitionUpdate) (entities.MaintenanceRequest, error) {
				if up.Price != nil || up.RejectionReason != nil || up.AssignedEmployee != nil {
					t.Error("reclaim must not touch quote fields")
				}
				r := rejected
				r.Status = up.Status
				return r, nil
			})

		updated, err := uc.ReclaimRequest(ctx, "req-1", testClient)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.RequestStatusAberta {
			t.Errorf("expected ABERTA, got %s", updated.Status)
		}
		if updated.Price == nil || updated.RejectionReason == nil {
			t.Error("expected stale fields preserved until the next quote")
		}
	})

	t.Run("only REJEITADA can be reclaimed", func(t *testing.T) {
		uc, repo, _, _ := newRequestUseCase(t)
		repo.EXPECT().GetByID(ctx, "req-1").Return(storedRequest(entities.RequestStatusAberta), nil)
		if _, err := uc.ReclaimRequest(ctx, "req-1", testClient); !errors.Is(err, ErrRequestStatusNotAllowed) {
			t.Errorf("expected ErrRequestStatusNotAllowed, got %v", err)
		}
	})
}

func TestPerformMaintenance(t *testing.T) {
	ctx := context.Background()

	t.Run("from APROVADA", func(t *testing.T) {
		uc, repo, _, _ := newRequestUseCase(t)
		repo.EXPECT().GetByID(ctx, "req-1").Return(storedRequest(entities.RequestStatusAprovada), nil)
		repo.EXPECT().ApplyTransition(ctx, "req-1", entities.RequestStatusAprovada, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.RequestStatus, up interfaces.TransitionUpdate) (entities.MaintenanceRequest, error) {
				if up.MaintenanceDescription == nil || *up.MaintenanceDescription != "Troca da fonte" {
					t.Error("expected maintenance description")
				}
				if up.Orientations == nil || *up.Orientations != "Evitar quedas de energia" {
					t.Error("expected orientations")
				}
				return storedRequest(up.Status), nil
			})
		updated, err := uc.PerformMaintenance(ctx, "req-1", testEmployee, "Troca da fonte", "Evitar quedas de energia")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.RequestStatusArrumada {
			t.Errorf("expected ARRUMADA, got %s", updated.Status)
		}
	})

	t.Run("from REDIRECIONADA", func(t *testing.T) {
		uc, repo, _, _ := newRequestUseCase(t)
		repo.EXPECT().GetByID(ctx, "req-1").Return(storedRequest(entities.RequestStatusRedirecionada), nil)
		repo.EXPECT().ApplyTransition(ctx, "req-1", entities.RequestStatusRedirecionada, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.RequestStatus, up interfaces.TransitionUpdate) (entities.MaintenanceRequest, error) {
				return storedRequest(up.Status), nil
			})
		if _, err := uc.PerformMaintenance(ctx, "req-1", testEmployee, "Troca da fonte", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("blank description", func(t *testing.T) {
		uc, _, _, _ := newRequestUseCase(t)
		if _, err := uc.PerformMaintenance(ctx, "req-1", testEmployee, "  ", ""); !errors.Is(err, ErrInvalidMaintenanceDesc) {
			t.Errorf("expected ErrInvalidMaintenanceDesc, got %v", err)
		}
	})

	t.Run("orientations over limit", func(t *testing.T) {
		uc, _, _, _ := newRequestUseCase(t)
		orientations := strings.Repeat("x", entities.MaxOrientationsLen+1)
		if _, err := uc.PerformMaintenance(ctx, "req-1", testEmployee, "Troca da fonte", orientations); !errors.Is(err, ErrInvalidOrientations) {
			t.Errorf("expected ErrInvalidOrientations, got %v", err)
		}
	})
}

func TestRedirectMaintenance(t *testing.T) {
	ctx := context.Background()
	target := entities.Employee{ID: "emp-2", Name: "Beatriz Costa", Email: "beatriz@oficina.com", Phone: "11 99999-0000", Specialization: "Eletrônica"}

	t.Run("redirect assigns the target employee", func(t *testing.T) {
		uc, repo, _, employeeRepo := newRequestUseCase(t)
		employeeRepo.EXPECT().GetByID(ctx, "emp-2").Return(target, nil)
		repo.EXPECT().GetByID(ctx, "req-1").Return(storedRequest(entities.RequestStatusAprovada), nil)
		repo.EXPECT().ApplyTransition(ctx, "req-1", entities.RequestStatusAprovada, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.RequestStatus, up interfaces.TransitionUpdate) (entities.MaintenanceRequest, error) {
				if up.AssignedEmployee == nil || *up.AssignedEmployee != target.Name {
					t.Error("expected assignee set to target")
				}
				if up.RedirectedEmployee == nil || *up.RedirectedEmployee != target.Name {
					t.Error("expected redirected employee set to target")
				}
				return storedRequest(up.Status), nil
			})

		updated, err := uc.RedirectMaintenance(ctx, "req-1", testEmployee, "emp-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.RequestStatusRedirecionada {
			t.Errorf("expected REDIRECIONADA, got %s", updated.Status)
		}
	})

	t.Run("re-redirect from REDIRECIONADA", func(t *testing.T) {
		uc, repo, _, employeeRepo := newRequestUseCase(t)
		employeeRepo.EXPECT().GetByID(ctx, "emp-2").Return(target, nil)
		repo.EXPECT().GetByID(ctx, "req-1").Return(storedRequest(entities.RequestStatusRedirecionada), nil)
		repo.EXPECT().ApplyTransition(ctx, "req-1", entities.RequestStatusRedirecionada, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.RequestStatus, up interfaces.TransitionUpdate) (entities.MaintenanceRequest, error) {
				return storedRequest(up.Status), nil
			})
		if _, err := uc.RedirectMaintenance(ctx, "req-1", testEmployee, "emp-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("target not found", func(t *testing.T) {
		uc, _, _, employeeRepo := newRequestUseCase(t)
		employeeRepo.EXPECT().GetByID(ctx, "ghost").Return(entities.Employee{}, nil)
		if _, err := uc.RedirectMaintenance(ctx, "req-1", testEmployee, "ghost"); !errors.Is(err, ErrRedirectTargetNotFound) {
			t.Errorf("expected ErrRedirectTargetNotFound, got %v", err)
		}
	})

	t.Run("redirect to self", func(t *testing.T) {
		uc, _, _, _ := newRequestUseCase(t)
		if _, err := uc.RedirectMaintenance(ctx, "req-1", testEmployee, testEmployee.ID); !errors.Is(err, ErrRedirectToSelf) {
			t.Errorf("expected ErrRedirectToSelf, got %v", err)
		}
	})
}

func TestFinalizeRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("finalize from PAGA stamps finalized_at", func(t *testing.T) {
		uc, repo, _, _ := newRequestUseCase(t)
		repo.EXPECT().GetByID(ctx, "req-1").Return(storedRequest(entities.RequestStatusPaga), nil)
		repo.EXPECT().ApplyTransition(ctx, "req-1", entities.RequestStatusPaga, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.RequestStatus, up interfaces.TransitionUpdate) (entities.MaintenanceRequest, error) {
				if up.FinalizedAt == nil {
					t.Error("expected finalized_at set")
				}
				r := storedRequest(up.Status)
				r.FinalizedAt = up.FinalizedAt
				return r, nil
			})
		updated, err := uc.FinalizeRequest(ctx, "req-1", testEmployee)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.RequestStatusFinalizada {
			t.Errorf("expected FINALIZADA, got %s", updated.Status)
		}
	})

	t.Run("FINALIZADA is terminal", func(t *testing.T) {
		uc, repo, _, _ := newRequestUseCase(t)
		repo.EXPECT().GetByID(ctx, "req-1").Return(storedRequest(entities.RequestStatusFinalizada), nil)
		if _, err := uc.FinalizeRequest(ctx, "req-1", testEmployee); !errors.Is(err, ErrRequestStatusNotAllowed) {
			t.Errorf("expected ErrRequestStatusNotAllowed, got %v", err)
		}
	})
}

func TestQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("get by id not found", func(t *testing.T) {
		uc, repo, _, _ := newRequestUseCase(t)
		repo.EXPECT().GetByID(ctx, "missing").Return(entities.MaintenanceRequest{}, nil)
		if _, err := uc.GetByID(ctx, "missing"); !errors.Is(err, ErrRequestNotFound) {
			t.Errorf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("list for client requires id", func(t *testing.T) {
		uc, _, _, _ := newRequestUseCase(t)
		if _, err := uc.ListForClient(ctx, "  "); !errors.Is(err, ErrInvalidClientID) {
			t.Errorf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("open listing queries by status", func(t *testing.T) {
		uc, repo, _, _ := newRequestUseCase(t)
		repo.EXPECT().ListByStatus(ctx, entities.RequestStatusAberta).
			Return([]entities.MaintenanceRequest{storedRequest(entities.RequestStatusAberta)}, nil)
		out, err := uc.ListOpenForEmployees(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 {
			t.Fatalf("expected 1 request, got %d", len(out))
		}
	})
}

func TestFilterRequests(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	older := storedRequest(entities.RequestStatusAberta)
	older.ID = "req-old"
	older.Equipment = "Geladeira Brastemp"
	older.CreatedAt = base.AddDate(0, 0, -10)

	newer := storedRequest(entities.RequestStatusPaga)
	newer.ID = "req-new"
	newer.Equipment = "Notebook Dell"
	newer.CreatedAt = base

	t.Run("status filter uses the status index", func(t *testing.T) {
		uc, repo, _, _ := newRequestUseCase(t)
		status := entities.RequestStatusPaga
		repo.EXPECT().ListByStatus(ctx, status).Return([]entities.MaintenanceRequest{newer}, nil)
		out, err := uc.FilterRequests(ctx, RequestFilter{Status: &status})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].ID != "req-new" {
			t.Fatalf("unexpected result: %+v", out)
		}
	})

	t.Run("window is inclusive of both ends", func(t *testing.T) {
		uc, repo, _, _ := newRequestUseCase(t)
		repo.EXPECT().ListAll(ctx).Return([]entities.MaintenanceRequest{older, newer}, nil)
		from := older.CreatedAt
		to := newer.CreatedAt
		out, err := uc.FilterRequests(ctx, RequestFilter{From: &from, To: &to})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("expected both requests inside the window, got %d", len(out))
		}
	})

	t.Run("text matches equipment case-insensitively", func(t *testing.T) {
		uc, repo, _, _ := newRequestUseCase(t)
		repo.EXPECT().ListAll(ctx).Return([]entities.MaintenanceRequest{older, newer}, nil)
		out, err := uc.FilterRequests(ctx, RequestFilter{Text: "notebook"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].ID != "req-new" {
			t.Fatalf("unexpected result: %+v", out)
		}
	})

	t.Run("results sorted newest first", func(t *testing.T) {
		uc, repo, _, _ := newRequestUseCase(t)
		repo.EXPECT().ListAll(ctx).Return([]entities.MaintenanceRequest{older, newer}, nil)
		out, err := uc.FilterRequests(ctx, RequestFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 || out[0].ID != "req-new" || out[1].ID != "req-old" {
			t.Fatalf("expected newest first, got %+v", out)
		}
	})
}
