package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gestor_manutencao/internal/adapter/http/handlers/mocks"
	"gestor_manutencao/internal/domain/entities"
	"gestor_manutencao/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func setupRequestRouter(t *testing.T) (*gin.Engine, *mocks.MockIRequestUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIRequestUseCase(ctrl)
	h := NewRequestHandler(uc)

	r := gin.New()
	r.POST("/v1/requests", h.CreateRequest)
	r.GET("/v1/requests", h.FilterRequests)
	r.GET("/v1/requests/:id", h.GetRequest)
	r.PATCH("/v1/requests/:id/quote", h.SubmitQuote)
	r.PATCH("/v1/requests/:id/approve", h.ApproveQuote)
	r.PATCH("/v1/requests/:id/reject", h.RejectQuote)
	r.GET("/v1/clients/:client_id/requests", h.ListClientRequests)
	r.GET("/v1/workbench/requests/open", h.ListOpenRequests)
	return r, uc
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func clientActorBody() map[string]any {
	return map[string]any{"id": "client-1", "name": "Ana Souza", "role": "client"}
}

func employeeActorBody() map[string]any {
	return map[string]any{"id": "emp-1", "name": "Carlos Lima", "role": "employee"}
}

func sampleRequest(status entities.RequestStatus) entities.MaintenanceRequest {
	return entities.MaintenanceRequest{
		ID:                "req-1",
		ClientID:          "client-1",
		ClientName:        "Ana Souza",
		Equipment:         "Notebook Dell",
		Category:          "Eletrônicos",
		DefectDescription: "Não liga",
		Status:            status,
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	}
}

func TestCreateRequestEndpoint(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, uc := setupRequestRouter(t)
		uc.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).
			Return(sampleRequest(entities.RequestStatusAberta), nil)

		w := doJSON(t, r, http.MethodPost, "/v1/requests", map[string]any{
			"actor":              clientActorBody(),
			"equipment":          "Notebook Dell",
			"category":           "Eletrônicos",
			"defect_description": "Não liga",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp["status"] != "ABERTA" {
			t.Errorf("expected ABERTA, got %v", resp["status"])
		}
	})

	t.Run("missing fields fail binding", func(t *testing.T) {
		r, _ := setupRequestRouter(t)
		w := doJSON(t, r, http.MethodPost, "/v1/requests", map[string]any{
			"actor": clientActorBody(),
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("role error maps to 403", func(t *testing.T) {
		r, uc := setupRequestRouter(t)
		uc.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).
			Return(entities.MaintenanceRequest{}, usecase.ErrActorRoleNotAllowed)
		w := doJSON(t, r, http.MethodPost, "/v1/requests", map[string]any{
			"actor":              employeeActorBody(),
			"equipment":          "Notebook Dell",
			"category":           "Eletrônicos",
			"defect_description": "Não liga",
		})
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestSubmitQuoteEndpoint(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		r, uc := setupRequestRouter(t)
		uc.EXPECT().SubmitQuote(gomock.Any(), "req-1", gomock.Any(), 150.5).
			Return(sampleRequest(entities.RequestStatusOrcada), nil)
		w := doJSON(t, r, http.MethodPatch, "/v1/requests/req-1/quote", map[string]any{
			"actor": employeeActorBody(),
			"price": 150.5,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("precondition failure maps to 412", func(t *testing.T) {
		r, uc := setupRequestRouter(t)
		uc.EXPECT().SubmitQuote(gomock.Any(), "req-1", gomock.Any(), 150.5).
			Return(entities.MaintenanceRequest{}, usecase.ErrRequestStatusNotAllowed)
		w := doJSON(t, r, http.MethodPatch, "/v1/requests/req-1/quote", map[string]any{
			"actor": employeeActorBody(),
			"price": 150.5,
		})
		if w.Code != http.StatusPreconditionFailed {
			t.Fatalf("expected 412, got %d", w.Code)
		}
	})

	t.Run("raced transition maps to 409", func(t *testing.T) {
		r, uc := setupRequestRouter(t)
		uc.EXPECT().SubmitQuote(gomock.Any(), "req-1", gomock.Any(), 150.5).
			Return(entities.MaintenanceRequest{}, usecase.ErrRequestStatusChanged)
		w := doJSON(t, r, http.MethodPatch, "/v1/requests/req-1/quote", map[string]any{
			"actor": employeeActorBody(),
			"price": 150.5,
		})
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		r, uc := setupRequestRouter(t)
		uc.EXPECT().SubmitQuote(gomock.Any(), "ghost", gomock.Any(), 150.5).
			Return(entities.MaintenanceRequest{}, usecase.ErrRequestNotFound)
		w := doJSON(t, r, http.MethodPatch, "/v1/requests/ghost/quote", map[string]any{
			"actor": employeeActorBody(),
			"price": 150.5,
		})
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestRejectQuoteEndpoint(t *testing.T) {
	r, uc := setupRequestRouter(t)
	uc.EXPECT().RejectQuote(gomock.Any(), "req-1", gomock.Any(), "Muito caro").
		Return(sampleRequest(entities.RequestStatusRejeitada), nil)
	w := doJSON(t, r, http.MethodPatch, "/v1/requests/req-1/reject", map[string]any{
		"actor":  clientActorBody(),
		"reason": "Muito caro",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestApproveQuoteEndpoint(t *testing.T) {
	r, uc := setupRequestRouter(t)
	uc.EXPECT().ApproveQuote(gomock.Any(), "req-1", gomock.Any()).
		Return(sampleRequest(entities.RequestStatusAprovada), nil)
	w := doJSON(t, r, http.MethodPatch, "/v1/requests/req-1/approve", map[string]any{
		"actor": clientActorBody(),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestFilterRequestsEndpoint(t *testing.T) {
	t.Run("parses status, window and text", func(t *testing.T) {
		r, uc := setupRequestRouter(t)
		uc.EXPECT().FilterRequests(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, filter usecase.RequestFilter) ([]entities.MaintenanceRequest, error) {
				if filter.Status == nil || *filter.Status != entities.RequestStatusPaga {
					t.Errorf("expected status PAGA, got %v", filter.Status)
				}
				if filter.From == nil || filter.To == nil {
					t.Error("expected both window bounds")
				} else {
					if !filter.From.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
						t.Errorf("unexpected from: %v", filter.From)
					}
					// end_date covers the whole day
					if !filter.To.After(time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)) {
						t.Errorf("unexpected to: %v", filter.To)
					}
				}
				if filter.Text != "notebook" {
					t.Errorf("unexpected text: %q", filter.Text)
				}
				return []entities.MaintenanceRequest{sampleRequest(entities.RequestStatusPaga)}, nil
			})

		w := doJSON(t, r, http.MethodGet, "/v1/requests?status=PAGA&start_date=2026-03-01&end_date=2026-03-31&q=notebook", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown status maps to 400", func(t *testing.T) {
		r, _ := setupRequestRouter(t)
		w := doJSON(t, r, http.MethodGet, "/v1/requests?status=BOGUS", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed date maps to 400", func(t *testing.T) {
		r, _ := setupRequestRouter(t)
		w := doJSON(t, r, http.MethodGet, "/v1/requests?start_date=03-01-2026", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestListEndpoints(t *testing.T) {
	t.Run("client requests", func(t *testing.T) {
		r, uc := setupRequestRouter(t)
		uc.EXPECT().ListForClient(gomock.Any(), "client-1").
			Return([]entities.MaintenanceRequest{sampleRequest(entities.RequestStatusAberta)}, nil)
		w := doJSON(t, r, http.MethodGet, "/v1/clients/client-1/requests", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("open workbench", func(t *testing.T) {
		r, uc := setupRequestRouter(t)
		uc.EXPECT().ListOpenForEmployees(gomock.Any()).
			Return([]entities.MaintenanceRequest{sampleRequest(entities.RequestStatusAberta)}, nil)
		w := doJSON(t, r, http.MethodGet, "/v1/workbench/requests/open", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get by id not found", func(t *testing.T) {
		r, uc := setupRequestRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "ghost").
			Return(entities.MaintenanceRequest{}, usecase.ErrRequestNotFound)
		w := doJSON(t, r, http.MethodGet, "/v1/requests/ghost", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
