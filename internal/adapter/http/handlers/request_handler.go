package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	request "gestor_manutencao/internal/adapter/http/dto/request"
	response "gestor_manutencao/internal/adapter/http/dto/response"
	"gestor_manutencao/internal/domain/entities"
	"gestor_manutencao/internal/usecase"
	"gestor_manutencao/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid request payload", http.StatusBadRequest)

const dateParamLayout = "2006-01-02"

// RequestHandler exposes the maintenance-request lifecycle over HTTP. Every
// transition endpoint binds its payload, hands the command to the use case
// and maps sentinel errors onto the AppError envelope.

type RequestHandler struct {
	usecase usecase.IRequestUseCase
}

func NewRequestHandler(uc usecase.IRequestUseCase) *RequestHandler {
	return &RequestHandler{usecase: uc}
}

func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var payload request.CreateMaintenanceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateRequest(c.Request.Context(), usecase.CreateRequestInput{
		Actor:             payload.Actor.ToActor(),
		Equipment:         payload.Equipment,
		Category:          payload.Category,
		DefectDescription: payload.DefectDescription,
	})
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMaintenanceRequest(created))
}

func (h *RequestHandler) SubmitQuote(c *gin.Context) {
	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.SubmitQuote(c.Request.Context(), c.Param("id"), payload.Actor.ToActor(), payload.Price)
	h.respondTransition(c, updated, err)
}

func (h *RequestHandler) ApproveQuote(c *gin.Context) {
	h.actorOnlyTransition(c, h.usecase.ApproveQuote)
}

func (h *RequestHandler) RejectQuote(c *gin.Context) {
	var payload request.RejectQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.RejectQuote(c.Request.Context(), c.Param("id"), payload.Actor.ToActor(), payload.Reason)
	h.respondTransition(c, updated, err)
}

func (h *RequestHandler) ReclaimRequest(c *gin.Context) {
	h.actorOnlyTransition(c, h.usecase.ReclaimRequest)
}

func (h *RequestHandler) PerformMaintenance(c *gin.Context) {
	var payload request.PerformMaintenanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.PerformMaintenance(c.Request.Context(), c.Param("id"), payload.Actor.ToActor(), payload.Description, payload.Orientations)
	h.respondTransition(c, updated, err)
}

func (h *RequestHandler) RedirectMaintenance(c *gin.Context) {
	var payload request.RedirectMaintenanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.RedirectMaintenance(c.Request.Context(), c.Param("id"), payload.Actor.ToActor(), payload.NewEmployeeID)
	h.respondTransition(c, updated, err)
}

func (h *RequestHandler) FinalizeRequest(c *gin.Context) {
	h.actorOnlyTransition(c, h.usecase.FinalizeRequest)
}

func (h *RequestHandler) actorOnlyTransition(
	c *gin.Context,
	transition func(ctx context.Context, id string, actor entities.Actor) (entities.MaintenanceRequest, error),
) {
	var payload request.ActorOnlyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := transition(c.Request.Context(), c.Param("id"), payload.Actor.ToActor())
	h.respondTransition(c, updated, err)
}

func (h *RequestHandler) respondTransition(c *gin.Context, updated entities.MaintenanceRequest, err error) {
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMaintenanceRequest(updated))
}

func (h *RequestHandler) GetRequest(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMaintenanceRequest(r))
}

func (h *RequestHandler) ListClientRequests(c *gin.Context) {
	rs, err := h.usecase.ListForClient(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMaintenanceRequests(rs))
}

func (h *RequestHandler) ListOpenRequests(c *gin.Context) {
	rs, err := h.usecase.ListOpenForEmployees(c.Request.Context())
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMaintenanceRequests(rs))
}

// FilterRequests answers the employee list screen. Query params: status,
// start_date, end_date (inclusive, YYYY-MM-DD) and q (free text).
func (h *RequestHandler) FilterRequests(c *gin.Context) {
	filter := usecase.RequestFilter{Text: c.Query("q")}

	if raw := c.Query("status"); raw != "" {
		status := entities.RequestStatus(raw)
		if !status.Valid() {
			c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
			return
		}
		filter.Status = &status
	}
	from, to, ok := parseDateWindow(c)
	if !ok {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}
	filter.From = from
	filter.To = to

	rs, err := h.usecase.FilterRequests(c.Request.Context(), filter)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMaintenanceRequests(rs))
}

// parseDateWindow turns start_date/end_date query params into an inclusive
// window: end_date covers the whole day.
func parseDateWindow(c *gin.Context) (*time.Time, *time.Time, bool) {
	var from, to *time.Time
	if raw := c.Query("start_date"); raw != "" {
		t, err := time.Parse(dateParamLayout, raw)
		if err != nil {
			return nil, nil, false
		}
		from = &t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, err := time.Parse(dateParamLayout, raw)
		if err != nil {
			return nil, nil, false
		}
		endOfDay := t.Add(24*time.Hour - time.Nanosecond)
		to = &endOfDay
	}
	return from, to, true
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidActor),
		errors.Is(err, usecase.ErrInvalidEquipment),
		errors.Is(err, usecase.ErrInvalidDefect),
		errors.Is(err, usecase.ErrUnknownCategory),
		errors.Is(err, usecase.ErrInvalidQuotePrice),
		errors.Is(err, usecase.ErrInvalidRejectionReason),
		errors.Is(err, usecase.ErrInvalidMaintenanceDesc),
		errors.Is(err, usecase.ErrInvalidOrientations),
		errors.Is(err, usecase.ErrRedirectToSelf):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrActorRoleNotAllowed):
		return pkg.NewDomainErrorSimple("ROLE_NOT_ALLOWED", "Actor role not allowed for this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Maintenance request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRedirectTargetNotFound):
		return pkg.NewDomainErrorSimple("EMPLOYEE_NOT_FOUND", "Redirect target employee not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestStatusNotAllowed):
		return pkg.NewDomainErrorSimple("REQUEST_STATUS_NOT_ALLOWED", "Current request status does not allow this operation", http.StatusPreconditionFailed)
	case errors.Is(err, usecase.ErrRequestStatusChanged):
		return pkg.NewDomainErrorSimple("REQUEST_STATUS_CHANGED", "Request status changed, fetch the latest state and retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
