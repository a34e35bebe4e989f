package handlers

import (
	"net/http"

	response "gestor_manutencao/internal/adapter/http/dto/response"
	"gestor_manutencao/internal/usecase"
	"gestor_manutencao/pkg"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) Revenue(c *gin.Context) {
	period, ok := h.parsePeriod(c)
	if !ok {
		return
	}
	report, err := h.usecase.Revenue(c.Request.Context(), period)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRevenueReport(report))
}

func (h *ReportHandler) RevenueByCategory(c *gin.Context) {
	period, ok := h.parsePeriod(c)
	if !ok {
		return
	}
	report, err := h.usecase.RevenueByCategory(c.Request.Context(), period)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCategoryRevenueReport(report))
}

func (h *ReportHandler) parsePeriod(c *gin.Context) (usecase.ReportPeriod, bool) {
	from, to, ok := parseDateWindow(c)
	if !ok {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return usecase.ReportPeriod{}, false
	}
	return usecase.ReportPeriod{From: from, To: to}, true
}
