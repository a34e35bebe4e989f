package routes

import (
	"gestor_manutencao/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addMaintenanceRoutes(rg *gin.RouterGroup, requestHandler *handlers.RequestHandler, paymentHandler *handlers.ServicePaymentHandler, reportHandler *handlers.ReportHandler) {
	requests := rg.Group("/requests")
	requests.POST("", requestHandler.CreateRequest)
	requests.GET("", requestHandler.FilterRequests)
	requests.GET("/:id", requestHandler.GetRequest)

	requests.PATCH("/:id/quote", requestHandler.SubmitQuote)
	requests.PATCH("/:id/approve", requestHandler.ApproveQuote)
	requests.PATCH("/:id/reject", requestHandler.RejectQuote)
	requests.PATCH("/:id/reclaim", requestHandler.ReclaimRequest)
	requests.PATCH("/:id/maintenance", requestHandler.PerformMaintenance)
	requests.PATCH("/:id/redirect", requestHandler.RedirectMaintenance)
	requests.PATCH("/:id/finalize", requestHandler.FinalizeRequest)

	requests.POST("/:id/payment", paymentHandler.PayService)
	requests.GET("/:id/payments", paymentHandler.ListPayments)

	rg.GET("/clients/:client_id/requests", requestHandler.ListClientRequests)

	// Lives outside /requests so the static segment never races the :id param.
	rg.GET("/workbench/requests/open", requestHandler.ListOpenRequests)

	reports := rg.Group("/reports")
	reports.GET("/revenue", reportHandler.Revenue)
	reports.GET("/revenue/by-category", reportHandler.RevenueByCategory)
}
