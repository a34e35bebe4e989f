package routes

import (
	"log"
	"os"
	"strconv"

	_ "gestor_manutencao/docs" // This will be auto-generated
	"gestor_manutencao/internal/adapter/http/handlers"
	repository2 "gestor_manutencao/internal/adapter/persistence/repository"
	"gestor_manutencao/internal/infrastructure/database"
	"gestor_manutencao/internal/infrastructure/payments"
	"gestor_manutencao/internal/usecase"
	"gestor_manutencao/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	requestRepo := repository2.NewRequestDynamoRepository(ddb)
	categoryRepo := repository2.NewCategoryDynamoRepository(ddb)
	employeeRepo := repository2.NewEmployeeDynamoRepository(ddb)
	paymentRepo := repository2.NewServicePaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	requestUseCase := usecase.NewRequestUseCase(requestRepo, categoryRepo, employeeRepo)
	paymentUseCase := usecase.NewServicePaymentUseCase(paymentRepo, requestRepo, paymentGateway)
	reportUseCase := usecase.NewReportUseCase(requestRepo)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo)
	employeeUseCase := usecase.NewEmployeeUseCase(employeeRepo)

	requestHandler := handlers.NewRequestHandler(requestUseCase)
	paymentHandler := handlers.NewServicePaymentHandler(paymentUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)
	categoryHandler := handlers.NewCategoryHandler(categoryUseCase)
	employeeHandler := handlers.NewEmployeeHandler(employeeUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMaintenanceRoutes(v1, requestHandler, paymentHandler, reportHandler)
	addRegistryRoutes(v1, categoryHandler, employeeHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
