package routes

import (
	"gestor_manutencao/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addRegistryRoutes(rg *gin.RouterGroup, categoryHandler *handlers.CategoryHandler, employeeHandler *handlers.EmployeeHandler) {
	categories := rg.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.POST("", categoryHandler.Create)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)

	employees := rg.Group("/employees")
	employees.GET("", employeeHandler.List)
	employees.POST("", employeeHandler.Create)
	employees.PUT("/:id", employeeHandler.Update)
	employees.DELETE("/:id", employeeHandler.Delete)
}
