package saleRoutes

import (
	saleController "canteen/controllers/sale"
	"canteen/middleware"
	"canteen/models"

	"github.com/gofiber/fiber/v2"
)

func SetupSaleRoutes(app *fiber.App) {
	saleGroup := app.Group("/sale", middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleTreasurer, models.RoleManager))

	saleGroup.Get("/page", saleController.Page)
	saleGroup.Get("/details", saleController.Details)
	saleGroup.Get("/monthlyOrders", saleController.MonthlyOrders)
	saleGroup.Get("/export/:saleIds", saleController.Export)
}
