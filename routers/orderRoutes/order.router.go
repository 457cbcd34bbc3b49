package orderRoutes

import (
	orderController "canteen/controllers/order"
	"canteen/database"
	"canteen/middleware"
	"canteen/models"
	"canteen/timeconfig"

	"github.com/gofiber/fiber/v2"
)

func SetupOrderRoutes(app *fiber.App) {
	orderGroup := app.Group("/order", middleware.JWTMiddleware)

	// Submission passes the delivery-period guard first; the submit
	// handler re-checks inside its transaction
	store := timeconfig.NewStore(database.Database.Db)
	orderGroup.Post("/submit", middleware.OrderWindowGuard(store, nil), orderController.Submit)

	orderGroup.Delete("/cancel/:orderId", orderController.Cancel)
	orderGroup.Get("/mine", orderController.MyOrders)
	orderGroup.Get("/page", middleware.RequireRoles(models.RoleManager), orderController.Page)
	orderGroup.Get("/export/:orderIds", middleware.RequireRoles(models.RoleManager), orderController.Export)
	orderGroup.Get("/exportChef/:names", middleware.RequireRoles(models.RoleChef, models.RoleManager), orderController.ExportChef)
}
