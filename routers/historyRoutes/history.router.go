package historyRoutes

import (
	historyController "canteen/controllers/history"
	"canteen/middleware"
	"canteen/models"

	"github.com/gofiber/fiber/v2"
)

func SetupHistoryRoutes(app *fiber.App) {
	historyGroup := app.Group("/history", middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleManager))

	historyGroup.Get("/page", historyController.Page)
}
