package configRoutes

import (
	commonController "canteen/controllers/common"
	scheduleController "canteen/controllers/schedule"
	timeConfigController "canteen/controllers/timeconfig"
	"canteen/middleware"
	"canteen/models"
	timeConfigValidator "canteen/validators/timeConfig"

	"github.com/gofiber/fiber/v2"
)

func SetupConfigRoutes(app *fiber.App) {
	configGroup := app.Group("/timeConfig", middleware.JWTMiddleware)
	configGroup.Get("/current", timeConfigController.GetCurrent)
	configGroup.Put("/update", middleware.RequireRoles(models.RoleManager), timeConfigValidator.Update(), timeConfigController.Update)

	scheduleGroup := app.Group("/schedule", middleware.JWTMiddleware)
	scheduleGroup.Post("/refresh", middleware.RequireRoles(models.RoleManager), scheduleController.Refresh)

	commonGroup := app.Group("/common", middleware.JWTMiddleware)
	commonGroup.Post("/upload", middleware.RequireRoles(models.RoleManager, models.RoleChef), commonController.Upload)
}
