package menuRoutes

import (
	menuController "canteen/controllers/menu"
	"canteen/middleware"
	"canteen/models"

	"github.com/gofiber/fiber/v2"
)

func SetupMenuRoutes(app *fiber.App) {
	menuGroup := app.Group("/menu", middleware.JWTMiddleware)

	menuGroup.Get("/pageToday", menuController.PageToday)
	menuGroup.Get("/pageTomorrow", menuController.PageTomorrow)
	menuGroup.Get("/:menuId", menuController.Get)
	menuGroup.Post("/add/:recipeId", middleware.RequireRoles(models.RoleManager), menuController.Add)
	menuGroup.Put("/update", middleware.RequireRoles(models.RoleManager), menuController.Update)
	menuGroup.Delete("/delete/:menuId", middleware.RequireRoles(models.RoleManager), menuController.Delete)
	menuGroup.Delete("/deleteBatch/:menuIds", middleware.RequireRoles(models.RoleManager), menuController.DeleteBatch)
	menuGroup.Post("/multiplex/:menuIds", middleware.RequireRoles(models.RoleManager), menuController.Multiplex)
}
