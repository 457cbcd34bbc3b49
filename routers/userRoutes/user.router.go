package userRoutes

import (
	userController "canteen/controllers/user"
	"canteen/middleware"
	"canteen/models"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/info", middleware.JWTMiddleware, userController.GetInfo)
	userGroup.Get("/page", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleManager), userController.Page)
	userGroup.Post("/add", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleManager), userController.Add)
	userGroup.Put("/update", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleManager), userController.Update)
	userGroup.Delete("/delete/:userId", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleManager), userController.Delete)
}
