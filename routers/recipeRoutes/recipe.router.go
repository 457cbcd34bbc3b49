package recipeRoutes

import (
	recipeController "canteen/controllers/recipe"
	"canteen/middleware"
	"canteen/models"
	recipeValidator "canteen/validators/recipe"

	"github.com/gofiber/fiber/v2"
)

func SetupRecipeRoutes(app *fiber.App) {
	recipeGroup := app.Group("/recipe", middleware.JWTMiddleware)

	recipeGroup.Get("/page", recipeController.Page)
	recipeGroup.Get("/:recipeId", recipeController.Get)
	recipeGroup.Post("/add", middleware.RequireRoles(models.RoleManager, models.RoleChef), recipeValidator.Save(), recipeController.Add)
	recipeGroup.Put("/update", middleware.RequireRoles(models.RoleManager, models.RoleChef), recipeValidator.Save(), recipeController.Update)
	recipeGroup.Delete("/delete/:recipeId", middleware.RequireRoles(models.RoleManager, models.RoleChef), recipeController.Delete)
}
