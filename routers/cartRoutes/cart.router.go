package cartRoutes

import (
	cartController "canteen/controllers/cart"
	"canteen/middleware"
	cartValidator "canteen/validators/cart"

	"github.com/gofiber/fiber/v2"
)

func SetupCartRoutes(app *fiber.App) {
	cartGroup := app.Group("/shopCart", middleware.JWTMiddleware)

	cartGroup.Post("/add", cartValidator.Add(), cartController.Add)
	cartGroup.Get("/get", cartController.Get)
	cartGroup.Delete("/delete/:cartId", cartController.Delete)
}
