package cartValidator

import (
	"canteen/middleware"
	"canteen/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Add validates cart-add bodies
func Add() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.ShopCart)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Dish name is required!"
		}
		if strings.TrimSpace(reqData.Unit) == "" {
			errors["unit"] = "Unit is required!"
		}
		if reqData.Weight <= 0 {
			errors["weight"] = "Weight must be greater than 0!"
		}
		if reqData.Price <= 0 {
			errors["price"] = "Price must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCartItem", reqData)
		return c.Next()
	}
}
