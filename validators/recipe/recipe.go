package recipeValidator

import (
	"canteen/middleware"
	"canteen/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Save validates recipe create/update bodies
func Save() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Recipe)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		}
		if strings.TrimSpace(reqData.Unit) == "" {
			errors["unit"] = "Unit is required!"
		}
		if reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRecipe", reqData)
		return c.Next()
	}
}
