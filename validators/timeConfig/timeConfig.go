package timeConfigValidator

import (
	"canteen/middleware"
	"canteen/models"
	"canteen/timewindow"

	"github.com/gofiber/fiber/v2"
)

// Update validates time-configuration bodies: both fields must be
// present and parseable as H:mm:ss / HH:mm:ss.
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.TimeConfig)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.OrderDeadline == "" {
			errors["orderDeadline"] = "Order deadline is required!"
		} else if _, err := timewindow.ParseTimeOfDay(reqData.OrderDeadline); err != nil {
			errors["orderDeadline"] = "Order deadline must be H:mm:ss or HH:mm:ss!"
		}

		if reqData.MealStartTime == "" {
			errors["mealStartTime"] = "Meal start time is required!"
		} else if _, err := timewindow.ParseTimeOfDay(reqData.MealStartTime); err != nil {
			errors["mealStartTime"] = "Meal start time must be H:mm:ss or HH:mm:ss!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTimeConfig", reqData)
		return c.Next()
	}
}
