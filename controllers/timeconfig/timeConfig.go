package timeConfigController

import (
	"errors"
	"log"

	"canteen/controllers/schedule"
	"canteen/database"
	"canteen/middleware"
	"canteen/models"
	"canteen/timeconfig"
	"canteen/timewindow"

	"github.com/gofiber/fiber/v2"
)

// GetCurrent returns the live time configuration (any authenticated role)
func GetCurrent(c *fiber.Ctx) error {
	store := timeconfig.NewStore(database.Database.Db)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Time configuration fetched.", store.Current())
}

// Update replaces the configured times (manager only) and refreshes the
// scheduler so the new deadline takes effect without a restart.
func Update(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTimeConfig").(*models.TimeConfig)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	store := timeconfig.NewStore(database.Database.Db)
	if err := store.Update(reqData); err != nil {
		if errors.Is(err, timeconfig.ErrMissingField) || errors.Is(err, timewindow.ErrInvalidTimeFormat) {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, err.Error(), nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update time configuration!", nil)
	}

	if err := scheduleController.RefreshAll(); err != nil {
		// Config persisted; the minute self-check will retry the refresh
		log.Printf("[TIME-CONFIG] schedule refresh after update incomplete: %v", err)
		return middleware.JsonResponse(c, fiber.StatusOK, true,
			"Time configuration updated; schedule refresh incomplete and will be retried.", store.Current())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Time configuration updated.", store.Current())
}
