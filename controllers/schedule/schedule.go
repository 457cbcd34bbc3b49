package scheduleController

import (
	"canteen/middleware"
	"canteen/scheduler"
	"canteen/timeconfig"

	"github.com/gofiber/fiber/v2"
)

// Wired once at startup
var (
	Manager *scheduler.DynamicScheduler
	Store   *timeconfig.Store
	Jobs    *scheduler.Tasks
)

// Setup wires the running scheduler into the controller
func Setup(manager *scheduler.DynamicScheduler, store *timeconfig.Store, jobs *scheduler.Tasks) {
	Manager = manager
	Store = store
	Jobs = jobs
}

// RefreshAll re-registers the dynamic jobs against the live
// configuration. Safe to call from other controllers.
func RefreshAll() error {
	if Manager == nil {
		return nil
	}
	return Manager.RefreshAll(Store, Jobs)
}

// Refresh manually re-triggers the dynamic job refresh (manager only).
// A partial failure keeps the previous triggers and is reported without
// failing the whole request.
func Refresh(c *fiber.Ctx) error {
	if err := RefreshAll(); err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, false, "Schedule refresh incomplete: "+err.Error(), nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Schedules refreshed successfully.", nil)
}
