package middleware

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"canteen/models"
	"canteen/timeconfig"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func guardApp(t *testing.T, now time.Time) *fiber.App {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.TimeConfig{}))

	store := timeconfig.NewStore(db)
	app := fiber.New()
	app.Post("/order/submit", OrderWindowGuard(store, func() time.Time { return now }),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})
	return app
}

func postSubmit(t *testing.T, app *fiber.App) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/order/submit", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestGuardAllowsBeforeDeadline(t *testing.T) {
	app := guardApp(t, time.Date(2025, 6, 10, 8, 0, 0, 0, time.Local))
	assert.Equal(t, fiber.StatusOK, postSubmit(t, app))
}

func TestGuardAllowsAfterMealStart(t *testing.T) {
	app := guardApp(t, time.Date(2025, 6, 10, 13, 0, 0, 0, time.Local))
	assert.Equal(t, fiber.StatusOK, postSubmit(t, app))
}

func TestGuardRejectsDuringDelivery(t *testing.T) {
	app := guardApp(t, time.Date(2025, 6, 10, 10, 0, 0, 0, time.Local))
	assert.Equal(t, fiber.StatusForbidden, postSubmit(t, app))
}

func TestGuardRejectsAtBoundaries(t *testing.T) {
	// Both delivery-period boundaries are inclusive at the guard
	for _, now := range []time.Time{
		time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local),
		time.Date(2025, 6, 10, 11, 30, 0, 0, time.Local),
	} {
		app := guardApp(t, now)
		assert.Equal(t, fiber.StatusForbidden, postSubmit(t, app), "now=%v", now)
	}
}
