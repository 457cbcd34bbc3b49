package historyController

import (
	"canteen/database"
	"canteen/middleware"
	"canteen/models"

	"github.com/gofiber/fiber/v2"
)

// Page lists archived menu rollups (manager only)
func Page(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	db := database.Database.Db

	var total int64
	db.Model(&models.History{}).Count(&total)

	var records []models.History
	if err := db.Order("id DESC").Offset((page - 1) * limit).Limit(limit).Find(&records).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to list history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "History fetched.", fiber.Map{
		"records": records,
		"total":   total,
	})
}
