package saleController

import (
	"time"

	"canteen/database"
	"canteen/middleware"
	"canteen/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Page lists monthly sale records, optionally filtered to one month
// (treasurer/manager only)
func Page(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	month := c.Query("month")

	db := database.Database.Db
	query := db.Model(&models.Sale{})
	if month != "" {
		query = query.Where("month = ?", month)
	}

	var total int64
	query.Count(&total)

	var sales []models.Sale
	if err := query.Order("month DESC").Offset((page - 1) * limit).Limit(limit).Find(&sales).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to list sales!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sales fetched.", fiber.Map{
		"records": sales,
		"total":   total,
	})
}

type dishTotal struct {
	Name       string `json:"name"`
	Unit       string `json:"unit"`
	Weight     int64  `json:"weight"`
	TotalPrice int64  `json:"totalPrice"`
}

// monthDishTotals aggregates one month's order lines per dish
func monthDishTotals(db *gorm.DB, month string) ([]dishTotal, error) {
	begin, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return nil, err
	}
	end := begin.AddDate(0, 1, 0)

	var details []dishTotal
	err = db.Model(&models.OrderItem{}).
		Select("name, unit, SUM(weight) AS weight, SUM(total_price) AS total_price").
		Where("created_at >= ? AND created_at < ?", begin, end).
		Group("name, unit, price").
		Order("total_price DESC").
		Scan(&details).Error
	return details, err
}

// Details breaks one month's sales down per dish (treasurer/manager only)
func Details(c *fiber.Ctx) error {
	month := c.Query("month")
	if month == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Month is required (yyyy-MM)!", nil)
	}

	if _, err := time.ParseInLocation("2006-01", month, time.Local); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid month, expected yyyy-MM!", nil)
	}

	details, err := monthDishTotals(database.Database.Db, month)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute details!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sale details fetched.", details)
}

// MonthlyOrders lists one user's orders within a month
// (treasurer/manager only)
func MonthlyOrders(c *fiber.Ctx) error {
	month := c.Query("month")
	userID := c.QueryInt("userId")
	if month == "" || userID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "userId and month (yyyy-MM) are required!", nil)
	}

	begin, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid month, expected yyyy-MM!", nil)
	}
	end := begin.AddDate(0, 1, 0)

	var orders []models.OrderForm
	err = database.Database.Db.
		Where("user_id = ?", userID).
		Where("order_time >= ? AND order_time < ?", begin, end).
		Order("order_time ASC").
		Find(&orders).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch monthly orders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Monthly orders fetched.", orders)
}
