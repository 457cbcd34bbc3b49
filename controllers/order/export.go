package orderController

import (
	"fmt"
	"strings"
	"time"

	"canteen/database"
	"canteen/middleware"
	"canteen/models"
	"canteen/timeconfig"
	"canteen/timewindow"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// Export writes delivery slips for the given orders as an .xlsx
// workbook, one sheet per order (manager only).
func Export(c *fiber.Ctx) error {
	orderIDs := c.Params("orderIds")
	if orderIDs == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Select orders to export!", nil)
	}

	db := database.Database.Db
	var orders []models.OrderForm
	if err := db.Where("id IN ?", strings.Split(orderIDs, ",")).Find(&orders).Error; err != nil || len(orders) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Orders not found!", nil)
	}

	file := excelize.NewFile()
	defer file.Close()

	for i, order := range orders {
		sheet := fmt.Sprintf("order-%d", order.ID)
		if i == 0 {
			file.SetSheetName("Sheet1", sheet)
		} else {
			if _, err := file.NewSheet(sheet); err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build export!", nil)
			}
		}

		rows := [][]interface{}{
			{"Order", order.ID},
			{"Name", order.Name},
			{"Telephone", order.Telephone},
			{"Department", order.Department},
			{"Ordered at", order.OrderTime.Format("15:04:05")},
			{"Total", centsToDisplay(order.OrderPrice)},
			{},
			{"Dish", "Unit", "Weight", "Price", "Line total"},
		}

		var items []models.OrderItem
		db.Where("order_id = ?", order.ID).Find(&items)
		for _, item := range items {
			rows = append(rows, []interface{}{
				item.Name, item.Unit, item.Weight,
				centsToDisplay(item.Price), centsToDisplay(item.TotalPrice),
			})
		}
		rows = append(rows, []interface{}{}, []interface{}{
			"Caterer", "", "Printed " + time.Now().Format("2006-01-02 15:04:05"),
		})

		for r, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				continue
			}
			if err := file.SetSheetRow(sheet, cell, &row); err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build export!", nil)
			}
		}
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="orders.xlsx"`)
	if err := file.Write(c.Response().BodyWriter()); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to write export!", nil)
	}
	return nil
}

func centsToDisplay(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}

type chefDish struct {
	Name   string
	Unit   string
	Weight int64
}

// ExportChef writes a kitchen prep sheet: total weight per dish across
// every order in the current menu window. names narrows the sheet to a
// comma-separated list of dishes; "all" keeps everything
// (chef/manager only).
func ExportChef(c *fiber.Ctx) error {
	names := c.Params("names")
	if names == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Select dishes to export!", nil)
	}

	db := database.Database.Db
	store := timeconfig.NewStore(db)
	window := timewindow.TodayMenuWindow(time.Now(), store.Deadline(), store.MealStart())

	var orderIDs []uint
	db.Model(&models.OrderForm{}).
		Where("order_time >= ? AND order_time < ?", window.Start, window.End).
		Pluck("id", &orderIDs)
	if len(orderIDs) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No orders in the current window!", nil)
	}

	query := db.Model(&models.OrderItem{}).
		Select("name, unit, SUM(weight) AS weight").
		Where("order_id IN ?", orderIDs).
		Group("name, unit").
		Order("weight DESC")
	if names != "all" {
		query = query.Where("name IN ?", strings.Split(names, ","))
	}

	var dishes []chefDish
	if err := query.Scan(&dishes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build export!", nil)
	}

	file := excelize.NewFile()
	defer file.Close()
	file.SetSheetName("Sheet1", "kitchen")

	rows := [][]interface{}{
		{"Meal window", window.Start.Format("2006-01-02 15:04:05"), window.End.Format("2006-01-02 15:04:05")},
		{},
		{"Dish", "Unit", "Total weight"},
	}
	for _, d := range dishes {
		rows = append(rows, []interface{}{d.Name, d.Unit, d.Weight})
	}

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			continue
		}
		if err := file.SetSheetRow("kitchen", cell, &row); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build export!", nil)
		}
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="kitchen.xlsx"`)
	if err := file.Write(c.Response().BodyWriter()); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to write export!", nil)
	}
	return nil
}
