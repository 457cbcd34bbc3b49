package saleController

import (
	"fmt"
	"strings"
	"time"

	"canteen/database"
	"canteen/middleware"
	"canteen/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// Export writes the selected monthly sale records as an .xlsx workbook,
// one sheet per month with the per-dish breakdown
// (treasurer/manager only).
func Export(c *fiber.Ctx) error {
	saleIDs := c.Params("saleIds")
	if saleIDs == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Select sales to export!", nil)
	}

	db := database.Database.Db
	var sales []models.Sale
	if err := db.Where("id IN ?", strings.Split(saleIDs, ",")).Find(&sales).Error; err != nil || len(sales) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sales not found!", nil)
	}

	file := excelize.NewFile()
	defer file.Close()

	for i, sale := range sales {
		sheet := fmt.Sprintf("sale-%s", sale.Month)
		if i == 0 {
			file.SetSheetName("Sheet1", sheet)
		} else {
			if _, err := file.NewSheet(sheet); err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build export!", nil)
			}
		}

		details, err := monthDishTotals(db, sale.Month)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build export!", nil)
		}

		rows := [][]interface{}{
			{"Month", sale.Month},
			{"Total", centsToDisplay(sale.TotalPrice)},
			{},
			{"Dish", "Unit", "Weight", "Revenue"},
		}
		for _, d := range details {
			rows = append(rows, []interface{}{
				d.Name, d.Unit, d.Weight, centsToDisplay(d.TotalPrice),
			})
		}
		rows = append(rows, []interface{}{}, []interface{}{
			"Printed " + time.Now().Format("2006-01-02 15:04:05"),
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
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="sales.xlsx"`)
	if err := file.Write(c.Response().BodyWriter()); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to write export!", nil)
	}
	return nil
}

func centsToDisplay(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}
