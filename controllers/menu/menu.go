package menuController

import (
	"strings"
	"time"

	"canteen/database"
	"canteen/middleware"
	"canteen/models"
	"canteen/timeconfig"
	"canteen/timewindow"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Get returns one menu entry by id
func Get(c *fiber.Ctx) error {
	menuID, err := c.ParamsInt("menuId")
	if err != nil || menuID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid menu id!", nil)
	}

	var menu models.Menu
	if err := database.Database.Db.First(&menu, menuID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Menu not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Menu fetched.", menu)
}

// PageToday lists the dishes inside today's menu window
func PageToday(c *fiber.Ctx) error {
	store := timeconfig.NewStore(database.Database.Db)
	window := timewindow.TodayMenuWindow(time.Now(), store.Deadline(), store.MealStart())
	return pageWindow(c, window)
}

// PageTomorrow lists the dishes inside tomorrow's menu window
func PageTomorrow(c *fiber.Ctx) error {
	store := timeconfig.NewStore(database.Database.Db)
	window := timewindow.TomorrowMenuWindow(time.Now(), store.Deadline(), store.MealStart())
	return pageWindow(c, window)
}

func pageWindow(c *fiber.Ctx, window timewindow.Window) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	name := c.Query("name")

	query := windowQuery(database.Database.Db, window)
	if name != "" {
		query = query.Where("name = ?", name)
	}

	var total int64
	query.Count(&total)

	var menus []models.Menu
	if err := query.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&menus).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to list menu!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Menu fetched.", fiber.Map{
		"records": menus,
		"total":   total,
		"window": fiber.Map{
			"start": window.Start,
			"end":   window.End,
		},
	})
}

func windowQuery(db *gorm.DB, window timewindow.Window) *gorm.DB {
	return db.Model(&models.Menu{}).
		Where("created_at >= ? AND created_at < ?", window.Start, window.End)
}

// Add offers a recipe on tomorrow's menu (manager only). The new row is
// anchored to the start of tomorrow's window; a dish already offered in
// that window is rejected.
func Add(c *fiber.Ctx) error {
	recipeID, err := c.ParamsInt("recipeId")
	if err != nil || recipeID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid recipe id!", nil)
	}

	db := database.Database.Db

	var recipe models.Recipe
	if err := db.Where("is_deleted = false").First(&recipe, recipeID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Recipe not found!", nil)
	}

	store := timeconfig.NewStore(db)
	window := timewindow.TomorrowMenuWindow(time.Now(), store.Deadline(), store.MealStart())

	var count int64
	windowQuery(db, window).Where("name = ?", recipe.Name).Count(&count)
	if count > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Dish is already on tomorrow's menu!", nil)
	}

	menu := models.Menu{
		Name:     recipe.Name,
		Category: recipe.Category,
		Picture:  recipe.Picture,
		Unit:     recipe.Unit,
		Price:    recipe.Price,
	}
	menu.CreatedAt = window.Start

	if err := db.Create(&menu).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add dish to tomorrow's menu!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Dish added to tomorrow's menu.", menu)
}

// Update modifies a menu entry (manager only)
func Update(c *fiber.Ctx) error {
	var reqData models.Menu
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.ID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Menu id is required!", nil)
	}
	if reqData.Name == "" || reqData.Category == "" || reqData.Unit == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Name, category and unit are required!", nil)
	}
	if reqData.Price < 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Price must not be negative!", nil)
	}

	db := database.Database.Db
	updates := map[string]interface{}{
		"name":     reqData.Name,
		"category": reqData.Category,
		"unit":     reqData.Unit,
		"price":    reqData.Price,
	}
	if reqData.Picture != "" {
		updates["picture"] = reqData.Picture
	}
	if err := db.Model(&models.Menu{}).Where("id = ?", reqData.ID).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update menu!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Menu updated successfully.", nil)
}

// Delete removes one menu entry (manager only)
func Delete(c *fiber.Ctx) error {
	menuID, err := c.ParamsInt("menuId")
	if err != nil || menuID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid menu id!", nil)
	}

	if err := database.Database.Db.Delete(&models.Menu{}, menuID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete menu!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Menu deleted successfully.", nil)
}

// DeleteBatch removes a comma-separated list of menu ids (manager only)
func DeleteBatch(c *fiber.Ctx) error {
	menuIDs := c.Params("menuIds")
	if menuIDs == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Select menus to delete!", nil)
	}

	ids := strings.Split(menuIDs, ",")
	if err := database.Database.Db.Delete(&models.Menu{}, ids).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete menus!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Menus deleted successfully.", nil)
}

// Multiplex re-offers the selected dishes on tomorrow's menu, skipping
// any dish already present in that window (manager only).
func Multiplex(c *fiber.Ctx) error {
	menuIDs := c.Params("menuIds")
	if menuIDs == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Select menus to re-offer!", nil)
	}

	db := database.Database.Db
	store := timeconfig.NewStore(db)
	window := timewindow.TomorrowMenuWindow(time.Now(), store.Deadline(), store.MealStart())

	var skipped []string
	for _, id := range strings.Split(menuIDs, ",") {
		var menu models.Menu
		if err := db.First(&menu, id).Error; err != nil {
			continue
		}

		var count int64
		windowQuery(db, window).Where("name = ?", menu.Name).Count(&count)
		if count > 0 {
			skipped = append(skipped, menu.Name)
			continue
		}

		copied := models.Menu{
			Name:     menu.Name,
			Category: menu.Category,
			Picture:  menu.Picture,
			Unit:     menu.Unit,
			Price:    menu.Price,
		}
		copied.CreatedAt = window.Start
		db.Create(&copied)
	}

	if len(skipped) > 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, false,
			"Already on tomorrow's menu: ["+strings.Join(skipped, ", ")+"], the rest were re-offered.", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Menus re-offered for tomorrow.", nil)
}
