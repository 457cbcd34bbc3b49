package recipeController

import (
	"canteen/database"
	"canteen/middleware"
	"canteen/models"

	"github.com/gofiber/fiber/v2"
)

// Get returns one recipe by id
func Get(c *fiber.Ctx) error {
	recipeID, err := c.ParamsInt("recipeId")
	if err != nil || recipeID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid recipe id!", nil)
	}

	var recipe models.Recipe
	if err := database.Database.Db.Where("is_deleted = false").First(&recipe, recipeID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Recipe not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recipe fetched.", recipe)
}

// Page lists recipes with optional name filter
func Page(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	name := c.Query("name")

	db := database.Database.Db
	query := db.Model(&models.Recipe{}).Where("is_deleted = false")
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}

	var total int64
	query.Count(&total)

	var recipes []models.Recipe
	if err := query.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&recipes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to list recipes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recipes fetched.", fiber.Map{
		"records": recipes,
		"total":   total,
	})
}

// Add creates a recipe (manager/chef only)
func Add(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRecipe").(*models.Recipe)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var count int64
	db.Model(&models.Recipe{}).Where("name = ? AND is_deleted = false", reqData.Name).Count(&count)
	if count > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Recipe with this name already exists!", nil)
	}

	if err := db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add recipe!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Recipe added successfully.", reqData)
}

// Update modifies a recipe (manager/chef only)
func Update(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRecipe").(*models.Recipe)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.ID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Recipe id is required!", nil)
	}

	db := database.Database.Db
	updates := map[string]interface{}{
		"name":        reqData.Name,
		"category":    reqData.Category,
		"unit":        reqData.Unit,
		"price":       reqData.Price,
		"description": reqData.Description,
	}
	if reqData.Picture != "" {
		updates["picture"] = reqData.Picture
	}
	if err := db.Model(&models.Recipe{}).Where("id = ?", reqData.ID).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update recipe!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recipe updated successfully.", nil)
}

// Delete soft-deletes a recipe (manager/chef only)
func Delete(c *fiber.Ctx) error {
	recipeID, err := c.ParamsInt("recipeId")
	if err != nil || recipeID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid recipe id!", nil)
	}

	db := database.Database.Db
	if err := db.Model(&models.Recipe{}).Where("id = ?", recipeID).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete recipe!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recipe deleted successfully.", nil)
}
