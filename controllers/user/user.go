package userController

import (
	"canteen/config"
	"canteen/database"
	"canteen/middleware"
	"canteen/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// New users created by the manager start with this password
const defaultPassword = "123456"

// GetInfo returns the current user's profile
func GetInfo(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User info fetched.", user)
}

// Page lists users with optional name filter (manager only)
func Page(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	name := c.Query("name")

	db := database.Database.Db
	query := db.Model(&models.User{}).Where("is_deleted = false")
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Order("id ASC").Offset((page - 1) * limit).Limit(limit).Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to list users!", nil)
	}
	for i := range users {
		users[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched.", fiber.Map{
		"records": users,
		"total":   total,
	})
}

// Add creates a user with the default password (manager only).
// The manager and chef roles are unique: a second one is rejected.
func Add(c *fiber.Ctx) error {
	var reqData models.User
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if reqData.Role == models.RoleManager || reqData.Role == models.RoleChef {
		var count int64
		db.Model(&models.User{}).Where("role = ? AND is_deleted = false", reqData.Role).Count(&count)
		if count > 0 {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A user with this role already exists!", nil)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}
	reqData.Password = string(hashedPassword)

	if err := db.Create(&reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add user!", nil)
	}

	reqData.Password = ""
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User added successfully.", reqData)
}

// Update modifies a user's profile fields (manager only)
func Update(c *fiber.Ctx) error {
	var reqData models.User
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.ID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User id is required!", nil)
	}

	db := database.Database.Db
	updates := map[string]interface{}{
		"name":       reqData.Name,
		"sex":        reqData.Sex,
		"telephone":  reqData.Telephone,
		"department": reqData.Department,
		"role":       reqData.Role,
		"work_info":  reqData.WorkInfo,
	}
	if err := db.Model(&models.User{}).Where("id = ?", reqData.ID).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully.", nil)
}

// Delete soft-deletes a user (manager only)
func Delete(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	db := database.Database.Db
	if err := db.Model(&models.User{}).Where("id = ?", userID).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully.", nil)
}
