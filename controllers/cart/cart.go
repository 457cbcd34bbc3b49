package cartController

import (
	"canteen/database"
	"canteen/middleware"
	"canteen/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Add puts a dish in the current user's cart. Adding a dish that is
// already in the cart merges the weights and re-totals the line.
func Add(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCartItem").(*models.ShopCart)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	userID, _ := c.Locals("userId").(uint)
	db := database.Database.Db

	var existing models.ShopCart
	err := db.Where("name = ? AND user_id = ?", reqData.Name, userID).First(&existing).Error
	if err == nil {
		newWeight := existing.Weight + reqData.Weight
		newTotal := int64(newWeight) * existing.Price

		if err := db.Model(&existing).Updates(map[string]interface{}{
			"weight":      newWeight,
			"total_price": newTotal,
		}).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update cart!", nil)
		}
		log.Printf("user %d increased cart dish %q from %d to %d", userID, reqData.Name, existing.Weight, newWeight)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart updated.", nil)
	}

	reqData.UserID = userID
	reqData.TotalPrice = reqData.Price * int64(reqData.Weight)
	if err := db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add to cart!", nil)
	}
	log.Printf("user %d added cart dish %q, weight %d", userID, reqData.Name, reqData.Weight)
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Added to cart.", nil)
}

// Get lists the current user's cart
func Get(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(uint)

	var items []models.ShopCart
	if err := database.Database.Db.Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart fetched.", items)
}

// Delete removes one line from the current user's cart
func Delete(c *fiber.Ctx) error {
	cartID, err := c.ParamsInt("cartId")
	if err != nil || cartID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid cart id!", nil)
	}

	userID, _ := c.Locals("userId").(uint)
	result := database.Database.Db.Where("id = ? AND user_id = ?", cartID, userID).Delete(&models.ShopCart{})
	if result.Error != nil || result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cart item not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart item deleted.", nil)
}
