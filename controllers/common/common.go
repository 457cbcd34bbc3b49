package commonController

import (
	"canteen/config"
	"canteen/middleware"
	"canteen/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Upload stores a dish picture and returns its public URL
// (manager/chef only)
func Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing file!", nil)
	}

	fileName, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		log.Printf("Error saving uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store file!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "File uploaded.", fiber.Map{
		"fileName": fileName,
		"url":      utils.GetFileURL(fileName),
	})
}
