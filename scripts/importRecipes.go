package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"strings"

	"canteen/config"
	"canteen/database"
	"canteen/models"
)

func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	// Open CSV file
	file, err := os.Open("recipes.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	// Create CSV reader
	reader := csv.NewReader(file)

	// Read all records
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	// Skip header row
	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	inserted := 0
	updated := 0
	skipped := 0

	for _, row := range records[1:] {
		recipe := models.Recipe{
			Name:        getField(row, headerIndex, "name"),
			Category:    getField(row, headerIndex, "category"),
			Picture:     getField(row, headerIndex, "picture"),
			Unit:        getField(row, headerIndex, "unit"),
			Price:       parseCents(getField(row, headerIndex, "price")),
			Description: getField(row, headerIndex, "description"),
			IsDeleted:   false,
		}

		// Skip if no name or price
		if recipe.Name == "" || recipe.Price <= 0 {
			skipped++
			continue
		}

		// Check if recipe exists by name
		var existing models.Recipe
		result := database.Database.Db.Where("name = ? AND is_deleted = ?", recipe.Name, false).First(&existing)

		if result.Error != nil {
			// Insert new recipe
			if err := database.Database.Db.Create(&recipe).Error; err != nil {
				log.Printf("Error inserting recipe %s: %v", recipe.Name, err)
				continue
			}
			inserted++
		} else {
			// Update existing recipe
			existing.Category = recipe.Category
			existing.Picture = recipe.Picture
			existing.Unit = recipe.Unit
			existing.Price = recipe.Price
			existing.Description = recipe.Description

			if err := database.Database.Db.Save(&existing).Error; err != nil {
				log.Printf("Error updating recipe %s: %v", recipe.Name, err)
				continue
			}
			updated++
		}
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Inserted: %d", inserted)
	log.Printf("Updated: %d", updated)
	log.Printf("Skipped: %d", skipped)
	log.Printf("Total processed: %d", inserted+updated+skipped)
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseCents converts a decimal price string like "12.50" to cents
func parseCents(s string) int64 {
	if s == "" {
		return 0
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(val*100 + 0.5)
}
