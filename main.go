package main

import (
	"log"
	"time"

	"canteen/config"
	scheduleController "canteen/controllers/schedule"
	"canteen/database"
	"canteen/routers/authRoutes"
	"canteen/routers/cartRoutes"
	"canteen/routers/configRoutes"
	"canteen/routers/historyRoutes"
	"canteen/routers/menuRoutes"
	"canteen/routers/orderRoutes"
	"canteen/routers/recipeRoutes"
	"canteen/routers/saleRoutes"
	"canteen/routers/userRoutes"
	"canteen/scheduler"
	"canteen/timeconfig"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	store := timeconfig.NewStore(database.Database.Db)
	tasks := scheduler.NewTasks(database.Database.Db)

	sched := scheduler.New(time.Local)
	if err := sched.InitAll(store, tasks); err != nil {
		log.Printf("[WARNING] Some scheduled jobs failed to register: %v", err)
	}
	defer sched.Stop()

	scheduleController.Setup(sched, store, tasks)

	app := fiber.New()

	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	recipeRoutes.SetupRecipeRoutes(app)
	menuRoutes.SetupMenuRoutes(app)
	cartRoutes.SetupCartRoutes(app)
	orderRoutes.SetupOrderRoutes(app)
	saleRoutes.SetupSaleRoutes(app)
	historyRoutes.SetupHistoryRoutes(app)
	configRoutes.SetupConfigRoutes(app)

	log.Printf("[INFO] Canteen server listening on port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatalf("[ERROR] Server stopped: %v", err)
	}
}
