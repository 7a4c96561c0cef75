package routes

import (
	"asset-app/config"
	"asset-app/controllers"
	"asset-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupEquipmentRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/equipment", middleware.AuthMiddleware)
	equipmentController := controllers.NewEquipmentController(db)

	api.Get("/", equipmentController.GetAllEquipment)
	api.Get("/:id", equipmentController.GetEquipmentByID)
	api.Post("/", equipmentController.CreateEquipment)
	api.Put("/:id", equipmentController.UpdateEquipment)
}
