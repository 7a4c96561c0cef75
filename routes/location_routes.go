package routes

import (
	"asset-app/config"
	"asset-app/controllers"
	"asset-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLocationRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/locations", middleware.AuthMiddleware)
	locationController := controllers.NewLocationController(db)

	api.Get("/", locationController.GetAllLocations)
	api.Get("/:id", locationController.GetLocationByID)
	api.Post("/", locationController.CreateLocation)
	api.Delete("/:id", locationController.DeleteLocation)
}
