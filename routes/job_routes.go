package routes

import (
	"asset-app/config"
	"asset-app/controllers"
	"asset-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupJobRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/jobs", middleware.AuthMiddleware)
	jobController := controllers.NewJobController(db)

	api.Get("/", jobController.GetAllJobs)
	api.Get("/:id", jobController.GetJobByID)
	api.Post("/", jobController.CreateJob)
	api.Get("/:id/booked", jobController.GetBookedItems)
	api.Get("/:id/packed", jobController.GetPackedItems)
	api.Post("/:id/notify", jobController.NotifyPackedReport)
}
