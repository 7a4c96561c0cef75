package routes

import (
	"asset-app/config"
	"asset-app/controllers"
	"asset-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCaseRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/cases", middleware.AuthMiddleware)
	caseController := controllers.NewCaseController(db)

	api.Get("/", caseController.GetAllCases)
	api.Get("/:id", caseController.GetCaseByID)
	api.Get("/:id/contents", caseController.GetCaseContents)
	api.Post("/", caseController.CreateCase)
}
