package company

import (
	"asset-app/config"
	"asset-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCompanyRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/companies", middleware.AuthMiddleware)
	handler := NewCompanyHandler(db)

	api.Get("/", handler.GetAllCompanies)
	api.Get("/:id", handler.GetCompanyByID)
	api.Post("/", handler.CreateCompany)
}
