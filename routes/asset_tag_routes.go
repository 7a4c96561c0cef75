package routes

import (
	"asset-app/config"
	"asset-app/controllers"
	"asset-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAssetTagRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/asset-tags", middleware.AuthMiddleware)
	assetTagController := controllers.NewAssetTagController(db)

	api.Get("/", assetTagController.GetAllAssetTags)
	api.Get("/:id", assetTagController.GetAssetTagByID)
	api.Post("/", assetTagController.CreateAssetTag)
	api.Post("/generate", assetTagController.GenerateAssetTags)
	api.Post("/upload", assetTagController.UploadAssetTags)
}
