package routes

import (
	"asset-app/config"
	"asset-app/controllers/mobiles"
	"asset-app/middleware"
	"asset-app/scanner"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupMobileScanRoutes(app *fiber.App, db *gorm.DB, manager *scanner.Manager, log *zap.Logger) {
	api := app.Group(config.MAIN_ROUTES+"/mobile/scanner", middleware.AuthMiddleware)
	scanController := mobiles.NewScanController(db, manager, log)

	api.Post("/open", scanController.OpenSession)
	api.Post("/mode", scanController.SetMode)
	api.Post("/target/location", scanController.SetTargetLocation)
	api.Post("/target/job", scanController.SetTargetJob)
	api.Post("/scan", scanController.Scan)
	api.Post("/undo", scanController.Undo)
	api.Get("/feed", scanController.Feed)
	api.Post("/close", scanController.CloseSession)
}
