package routes

import (
	"asset-app/config"
	"asset-app/controllers"
	"asset-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupArticleRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/articles", middleware.AuthMiddleware)
	articleController := controllers.NewArticleController(db)

	api.Get("/", articleController.GetAllArticles)
	api.Get("/:id", articleController.GetArticleByID)
	api.Post("/", articleController.CreateArticle)
}
