package controllers

import (
	"asset-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ArticleController struct {
	DB *gorm.DB
}

func NewArticleController(DB *gorm.DB) *ArticleController {
	return &ArticleController{DB: DB}
}

func (c *ArticleController) GetAllArticles(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))

	var articles []models.Article
	if err := c.DB.Where("company_id = ?", companyID).Find(&articles).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": articles})
}

func (c *ArticleController) GetArticleByID(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))

	var article models.Article
	if err := c.DB.Where("company_id = ?", companyID).First(&article, "id = ?", ctx.Params("id")).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Article not found"})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": article})
}

func (c *ArticleController) CreateArticle(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))
	userID := int(ctx.Locals("userID").(float64))

	var article models.Article
	if err := ctx.BodyParser(&article); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	article.CompanyID = &companyID
	article.CreatedBy = userID
	article.UpdatedBy = userID

	if err := c.DB.Create(&article).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Article created successfully",
		"data":    article,
	})
}
