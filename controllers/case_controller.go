package controllers

import (
	"asset-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CaseController struct {
	DB *gorm.DB
}

func NewCaseController(DB *gorm.DB) *CaseController {
	return &CaseController{DB: DB}
}

func (c *CaseController) GetAllCases(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))

	var cases []models.Case
	if err := c.DB.Where("company_id = ?", companyID).Find(&cases).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": cases})
}

func (c *CaseController) GetCaseByID(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))

	var caseRow models.Case
	if err := c.DB.Where("company_id = ?", companyID).First(&caseRow, "id = ?", ctx.Params("id")).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Case not found"})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": caseRow})
}

// GetCaseContents resolves the packed equipment rows of a case.
func (c *CaseController) GetCaseContents(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))

	var caseRow models.Case
	if err := c.DB.Where("company_id = ?", companyID).First(&caseRow, "id = ?", ctx.Params("id")).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Case not found"})
	}

	equipment := []models.Equipment{}
	if len(caseRow.Contents) > 0 {
		if err := c.DB.Where("id IN ?", []uint(caseRow.Contents)).Find(&equipment).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return ctx.JSON(fiber.Map{"success": true, "data": equipment})
}

func (c *CaseController) CreateCase(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))
	userID := int(ctx.Locals("userID").(float64))

	var caseRow models.Case
	if err := ctx.BodyParser(&caseRow); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	caseRow.CompanyID = &companyID
	caseRow.CreatedBy = userID
	caseRow.UpdatedBy = userID

	if err := c.DB.Create(&caseRow).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Case created successfully",
		"data":    caseRow,
	})
}
