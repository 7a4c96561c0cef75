package company

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CompanyHandler struct {
	DB *gorm.DB
}

func NewCompanyHandler(db *gorm.DB) *CompanyHandler {
	return &CompanyHandler{DB: db}
}

func (h *CompanyHandler) GetAllCompanies(ctx *fiber.Ctx) error {
	var companies []Company
	if err := h.DB.Find(&companies).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve companies",
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Companies retrieved successfully",
		"data":    companies,
	})
}

func (h *CompanyHandler) GetCompanyByID(ctx *fiber.Ctx) error {
	var company Company
	if err := h.DB.First(&company, "id = ?", ctx.Params("id")).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Company not found",
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    company,
	})
}

func (h *CompanyHandler) CreateCompany(ctx *fiber.Ctx) error {
	var company Company
	if err := ctx.BodyParser(&company); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if userID, ok := ctx.Locals("userID").(float64); ok {
		company.CreatedBy = int(userID)
		company.UpdatedBy = int(userID)
	}

	if err := h.DB.Create(&company).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Company created successfully",
		"data":    company,
	})
}
