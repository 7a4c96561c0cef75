package controllers

import (
	"asset-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LocationController struct {
	DB *gorm.DB
}

func NewLocationController(DB *gorm.DB) *LocationController {
	return &LocationController{DB: DB}
}

func (lc *LocationController) GetAllLocations(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))

	var locations []models.Location
	if err := lc.DB.Where("company_id = ? AND is_active = ?", companyID, true).Find(&locations).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": locations})
}

func (lc *LocationController) GetLocationByID(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))

	var location models.Location
	if err := lc.DB.Where("company_id = ?", companyID).First(&location, "id = ?", ctx.Params("id")).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Location not found"})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": location})
}

func (lc *LocationController) CreateLocation(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))
	userID := int(ctx.Locals("userID").(float64))

	var location models.Location
	if err := ctx.BodyParser(&location); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	location.CompanyID = &companyID
	location.CreatedBy = userID
	location.UpdatedBy = userID

	if err := lc.DB.Create(&location).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Location created successfully",
		"data":    location,
	})
}

func (lc *LocationController) DeleteLocation(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))

	var location models.Location
	if err := lc.DB.Where("company_id = ?", companyID).First(&location, "id = ?", ctx.Params("id")).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Location not found"})
	}

	if err := lc.DB.Delete(&location).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Location deleted successfully"})
}
