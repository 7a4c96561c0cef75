package controllers

import (
	"asset-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EquipmentController struct {
	DB *gorm.DB
}

func NewEquipmentController(DB *gorm.DB) *EquipmentController {
	return &EquipmentController{DB: DB}
}

func (c *EquipmentController) GetAllEquipment(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))

	var equipment []models.Equipment
	if err := c.DB.Where("company_id = ?", companyID).Find(&equipment).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": equipment})
}

func (c *EquipmentController) GetEquipmentByID(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))

	var equipment models.Equipment
	if err := c.DB.Where("company_id = ?", companyID).First(&equipment, "id = ?", ctx.Params("id")).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Equipment not found"})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": equipment})
}

func (c *EquipmentController) CreateEquipment(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))
	userID := int(ctx.Locals("userID").(float64))

	var equipment models.Equipment
	if err := ctx.BodyParser(&equipment); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	equipment.CompanyID = &companyID
	equipment.CreatedBy = userID
	equipment.UpdatedBy = userID

	if err := c.DB.Create(&equipment).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Equipment created successfully",
		"data":    equipment,
	})
}

func (c *EquipmentController) UpdateEquipment(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))
	userID := int(ctx.Locals("userID").(float64))

	var equipment models.Equipment
	if err := c.DB.Where("company_id = ?", companyID).First(&equipment, "id = ?", ctx.Params("id")).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Equipment not found"})
	}

	var input models.Equipment
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	equipment.Name = input.Name
	equipment.SerialNumber = input.SerialNumber
	equipment.AssetTagID = input.AssetTagID
	equipment.CurrentLocationID = input.CurrentLocationID
	equipment.UpdatedBy = userID

	if err := c.DB.Save(&equipment).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Equipment updated successfully", "data": equipment})
}
