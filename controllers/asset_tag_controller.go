package controllers

import (
	"fmt"
	"strings"

	"asset-app/controllers/idgen"
	"asset-app/models"
	"asset-app/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type AssetTagController struct {
	DB *gorm.DB
}

func NewAssetTagController(DB *gorm.DB) *AssetTagController {
	return &AssetTagController{DB: DB}
}

var validate = validator.New()

func (c *AssetTagController) GetAllAssetTags(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))

	var tags []models.AssetTag
	if err := c.DB.Where("company_id = ?", companyID).Find(&tags).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": tags})
}

func (c *AssetTagController) GetAssetTagByID(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))

	var tag models.AssetTag
	if err := c.DB.Where("company_id = ?", companyID).First(&tag, "id = ?", ctx.Params("id")).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Asset tag not found"})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": tag})
}

func (c *AssetTagController) CreateAssetTag(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))
	userID := int(ctx.Locals("userID").(float64))

	var tag models.AssetTag
	if err := ctx.BodyParser(&tag); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	tag.PrintedCode = strings.TrimSpace(tag.PrintedCode)
	if err := validate.Struct(&tag); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tag.CompanyID = &companyID
	tag.SerialID = types.SnowflakeID(idgen.GenerateID())
	tag.CreatedBy = userID
	tag.UpdatedBy = userID

	if err := c.DB.Create(&tag).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Asset tag created successfully",
		"data":    tag,
	})
}

// GenerateAssetTags provisions a batch of fresh tags with snowflake-derived
// printed codes.
func (c *AssetTagController) GenerateAssetTags(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))
	userID := int(ctx.Locals("userID").(float64))

	count := ctx.QueryInt("count", 10)
	if count < 1 || count > 1000 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "count must be between 1 and 1000"})
	}

	tags := make([]models.AssetTag, 0, count)
	for i := 0; i < count; i++ {
		serial := idgen.GenerateID()
		tags = append(tags, models.AssetTag{
			CompanyID:   &companyID,
			SerialID:    types.SnowflakeID(serial),
			PrintedCode: fmt.Sprintf("TAG-%d", serial),
			CreatedBy:   userID,
			UpdatedBy:   userID,
		})
	}

	if err := c.DB.Create(&tags).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": tags})
}

type ExcelRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

type ExcelTagUploadResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	TotalRows int             `json:"total_rows,omitempty"`
	Inserted  int             `json:"inserted,omitempty"`
	Skipped   int             `json:"skipped,omitempty"`
	Errors    []ExcelRowError `json:"errors,omitempty"`
}

// UploadAssetTags registers printed codes from an uploaded sheet. Column A is
// the printed code, column B an optional NFC tag id. Codes already registered
// are skipped.
func (c *AssetTagController) UploadAssetTags(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))
	userID := int(ctx.Locals("userID").(float64))

	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(ExcelTagUploadResponse{
			Success: false,
			Message: "No file uploaded",
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(ExcelTagUploadResponse{
			Success: false,
			Message: "Invalid file format. Only .xlsx and .xls files are allowed",
		})
	}

	if file.Size > 10*1024*1024 {
		return ctx.Status(fiber.StatusBadRequest).JSON(ExcelTagUploadResponse{
			Success: false,
			Message: "File size exceeds maximum limit of 10MB",
		})
	}

	fileHeader, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(ExcelTagUploadResponse{
			Success: false,
			Message: "Failed to open uploaded file",
			Errors:  []ExcelRowError{{Row: 0, Message: "File Processing Error", Detail: err.Error()}},
		})
	}
	defer fileHeader.Close()

	excelFile, err := excelize.OpenReader(fileHeader)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(ExcelTagUploadResponse{
			Success: false,
			Message: "Failed to read Excel file. Please ensure the file is not corrupted",
			Errors:  []ExcelRowError{{Row: 0, Message: "Excel Read Error", Detail: err.Error()}},
		})
	}
	defer excelFile.Close()

	sheets := excelFile.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(ExcelTagUploadResponse{
			Success: false,
			Message: "Excel file contains no sheets",
		})
	}

	rows, err := excelFile.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(ExcelTagUploadResponse{
			Success: false,
			Message: "Failed to read rows from Excel",
			Errors:  []ExcelRowError{{Row: 0, Message: "Sheet Read Error", Detail: err.Error()}},
		})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(ExcelTagUploadResponse{
			Success: false,
			Message: "Excel file must contain at least header row and one data row",
		})
	}

	inserted, skipped := 0, 0
	rowErrors := []ExcelRowError{}

	for i, row := range rows[1:] {
		rowNum := i + 2
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			rowErrors = append(rowErrors, ExcelRowError{Row: rowNum, Message: "Missing printed code"})
			continue
		}
		code := strings.TrimSpace(row[0])

		var existing models.AssetTag
		if err := c.DB.Where("printed_code = ?", code).First(&existing).Error; err == nil {
			skipped++
			continue
		}

		tag := models.AssetTag{
			CompanyID:   &companyID,
			SerialID:    types.SnowflakeID(idgen.GenerateID()),
			PrintedCode: code,
			CreatedBy:   userID,
			UpdatedBy:   userID,
		}
		if len(row) > 1 {
			tag.NfcTagID = strings.TrimSpace(row[1])
		}

		if err := c.DB.Create(&tag).Error; err != nil {
			rowErrors = append(rowErrors, ExcelRowError{Row: rowNum, Message: "Insert failed", Detail: err.Error()})
			continue
		}
		inserted++
	}

	return ctx.JSON(ExcelTagUploadResponse{
		Success:   true,
		Message:   fmt.Sprintf("Processed %d rows", len(rows)-1),
		TotalRows: len(rows) - 1,
		Inserted:  inserted,
		Skipped:   skipped,
		Errors:    rowErrors,
	})
}
