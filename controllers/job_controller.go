package controllers

import (
	"fmt"

	"asset-app/models"
	"asset-app/notifier"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type JobController struct {
	DB *gorm.DB
}

func NewJobController(DB *gorm.DB) *JobController {
	return &JobController{DB: DB}
}

func (c *JobController) GetAllJobs(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))

	var jobs []models.Job
	if err := c.DB.Where("company_id = ?", companyID).Find(&jobs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": jobs})
}

func (c *JobController) GetJobByID(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))

	var job models.Job
	if err := c.DB.Where("company_id = ?", companyID).First(&job, "id = ?", ctx.Params("id")).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": job})
}

func (c *JobController) CreateJob(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))
	userID := int(ctx.Locals("userID").(float64))

	var job models.Job
	if err := ctx.BodyParser(&job); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	job.CompanyID = companyID
	job.CreatedBy = userID
	job.UpdatedBy = userID

	if err := c.DB.Create(&job).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Job created successfully",
		"data":    job,
	})
}

func (c *JobController) GetBookedItems(ctx *fiber.Ctx) error {
	return c.getRelationItems(ctx, false)
}

func (c *JobController) GetPackedItems(ctx *fiber.Ctx) error {
	return c.getRelationItems(ctx, true)
}

func (c *JobController) getRelationItems(ctx *fiber.Ctx, packed bool) error {
	companyID := uint(ctx.Locals("companyID").(float64))

	var job models.Job
	if err := c.DB.Where("company_id = ?", companyID).First(&job, "id = ?", ctx.Params("id")).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}

	if packed {
		var items []models.JobPackedItem
		if err := c.DB.Where("job_id = ?", job.ID).Find(&items).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.JSON(fiber.Map{"success": true, "data": items})
	}

	var items []models.JobBookedItem
	if err := c.DB.Where("job_id = ?", job.ID).Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": items})
}

// NotifyPackedReport mails the packed-item list of a job to the given
// recipients.
func (c *JobController) NotifyPackedReport(ctx *fiber.Ctx) error {
	companyID := uint(ctx.Locals("companyID").(float64))

	var input struct {
		Recipients []string `json:"recipients"`
	}
	if err := ctx.BodyParser(&input); err != nil || len(input.Recipients) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "recipients required"})
	}

	var job models.Job
	if err := c.DB.Where("company_id = ?", companyID).First(&job, "id = ?", ctx.Params("id")).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}

	var items []models.JobPackedItem
	if err := c.DB.Where("job_id = ?", job.ID).Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		if item.EquipmentID != nil {
			var e models.Equipment
			if err := c.DB.First(&e, *item.EquipmentID).Error; err == nil {
				lines = append(lines, fmt.Sprintf("Equipment: %s", e.Name))
				continue
			}
		}
		if item.CaseID != nil {
			var caseRow models.Case
			if err := c.DB.First(&caseRow, *item.CaseID).Error; err == nil {
				lines = append(lines, fmt.Sprintf("Case: %s", caseRow.Name))
			}
		}
	}

	if err := notifier.SendPackedReport(input.Recipients, job.Name, lines); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Packed report sent"})
}
