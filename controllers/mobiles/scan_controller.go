package mobiles

import (
	"asset-app/controllers/helpers"
	"asset-app/models"
	"asset-app/scanner"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ScanController is the HTTP face of the scanning pipeline. One scan session
// exists per authenticated user session; the camera decoder (or manual entry)
// posts each code here.
type ScanController struct {
	DB      *gorm.DB
	Manager *scanner.Manager
	Log     *zap.Logger
}

func NewScanController(DB *gorm.DB, manager *scanner.Manager, log *zap.Logger) *ScanController {
	if log == nil {
		log = zap.NewNop()
	}
	return &ScanController{DB: DB, Manager: manager, Log: log}
}

var validate = validator.New()

func (c *ScanController) sessionKey(ctx *fiber.Ctx) (string, bool) {
	key, ok := ctx.Locals("sessionID").(string)
	return key, ok && key != ""
}

func (c *ScanController) OpenSession(ctx *fiber.Ctx) error {
	key, ok := c.sessionKey(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid session"})
	}
	companyID := uint(ctx.Locals("companyID").(float64))

	var input struct {
		Mode string `json:"mode" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	mode := scanner.Mode(input.Mode)
	if !mode.Valid() {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid mode"})
	}

	c.Manager.Open(key, companyID, mode)
	return ctx.JSON(fiber.Map{"success": true, "message": "Scan session opened", "data": fiber.Map{"mode": mode}})
}

func (c *ScanController) session(ctx *fiber.Ctx) (*scanner.Session, error) {
	key, ok := c.sessionKey(ctx)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid session")
	}
	s := c.Manager.Get(key)
	if s == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "no open scan session")
	}
	return s, nil
}

func (c *ScanController) SetMode(ctx *fiber.Ctx) error {
	s, err := c.session(ctx)
	if err != nil {
		return err
	}

	var input struct {
		Mode string `json:"mode" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := s.SetMode(scanner.Mode(input.Mode)); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Mode switched", "data": fiber.Map{"mode": input.Mode}})
}

func (c *ScanController) SetTargetLocation(ctx *fiber.Ctx) error {
	s, err := c.session(ctx)
	if err != nil {
		return err
	}
	companyID := uint(ctx.Locals("companyID").(float64))

	var input struct {
		LocationID uint `json:"location_id" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var location models.Location
	if err := c.DB.Where("company_id = ?", companyID).First(&location, "id = ?", input.LocationID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Location not found"})
	}

	if err := s.SetTargetLocation(location); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Target location selected", "data": location})
}

func (c *ScanController) SetTargetJob(ctx *fiber.Ctx) error {
	s, err := c.session(ctx)
	if err != nil {
		return err
	}
	companyID := uint(ctx.Locals("companyID").(float64))

	var input struct {
		JobID uint `json:"job_id" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var job models.Job
	if err := c.DB.Where("company_id = ?", companyID).First(&job, "id = ?", input.JobID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}

	if err := s.SetTargetJob(job); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Target job selected", "data": job})
}

func (c *ScanController) Scan(ctx *fiber.Ctx) error {
	s, err := c.session(ctx)
	if err != nil {
		return err
	}
	companyID := uint(ctx.Locals("companyID").(float64))
	userID := int(ctx.Locals("userID").(float64))

	var input struct {
		Code string `json:"code" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entry := s.SubmitScan(ctx.UserContext(), input.Code)
	if entry == nil {
		// Cooldown hit or another action still in flight.
		return ctx.JSON(fiber.Map{"success": true, "data": nil})
	}

	if entry.Status == scanner.StatusSuccess && s.Mode() != scanner.ModeLookup {
		if err := helpers.InsertScanHistory(c.DB, companyID, entry.Code, string(s.Mode()),
			string(entry.Status), entry.Message, entry.EntityType, entry.EntityID, userID); err != nil {
			c.Log.Error("insert scan history failed",
				zap.String("code", entry.Code), zap.Uint("company_id", companyID), zap.Error(err))
		}
	}

	return ctx.JSON(fiber.Map{"success": true, "data": entry})
}

func (c *ScanController) Undo(ctx *fiber.Ctx) error {
	s, err := c.session(ctx)
	if err != nil {
		return err
	}

	entry := s.SubmitUndo(ctx.UserContext())
	if entry == nil {
		return ctx.JSON(fiber.Map{"success": true, "data": nil})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": entry})
}

func (c *ScanController) Feed(ctx *fiber.Ctx) error {
	s, err := c.session(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true, "data": s.Feed()})
}

func (c *ScanController) CloseSession(ctx *fiber.Ctx) error {
	key, ok := c.sessionKey(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid session"})
	}
	c.Manager.Close(key)
	return ctx.JSON(fiber.Map{"success": true, "message": "Scan session closed"})
}
