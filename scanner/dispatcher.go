package scanner

import (
	"context"
	"fmt"

	"asset-app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ActionContext carries the mode-specific targets an action needs.
type ActionContext struct {
	TargetLocationID   *uint
	TargetLocationName string
	JobID              *uint
	JobName            string
	JobCompanyID       *uint
}

// ActionResult is the outcome of a dispatched action. Undo is populated on
// successful mutations in assign-location mode so the session can offer a
// reversal.
type ActionResult struct {
	Status     Status `json:"status"`
	Message    string `json:"message"`
	EntityType string `json:"entity_type,omitempty"`
	EntityID   uint   `json:"entity_id,omitempty"`
	Undo       *UndoRecord
}

// UndoRecord captures the state needed to reverse the most recent location or
// container assignment.
type UndoRecord struct {
	EntityType         string
	EntityID           uint
	CarrierEquipmentID *uint
	PreviousLocationID *uint
	NewLocationID      *uint
	ContainerID        *uint
	NewLocationName    string
}

// Dispatcher executes the single mutation appropriate to a mode against a
// resolved carrier, enforcing idempotency and tenant isolation.
type Dispatcher struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewDispatcher(db *gorm.DB, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{DB: db, Log: log}
}

func (d *Dispatcher) PerformAction(ctx context.Context, mode Mode, resolved Resolved, actx ActionContext) ActionResult {
	switch resolved.(type) {
	case ResolvedNotFound:
		return ActionResult{Status: StatusError, Message: "Kein Asset-Tag gefunden."}
	case ResolvedAssetTag:
		return ActionResult{Status: StatusError, Message: "Asset-Tag ist keinem Objekt zugeordnet."}
	}

	switch mode {
	case ModeLookup:
		return d.lookup(resolved)
	case ModeAssignLocation:
		return d.assignLocation(ctx, resolved, actx)
	case ModeJobBook:
		return d.linkJob(ctx, resolved, actx, false)
	case ModeJobPack:
		return d.linkJob(ctx, resolved, actx, true)
	}
	return ActionResult{Status: StatusError, Message: fmt.Sprintf("Unbekannter Modus: %s", mode)}
}

func (d *Dispatcher) lookup(resolved Resolved) ActionResult {
	switch res := resolved.(type) {
	case ResolvedEquipment:
		return ActionResult{Status: StatusSuccess, EntityType: "equipment", EntityID: res.Equipment.ID,
			Message: fmt.Sprintf("Equipment erkannt: %s", res.Equipment.Name)}
	case ResolvedCase:
		return ActionResult{Status: StatusSuccess, EntityType: "case", EntityID: res.Case.ID,
			Message: fmt.Sprintf("Case erkannt: %s", res.Case.Name)}
	case ResolvedArticle:
		return ActionResult{Status: StatusSuccess, EntityType: "article", EntityID: res.Article.ID,
			Message: fmt.Sprintf("Artikel erkannt: %s", res.Article.Name)}
	case ResolvedLocation:
		return ActionResult{Status: StatusSuccess, EntityType: "location", EntityID: res.Location.ID,
			Message: fmt.Sprintf("Standort erkannt: %s", res.Location.Name)}
	}
	return ActionResult{Status: StatusError, Message: "Kein Asset-Tag gefunden."}
}

func (d *Dispatcher) assignLocation(ctx context.Context, resolved Resolved, actx ActionContext) ActionResult {
	// Scanning another location re-targets rather than mutating; the session
	// handles the re-targeting, the dispatcher only reports it.
	if _, ok := resolved.(ResolvedLocation); ok {
		return ActionResult{Status: StatusInfo, Message: "Standort bleibt als Ziel ausgewählt."}
	}

	if actx.TargetLocationID == nil {
		return ActionResult{Status: StatusError, Message: "Bitte zuerst einen Standort auswählen."}
	}
	target := *actx.TargetLocationID

	switch res := resolved.(type) {
	case ResolvedEquipment:
		e := res.Equipment
		if e.CurrentLocationID != nil && *e.CurrentLocationID == target {
			return ActionResult{Status: StatusInfo, EntityType: "equipment", EntityID: e.ID,
				Message: fmt.Sprintf("%s ist bereits an diesem Standort.", e.Name)}
		}
		prev := e.CurrentLocationID
		if err := d.DB.WithContext(ctx).Model(&models.Equipment{}).Where("id = ?", e.ID).
			Update("current_location_id", target).Error; err != nil {
			return ActionResult{Status: StatusError, Message: storeError(err)}
		}
		return ActionResult{Status: StatusSuccess, EntityType: "equipment", EntityID: e.ID,
			Message: fmt.Sprintf("%s wurde an Standort %s verschoben.", e.Name, actx.TargetLocationName),
			Undo: &UndoRecord{EntityType: "equipment", EntityID: e.ID, PreviousLocationID: prev,
				NewLocationID: actx.TargetLocationID, NewLocationName: actx.TargetLocationName}}

	case ResolvedCase:
		c := res.Case
		if c.CaseEquipmentID == nil {
			return ActionResult{Status: StatusError, EntityType: "case", EntityID: c.ID,
				Message: "Case hat kein Case-Equipment und kann keinem Standort zugewiesen werden."}
		}
		var carrier models.Equipment
		if err := d.DB.WithContext(ctx).First(&carrier, *c.CaseEquipmentID).Error; err != nil {
			return ActionResult{Status: StatusError, Message: storeError(err)}
		}
		if carrier.CurrentLocationID != nil && *carrier.CurrentLocationID == target {
			return ActionResult{Status: StatusInfo, EntityType: "case", EntityID: c.ID,
				Message: fmt.Sprintf("%s ist bereits an diesem Standort.", c.Name)}
		}
		prev := carrier.CurrentLocationID
		if err := d.DB.WithContext(ctx).Model(&models.Equipment{}).Where("id = ?", carrier.ID).
			Update("current_location_id", target).Error; err != nil {
			return ActionResult{Status: StatusError, Message: storeError(err)}
		}
		return ActionResult{Status: StatusSuccess, EntityType: "case", EntityID: c.ID,
			Message: fmt.Sprintf("%s wurde an Standort %s verschoben.", c.Name, actx.TargetLocationName),
			Undo: &UndoRecord{EntityType: "case", EntityID: c.ID, CarrierEquipmentID: &carrier.ID,
				PreviousLocationID: prev, NewLocationID: actx.TargetLocationID,
				NewLocationName: actx.TargetLocationName}}

	case ResolvedArticle:
		a := res.Article
		if a.DefaultLocationID != nil && *a.DefaultLocationID == target {
			return ActionResult{Status: StatusInfo, EntityType: "article", EntityID: a.ID,
				Message: fmt.Sprintf("%s ist bereits an diesem Standort.", a.Name)}
		}
		prev := a.DefaultLocationID
		if err := d.DB.WithContext(ctx).Model(&models.Article{}).Where("id = ?", a.ID).
			Update("default_location_id", target).Error; err != nil {
			return ActionResult{Status: StatusError, Message: storeError(err)}
		}
		return ActionResult{Status: StatusSuccess, EntityType: "article", EntityID: a.ID,
			Message: fmt.Sprintf("%s wurde an Standort %s verschoben.", a.Name, actx.TargetLocationName),
			Undo: &UndoRecord{EntityType: "article", EntityID: a.ID, PreviousLocationID: prev,
				NewLocationID: actx.TargetLocationID, NewLocationName: actx.TargetLocationName}}
	}

	return ActionResult{Status: StatusError, Message: "Kein Asset-Tag gefunden."}
}

func (d *Dispatcher) linkJob(ctx context.Context, resolved Resolved, actx ActionContext, packed bool) ActionResult {
	if actx.JobID == nil || actx.JobCompanyID == nil {
		return ActionResult{Status: StatusError, Message: "Kein Auftrag ausgewählt."}
	}

	companyID := ResolvedCompanyID(resolved)
	if companyID == nil || *companyID != *actx.JobCompanyID {
		return ActionResult{Status: StatusError, Message: "Objekt gehört zu einer anderen Firma."}
	}

	var equipmentID, caseID *uint
	var entityType, name string
	var entityID uint

	switch res := resolved.(type) {
	case ResolvedEquipment:
		equipmentID, entityType, entityID, name = &res.Equipment.ID, "equipment", res.Equipment.ID, res.Equipment.Name
	case ResolvedCase:
		caseID, entityType, entityID, name = &res.Case.ID, "case", res.Case.ID, res.Case.Name
	default:
		return ActionResult{Status: StatusError, Message: "Nur Equipment oder Cases können mit Aufträgen verknüpft werden."}
	}

	query := d.DB.WithContext(ctx).Where("job_id = ?", *actx.JobID)
	if equipmentID != nil {
		query = query.Where("equipment_id = ?", *equipmentID)
	} else {
		query = query.Where("case_id = ?", *caseID)
	}

	// Existence check before insert is the idempotency boundary: re-scanning
	// the same code for the same job is a safe no-op.
	var count int64
	if packed {
		query = query.Model(&models.JobPackedItem{})
	} else {
		query = query.Model(&models.JobBookedItem{})
	}
	if err := query.Count(&count).Error; err != nil {
		return ActionResult{Status: StatusError, Message: storeError(err)}
	}
	if count > 0 {
		verb := "gebucht"
		if packed {
			verb = "gepackt"
		}
		return ActionResult{Status: StatusInfo, EntityType: entityType, EntityID: entityID,
			Message: fmt.Sprintf("%s ist bereits für diesen Auftrag %s.", name, verb)}
	}

	var err error
	if packed {
		err = d.DB.WithContext(ctx).Create(&models.JobPackedItem{
			CompanyID: *actx.JobCompanyID, JobID: *actx.JobID,
			EquipmentID: equipmentID, CaseID: caseID,
		}).Error
	} else {
		err = d.DB.WithContext(ctx).Create(&models.JobBookedItem{
			CompanyID: *actx.JobCompanyID, JobID: *actx.JobID,
			EquipmentID: equipmentID, CaseID: caseID,
		}).Error
	}
	if err != nil {
		return ActionResult{Status: StatusError, Message: storeError(err)}
	}

	verb := "gebucht"
	if packed {
		verb = "gepackt"
	}
	return ActionResult{Status: StatusSuccess, EntityType: entityType, EntityID: entityID,
		Message: fmt.Sprintf("%s wurde für Auftrag %s %s.", name, actx.JobName, verb)}
}

// PackIntoCase places the scanned equipment inside the container case:
// appends it to the case contents and clears its standalone location. The
// equipment is "inside" the container afterwards, not "at" a location.
func (d *Dispatcher) PackIntoCase(ctx context.Context, res ResolvedEquipment, container models.Case) ActionResult {
	if container.CompanyID == nil || res.CompanyID != *container.CompanyID {
		return ActionResult{Status: StatusError, Message: "Objekt gehört zu einer anderen Firma."}
	}

	// Re-read the container so membership reflects the latest state.
	var c models.Case
	if err := d.DB.WithContext(ctx).First(&c, container.ID).Error; err != nil {
		return ActionResult{Status: StatusError, Message: storeError(err)}
	}

	e := res.Equipment
	for _, id := range c.Contents {
		if id == e.ID {
			// A member must not also sit at a location; finish the clear if a
			// previous pack stopped halfway.
			if e.CurrentLocationID != nil {
				if err := d.DB.WithContext(ctx).Model(&models.Equipment{}).Where("id = ?", e.ID).
					Update("current_location_id", nil).Error; err != nil {
					return ActionResult{Status: StatusError, Message: storeError(err)}
				}
			}
			return ActionResult{Status: StatusInfo, EntityType: "equipment", EntityID: e.ID,
				Message: fmt.Sprintf("%s ist bereits in diesem Case.", e.Name)}
		}
	}

	// Clear the location before recording membership. If the membership write
	// fails the equipment is merely unplaced and a retry packs it again.
	prev := e.CurrentLocationID
	if err := d.DB.WithContext(ctx).Model(&models.Equipment{}).Where("id = ?", e.ID).
		Update("current_location_id", nil).Error; err != nil {
		return ActionResult{Status: StatusError, Message: storeError(err)}
	}

	contents := append(c.Contents, e.ID)
	if err := d.DB.WithContext(ctx).Model(&models.Case{}).Where("id = ?", c.ID).
		Update("contents", contents).Error; err != nil {
		return ActionResult{Status: StatusError, Message: storeError(err)}
	}

	return ActionResult{Status: StatusSuccess, EntityType: "equipment", EntityID: e.ID,
		Message: fmt.Sprintf("%s wurde in Case %s gepackt.", e.Name, c.Name),
		Undo: &UndoRecord{EntityType: "equipment", EntityID: e.ID, PreviousLocationID: prev,
			ContainerID: &c.ID, NewLocationName: c.Name}}
}

func storeError(err error) string {
	if err == nil || err.Error() == "" {
		return "Aktion fehlgeschlagen."
	}
	return err.Error()
}
