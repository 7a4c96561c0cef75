package scanner

import (
	"context"
	"fmt"

	"asset-app/models"

	"gorm.io/gorm"
)

// UndoAssignment reverses a recorded location or container assignment by
// restoring the previous state.
func (d *Dispatcher) UndoAssignment(ctx context.Context, rec UndoRecord) ActionResult {
	if rec.ContainerID != nil {
		return d.undoContainerPack(ctx, rec)
	}

	switch rec.EntityType {
	case "equipment":
		if err := d.DB.WithContext(ctx).Model(&models.Equipment{}).Where("id = ?", rec.EntityID).
			Update("current_location_id", locationValue(rec.PreviousLocationID)).Error; err != nil {
			return ActionResult{Status: StatusError, Message: storeError(err)}
		}
	case "case":
		if rec.CarrierEquipmentID == nil {
			return ActionResult{Status: StatusError, Message: "Case hat kein Case-Equipment und kann keinem Standort zugewiesen werden."}
		}
		if err := d.DB.WithContext(ctx).Model(&models.Equipment{}).Where("id = ?", *rec.CarrierEquipmentID).
			Update("current_location_id", locationValue(rec.PreviousLocationID)).Error; err != nil {
			return ActionResult{Status: StatusError, Message: storeError(err)}
		}
	case "article":
		if err := d.DB.WithContext(ctx).Model(&models.Article{}).Where("id = ?", rec.EntityID).
			Update("default_location_id", locationValue(rec.PreviousLocationID)).Error; err != nil {
			return ActionResult{Status: StatusError, Message: storeError(err)}
		}
	default:
		return ActionResult{Status: StatusError, Message: fmt.Sprintf("Unbekannter Objekttyp: %s", rec.EntityType)}
	}

	return ActionResult{Status: StatusSuccess, EntityType: rec.EntityType, EntityID: rec.EntityID,
		Message: "Zuweisung wurde rückgängig gemacht."}
}

// undoContainerPack removes the equipment from the container's membership
// list, then restores its previous standalone location.
func (d *Dispatcher) undoContainerPack(ctx context.Context, rec UndoRecord) ActionResult {
	var c models.Case
	if err := d.DB.WithContext(ctx).First(&c, *rec.ContainerID).Error; err != nil {
		return ActionResult{Status: StatusError, Message: storeError(err)}
	}

	contents := c.Contents[:0:0]
	for _, id := range c.Contents {
		if id != rec.EntityID {
			contents = append(contents, id)
		}
	}
	if err := d.DB.WithContext(ctx).Model(&models.Case{}).Where("id = ?", c.ID).
		Update("contents", contents).Error; err != nil {
		return ActionResult{Status: StatusError, Message: storeError(err)}
	}

	if err := d.DB.WithContext(ctx).Model(&models.Equipment{}).Where("id = ?", rec.EntityID).
		Update("current_location_id", locationValue(rec.PreviousLocationID)).Error; err != nil {
		return ActionResult{Status: StatusError, Message: storeError(err)}
	}

	return ActionResult{Status: StatusSuccess, EntityType: "equipment", EntityID: rec.EntityID,
		Message: "Equipment wurde aus dem Case entfernt."}
}

// locationValue maps a nil previous location to a SQL NULL update value.
func locationValue(id *uint) interface{} {
	if id == nil {
		return gorm.Expr("NULL")
	}
	return *id
}
