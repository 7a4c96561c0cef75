package scanner

import (
	"asset-app/models"
)

// Mode is the action intent of a scanning session. Exactly one mode is active
// at a time; it is chosen before scanning starts.
type Mode string

const (
	ModeLookup         Mode = "lookup"
	ModeAssignLocation Mode = "assign-location"
	ModeJobBook        Mode = "job-book"
	ModeJobPack        Mode = "job-pack"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeLookup, ModeAssignLocation, ModeJobBook, ModeJobPack:
		return true
	}
	return false
}

// Status classifies an action outcome. Info means the action was a safe no-op
// (already booked, already at the location); it is distinct from Success so
// clients can tell "nothing changed" from "changed".
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusInfo    Status = "info"
)

// Reason for a not-found resolution.
const ReasonTagMissing = "asset-tag-missing"

// Resolved is the tagged result of a code lookup. The concrete type tells the
// dispatcher which carrier the scanned tag is attached to.
type Resolved interface {
	resolved()
}

type ResolvedEquipment struct {
	CompanyID  uint
	AssetTagID uint
	Code       string
	Equipment  models.Equipment
}

type ResolvedCase struct {
	CompanyID  uint
	AssetTagID uint
	Code       string
	Case       models.Case
}

type ResolvedArticle struct {
	CompanyID  uint
	AssetTagID uint
	Code       string
	Article    models.Article
}

type ResolvedLocation struct {
	CompanyID  uint
	AssetTagID uint
	Code       string
	Location   models.Location
}

// ResolvedAssetTag means the tag exists but no carrier references it.
type ResolvedAssetTag struct {
	CompanyID  *uint
	AssetTagID uint
	Code       string
	Tag        models.AssetTag
}

type ResolvedNotFound struct {
	Code   string
	Reason string
}

func (ResolvedEquipment) resolved() {}
func (ResolvedCase) resolved()      {}
func (ResolvedArticle) resolved()   {}
func (ResolvedLocation) resolved()  {}
func (ResolvedAssetTag) resolved()  {}
func (ResolvedNotFound) resolved()  {}

// ResolvedCompanyID returns the carrier's company id, or nil for the variants
// that have none.
func ResolvedCompanyID(r Resolved) *uint {
	switch res := r.(type) {
	case ResolvedEquipment:
		return &res.CompanyID
	case ResolvedCase:
		return &res.CompanyID
	case ResolvedArticle:
		return &res.CompanyID
	case ResolvedLocation:
		return &res.CompanyID
	case ResolvedAssetTag:
		return res.CompanyID
	}
	return nil
}
