package scanner

import (
	"context"
	"errors"
	"strings"

	"asset-app/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Resolver maps a scanned code to the carrier entity its asset tag is attached
// to. Resolution is read-only.
type Resolver struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewResolver(db *gorm.DB, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{DB: db, Log: log}
}

// Resolve looks up the asset tag by its exact printed code, then queries the
// four carrier tables concurrently and returns the first match in fixed
// priority order: Equipment > Case > Article > Location.
func (r *Resolver) Resolve(ctx context.Context, code string) Resolved {
	code = strings.TrimSpace(code)
	if code == "" {
		return ResolvedNotFound{Code: code, Reason: ReasonTagMissing}
	}

	var tag models.AssetTag
	if err := r.DB.WithContext(ctx).Where("printed_code = ?", code).First(&tag).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.Log.Warn("asset tag lookup failed, treating as not found",
				zap.String("code", code), zap.Error(err))
		}
		return ResolvedNotFound{Code: code, Reason: ReasonTagMissing}
	}

	var (
		equipment *models.Equipment
		caseRow   *models.Case
		article   *models.Article
		location  *models.Location
	)

	// The four carrier lookups are independent, run them concurrently.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var row models.Equipment
		if r.findCarrier(gctx, &row, "equipment", tag.ID) {
			equipment = &row
		}
		return nil
	})
	g.Go(func() error {
		var row models.Case
		if r.findCarrier(gctx, &row, "case", tag.ID) {
			caseRow = &row
		}
		return nil
	})
	g.Go(func() error {
		var row models.Article
		if r.findCarrier(gctx, &row, "article", tag.ID) {
			article = &row
		}
		return nil
	})
	g.Go(func() error {
		var row models.Location
		if r.findCarrier(gctx, &row, "location", tag.ID) {
			location = &row
		}
		return nil
	})
	_ = g.Wait()

	switch {
	case equipment != nil:
		companyID, ok := r.carrierCompany(equipment.CompanyID, tag, "equipment", equipment.ID)
		if !ok {
			return ResolvedAssetTag{CompanyID: tag.CompanyID, AssetTagID: tag.ID, Code: code, Tag: tag}
		}
		return ResolvedEquipment{CompanyID: companyID, AssetTagID: tag.ID, Code: code, Equipment: *equipment}
	case caseRow != nil:
		companyID, ok := r.carrierCompany(caseRow.CompanyID, tag, "case", caseRow.ID)
		if !ok {
			return ResolvedAssetTag{CompanyID: tag.CompanyID, AssetTagID: tag.ID, Code: code, Tag: tag}
		}
		return ResolvedCase{CompanyID: companyID, AssetTagID: tag.ID, Code: code, Case: *caseRow}
	case article != nil:
		companyID, ok := r.carrierCompany(article.CompanyID, tag, "article", article.ID)
		if !ok {
			return ResolvedAssetTag{CompanyID: tag.CompanyID, AssetTagID: tag.ID, Code: code, Tag: tag}
		}
		return ResolvedArticle{CompanyID: companyID, AssetTagID: tag.ID, Code: code, Article: *article}
	case location != nil:
		companyID, ok := r.carrierCompany(location.CompanyID, tag, "location", location.ID)
		if !ok {
			return ResolvedAssetTag{CompanyID: tag.CompanyID, AssetTagID: tag.ID, Code: code, Tag: tag}
		}
		return ResolvedLocation{CompanyID: companyID, AssetTagID: tag.ID, Code: code, Location: *location}
	}

	// Tag exists but is unassigned.
	return ResolvedAssetTag{CompanyID: tag.CompanyID, AssetTagID: tag.ID, Code: code, Tag: tag}
}

// findCarrier loads the single carrier row referencing the tag. A query error
// is treated the same as "no row"; the resolver favors availability over
// surfacing partial backend errors.
func (r *Resolver) findCarrier(ctx context.Context, dest interface{}, kind string, tagID uint) bool {
	err := r.DB.WithContext(ctx).Where("asset_tag_id = ?", tagID).First(dest).Error
	if err == nil {
		return true
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		r.Log.Warn("carrier lookup failed, treating as no match",
			zap.String("carrier", kind), zap.Uint("asset_tag_id", tagID), zap.Error(err))
	}
	return false
}

// carrierCompany settles the company a resolved carrier belongs to, falling
// back to the tag's company when the carrier has none. A carrier that ends up
// without any company degrades to the unassigned-tag variant.
func (r *Resolver) carrierCompany(carrierCompany *uint, tag models.AssetTag, kind string, carrierID uint) (uint, bool) {
	if carrierCompany != nil {
		return *carrierCompany, true
	}
	if tag.CompanyID != nil {
		r.Log.Warn("carrier has no company, falling back to tag company",
			zap.String("carrier", kind), zap.Uint("carrier_id", carrierID),
			zap.Uint("asset_tag_id", tag.ID), zap.Uint("company_id", *tag.CompanyID))
		return *tag.CompanyID, true
	}
	r.Log.Warn("carrier resolved without any company",
		zap.String("carrier", kind), zap.Uint("carrier_id", carrierID),
		zap.Uint("asset_tag_id", tag.ID))
	return 0, false
}
