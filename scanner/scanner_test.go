package scanner

import (
	"testing"

	"asset-app/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.AssetTag{},
		&models.Equipment{},
		&models.Case{},
		&models.Article{},
		&models.Location{},
		&models.Job{},
		&models.JobBookedItem{},
		&models.JobPackedItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func uintPtr(v uint) *uint {
	return &v
}

func createTag(t *testing.T, db *gorm.DB, companyID *uint, code string) models.AssetTag {
	t.Helper()
	tag := models.AssetTag{CompanyID: companyID, PrintedCode: code}
	if err := db.Create(&tag).Error; err != nil {
		t.Fatalf("create tag %s: %v", code, err)
	}
	return tag
}

func createEquipment(t *testing.T, db *gorm.DB, companyID *uint, tagID *uint, name string, locationID *uint) models.Equipment {
	t.Helper()
	e := models.Equipment{CompanyID: companyID, AssetTagID: tagID, Name: name, CurrentLocationID: locationID}
	if err := db.Create(&e).Error; err != nil {
		t.Fatalf("create equipment %s: %v", name, err)
	}
	return e
}

func createCase(t *testing.T, db *gorm.DB, companyID *uint, tagID *uint, name string, caseEquipmentID *uint) models.Case {
	t.Helper()
	c := models.Case{CompanyID: companyID, AssetTagID: tagID, Name: name, CaseEquipmentID: caseEquipmentID}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("create case %s: %v", name, err)
	}
	return c
}

func createArticle(t *testing.T, db *gorm.DB, companyID *uint, tagID *uint, name string, locationID *uint) models.Article {
	t.Helper()
	a := models.Article{CompanyID: companyID, AssetTagID: tagID, Name: name, DefaultLocationID: locationID}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("create article %s: %v", name, err)
	}
	return a
}

func createLocation(t *testing.T, db *gorm.DB, companyID *uint, tagID *uint, name string) models.Location {
	t.Helper()
	l := models.Location{CompanyID: companyID, AssetTagID: tagID, Name: name, IsActive: true}
	if err := db.Create(&l).Error; err != nil {
		t.Fatalf("create location %s: %v", name, err)
	}
	return l
}

func createJob(t *testing.T, db *gorm.DB, companyID uint, name string) models.Job {
	t.Helper()
	j := models.Job{CompanyID: companyID, Name: name}
	if err := db.Create(&j).Error; err != nil {
		t.Fatalf("create job %s: %v", name, err)
	}
	return j
}
