package scanner

import (
	"context"
	"testing"
)

func TestResolveEmptyCode(t *testing.T) {
	r := NewResolver(testDB(t), nil)

	res := r.Resolve(context.Background(), "   ")
	nf, ok := res.(ResolvedNotFound)
	if !ok {
		t.Fatalf("Resolve = %T, want ResolvedNotFound", res)
	}
	if nf.Reason != ReasonTagMissing {
		t.Errorf("Reason = %q, want %q", nf.Reason, ReasonTagMissing)
	}
}

func TestResolveUnknownCode(t *testing.T) {
	r := NewResolver(testDB(t), nil)

	res := r.Resolve(context.Background(), "NOPE-123")
	if _, ok := res.(ResolvedNotFound); !ok {
		t.Fatalf("Resolve = %T, want ResolvedNotFound", res)
	}
}

func TestResolveUnassignedTag(t *testing.T) {
	db := testDB(t)
	tag := createTag(t, db, uintPtr(3), "TAG-FREE")
	r := NewResolver(db, nil)

	res := r.Resolve(context.Background(), "TAG-FREE")
	at, ok := res.(ResolvedAssetTag)
	if !ok {
		t.Fatalf("Resolve = %T, want ResolvedAssetTag", res)
	}
	if at.AssetTagID != tag.ID {
		t.Errorf("AssetTagID = %d, want %d", at.AssetTagID, tag.ID)
	}
	if at.CompanyID == nil || *at.CompanyID != 3 {
		t.Errorf("CompanyID = %v, want 3", at.CompanyID)
	}
}

func TestResolveEquipment(t *testing.T) {
	db := testDB(t)
	tag := createTag(t, db, uintPtr(3), "EQP-0042")
	e := createEquipment(t, db, uintPtr(3), &tag.ID, "Kamera", nil)
	r := NewResolver(db, nil)

	res := r.Resolve(context.Background(), "EQP-0042")
	re, ok := res.(ResolvedEquipment)
	if !ok {
		t.Fatalf("Resolve = %T, want ResolvedEquipment", res)
	}
	if re.Equipment.ID != e.ID {
		t.Errorf("Equipment.ID = %d, want %d", re.Equipment.ID, e.ID)
	}
	if re.CompanyID != 3 {
		t.Errorf("CompanyID = %d, want 3", re.CompanyID)
	}
	if re.Code != "EQP-0042" {
		t.Errorf("Code = %q, want EQP-0042", re.Code)
	}
}

func TestResolveTrimsWhitespace(t *testing.T) {
	db := testDB(t)
	tag := createTag(t, db, uintPtr(3), "EQP-0042")
	createEquipment(t, db, uintPtr(3), &tag.ID, "Kamera", nil)
	r := NewResolver(db, nil)

	res := r.Resolve(context.Background(), "  EQP-0042\n")
	if _, ok := res.(ResolvedEquipment); !ok {
		t.Fatalf("Resolve = %T, want ResolvedEquipment", res)
	}
}

func TestResolvePriorityEquipmentOverCase(t *testing.T) {
	db := testDB(t)
	tag := createTag(t, db, uintPtr(3), "DUP-1")
	// Data integrity violation: equipment and case both reference the tag.
	e := createEquipment(t, db, uintPtr(3), &tag.ID, "Kamera", nil)
	createCase(t, db, uintPtr(3), &tag.ID, "Koffer", nil)
	r := NewResolver(db, nil)

	res := r.Resolve(context.Background(), "DUP-1")
	re, ok := res.(ResolvedEquipment)
	if !ok {
		t.Fatalf("Resolve = %T, want ResolvedEquipment (priority order)", res)
	}
	if re.Equipment.ID != e.ID {
		t.Errorf("Equipment.ID = %d, want %d", re.Equipment.ID, e.ID)
	}
}

func TestResolvePriorityCaseOverArticle(t *testing.T) {
	db := testDB(t)
	tag := createTag(t, db, uintPtr(3), "DUP-2")
	createCase(t, db, uintPtr(3), &tag.ID, "Koffer", nil)
	createArticle(t, db, uintPtr(3), &tag.ID, "Kabel", nil)
	r := NewResolver(db, nil)

	res := r.Resolve(context.Background(), "DUP-2")
	if _, ok := res.(ResolvedCase); !ok {
		t.Fatalf("Resolve = %T, want ResolvedCase (priority order)", res)
	}
}

func TestResolveDeterministic(t *testing.T) {
	db := testDB(t)
	tag := createTag(t, db, uintPtr(3), "EQP-1")
	e := createEquipment(t, db, uintPtr(3), &tag.ID, "Kamera", nil)
	r := NewResolver(db, nil)

	first := r.Resolve(context.Background(), "EQP-1")
	second := r.Resolve(context.Background(), "EQP-1")

	fe, ok := first.(ResolvedEquipment)
	if !ok {
		t.Fatalf("first Resolve = %T, want ResolvedEquipment", first)
	}
	se, ok := second.(ResolvedEquipment)
	if !ok {
		t.Fatalf("second Resolve = %T, want ResolvedEquipment", second)
	}
	if fe.Equipment.ID != e.ID || se.Equipment.ID != e.ID {
		t.Errorf("ids differ: %d, %d, want %d", fe.Equipment.ID, se.Equipment.ID, e.ID)
	}
}

func TestResolveArticleAndLocation(t *testing.T) {
	db := testDB(t)
	articleTag := createTag(t, db, uintPtr(3), "ART-1")
	createArticle(t, db, uintPtr(3), &articleTag.ID, "Kabel", nil)
	locationTag := createTag(t, db, uintPtr(3), "LOC-1")
	createLocation(t, db, uintPtr(3), &locationTag.ID, "Lager")
	r := NewResolver(db, nil)

	if res := r.Resolve(context.Background(), "ART-1"); res != nil {
		if _, ok := res.(ResolvedArticle); !ok {
			t.Errorf("Resolve(ART-1) = %T, want ResolvedArticle", res)
		}
	}
	if res := r.Resolve(context.Background(), "LOC-1"); res != nil {
		if _, ok := res.(ResolvedLocation); !ok {
			t.Errorf("Resolve(LOC-1) = %T, want ResolvedLocation", res)
		}
	}
}

func TestResolveCompanyFallbackToTag(t *testing.T) {
	db := testDB(t)
	tag := createTag(t, db, uintPtr(7), "EQP-NOCOMP")
	createEquipment(t, db, nil, &tag.ID, "Kamera", nil)
	r := NewResolver(db, nil)

	res := r.Resolve(context.Background(), "EQP-NOCOMP")
	re, ok := res.(ResolvedEquipment)
	if !ok {
		t.Fatalf("Resolve = %T, want ResolvedEquipment", res)
	}
	if re.CompanyID != 7 {
		t.Errorf("CompanyID = %d, want tag fallback 7", re.CompanyID)
	}
}

func TestResolveCompanylessCarrierDegrades(t *testing.T) {
	db := testDB(t)
	tag := createTag(t, db, nil, "EQP-ORPHAN")
	createEquipment(t, db, nil, &tag.ID, "Kamera", nil)
	r := NewResolver(db, nil)

	res := r.Resolve(context.Background(), "EQP-ORPHAN")
	if _, ok := res.(ResolvedAssetTag); !ok {
		t.Fatalf("Resolve = %T, want ResolvedAssetTag (no company anywhere)", res)
	}
}
