package scanner

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"asset-app/models"

	"gorm.io/gorm"
)

// fakeClock drives the session's cooldown without sleeping.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestSession(t *testing.T, db *gorm.DB, companyID uint, mode Mode) (*Session, *fakeClock) {
	t.Helper()
	s := NewSession(db, nil, companyID, mode)
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	s.now = clock.now
	return s, clock
}

func TestSessionAssignFlow(t *testing.T) {
	db := testDB(t)
	loc := createLocation(t, db, uintPtr(3), nil, "Warehouse")
	tag := createTag(t, db, uintPtr(3), "EQP-0042")
	e := createEquipment(t, db, uintPtr(3), &tag.ID, "Kamera", nil)

	s, clock := newTestSession(t, db, 3, ModeAssignLocation)
	if err := s.SetTargetLocation(loc); err != nil {
		t.Fatalf("SetTargetLocation: %v", err)
	}

	entry := s.SubmitScan(context.Background(), "EQP-0042")
	if entry == nil {
		t.Fatal("scan was discarded")
	}
	if entry.Status != StatusSuccess {
		t.Fatalf("Status = %q (%s), want success", entry.Status, entry.Message)
	}
	if entry.EntityType != "equipment" || entry.EntityID != e.ID {
		t.Errorf("entity = %s/%d, want equipment/%d", entry.EntityType, entry.EntityID, e.ID)
	}

	var stored models.Equipment
	db.First(&stored, e.ID)
	if stored.CurrentLocationID == nil || *stored.CurrentLocationID != loc.ID {
		t.Errorf("CurrentLocationID = %v, want %d", stored.CurrentLocationID, loc.ID)
	}
	if !s.UndoAvailable() {
		t.Error("undo slot should be populated after the assignment")
	}

	// Same code within the cooldown window: discarded before resolution.
	clock.advance(500 * time.Millisecond)
	if again := s.SubmitScan(context.Background(), "EQP-0042"); again != nil {
		t.Fatalf("scan within cooldown not discarded: %+v", again)
	}

	// Past the window the scan dispatches again, now a no-op.
	clock.advance(1200 * time.Millisecond)
	repeat := s.SubmitScan(context.Background(), "EQP-0042")
	if repeat == nil {
		t.Fatal("scan after cooldown was discarded")
	}
	if repeat.Status != StatusInfo {
		t.Errorf("repeat Status = %q, want info", repeat.Status)
	}
	if !strings.Contains(repeat.Message, "bereits an diesem Standort") {
		t.Errorf("repeat Message = %q", repeat.Message)
	}
}

func TestSessionCooldownDifferentCodes(t *testing.T) {
	db := testDB(t)
	tagA := createTag(t, db, uintPtr(3), "EQP-A")
	createEquipment(t, db, uintPtr(3), &tagA.ID, "Kamera A", nil)
	tagB := createTag(t, db, uintPtr(3), "EQP-B")
	createEquipment(t, db, uintPtr(3), &tagB.ID, "Kamera B", nil)

	s, clock := newTestSession(t, db, 3, ModeLookup)

	if entry := s.SubmitScan(context.Background(), "EQP-A"); entry == nil {
		t.Fatal("first scan discarded")
	}
	clock.advance(100 * time.Millisecond)
	// A different code is not subject to the same-code cooldown.
	if entry := s.SubmitScan(context.Background(), "EQP-B"); entry == nil {
		t.Fatal("different code within window discarded")
	}
}

func TestSessionCooldownTrimsCode(t *testing.T) {
	db := testDB(t)
	tag := createTag(t, db, uintPtr(3), "EQP-1")
	createEquipment(t, db, uintPtr(3), &tag.ID, "Kamera", nil)

	s, clock := newTestSession(t, db, 3, ModeLookup)

	if entry := s.SubmitScan(context.Background(), "EQP-1"); entry == nil {
		t.Fatal("first scan discarded")
	}
	clock.advance(100 * time.Millisecond)
	// Whitespace around the code must not defeat the same-code cooldown.
	if entry := s.SubmitScan(context.Background(), "  EQP-1 "); entry != nil {
		t.Fatalf("padded repeat within cooldown not discarded: %+v", entry)
	}
}

func TestSessionSingleFlight(t *testing.T) {
	db := testDB(t)
	tag := createTag(t, db, uintPtr(3), "EQP-A")
	createEquipment(t, db, uintPtr(3), &tag.ID, "Kamera", nil)

	s, _ := newTestSession(t, db, 3, ModeLookup)
	s.processing = true

	if entry := s.SubmitScan(context.Background(), "EQP-A"); entry != nil {
		t.Fatalf("scan accepted while another action is in flight: %+v", entry)
	}
}

func TestSessionLocationScanRetargets(t *testing.T) {
	db := testDB(t)
	locTag := createTag(t, db, uintPtr(3), "LOC-1")
	loc := createLocation(t, db, uintPtr(3), &locTag.ID, "Lager")
	eqTag := createTag(t, db, uintPtr(3), "EQP-1")
	e := createEquipment(t, db, uintPtr(3), &eqTag.ID, "Kamera", nil)

	s, clock := newTestSession(t, db, 3, ModeAssignLocation)

	entry := s.SubmitScan(context.Background(), "LOC-1")
	if entry == nil || entry.Status != StatusSuccess {
		t.Fatalf("location scan = %+v, want success", entry)
	}
	if entry.EntityType != "location" || entry.EntityID != loc.ID {
		t.Errorf("entity = %s/%d, want location/%d", entry.EntityType, entry.EntityID, loc.ID)
	}

	clock.advance(2 * time.Second)
	assign := s.SubmitScan(context.Background(), "EQP-1")
	if assign == nil || assign.Status != StatusSuccess {
		t.Fatalf("equipment scan = %+v, want success", assign)
	}

	var stored models.Equipment
	db.First(&stored, e.ID)
	if stored.CurrentLocationID == nil || *stored.CurrentLocationID != loc.ID {
		t.Errorf("CurrentLocationID = %v, want %d", stored.CurrentLocationID, loc.ID)
	}
}

func TestSessionContainerPacking(t *testing.T) {
	db := testDB(t)
	loc := createLocation(t, db, uintPtr(3), nil, "Lager")
	caseTag := createTag(t, db, uintPtr(3), "CASE-1")
	container := createCase(t, db, uintPtr(3), &caseTag.ID, "Koffer", nil)
	eqTag := createTag(t, db, uintPtr(3), "EQP-1")
	e := createEquipment(t, db, uintPtr(3), &eqTag.ID, "Kamera", &loc.ID)

	s, clock := newTestSession(t, db, 3, ModeAssignLocation)

	// Scanning a case with no target selects it as the container.
	entry := s.SubmitScan(context.Background(), "CASE-1")
	if entry == nil || entry.Status != StatusSuccess {
		t.Fatalf("case scan = %+v, want success", entry)
	}
	if !strings.Contains(entry.Message, "Ziel-Container") {
		t.Errorf("Message = %q", entry.Message)
	}

	clock.advance(2 * time.Second)
	pack := s.SubmitScan(context.Background(), "EQP-1")
	if pack == nil || pack.Status != StatusSuccess {
		t.Fatalf("pack scan = %+v, want success", pack)
	}

	var storedCase models.Case
	db.First(&storedCase, container.ID)
	if len(storedCase.Contents) != 1 || storedCase.Contents[0] != e.ID {
		t.Errorf("Contents = %v, want [%d]", storedCase.Contents, e.ID)
	}

	var storedEquipment models.Equipment
	db.First(&storedEquipment, e.ID)
	if storedEquipment.CurrentLocationID != nil {
		t.Errorf("CurrentLocationID = %v, want nil inside container", storedEquipment.CurrentLocationID)
	}

	// Second scan of the same equipment: membership unchanged.
	clock.advance(2 * time.Second)
	repeat := s.SubmitScan(context.Background(), "EQP-1")
	if repeat == nil || repeat.Status != StatusInfo {
		t.Fatalf("repeat = %+v, want info", repeat)
	}
	db.First(&storedCase, container.ID)
	if len(storedCase.Contents) != 1 {
		t.Errorf("Contents = %v, want unchanged membership", storedCase.Contents)
	}
}

func TestSessionTargetsMutuallyExclusive(t *testing.T) {
	db := testDB(t)
	loc := createLocation(t, db, uintPtr(3), nil, "Lager")
	caseTag := createTag(t, db, uintPtr(3), "CASE-1")
	createCase(t, db, uintPtr(3), &caseTag.ID, "Koffer", nil)

	s, clock := newTestSession(t, db, 3, ModeAssignLocation)

	if entry := s.SubmitScan(context.Background(), "CASE-1"); entry == nil || entry.Status != StatusSuccess {
		t.Fatalf("case scan = %+v, want success", entry)
	}
	if s.targetCase == nil {
		t.Fatal("container target not set")
	}

	clock.advance(2 * time.Second)
	if err := s.SetTargetLocation(loc); err != nil {
		t.Fatalf("SetTargetLocation: %v", err)
	}
	if s.targetCase != nil {
		t.Error("location target must clear the container target")
	}
}

func TestSessionCrossCompanyAssignment(t *testing.T) {
	db := testDB(t)
	loc := createLocation(t, db, uintPtr(3), nil, "Lager")
	tag := createTag(t, db, uintPtr(2), "EQP-FREMD")
	e := createEquipment(t, db, uintPtr(2), &tag.ID, "Fremde Kamera", nil)

	s, _ := newTestSession(t, db, 3, ModeAssignLocation)
	if err := s.SetTargetLocation(loc); err != nil {
		t.Fatalf("SetTargetLocation: %v", err)
	}

	entry := s.SubmitScan(context.Background(), "EQP-FREMD")
	if entry == nil || entry.Status != StatusError {
		t.Fatalf("entry = %+v, want cross-company error", entry)
	}

	var stored models.Equipment
	db.First(&stored, e.ID)
	if stored.CurrentLocationID != nil {
		t.Error("cross-company scan must not mutate the entity")
	}
}

func TestSessionJobPackFlow(t *testing.T) {
	db := testDB(t)
	job := createJob(t, db, 3, "Messe")
	tag := createTag(t, db, uintPtr(3), "EQP-1")
	e := createEquipment(t, db, uintPtr(3), &tag.ID, "Kamera", nil)

	s, clock := newTestSession(t, db, 3, ModeJobPack)
	if err := s.SetTargetJob(job); err != nil {
		t.Fatalf("SetTargetJob: %v", err)
	}

	entry := s.SubmitScan(context.Background(), "EQP-1")
	if entry == nil || entry.Status != StatusSuccess {
		t.Fatalf("entry = %+v, want success", entry)
	}

	clock.advance(2 * time.Second)
	repeat := s.SubmitScan(context.Background(), "EQP-1")
	if repeat == nil || repeat.Status != StatusInfo {
		t.Fatalf("repeat = %+v, want info", repeat)
	}

	var count int64
	db.Model(&models.JobPackedItem{}).Where("job_id = ? AND equipment_id = ?", job.ID, e.ID).Count(&count)
	if count != 1 {
		t.Errorf("packed rows = %d, want exactly 1", count)
	}
}

func TestSessionUndo(t *testing.T) {
	db := testDB(t)
	l0 := createLocation(t, db, uintPtr(3), nil, "Alt")
	l1 := createLocation(t, db, uintPtr(3), nil, "Neu")
	tag := createTag(t, db, uintPtr(3), "EQP-1")
	e := createEquipment(t, db, uintPtr(3), &tag.ID, "Kamera", &l0.ID)

	s, _ := newTestSession(t, db, 3, ModeAssignLocation)
	if err := s.SetTargetLocation(l1); err != nil {
		t.Fatalf("SetTargetLocation: %v", err)
	}

	if entry := s.SubmitScan(context.Background(), "EQP-1"); entry == nil || entry.Status != StatusSuccess {
		t.Fatalf("entry = %+v, want success", entry)
	}
	if !s.UndoAvailable() {
		t.Fatal("undo slot empty after assignment")
	}

	undo := s.SubmitUndo(context.Background())
	if undo == nil || undo.Status != StatusSuccess {
		t.Fatalf("undo = %+v, want success", undo)
	}
	if s.UndoAvailable() {
		t.Error("undo slot must be cleared after running")
	}

	var stored models.Equipment
	db.First(&stored, e.ID)
	if stored.CurrentLocationID == nil || *stored.CurrentLocationID != l0.ID {
		t.Errorf("CurrentLocationID = %v, want restored %d", stored.CurrentLocationID, l0.ID)
	}

	// Nothing left to undo.
	again := s.SubmitUndo(context.Background())
	if again == nil || again.Status != StatusInfo {
		t.Fatalf("second undo = %+v, want info", again)
	}
}

func TestSessionModeSwitchClearsTargets(t *testing.T) {
	db := testDB(t)
	loc := createLocation(t, db, uintPtr(3), nil, "Lager")

	s, _ := newTestSession(t, db, 3, ModeAssignLocation)
	if err := s.SetTargetLocation(loc); err != nil {
		t.Fatalf("SetTargetLocation: %v", err)
	}

	if err := s.SetMode(ModeJobBook); err != nil {
		t.Fatalf("SetMode: %v", err)
	}
	if s.targetLocation != nil || s.targetCase != nil || s.targetJob != nil {
		t.Error("mode switch must clear all targets")
	}

	if err := s.SetMode("bogus"); err == nil {
		t.Error("invalid mode accepted")
	}
}

func TestSessionFeedCap(t *testing.T) {
	s, _ := newTestSession(t, testDB(t), 3, ModeLookup)

	for i := 0; i < FeedLimit+10; i++ {
		s.mu.Lock()
		s.pushFeedLocked(FeedEntry{Status: StatusInfo, Message: fmt.Sprintf("entry %d", i)})
		s.mu.Unlock()
	}

	feed := s.Feed()
	if len(feed) != FeedLimit {
		t.Fatalf("feed length = %d, want cap %d", len(feed), FeedLimit)
	}
	// Newest first.
	if feed[0].Message != fmt.Sprintf("entry %d", FeedLimit+9) {
		t.Errorf("feed[0] = %q, want the newest entry", feed[0].Message)
	}
}

func TestSessionCloseClearsState(t *testing.T) {
	db := testDB(t)
	tag := createTag(t, db, uintPtr(3), "EQP-1")
	createEquipment(t, db, uintPtr(3), &tag.ID, "Kamera", nil)

	s, _ := newTestSession(t, db, 3, ModeLookup)
	if entry := s.SubmitScan(context.Background(), "EQP-1"); entry == nil {
		t.Fatal("scan discarded")
	}

	s.Close()
	if s.undo != nil || s.processing || s.lastCode != "" || len(s.feed) != 0 {
		t.Error("close must clear cooldown, in-flight flag, undo slot and feed")
	}
	if entry := s.SubmitScan(context.Background(), "EQP-1"); entry != nil {
		t.Errorf("scan accepted on closed session: %+v", entry)
	}
}

func TestManagerReplacesSession(t *testing.T) {
	db := testDB(t)
	m := NewManager(db, nil)

	first := m.Open("sess-1", 3, ModeLookup)
	second := m.Open("sess-1", 3, ModeAssignLocation)

	if first == second {
		t.Fatal("Open must replace the previous session")
	}
	if !first.closed {
		t.Error("replaced session must be closed")
	}
	if got := m.Get("sess-1"); got != second {
		t.Error("Get returns the stale session")
	}

	m.Close("sess-1")
	if m.Get("sess-1") != nil {
		t.Error("session still registered after Close")
	}
}
