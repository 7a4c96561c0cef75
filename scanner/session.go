package scanner

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"asset-app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// CooldownWindow suppresses repeat reads of the same code from a
	// continuously streaming camera decoder.
	CooldownWindow = 1500 * time.Millisecond

	// FeedLimit caps the in-memory status feed to the most recent entries.
	FeedLimit = 25
)

// FeedEntry is one line of the session's status feed.
type FeedEntry struct {
	Status     Status    `json:"status"`
	Message    string    `json:"message"`
	Code       string    `json:"code"`
	Timestamp  time.Time `json:"timestamp"`
	EntityType string    `json:"entity_type,omitempty"`
	EntityID   uint      `json:"entity_id,omitempty"`
	Link       string    `json:"link,omitempty"`
}

// Session is the interactive scanning loop for one device: it owns the active
// mode, the current target, the same-code cooldown, the single-flight flag and
// the undo slot. All state is process-local and dies with the session.
type Session struct {
	mu sync.Mutex

	resolver   *Resolver
	dispatcher *Dispatcher
	log        *zap.Logger

	companyID uint
	mode      Mode

	targetLocation *models.Location
	targetCase     *models.Case
	targetJob      *models.Job

	lastCode   string
	lastScanAt time.Time
	processing bool

	undo *UndoRecord
	feed []FeedEntry

	closed bool

	now func() time.Time
}

func NewSession(db *gorm.DB, log *zap.Logger, companyID uint, mode Mode) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	if !mode.Valid() {
		mode = ModeLookup
	}
	return &Session{
		resolver:   NewResolver(db, log),
		dispatcher: NewDispatcher(db, log),
		log:        log,
		companyID:  companyID,
		mode:       mode,
		now:        time.Now,
	}
}

func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode switches the action intent and clears all targets.
func (s *Session) SetMode(mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("invalid mode: %s", mode)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	s.targetLocation = nil
	s.targetCase = nil
	s.targetJob = nil
	return nil
}

// SetTargetLocation selects the assignment destination. It clears a container
// target; the two are mutually exclusive.
func (s *Session) SetTargetLocation(loc models.Location) error {
	if loc.CompanyID == nil || *loc.CompanyID != s.companyID {
		return fmt.Errorf("location %d does not belong to company %d", loc.ID, s.companyID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.targetLocation = &loc
	s.targetCase = nil
	return nil
}

func (s *Session) SetTargetJob(job models.Job) error {
	if job.CompanyID != s.companyID {
		return fmt.Errorf("job %d does not belong to company %d", job.ID, s.companyID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.targetJob = &job
	return nil
}

// Feed returns a copy of the status feed, newest first.
func (s *Session) Feed() []FeedEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]FeedEntry, len(s.feed))
	copy(out, s.feed)
	return out
}

func (s *Session) UndoAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.undo != nil
}

// Close tears the session down: cooldown, in-flight flag, undo slot and feed
// are discarded. No state persists across sessions.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.lastCode = ""
	s.lastScanAt = time.Time{}
	s.processing = false
	s.undo = nil
	s.feed = nil
	s.targetLocation = nil
	s.targetCase = nil
	s.targetJob = nil
}

// SubmitScan runs one resolve+act cycle. It returns nil when the scan was
// discarded (cooldown hit, another action still in flight, or the session is
// closed); otherwise it returns the feed entry that was appended.
func (s *Session) SubmitScan(ctx context.Context, code string) *FeedEntry {
	// The cooldown compares what the resolver will see, not raw decoder bytes.
	code = strings.TrimSpace(code)

	s.mu.Lock()
	if s.closed || s.processing {
		s.mu.Unlock()
		return nil
	}
	now := s.now()
	if code != "" && code == s.lastCode && now.Sub(s.lastScanAt) < CooldownWindow {
		s.mu.Unlock()
		return nil
	}
	s.lastCode = code
	s.lastScanAt = now
	s.processing = true
	s.mu.Unlock()

	entry := s.process(ctx, code)

	s.mu.Lock()
	s.processing = false
	if s.closed {
		// Session was dismissed mid-action; drop the result.
		s.mu.Unlock()
		return nil
	}
	s.pushFeedLocked(entry)
	s.mu.Unlock()
	return &entry
}

func (s *Session) process(ctx context.Context, code string) FeedEntry {
	resolved := s.resolver.Resolve(ctx, code)

	s.mu.Lock()
	mode := s.mode
	targetLocation := s.targetLocation
	targetCase := s.targetCase
	targetJob := s.targetJob
	s.mu.Unlock()

	if mode == ModeAssignLocation {
		// Assignments stay inside the session's own company.
		switch resolved.(type) {
		case ResolvedEquipment, ResolvedCase, ResolvedArticle, ResolvedLocation:
			if cid := ResolvedCompanyID(resolved); cid != nil && *cid != s.companyID {
				return s.entry(code, ActionResult{Status: StatusError,
					Message: "Objekt gehört zu einer anderen Firma."})
			}
		}

		switch res := resolved.(type) {
		case ResolvedLocation:
			// Scanning a location (re-)targets it instead of mutating.
			if err := s.SetTargetLocation(res.Location); err != nil {
				return s.entry(code, ActionResult{Status: StatusError,
					Message: "Objekt gehört zu einer anderen Firma."})
			}
			return s.entry(code, ActionResult{Status: StatusSuccess,
				EntityType: "location", EntityID: res.Location.ID,
				Message: fmt.Sprintf("Standort %s als Ziel ausgewählt.", res.Location.Name)})

		case ResolvedCase:
			// Without a location target a case becomes the container target.
			if targetLocation == nil {
				if res.CompanyID != s.companyID {
					return s.entry(code, ActionResult{Status: StatusError,
						Message: "Objekt gehört zu einer anderen Firma."})
				}
				c := res.Case
				s.mu.Lock()
				s.targetCase = &c
				s.targetLocation = nil
				s.mu.Unlock()
				return s.entry(code, ActionResult{Status: StatusSuccess,
					EntityType: "case", EntityID: c.ID,
					Message: fmt.Sprintf("Case %s als Ziel-Container ausgewählt.", c.Name)})
			}

		case ResolvedEquipment:
			if targetCase != nil {
				result := s.dispatcher.PackIntoCase(ctx, res, *targetCase)
				s.recordUndo(result)
				return s.entry(code, result)
			}
		}
	}

	actx := ActionContext{}
	if targetLocation != nil {
		actx.TargetLocationID = &targetLocation.ID
		actx.TargetLocationName = targetLocation.Name
	}
	if targetJob != nil {
		actx.JobID = &targetJob.ID
		actx.JobName = targetJob.Name
		actx.JobCompanyID = &targetJob.CompanyID
	}

	result := s.dispatcher.PerformAction(ctx, mode, resolved, actx)
	if mode == ModeAssignLocation {
		s.recordUndo(result)
	}
	return s.entry(code, result)
}

// SubmitUndo reverses the recorded mutation. The slot is cleared whether the
// reversal succeeds or fails; the outcome lands in the feed like any scan.
func (s *Session) SubmitUndo(ctx context.Context) *FeedEntry {
	s.mu.Lock()
	if s.closed || s.processing {
		s.mu.Unlock()
		return nil
	}
	rec := s.undo
	s.undo = nil
	if rec == nil {
		s.mu.Unlock()
		entry := s.entry("", ActionResult{Status: StatusInfo, Message: "Nichts rückgängig zu machen."})
		s.mu.Lock()
		s.pushFeedLocked(entry)
		s.mu.Unlock()
		return &entry
	}
	s.processing = true
	s.mu.Unlock()

	result := s.dispatcher.UndoAssignment(ctx, *rec)
	entry := s.entry("", result)

	s.mu.Lock()
	s.processing = false
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.pushFeedLocked(entry)
	s.mu.Unlock()
	return &entry
}

func (s *Session) recordUndo(result ActionResult) {
	if result.Status != StatusSuccess || result.Undo == nil {
		return
	}
	s.mu.Lock()
	s.undo = result.Undo
	s.mu.Unlock()
}

func (s *Session) entry(code string, result ActionResult) FeedEntry {
	e := FeedEntry{
		Status:     result.Status,
		Message:    result.Message,
		Code:       code,
		Timestamp:  s.now(),
		EntityType: result.EntityType,
		EntityID:   result.EntityID,
	}
	if result.EntityType != "" && result.EntityID != 0 {
		e.Link = fmt.Sprintf("/%s/%d", result.EntityType, result.EntityID)
	}
	return e
}

func (s *Session) pushFeedLocked(entry FeedEntry) {
	s.feed = append([]FeedEntry{entry}, s.feed...)
	if len(s.feed) > FeedLimit {
		s.feed = s.feed[:FeedLimit]
	}
}
