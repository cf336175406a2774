package attendance

import (
	"context"
	"crypto/rand"
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"

	"hifz-backend/internal/classes"
	"hifz-backend/internal/platform/apperr"
	"hifz-backend/internal/platform/db"
	"hifz-backend/internal/platform/events"
	"hifz-backend/internal/settings"
)

const table = "attendance"

// Caller is the authenticated admin acting on attendance records.
type Caller struct {
	UserID string
	Role   string
	SlotID string
}

const roleSuperAdmin = "super_admin"

// recordStore is what the service needs from the persistence layer.
type recordStore interface {
	List(ctx context.Context, slotID *string) ([]RecordWithClass, error)
	Get(ctx context.Context, id string) (*Record, error)
	Exists(ctx context.Context, classID, slotID, date string) (bool, error)
	Insert(ctx context.Context, r Record) error
	Update(ctx context.Context, r Record) (int64, error)
	UpdateAttachments(ctx context.Context, id string, atts []Attachment) error
	Delete(ctx context.Context, id string) (int64, error)
}

type classStore interface {
	Get(ctx context.Context, id string) (*classes.Class, error)
}

type limitSource interface {
	AttachmentLimitKB(ctx context.Context) (int, error)
}

type Service struct {
	store    recordStore
	classes  classStore
	settings limitSource
	hub      *events.Hub
}

func NewService(conn *sql.DB, st *settings.Service, hub *events.Hub) *Service {
	return &Service{
		store:    NewStore(conn),
		classes:  classes.NewStore(conn),
		settings: st,
		hub:      hub,
	}
}

// ValidateCounts enforces present + absent + on_leave == total.
func ValidateCounts(total, present, absent, onLeave int) error {
	if total < 0 || present < 0 || absent < 0 || onLeave < 0 {
		return apperr.Invalid("student counts cannot be negative")
	}
	if present+absent+onLeave != total {
		return apperr.Invalid("Present + Absent + On Leave must equal Total Students")
	}
	return nil
}

func parseDate(s string) (string, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return "", apperr.Invalid("attendance_date must be YYYY-MM-DD")
	}
	return t.Format(DateLayout), nil
}

// requireClass rejects writes that point at a class id with no row behind
// it; the schema carries no foreign key on class_id.
func (s *Service) requireClass(ctx context.Context, classID string) error {
	cl, err := s.classes.Get(ctx, classID)
	if err != nil {
		return err
	}
	if cl == nil {
		return apperr.NotFound("class not found")
	}
	return nil
}

// List returns the records visible to the caller: slot admins see their own
// slot, super admins everything (optionally filtered by slot).
func (s *Service) List(ctx context.Context, caller Caller, slotFilter *string) ([]RecordWithClass, error) {
	var slotID *string
	if caller.Role == roleSuperAdmin {
		slotID = slotFilter
	} else {
		if caller.SlotID == "" {
			return nil, apperr.Invalid("no slot assigned to this account")
		}
		slot := caller.SlotID
		slotID = &slot
	}

	out, err := s.store.List(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []RecordWithClass{}
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, caller Caller, req CreateRecordRequest) (Record, error) {
	if caller.SlotID == "" {
		return Record{}, apperr.Invalid("no slot assigned to this account")
	}
	if err := ValidateCounts(req.TotalStudents, req.StudentsPresent, req.StudentsAbsent, req.StudentsOnLeave); err != nil {
		return Record{}, err
	}
	date, err := parseDate(req.AttendanceDate)
	if err != nil {
		return Record{}, err
	}
	if len(req.Attachments) == 0 {
		return Record{}, apperr.Invalid("at least one file attachment is required")
	}
	if err := s.requireClass(ctx, req.ClassID); err != nil {
		return Record{}, err
	}

	maxKB, err := s.settings.AttachmentLimitKB(ctx)
	if err != nil {
		return Record{}, err
	}
	atts, err := ValidateAndEncode(req.Attachments, 0, maxKB)
	if err != nil {
		return Record{}, err
	}

	// Early duplicate hint; the unique key catches the race.
	exists, err := s.store.Exists(ctx, req.ClassID, caller.SlotID, date)
	if err != nil {
		return Record{}, err
	}
	if exists {
		return Record{}, apperr.Conflict("attendance record already exists for this class and date")
	}

	id, err := ulid.New(ulid.Now(), rand.Reader)
	if err != nil {
		return Record{}, err
	}
	now := time.Now().UTC()
	rec := Record{
		ID:              id.String(),
		ClassID:         req.ClassID,
		SlotID:          caller.SlotID,
		AdminUserID:     caller.UserID,
		AttendanceDate:  date,
		AttendanceTime:  req.AttendanceTime,
		TotalStudents:   req.TotalStudents,
		StudentsPresent: req.StudentsPresent,
		StudentsAbsent:  req.StudentsAbsent,
		StudentsOnLeave: req.StudentsOnLeave,
		Notes:           req.Notes,
		Attachments:     atts,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.store.Insert(ctx, rec); err != nil {
		if db.IsDuplicate(err) {
			return Record{}, apperr.Conflict("attendance record already exists for this class and date")
		}
		return Record{}, err
	}

	s.hub.Publish(table, events.OpInsert)
	return rec, nil
}

func (s *Service) getOwned(ctx context.Context, caller Caller, id string) (*Record, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperr.NotFound("attendance record not found")
	}
	if caller.Role != roleSuperAdmin && rec.SlotID != caller.SlotID {
		return nil, apperr.NotFound("attendance record not found")
	}
	return rec, nil
}

func (s *Service) Update(ctx context.Context, caller Caller, id string, req UpdateRecordRequest) (Record, error) {
	rec, err := s.getOwned(ctx, caller, id)
	if err != nil {
		return Record{}, err
	}

	if err := ValidateCounts(req.TotalStudents, req.StudentsPresent, req.StudentsAbsent, req.StudentsOnLeave); err != nil {
		return Record{}, err
	}
	date, err := parseDate(req.AttendanceDate)
	if err != nil {
		return Record{}, err
	}
	if len(rec.Attachments)+len(req.Attachments) == 0 {
		return Record{}, apperr.Invalid("at least one file attachment is required")
	}
	if err := s.requireClass(ctx, req.ClassID); err != nil {
		return Record{}, err
	}

	atts := rec.Attachments
	if len(req.Attachments) > 0 {
		maxKB, err := s.settings.AttachmentLimitKB(ctx)
		if err != nil {
			return Record{}, err
		}
		added, err := ValidateAndEncode(req.Attachments, len(rec.Attachments), maxKB)
		if err != nil {
			return Record{}, err
		}
		atts = append(atts, added...)
	}

	rec.ClassID = req.ClassID
	rec.AttendanceDate = date
	rec.AttendanceTime = req.AttendanceTime
	rec.TotalStudents = req.TotalStudents
	rec.StudentsPresent = req.StudentsPresent
	rec.StudentsAbsent = req.StudentsAbsent
	rec.StudentsOnLeave = req.StudentsOnLeave
	rec.Notes = req.Notes
	rec.Attachments = atts

	if _, err := s.store.Update(ctx, *rec); err != nil {
		if db.IsDuplicate(err) {
			return Record{}, apperr.Conflict("attendance record already exists for this class and date")
		}
		return Record{}, err
	}
	rec.UpdatedAt = time.Now().UTC()

	s.hub.Publish(table, events.OpUpdate)
	return *rec, nil
}

func (s *Service) Delete(ctx context.Context, caller Caller, id string) error {
	if _, err := s.getOwned(ctx, caller, id); err != nil {
		return err
	}
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFound("attendance record not found")
	}

	s.hub.Publish(table, events.OpDelete)
	return nil
}

// DeleteAttachment removes one stored file by position. This can leave a
// record with no files; the one-file minimum is re-checked on the next save.
func (s *Service) DeleteAttachment(ctx context.Context, caller Caller, id string, index int) (Record, error) {
	rec, err := s.getOwned(ctx, caller, id)
	if err != nil {
		return Record{}, err
	}
	if index < 0 || index >= len(rec.Attachments) {
		return Record{}, apperr.Invalid("attachment index out of range")
	}

	rec.Attachments = append(rec.Attachments[:index], rec.Attachments[index+1:]...)
	if err := s.store.UpdateAttachments(ctx, id, rec.Attachments); err != nil {
		return Record{}, err
	}

	s.hub.Publish(table, events.OpUpdate)
	return *rec, nil
}
