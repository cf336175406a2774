package attendance

import (
	"context"
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"

	"hifz-backend/internal/classes"
	"hifz-backend/internal/platform/apperr"
	"hifz-backend/internal/platform/events"
)

func TestValidateCounts(t *testing.T) {
	tests := []struct {
		name                            string
		total, present, absent, onLeave int
		wantErr                         bool
	}{
		{"balanced", 30, 20, 5, 5, false},
		{"off by one", 30, 20, 5, 4, true},
		{"all zero", 0, 0, 0, 0, false},
		{"all present", 10, 10, 0, 0, false},
		{"negative present", 5, -1, 3, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCounts(tt.total, tt.present, tt.absent, tt.onLeave)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCounts(%d,%d,%d,%d) error = %v, wantErr %v",
					tt.total, tt.present, tt.absent, tt.onLeave, err, tt.wantErr)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	if _, err := parseDate("2025-03-14"); err != nil {
		t.Errorf("valid date rejected: %v", err)
	}
	for _, bad := range []string{"14-03-2025", "2025/03/14", "today", ""} {
		if _, err := parseDate(bad); err == nil {
			t.Errorf("parseDate(%q) should fail", bad)
		}
	}
}

type fakeStore struct {
	exists    bool
	insertErr error
	inserted  []Record
}

func (f *fakeStore) List(ctx context.Context, slotID *string) ([]RecordWithClass, error) {
	return nil, nil
}
func (f *fakeStore) Get(ctx context.Context, id string) (*Record, error) { return nil, nil }
func (f *fakeStore) Exists(ctx context.Context, classID, slotID, date string) (bool, error) {
	return f.exists, nil
}
func (f *fakeStore) Insert(ctx context.Context, r Record) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, r)
	return nil
}
func (f *fakeStore) Update(ctx context.Context, r Record) (int64, error)  { return 1, nil }
func (f *fakeStore) Delete(ctx context.Context, id string) (int64, error) { return 1, nil }
func (f *fakeStore) UpdateAttachments(ctx context.Context, id string, atts []Attachment) error {
	return nil
}

type fakeClasses map[string]bool

func (f fakeClasses) Get(ctx context.Context, id string) (*classes.Class, error) {
	if f[id] {
		return &classes.Class{ID: id, Name: "Class 1", DurationMinutes: 60}, nil
	}
	return nil, nil
}

type fixedLimit int

func (l fixedLimit) AttachmentLimitKB(ctx context.Context) (int, error) { return int(l), nil }

func newTestService(fs *fakeStore) *Service {
	return &Service{
		store:    fs,
		classes:  fakeClasses{"c1": true},
		settings: fixedLimit(200),
		hub:      events.NewHub(),
	}
}

func validCreateRequest() CreateRecordRequest {
	return CreateRecordRequest{
		ClassID:         "c1",
		AttendanceDate:  "2025-03-14",
		TotalStudents:   10,
		StudentsPresent: 8,
		StudentsAbsent:  1,
		StudentsOnLeave: 1,
		Attachments: []NewAttachment{
			{Name: "proof.png", Data: fakeImage(10 * 1024), Type: "image/png"},
		},
	}
}

func wantConflict(t *testing.T, err error) {
	t.Helper()
	var api *apperr.Error
	if !errors.As(err, &api) {
		t.Fatalf("error = %v, want *apperr.Error", err)
	}
	if api.Code != apperr.CodeConflict {
		t.Errorf("code = %s, want %s", api.Code, apperr.CodeConflict)
	}
}

func TestCreateRejectsExistingEntry(t *testing.T) {
	fs := &fakeStore{exists: true}
	svc := newTestService(fs)
	caller := Caller{UserID: "u1", Role: "slot_admin", SlotID: "s1"}

	_, err := svc.Create(context.Background(), caller, validCreateRequest())
	wantConflict(t, err)
	if len(fs.inserted) != 0 {
		t.Errorf("inserted %d records, want 0", len(fs.inserted))
	}
}

func TestCreateMapsDuplicateKeyToConflict(t *testing.T) {
	// Two admins racing past the existence check; the unique key fires.
	fs := &fakeStore{insertErr: &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}}
	svc := newTestService(fs)
	caller := Caller{UserID: "u1", Role: "slot_admin", SlotID: "s1"}

	_, err := svc.Create(context.Background(), caller, validCreateRequest())
	wantConflict(t, err)
}

func TestCreateRejectsUnknownClass(t *testing.T) {
	fs := &fakeStore{}
	svc := newTestService(fs)
	caller := Caller{UserID: "u1", Role: "slot_admin", SlotID: "s1"}

	req := validCreateRequest()
	req.ClassID = "ghost"

	_, err := svc.Create(context.Background(), caller, req)
	var api *apperr.Error
	if !errors.As(err, &api) {
		t.Fatalf("error = %v, want *apperr.Error", err)
	}
	if api.Code != apperr.CodeNotFound {
		t.Errorf("code = %s, want %s", api.Code, apperr.CodeNotFound)
	}
}

func TestCreateStoresRecordForCallerSlot(t *testing.T) {
	fs := &fakeStore{}
	svc := newTestService(fs)
	caller := Caller{UserID: "u1", Role: "slot_admin", SlotID: "s1"}

	rec, err := svc.Create(context.Background(), caller, validCreateRequest())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.SlotID != "s1" || rec.AdminUserID != "u1" {
		t.Errorf("record owner = %s/%s, want s1/u1", rec.SlotID, rec.AdminUserID)
	}
	if len(fs.inserted) != 1 {
		t.Fatalf("inserted %d records, want 1", len(fs.inserted))
	}
	if len(rec.Attachments) != 1 {
		t.Errorf("attachments = %d, want 1", len(rec.Attachments))
	}
}
