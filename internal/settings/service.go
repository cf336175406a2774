package settings

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"hifz-backend/internal/platform/apperr"
	"hifz-backend/internal/platform/db"
	"hifz-backend/internal/platform/events"
)

const table = "settings"

type Service struct {
	conn  *sql.DB
	store *Store
	hub   *events.Hub
}

func NewService(conn *sql.DB, hub *events.Hub) *Service {
	return &Service{conn: conn, store: NewStore(conn), hub: hub}
}

// Get returns the three known settings with defaults filled in for absent
// rows. A missing row is not an error.
func (s *Service) Get(ctx context.Context) (Response, error) {
	all, err := s.store.All(ctx)
	if err != nil {
		return Response{}, err
	}

	res := Response{
		FormTitle:           DefaultFormTitle,
		MaxRegsPerSlot:      DefaultMaxRegsValue,
		MaxAttachmentSizeKB: DefaultMaxAttachmentValue,
	}
	if v, ok := all[KeyFormTitle]; ok && v != "" {
		res.FormTitle = v
	}
	if v, ok := all[KeyMaxRegsPerSlot]; ok && v != "" {
		res.MaxRegsPerSlot = v
	}
	if v, ok := all[KeyMaxAttachmentKB]; ok && v != "" {
		res.MaxAttachmentSizeKB = v
	}
	return res, nil
}

func ValidateUpdate(req UpdateRequest) error {
	if strings.TrimSpace(req.FormTitle) == "" {
		return apperr.Invalid("form title cannot be empty")
	}
	if req.MaxRegsPerSlot < MinRegsPerSlot || req.MaxRegsPerSlot > MaxRegsPerSlot {
		return apperr.Invalid(fmt.Sprintf("max registrations must be between %d and %d", MinRegsPerSlot, MaxRegsPerSlot))
	}
	if req.MaxAttachmentSizeKB < MinAttachmentKB || req.MaxAttachmentSizeKB > MaxAttachmentKB {
		return apperr.Invalid(fmt.Sprintf("max attachment size must be between %d and %d KB", MinAttachmentKB, MaxAttachmentKB))
	}
	return nil
}

func (s *Service) Update(ctx context.Context, req UpdateRequest) error {
	if err := ValidateUpdate(req); err != nil {
		return err
	}

	pairs := [][2]string{
		{KeyFormTitle, strings.TrimSpace(req.FormTitle)},
		{KeyMaxRegsPerSlot, strconv.Itoa(req.MaxRegsPerSlot)},
		{KeyMaxAttachmentKB, strconv.Itoa(req.MaxAttachmentSizeKB)},
	}
	// All three keys change together or not at all.
	err := db.RunInTx(ctx, s.conn, nil, func(ctx context.Context, tx db.DBTX) error {
		st := NewStore(tx)
		for _, p := range pairs {
			if err := st.Upsert(ctx, p[0], p[1]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.hub.Publish(table, events.OpUpdate)
	return nil
}

// FormTitle is used by the public registration form endpoint.
func (s *Service) FormTitle(ctx context.Context) (string, error) {
	v, ok, err := s.store.Get(ctx, KeyFormTitle)
	if err != nil {
		return "", err
	}
	if !ok || v == "" {
		return DefaultFormTitle, nil
	}
	return v, nil
}

// AttachmentLimitKB is the per-file upload cap. Falls back to 200KB when
// the key is absent or unparsable.
func (s *Service) AttachmentLimitKB(ctx context.Context) (int, error) {
	v, ok, err := s.store.Get(ctx, KeyMaxAttachmentKB)
	if err != nil {
		return 0, err
	}
	if !ok {
		return FallbackAttachmentKB, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < MinAttachmentKB || n > MaxAttachmentKB {
		return FallbackAttachmentKB, nil
	}
	return n, nil
}
