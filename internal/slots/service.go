package slots

import (
	"context"
	"crypto/rand"
	"database/sql"
	"strings"

	"github.com/oklog/ulid/v2"

	"hifz-backend/internal/platform/apperr"
	"hifz-backend/internal/platform/db"
	"hifz-backend/internal/platform/events"
)

const table = "slots"

type Service struct {
	store *Store
	hub   *events.Hub
}

func NewService(db *sql.DB, hub *events.Hub) *Service {
	return &Service{store: NewStore(db), hub: hub}
}

func newID() (string, error) {
	id, err := ulid.New(ulid.Now(), rand.Reader)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (s *Service) List(ctx context.Context) ([]Slot, error) {
	out, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []Slot{}
	}
	return out, nil
}

// Available resolves which slots still have capacity from a fresh fetch of
// both source sets. The output is undefined until both loads succeed, so
// any fetch error surfaces as-is and nothing partial is returned.
func (s *Service) Available(ctx context.Context) ([]AvailableSlot, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	regIDs, err := s.store.RegistrationSlotIDs(ctx)
	if err != nil {
		return nil, err
	}
	return ResolveAvailable(all, regIDs), nil
}

func (s *Service) Create(ctx context.Context, req CreateSlotRequest) (Slot, error) {
	if strings.TrimSpace(req.DisplayName) == "" {
		return Slot{}, apperr.Invalid("display_name is required")
	}
	if req.SlotOrder <= 0 {
		return Slot{}, apperr.Invalid("slot_order must be positive")
	}
	if req.MaxRegistrations != nil && *req.MaxRegistrations <= 0 {
		return Slot{}, apperr.Invalid("max_registrations must be positive")
	}

	id, err := newID()
	if err != nil {
		return Slot{}, err
	}
	sl := Slot{
		ID:               id,
		DisplayName:      strings.TrimSpace(req.DisplayName),
		SlotOrder:        req.SlotOrder,
		MaxRegistrations: req.MaxRegistrations,
	}
	if err := s.store.Create(ctx, sl); err != nil {
		if db.IsDuplicate(err) {
			return Slot{}, apperr.Conflict("slot_order already in use")
		}
		return Slot{}, err
	}

	s.hub.Publish(table, events.OpInsert)
	return sl, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateSlotRequest) (Slot, error) {
	if strings.TrimSpace(req.DisplayName) == "" {
		return Slot{}, apperr.Invalid("display_name is required")
	}
	if req.SlotOrder <= 0 {
		return Slot{}, apperr.Invalid("slot_order must be positive")
	}
	if req.MaxRegistrations != nil && *req.MaxRegistrations <= 0 {
		return Slot{}, apperr.Invalid("max_registrations must be positive")
	}

	sl := Slot{
		ID:               id,
		DisplayName:      strings.TrimSpace(req.DisplayName),
		SlotOrder:        req.SlotOrder,
		MaxRegistrations: req.MaxRegistrations,
	}
	n, err := s.store.Update(ctx, sl)
	if err != nil {
		if db.IsDuplicate(err) {
			return Slot{}, apperr.Conflict("slot_order already in use")
		}
		return Slot{}, err
	}
	if n == 0 {
		// RowsAffected is also 0 for a no-change update; confirm existence
		if got, err := s.store.Get(ctx, id); err != nil {
			return Slot{}, err
		} else if got == nil {
			return Slot{}, apperr.NotFound("slot not found")
		}
	}

	s.hub.Publish(table, events.OpUpdate)
	return sl, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFound("slot not found")
	}

	s.hub.Publish(table, events.OpDelete)
	return nil
}
