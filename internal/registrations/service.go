package registrations

import (
	"context"
	"crypto/rand"
	"database/sql"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"hifz-backend/internal/platform/apperr"
	"hifz-backend/internal/platform/events"
	"hifz-backend/internal/settings"
	"hifz-backend/internal/slots"
)

const table = "registrations"

type Service struct {
	store    *Store
	slots    *slots.Store
	settings *settings.Service
	hub      *events.Hub
}

func NewService(db *sql.DB, st *settings.Service, hub *events.Hub) *Service {
	return &Service{
		store:    NewStore(db),
		slots:    slots.NewStore(db),
		settings: st,
		hub:      hub,
	}
}

// FormConfig is what the public registration page needs to render.
type FormConfig struct {
	Title          string                `json:"title"`
	AvailableSlots []slots.AvailableSlot `json:"available_slots"`
}

func (s *Service) FormConfig(ctx context.Context) (FormConfig, error) {
	title, err := s.settings.FormTitle(ctx)
	if err != nil {
		return FormConfig{}, err
	}
	available, err := s.availableSlots(ctx)
	if err != nil {
		return FormConfig{}, err
	}
	return FormConfig{Title: title, AvailableSlots: available}, nil
}

func (s *Service) availableSlots(ctx context.Context) ([]slots.AvailableSlot, error) {
	all, err := s.slots.List(ctx)
	if err != nil {
		return nil, err
	}
	regIDs, err := s.slots.RegistrationSlotIDs(ctx)
	if err != nil {
		return nil, err
	}
	return slots.ResolveAvailable(all, regIDs), nil
}

// Create registers a student into a slot. Capacity is checked against a
// fresh availability resolve; a concurrent registration can still slip past
// this check, which the store's own limits tolerate.
func (s *Service) Create(ctx context.Context, req CreateRegistrationRequest) (Registration, error) {
	if strings.TrimSpace(req.StudentName) == "" {
		return Registration{}, apperr.Invalid("student_name is required")
	}

	sl, err := s.slots.Get(ctx, req.SlotID)
	if err != nil {
		return Registration{}, err
	}
	if sl == nil {
		return Registration{}, apperr.NotFound("slot not found")
	}

	available, err := s.availableSlots(ctx)
	if err != nil {
		return Registration{}, err
	}
	open := false
	for _, a := range available {
		if a.ID == req.SlotID {
			open = true
			break
		}
	}
	if !open {
		return Registration{}, apperr.Conflict("slot is full")
	}

	id, err := ulid.New(ulid.Now(), rand.Reader)
	if err != nil {
		return Registration{}, err
	}
	reg := Registration{
		ID:           id.String(),
		SlotID:       req.SlotID,
		StudentName:  strings.TrimSpace(req.StudentName),
		ContactPhone: strings.TrimSpace(req.ContactPhone),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.Create(ctx, reg); err != nil {
		return Registration{}, err
	}

	s.hub.Publish(table, events.OpInsert)
	return reg, nil
}

func (s *Service) List(ctx context.Context, slotID *string) ([]RegistrationWithSlot, error) {
	out, err := s.store.List(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []RegistrationWithSlot{}
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFound("registration not found")
	}

	s.hub.Publish(table, events.OpDelete)
	return nil
}
