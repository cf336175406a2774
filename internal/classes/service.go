package classes

import (
	"context"
	"crypto/rand"
	"database/sql"
	"strings"

	"github.com/oklog/ulid/v2"

	"hifz-backend/internal/platform/apperr"
	"hifz-backend/internal/platform/events"
)

const table = "classes"

type Service struct {
	store *Store
	hub   *events.Hub
}

func NewService(db *sql.DB, hub *events.Hub) *Service {
	return &Service{store: NewStore(db), hub: hub}
}

func (s *Service) List(ctx context.Context) ([]Class, error) {
	out, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []Class{}
	}
	return out, nil
}

func validate(name string, duration int) error {
	if strings.TrimSpace(name) == "" {
		return apperr.Invalid("name is required")
	}
	if duration <= 0 {
		return apperr.Invalid("duration_minutes must be positive")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, req CreateClassRequest) (Class, error) {
	if err := validate(req.Name, req.DurationMinutes); err != nil {
		return Class{}, err
	}

	id, err := ulid.New(ulid.Now(), rand.Reader)
	if err != nil {
		return Class{}, err
	}
	c := Class{
		ID:              id.String(),
		Name:            strings.TrimSpace(req.Name),
		DurationMinutes: req.DurationMinutes,
		Description:     req.Description,
	}
	if err := s.store.Create(ctx, c); err != nil {
		return Class{}, err
	}

	s.hub.Publish(table, events.OpInsert)
	return c, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateClassRequest) (Class, error) {
	if err := validate(req.Name, req.DurationMinutes); err != nil {
		return Class{}, err
	}

	c := Class{
		ID:              id,
		Name:            strings.TrimSpace(req.Name),
		DurationMinutes: req.DurationMinutes,
		Description:     req.Description,
	}
	n, err := s.store.Update(ctx, c)
	if err != nil {
		return Class{}, err
	}
	if n == 0 {
		if got, err := s.store.Get(ctx, id); err != nil {
			return Class{}, err
		} else if got == nil {
			return Class{}, apperr.NotFound("class not found")
		}
	}

	s.hub.Publish(table, events.OpUpdate)
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFound("class not found")
	}

	s.hub.Publish(table, events.OpDelete)
	return nil
}
