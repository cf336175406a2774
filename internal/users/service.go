package users

import (
	"context"
	"crypto/rand"
	"database/sql"
	"strings"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"

	"hifz-backend/internal/platform/apperr"
	"hifz-backend/internal/platform/db"
	"hifz-backend/internal/platform/events"
)

const table = "users"

type Service struct {
	store *Store
	hub   *events.Hub
}

func NewService(conn *sql.DB, hub *events.Hub) *Service {
	return &Service{store: NewStore(conn), hub: hub}
}

func (s *Service) List(ctx context.Context) ([]UserWithSlot, error) {
	out, err := s.store.ListSlotAdmins(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []UserWithSlot{}
	}
	return out, nil
}

func normalizeName(name *string) *string {
	if name == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (s *Service) Create(ctx context.Context, req CreateUserRequest) (User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return User{}, apperr.Invalid("username is required")
	}
	if req.Password == "" {
		return User{}, apperr.Invalid("password is required for new users")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	id, err := ulid.New(ulid.Now(), rand.Reader)
	if err != nil {
		return User{}, err
	}
	u := User{
		ID:             id.String(),
		Name:           normalizeName(req.Name),
		Username:       username,
		Role:           RoleSlotAdmin,
		AssignedSlotID: req.AssignedSlotID,
	}
	if err := s.store.Create(ctx, u, string(hash)); err != nil {
		if db.IsDuplicate(err) {
			return User{}, apperr.Conflict("username already exists")
		}
		return User{}, err
	}

	s.hub.Publish(table, events.OpInsert)
	return u, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateUserRequest) (User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return User{}, apperr.Invalid("username is required")
	}

	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return User{}, err
	}
	if existing == nil {
		return User{}, apperr.NotFound("user not found")
	}

	var newHash *string
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return User{}, err
		}
		h := string(hash)
		newHash = &h
	}

	u := User{
		ID:             id,
		Name:           normalizeName(req.Name),
		Username:       username,
		Role:           existing.Role,
		AssignedSlotID: req.AssignedSlotID,
	}
	if _, err := s.store.Update(ctx, u, newHash); err != nil {
		if db.IsDuplicate(err) {
			return User{}, apperr.Conflict("username already exists")
		}
		return User{}, err
	}

	s.hub.Publish(table, events.OpUpdate)
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFound("user not found")
	}

	s.hub.Publish(table, events.OpDelete)
	return nil
}
