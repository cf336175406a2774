package auth

import (
	"context"
	"database/sql"
)

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) GetByUsername(ctx context.Context, username string) (*account, error) {
	row := s.db.QueryRowContext(ctx, `
	SELECT id, name, username, password_hash, role, assigned_slot_id
	FROM users
	WHERE username = ?`, username)

	var a account
	if err := row.Scan(&a.ID, &a.Name, &a.Username, &a.PasswordHash, &a.Role, &a.AssignedSlotID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*account, error) {
	row := s.db.QueryRowContext(ctx, `
	SELECT id, name, username, password_hash, role, assigned_slot_id
	FROM users
	WHERE id = ?`, id)

	var a account
	if err := row.Scan(&a.ID, &a.Name, &a.Username, &a.PasswordHash, &a.Role, &a.AssignedSlotID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
