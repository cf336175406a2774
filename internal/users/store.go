package users

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(ctx context.Context, q string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, q string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, q string, args ...any) *sql.Row
}

type Store struct{ db DBTX }

func NewStore(db DBTX) *Store { return &Store{db: db} }

// ListSlotAdmins returns slot-admin accounts with their slot label, ordered
// by username. Super admins are managed out of band and never listed.
func (s *Store) ListSlotAdmins(ctx context.Context) ([]UserWithSlot, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT u.id, u.name, u.username, u.role, u.assigned_slot_id, sl.display_name
	FROM users u
	LEFT JOIN slots sl ON sl.id = u.assigned_slot_id
	WHERE u.role = ?
	ORDER BY u.username ASC`, RoleSlotAdmin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []UserWithSlot
	for rows.Next() {
		var u UserWithSlot
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.Role, &u.AssignedSlotID, &u.SlotDisplayName); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `
	SELECT id, name, username, role, assigned_slot_id
	FROM users WHERE id = ?`, id)

	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.Username, &u.Role, &u.AssignedSlotID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s *Store) Create(ctx context.Context, u User, passwordHash string) error {
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO users (id, name, username, password_hash, role, assigned_slot_id)
	VALUES (?, ?, ?, ?, ?, ?)`, u.ID, u.Name, u.Username, passwordHash, u.Role, u.AssignedSlotID)
	return err
}

// Update writes the profile fields; the hash only when newHash is non-nil.
func (s *Store) Update(ctx context.Context, u User, newHash *string) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if newHash != nil {
		res, err = s.db.ExecContext(ctx, `
		UPDATE users
		SET name = ?, username = ?, password_hash = ?, assigned_slot_id = ?
		WHERE id = ?`, u.Name, u.Username, *newHash, u.AssignedSlotID, u.ID)
	} else {
		res, err = s.db.ExecContext(ctx, `
		UPDATE users
		SET name = ?, username = ?, assigned_slot_id = ?
		WHERE id = ?`, u.Name, u.Username, u.AssignedSlotID, u.ID)
	}
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ? AND role = ?`, id, RoleSlotAdmin)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
