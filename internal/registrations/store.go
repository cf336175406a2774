package registrations

import (
	"bytes"
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

// List returns registrations with the slot label, optionally filtered by
// slot, newest first.
func (s *Store) List(ctx context.Context, slotID *string) ([]RegistrationWithSlot, error) {
	var buf bytes.Buffer
	var args []any

	buf.WriteString(`
	SELECT r.id, r.slot_id, r.student_name, r.contact_phone, r.created_at,
	       COALESCE(sl.display_name, '')
	FROM registrations r
	LEFT JOIN slots sl ON sl.id = r.slot_id`)
	if slotID != nil && *slotID != "" {
		buf.WriteString(" WHERE r.slot_id = ?")
		args = append(args, *slotID)
	}
	buf.WriteString(" ORDER BY r.created_at DESC, r.id DESC")

	rows, err := s.db.QueryContext(ctx, buf.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RegistrationWithSlot
	for rows.Next() {
		var r RegistrationWithSlot
		if err := rows.Scan(&r.ID, &r.SlotID, &r.StudentName, &r.ContactPhone, &r.CreatedAt, &r.SlotDisplayName); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) Create(ctx context.Context, r Registration) error {
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO registrations (id, slot_id, student_name, contact_phone)
	VALUES (?, ?, ?, ?)`, r.ID, r.SlotID, r.StudentName, r.ContactPhone)
	return err
}

func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM registrations WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
