package reports

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(ctx context.Context, q string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, q string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, q string, args ...any) *sql.Row
}

// Store reads the projections the report selector needs. Read-only.
type Store struct{ db DBTX }

func NewStore(db DBTX) *Store { return &Store{db: db} }

func (s *Store) Classes(ctx context.Context) ([]ClassDetail, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, description FROM classes ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ClassDetail
	for rows.Next() {
		var c ClassDetail
		var desc sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &desc); err != nil {
			return nil, err
		}
		if desc.Valid {
			c.Description = &desc.String
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) Records(ctx context.Context) ([]RecordRef, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT class_id, slot_id, total_students FROM attendance`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecordRef
	for rows.Next() {
		var r RecordRef
		if err := rows.Scan(&r.ClassID, &r.SlotID, &r.TotalStudents); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) Teachers(ctx context.Context) ([]Teacher, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, username, assigned_slot_id FROM users WHERE role = 'slot_admin'`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Teacher
	for rows.Next() {
		var t Teacher
		var name, slotID sql.NullString
		if err := rows.Scan(&name, &t.Username, &slotID); err != nil {
			return nil, err
		}
		if name.Valid {
			t.Name = &name.String
		}
		if slotID.Valid {
			t.AssignedSlotID = &slotID.String
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) SlotCount(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM slots`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
