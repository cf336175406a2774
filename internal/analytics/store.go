package analytics

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(ctx context.Context, q string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, q string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, q string, args ...any) *sql.Row
}

// Store reads the projections the aggregations need. Read-only.
type Store struct{ db DBTX }

func NewStore(db DBTX) *Store { return &Store{db: db} }

func (s *Store) Classes(ctx context.Context) ([]ClassInfo, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM classes ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ClassInfo
	for rows.Next() {
		var c ClassInfo
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) Slots(ctx context.Context) ([]SlotInfo, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, display_name FROM slots ORDER BY slot_order ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SlotInfo
	for rows.Next() {
		var sl SlotInfo
		if err := rows.Scan(&sl.ID, &sl.DisplayName); err != nil {
			return nil, err
		}
		out = append(out, sl)
	}
	return out, rows.Err()
}

func (s *Store) SlotAdmins(ctx context.Context) ([]SlotAdmin, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, username, assigned_slot_id
	FROM users WHERE role = 'slot_admin'`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SlotAdmin
	for rows.Next() {
		var a SlotAdmin
		if err := rows.Scan(&a.ID, &a.Username, &a.AssignedSlotID); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Records returns all attendance rows with class and slot labels, newest
// date first.
func (s *Store) Records(ctx context.Context) ([]RecordInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT a.id, a.class_id, a.slot_id,
	       DATE_FORMAT(a.attendance_date, '%Y-%m-%d') AS attendance_date,
	       a.total_students, a.students_present, a.students_absent, a.students_on_leave,
	       COALESCE(c.name, ''), COALESCE(sl.display_name, '')
	FROM attendance a
	LEFT JOIN classes c ON c.id = a.class_id
	LEFT JOIN slots sl ON sl.id = a.slot_id
	ORDER BY a.attendance_date DESC, a.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecordInfo
	for rows.Next() {
		var r RecordInfo
		if err := rows.Scan(
			&r.ID, &r.ClassID, &r.SlotID, &r.AttendanceDate,
			&r.TotalStudents, &r.StudentsPresent, &r.StudentsAbsent, &r.StudentsOnLeave,
			&r.ClassName, &r.SlotDisplayName,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
