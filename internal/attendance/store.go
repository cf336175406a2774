package attendance

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type DBTX interface {
	ExecContext(ctx context.Context, q string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, q string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, q string, args ...any) *sql.Row
}

type Store struct{ db DBTX }

func NewStore(db DBTX) *Store { return &Store{db: db} }

type recordRow struct {
	ID              string
	ClassID         string
	SlotID          string
	AdminUserID     string
	AttendanceDate  string
	AttendanceTime  *string
	TotalStudents   int
	StudentsPresent int
	StudentsAbsent  int
	StudentsOnLeave int
	Notes           string
	AttachmentsJSON []byte
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (r recordRow) toModel() (Record, error) {
	var atts []Attachment
	if len(r.AttachmentsJSON) > 0 {
		if err := json.Unmarshal(r.AttachmentsJSON, &atts); err != nil {
			return Record{}, err
		}
	}
	if atts == nil {
		atts = []Attachment{}
	}
	return Record{
		ID:              r.ID,
		ClassID:         r.ClassID,
		SlotID:          r.SlotID,
		AdminUserID:     r.AdminUserID,
		AttendanceDate:  r.AttendanceDate,
		AttendanceTime:  r.AttendanceTime,
		TotalStudents:   r.TotalStudents,
		StudentsPresent: r.StudentsPresent,
		StudentsAbsent:  r.StudentsAbsent,
		StudentsOnLeave: r.StudentsOnLeave,
		Notes:           r.Notes,
		Attachments:     atts,
		CreatedAt:       r.CreatedAt.UTC(),
		UpdatedAt:       r.UpdatedAt.UTC(),
	}, nil
}

const selectColumns = `
	a.id, a.class_id, a.slot_id, a.admin_user_id,
	DATE_FORMAT(a.attendance_date, '%Y-%m-%d') AS attendance_date,
	a.attendance_time, a.total_students, a.students_present,
	a.students_absent, a.students_on_leave, a.notes, a.attachments,
	a.created_at, a.updated_at`

// List returns records joined with the class label, optionally restricted
// to one slot, newest date first.
func (s *Store) List(ctx context.Context, slotID *string) ([]RecordWithClass, error) {
	var buf bytes.Buffer
	var args []any

	buf.WriteString(`SELECT` + selectColumns + `,
	COALESCE(c.name, ''), COALESCE(c.duration_minutes, 0)
	FROM attendance a
	LEFT JOIN classes c ON c.id = a.class_id`)
	if slotID != nil && *slotID != "" {
		buf.WriteString(" WHERE a.slot_id = ?")
		args = append(args, *slotID)
	}
	buf.WriteString(" ORDER BY a.attendance_date DESC, a.id DESC")

	rows, err := s.db.QueryContext(ctx, buf.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecordWithClass
	for rows.Next() {
		var r recordRow
		var rec RecordWithClass
		if err := rows.Scan(
			&r.ID, &r.ClassID, &r.SlotID, &r.AdminUserID, &r.AttendanceDate,
			&r.AttendanceTime, &r.TotalStudents, &r.StudentsPresent,
			&r.StudentsAbsent, &r.StudentsOnLeave, &r.Notes, &r.AttachmentsJSON,
			&r.CreatedAt, &r.UpdatedAt, &rec.ClassName, &rec.ClassDuration,
		); err != nil {
			return nil, err
		}
		m, err := r.toModel()
		if err != nil {
			return nil, err
		}
		rec.Record = m
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT`+selectColumns+`
	FROM attendance a WHERE a.id = ?`, id)

	var r recordRow
	if err := row.Scan(
		&r.ID, &r.ClassID, &r.SlotID, &r.AdminUserID, &r.AttendanceDate,
		&r.AttendanceTime, &r.TotalStudents, &r.StudentsPresent,
		&r.StudentsAbsent, &r.StudentsOnLeave, &r.Notes, &r.AttachmentsJSON,
		&r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	m, err := r.toModel()
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Exists reports whether a record for (class, slot, date) is already
// present. This is the early hint; the unique key is the real guard.
func (s *Store) Exists(ctx context.Context, classID, slotID, date string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `
	SELECT 1 FROM attendance
	WHERE class_id = ? AND slot_id = ? AND attendance_date = ? LIMIT 1`,
		classID, slotID, date,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) Insert(ctx context.Context, r Record) error {
	atts, err := json.Marshal(r.Attachments)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
	INSERT INTO attendance
	(id, class_id, slot_id, admin_user_id, attendance_date, attendance_time,
	 total_students, students_present, students_absent, students_on_leave,
	 notes, attachments)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.ClassID, r.SlotID, r.AdminUserID, r.AttendanceDate, r.AttendanceTime,
		r.TotalStudents, r.StudentsPresent, r.StudentsAbsent, r.StudentsOnLeave,
		r.Notes, atts)
	return err
}

func (s *Store) Update(ctx context.Context, r Record) (int64, error) {
	atts, err := json.Marshal(r.Attachments)
	if err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, `
	UPDATE attendance
	SET class_id = ?, attendance_date = ?, attendance_time = ?,
	    total_students = ?, students_present = ?, students_absent = ?,
	    students_on_leave = ?, notes = ?, attachments = ?
	WHERE id = ?`,
		r.ClassID, r.AttendanceDate, r.AttendanceTime,
		r.TotalStudents, r.StudentsPresent, r.StudentsAbsent,
		r.StudentsOnLeave, r.Notes, atts, r.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) UpdateAttachments(ctx context.Context, id string, atts []Attachment) error {
	buf, err := json.Marshal(atts)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `UPDATE attendance SET attachments = ? WHERE id = ?`, buf, id)
	return err
}

func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM attendance WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
