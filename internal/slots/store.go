package slots

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

// List returns all slots in display order (slot_order ascending).
func (s *Store) List(ctx context.Context) ([]Slot, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, display_name, slot_order, max_registrations
	FROM slots
	ORDER BY slot_order ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Slot
	for rows.Next() {
		var sl Slot
		if err := rows.Scan(&sl.ID, &sl.DisplayName, &sl.SlotOrder, &sl.MaxRegistrations); err != nil {
			return nil, err
		}
		out = append(out, sl)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (*Slot, error) {
	row := s.db.QueryRowContext(ctx, `
	SELECT id, display_name, slot_order, max_registrations
	FROM slots WHERE id = ?`, id)

	var sl Slot
	if err := row.Scan(&sl.ID, &sl.DisplayName, &sl.SlotOrder, &sl.MaxRegistrations); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &sl, nil
}

func (s *Store) Create(ctx context.Context, sl Slot) error {
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO slots (id, display_name, slot_order, max_registrations)
	VALUES (?, ?, ?, ?)`, sl.ID, sl.DisplayName, sl.SlotOrder, sl.MaxRegistrations)
	return err
}

func (s *Store) Update(ctx context.Context, sl Slot) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
	UPDATE slots
	SET display_name = ?, slot_order = ?, max_registrations = ?
	WHERE id = ?`, sl.DisplayName, sl.SlotOrder, sl.MaxRegistrations, sl.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// RegistrationSlotIDs returns the slot reference of every registration,
// the raw input of the availability resolver.
func (s *Store) RegistrationSlotIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slot_id FROM registrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
