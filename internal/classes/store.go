package classes

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

func (s *Store) List(ctx context.Context) ([]Class, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, name, duration_minutes, description
	FROM classes
	ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Class
	for rows.Next() {
		var c Class
		if err := rows.Scan(&c.ID, &c.Name, &c.DurationMinutes, &c.Description); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (*Class, error) {
	row := s.db.QueryRowContext(ctx, `
	SELECT id, name, duration_minutes, description
	FROM classes WHERE id = ?`, id)

	var c Class
	if err := row.Scan(&c.ID, &c.Name, &c.DurationMinutes, &c.Description); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (s *Store) Create(ctx context.Context, c Class) error {
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO classes (id, name, duration_minutes, description)
	VALUES (?, ?, ?, ?)`, c.ID, c.Name, c.DurationMinutes, c.Description)
	return err
}

func (s *Store) Update(ctx context.Context, c Class) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
	UPDATE classes
	SET name = ?, duration_minutes = ?, description = ?
	WHERE id = ?`, c.Name, c.DurationMinutes, c.Description, c.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM classes WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
