package db

import (
	"context"
	"database/sql"
	"log"
)

// EnsureSchema creates the tables the application needs. Statements are
// idempotent so it is safe to run on every startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	log.Println("[INFO] ensuring database schema...")

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS slots (
			id               CHAR(26)     NOT NULL,
			display_name     VARCHAR(100) NOT NULL,
			slot_order       INT          NOT NULL,
			max_registrations INT         NULL,
			PRIMARY KEY (id),
			UNIQUE KEY uq_slots_order (slot_order)
		)`,
		`CREATE TABLE IF NOT EXISTS registrations (
			id            CHAR(26)     NOT NULL,
			slot_id       CHAR(26)     NOT NULL,
			student_name  VARCHAR(100) NOT NULL,
			contact_phone VARCHAR(30)  NOT NULL DEFAULT '',
			created_at    TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			KEY idx_registrations_slot (slot_id)
		)`,
		`CREATE TABLE IF NOT EXISTS classes (
			id               CHAR(26)     NOT NULL,
			name             VARCHAR(100) NOT NULL,
			duration_minutes INT          NOT NULL,
			description      TEXT         NULL,
			PRIMARY KEY (id)
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id               CHAR(26)     NOT NULL,
			name             VARCHAR(100) NULL,
			username         VARCHAR(100) NOT NULL,
			password_hash    VARCHAR(100) NOT NULL,
			role             VARCHAR(30)  NOT NULL,
			assigned_slot_id CHAR(26)     NULL,
			PRIMARY KEY (id),
			UNIQUE KEY uq_users_username (username)
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id                CHAR(26)  NOT NULL,
			class_id          CHAR(26)  NOT NULL,
			slot_id           CHAR(26)  NOT NULL,
			admin_user_id     CHAR(26)  NOT NULL,
			attendance_date   DATE      NOT NULL,
			attendance_time   VARCHAR(8) NULL,
			total_students    INT       NOT NULL,
			students_present  INT       NOT NULL,
			students_absent   INT       NOT NULL,
			students_on_leave INT       NOT NULL,
			notes             TEXT      NOT NULL,
			attachments       JSON      NOT NULL,
			created_at        TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at        TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			UNIQUE KEY uq_attendance_entry (class_id, slot_id, attendance_date),
			KEY idx_attendance_slot (slot_id),
			KEY idx_attendance_class (class_id)
		)`,
		"CREATE TABLE IF NOT EXISTS settings (\n\t\t\t`key`  VARCHAR(64)  NOT NULL,\n\t\t\tvalue  VARCHAR(255) NOT NULL,\n\t\t\tPRIMARY KEY (`key`)\n\t\t)",
	}

	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			log.Printf("[ERROR] schema statement failed: %v", err)
			return err
		}
	}

	log.Println("[INFO] schema ready")
	return nil
}
