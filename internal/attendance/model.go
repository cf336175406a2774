package attendance

import "time"

const DateLayout = "2006-01-02"

// Attachment is one stored image, embedded in the record's JSON column as
// {name, data, size, type} with data a base64 data URI.
type Attachment struct {
	Name string `json:"name"`
	Data string `json:"data"`
	Size int    `json:"size"`
	Type string `json:"type"`
}

// Record maps the attendance table. Dates travel as "YYYY-MM-DD" strings,
// times as "HH:MM".
type Record struct {
	ID              string       `json:"id"`
	ClassID         string       `json:"class_id"`
	SlotID          string       `json:"slot_id"`
	AdminUserID     string       `json:"admin_user_id"`
	AttendanceDate  string       `json:"attendance_date"`
	AttendanceTime  *string      `json:"attendance_time,omitempty"`
	TotalStudents   int          `json:"total_students"`
	StudentsPresent int          `json:"students_present"`
	StudentsAbsent  int          `json:"students_absent"`
	StudentsOnLeave int          `json:"students_on_leave"`
	Notes           string       `json:"notes"`
	Attachments     []Attachment `json:"attachments"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// RecordWithClass is the tracking-view row with the class label joined in.
type RecordWithClass struct {
	Record
	ClassName     string `json:"class_name"`
	ClassDuration int    `json:"class_duration"`
}
