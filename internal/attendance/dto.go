package attendance

// NewAttachment is an uploaded file before validation. Data may be either a
// bare base64 payload or a full data URI; the validator normalizes it.
type NewAttachment struct {
	Name string `json:"name" binding:"required"`
	Data string `json:"data" binding:"required"`
	Type string `json:"type" binding:"required"`
}

type CreateRecordRequest struct {
	ClassID         string          `json:"class_id" binding:"required"`
	AttendanceDate  string          `json:"attendance_date" binding:"required"`
	AttendanceTime  *string         `json:"attendance_time,omitempty"`
	TotalStudents   int             `json:"total_students"`
	StudentsPresent int             `json:"students_present"`
	StudentsAbsent  int             `json:"students_absent"`
	StudentsOnLeave int             `json:"students_on_leave"`
	Notes           string          `json:"notes"`
	Attachments     []NewAttachment `json:"attachments"`
}

type UpdateRecordRequest struct {
	ClassID         string          `json:"class_id" binding:"required"`
	AttendanceDate  string          `json:"attendance_date" binding:"required"`
	AttendanceTime  *string         `json:"attendance_time,omitempty"`
	TotalStudents   int             `json:"total_students"`
	StudentsPresent int             `json:"students_present"`
	StudentsAbsent  int             `json:"students_absent"`
	StudentsOnLeave int             `json:"students_on_leave"`
	Notes           string          `json:"notes"`
	Attachments     []NewAttachment `json:"attachments"` // appended to the stored ones
}
