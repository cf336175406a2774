package reports

// Source projections for the report selector.

type ClassDetail struct {
	ID          string
	Name        string
	Description *string
}

type RecordRef struct {
	ClassID       string
	SlotID        string
	TotalStudents int
}

type Teacher struct {
	Name           *string
	Username       string
	AssignedSlotID *string
}

// ClassReport is one section of the exported document.
type ClassReport struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	TotalStudents   int    `json:"total_students"`
	TeacherNames    string `json:"teacher_names"`
	AttendanceCount int    `json:"attendance_count"`
}

type Response struct {
	Classes   []ClassReport `json:"classes"`
	SlotCount int           `json:"slot_count"`
}
