package analytics

// Input projections for the aggregations. These are deliberately narrow so
// the aggregation is a total function of the fetched sets.

type ClassInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SlotInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// SlotAdmin is a user with role slot_admin; the assigned slot may be unset.
type SlotAdmin struct {
	ID             string  `json:"id"`
	Username       string  `json:"username"`
	AssignedSlotID *string `json:"assigned_slot_id,omitempty"`
}

type RecordInfo struct {
	ID              string `json:"id"`
	ClassID         string `json:"class_id"`
	SlotID          string `json:"slot_id"`
	AttendanceDate  string `json:"attendance_date"`
	TotalStudents   int    `json:"total_students"`
	StudentsPresent int    `json:"students_present"`
	StudentsAbsent  int    `json:"students_absent"`
	StudentsOnLeave int    `json:"students_on_leave"`
	ClassName       string `json:"class_name"`
	SlotDisplayName string `json:"slot_display_name"`
}

// ClassTotals is the all-time aggregate for one class.
type ClassTotals struct {
	ClassID         string  `json:"class_id"`
	Name            string  `json:"name"`
	TotalStudents   int     `json:"total_students"`
	StudentsPresent int     `json:"students_present"`
	StudentsAbsent  int     `json:"students_absent"`
	StudentsOnLeave int     `json:"students_on_leave"`
	RecordCount     int     `json:"record_count"`
	AttendanceRate  float64 `json:"attendance_rate"`
}

// MissingGroup lists the classes one admin has never entered attendance
// for, keyed the way the dashboard displays it: "username (slot name)".
type MissingGroup struct {
	Admin   string   `json:"admin"`
	Classes []string `json:"classes"`
}

type Response struct {
	ClassTotals    []ClassTotals  `json:"class_totals"`
	MissingByAdmin []MissingGroup `json:"missing_by_admin"`
	Records        []RecordInfo   `json:"records"`
	SlotCount      int            `json:"slot_count"`
}
