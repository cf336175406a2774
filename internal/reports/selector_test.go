package reports

import (
	"math"
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestBuildClassReportsQualifying(t *testing.T) {
	classes := []ClassDetail{
		{ID: "c1", Name: "Class 1"},
		{ID: "c2", Name: "Class 2"},
	}
	records := []RecordRef{
		{ClassID: "c1", SlotID: "s1", TotalStudents: 10},
		{ClassID: "c1", SlotID: "s2", TotalStudents: 12},
		{ClassID: "c2", SlotID: "s1", TotalStudents: 8},
	}

	got := BuildClassReports(classes, records, nil, 2)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Name != "Class 1" {
		t.Errorf("name = %q, want %q", got[0].Name, "Class 1")
	}
	if got[0].AttendanceCount != 2 {
		t.Errorf("attendanceCount = %d, want 2", got[0].AttendanceCount)
	}
}

func TestBuildClassReportsTotalStudentsSum(t *testing.T) {
	classes := []ClassDetail{{ID: "c1", Name: "Class 1"}}
	records := []RecordRef{
		{ClassID: "c1", SlotID: "s1", TotalStudents: 10},
		{ClassID: "c1", SlotID: "s2", TotalStudents: 12},
		{ClassID: "c1", SlotID: "s1", TotalStudents: 11},
	}

	got := BuildClassReports(classes, records, nil, 2)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].TotalStudents != 33 {
		t.Errorf("totalStudents = %d, want 33", got[0].TotalStudents)
	}
}

func TestBuildClassReportsNumericNameOrder(t *testing.T) {
	classes := []ClassDetail{
		{ID: "a", Name: "Class10"},
		{ID: "b", Name: "Class2"},
		{ID: "c", Name: "Class1"},
	}
	var records []RecordRef
	for _, c := range classes {
		records = append(records, RecordRef{ClassID: c.ID, SlotID: "s1", TotalStudents: 5})
	}

	got := BuildClassReports(classes, records, nil, 1)
	names := make([]string, len(got))
	for i, r := range got {
		names[i] = r.Name
	}
	want := []string{"Class1", "Class2", "Class10"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("order = %v, want %v", names, want)
	}
}

func TestBuildClassReportsNameWithoutDigitsSortsFirst(t *testing.T) {
	classes := []ClassDetail{
		{ID: "a", Name: "Class3"},
		{ID: "b", Name: "Tajweed"},
	}
	records := []RecordRef{
		{ClassID: "a", SlotID: "s1", TotalStudents: 5},
		{ClassID: "b", SlotID: "s1", TotalStudents: 5},
	}

	got := BuildClassReports(classes, records, nil, 1)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "Tajweed" {
		t.Errorf("first = %q, want %q", got[0].Name, "Tajweed")
	}
}

func TestBuildClassReportsTeacherNames(t *testing.T) {
	classes := []ClassDetail{{ID: "c1", Name: "Class 1"}}
	records := []RecordRef{
		{ClassID: "c1", SlotID: "s1", TotalStudents: 5},
		{ClassID: "c1", SlotID: "s2", TotalStudents: 5},
	}
	teachers := []Teacher{
		{Name: strPtr("Amina"), Username: "amina", AssignedSlotID: strPtr("s1")},
		{Name: nil, Username: "bilal", AssignedSlotID: strPtr("s2")},
		{Name: strPtr("Zaid"), Username: "zaid", AssignedSlotID: strPtr("s3")},
		{Name: strPtr("Yusuf"), Username: "yusuf", AssignedSlotID: nil},
	}

	got := BuildClassReports(classes, records, teachers, 2)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].TeacherNames != "Amina, bilal" {
		t.Errorf("teacherNames = %q, want %q", got[0].TeacherNames, "Amina, bilal")
	}
}

func TestBuildClassReportsNoTeachersFallsBackToNA(t *testing.T) {
	classes := []ClassDetail{{ID: "c1", Name: "Class 1"}}
	records := []RecordRef{{ClassID: "c1", SlotID: "s1", TotalStudents: 5}}

	got := BuildClassReports(classes, records, nil, 1)
	if got[0].TeacherNames != "N/A" {
		t.Errorf("teacherNames = %q, want %q", got[0].TeacherNames, "N/A")
	}
}

func TestBuildClassReportsDescriptionFallback(t *testing.T) {
	classes := []ClassDetail{
		{ID: "c1", Name: "Class 1", Description: strPtr("Juz Amma revision")},
		{ID: "c2", Name: "Class 2", Description: nil},
	}
	records := []RecordRef{
		{ClassID: "c1", SlotID: "s1", TotalStudents: 5},
		{ClassID: "c2", SlotID: "s1", TotalStudents: 5},
	}

	got := BuildClassReports(classes, records, nil, 1)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Description != "Juz Amma revision" {
		t.Errorf("description = %q", got[0].Description)
	}
	if got[1].Description != "N/A" {
		t.Errorf("empty description = %q, want %q", got[1].Description, "N/A")
	}
}

func TestOrderKey(t *testing.T) {
	cases := []struct {
		name string
		want int64
	}{
		{"Class10", 10},
		{"Class 2", 2},
		{"Tajweed", 0},
		{"3rd Group 7", 3},
		{"Class 99999999999999999999999", math.MaxInt64},
	}
	for _, tc := range cases {
		if got := orderKey(tc.name); got != tc.want {
			t.Errorf("orderKey(%q) = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestBuildClassReportsOverlongDigitRunSortsLast(t *testing.T) {
	classes := []ClassDetail{
		{ID: "a", Name: "Class 99999999999999999999999"},
		{ID: "b", Name: "Class 3"},
	}
	records := []RecordRef{
		{ClassID: "a", SlotID: "s1", TotalStudents: 5},
		{ClassID: "b", SlotID: "s1", TotalStudents: 5},
	}

	got := BuildClassReports(classes, records, nil, 1)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[1].Name != "Class 99999999999999999999999" {
		t.Errorf("last = %q, want the overlong name", got[1].Name)
	}
}
