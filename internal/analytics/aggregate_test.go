package analytics

import "testing"

func strPtr(s string) *string { return &s }

func TestAggregateClassTotals_SumsPerClass(t *testing.T) {
	classes := []ClassInfo{{ID: "c1", Name: "Class1"}, {ID: "c2", Name: "Class2"}}
	records := []RecordInfo{
		{ClassID: "c1", SlotID: "s1", TotalStudents: 30, StudentsPresent: 20, StudentsAbsent: 5, StudentsOnLeave: 5},
		{ClassID: "c1", SlotID: "s2", TotalStudents: 30, StudentsPresent: 28, StudentsAbsent: 2, StudentsOnLeave: 0},
		{ClassID: "c2", SlotID: "s1", TotalStudents: 10, StudentsPresent: 10, StudentsAbsent: 0, StudentsOnLeave: 0},
	}

	out := AggregateClassTotals(classes, records)
	if len(out) != 2 {
		t.Fatalf("got %d totals, want 2", len(out))
	}

	c1 := out[0]
	if c1.TotalStudents != 60 || c1.StudentsPresent != 48 || c1.StudentsAbsent != 7 || c1.StudentsOnLeave != 5 {
		t.Errorf("c1 sums = %+v", c1)
	}
	if c1.RecordCount != 2 {
		t.Errorf("c1 record count = %d, want 2", c1.RecordCount)
	}
	if c1.AttendanceRate != 80.0 {
		t.Errorf("c1 rate = %v, want 80.0", c1.AttendanceRate)
	}
	if out[1].AttendanceRate != 100.0 {
		t.Errorf("c2 rate = %v, want 100.0", out[1].AttendanceRate)
	}
}

func TestAggregateClassTotals_ClassWithoutRecords(t *testing.T) {
	classes := []ClassInfo{{ID: "c1", Name: "Class1"}}

	out := AggregateClassTotals(classes, nil)
	if out[0].RecordCount != 0 || out[0].TotalStudents != 0 {
		t.Errorf("empty class should aggregate to zero, got %+v", out[0])
	}
	if out[0].AttendanceRate != 0 {
		t.Errorf("rate with zero total = %v, want 0", out[0].AttendanceRate)
	}
}

func TestAggregateClassTotals_UnknownClassIgnored(t *testing.T) {
	classes := []ClassInfo{{ID: "c1", Name: "Class1"}}
	records := []RecordInfo{{ClassID: "ghost", TotalStudents: 99, StudentsPresent: 99}}

	out := AggregateClassTotals(classes, records)
	if out[0].TotalStudents != 0 {
		t.Errorf("record for unknown class must not affect totals, got %d", out[0].TotalStudents)
	}
}

func TestRate_OneDecimalPlace(t *testing.T) {
	tests := []struct {
		present, total int
		want           float64
	}{
		{20, 30, 66.7},
		{1, 3, 33.3},
		{0, 0, 0},
		{5, 0, 0},
		{10, 10, 100},
	}
	for _, tt := range tests {
		if got := Rate(tt.present, tt.total); got != tt.want {
			t.Errorf("Rate(%d, %d) = %v, want %v", tt.present, tt.total, got, tt.want)
		}
	}
}

func TestDetectMissing_FlagsUncoveredPairs(t *testing.T) {
	admins := []SlotAdmin{
		{ID: "u1", Username: "aisha", AssignedSlotID: strPtr("s1")},
		{ID: "u2", Username: "bilal", AssignedSlotID: strPtr("s2")},
	}
	slots := []SlotInfo{{ID: "s1", DisplayName: "Fajr"}, {ID: "s2", DisplayName: "Asr"}}
	classes := []ClassInfo{{ID: "c1", Name: "Class1"}, {ID: "c2", Name: "Class2"}}
	records := []RecordInfo{
		{ClassID: "c1", SlotID: "s1", AttendanceDate: "2020-01-01"},
		{ClassID: "c1", SlotID: "s2", AttendanceDate: "2025-06-01"},
		{ClassID: "c2", SlotID: "s2", AttendanceDate: "2025-06-01"},
	}

	out := DetectMissing(admins, slots, classes, records)
	if len(out) != 1 {
		t.Fatalf("got %d groups, want 1", len(out))
	}
	if out[0].Admin != "aisha (Fajr)" {
		t.Errorf("group key = %q, want %q", out[0].Admin, "aisha (Fajr)")
	}
	if len(out[0].Classes) != 1 || out[0].Classes[0] != "Class2" {
		t.Errorf("missing classes = %v, want [Class2]", out[0].Classes)
	}
}

func TestDetectMissing_SingleOldRecordIsPermanentCoverage(t *testing.T) {
	admins := []SlotAdmin{{ID: "u1", Username: "aisha", AssignedSlotID: strPtr("s1")}}
	slots := []SlotInfo{{ID: "s1", DisplayName: "Fajr"}}
	classes := []ClassInfo{{ID: "c1", Name: "Class1"}}
	records := []RecordInfo{{ClassID: "c1", SlotID: "s1", AttendanceDate: "2019-01-01"}}

	if out := DetectMissing(admins, slots, classes, records); len(out) != 0 {
		t.Errorf("a record from any date counts as coverage, got %v", out)
	}
}

func TestDetectMissing_AdminWithoutSlot(t *testing.T) {
	admins := []SlotAdmin{{ID: "u1", Username: "umar"}}
	classes := []ClassInfo{{ID: "c1", Name: "Class1"}, {ID: "c2", Name: "Class2"}}
	records := []RecordInfo{{ClassID: "c1", SlotID: "s1"}}

	out := DetectMissing(admins, nil, classes, records)
	if len(out) != 1 {
		t.Fatalf("unassigned admin should be flagged, got %d groups", len(out))
	}
	if out[0].Admin != "umar (Unknown Slot)" {
		t.Errorf("group key = %q, want %q", out[0].Admin, "umar (Unknown Slot)")
	}
	if len(out[0].Classes) != 2 {
		t.Errorf("unassigned admin misses every class, got %v", out[0].Classes)
	}
}

func TestDetectMissing_NoAdmins(t *testing.T) {
	if out := DetectMissing(nil, nil, []ClassInfo{{ID: "c1", Name: "C"}}, nil); len(out) != 0 {
		t.Errorf("no admins means nothing to flag, got %v", out)
	}
}
