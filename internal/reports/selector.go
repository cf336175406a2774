package reports

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var firstNumber = regexp.MustCompile(`\d+`)

// orderKey extracts the first integer token of a class name so that
// "Class 10" sorts after "Class 2". Names without digits sort first; a
// digit run too long for int64 saturates and sorts last.
func orderKey(name string) int64 {
	m := firstNumber.FindString(name)
	if m == "" {
		return 0
	}
	n, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return math.MaxInt64
	}
	return n
}

// BuildClassReports selects the classes that qualify for the report and
// aggregates their totals. A class qualifies when it has at least one
// attendance record per schedule slot.
func BuildClassReports(classes []ClassDetail, records []RecordRef, teachers []Teacher, slotCount int) []ClassReport {
	byClass := make(map[string][]RecordRef)
	for _, r := range records {
		byClass[r.ClassID] = append(byClass[r.ClassID], r)
	}

	out := make([]ClassReport, 0, len(classes))
	for _, c := range classes {
		recs := byClass[c.ID]
		if len(recs) < slotCount {
			continue
		}

		slotSet := make(map[string]struct{})
		totalStudents := 0
		for _, r := range recs {
			slotSet[r.SlotID] = struct{}{}
			totalStudents += r.TotalStudents
		}

		desc := "N/A"
		if c.Description != nil && strings.TrimSpace(*c.Description) != "" {
			desc = *c.Description
		}

		out = append(out, ClassReport{
			Name:            c.Name,
			Description:     desc,
			TotalStudents:   totalStudents,
			TeacherNames:    teacherNames(teachers, slotSet),
			AttendanceCount: len(recs),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return orderKey(out[i].Name) < orderKey(out[j].Name)
	})
	return out
}

// teacherNames joins the display names of slot admins whose assigned slot
// appears among the class's attendance records.
func teacherNames(teachers []Teacher, slotSet map[string]struct{}) string {
	seen := make(map[string]struct{})
	names := make([]string, 0, len(teachers))
	for _, t := range teachers {
		if t.AssignedSlotID == nil {
			continue
		}
		if _, ok := slotSet[*t.AssignedSlotID]; !ok {
			continue
		}
		name := t.Username
		if t.Name != nil && strings.TrimSpace(*t.Name) != "" {
			name = *t.Name
		}
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	if len(names) == 0 {
		return "N/A"
	}
	return strings.Join(names, ", ")
}
