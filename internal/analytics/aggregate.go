package analytics

import "math"

// Rate is present/total as a percentage, one decimal place, 0 when total
// is 0.
func Rate(present, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*1000) / 10
}

// AggregateClassTotals sums every record of each class. Records referencing
// unknown class ids are skipped, mirroring how the dashboard only renders
// known classes.
func AggregateClassTotals(classes []ClassInfo, records []RecordInfo) []ClassTotals {
	index := make(map[string]int, len(classes))
	out := make([]ClassTotals, len(classes))
	for i, c := range classes {
		index[c.ID] = i
		out[i] = ClassTotals{ClassID: c.ID, Name: c.Name}
	}

	for _, r := range records {
		i, ok := index[r.ClassID]
		if !ok {
			continue
		}
		out[i].TotalStudents += r.TotalStudents
		out[i].StudentsPresent += r.StudentsPresent
		out[i].StudentsAbsent += r.StudentsAbsent
		out[i].StudentsOnLeave += r.StudentsOnLeave
		out[i].RecordCount++
	}

	for i := range out {
		out[i].AttendanceRate = Rate(out[i].StudentsPresent, out[i].TotalStudents)
	}
	return out
}

// DetectMissing flags every (slot admin, class) pair with no attendance
// record for that admin's slot, any date. One record ever is permanent
// coverage. Admins without an assigned slot match nothing and are flagged
// for every class under "Unknown Slot".
func DetectMissing(admins []SlotAdmin, slots []SlotInfo, classes []ClassInfo, records []RecordInfo) []MissingGroup {
	slotNames := make(map[string]string, len(slots))
	for _, s := range slots {
		slotNames[s.ID] = s.DisplayName
	}

	// covered (slot, class) pairs across all history
	covered := make(map[[2]string]struct{}, len(records))
	for _, r := range records {
		covered[[2]string{r.SlotID, r.ClassID}] = struct{}{}
	}

	var out []MissingGroup
	for _, admin := range admins {
		slotName := "Unknown Slot"
		slotID := ""
		if admin.AssignedSlotID != nil {
			slotID = *admin.AssignedSlotID
			if name, ok := slotNames[slotID]; ok {
				slotName = name
			}
		}

		var missing []string
		for _, c := range classes {
			entered := false
			if slotID != "" {
				_, entered = covered[[2]string{slotID, c.ID}]
			}
			if !entered {
				missing = append(missing, c.Name)
			}
		}
		if len(missing) > 0 {
			out = append(out, MissingGroup{
				Admin:   admin.Username + " (" + slotName + ")",
				Classes: missing,
			})
		}
	}
	return out
}
