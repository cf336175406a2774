package slots

// DefaultMaxRegistrations applies when a slot has no per-slot cap set.
const DefaultMaxRegistrations = 15

// CountPerSlot builds slot id → registration count in one scan.
// Registrations referencing an unknown slot id are ignored: they never
// increment any count and never error.
func CountPerSlot(all []Slot, registrationSlotIDs []string) map[string]int {
	counts := make(map[string]int, len(all))
	for _, s := range all {
		counts[s.ID] = 0
	}
	for _, id := range registrationSlotIDs {
		if _, ok := counts[id]; ok {
			counts[id]++
		}
	}
	return counts
}

// ResolveAvailable returns the slots whose registration count is strictly
// below their cap, preserving the input order of all.
func ResolveAvailable(all []Slot, registrationSlotIDs []string) []AvailableSlot {
	counts := CountPerSlot(all, registrationSlotIDs)

	out := make([]AvailableSlot, 0, len(all))
	for _, s := range all {
		max := DefaultMaxRegistrations
		if s.MaxRegistrations != nil && *s.MaxRegistrations > 0 {
			max = *s.MaxRegistrations
		}
		if counts[s.ID] < max {
			out = append(out, AvailableSlot{Slot: s, RegisteredCount: counts[s.ID]})
		}
	}
	return out
}
