package slots

import "testing"

func intPtr(n int) *int { return &n }

func slotIDs(out []AvailableSlot) []string {
	ids := make([]string, len(out))
	for i, s := range out {
		ids[i] = s.ID
	}
	return ids
}

func TestResolveAvailable_FiltersFullSlots(t *testing.T) {
	all := []Slot{
		{ID: "a", DisplayName: "Morning", SlotOrder: 1, MaxRegistrations: intPtr(2)},
		{ID: "b", DisplayName: "Noon", SlotOrder: 2, MaxRegistrations: intPtr(3)},
		{ID: "c", DisplayName: "Evening", SlotOrder: 3},
	}
	regs := []string{"a", "a", "b"}

	out := ResolveAvailable(all, regs)

	got := slotIDs(out)
	want := []string{"b", "c"}
	if len(got) != len(want) {
		t.Fatalf("available = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("available[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if out[0].RegisteredCount != 1 {
		t.Errorf("count for b = %d, want 1", out[0].RegisteredCount)
	}
}

func TestResolveAvailable_DefaultCapIs15(t *testing.T) {
	all := []Slot{{ID: "a", DisplayName: "Morning", SlotOrder: 1}}

	regs := make([]string, 14)
	for i := range regs {
		regs[i] = "a"
	}
	if out := ResolveAvailable(all, regs); len(out) != 1 {
		t.Fatalf("slot with 14/15 registrations should be available, got %d slots", len(out))
	}

	regs = append(regs, "a")
	if out := ResolveAvailable(all, regs); len(out) != 0 {
		t.Fatalf("slot at default cap should be excluded, got %d slots", len(out))
	}
}

func TestResolveAvailable_UnknownSlotIDsIgnored(t *testing.T) {
	all := []Slot{{ID: "a", DisplayName: "Morning", SlotOrder: 1, MaxRegistrations: intPtr(1)}}
	regs := []string{"ghost", "ghost", "ghost"}

	out := ResolveAvailable(all, regs)
	if len(out) != 1 {
		t.Fatalf("unknown registrations must not consume capacity, got %d slots", len(out))
	}
	if out[0].RegisteredCount != 0 {
		t.Errorf("count = %d, want 0", out[0].RegisteredCount)
	}
}

func TestResolveAvailable_PreservesInputOrder(t *testing.T) {
	all := []Slot{
		{ID: "z", DisplayName: "Late", SlotOrder: 3},
		{ID: "m", DisplayName: "Mid", SlotOrder: 2},
		{ID: "a", DisplayName: "Early", SlotOrder: 1},
	}

	out := ResolveAvailable(all, nil)
	got := slotIDs(out)
	want := []string{"z", "m", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestResolveAvailable_EmptyInputs(t *testing.T) {
	if out := ResolveAvailable(nil, nil); len(out) != 0 {
		t.Errorf("no slots should resolve to no availability, got %d", len(out))
	}
}
