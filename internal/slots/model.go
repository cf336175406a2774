package slots

// Slot is a recurring scheduled time block with a registration capacity.
type Slot struct {
	ID               string `json:"id"`
	DisplayName      string `json:"display_name"`
	SlotOrder        int    `json:"slot_order"`
	MaxRegistrations *int   `json:"max_registrations,omitempty"`
}

type CreateSlotRequest struct {
	DisplayName      string `json:"display_name" binding:"required"`
	SlotOrder        int    `json:"slot_order" binding:"required"`
	MaxRegistrations *int   `json:"max_registrations,omitempty"`
}

type UpdateSlotRequest struct {
	DisplayName      string `json:"display_name" binding:"required"`
	SlotOrder        int    `json:"slot_order" binding:"required"`
	MaxRegistrations *int   `json:"max_registrations,omitempty"`
}

// AvailableSlot is a slot that still has capacity, with the live count so
// the form can show "n of m taken".
type AvailableSlot struct {
	Slot
	RegisteredCount int `json:"registered_count"`
}
