package registrations

import "time"

type Registration struct {
	ID           string    `json:"id"`
	SlotID       string    `json:"slot_id"`
	StudentName  string    `json:"student_name"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateRegistrationRequest struct {
	SlotID       string `json:"slot_id" binding:"required"`
	StudentName  string `json:"student_name" binding:"required"`
	ContactPhone string `json:"contact_phone,omitempty"`
}

// RegistrationWithSlot is the admin list row with the slot label joined in.
type RegistrationWithSlot struct {
	Registration
	SlotDisplayName string `json:"slot_display_name"`
}
