package settings

const (
	KeyFormTitle       = "form_title"
	KeyMaxRegsPerSlot  = "max_registrations_per_slot"
	KeyMaxAttachmentKB = "max_attachment_size_kb"

	DefaultFormTitle    = "Hifz Registration Form"
	DefaultMaxRegsValue = "15"
	// Default shown on the settings screen when no row exists yet.
	DefaultMaxAttachmentValue = "400"
	// Limit enforced on uploads when the key is absent. Differs from the
	// settings-screen default on purpose, matching the historic behavior of
	// the tracking form.
	FallbackAttachmentKB = 200

	MinRegsPerSlot  = 1
	MaxRegsPerSlot  = 100
	MinAttachmentKB = 1
	MaxAttachmentKB = 10240
)

type Response struct {
	FormTitle           string `json:"form_title"`
	MaxRegsPerSlot      string `json:"max_registrations_per_slot"`
	MaxAttachmentSizeKB string `json:"max_attachment_size_kb"`
}

type UpdateRequest struct {
	FormTitle           string `json:"form_title" binding:"required"`
	MaxRegsPerSlot      int    `json:"max_registrations_per_slot" binding:"required"`
	MaxAttachmentSizeKB int    `json:"max_attachment_size_kb" binding:"required"`
}
