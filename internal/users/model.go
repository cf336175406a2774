package users

const (
	RoleSlotAdmin  = "slot_admin"
	RoleSuperAdmin = "super_admin"
)

type User struct {
	ID             string  `json:"id"`
	Name           *string `json:"name,omitempty"`
	Username       string  `json:"username"`
	Role           string  `json:"role"`
	AssignedSlotID *string `json:"assigned_slot_id,omitempty"`
}

// UserWithSlot adds the slot label for the management table.
type UserWithSlot struct {
	User
	SlotDisplayName *string `json:"slot_display_name,omitempty"`
}

type CreateUserRequest struct {
	Name           *string `json:"name,omitempty"`
	Username       string  `json:"username" binding:"required"`
	Password       string  `json:"password" binding:"required"`
	AssignedSlotID *string `json:"assigned_slot_id,omitempty"`
}

type UpdateUserRequest struct {
	Name           *string `json:"name,omitempty"`
	Username       string  `json:"username" binding:"required"`
	Password       string  `json:"password,omitempty"` // blank keeps the current one
	AssignedSlotID *string `json:"assigned_slot_id,omitempty"`
}
