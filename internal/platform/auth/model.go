package auth

const (
	RoleSuperAdmin = "super_admin"
	RoleSlotAdmin  = "slot_admin"
)

// Identity is the logged-in admin as exposed to clients and carried in the
// token claims.
type Identity struct {
	ID             string  `json:"id"`
	Name           *string `json:"name,omitempty"`
	Username       string  `json:"username"`
	Role           string  `json:"role"`
	AssignedSlotID *string `json:"assigned_slot_id,omitempty"`
}

type account struct {
	ID             string
	Name           *string
	Username       string
	PasswordHash   string
	Role           string
	AssignedSlotID *string
}

func (a account) identity() Identity {
	return Identity{
		ID:             a.ID,
		Name:           a.Name,
		Username:       a.Username,
		Role:           a.Role,
		AssignedSlotID: a.AssignedSlotID,
	}
}
