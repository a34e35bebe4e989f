package entities

// UserRole gates which lifecycle operations an actor may trigger.

type UserRole string

const (
	UserRoleClient   UserRole = "client"
	UserRoleEmployee UserRole = "employee"
)

// Actor is the identity supplied by the auth collaborator for each lifecycle
// operation. The use case re-validates the role itself instead of trusting
// the routing layer.

type Actor struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Role UserRole `json:"role"`
}
