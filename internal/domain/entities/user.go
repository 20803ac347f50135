package entities

// UserRole separates dashboard administrators from field specialists.

type UserRole string

const (
	RoleAdmin        UserRole = "ADMIN"
	RoleEspecialista UserRole = "ESPECIALISTA"
)

// User is a staff account.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (email-index): email
//
// Admins are created via registration (external auth provider); specialists
// are created by an admin and are the only role that can be hard-deleted.

type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// Actor is the authenticated identity attached to a request by the auth
// collaborator. The core treats it as read-only input.
type Actor struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Role UserRole `json:"role"`
}
