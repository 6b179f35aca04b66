package user

import "time"

type Role string

const (
	RoleStaff Role = "STAFF"
	RoleAdmin Role = "ADMIN"
)

func (r Role) Valid() bool {
	return r == RoleStaff || r == RoleAdmin
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	Position     *string
	Department   *string
	IsActive     bool
	RejectedAt   *time.Time
	RegisteredAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsRejected reports whether the registration was turned down by an admin.
func (u *User) IsRejected() bool {
	return u.RejectedAt != nil
}

// IsPending reports whether the account still waits for an admin decision.
func (u *User) IsPending() bool {
	return !u.IsActive && u.RejectedAt == nil
}

func (u *User) Summary() Summary {
	return Summary{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// Summary is the owner block attached to listings.
type Summary struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Profile holds the self-editable fields. Nil means unchanged.
type Profile struct {
	FirstName    *string
	LastName     *string
	Position     *string
	Department   *string
	PasswordHash *string
}

// AdminChanges holds the fields an admin can change. Nil means unchanged.
type AdminChanges struct {
	Role       *Role
	IsActive   *bool
	Position   *string
	Department *string
}

type ListFilter struct {
	Role     *Role
	IsActive *bool
}
