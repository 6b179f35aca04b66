package user

import (
	"strings"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Role         Role    `json:"role"`
	Position     *string `json:"position"`
	Department   *string `json:"department"`
	IsActive     bool    `json:"is_active"`
	RejectedAt   *string `json:"rejected_at,omitempty"`
	RegisteredAt string  `json:"registered_at"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func NewUserResponse(u User) UserResponse {
	resp := UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         u.Role,
		Position:     u.Position,
		Department:   u.Department,
		IsActive:     u.IsActive,
		RegisteredAt: u.RegisteredAt.Format(time.RFC3339),
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    u.UpdatedAt.Format(time.RFC3339),
	}
	if u.RejectedAt != nil {
		s := u.RejectedAt.Format(time.RFC3339)
		resp.RejectedAt = &s
	}
	return resp
}

func NewUserResponses(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

type UpdateProfileRequest struct {
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	Password   *string `json:"password,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not be empty",
		})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not be empty",
		})
	}
	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdminUpdateUserRequest struct {
	ID         string  `json:"id"`
	Role       *string `json:"role,omitempty"`
	IsActive   *bool   `json:"isActive,omitempty"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
}

func (r *AdminUpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Role != nil {
		role := Role(strings.ToUpper(*r.Role))
		if !role.Valid() {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "role must be one of STAFF, ADMIN",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *AdminUpdateUserRequest) Changes() AdminChanges {
	changes := AdminChanges{
		IsActive:   r.IsActive,
		Position:   r.Position,
		Department: r.Department,
	}
	if r.Role != nil {
		role := Role(strings.ToUpper(*r.Role))
		changes.Role = &role
	}
	return changes
}

// ListUsersQuery is parsed from ?role=&isActive=
type ListUsersQuery struct {
	Role     string
	IsActive string
}

func (q ListUsersQuery) Filter() (ListFilter, error) {
	var (
		filter ListFilter
		errs   validator.ValidationErrors
	)

	if q.Role != "" {
		role := Role(strings.ToUpper(q.Role))
		if !role.Valid() {
			errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of STAFF, ADMIN"})
		} else {
			filter.Role = &role
		}
	}

	switch strings.ToLower(q.IsActive) {
	case "":
	case "true":
		v := true
		filter.IsActive = &v
	case "false":
		v := false
		filter.IsActive = &v
	default:
		errs = append(errs, validator.ValidationError{Field: "isActive", Message: "isActive must be true or false"})
	}

	if len(errs) > 0 {
		return ListFilter{}, errs
	}
	return filter, nil
}
