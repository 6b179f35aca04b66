package user

import "context"

type UserService interface {
	GetProfile(ctx context.Context, userID string) (UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (UserResponse, error)
	List(ctx context.Context, query ListUsersQuery) ([]UserResponse, error)
	AdminUpdate(ctx context.Context, adminID string, req AdminUpdateUserRequest) (UserResponse, error)
	Deactivate(ctx context.Context, adminID string, id string) (UserResponse, error)
}
