package user

import (
	"context"
	"fmt"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{UserRepository: userRepository}
}

// GetProfile implements user.UserService.
func (s *UserServiceImpl) GetProfile(ctx context.Context, userID string) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user.NewUserResponse(u), nil
}

// UpdateProfile implements user.UserService.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	profile := user.Profile{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Position:   req.Position,
		Department: req.Department,
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hashed := string(hash)
		profile.PasswordHash = &hashed
	}

	updated, err := s.UserRepository.UpdateProfile(ctx, userID, profile)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return user.NewUserResponse(updated), nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context, query user.ListUsersQuery) ([]user.UserResponse, error) {
	filter, err := query.Filter()
	if err != nil {
		return nil, err
	}

	users, err := s.UserRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return user.NewUserResponses(users), nil
}

// AdminUpdate implements user.UserService.
func (s *UserServiceImpl) AdminUpdate(ctx context.Context, adminID string, req user.AdminUpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}
	if req.ID == adminID && req.IsActive != nil && !*req.IsActive {
		return user.UserResponse{}, user.ErrCannotDeactivateSelf
	}

	updated, err := s.UserRepository.AdminUpdate(ctx, req.ID, req.Changes())
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update user: %w", err)
	}
	return user.NewUserResponse(updated), nil
}

// Deactivate implements user.UserService.
func (s *UserServiceImpl) Deactivate(ctx context.Context, adminID string, id string) (user.UserResponse, error) {
	inactive := false
	return s.AdminUpdate(ctx, adminID, user.AdminUpdateUserRequest{ID: id, IsActive: &inactive})
}
