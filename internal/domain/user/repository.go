package user

import (
	"context"
	"time"
)

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, filter ListFilter) ([]User, error)
	ListPending(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, id string, profile Profile) (User, error)
	AdminUpdate(ctx context.Context, id string, changes AdminChanges) (User, error)

	// Activate and Reject only touch accounts that are still pending and
	// return ErrRegistrationAlreadyProcessed otherwise.
	Activate(ctx context.Context, id string, role Role) (User, error)
	Reject(ctx context.Context, id string, at time.Time) (User, error)
}
