package user

import "errors"

var (
	ErrUserNotFound                 = errors.New("user not found")
	ErrUserEmailExists              = errors.New("email already registered")
	ErrAdminPrivilegeRequired       = errors.New("admin privilege required")
	ErrAccountInactive              = errors.New("account is inactive")
	ErrCannotDeactivateSelf         = errors.New("admins cannot deactivate their own account")
	ErrRegistrationAlreadyProcessed = errors.New("registration already processed")
)
