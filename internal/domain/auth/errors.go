package auth

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked    = errors.New("refresh token has been revoked")
	ErrAccountPendingApproval = errors.New("account is pending admin approval")
	ErrAccountRejected        = errors.New("account registration was rejected")
)
