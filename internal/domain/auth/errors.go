package auth

import "errors"

var (
	ErrInvalidCredentials      = errors.New("invalid employee ID or password")
	ErrInvalidAdminCredentials = errors.New("invalid admin credentials")
	ErrAccountInactive         = errors.New("account is inactive")
	ErrInvalidToken            = errors.New("invalid or expired token")
	ErrTokenRevoked            = errors.New("token has been revoked")
	ErrAdminNotFound           = errors.New("admin not found")
	ErrAdminExists             = errors.New("admin ID already exists")
	ErrAdminPrivilegeRequired  = errors.New("admin privilege required")
	ErrEmployeeAccessRequired  = errors.New("employee account required")
)
