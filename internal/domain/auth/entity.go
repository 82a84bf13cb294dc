package auth

import "time"

// Role is carried in the access token's "role" claim.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleHRAdmin  Role = "hr_admin"
)

// HRAdmin is an account that may use the /api/admin surface.
type HRAdmin struct {
	ID           string
	AdminID      string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
}
