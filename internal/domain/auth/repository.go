package auth

import "context"

type AdminRepository interface {
	// GetByAdminID returns ErrAdminNotFound when no admin matches.
	GetByAdminID(ctx context.Context, adminID string) (HRAdmin, error)
	// Create returns ErrAdminExists when adminID is taken.
	Create(ctx context.Context, admin HRAdmin) (HRAdmin, error)
}
