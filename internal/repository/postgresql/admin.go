package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type adminRepositoryImpl struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) auth.AdminRepository {
	return &adminRepositoryImpl{db: db}
}

// GetByAdminID implements auth.AdminRepository.
func (r *adminRepositoryImpl) GetByAdminID(ctx context.Context, adminID string) (auth.HRAdmin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, admin_id, password_hash, role, is_active, created_at
		FROM hr_admins
		WHERE admin_id = $1
	`

	var admin auth.HRAdmin
	err := q.QueryRow(ctx, query, adminID).Scan(
		&admin.ID, &admin.AdminID, &admin.PasswordHash, &admin.Role, &admin.IsActive, &admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.HRAdmin{}, auth.ErrAdminNotFound
		}
		return auth.HRAdmin{}, fmt.Errorf("failed to get admin %s: %w", adminID, err)
	}
	return admin, nil
}

// Create implements auth.AdminRepository.
func (r *adminRepositoryImpl) Create(ctx context.Context, admin auth.HRAdmin) (auth.HRAdmin, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return auth.HRAdmin{}, fmt.Errorf("failed to generate admin id: %w", err)
	}

	query := `
		INSERT INTO hr_admins (id, admin_id, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, admin_id, password_hash, role, is_active, created_at
	`

	var created auth.HRAdmin
	err = q.QueryRow(ctx, query, id.String(), admin.AdminID, admin.PasswordHash, string(admin.Role), admin.IsActive).Scan(
		&created.ID, &created.AdminID, &created.PasswordHash, &created.Role, &created.IsActive, &created.CreatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err, "hr_admins_admin_id_key") {
			return auth.HRAdmin{}, auth.ErrAdminExists
		}
		return auth.HRAdmin{}, fmt.Errorf("failed to create admin: %w", err)
	}
	return created, nil
}
