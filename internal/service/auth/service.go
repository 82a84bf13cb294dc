package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenType = "Bearer"

type AuthServiceImpl struct {
	employee.EmployeeRepository
	auth.AdminRepository
	jwt.Service
	bcryptCost int
}

func NewAuthService(employeeRepository employee.EmployeeRepository, adminRepository auth.AdminRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		EmployeeRepository: employeeRepository,
		AdminRepository:    adminRepository,
		Service:            jwtService,
		bcryptCost:         bcrypt.DefaultCost,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by emp_id: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if !emp.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(emp.EmployeeID, &emp.EmployeeID, auth.RoleEmployee)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	slog.Info("Employee logged in", "employee_id", emp.EmployeeID)

	return auth.TokenResponse{
		AccessToken:          token,
		TokenType:            tokenType,
		AccessTokenExpiresIn: expiresAt,
		Role:                 auth.RoleEmployee,
		EmployeeID:           &emp.EmployeeID,
		FullName:             &emp.FullName,
	}, nil
}

// AdminLogin implements auth.AuthService.
func (a *AuthServiceImpl) AdminLogin(ctx context.Context, req auth.AdminLoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	admin, err := a.AdminRepository.GetByAdminID(ctx, req.AdminID)
	if err != nil {
		if errors.Is(err, auth.ErrAdminNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidAdminCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidAdminCredentials
	}
	if !admin.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(admin.AdminID, nil, auth.RoleHRAdmin)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	slog.Info("Admin logged in", "admin_id", admin.AdminID)

	return auth.TokenResponse{
		AccessToken:          token,
		TokenType:            tokenType,
		AccessTokenExpiresIn: expiresAt,
		Role:                 auth.RoleHRAdmin,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	decoded, err := jwtauth.VerifyToken(a.Service.JWTAuth(), token)
	if err != nil {
		return auth.ErrInvalidToken
	}
	a.Service.RevokeToken(token, decoded.Expiration().Unix())
	return nil
}

// EnsureAdmin implements auth.AuthService.
func (a *AuthServiceImpl) EnsureAdmin(ctx context.Context, adminID string, password string) error {
	_, err := a.AdminRepository.GetByAdminID(ctx, adminID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, auth.ErrAdminNotFound) {
		return fmt.Errorf("failed to look up bootstrap admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = a.AdminRepository.Create(ctx, auth.HRAdmin{
		AdminID:      adminID,
		PasswordHash: string(hash),
		Role:         auth.RoleHRAdmin,
		IsActive:     true,
	})
	if err != nil && !errors.Is(err, auth.ErrAdminExists) {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	slog.Info("Bootstrap admin ensured", "admin_id", adminID)
	return nil
}
