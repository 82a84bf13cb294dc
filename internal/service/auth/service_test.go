package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

// stubEmployees serves only the lookups login needs.
type stubEmployees struct {
	employee.EmployeeRepository
	byEmpID map[string]employee.Employee
}

func (s *stubEmployees) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	emp, ok := s.byEmpID[employeeID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

type memoryAdmins struct {
	mu     sync.Mutex
	admins map[string]auth.HRAdmin
}

func (m *memoryAdmins) GetByAdminID(ctx context.Context, adminID string) (auth.HRAdmin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	admin, ok := m.admins[adminID]
	if !ok {
		return auth.HRAdmin{}, auth.ErrAdminNotFound
	}
	return admin, nil
}

func (m *memoryAdmins) Create(ctx context.Context, admin auth.HRAdmin) (auth.HRAdmin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.admins[admin.AdminID]; ok {
		return auth.HRAdmin{}, auth.ErrAdminExists
	}
	admin.ID = "admin-" + admin.AdminID
	m.admins[admin.AdminID] = admin
	return admin, nil
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newTestAuthService(t *testing.T) (*AuthServiceImpl, *memoryAdmins, *jwt.JWTService) {
	t.Helper()
	employees := &stubEmployees{byEmpID: map[string]employee.Employee{
		"EMP001": {EmployeeID: "EMP001", FullName: "John Doe", PasswordHash: hash(t, "password123"), IsActive: true},
		"EMP002": {EmployeeID: "EMP002", FullName: "Gone Away", PasswordHash: hash(t, "password123"), IsActive: false},
	}}
	admins := &memoryAdmins{admins: map[string]auth.HRAdmin{}}
	jwtService := jwt.NewJWTService(testSecret, time.Hour)

	return &AuthServiceImpl{
		EmployeeRepository: employees,
		AdminRepository:    admins,
		Service:            jwtService,
		bcryptCost:         bcrypt.MinCost,
	}, admins, jwtService
}

func TestLogin_Success(t *testing.T) {
	svc, _, jwtService := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{EmployeeID: "EMP001", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleEmployee, resp.Role)
	assert.Equal(t, "Bearer", resp.TokenType)
	require.NotNil(t, resp.EmployeeID)
	assert.Equal(t, "EMP001", *resp.EmployeeID)

	token, err := jwtService.JWTAuth().Decode(resp.AccessToken)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "EMP001", claims["employee_id"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, auth.LoginRequest{EmployeeID: "EMP001", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{EmployeeID: "EMP999", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{EmployeeID: "EMP002", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrAccountInactive)
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Len(t, validationErrs, 2)
}

func TestEnsureAdminAndAdminLogin(t *testing.T) {
	svc, admins, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.AdminLogin(ctx, auth.AdminLoginRequest{AdminID: "admin", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, auth.ErrInvalidAdminCredentials)

	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "s3cret-pass"))
	// Idempotent, and does not reset the password.
	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "another-pass"))
	assert.Len(t, admins.admins, 1)

	resp, err := svc.AdminLogin(ctx, auth.AdminLoginRequest{AdminID: "admin", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleHRAdmin, resp.Role)
	assert.Nil(t, resp.EmployeeID)

	_, err = svc.AdminLogin(ctx, auth.AdminLoginRequest{AdminID: "admin", Password: "another-pass"})
	assert.ErrorIs(t, err, auth.ErrInvalidAdminCredentials)
}

func TestLogout_RevokesToken(t *testing.T) {
	svc, _, jwtService := newTestAuthService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, auth.LoginRequest{EmployeeID: "EMP001", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.AccessToken))
	assert.True(t, jwtService.IsTokenRevoked(resp.AccessToken))

	assert.ErrorIs(t, svc.Logout(ctx, "not-a-token"), auth.ErrInvalidToken)
}

func TestLogout_ExpiredTokenRejected(t *testing.T) {
	svc, _, jwtService := newTestAuthService(t)

	_, expired, err := jwtService.JWTAuth().Encode(map[string]interface{}{
		"user_id": "uuid-1",
		"type":    jwt.TokenTypeAccess,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Logout(context.Background(), expired), auth.ErrInvalidToken)
	assert.False(t, jwtService.IsTokenRevoked(expired))
}
