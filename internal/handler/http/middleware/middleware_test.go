package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtected(jwtService jwt.Service, extra ...func(http.Handler) http.Handler) http.Handler {
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		employeeID, _ := EmployeeIDFromContext(r.Context())
		w.Header().Set("X-Employee", employeeID)
		w.Header().Set("X-Role", string(RoleFromContext(r.Context())))
		w.WriteHeader(http.StatusNoContent)
	})
	for i := len(extra) - 1; i >= 0; i-- {
		h = extra[i](h)
	}
	return jwtauth.Verifier(jwtService.JWTAuth())(AuthRequired(jwtService)(h))
}

func request(t *testing.T, h http.Handler, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	jwtService := jwt.NewJWTService("middleware-test-secret", time.Hour)
	h := newProtected(jwtService)

	t.Run("missing token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request(t, h, "").Code)
	})

	t.Run("employee token", func(t *testing.T) {
		empID := "EMP001"
		token, _, err := jwtService.GenerateAccessToken("uuid-1", &empID, auth.RoleEmployee)
		require.NoError(t, err)

		rec := request(t, h, token)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "EMP001", rec.Header().Get("X-Employee"))
		assert.Equal(t, "employee", rec.Header().Get("X-Role"))
	})

	t.Run("sse token is not an access token", func(t *testing.T) {
		token, _, err := jwtService.GenerateSSEToken("admin-1")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, request(t, h, token).Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		empID := "EMP002"
		token, exp, err := jwtService.GenerateAccessToken("uuid-2", &empID, auth.RoleEmployee)
		require.NoError(t, err)
		jwtService.RevokeToken(token, exp)

		assert.Equal(t, http.StatusUnauthorized, request(t, h, token).Code)
	})
}

func TestAdminOnly(t *testing.T) {
	jwtService := jwt.NewJWTService("middleware-test-secret", time.Hour)
	h := newProtected(jwtService, AdminOnly)

	adminToken, _, err := jwtService.GenerateAccessToken("admin-1", nil, auth.RoleHRAdmin)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, request(t, h, adminToken).Code)

	empID := "EMP001"
	employeeToken, _, err := jwtService.GenerateAccessToken("uuid-1", &empID, auth.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, request(t, h, employeeToken).Code)
}

func TestRequireEmployee(t *testing.T) {
	jwtService := jwt.NewJWTService("middleware-test-secret", time.Hour)
	h := newProtected(jwtService, RequireEmployee)

	adminToken, _, err := jwtService.GenerateAccessToken("admin-1", nil, auth.RoleHRAdmin)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, request(t, h, adminToken).Code)

	empID := "EMP001"
	employeeToken, _, err := jwtService.GenerateAccessToken("uuid-1", &empID, auth.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, request(t, h, employeeToken).Code)
}
