package middleware

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-portal-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireEmployee admits only tokens issued to an employee account.
func RequireEmployee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := EmployeeIDFromContext(r.Context()); !ok {
			response.HandleError(w, auth.ErrEmployeeAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// EmployeeIDFromContext returns the employee_id claim of the verified token.
func EmployeeIDFromContext(ctx context.Context) (string, bool) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", false
	}
	employeeID, ok := claims["employee_id"].(string)
	return employeeID, ok && employeeID != ""
}

// RoleFromContext returns the role claim of the verified token.
func RoleFromContext(ctx context.Context) auth.Role {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return auth.Role(role)
}

// SubjectFromContext returns the user_id claim of the verified token.
func SubjectFromContext(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	subject, _ := claims["user_id"].(string)
	return subject
}
