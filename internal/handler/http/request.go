package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-portal-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-portal-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/sse"
)

// eventPublisher is the part of the SSE hub handlers need.
type eventPublisher interface {
	Publish(event sse.Event)
}

type noopPublisher struct{}

func (noopPublisher) Publish(sse.Event) {}

func publisherOrNoop(p eventPublisher) eventPublisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}

// decodeJSON decodes the request body into dst. An empty body leaves dst untouched.
func decodeJSON(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// resolveEmployeeID applies the identity rule for employee-facing routes.
// Employees act only as themselves: a blank id defaults to the token's
// employee_id and a different id is rejected. Admins may name anyone.
func resolveEmployeeID(r *http.Request, requested string) (string, error) {
	requested = strings.TrimSpace(requested)
	if middleware.RoleFromContext(r.Context()) == auth.RoleHRAdmin {
		return requested, nil
	}

	own, ok := middleware.EmployeeIDFromContext(r.Context())
	if !ok {
		return "", auth.ErrEmployeeAccessRequired
	}
	if requested == "" {
		return own, nil
	}
	if requested != own {
		return "", attendance.ErrEmployeeMismatch
	}
	return own, nil
}

// queryParam returns the first non-empty value among names.
func queryParam(r *http.Request, names ...string) string {
	q := r.URL.Query()
	for _, name := range names {
		if v := strings.TrimSpace(q.Get(name)); v != "" {
			return v
		}
	}
	return ""
}

func optionalQuery(r *http.Request, names ...string) *string {
	if v := queryParam(r, names...); v != "" {
		return &v
	}
	return nil
}

// parsePagination reads page and limit, ignoring malformed values so the
// filter defaults apply.
func parsePagination(r *http.Request) (page, limit int) {
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			limit = limitNum
		}
	}
	return page, limit
}
