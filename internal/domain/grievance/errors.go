package grievance

import "errors"

var (
	ErrGrievanceNotFound = errors.New("grievance not found")
)
