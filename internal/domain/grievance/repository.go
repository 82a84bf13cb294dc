package grievance

import (
	"context"
	"time"
)

type GrievanceRepository interface {
	Create(ctx context.Context, grievance Grievance) (Grievance, error)
	// List returns grievances newest first.
	List(ctx context.Context, filter GrievanceFilter) ([]Grievance, int64, error)
	// UpdateStatus returns ErrGrievanceNotFound when id is unknown.
	UpdateStatus(ctx context.Context, id string, status GrievanceStatus, adminResponse string, reviewedAt time.Time) (Grievance, error)
}
