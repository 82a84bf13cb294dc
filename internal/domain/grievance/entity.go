package grievance

import "time"

type GrievanceStatus string

const (
	GrievanceStatusOpen        GrievanceStatus = "Open"
	GrievanceStatusUnderReview GrievanceStatus = "Under Review"
	GrievanceStatusResolved    GrievanceStatus = "Resolved"
)

type Grievance struct {
	ID            string
	EmployeeID    string
	GrievanceText string
	Status        GrievanceStatus
	AdminResponse *string
	SubmittedAt   time.Time
	ReviewedAt    *time.Time
}
