package hiring

import "time"

const JobStatusActive = "Active"

type Feedback struct {
	ID          string
	EmployeeID  string
	Feedback    string
	SubmittedAt time.Time
}

type JobPosting struct {
	ID           string
	Title        string
	Description  string
	Requirements *string
	Location     *string
	Salary       *string
	Status       string
	PostedAt     time.Time
}
