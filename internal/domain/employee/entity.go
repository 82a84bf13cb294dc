package employee

import "time"

type Employee struct {
	ID           string
	EmployeeID   string
	FullName     string
	Email        string
	PasswordHash string
	Department   *string
	Position     *string
	JoinDate     *time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
