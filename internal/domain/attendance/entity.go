package attendance

import (
	"time"
)

// State is the per-employee, per-day position in the check-in/check-out machine.
type State string

const (
	StateNotCheckedIn State = "NOT_CHECKED_IN"
	StateCheckedIn    State = "CHECKED_IN"
	StateCheckedOut   State = "CHECKED_OUT"
)

const (
	StatusPresent = "Present"

	// DateLayout is the compound-key date format. TimeLayout is the display
	// format for check-in/check-out times, e.g. "09:02:13 AM".
	DateLayout = "2006-01-02"
	TimeLayout = "03:04:05 PM"
)

// Attendance is one employee's record for one calendar day. (EmployeeID, Date)
// is unique in every store.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       string
	CheckIn    *string
	CheckOut   *string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// State derives the machine state from the stored timestamps. A nil record is
// NOT_CHECKED_IN.
func (a *Attendance) State() State {
	switch {
	case a == nil || a.CheckIn == nil:
		return StateNotCheckedIn
	case a.CheckOut == nil:
		return StateCheckedIn
	default:
		return StateCheckedOut
	}
}
