package attendance

import (
	"context"
)

// AttendanceRepository is the ledger's view of the document store. Every
// implementation must enforce uniqueness of (employeeID, date) itself; the
// service holds no locks.
type AttendanceRepository interface {
	// GetByEmployeeAndDate returns nil, nil when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*Attendance, error)

	// Create inserts a new record. Returns ErrDuplicateAttendance when a record
	// for the same employee and date already exists.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// SetCheckIn sets check_in and status on an existing record whose check_in
	// is still empty. Reports whether a record was modified.
	SetCheckIn(ctx context.Context, employeeID string, date string, checkIn string) (bool, error)

	// SetCheckOut sets check_out on a record that has check_in set and
	// check_out empty. Reports whether a record was modified.
	SetCheckOut(ctx context.Context, employeeID string, date string, checkOut string) (bool, error)

	// List returns records matching filter, newest date first, with the total count.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// CountCheckedIn counts records for date that have a check-in.
	CountCheckedIn(ctx context.Context, date string) (int64, error)
}
