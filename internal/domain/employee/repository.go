package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetByEmployeeID returns ErrEmployeeNotFound when empId is unknown.
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)
	ExistsByEmployeeIDOrEmail(ctx context.Context, employeeID string, email string) (bool, error)
	// Create returns ErrEmployeeAlreadyExists on a duplicate empId or email.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
