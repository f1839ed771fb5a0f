package payroll

import "context"

// PayrollRepository defines data access for computed payroll records.
// Records are keyed on (employee_id, month); regeneration overwrites.
type PayrollRepository interface {
	Upsert(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	List(ctx context.Context) ([]Record, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]Record, error)
	Update(ctx context.Context, record Record) (Record, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
