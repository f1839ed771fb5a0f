package payroll

import "context"

// PayrollService defines business logic for payroll generation and the
// stored-result lifecycle.
type PayrollService interface {
	// GenerateAll runs the engine for every directory employee against one
	// export. Ineligible employees become diagnostics, never a batch failure.
	GenerateAll(ctx context.Context, req GeneratePayrollRequest) (GeneratePayrollsResponse, error)

	// GenerateOne runs the engine for a single employee; an incomplete
	// policy is a hard error here since the caller asked for this employee.
	GenerateOne(ctx context.Context, employeeID string, req GeneratePayrollRequest) (RecordResponse, error)

	// List returns stored records; employees see only their own.
	List(ctx context.Context) ([]RecordResponse, error)

	Get(ctx context.Context, id string) (RecordResponse, error)

	// UpdateHours re-derives the hour-driven fields of a stored record from
	// a manually corrected total, holding the allowance side fixed.
	UpdateHours(ctx context.Context, req UpdateHoursRequest) (RecordResponse, error)

	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
