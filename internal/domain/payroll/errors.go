package payroll

import "errors"

var (
	ErrRecordNotFound = errors.New("payroll record not found")
	ErrMonthRequired  = errors.New("payroll month is required")
)

// IneligibleError reports why a single employee's payroll could not be
// generated. Batch generation collects these as diagnostics; the
// single-employee path surfaces one as the operation's failure.
type IneligibleError struct {
	Reason string
}

func (e *IneligibleError) Error() string {
	return e.Reason
}
