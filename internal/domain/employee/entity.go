package employee

import "time"

// Employee is one directory entry. SalaryCap, InTime and OutTime are the
// payroll policy fields; any of them missing makes the employee ineligible
// for payroll generation.
type Employee struct {
	ID               string
	EmployeeID       string
	FullName         string
	Email            *string
	Gender           *string
	CNIC             *string
	ContactNumber    *string
	PermanentAddress *string
	GuardianPhone    *string
	PostAppliedFor   *string
	JoiningDate      *time.Time
	InTime           *string // expected check-in, H:MM
	OutTime          *string // expected check-out, H:MM
	SalaryCap        *float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
