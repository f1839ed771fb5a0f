package employee

import (
	"github.com/techmire/payroll-backend-go/internal/pkg/validator"
)

// JSON field names mirror the registration form verbatim, including the
// capitalized Salary_Cap the downstream display layer expects.

type CreateEmployeeRequest struct {
	EmployeeID       string   `json:"employee_id"`
	FullName         string   `json:"full_name"`
	Email            *string  `json:"email,omitempty"`
	Gender           *string  `json:"gender,omitempty"`
	CNIC             *string  `json:"cnic,omitempty"`
	ContactNumber    *string  `json:"contact_number,omitempty"`
	PermanentAddress *string  `json:"permanent_address,omitempty"`
	GuardianPhone    *string  `json:"guardian_phone,omitempty"`
	PostAppliedFor   *string  `json:"post_applied_for,omitempty"`
	JoiningDate      *string  `json:"joining_date,omitempty"` // YYYY-MM-DD
	InTime           *string  `json:"in_time,omitempty"`
	OutTime          *string  `json:"out_time,omitempty"`
	SalaryCap        *float64 `json:"Salary_Cap,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email"})
	}
	if r.CNIC != nil && !validator.IsValidCNIC(*r.CNIC) {
		errs = append(errs, validator.ValidationError{Field: "cnic", Message: "is not a valid CNIC"})
	}
	if r.JoiningDate != nil {
		if _, ok := validator.IsValidDate(*r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.InTime != nil && !validator.IsValidClockTime(*r.InTime) {
		errs = append(errs, validator.ValidationError{Field: "in_time", Message: "must be H:MM"})
	}
	if r.OutTime != nil && !validator.IsValidClockTime(*r.OutTime) {
		errs = append(errs, validator.ValidationError{Field: "out_time", Message: "must be H:MM"})
	}
	if r.SalaryCap != nil && *r.SalaryCap <= 0 {
		errs = append(errs, validator.ValidationError{Field: "Salary_Cap", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID               string
	FullName         *string  `json:"full_name,omitempty"`
	Email            *string  `json:"email,omitempty"`
	Gender           *string  `json:"gender,omitempty"`
	CNIC             *string  `json:"cnic,omitempty"`
	ContactNumber    *string  `json:"contact_number,omitempty"`
	PermanentAddress *string  `json:"permanent_address,omitempty"`
	GuardianPhone    *string  `json:"guardian_phone,omitempty"`
	PostAppliedFor   *string  `json:"post_applied_for,omitempty"`
	JoiningDate      *string  `json:"joining_date,omitempty"`
	InTime           *string  `json:"in_time,omitempty"`
	OutTime          *string  `json:"out_time,omitempty"`
	SalaryCap        *float64 `json:"Salary_Cap,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "cannot be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email"})
	}
	if r.CNIC != nil && !validator.IsValidCNIC(*r.CNIC) {
		errs = append(errs, validator.ValidationError{Field: "cnic", Message: "is not a valid CNIC"})
	}
	if r.JoiningDate != nil {
		if _, ok := validator.IsValidDate(*r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.InTime != nil && !validator.IsValidClockTime(*r.InTime) {
		errs = append(errs, validator.ValidationError{Field: "in_time", Message: "must be H:MM"})
	}
	if r.OutTime != nil && !validator.IsValidClockTime(*r.OutTime) {
		errs = append(errs, validator.ValidationError{Field: "out_time", Message: "must be H:MM"})
	}
	if r.SalaryCap != nil && *r.SalaryCap <= 0 {
		errs = append(errs, validator.ValidationError{Field: "Salary_Cap", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID               string   `json:"id"`
	EmployeeID       string   `json:"employee_id"`
	FullName         string   `json:"full_name"`
	Email            *string  `json:"email,omitempty"`
	Gender           *string  `json:"gender,omitempty"`
	CNIC             *string  `json:"cnic,omitempty"`
	ContactNumber    *string  `json:"contact_number,omitempty"`
	PermanentAddress *string  `json:"permanent_address,omitempty"`
	GuardianPhone    *string  `json:"guardian_phone,omitempty"`
	PostAppliedFor   *string  `json:"post_applied_for,omitempty"`
	JoiningDate      *string  `json:"joining_date,omitempty"`
	InTime           *string  `json:"in_time,omitempty"`
	OutTime          *string  `json:"out_time,omitempty"`
	SalaryCap        *float64 `json:"Salary_Cap,omitempty"`
}

// ToResponse maps an entity to its transport shape.
func ToResponse(e Employee) EmployeeResponse {
	var joining *string
	if e.JoiningDate != nil {
		s := e.JoiningDate.Format("2006-01-02")
		joining = &s
	}

	return EmployeeResponse{
		ID:               e.ID,
		EmployeeID:       e.EmployeeID,
		FullName:         e.FullName,
		Email:            e.Email,
		Gender:           e.Gender,
		CNIC:             e.CNIC,
		ContactNumber:    e.ContactNumber,
		PermanentAddress: e.PermanentAddress,
		GuardianPhone:    e.GuardianPhone,
		PostAppliedFor:   e.PostAppliedFor,
		JoiningDate:      joining,
		InTime:           e.InTime,
		OutTime:          e.OutTime,
		SalaryCap:        e.SalaryCap,
	}
}
