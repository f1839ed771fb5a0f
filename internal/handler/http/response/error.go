package response

import (
	"errors"
	"net/http"

	"github.com/techmire/payroll-backend-go/internal/domain/auth"
	"github.com/techmire/payroll-backend-go/internal/domain/employee"
	"github.com/techmire/payroll-backend-go/internal/domain/file"
	"github.com/techmire/payroll-backend-go/internal/domain/payroll"
	"github.com/techmire/payroll-backend-go/internal/domain/user"
	"github.com/techmire/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Incomplete payroll policy carries a human-readable reason.
	var ineligible *payroll.IneligibleError
	if errors.As(err, &ineligible) {
		UnprocessableEntity(w, ineligible.Reason)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrHRAccessRequired):
		Forbidden(w, "HR access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already registered")
	case errors.Is(err, employee.ErrCNICExists):
		Conflict(w, "CNIC already registered")

	// File domain errors
	case errors.Is(err, file.ErrFileNotFound):
		NotFound(w, "Export file not found")
	case errors.Is(err, file.ErrEmptyFile):
		BadRequest(w, "Export file is empty", nil)
	case errors.Is(err, file.ErrFilenameTaken):
		Conflict(w, "A file with this name already exists")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrMonthRequired):
		BadRequest(w, "Month must be provided as YYYY-MM", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
