package payroll

import (
	"github.com/techmire/payroll-backend-go/internal/pkg/validator"
)

// GeneratePayrollRequest carries the run settings for both batch and
// single-employee generation.
type GeneratePayrollRequest struct {
	FileID               string   `json:"file_id"`
	Month                string   `json:"month"` // YYYY-MM
	SaturdayOffEmployees []string `json:"saturday_off_employees,omitempty"`
	OfficialLeaves       int      `json:"official_leaves,omitempty"`
	AllowedHoursPerDay   float64  `json:"allowed_hours_per_day,omitempty"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FileID) {
		errs = append(errs, validator.ValidationError{Field: "file_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "is required"})
	} else if _, _, ok := validator.ParseMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be YYYY-MM"})
	}
	if r.OfficialLeaves < 0 {
		errs = append(errs, validator.ValidationError{Field: "official_leaves", Message: "must be non-negative"})
	}
	if r.AllowedHoursPerDay < 0 {
		errs = append(errs, validator.ValidationError{Field: "allowed_hours_per_day", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Settings converts the validated request into run settings. A zero
// allowed-hours value falls back to the standard 8-hour day.
func (r *GeneratePayrollRequest) Settings() (Settings, error) {
	year, month, ok := validator.ParseMonth(r.Month)
	if !ok {
		return Settings{}, ErrMonthRequired
	}

	allowedHours := r.AllowedHoursPerDay
	if allowedHours == 0 {
		allowedHours = 8
	}

	return Settings{
		Year:                 year,
		Month:                month,
		SaturdayOffEmployees: r.SaturdayOffEmployees,
		OfficialLeaves:       r.OfficialLeaves,
		AllowedHoursPerDay:   allowedHours,
	}, nil
}

// UpdateHoursRequest is the edit path: only the total working hours change,
// everything else is re-derived or held from the stored record.
type UpdateHoursRequest struct {
	ID                string
	TotalWorkingHours float64 `json:"total_working_hours"`
}

func (r *UpdateHoursRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.TotalWorkingHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "total_working_hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RecordResponse is the persisted record shape. Field names are consumed
// unchanged by the display/export layer and must not drift, including the
// capitalized Salary_Cap.
type RecordResponse struct {
	ID                     string     `json:"id"`
	EmployeeID             string     `json:"employee_id"`
	FullName               string     `json:"full_name"`
	Month                  string     `json:"month"`
	TotalWorkingHours      float64    `json:"total_working_hours"`
	NotAllowedHours        float64    `json:"not_allowed_hours"`
	OfficialWorkingDays    int        `json:"official_working_days"`
	AdjustedWorkingDays    int        `json:"adjusted_working_days"`
	EffectiveAllowanceDays int        `json:"effective_allowance_days"`
	HourlyWage             float64    `json:"hourly_wage"`
	DailyAllowanceRate     float64    `json:"daily_allowance_rate"`
	DailyAllowanceTotal    float64    `json:"daily_allowance_total"`
	OfficialLeaves         int        `json:"official_leaves"`
	AllowedHoursPerDay     float64    `json:"allowed_hours_per_day"`
	HourlySalary           float64    `json:"hourly_salary"`
	GrossSalary            float64    `json:"gross_salary"`
	LateCount              int        `json:"late_count"`
	EarlyCount             int        `json:"early_count"`
	AbsentCount            int        `json:"absent_count"`
	EffectiveAbsentCount   int        `json:"effective_absent_count"`
	LateDates              []string   `json:"late_dates"`
	EarlyDates             []string   `json:"early_dates"`
	AbsentDates            []string   `json:"absent_dates"`
	SectionRows            [][]string `json:"table_section_data"`
	SalaryCap              float64    `json:"Salary_Cap"`
}

// GeneratePayrollsResponse is the batch result: computed payrolls keyed by
// employee identifier, plus human-readable skip reasons for employees whose
// policy data was incomplete.
type GeneratePayrollsResponse struct {
	Results map[string]RecordResponse `json:"results"`
	Issues  []string                  `json:"issues"`
}

// ToResponse maps a record to its transport shape, normalizing nil date
// slices so JSON consumers always see arrays.
func ToResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:                     r.ID,
		EmployeeID:             r.EmployeeID,
		FullName:               r.FullName,
		Month:                  r.Month,
		TotalWorkingHours:      r.TotalWorkingHours,
		NotAllowedHours:        r.NotAllowedHours,
		OfficialWorkingDays:    r.OfficialWorkingDays,
		AdjustedWorkingDays:    r.AdjustedWorkingDays,
		EffectiveAllowanceDays: r.EffectiveAllowanceDays,
		HourlyWage:             r.HourlyWage,
		DailyAllowanceRate:     r.DailyAllowanceRate,
		DailyAllowanceTotal:    r.DailyAllowanceTotal,
		OfficialLeaves:         r.OfficialLeaves,
		AllowedHoursPerDay:     r.AllowedHoursPerDay,
		HourlySalary:           r.HourlySalary,
		GrossSalary:            r.GrossSalary,
		LateCount:              r.LateCount,
		EarlyCount:             r.EarlyCount,
		AbsentCount:            r.AbsentCount,
		EffectiveAbsentCount:   r.EffectiveAbsentCount,
		LateDates:              emptyIfNil(r.LateDates),
		EarlyDates:             emptyIfNil(r.EarlyDates),
		AbsentDates:            emptyIfNil(r.AbsentDates),
		SectionRows:            emptyRowsIfNil(r.SectionRows),
		SalaryCap:              r.SalaryCap,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyRowsIfNil(s [][]string) [][]string {
	if s == nil {
		return [][]string{}
	}
	return s
}
