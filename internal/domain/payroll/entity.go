package payroll

import (
	"fmt"
	"time"

	"github.com/techmire/payroll-backend-go/internal/pkg/validator"
)

// Policy tolerances applied before deductions kick in.
const (
	AllowedAbsences = 2
	AllowedLates    = 3
)

// Settings is the per-run payroll configuration. It is supplied explicitly on
// every generation call and never mutated by the engine.
type Settings struct {
	Year                 int
	Month                time.Month
	SaturdayOffEmployees []string
	OfficialLeaves       int
	AllowedHoursPerDay   float64
}

// SaturdayOff reports whether the given employee works a five-day week.
func (s Settings) SaturdayOff(employeeID string) bool {
	return validator.IsInSlice(employeeID, s.SaturdayOffEmployees)
}

// MonthKey formats the settings month as the persisted YYYY-MM key.
func (s Settings) MonthKey() string {
	return fmt.Sprintf("%04d-%02d", s.Year, int(s.Month))
}

// Record is one computed payroll, as persisted and re-displayed.
// Monetary and hour fields are already rounded to 2 decimal places; the
// formula keeps full precision internally and rounds only here.
type Record struct {
	ID                     string
	EmployeeID             string
	FullName               string
	Month                  string // YYYY-MM
	TotalWorkingHours      float64
	NotAllowedHours        float64
	OfficialWorkingDays    int
	AdjustedWorkingDays    int
	EffectiveAllowanceDays int
	HourlyWage             float64
	DailyAllowanceRate     float64
	DailyAllowanceTotal    float64
	OfficialLeaves         int
	AllowedHoursPerDay     float64
	HourlySalary           float64
	GrossSalary            float64
	LateCount              int
	EarlyCount             int
	AbsentCount            int
	EffectiveAbsentCount   int
	LateDates              []string
	EarlyDates             []string
	AbsentDates            []string
	SectionRows            [][]string // raw export rows for later display
	SalaryCap              float64
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
