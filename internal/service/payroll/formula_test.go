package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techmire/payroll-backend-go/internal/domain/attendance"
	"github.com/techmire/payroll-backend-go/internal/domain/employee"
	"github.com/techmire/payroll-backend-go/internal/domain/payroll"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func eligibleEmployee() employee.Employee {
	return employee.Employee{
		EmployeeID: "EMP-001",
		FullName:   "John Doe",
		InTime:     strPtr("9:00"),
		OutTime:    strPtr("17:00"),
		SalaryCap:  floatPtr(50000),
	}
}

// September 2025 has 26 working days with Saturdays worked.
func septSettings() payroll.Settings {
	return payroll.Settings{
		Year:               2025,
		Month:              time.September,
		AllowedHoursPerDay: 8,
	}
}

func TestEligibilityReason(t *testing.T) {
	emp := eligibleEmployee()
	assert.Equal(t, "", eligibilityReason(emp))

	missing := emp
	missing.SalaryCap = nil
	missing.InTime = nil
	missing.OutTime = strPtr("")
	assert.Equal(t,
		"Payroll not generated for John Doe (EMP-001): Salary Cap missing, In Time missing, Out Time missing",
		eligibilityReason(missing))

	outOnly := emp
	outOnly.OutTime = nil
	assert.Equal(t,
		"Payroll not generated for John Doe (EMP-001): , Out Time missing",
		eligibilityReason(outOnly))
}

func TestBuildRecord(t *testing.T) {
	sum := attendance.Summary{TotalHours: 180, LateCount: 1, LateDates: []string{"02/09/2025"}}
	section := attendance.Section{Rows: []attendance.Row{attendance.NewRow([]string{"User ID", "EMP-001"})}}

	rec, err := buildRecord(eligibleEmployee(), sum, section, 26, septSettings())
	require.NoError(t, err)

	assert.Equal(t, "EMP-001", rec.EmployeeID)
	assert.Equal(t, "John Doe", rec.FullName)
	assert.Equal(t, "2025-09", rec.Month)
	assert.Equal(t, 180.0, rec.TotalWorkingHours)
	assert.Equal(t, 0.0, rec.NotAllowedHours)
	assert.Equal(t, 26, rec.OfficialWorkingDays)
	assert.Equal(t, 26, rec.AdjustedWorkingDays)
	assert.Equal(t, 26, rec.EffectiveAllowanceDays)
	assert.Equal(t, 120.19, rec.HourlyWage)
	assert.Equal(t, 961.54, rec.DailyAllowanceRate)
	// Full-precision intermediates: the daily total comes from the unrounded
	// rate, so 26 days yield exactly half the cap.
	assert.Equal(t, 25000.0, rec.DailyAllowanceTotal)
	assert.Equal(t, 21634.62, rec.HourlySalary)
	assert.Equal(t, 46634.62, rec.GrossSalary)
	assert.Equal(t, 1, rec.LateCount)
	assert.Equal(t, []string{"02/09/2025"}, rec.LateDates)
	assert.Equal(t, 50000.0, rec.SalaryCap)
	assert.Equal(t, [][]string{{"User ID", "EMP-001"}}, rec.SectionRows)
}

func TestBuildRecordIneligible(t *testing.T) {
	emp := eligibleEmployee()
	emp.SalaryCap = nil

	_, err := buildRecord(emp, attendance.Summary{}, attendance.Section{}, 26, septSettings())
	require.Error(t, err)

	var ineligible *payroll.IneligibleError
	require.ErrorAs(t, err, &ineligible)
	assert.Contains(t, ineligible.Reason, "Salary Cap missing")
}

func TestBuildRecordHoursCap(t *testing.T) {
	// 26 working days at 8 hours allow 208; the excess is carved off before
	// the hourly salary is computed.
	sum := attendance.Summary{TotalHours: 220}

	rec, err := buildRecord(eligibleEmployee(), sum, attendance.Section{}, 26, septSettings())
	require.NoError(t, err)

	assert.Equal(t, 208.0, rec.TotalWorkingHours)
	assert.Equal(t, 12.0, rec.NotAllowedHours)
	assert.Equal(t, 25000.0, rec.HourlySalary)
}

func TestBuildRecordAbsenceAndLateDeductions(t *testing.T) {
	sum := attendance.Summary{TotalHours: 150, AbsentCount: 5, LateCount: 5}
	settings := septSettings()
	settings.OfficialLeaves = 1

	rec, err := buildRecord(eligibleEmployee(), sum, attendance.Section{}, 26, settings)
	require.NoError(t, err)

	// 5 absences less 1 leave leaves 4 effective; 2 are tolerated, so two
	// days come off before the leave credit is added back.
	assert.Equal(t, 4, rec.EffectiveAbsentCount)
	assert.Equal(t, 25, rec.AdjustedWorkingDays)
	// 5 lates exceed the tolerance of 3 by 2.
	assert.Equal(t, 23, rec.EffectiveAllowanceDays)
}

func TestBuildRecordGrossClampedToCap(t *testing.T) {
	// Full hours plus a leave-inflated allowance pushes past the cap.
	sum := attendance.Summary{TotalHours: 208}
	settings := septSettings()
	settings.OfficialLeaves = 3

	rec, err := buildRecord(eligibleEmployee(), sum, attendance.Section{}, 26, settings)
	require.NoError(t, err)

	assert.Equal(t, 29, rec.EffectiveAllowanceDays)
	assert.Equal(t, 50000.0, rec.GrossSalary)
}

func TestRecalculateHours(t *testing.T) {
	base, err := buildRecord(eligibleEmployee(), attendance.Summary{TotalHours: 180}, attendance.Section{}, 26, septSettings())
	require.NoError(t, err)

	rec := recalculateHours(base, 200)

	assert.Equal(t, 200.0, rec.TotalWorkingHours)
	assert.Equal(t, 0.0, rec.NotAllowedHours)
	// The edit path derives the wage from the corrected hours themselves.
	assert.Equal(t, 125.0, rec.HourlyWage)
	assert.Equal(t, 25000.0, rec.HourlySalary)
	// The allowance side is held from the stored record, whose rate was
	// already rounded.
	assert.Equal(t, 25000.04, rec.DailyAllowanceTotal)
	assert.Equal(t, 50000.0, rec.GrossSalary)

	// Fields outside the hour-driven set stay put.
	assert.Equal(t, base.OfficialWorkingDays, rec.OfficialWorkingDays)
	assert.Equal(t, base.EffectiveAllowanceDays, rec.EffectiveAllowanceDays)
	assert.Equal(t, base.DailyAllowanceRate, rec.DailyAllowanceRate)
}

func TestRecalculateHoursOverAllowed(t *testing.T) {
	base, err := buildRecord(eligibleEmployee(), attendance.Summary{TotalHours: 180}, attendance.Section{}, 26, septSettings())
	require.NoError(t, err)

	rec := recalculateHours(base, 210)

	assert.Equal(t, 210.0, rec.TotalWorkingHours)
	assert.Equal(t, 2.0, rec.NotAllowedHours)
	// wage = 50000/210/2, salary = 208 effective hours at that wage
	assert.Equal(t, 119.05, rec.HourlyWage)
	assert.Equal(t, 24761.9, rec.HourlySalary)
}

func TestRecalculateHoursZero(t *testing.T) {
	base, err := buildRecord(eligibleEmployee(), attendance.Summary{TotalHours: 180}, attendance.Section{}, 26, septSettings())
	require.NoError(t, err)

	rec := recalculateHours(base, 0)

	assert.Equal(t, 0.0, rec.TotalWorkingHours)
	assert.Equal(t, 0.0, rec.HourlyWage)
	assert.Equal(t, 0.0, rec.HourlySalary)
	assert.Equal(t, 25000.04, rec.DailyAllowanceTotal)
	assert.Equal(t, 25000.04, rec.GrossSalary)
}
