package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/techmire/payroll-backend-go/internal/domain/attendance"
	"github.com/techmire/payroll-backend-go/internal/domain/employee"
	"github.com/techmire/payroll-backend-go/internal/domain/payroll"
)

// eligibilityReason reports why an employee cannot be paid, or "" when the
// policy is complete. The exact wording feeds both batch diagnostics and
// single-run errors, so it must stay stable.
func eligibilityReason(emp employee.Employee) string {
	capMissing := emp.SalaryCap == nil
	inMissing := emp.InTime == nil || *emp.InTime == ""
	outMissing := emp.OutTime == nil || *emp.OutTime == ""

	if !capMissing && !inMissing && !outMissing {
		return ""
	}

	reason := fmt.Sprintf("Payroll not generated for %s (%s): ", emp.FullName, emp.EmployeeID)
	if capMissing {
		reason += "Salary Cap missing"
	}
	if inMissing {
		reason += ", In Time missing"
	}
	if outMissing {
		reason += ", Out Time missing"
	}
	return reason
}

// buildRecord is the one payroll formula. Batch and single-employee
// generation both call it; the edit path (recalculateHours) re-derives a
// subset of its outputs. Intermediate math is full precision; rounding to 2
// decimal places happens only on the stored fields.
//
// The salary cap is split evenly between an hours-based component and a
// days-based allowance component, each computed as if it alone funded the
// full cap; the sum is then clamped back to the cap.
func buildRecord(
	emp employee.Employee,
	sum attendance.Summary,
	section attendance.Section,
	workingDays int,
	settings payroll.Settings,
) (payroll.Record, error) {
	if reason := eligibilityReason(emp); reason != "" {
		return payroll.Record{}, &payroll.IneligibleError{Reason: reason}
	}

	salaryCap := *emp.SalaryCap
	allowedTotalHours := settings.AllowedHoursPerDay * float64(workingDays)

	totalHours := sum.TotalHours
	notAllowedHours := 0.0
	if totalHours > allowedTotalHours {
		notAllowedHours = totalHours - allowedTotalHours
		totalHours = allowedTotalHours
	}

	hourlyWage := salaryCap / (float64(workingDays) * settings.AllowedHoursPerDay) / 2
	dailyAllowanceRate := salaryCap / float64(workingDays) / 2

	effectiveAbsent := maxInt(0, sum.AbsentCount-settings.OfficialLeaves)
	adjustedWorkingDays := workingDays - maxInt(0, effectiveAbsent-payroll.AllowedAbsences) + settings.OfficialLeaves
	effectiveAllowanceDays := maxInt(0, adjustedWorkingDays-maxInt(0, sum.LateCount-payroll.AllowedLates))

	hourlySalary := totalHours * hourlyWage
	dailyAllowanceTotal := float64(effectiveAllowanceDays) * dailyAllowanceRate
	grossSalary := hourlySalary + dailyAllowanceTotal
	if grossSalary > salaryCap {
		grossSalary = salaryCap
	}

	return payroll.Record{
		EmployeeID:             emp.EmployeeID,
		FullName:               emp.FullName,
		Month:                  settings.MonthKey(),
		TotalWorkingHours:      round2(totalHours),
		NotAllowedHours:        round2(notAllowedHours),
		OfficialWorkingDays:    workingDays,
		AdjustedWorkingDays:    adjustedWorkingDays,
		EffectiveAllowanceDays: effectiveAllowanceDays,
		HourlyWage:             round2(hourlyWage),
		DailyAllowanceRate:     round2(dailyAllowanceRate),
		DailyAllowanceTotal:    round2(dailyAllowanceTotal),
		OfficialLeaves:         settings.OfficialLeaves,
		AllowedHoursPerDay:     settings.AllowedHoursPerDay,
		HourlySalary:           round2(hourlySalary),
		GrossSalary:            round2(grossSalary),
		LateCount:              sum.LateCount,
		EarlyCount:             sum.EarlyCount,
		AbsentCount:            sum.AbsentCount,
		EffectiveAbsentCount:   effectiveAbsent,
		LateDates:              sum.LateDates,
		EarlyDates:             sum.EarlyDates,
		AbsentDates:            sum.AbsentDates,
		SectionRows:            section.RawRows(),
		SalaryCap:              salaryCap,
	}, nil
}

// recalculateHours is the manual-edit path: only the total working hours
// change. The allowance side (effective allowance days, daily rate) is held
// from the stored record; the hourly wage is re-derived from the corrected
// hours themselves rather than from the working-day calendar.
func recalculateHours(rec payroll.Record, newTotalHours float64) payroll.Record {
	allowedTotalHours := rec.AllowedHoursPerDay * float64(rec.OfficialWorkingDays)

	notAllowedHours := 0.0
	effectiveHours := newTotalHours
	if newTotalHours > allowedTotalHours {
		notAllowedHours = newTotalHours - allowedTotalHours
		effectiveHours = allowedTotalHours
	}

	hourlyWage := 0.0
	if newTotalHours > 0 {
		hourlyWage = rec.SalaryCap / newTotalHours / 2
	}

	dailyAllowanceTotal := float64(rec.EffectiveAllowanceDays) * rec.DailyAllowanceRate
	hourlySalary := effectiveHours * hourlyWage
	grossSalary := hourlySalary + dailyAllowanceTotal
	if grossSalary > rec.SalaryCap {
		grossSalary = rec.SalaryCap
	}

	rec.TotalWorkingHours = round2(newTotalHours)
	rec.NotAllowedHours = round2(notAllowedHours)
	rec.HourlyWage = round2(hourlyWage)
	rec.DailyAllowanceTotal = round2(dailyAllowanceTotal)
	rec.HourlySalary = round2(hourlySalary)
	rec.GrossSalary = round2(grossSalary)
	return rec
}

func round2(f float64) float64 {
	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
