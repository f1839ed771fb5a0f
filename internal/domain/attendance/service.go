package attendance

import "time"

// AttendanceService is the pure computation surface over raw attendance
// exports. Every method is a function of its inputs only; implementations
// hold no state and are safe for concurrent use.
type AttendanceService interface {
	// ParseExport splits raw export text into rows, dropping the fixed-size
	// metadata header. Returns nil when no data rows remain.
	ParseExport(raw string) []Row

	// EmployeeSection locates the contiguous row range for one employee.
	// A missing section yields an empty Section, not an error.
	EmployeeSection(rows []Row, employeeID string) Section

	// Summarize classifies each day of a section as late/early/absent and
	// extracts the period's total worked hours.
	Summarize(section Section, saturdayOff bool) Summary

	// WorkingDays counts the days of a month excluding Sundays and, when
	// saturdayOff is set, Saturdays.
	WorkingDays(year int, month time.Month, saturdayOff bool) int
}
