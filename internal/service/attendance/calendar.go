package attendance

import "time"

// WorkingDays implements attendance.AttendanceService.
//
// There is no holiday calendar: official leaves are a flat count handled by
// the payroll formula, not tied to dates.
func (a *AttendanceServiceImpl) WorkingDays(year int, month time.Month, saturdayOff bool) int {
	days := 0
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Sunday:
			continue
		case time.Saturday:
			if saturdayOff {
				continue
			}
		}
		days++
	}
	return days
}
