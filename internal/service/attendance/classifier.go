package attendance

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/techmire/payroll-backend-go/internal/domain/attendance"
)

// Classification thresholds in minutes since midnight. Arrival strictly
// after 09:30 is late; departure strictly before 17:30 is early.
const (
	lateThresholdMinutes  = 9*60 + 30
	earlyThresholdMinutes = 17*60 + 30
)

var dataDateRegex = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// Summarize implements attendance.AttendanceService.
//
// Rows whose first cell is not a strict DD/MM/YYYY date are skipped; that
// silently drops the "User ID" and "Total" markers and any garbage lines.
// Sundays are always skipped, Saturdays only for Saturday-off employees.
func (a *AttendanceServiceImpl) Summarize(section attendance.Section, saturdayOff bool) attendance.Summary {
	var sum attendance.Summary

	for _, row := range section.Rows {
		if !dataDateRegex.MatchString(row.Date) || row.Day == "" {
			if row.IsTotalMarker() {
				sum.TotalHours = decimalHours(row.Hours)
			}
			continue
		}

		if row.Day == "Sun." || (row.Day == "Sat." && saturdayOff) {
			continue
		}

		inMinutes, inPresent := clockMinutes(row.In)
		outMinutes, outPresent := clockMinutes(row.Out)

		// A day is absent only when both clock times are missing; otherwise
		// late and early are judged independently from whichever time exists.
		if !inPresent && !outPresent {
			sum.AbsentCount++
			sum.AbsentDates = append(sum.AbsentDates, row.Date)
			continue
		}

		if inPresent && inMinutes > lateThresholdMinutes {
			sum.LateCount++
			sum.LateDates = append(sum.LateDates, row.Date)
		}
		if outPresent && outMinutes < earlyThresholdMinutes {
			sum.EarlyCount++
			sum.EarlyDates = append(sum.EarlyDates, row.Date)
		}
	}

	return sum
}

// clockMinutes parses an H:MM clock cell into minutes since midnight.
// Empty cells, the literal "0:00" and unparseable values are all the
// device's absent-signal, never a valid midnight time.
func clockMinutes(s string) (int, bool) {
	if s == "" || s == "0:00" {
		return 0, false
	}

	h, m, ok := splitClock(s)
	if !ok {
		return 0, false
	}
	return h*60 + m, true
}

// decimalHours converts an H:MM duration cell to decimal hours.
func decimalHours(s string) float64 {
	if s == "" || s == "0:00" {
		return 0
	}

	h, m, ok := splitClock(s)
	if !ok {
		return 0
	}
	return float64(h) + float64(m)/60
}

func splitClock(s string) (int, int, bool) {
	hs, ms, found := strings.Cut(s, ":")
	if !found {
		return 0, 0, false
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(ms)
	if err != nil {
		return 0, 0, false
	}
	return h, m, true
}
