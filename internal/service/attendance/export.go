package attendance

import (
	"strings"

	"github.com/techmire/payroll-backend-go/internal/domain/attendance"
)

// headerRows is the fixed number of metadata lines every export starts with
// (report title, device info, period banner). They are never data.
const headerRows = 7

// ParseExport implements attendance.AttendanceService.
//
// The export format has no quoting; embedded commas cannot occur. Blank
// lines are dropped before the header is counted, matching how the device
// report is produced.
func (a *AttendanceServiceImpl) ParseExport(raw string) []attendance.Row {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) <= headerRows {
		return nil
	}

	rows := make([]attendance.Row, 0, len(lines)-headerRows)
	for _, line := range lines[headerRows:] {
		rows = append(rows, attendance.NewRow(strings.Split(line, ",")))
	}
	return rows
}

// EmployeeSection implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) EmployeeSection(rows []attendance.Row, employeeID string) attendance.Section {
	start := -1
	for i, row := range rows {
		if row.IsUserIDMarker(employeeID) {
			start = i
			break
		}
	}
	if start == -1 {
		return attendance.Section{EmployeeID: employeeID}
	}

	end := len(rows)
	for i := start + 1; i < len(rows); i++ {
		if rows[i].IsUserIDMarker("") {
			end = i
			break
		}
	}

	return attendance.Section{
		EmployeeID: employeeID,
		Rows:       rows[start:end],
	}
}
