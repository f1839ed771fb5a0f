package attendance

import "strings"

// Cell positions in the raw machine export. The device always emits the same
// fixed-width layout; the columns between these carry device noise (exception
// codes, shift ids) the engine never reads.
const (
	cellDate  = 0
	cellDay   = 1
	cellIn    = 4
	cellOut   = 6
	cellHours = 14
)

// Section marker values in the first cell.
const (
	markerUserID = "User ID"
	markerTotal  = "Total"
)

// Row is one comma-separated line of the export with the meaningful cells
// lifted into named fields. Cells keeps the full raw line for re-display.
type Row struct {
	Date  string // DD/MM/YYYY on data rows, "User ID"/"Total" on marker rows
	Day   string // day-of-week abbreviation: "Sun.", "Sat.", ...
	In    string // check-in clock time, H:MM; "0:00" or empty means none
	Out   string // check-out clock time
	Hours string // per-row or period-total worked hours, H:MM
	Cells []string
}

// NewRow builds a Row from raw cells. Short lines simply leave the trailing
// fields empty; the classifier treats them as malformed and skips them.
func NewRow(cells []string) Row {
	return Row{
		Date:  cellAt(cells, cellDate),
		Day:   cellAt(cells, cellDay),
		In:    cellAt(cells, cellIn),
		Out:   cellAt(cells, cellOut),
		Hours: cellAt(cells, cellHours),
		Cells: cells,
	}
}

func cellAt(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

// IsUserIDMarker reports whether the row opens an employee section for the
// given identifier. With an empty id it matches any section marker.
func (r Row) IsUserIDMarker(employeeID string) bool {
	if r.Date != markerUserID {
		return false
	}
	return employeeID == "" || r.Day == employeeID
}

// IsTotalMarker reports whether this is the section's period-total row.
func (r Row) IsTotalMarker() bool {
	return r.Date == markerTotal
}

// Section is the contiguous run of export rows belonging to one employee,
// starting at its "User ID" marker. An empty Rows slice means the employee
// has no data in this export, which is not an error.
type Section struct {
	EmployeeID string
	Rows       []Row
}

func (s Section) Empty() bool {
	return len(s.Rows) == 0
}

// RawRows returns the section's underlying cell data, for persistence and
// re-display alongside the computed payroll.
func (s Section) RawRows() [][]string {
	rows := make([][]string, 0, len(s.Rows))
	for _, r := range s.Rows {
		rows = append(rows, r.Cells)
	}
	return rows
}

// Summary is the per-employee classification result over one section.
// Absent and late/early are mutually exclusive per day: a day is absent only
// when both clock times are missing.
type Summary struct {
	LateCount   int
	EarlyCount  int
	AbsentCount int
	LateDates   []string
	EarlyDates  []string
	AbsentDates []string
	TotalHours  float64 // decimal hours from the section's "Total" row
}
