package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	domain "github.com/techmire/payroll-backend-go/internal/domain/attendance"
)

func dataRow(date, day, in, out string) domain.Row {
	cells := make([]string, 15)
	cells[0] = date
	cells[1] = day
	cells[4] = in
	cells[6] = out
	return domain.NewRow(cells)
}

func totalRow(hours string) domain.Row {
	cells := make([]string, 15)
	cells[0] = "Total"
	cells[1] = "x"
	cells[14] = hours
	return domain.NewRow(cells)
}

func TestSummarizeClassification(t *testing.T) {
	svc := &AttendanceServiceImpl{}

	section := domain.Section{
		EmployeeID: "EMP-001",
		Rows: []domain.Row{
			dataRow("01/07/2025", "Tue.", "9:30", "17:30"),  // exactly on both thresholds: neither
			dataRow("02/07/2025", "Wed.", "9:31", "17:30"),  // late
			dataRow("03/07/2025", "Thu.", "9:30", "17:29"),  // early
			dataRow("04/07/2025", "Fri.", "10:00", "16:00"), // both late and early
			dataRow("05/07/2025", "Sat.", "0:00", "0:00"),   // worked Saturday, absent
			dataRow("06/07/2025", "Sun.", "0:00", "0:00"),   // Sunday always skipped
			totalRow("168:30"),
		},
	}

	sum := svc.Summarize(section, false)

	assert.Equal(t, 2, sum.LateCount)
	assert.Equal(t, []string{"02/07/2025", "04/07/2025"}, sum.LateDates)
	assert.Equal(t, 2, sum.EarlyCount)
	assert.Equal(t, []string{"03/07/2025", "04/07/2025"}, sum.EarlyDates)
	assert.Equal(t, 1, sum.AbsentCount)
	assert.Equal(t, []string{"05/07/2025"}, sum.AbsentDates)
	assert.InDelta(t, 168.5, sum.TotalHours, 1e-9)
}

func TestSummarizeSaturdayOff(t *testing.T) {
	svc := &AttendanceServiceImpl{}

	section := domain.Section{
		Rows: []domain.Row{
			dataRow("05/07/2025", "Sat.", "0:00", "0:00"),
			dataRow("07/07/2025", "Mon.", "0:00", "0:00"),
		},
	}

	sum := svc.Summarize(section, true)
	assert.Equal(t, 1, sum.AbsentCount)
	assert.Equal(t, []string{"07/07/2025"}, sum.AbsentDates)
}

func TestSummarizeSingleMissingTime(t *testing.T) {
	svc := &AttendanceServiceImpl{}

	// One missing clock time is not an absence; the present time is still
	// judged against its threshold.
	section := domain.Section{
		Rows: []domain.Row{
			dataRow("01/07/2025", "Tue.", "9:45", ""),      // late, out missing
			dataRow("02/07/2025", "Wed.", "0:00", "15:00"), // early, in missing
			dataRow("03/07/2025", "Thu.", "9:00", ""),      // on time, no out: nothing
		},
	}

	sum := svc.Summarize(section, false)
	assert.Equal(t, 1, sum.LateCount)
	assert.Equal(t, 1, sum.EarlyCount)
	assert.Equal(t, 0, sum.AbsentCount)
}

func TestSummarizeSkipsMalformedRows(t *testing.T) {
	svc := &AttendanceServiceImpl{}

	section := domain.Section{
		Rows: []domain.Row{
			domain.NewRow([]string{"User ID", "EMP-001"}),
			dataRow("1/07/2025", "Tue.", "0:00", "0:00"), // not DD/MM/YYYY
			dataRow("garbage", "Wed.", "0:00", "0:00"),
			domain.NewRow([]string{"01/07/2025"}), // date but no day cell
		},
	}

	sum := svc.Summarize(section, false)
	assert.Equal(t, 0, sum.AbsentCount)
	assert.Equal(t, 0, sum.LateCount)
	assert.Equal(t, 0, sum.EarlyCount)
}

func TestClockMinutes(t *testing.T) {
	cases := []struct {
		input   string
		minutes int
		present bool
	}{
		{"9:30", 570, true},
		{"17:29", 1049, true},
		{"0:01", 1, true},
		{"0:00", 0, false},
		{"", 0, false},
		{"abc", 0, false},
		{"9.30", 0, false},
	}
	for _, c := range cases {
		minutes, present := clockMinutes(c.input)
		assert.Equal(t, c.present, present, "clockMinutes(%q)", c.input)
		assert.Equal(t, c.minutes, minutes, "clockMinutes(%q)", c.input)
	}
}

func TestDecimalHours(t *testing.T) {
	assert.InDelta(t, 176.5, decimalHours("176:30"), 1e-9)
	assert.InDelta(t, 8.25, decimalHours("8:15"), 1e-9)
	assert.Equal(t, 0.0, decimalHours("0:00"))
	assert.Equal(t, 0.0, decimalHours(""))
	assert.Equal(t, 0.0, decimalHours("broken"))
}
