package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkingDays(t *testing.T) {
	svc := &AttendanceServiceImpl{}

	cases := []struct {
		year        int
		month       time.Month
		saturdayOff bool
		want        int
	}{
		// July 2025: 31 days, 4 Sundays, 4 Saturdays
		{2025, time.July, false, 27},
		{2025, time.July, true, 23},
		// February 2025: 28 days, 4 Sundays, 4 Saturdays
		{2025, time.February, false, 24},
		{2025, time.February, true, 20},
		// February 2024 (leap): 29 days, 4 Sundays, 4 Saturdays
		{2024, time.February, false, 25},
		// September 2025: 30 days, 4 Sundays
		{2025, time.September, false, 26},
	}
	for _, c := range cases {
		got := svc.WorkingDays(c.year, c.month, c.saturdayOff)
		assert.Equal(t, c.want, got, "WorkingDays(%d, %v, %v)", c.year, c.month, c.saturdayOff)
	}
}
