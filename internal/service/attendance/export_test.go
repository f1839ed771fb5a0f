package attendance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleExport mimics the machine report layout: a fixed metadata header,
// then one section per employee opened by a "User ID" marker row and closed
// by a "Total" row.
const sampleExport = `Attendance Report,,,
Device,TM-200,,
Period,01/07/2025 - 31/07/2025,,
,,,
Company,Techmire,,
Department,All,,
Generated,01/08/2025,,
User ID,EMP-001,,,,,,,,,,,,,
01/07/2025,Tue.,,,9:15,,17:45,,,,,,,,
02/07/2025,Wed.,,,9:45,,17:45,,,,,,,,
Total,,,,,,,,,,,,,,16:45
User ID,EMP-002,,,,,,,,,,,,,
01/07/2025,Tue.,,,9:00,,18:00,,,,,,,,
Total,,,,,,,,,,,,,,8:30
`

func TestParseExport(t *testing.T) {
	svc := &AttendanceServiceImpl{}

	rows := svc.ParseExport(sampleExport)
	require.Len(t, rows, 7)

	assert.Equal(t, "User ID", rows[0].Date)
	assert.Equal(t, "EMP-001", rows[0].Day)
	assert.Equal(t, "01/07/2025", rows[1].Date)
	assert.Equal(t, "9:15", rows[1].In)
	assert.Equal(t, "17:45", rows[1].Out)
	assert.Equal(t, "16:45", rows[3].Hours)
}

func TestParseExportDropsBlankLines(t *testing.T) {
	svc := &AttendanceServiceImpl{}

	// Blank and whitespace-only lines vanish before the header is counted.
	padded := strings.ReplaceAll(sampleExport, "User ID,EMP-001", "\n   \nUser ID,EMP-001")
	rows := svc.ParseExport(padded)
	require.Len(t, rows, 7)
	assert.Equal(t, "User ID", rows[0].Date)
}

func TestParseExportHeaderOnly(t *testing.T) {
	svc := &AttendanceServiceImpl{}

	header := strings.Join(strings.Split(sampleExport, "\n")[:7], "\n")
	assert.Nil(t, svc.ParseExport(header))
	assert.Nil(t, svc.ParseExport(""))
}

func TestEmployeeSection(t *testing.T) {
	svc := &AttendanceServiceImpl{}
	rows := svc.ParseExport(sampleExport)

	section := svc.EmployeeSection(rows, "EMP-001")
	require.Len(t, section.Rows, 4)
	assert.True(t, section.Rows[0].IsUserIDMarker("EMP-001"))
	assert.True(t, section.Rows[3].IsTotalMarker())

	// The last section runs to the end of the export.
	section = svc.EmployeeSection(rows, "EMP-002")
	require.Len(t, section.Rows, 3)
	assert.Equal(t, "01/07/2025", section.Rows[1].Date)
}

func TestEmployeeSectionMissing(t *testing.T) {
	svc := &AttendanceServiceImpl{}
	rows := svc.ParseExport(sampleExport)

	section := svc.EmployeeSection(rows, "EMP-999")
	assert.True(t, section.Empty())
	assert.Equal(t, "EMP-999", section.EmployeeID)
}
