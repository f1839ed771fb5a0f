package payroll

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestGeneratePayrollRequestValidate(t *testing.T) {
	cases := []struct {
		name    string
		req     GeneratePayrollRequest
		wantErr bool
	}{
		{"valid", GeneratePayrollRequest{FileID: "f1", Month: "2025-07"}, false},
		{"missing file", GeneratePayrollRequest{Month: "2025-07"}, true},
		{"missing month", GeneratePayrollRequest{FileID: "f1"}, true},
		{"bad month format", GeneratePayrollRequest{FileID: "f1", Month: "07/2025"}, true},
		{"negative leaves", GeneratePayrollRequest{FileID: "f1", Month: "2025-07", OfficialLeaves: -1}, true},
		{"negative hours", GeneratePayrollRequest{FileID: "f1", Month: "2025-07", AllowedHoursPerDay: -8}, true},
	}
	for _, c := range cases {
		err := c.req.Validate()
		if (err != nil) != c.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", c.name, err, c.wantErr)
		}
	}
}

func TestGeneratePayrollRequestSettings(t *testing.T) {
	req := GeneratePayrollRequest{
		FileID:               "f1",
		Month:                "2025-07",
		SaturdayOffEmployees: []string{"EMP-002"},
		OfficialLeaves:       2,
	}

	settings, err := req.Settings()
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}
	if settings.Year != 2025 || settings.Month != time.July {
		t.Errorf("Settings() period = %d-%v, want 2025-July", settings.Year, settings.Month)
	}
	if settings.AllowedHoursPerDay != 8 {
		t.Errorf("Settings() AllowedHoursPerDay = %v, want default 8", settings.AllowedHoursPerDay)
	}
	if settings.MonthKey() != "2025-07" {
		t.Errorf("MonthKey() = %q, want %q", settings.MonthKey(), "2025-07")
	}
	if !settings.SaturdayOff("EMP-002") || settings.SaturdayOff("EMP-001") {
		t.Errorf("SaturdayOff misclassified employees")
	}
}

func TestToResponseNormalizesNilSlices(t *testing.T) {
	resp := ToResponse(Record{EmployeeID: "EMP-001"})

	if resp.LateDates == nil || resp.EarlyDates == nil || resp.AbsentDates == nil || resp.SectionRows == nil {
		t.Fatal("ToResponse left nil slices; JSON consumers expect arrays")
	}
}

// The persisted field names are consumed verbatim downstream; the two odd
// ones are worth pinning.
func TestRecordResponseFieldNames(t *testing.T) {
	b, err := json.Marshal(ToResponse(Record{}))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	s := string(b)
	if !strings.Contains(s, `"Salary_Cap"`) {
		t.Errorf("serialized record missing Salary_Cap key: %s", s)
	}
	if !strings.Contains(s, `"table_section_data"`) {
		t.Errorf("serialized record missing table_section_data key: %s", s)
	}
}
