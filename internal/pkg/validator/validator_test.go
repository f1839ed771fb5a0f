package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidCNIC(t *testing.T) {
	valid := []string{"42101-1234567-1", "4210112345671"}
	invalid := []string{"42101-123456-1", "42101123456", "42101-1234567-12", "abcde-1234567-1", ""}
	for _, cnic := range valid {
		if !IsValidCNIC(cnic) {
			t.Errorf("IsValidCNIC(%q) = false, want true", cnic)
		}
	}
	for _, cnic := range invalid {
		if IsValidCNIC(cnic) {
			t.Errorf("IsValidCNIC(%q) = true, want false", cnic)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"9:00", "09:30", "17:30", "0:00", "23:59"}
	invalid := []string{"", "9", "9:0", "9:60", "9:5", "930", "9.30"}
	for _, s := range valid {
		if !IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestParseMonth(t *testing.T) {
	year, month, ok := ParseMonth("2025-03")
	if !ok || year != 2025 || month != time.March {
		t.Errorf("ParseMonth(\"2025-03\") = (%d, %v, %v), want (2025, March, true)", year, month, ok)
	}

	for _, s := range []string{"", "2025", "2025-13", "03-2025", "2025-3-01"} {
		if _, _, ok := ParseMonth(s); ok {
			t.Errorf("ParseMonth(%q) = ok, want invalid", s)
		}
	}
}
