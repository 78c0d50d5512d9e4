package domain

import "testing"

func TestParseDutyStatus(t *testing.T) {
	cases := []struct {
		in   string
		want DutyStatus
	}{
		{"OFF_DUTY", StatusOffDuty},
		{"SLEEPER_BERTH", StatusSleeperBerth},
		{"SLEEPER", StatusSleeperBerth}, // legacy alias
		{"DRIVING", StatusDriving},
		{"ON_DUTY", StatusOnDuty},
	}
	for _, tc := range cases {
		got, err := ParseDutyStatus(tc.in)
		if err != nil {
			t.Fatalf("ParseDutyStatus(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDutyStatus(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseDutyStatusRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "off_duty", "PARKED", "DRIVING "} {
		if _, err := ParseDutyStatus(in); err == nil {
			t.Errorf("ParseDutyStatus(%q): expected error", in)
		}
	}
}

func TestRowIndexOrder(t *testing.T) {
	for i, s := range AllStatuses() {
		if s.RowIndex() != i {
			t.Fatalf("%s.RowIndex() = %d, want %d", s, s.RowIndex(), i)
		}
	}
}

func TestDisplayName(t *testing.T) {
	cases := map[DutyStatus]string{
		StatusOffDuty:      "Off Duty",
		StatusSleeperBerth: "Sleeper Berth",
		StatusDriving:      "Driving",
		StatusOnDuty:       "On Duty",
	}
	for s, want := range cases {
		if got := s.DisplayName(); got != want {
			t.Errorf("%s.DisplayName() = %q, want %q", s, got, want)
		}
	}
}
