package domain

import "fmt"

// DutyStatus is one of the four FMCSA-tracked activity states.
// Each status maps to a fixed row on the paper log grid.
type DutyStatus string

const (
	StatusOffDuty      DutyStatus = "OFF_DUTY"
	StatusSleeperBerth DutyStatus = "SLEEPER_BERTH"
	StatusDriving      DutyStatus = "DRIVING"
	StatusOnDuty       DutyStatus = "ON_DUTY"
)

// RowIndex returns the grid row for a status, top to bottom.
func (s DutyStatus) RowIndex() int {
	switch s {
	case StatusOffDuty:
		return 0
	case StatusSleeperBerth:
		return 1
	case StatusDriving:
		return 2
	case StatusOnDuty:
		return 3
	}
	return 0
}

// DisplayName returns the row label used on the printed log form.
func (s DutyStatus) DisplayName() string {
	switch s {
	case StatusOffDuty:
		return "Off Duty"
	case StatusSleeperBerth:
		return "Sleeper Berth"
	case StatusDriving:
		return "Driving"
	case StatusOnDuty:
		return "On Duty"
	}
	return string(s)
}

// ParseDutyStatus converts a wire value into a DutyStatus.
// "SLEEPER" is accepted as a legacy alias for SLEEPER_BERTH.
func ParseDutyStatus(v string) (DutyStatus, error) {
	switch v {
	case "OFF_DUTY":
		return StatusOffDuty, nil
	case "SLEEPER_BERTH", "SLEEPER":
		return StatusSleeperBerth, nil
	case "DRIVING":
		return StatusDriving, nil
	case "ON_DUTY":
		return StatusOnDuty, nil
	}
	return "", fmt.Errorf("parse duty status: unknown status %q", v)
}

// AllStatuses lists the four statuses in grid-row order.
func AllStatuses() []DutyStatus {
	return []DutyStatus{StatusOffDuty, StatusSleeperBerth, StatusDriving, StatusOnDuty}
}
