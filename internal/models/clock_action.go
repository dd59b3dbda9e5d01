package models

import "github.com/google/uuid"

// ClockAction - вид отметки
type ClockAction string

const (
	ClockActionIn         ClockAction = "clock_in"
	ClockActionOut        ClockAction = "clock_out"
	ClockActionBreakStart ClockAction = "break_start"
	ClockActionBreakEnd   ClockAction = "break_end"
)

// Valid сообщает, известно ли действие
func (a ClockAction) Valid() bool {
	switch a {
	case ClockActionIn, ClockActionOut, ClockActionBreakStart, ClockActionBreakEnd:
		return true
	}
	return false
}

// ClockVerdict - результат проверки попытки отметки
type ClockVerdict struct {
	Allowed         bool          `json:"allowed"`
	MatchedZoneID   *uuid.UUID    `json:"matched_zone_id,omitempty"`
	Closest         *ClosestZone  `json:"closest,omitempty"`
	WiFi            *WiFiMatch    `json:"wifi,omitempty"`
	AccuracyWarning *string       `json:"accuracy_warning,omitempty"`
	Reasons         []string      `json:"reasons,omitempty"`
	// EndedBreak - перерыв, закрытый принятым clock_out
	EndedBreak      *BreakSession `json:"ended_break,omitempty"`
	TrackingStopped bool          `json:"tracking_stopped,omitempty"`
}

// ClockRequest - одна попытка отметки прихода/ухода или перерыва.
// TimeEntryID нужен, чтобы при уходе закрыть незавершенный перерыв.
type ClockRequest struct {
	EmployeeID  string       `json:"employee_id"`
	LocationID  string       `json:"location_id"`
	TimeEntryID string       `json:"time_entry_id,omitempty"`
	Action      ClockAction  `json:"action"`
	Coordinate  Coordinate   `json:"coordinate"`
	WiFi        *WiFiNetwork `json:"wifi,omitempty"`
}
