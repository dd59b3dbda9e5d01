package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type BreakKind string

const (
	BreakKindLunch BreakKind = "lunch"
	BreakKindBreak BreakKind = "break"
	BreakKindOther BreakKind = "other"
)

// ParseBreakKind сопоставляет присланный клиентом тип перерыва с известным
func ParseBreakKind(s string) (BreakKind, error) {
	switch BreakKind(s) {
	case BreakKindLunch, BreakKindBreak, BreakKindOther:
		return BreakKind(s), nil
	}
	return "", fmt.Errorf("unknown break kind %q", s)
}

type BreakStatus string

const (
	BreakStatusActive    BreakStatus = "active"
	BreakStatusCompleted BreakStatus = "completed"
)

// BreakSession - один перерыв в рамках записи рабочего времени
type BreakSession struct {
	ID              uuid.UUID   `json:"id"`
	EmployeeID      string      `json:"employee_id"`
	TimeEntryID     string      `json:"time_entry_id"`
	Kind            BreakKind   `json:"kind"`
	Status          BreakStatus `json:"status"`
	StartedAt       time.Time   `json:"started_at"`
	EndedAt         *time.Time  `json:"ended_at,omitempty"`
	DurationMinutes *int        `json:"duration_minutes,omitempty"`
	// Forced выставляется, если перерыв закрыт по превышению лимита
	Forced bool `json:"forced"`
}

// BreakPolicyViolation - событие о перерыве, который превысил допустимую
// длительность и был завершен watchdog
type BreakPolicyViolation struct {
	SessionID      uuid.UUID `json:"session_id"`
	EmployeeID     string    `json:"employee_id"`
	TimeEntryID    string    `json:"time_entry_id"`
	ElapsedMinutes int       `json:"elapsed_minutes"`
	MaxMinutes     int       `json:"max_minutes"`
	Message        string    `json:"message"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// BreakSummary - перерывы одной записи рабочего времени
type BreakSummary struct {
	TimeEntryID  string         `json:"time_entry_id"`
	Sessions     []BreakSession `json:"sessions"`
	Active       *BreakSession  `json:"active,omitempty"`
	TotalMinutes int            `json:"total_minutes"`
}

// NewBreakSummary считает сумму завершенных перерывов и находит активный
func NewBreakSummary(timeEntryID string, sessions []BreakSession) BreakSummary {
	summary := BreakSummary{
		TimeEntryID: timeEntryID,
		Sessions:    sessions,
	}
	if summary.Sessions == nil {
		summary.Sessions = []BreakSession{}
	}
	for i := range summary.Sessions {
		s := summary.Sessions[i]
		switch {
		case s.Status == BreakStatusActive:
			summary.Active = &s
		case s.DurationMinutes != nil:
			summary.TotalMinutes += *s.DurationMinutes
		}
	}
	return summary
}
