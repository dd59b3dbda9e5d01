package models

import "time"

type AlertKind string

const (
	AlertGeofenceViolation AlertKind = "geofence_violation"
	AlertBreakPolicy       AlertKind = "break_policy_violation"
)

// Alert - конверт, который уходит во внешние каналы (вебхук, поток)
type Alert struct {
	Kind        AlertKind             `json:"kind"`
	EmployeeID  string                `json:"employee_id"`
	Violation   *ViolationEvent       `json:"violation,omitempty"`
	BreakPolicy *BreakPolicyViolation `json:"break_policy,omitempty"`
	Timestamp   time.Time             `json:"timestamp"`
}

// NewViolationAlert создает оповещение о нарушении геозоны
func NewViolationAlert(e ViolationEvent) Alert {
	return Alert{
		Kind:       AlertGeofenceViolation,
		EmployeeID: e.EmployeeID,
		Violation:  &e,
		Timestamp:  e.OccurredAt,
	}
}

// NewBreakPolicyAlert создает оповещение о превышении длительности перерыва
func NewBreakPolicyAlert(v BreakPolicyViolation) Alert {
	return Alert{
		Kind:        AlertBreakPolicy,
		EmployeeID:  v.EmployeeID,
		BreakPolicy: &v,
		Timestamp:   v.OccurredAt,
	}
}
