package models

import (
	"time"

	"github.com/google/uuid"
)

type ViolationType string

const (
	ViolationLeftZone        ViolationType = "left_zone"
	ViolationWarningDistance ViolationType = "warning_distance"
)

// ViolationEvent возникает, когда два последовательных замера пересекают границу зоны.
// EmployeeID и LocationID заполняет сессия отслеживания.
type ViolationEvent struct {
	ID             uuid.UUID     `json:"id"`
	EmployeeID     string        `json:"employee_id,omitempty"`
	LocationID     string        `json:"location_id,omitempty"`
	ZoneID         uuid.UUID     `json:"zone_id"`
	Type           ViolationType `json:"type"`
	Message        string        `json:"message"`
	DistanceMeters float64       `json:"distance_meters"`
	OccurredAt     time.Time     `json:"occurred_at"`
}
