package models

import "github.com/google/uuid"

// ValidationResult - вердикт по одной точке и одной зоне.
// IsWarningDistance бывает true только вместе с IsInZone.
type ValidationResult struct {
	IsInZone               bool    `json:"is_in_zone"`
	IsWarningDistance      bool    `json:"is_warning_distance"`
	DistanceMeters         float64 `json:"distance_meters"`
	WarningThresholdMeters float64 `json:"warning_threshold_meters"`
	AccuracyWarning        *string `json:"accuracy_warning,omitempty"`
	AccuracyBlocked        bool    `json:"accuracy_blocked,omitempty"`
}

// ClosestZone - ближайшая к точке зона
type ClosestZone struct {
	ZoneID         uuid.UUID `json:"zone_id"`
	DistanceMeters float64   `json:"distance_meters"`
}

// MultiZoneResult - вердикт по одной точке и всем зонам локации
type MultiZoneResult struct {
	PerZone   map[uuid.UUID]ValidationResult `json:"per_zone"`
	InZoneIDs []uuid.UUID                    `json:"in_zone_ids"`
	Closest   *ClosestZone                   `json:"closest,omitempty"`
}

// InAnyZone сообщает, находится ли точка хотя бы в одной зоне
func (r MultiZoneResult) InAnyZone() bool {
	return len(r.InZoneIDs) > 0
}
