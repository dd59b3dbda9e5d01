package models

import (
	"time"
)

// Coordinate - один замер местоположения от провайдера
type Coordinate struct {
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters *float64  `json:"accuracy_meters,omitempty"`
	RecordedAt     time.Time `json:"recorded_at"`
}

// HasAccuracy сообщает, передал ли провайдер погрешность
func (c Coordinate) HasAccuracy() bool {
	return c.AccuracyMeters != nil
}
