package models

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	ZoneStatusActive   = "active"
	ZoneStatusInactive = "inactive"
)

// GeofenceZone - круглая зона, в которой сотрудник должен находиться на смене.
// На время сессии отслеживания зоны не меняются.
type GeofenceZone struct {
	ID             uuid.UUID `json:"id"`
	LocationID     string    `json:"location_id"`
	Name           string    `json:"name"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	RadiusMeters   float64   `json:"radius_meters"`
	ExpectedBSSIDs []string  `json:"expected_bssids,omitempty"`
	ExpectedSSIDs  []string  `json:"expected_ssids,omitempty"`
	// StrictWiFi требует подтверждения по BSSID; nil означает настройку по умолчанию
	StrictWiFi     *bool     `json:"strict_wifi,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Center возвращает центр зоны как координату без точности
func (z GeofenceZone) Center() Coordinate {
	return Coordinate{Latitude: z.Latitude, Longitude: z.Longitude}
}

// WiFiStrict сообщает, требует ли зона строгой проверки WiFi
func (z GeofenceZone) WiFiStrict(defaultStrict bool) bool {
	if z.StrictWiFi != nil {
		return *z.StrictWiFi
	}
	return defaultStrict
}

// Validate отклоняет зоны, по которым нельзя вести проверку
func (z GeofenceZone) Validate() error {
	if math.IsNaN(z.RadiusMeters) || math.IsInf(z.RadiusMeters, 0) || z.RadiusMeters <= 0 {
		return fmt.Errorf("%w: radius must be greater than 0, got %v", ErrInvalidZone, z.RadiusMeters)
	}
	if math.IsNaN(z.Latitude) || z.Latitude < -90 || z.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidZone, z.Latitude)
	}
	if math.IsNaN(z.Longitude) || z.Longitude < -180 || z.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidZone, z.Longitude)
	}
	return nil
}

// ValidateZones проверяет все зоны и возвращает первую ошибку
func ValidateZones(zones []GeofenceZone) error {
	for _, z := range zones {
		if err := z.Validate(); err != nil {
			return fmt.Errorf("zone %s: %w", z.ID, err)
		}
	}
	return nil
}
