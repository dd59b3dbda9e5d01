package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateZoneRequest DTO для создания геозоны
// @Description DTO for creating a geofence zone. BSSIDs are stored hashed.
type CreateZoneRequest struct {
	LocationID     string   `json:"location_id" validate:"required,max=255"`
	Name           string   `json:"name" validate:"required,min=2,max=255"`
	Latitude       float64  `json:"latitude" validate:"latitude"`
	Longitude      float64  `json:"longitude" validate:"longitude"`
	RadiusMeters   float64  `json:"radius_meters" validate:"required,gt=0"`
	ExpectedBSSIDs []string `json:"expected_bssids,omitempty" validate:"omitempty,dive,mac"`
	ExpectedSSIDs  []string `json:"expected_ssids,omitempty" validate:"omitempty,dive,required,max=32"`
	StrictWiFi     *bool    `json:"strict_wifi,omitempty"`
}

// ZoneResponse DTO геозоны
// @Description DTO for a geofence zone
type ZoneResponse struct {
	ID             uuid.UUID `json:"id"`
	LocationID     string    `json:"location_id"`
	Name           string    `json:"name"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	RadiusMeters   float64   `json:"radius_meters"`
	ExpectedBSSIDs []string  `json:"expected_bssids,omitempty"`
	ExpectedSSIDs  []string  `json:"expected_ssids,omitempty"`
	StrictWiFi     *bool     `json:"strict_wifi,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CoordinateRequest DTO одного замера местоположения
// @Description DTO for one location sample
type CoordinateRequest struct {
	Latitude       float64    `json:"latitude" validate:"latitude"`
	Longitude      float64    `json:"longitude" validate:"longitude"`
	AccuracyMeters *float64   `json:"accuracy_meters,omitempty" validate:"omitempty,gte=0"`
	RecordedAt     *time.Time `json:"recorded_at,omitempty"`
}

// WiFiNetworkRequest DTO точки доступа, к которой подключено устройство
// @Description DTO for the access point a device is connected to
type WiFiNetworkRequest struct {
	SSID  string `json:"ssid" validate:"max=32"`
	BSSID string `json:"bssid" validate:"omitempty,mac"`
}

// ValidateLocationRequest DTO проверки замера по одной зоне
// @Description DTO for checking a sample against one zone
type ValidateLocationRequest struct {
	ZoneID     string            `json:"zone_id" validate:"required,uuid"`
	Coordinate CoordinateRequest `json:"coordinate"`
}

// CheckLocationRequest DTO проверки замера по всем зонам локации
// @Description DTO for checking a sample against every zone of a location
type CheckLocationRequest struct {
	LocationID string            `json:"location_id" validate:"required"`
	Coordinate CoordinateRequest `json:"coordinate"`
}

// VerifyWiFiRequest DTO подтверждения по WiFi. Без strict берется WIFI_STRICT.
// @Description DTO for WiFi corroboration
type VerifyWiFiRequest struct {
	Observed       *WiFiNetworkRequest `json:"observed,omitempty"`
	ExpectedBSSIDs []string            `json:"expected_bssids"`
	ExpectedSSIDs  []string            `json:"expected_ssids"`
	Strict         *bool               `json:"strict,omitempty"`
}

// ClockVerifyRequest DTO проверки отметки
// @Description DTO for guarding a clock action
type ClockVerifyRequest struct {
	EmployeeID  string              `json:"employee_id" validate:"required"`
	LocationID  string              `json:"location_id" validate:"required"`
	Action      string              `json:"action" validate:"required,oneof=clock_in clock_out break_start break_end"`
	TimeEntryID string              `json:"time_entry_id,omitempty" validate:"max=255"`
	Coordinate  CoordinateRequest   `json:"coordinate"`
	WiFi        *WiFiNetworkRequest `json:"wifi,omitempty"`
}

// StartBreakRequest DTO начала перерыва
// @Description DTO for starting a break
type StartBreakRequest struct {
	EmployeeID  string `json:"employee_id" validate:"required"`
	TimeEntryID string `json:"time_entry_id" validate:"required"`
	Kind        string `json:"kind" validate:"required,oneof=lunch break other"`
}

// StartTrackingRequest DTO запуска отслеживания
// @Description DTO for starting location tracking
type StartTrackingRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	LocationID string `json:"location_id" validate:"required"`
}

// RateLimitedResponse DTO ответа 429
// @Description DTO returned when an action is inside its cooldown window
type RateLimitedResponse struct {
	Error            string `json:"error"`
	RemainingSeconds int    `json:"remaining_seconds"`
}
