package v1

import (
	"github.com/shenikar/attendance_guard/internal/models"
	"github.com/shenikar/attendance_guard/internal/wifi"
)

// DTOToZoneModel преобразует DTO создания в зону, хэшируя BSSID
func DTOToZoneModel(dto CreateZoneRequest) *models.GeofenceZone {
	bssids := make([]string, 0, len(dto.ExpectedBSSIDs))
	for _, b := range dto.ExpectedBSSIDs {
		bssids = append(bssids, wifi.HashBSSID(b))
	}
	return &models.GeofenceZone{
		LocationID:     dto.LocationID,
		Name:           dto.Name,
		Latitude:       dto.Latitude,
		Longitude:      dto.Longitude,
		RadiusMeters:   dto.RadiusMeters,
		ExpectedBSSIDs: bssids,
		ExpectedSSIDs:  dto.ExpectedSSIDs,
		StrictWiFi:     dto.StrictWiFi,
	}
}

// ModelToZoneResponse преобразует зону в DTO ответа
func ModelToZoneResponse(model *models.GeofenceZone) *ZoneResponse {
	return &ZoneResponse{
		ID:             model.ID,
		LocationID:     model.LocationID,
		Name:           model.Name,
		Latitude:       model.Latitude,
		Longitude:      model.Longitude,
		RadiusMeters:   model.RadiusMeters,
		ExpectedBSSIDs: model.ExpectedBSSIDs,
		ExpectedSSIDs:  model.ExpectedSSIDs,
		StrictWiFi:     model.StrictWiFi,
		Status:         model.Status,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func ModelsToZoneResponses(zones []models.GeofenceZone) []*ZoneResponse {
	responses := make([]*ZoneResponse, len(zones))
	for i := range zones {
		responses[i] = ModelToZoneResponse(&zones[i])
	}
	return responses
}

// DTOToCoordinate преобразует DTO замера. Без времени замера RecordedAt остается нулевым.
func DTOToCoordinate(dto CoordinateRequest) models.Coordinate {
	c := models.Coordinate{
		Latitude:       dto.Latitude,
		Longitude:      dto.Longitude,
		AccuracyMeters: dto.AccuracyMeters,
	}
	if dto.RecordedAt != nil {
		c.RecordedAt = *dto.RecordedAt
	}
	return c
}

func DTOToWiFiNetwork(dto *WiFiNetworkRequest) *models.WiFiNetwork {
	if dto == nil {
		return nil
	}
	return &models.WiFiNetwork{SSID: dto.SSID, BSSID: dto.BSSID}
}

// DTOToClockRequest преобразует DTO отметки в запрос сервиса
func DTOToClockRequest(dto ClockVerifyRequest) models.ClockRequest {
	return models.ClockRequest{
		EmployeeID:  dto.EmployeeID,
		LocationID:  dto.LocationID,
		TimeEntryID: dto.TimeEntryID,
		Action:      models.ClockAction(dto.Action),
		Coordinate:  DTOToCoordinate(dto.Coordinate),
		WiFi:        DTOToWiFiNetwork(dto.WiFi),
	}
}
