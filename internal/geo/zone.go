package geo

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/attendance_guard/internal/models"
)

// WarningRatio доля радиуса, после которой замер внутри зоны считается близким к границе
const WarningRatio = 0.5

// Validate проверяет одну точку относительно одной зоны.
// Точность провайдера хуже радиуса зоны попадает в предупреждение, сам вердикт не меняется.
func Validate(loc models.Coordinate, zone models.GeofenceZone) models.ValidationResult {
	d := Distance(loc, zone.Center())
	inZone := d <= zone.RadiusMeters
	threshold := zone.RadiusMeters * WarningRatio

	res := models.ValidationResult{
		IsInZone:               inZone,
		IsWarningDistance:      inZone && d > threshold,
		DistanceMeters:         d,
		WarningThresholdMeters: threshold,
	}

	if loc.HasAccuracy() && *loc.AccuracyMeters > zone.RadiusMeters {
		msg := fmt.Sprintf("GPS accuracy of %.0fm exceeds the zone radius of %.0fm, location may be unreliable",
			*loc.AccuracyMeters, zone.RadiusMeters)
		res.AccuracyWarning = &msg
	}

	return res
}

// ValidateAll проверяет точку относительно всех зон локации.
// Ближайшей считается первая зона с минимальным расстоянием.
func ValidateAll(loc models.Coordinate, zones []models.GeofenceZone) models.MultiZoneResult {
	res := models.MultiZoneResult{
		PerZone:   make(map[uuid.UUID]models.ValidationResult, len(zones)),
		InZoneIDs: make([]uuid.UUID, 0, len(zones)),
	}

	for _, zone := range zones {
		r := Validate(loc, zone)
		res.PerZone[zone.ID] = r
		if r.IsInZone {
			res.InZoneIDs = append(res.InZoneIDs, zone.ID)
		}
		if res.Closest == nil || r.DistanceMeters < res.Closest.DistanceMeters {
			res.Closest = &models.ClosestZone{ZoneID: zone.ID, DistanceMeters: r.DistanceMeters}
		}
	}

	return res
}
