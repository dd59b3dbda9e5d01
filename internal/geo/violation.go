package geo

import (
	"fmt"

	"github.com/shenikar/attendance_guard/internal/models"
)

// Detect сравнивает два последовательных замера с зоной и сообщает о
// пересечении границы. Первый замер сессии (previous == nil) только задает
// точку отсчета. Выход из зоны важнее попадания в зону предупреждения.
// Точность провайдера здесь носит рекомендательный характер.
func Detect(previous *models.Coordinate, current models.Coordinate, zone models.GeofenceZone) (models.ViolationEvent, bool) {
	return AccuracyPolicyWarn.Detect(previous, current, zone)
}

// Detect работает как geo.Detect, но оба замера проходят через политику
// точности. При block неточный замер считается вне зоны.
func (p AccuracyPolicy) Detect(previous *models.Coordinate, current models.Coordinate, zone models.GeofenceZone) (models.ViolationEvent, bool) {
	if previous == nil {
		return models.ViolationEvent{}, false
	}

	prev := p.Apply(Validate(*previous, zone))
	if !prev.IsInZone {
		return models.ViolationEvent{}, false
	}

	curr := p.Apply(Validate(current, zone))
	event := models.ViolationEvent{
		ZoneID:         zone.ID,
		DistanceMeters: curr.DistanceMeters,
		OccurredAt:     current.RecordedAt,
	}

	switch {
	case !curr.IsInZone:
		event.Type = models.ViolationLeftZone
		event.Message = fmt.Sprintf("left zone %s: %.0fm from center, radius is %.0fm",
			zoneLabel(zone), curr.DistanceMeters, zone.RadiusMeters)
		if curr.AccuracyBlocked {
			event.Message += ", location too inaccurate to confirm presence"
		}
	case curr.IsWarningDistance:
		event.Type = models.ViolationWarningDistance
		event.Message = fmt.Sprintf("approaching the edge of zone %s: %.0fm from center, warning at %.0fm",
			zoneLabel(zone), curr.DistanceMeters, curr.WarningThresholdMeters)
	default:
		return models.ViolationEvent{}, false
	}

	return event, true
}

func zoneLabel(zone models.GeofenceZone) string {
	if zone.Name != "" {
		return zone.Name
	}
	return zone.ID.String()
}
