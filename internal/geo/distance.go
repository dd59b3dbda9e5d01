package geo

import (
	"math"

	"github.com/shenikar/attendance_guard/internal/models"
)

// EarthRadiusMeters - средний радиус Земли для сферического приближения
const EarthRadiusMeters = 6371000.0

// Distance возвращает расстояние по большому кругу между a и b в метрах
// по формуле гаверсинусов.
func Distance(a, b models.Coordinate) float64 {
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
