package geo

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/attendance_guard/internal/models"
)

// AccuracyPolicy определяет, что делать, если погрешность провайдера больше радиуса зоны
type AccuracyPolicy string

const (
	// AccuracyPolicyWarn оставляет вердикт и только добавляет предупреждение
	AccuracyPolicyWarn AccuracyPolicy = "warn"
	// AccuracyPolicyBlock считает такие замеры вне зоны
	AccuracyPolicyBlock AccuracyPolicy = "block"
)

// ParseAccuracyPolicy разбирает значение ACCURACY_POLICY, пустое значение означает warn
func ParseAccuracyPolicy(s string) (AccuracyPolicy, error) {
	switch p := AccuracyPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", AccuracyPolicyWarn:
		return AccuracyPolicyWarn, nil
	case AccuracyPolicyBlock:
		return p, nil
	default:
		return "", fmt.Errorf("unknown accuracy policy %q", s)
	}
}

// Apply применяет политику к одному результату
func (p AccuracyPolicy) Apply(r models.ValidationResult) models.ValidationResult {
	if p != AccuracyPolicyBlock || r.AccuracyWarning == nil {
		return r
	}
	r.IsInZone = false
	r.IsWarningDistance = false
	r.AccuracyBlocked = true
	return r
}

// ApplyAll применяет политику ко всем зонам и пересобирает список зон,
// в которых находится точка, в исходном порядке
func (p AccuracyPolicy) ApplyAll(r models.MultiZoneResult, zones []models.GeofenceZone) models.MultiZoneResult {
	if p != AccuracyPolicyBlock {
		return r
	}
	inZone := make([]uuid.UUID, 0, len(r.InZoneIDs))
	for _, zone := range zones {
		zr, ok := r.PerZone[zone.ID]
		if !ok {
			continue
		}
		zr = p.Apply(zr)
		r.PerZone[zone.ID] = zr
		if zr.IsInZone {
			inZone = append(inZone, zone.ID)
		}
	}
	r.InZoneIDs = inZone
	return r
}
