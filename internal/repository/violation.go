package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/attendance_guard/internal/models"
	"github.com/shenikar/attendance_guard/internal/service"
)

// ViolationRepository - журнал нарушений в PostgreSQL
type ViolationRepository struct {
	db *pgxpool.Pool
}

// NewViolationRepository создает новый экземпляр ViolationRepository
func NewViolationRepository(db *pgxpool.Pool) service.ViolationRepository {
	return &ViolationRepository{db: db}
}

// LogViolation добавляет нарушение в журнал аудита. Повтор того же
// события игнорируется.
func (r *ViolationRepository) LogViolation(ctx context.Context, event models.ViolationEvent, employeeID, locationID string) error {
	query := `
		INSERT INTO violations (id, employee_id, location_id, zone_id, type, message, distance_meters, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING;
	`
	_, err := r.db.Exec(ctx, query,
		event.ID,
		employeeID,
		locationID,
		event.ZoneID,
		string(event.Type),
		event.Message,
		event.DistanceMeters,
		event.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to log violation: %w", err)
	}
	return nil
}
