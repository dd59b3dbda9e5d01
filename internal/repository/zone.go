package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/attendance_guard/internal/models"
	"github.com/shenikar/attendance_guard/internal/service"
)

const zoneColumns = `
	id,
	location_id,
	name,
	latitude,
	longitude,
	radius_meters,
	expected_bssids,
	expected_ssids,
	strict_wifi,
	status,
	created_at,
	updated_at`

// ZoneRepository хранит геозоны в PostgreSQL и кэширует их в Redis
type ZoneRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

// NewZoneRepository создает новый ZoneRepository
func NewZoneRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.ZoneRepository {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &ZoneRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// CreateZone создает новую зону в бд и заполняет ее сгенерированные поля
func (r *ZoneRepository) CreateZone(ctx context.Context, zone *models.GeofenceZone) error {
	query := `
		INSERT INTO geofence_zones (location_id, name, latitude, longitude, radius_meters, expected_bssids, expected_ssids, strict_wifi, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		zone.LocationID,
		zone.Name,
		zone.Latitude,
		zone.Longitude,
		zone.RadiusMeters,
		nonNil(zone.ExpectedBSSIDs),
		nonNil(zone.ExpectedSSIDs),
		zone.StrictWiFi,
		zone.Status,
	).Scan(&zone.ID, &zone.CreatedAt, &zone.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create zone: %w", err)
	}
	return nil
}

// GetZone возвращает зону по ее UUID независимо от статуса
func (r *ZoneRepository) GetZone(ctx context.Context, id uuid.UUID) (*models.GeofenceZone, error) {
	query := `SELECT ` + zoneColumns + ` FROM geofence_zones WHERE id = $1;`

	zone, err := scanZone(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("zone %s: %w", id, models.ErrZoneNotFound)
		}
		return nil, fmt.Errorf("failed to get zone by id: %w", err)
	}
	return zone, nil
}

// ListActiveZones возвращает активные зоны локации, старые первыми
func (r *ZoneRepository) ListActiveZones(ctx context.Context, locationID string) ([]models.GeofenceZone, error) {
	query := `
		SELECT ` + zoneColumns + `
		FROM geofence_zones
		WHERE location_id = $1 AND status = 'active'
		ORDER BY created_at, id;
	`
	rows, err := r.db.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	defer rows.Close()

	zones := make([]models.GeofenceZone, 0)
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan zone row: %w", err)
		}
		zones = append(zones, *zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error zone list iteration: %w", err)
	}
	return zones, nil
}

// DeactivateZone (деактивация) устанавливает статус 'inactive' для зоны
func (r *ZoneRepository) DeactivateZone(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE geofence_zones SET
			status = 'inactive',
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate zone: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("zone %s: %w", id, models.ErrZoneNotFound)
	}
	return nil
}

// GetZonesFromCache пытается получить зоны локации из Redis. При промахе возвращает nil, nil
func (r *ZoneRepository) GetZonesFromCache(ctx context.Context, locationID string) ([]models.GeofenceZone, error) {
	val, err := r.redisClient.Get(ctx, zonesCacheKey(locationID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get zones from cache: %w", err)
	}

	zones := make([]models.GeofenceZone, 0)
	if err := json.Unmarshal(val, &zones); err != nil {
		return nil, fmt.Errorf("failed to unmarshal zones from cache: %w", err)
	}
	return zones, nil
}

// SetZonesCache сохраняет зоны локации в Redis
func (r *ZoneRepository) SetZonesCache(ctx context.Context, locationID string, zones []models.GeofenceZone) error {
	val, err := json.Marshal(zones)
	if err != nil {
		return fmt.Errorf("failed to marshal zones for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, zonesCacheKey(locationID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set zones in cache: %w", err)
	}
	return nil
}

// InvalidateZonesCache удаляет зоны локации из Redis кэша
func (r *ZoneRepository) InvalidateZonesCache(ctx context.Context, locationID string) error {
	if err := r.redisClient.Del(ctx, zonesCacheKey(locationID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate zones cache: %w", err)
	}
	return nil
}

func zonesCacheKey(locationID string) string {
	return fmt.Sprintf("zones:location:%s", locationID)
}

func scanZone(row pgx.Row) (*models.GeofenceZone, error) {
	zone := &models.GeofenceZone{}
	err := row.Scan(
		&zone.ID,
		&zone.LocationID,
		&zone.Name,
		&zone.Latitude,
		&zone.Longitude,
		&zone.RadiusMeters,
		&zone.ExpectedBSSIDs,
		&zone.ExpectedSSIDs,
		&zone.StrictWiFi,
		&zone.Status,
		&zone.CreatedAt,
		&zone.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return zone, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
