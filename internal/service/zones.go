package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/attendance_guard/internal/models"
	"github.com/sirupsen/logrus"
)

// ZoneCatalog - справочник зон для проверок и отслеживания. Чтение идет
// через кэш, запись его сбрасывает.
type ZoneCatalog struct {
	repo   ZoneRepository
	logger *logrus.Logger
}

// NewZoneCatalog создает новый ZoneCatalog
func NewZoneCatalog(repo ZoneRepository, logger *logrus.Logger) *ZoneCatalog {
	return &ZoneCatalog{
		repo:   repo,
		logger: logger,
	}
}

// CreateZone проверяет и сохраняет новую активную зону
func (c *ZoneCatalog) CreateZone(ctx context.Context, zone *models.GeofenceZone) error {
	log := c.logger.WithFields(logrus.Fields{
		"service":     "zones",
		"method":      "CreateZone",
		"location_id": zone.LocationID,
		"name":        zone.Name,
	})

	if err := zone.Validate(); err != nil {
		log.WithError(err).Warn("Rejecting invalid zone")
		return fmt.Errorf("service: %w", err)
	}

	zone.Status = models.ZoneStatusActive
	if err := c.repo.CreateZone(ctx, zone); err != nil {
		log.WithError(err).Error("Failed to create zone in repository")
		return fmt.Errorf("service: could not create zone: %w", err)
	}
	c.invalidate(ctx, log, zone.LocationID)

	log.WithField("zone_id", zone.ID).Info("Zone created successfully")
	return nil
}

// GetZone возвращает активную зону по id
func (c *ZoneCatalog) GetZone(ctx context.Context, id uuid.UUID) (*models.GeofenceZone, error) {
	zone, err := c.repo.GetZone(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get zone: %w", err)
	}
	if zone.Status != models.ZoneStatusActive {
		return nil, fmt.Errorf("service: zone %s is %s: %w", id, zone.Status, models.ErrZoneNotFound)
	}
	return zone, nil
}

// ZonesForLocation возвращает активные зоны локации, сначала из кэша
func (c *ZoneCatalog) ZonesForLocation(ctx context.Context, locationID string) ([]models.GeofenceZone, error) {
	log := c.logger.WithFields(logrus.Fields{
		"service":     "zones",
		"method":      "ZonesForLocation",
		"location_id": locationID,
	})

	cached, err := c.repo.GetZonesFromCache(ctx, locationID)
	if err != nil {
		log.WithError(err).Warn("Zone cache read failed, falling back to database")
	} else if cached != nil {
		log.Debug("Zones served from cache")
		return cached, nil
	}

	zones, err := c.repo.ListActiveZones(ctx, locationID)
	if err != nil {
		log.WithError(err).Error("Failed to list zones from repository")
		return nil, fmt.Errorf("service: could not list zones: %w", err)
	}

	if err := c.repo.SetZonesCache(ctx, locationID, zones); err != nil {
		log.WithError(err).Warn("Failed to cache zones")
	}
	return zones, nil
}

// DeactivateZone помечает зону неактивной, и она больше не участвует в проверках
func (c *ZoneCatalog) DeactivateZone(ctx context.Context, id uuid.UUID) error {
	log := c.logger.WithFields(logrus.Fields{
		"service": "zones",
		"method":  "DeactivateZone",
		"zone_id": id,
	})
	log.Info("Attempting to deactivate zone")

	zone, err := c.repo.GetZone(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to deactivate a non-existent zone")
		return fmt.Errorf("service: could not deactivate zone: %w", err)
	}

	if err := c.repo.DeactivateZone(ctx, id); err != nil {
		log.WithError(err).Error("Failed to deactivate zone in repository")
		return fmt.Errorf("service: could not deactivate zone: %w", err)
	}
	c.invalidate(ctx, log, zone.LocationID)

	log.Info("Zone deactivated successfully")
	return nil
}

func (c *ZoneCatalog) invalidate(ctx context.Context, log *logrus.Entry, locationID string) {
	if err := c.repo.InvalidateZonesCache(ctx, locationID); err != nil {
		log.WithError(err).Warn("Failed to invalidate zone cache")
	}
}
