package repositories

import (
	"time"

	"portfolio/internal/models"
)

// AnalyticsRepository defines the interface for analytics event data access.
type AnalyticsRepository interface {
	Record(event *models.AnalyticsEvent) error
	// Dashboard aggregates events created after since.
	Dashboard(since time.Time) (*models.Dashboard, error)
	// RecentWithMetadata returns the newest events of one type whose
	// metadata carries key.
	RecentWithMetadata(eventType, key string, limit int) ([]models.AnalyticsEvent, error)
}
