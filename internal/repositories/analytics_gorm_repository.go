package repositories

import (
	"fmt"
	"time"

	"portfolio/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EventPageView is the event type counted as a page view.
const EventPageView = "page_view"

const topPagesLimit = 10

// GORMAnalyticsRepository is a GORM implementation of AnalyticsRepository.
type GORMAnalyticsRepository struct {
	db *gorm.DB
}

// NewGORMAnalyticsRepository creates a new instance of GORMAnalyticsRepository.
func NewGORMAnalyticsRepository(db *gorm.DB) *GORMAnalyticsRepository {
	return &GORMAnalyticsRepository{
		db: db,
	}
}

// Record appends an event.
func (r *GORMAnalyticsRepository) Record(event *models.AnalyticsEvent) error {
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("failed to record analytics event: %w", err)
	}
	return nil
}

// Dashboard runs the dashboard aggregates over the window starting at since.
// The window bound is passed as a query parameter.
func (r *GORMAnalyticsRepository) Dashboard(since time.Time) (*models.Dashboard, error) {
	since = since.UTC()
	dashboard := &models.Dashboard{
		PageViews:  []models.DailyViews{},
		TopPages:   []models.PageViews{},
		EventTypes: []models.EventTypeCount{},
	}

	day := r.dateExpr()
	err := r.db.Model(&models.AnalyticsEvent{}).
		Select(day+" AS date, COUNT(*) AS views").
		Where("event_type = ? AND created_at > ?", EventPageView, since).
		Group(day).
		Order("date DESC").
		Scan(&dashboard.PageViews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily page views: %w", err)
	}

	err = r.db.Model(&models.AnalyticsEvent{}).
		Select("page_path, COUNT(*) AS views").
		Where("event_type = ? AND created_at > ?", EventPageView, since).
		Group("page_path").
		Order("views DESC").Order("page_path ASC").
		Limit(topPagesLimit).
		Scan(&dashboard.TopPages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top pages: %w", err)
	}

	err = r.db.Model(&models.AnalyticsEvent{}).
		Select("event_type, COUNT(*) AS count").
		Where("created_at > ?", since).
		Group("event_type").
		Order("count DESC").Order("event_type ASC").
		Scan(&dashboard.EventTypes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate event types: %w", err)
	}

	err = r.db.Model(&models.AnalyticsEvent{}).
		Where("created_at > ?", since).
		Distinct("session_id").
		Count(&dashboard.UniqueVisitors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count unique visitors: %w", err)
	}
	return dashboard, nil
}

// RecentWithMetadata returns up to limit events of eventType whose metadata
// has a non-null key, newest first. The key filter runs before the limit.
func (r *GORMAnalyticsRepository) RecentWithMetadata(eventType, key string, limit int) ([]models.AnalyticsEvent, error) {
	events := []models.AnalyticsEvent{}
	err := r.db.Where("event_type = ?", eventType).
		Where(datatypes.JSONQuery("metadata").HasKey(key)).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s events: %w", eventType, err)
	}
	return events, nil
}

// dateExpr renders created_at as a YYYY-MM-DD string in the active dialect.
func (r *GORMAnalyticsRepository) dateExpr() string {
	if r.db.Dialector.Name() == "postgres" {
		return "TO_CHAR(created_at, 'YYYY-MM-DD')"
	}
	return "DATE(created_at)"
}
