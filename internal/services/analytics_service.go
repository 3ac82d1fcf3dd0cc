package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"portfolio/internal/apperror"
	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"gorm.io/datatypes"
)

const (
	// AnonymousSession is recorded when the client sends no session id.
	AnonymousSession = "anonymous"

	eventPerformance   = "performance"
	performanceSamples = 100
	metricLoadTime     = "loadTime"

	// DefaultDashboardDays is the dashboard window when none is requested.
	DefaultDashboardDays = 30
	maxDashboardDays     = 365
)

// TrackRequest is the body of an analytics event.
type TrackRequest struct {
	EventType string                 `json:"event_type"`
	PagePath  string                 `json:"page_path"`
	Metadata  map[string]interface{} `json:"metadata"`
}

// ClientInfo describes who sent a tracked event.
type ClientInfo struct {
	UserAgent string
	IPAddress string
	SessionID string
}

// AnalyticsService records front-end events and aggregates them.
type AnalyticsService struct {
	repo repositories.AnalyticsRepository
	now  func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService. A nil now uses time.Now.
func NewAnalyticsService(repo repositories.AnalyticsRepository, now func() time.Time) *AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &AnalyticsService{
		repo: repo,
		now:  now,
	}
}

// Track appends an event.
func (s *AnalyticsService) Track(req TrackRequest, client ClientInfo) error {
	eventType := strings.TrimSpace(req.EventType)
	if eventType == "" {
		return apperror.Invalid("event_type is required")
	}
	sessionID := strings.TrimSpace(client.SessionID)
	if sessionID == "" {
		sessionID = AnonymousSession
	}
	metadata := datatypes.JSONMap(req.Metadata)
	if metadata == nil {
		metadata = datatypes.JSONMap{}
	}
	return s.repo.Record(&models.AnalyticsEvent{
		EventType: eventType,
		PagePath:  req.PagePath,
		UserAgent: client.UserAgent,
		IPAddress: client.IPAddress,
		SessionID: sessionID,
		Metadata:  metadata,
	})
}

// Dashboard aggregates the trailing window of days, which must be within
// 1..365.
func (s *AnalyticsService) Dashboard(days int) (*models.Dashboard, error) {
	if days < 1 || days > maxDashboardDays {
		return nil, apperror.Invalid("days must be between 1 and %d", maxDashboardDays)
	}
	since := s.now().Add(-time.Duration(days) * 24 * time.Hour)
	dashboard, err := s.repo.Dashboard(since)
	if err != nil {
		return nil, err
	}
	dashboard.PeriodDays = days
	return dashboard, nil
}

// Performance reports the latest load-time samples and their average.
func (s *AnalyticsService) Performance() (*models.PerformanceReport, error) {
	events, err := s.repo.RecentWithMetadata(eventPerformance, metricLoadTime, performanceSamples)
	if err != nil {
		return nil, err
	}

	report := &models.PerformanceReport{Metrics: []models.PerformanceMetric{}}
	var sum float64
	for _, e := range events {
		loadTime, ok := number(e.Metadata[metricLoadTime])
		if !ok {
			continue
		}
		pageSize, _ := number(e.Metadata["pageSize"])
		report.Metrics = append(report.Metrics, models.PerformanceMetric{
			LoadTime:  loadTime,
			PageSize:  pageSize,
			PagePath:  e.PagePath,
			CreatedAt: e.CreatedAt,
		})
		sum += loadTime
	}

	avg := 0.0
	if len(report.Metrics) > 0 {
		avg = sum / float64(len(report.Metrics))
	}
	report.Averages.LoadTime = fmt.Sprintf("%.2f", avg)
	return report, nil
}

// number converts a decoded JSON metadata value to float64.
func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}
