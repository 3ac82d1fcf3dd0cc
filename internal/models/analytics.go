package models

import (
	"time"

	"gorm.io/datatypes"
)

// AnalyticsEvent is a single tracked front-end event. Rows are append-only.
type AnalyticsEvent struct {
	ID        uint              `json:"id" gorm:"primaryKey;autoIncrement"`
	EventType string            `json:"event_type" gorm:"index;not null"`
	PagePath  string            `json:"page_path"`
	UserAgent string            `json:"user_agent"`
	IPAddress string            `json:"ip_address"`
	SessionID string            `json:"session_id" gorm:"index"`
	Metadata  datatypes.JSONMap `json:"metadata"`
	CreatedAt time.Time         `json:"created_at" gorm:"index"`
}

// TableName keeps the table name used by the existing portfolio database.
func (AnalyticsEvent) TableName() string {
	return "analytics"
}

// DailyViews is the page-view count for one calendar date (YYYY-MM-DD).
type DailyViews struct {
	Date  string `json:"date"`
	Views int64  `json:"views"`
}

// PageViews is the view count of a single page path.
type PageViews struct {
	PagePath string `json:"page_path"`
	Views    int64  `json:"views"`
}

// EventTypeCount is the number of events recorded for an event type.
type EventTypeCount struct {
	EventType string `json:"event_type"`
	Count     int64  `json:"count"`
}

// Dashboard holds the aggregates for a trailing window of days.
type Dashboard struct {
	PageViews      []DailyViews     `json:"page_views"`
	TopPages       []PageViews      `json:"top_pages"`
	EventTypes     []EventTypeCount `json:"event_types"`
	UniqueVisitors int64            `json:"unique_visitors"`
	PeriodDays     int              `json:"period_days"`
}

// PerformanceMetric is extracted from the metadata of a "performance" event.
type PerformanceMetric struct {
	LoadTime  float64   `json:"load_time"`
	PageSize  float64   `json:"page_size"`
	PagePath  string    `json:"page_path"`
	CreatedAt time.Time `json:"created_at"`
}

// PerformanceReport is the response of the performance endpoint.
type PerformanceReport struct {
	Metrics  []PerformanceMetric `json:"metrics"`
	Averages struct {
		LoadTime string `json:"load_time"`
	} `json:"averages"`
}
