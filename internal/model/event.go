package model

import (
	"database/sql"
	"time"
)

// Event levels
const (
	EventLevelInfo    = "info"
	EventLevelWarning = "warning"
	EventLevelError   = "error"
)

// Event categories
const (
	EventCategoryAuth    = "auth"
	EventCategoryBooking = "booking"
	EventCategoryContent = "content"
	EventCategoryUser    = "user"
	EventCategorySystem  = "system"
)

// EventCategories lists the known categories in display order.
var EventCategories = []string{
	EventCategoryAuth,
	EventCategoryBooking,
	EventCategoryContent,
	EventCategoryUser,
	EventCategorySystem,
}

// IsValidEventCategory reports whether c is a known event category.
func IsValidEventCategory(c string) bool {
	for _, known := range EventCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Event represents a system event log entry.
type Event struct {
	ID        int64
	Level     string
	Category  string
	Message   string
	UserID    sql.NullInt64
	Metadata  string // JSON string
	CreatedAt time.Time
}
