package entity

import "time"

// RealtimeMessage is pushed to dashboards and devices; delivery is best-effort.
type RealtimeMessage struct {
	Type      string            `json:"type"` // "redemption" or "points"
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

const (
	RealtimeTypeRedemption = "redemption"
	RealtimeTypePoints     = "points"
)
