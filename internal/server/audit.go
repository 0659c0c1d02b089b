package server

import (
	"time"
)

// AuditLogEntry is one request's audit trail record, published to the
// audit topic by the AuditManager workers.
type AuditLogEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	DurationMs int64     `json:"duration_ms"`
	UserID     string    `json:"user_id,omitempty"`
	ResourceID string    `json:"resource_id,omitempty"`
	Request    string    `json:"request,omitempty"`
	Response   string    `json:"response,omitempty"`
}
