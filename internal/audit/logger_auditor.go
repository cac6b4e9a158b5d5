// filepath: internal/audit/logger_auditor.go
package audit

import (
	"context"

	"people/internal/logging"
	"people/internal/services"

	"github.com/sirupsen/logrus"
)

// Ensure LoggerAuditor implements services.Auditor
var _ services.Auditor = (*LoggerAuditor)(nil)

// LoggerAuditor writes audit events to the application log.
type LoggerAuditor struct {
	enabled bool
	logger  *logrus.Logger
}

// NewLoggerAuditor creates a LoggerAuditor writing to logging.Log.
func NewLoggerAuditor(enabled bool) *LoggerAuditor {
	return &LoggerAuditor{enabled: enabled, logger: logging.Log}
}

// Log records an event if auditing is enabled.
func (a *LoggerAuditor) Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{}) {
	if !a.enabled {
		return
	}

	fields := logrus.Fields{
		"audit_action":   action,
		"audit_actor":    actor,
		"audit_resource": resource,
	}
	if id := logging.RequestID(ctx); id != "" {
		fields["request_id"] = id
	}

	// Range over nil map is safe.
	for k, v := range details {
		fields["detail."+k] = v
	}

	// Fixed message so audit lines are easy to grep.
	a.logger.WithFields(fields).Info("AUDIT EVENT")
}
