package domain

import (
	"context"
	"errors"
)

// ErrServiceNotFound is returned when a source has no summary for an ID.
var ErrServiceNotFound = errors.New("service not found")

// SummarySource is where the external monitor leaves its summaries.
// Implementations are read-only.
type SummarySource interface {
	// Name identifies the source in logs and readiness output. Example: file, redis
	Name() string
	MonitorSummary(ctx context.Context) (*MonitorSummary, error)
	Service(ctx context.Context, id string) (*ServiceSummary, error)
	WebHooks(ctx context.Context, serviceID string) (WebHookSummaryMap, error)
	// AllWebHooks returns the webhook states of every known service in one read.
	AllWebHooks(ctx context.Context) (map[string]WebHookSummaryMap, error)
	Ping(ctx context.Context) error
}
