package summaryfile

import (
	"context"
	"fmt"
	"os"

	"github.com/MrSnakeDoc/releasewatch/internal/domain"
)

var _ domain.SummarySource = (*Source)(nil)

// Source serves summaries straight from the file on every call,
// so edits by the monitor show up without a reload.
type Source struct {
	loader *Loader
}

// NewSource creates a file backed summary source
func NewSource(filePath string) *Source {
	return &Source{loader: NewLoader(filePath)}
}

func (s *Source) Name() string { return "file" }

// MonitorSummary returns every service in display order.
func (s *Source) MonitorSummary(ctx context.Context) (*domain.MonitorSummary, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Summary(), nil
}

// Service returns one service summary.
func (s *Source) Service(ctx context.Context, id string) (*domain.ServiceSummary, error) {
	summary, err := s.MonitorSummary(ctx)
	if err != nil {
		return nil, err
	}
	svc, ok := summary.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrServiceNotFound, id)
	}
	return svc, nil
}

// WebHooks returns the webhook states of a service.
// A known service without webhooks yields an empty map.
func (s *Source) WebHooks(ctx context.Context, serviceID string) (domain.WebHookSummaryMap, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := doc.Service[serviceID]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrServiceNotFound, serviceID)
	}
	hooks := doc.WebHooks[serviceID]
	if hooks == nil {
		hooks = domain.WebHookSummaryMap{}
	}
	return hooks, nil
}

// AllWebHooks returns the webhook states of every service from a single read
// of the file. Services without webhooks map to an empty map.
func (s *Source) AllWebHooks(ctx context.Context) (map[string]domain.WebHookSummaryMap, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	all := make(map[string]domain.WebHookSummaryMap, len(doc.Service))
	for id := range doc.Service {
		hooks := doc.WebHooks[id]
		if hooks == nil {
			hooks = domain.WebHookSummaryMap{}
		}
		all[id] = hooks
	}
	return all, nil
}

// Ping checks that the file is still readable.
func (s *Source) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := os.Stat(s.loader.Path()); err != nil {
		return fmt.Errorf("summary file unavailable: %w", err)
	}
	return nil
}

func (s *Source) load(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.loader.Load()
}
