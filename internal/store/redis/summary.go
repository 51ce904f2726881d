package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/releasewatch/internal/domain"
)

var _ domain.SummarySource = (*Store)(nil)

// Store reads the summaries the monitor keeps in Redis.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis summary store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

func (s *Store) Name() string { return "redis" }

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Service retrieves one service summary by ID
func (s *Store) Service(ctx context.Context, id string) (*domain.ServiceSummary, error) {
	data, err := s.client.Get(ctx, ServiceKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", domain.ErrServiceNotFound, id)
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	svc, err := decodeService(id, data)
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// MonitorSummary retrieves every service and the display order.
// Entries that cannot be decoded are skipped.
func (s *Store) MonitorSummary(ctx context.Context) (*domain.MonitorSummary, error) {
	ids, err := s.client.SMembers(ctx, KeyAllServices).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get service IDs: %w", err)
	}
	sort.Strings(ids)

	order, err := s.client.LRange(ctx, KeyOrder, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get service order: %w", err)
	}

	summary := &domain.MonitorSummary{
		Service: make(domain.ServiceSummaryMap, len(ids)),
		Order:   order,
	}

	if len(ids) > 0 {
		keys := make([]string, len(ids))
		for i, id := range ids {
			keys[i] = ServiceKey(id)
		}

		values, err := s.client.MGet(ctx, keys...).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get services: %w", err)
		}

		for i, v := range values {
			raw, ok := v.(string)
			if !ok {
				// listed in the set but expired or never written
				continue
			}
			svc, err := decodeService(ids[i], []byte(raw))
			if err != nil {
				continue
			}
			summary.Service[ids[i]] = svc
		}
	}

	summary.Normalize()
	return summary, nil
}

// WebHooks retrieves the webhook states of a service.
// A known service without webhooks yields an empty map.
func (s *Store) WebHooks(ctx context.Context, serviceID string) (domain.WebHookSummaryMap, error) {
	pipe := s.client.Pipeline()
	exists := pipe.Exists(ctx, ServiceKey(serviceID))
	fields := pipe.HGetAll(ctx, WebHooksKey(serviceID))
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get webhooks: %w", err)
	}

	if exists.Val() == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrServiceNotFound, serviceID)
	}

	return decodeWebHooks(fields.Val())
}

// AllWebHooks retrieves the webhook states of every known service in one
// pipeline. Hashes that cannot be decoded are skipped.
func (s *Store) AllWebHooks(ctx context.Context) (map[string]domain.WebHookSummaryMap, error) {
	ids, err := s.client.SMembers(ctx, KeyAllServices).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get service IDs: %w", err)
	}

	all := make(map[string]domain.WebHookSummaryMap, len(ids))
	if len(ids) == 0 {
		return all, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, WebHooksKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get webhooks: %w", err)
	}

	for i, cmd := range cmds {
		hooks, err := decodeWebHooks(cmd.Val())
		if err != nil {
			continue
		}
		all[ids[i]] = hooks
	}
	return all, nil
}

func decodeService(id string, data []byte) (*domain.ServiceSummary, error) {
	var svc domain.ServiceSummary
	if err := json.Unmarshal(data, &svc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal service %s: %w", id, err)
	}
	if svc.ID == "" {
		svc.ID = id
	}
	return &svc, nil
}

func decodeWebHooks(fields map[string]string) (domain.WebHookSummaryMap, error) {
	hooks := make(domain.WebHookSummaryMap, len(fields))
	for id, raw := range fields {
		var wh domain.WebHookSummary
		if raw != "" {
			if err := json.Unmarshal([]byte(raw), &wh); err != nil {
				return nil, fmt.Errorf("failed to unmarshal webhook %s: %w", id, err)
			}
		}
		hooks[id] = wh
	}
	return hooks, nil
}
