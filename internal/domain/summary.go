package domain

import "sort"

// ServiceSummary is the dashboard's view of one monitored service.
//
// It is produced by the external monitor and is read-only here.
// A ServiceSummary is uniquely identified by its ID.
type ServiceSummary struct {
	// ─────────────────────────────
	// Identity
	// ─────────────────────────────

	// ID is the service identifier, also its key in ServiceSummaryMap.
	ID string `json:"id" yaml:"id,omitempty"`

	// Loading is true while the monitor has not finished its first query.
	Loading bool `json:"loading" yaml:"loading,omitempty"`

	// ─────────────────────────────
	// Presentation
	// ─────────────────────────────

	// Type is the lookup kind. Example: github, url
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// URL links to the service's release page.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Icon is an image URL shown on the card.
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`

	// ─────────────────────────────
	// Notification channels
	// ─────────────────────────────

	Gotify *bool `json:"gotify,omitempty" yaml:"gotify,omitempty"`
	Slack  *bool `json:"slack,omitempty" yaml:"slack,omitempty"`

	// WebHook is the number of webhooks attached to the service.
	WebHook *int `json:"webhook,omitempty" yaml:"webhook,omitempty"`

	// ─────────────────────────────
	// Version status
	// ─────────────────────────────

	Status *StatusSummary `json:"status,omitempty" yaml:"status,omitempty"`
}

// StatusSummary holds the version state of a service.
// Every field is optional; timestamps are RFC 3339 strings.
type StatusSummary struct {
	ApprovedVersion         string              `json:"approved_version,omitempty" yaml:"approved_version,omitempty"`
	CurrentVersion          string              `json:"current_version,omitempty" yaml:"current_version,omitempty"`
	CurrentVersionTimestamp string              `json:"current_version_timestamp,omitempty" yaml:"current_version_timestamp,omitempty"`
	LatestVersion           string              `json:"latest_version,omitempty" yaml:"latest_version,omitempty"`
	LatestVersionTimestamp  string              `json:"latest_version_timestamp,omitempty" yaml:"latest_version_timestamp,omitempty"`
	LastQueried             string              `json:"last_queried,omitempty" yaml:"last_queried,omitempty"`
	Fails                   *StatusFailsSummary `json:"fails,omitempty" yaml:"fails,omitempty"`
}

// StatusFailsSummary reports which notification channels failed on the last send.
type StatusFailsSummary struct {
	Gotify  *bool `json:"gotify,omitempty" yaml:"gotify,omitempty"`
	Slack   *bool `json:"slack,omitempty" yaml:"slack,omitempty"`
	WebHook *bool `json:"webhook,omitempty" yaml:"webhook,omitempty"`
}

// CurrentVersionValue returns the current version and whether it is set.
func (s *StatusSummary) CurrentVersionValue() (string, bool) {
	if s == nil {
		return "", false
	}
	return present(s.CurrentVersion)
}

// CurrentVersionTimestampValue returns the current version timestamp and whether it is set.
func (s *StatusSummary) CurrentVersionTimestampValue() (string, bool) {
	if s == nil {
		return "", false
	}
	return present(s.CurrentVersionTimestamp)
}

// LatestVersionValue returns the latest version and whether it is set.
func (s *StatusSummary) LatestVersionValue() (string, bool) {
	if s == nil {
		return "", false
	}
	return present(s.LatestVersion)
}

// LatestVersionTimestampValue returns the latest version timestamp and whether it is set.
func (s *StatusSummary) LatestVersionTimestampValue() (string, bool) {
	if s == nil {
		return "", false
	}
	return present(s.LatestVersionTimestamp)
}

// LastQueriedValue returns the last query timestamp and whether it is set.
func (s *StatusSummary) LastQueriedValue() (string, bool) {
	if s == nil {
		return "", false
	}
	return present(s.LastQueried)
}

// UpdateAvailable reports whether the latest version differs from both the
// deployed and the approved version.
func (s *StatusSummary) UpdateAvailable() bool {
	latest, ok := s.LatestVersionValue()
	if !ok {
		return false
	}
	current, _ := s.CurrentVersionValue()
	return latest != current && latest != s.ApprovedVersion
}

// an empty string is the same as a missing field
func present(v string) (string, bool) {
	return v, v != ""
}

// ServiceSummaryMap maps service IDs to their summaries.
type ServiceSummaryMap map[string]*ServiceSummary

// MonitorSummary is the full dashboard payload.
// Service holds the data, Order holds the display order.
type MonitorSummary struct {
	Service ServiceSummaryMap `json:"service" yaml:"service"`
	Order   []string          `json:"order" yaml:"order"`
}

// Normalize makes Order consistent with Service:
// unknown and duplicate IDs are dropped, IDs missing from Order are appended
// in sorted order, and empty ServiceSummary.ID values are filled from the key.
func (m *MonitorSummary) Normalize() {
	if m.Service == nil {
		m.Service = ServiceSummaryMap{}
	}

	for id, svc := range m.Service {
		if svc == nil {
			svc = &ServiceSummary{}
			m.Service[id] = svc
		}
		if svc.ID == "" {
			svc.ID = id
		}
	}

	seen := make(map[string]bool, len(m.Service))
	order := make([]string, 0, len(m.Service))
	for _, id := range m.Order {
		if seen[id] {
			continue
		}
		if _, ok := m.Service[id]; !ok {
			continue
		}
		seen[id] = true
		order = append(order, id)
	}

	var missing []string
	for id := range m.Service {
		if !seen[id] {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)

	m.Order = append(order, missing...)
}

// Ordered returns the services in display order.
// Call Normalize first if Order may be inconsistent.
func (m *MonitorSummary) Ordered() []*ServiceSummary {
	services := make([]*ServiceSummary, 0, len(m.Order))
	for _, id := range m.Order {
		if svc, ok := m.Service[id]; ok {
			services = append(services, svc)
		}
	}
	return services
}

// Get looks a service up by ID.
func (m *MonitorSummary) Get(id string) (*ServiceSummary, bool) {
	svc, ok := m.Service[id]
	return svc, ok
}
