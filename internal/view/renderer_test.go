package view

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/releasewatch/internal/domain"
)

func failed(b bool) *bool { return &b }

func TestNewServiceCard(t *testing.T) {
	svc := domain.ServiceSummary{
		ID:   "argus",
		URL:  "https://github.com/release-argus/Argus",
		Icon: "https://example.com/argus.svg",
		Status: &domain.StatusSummary{
			CurrentVersion:         "0.11.0",
			LatestVersion:          "0.12.0",
			LatestVersionTimestamp: "2024-01-01T00:00:00Z",
			LastQueried:            renderAt.Add(-3 * time.Hour).Format(time.RFC3339),
		},
	}
	hooks := domain.WebHookSummaryMap{
		"deploy":  {Failed: failed(true)},
		"notify":  {Failed: failed(false)},
		"pending": {},
	}

	card := NewServiceCard(svc, hooks, renderAt, time.UTC)

	assert.Equal(t, "argus", card.ID)
	assert.True(t, card.Update.Visible, "update available should show the block")
	assert.Equal(t, "Queried 3 hours ago", card.Queried)
	assert.Equal(t, 1, card.FailedWebHooks)
	assert.Equal(t, "argus-tooltip-current-version", card.Update.From.Tooltip.ID)
	assert.Equal(t, "argus-tooltip-latest-version", card.Update.To.Tooltip.ID)
}

func TestNewServiceCard_UpToDate(t *testing.T) {
	svc := domain.ServiceSummary{
		ID:     "gitea",
		Status: &domain.StatusSummary{CurrentVersion: "1.21.0", LatestVersion: "1.21.0"},
	}

	card := NewServiceCard(svc, nil, renderAt, time.UTC)

	assert.False(t, card.Update.Visible)
	assert.Empty(t, card.Queried)
	assert.Zero(t, card.FailedWebHooks)
}

func TestRendererApprovals(t *testing.T) {
	summary := &domain.MonitorSummary{
		Service: domain.ServiceSummaryMap{
			"b-service": {ID: "b-service", Status: &domain.StatusSummary{CurrentVersion: "1.0", LatestVersion: "2.0"}},
			"a-service": {ID: "a-service", Loading: true},
		},
		Order: []string{"b-service", "a-service"},
	}
	hooks := map[string]domain.WebHookSummaryMap{
		"b-service": {"deploy": {Failed: failed(true)}},
	}

	var buf bytes.Buffer
	require.NoError(t, newTestRenderer(t).Approvals(&buf, summary, hooks))
	html := buf.String()

	b := strings.Index(html, `id="service-b-service"`)
	a := strings.Index(html, `id="service-a-service"`)
	require.NotEqual(t, -1, b)
	require.NotEqual(t, -1, a)
	assert.Less(t, b, a, "cards must follow the summary order")

	assert.Contains(t, html, "1 failed")
	assert.Equal(t, 2, strings.Count(html, `class="container-fluid update-info"`))
}

func TestRendererApprovals_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestRenderer(t).Approvals(&buf, nil, nil))
	assert.Contains(t, buf.String(), "No services")
}

func TestSlug(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"argus", "argus"},
		{"my service", "my-service"},
		{"a/b:c", "a-b-c"},
		{"under_score-ok", "under_score-ok"},
		{"", "service"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, slug(tt.id))
		})
	}
}

func TestNewServiceCard_IDWithSpaces(t *testing.T) {
	card := NewServiceCard(domain.ServiceSummary{ID: "my service"}, nil, renderAt, time.UTC)

	assert.Equal(t, "my service", card.ID)
	assert.Equal(t, "service-my-service", card.DOMID)
	assert.Equal(t, "my-service-tooltip-current-version", card.Update.From.Tooltip.ID)
	assert.Equal(t, "my-service-tooltip-latest-version", card.Update.To.Tooltip.ID)
}

func TestRendererApprovals_UniqueElementIDs(t *testing.T) {
	summary := &domain.MonitorSummary{
		Service: domain.ServiceSummaryMap{
			"a b":   {ID: "a b"},
			"a-b":   {ID: "a-b"},
			"a-b-2": {ID: "a-b-2"},
		},
		Order: []string{"a b", "a-b", "a-b-2"},
	}

	var buf bytes.Buffer
	require.NoError(t, newTestRenderer(t).Approvals(&buf, summary, nil))
	html := buf.String()

	for _, id := range []string{"service-a-b", "service-a-b-2", "service-a-b-2-2"} {
		assert.Equal(t, 1, strings.Count(html, `id="`+id+`"`), id)
	}
	assert.NotContains(t, html, `id="a b-tooltip`)
	for _, id := range []string{"a-b", "a-b-2", "a-b-2-2"} {
		assert.Equal(t, 1, strings.Count(html, `id="`+id+`-tooltip-current-version"`), id)
		assert.Equal(t, 1, strings.Count(html, `aria-describedby="`+id+`-tooltip-current-version"`), id)
	}
	assert.Contains(t, html, `data-service-id="a b"`)
}
