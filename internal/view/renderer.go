// Package view renders release summaries as HTML.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/MrSnakeDoc/releasewatch/internal/domain"
	"github.com/MrSnakeDoc/releasewatch/internal/relative"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer writes view fragments using its own clock.
// It holds no per-render state and is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
	now  func() time.Time
	loc  *time.Location
}

// NewRenderer parses the embedded templates.
// now defaults to time.Now and loc to UTC.
func NewRenderer(now func() time.Time, loc *time.Location) (*Renderer, error) {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}

	tmpl, err := template.New("view").
		Funcs(template.FuncMap{"delay": delayJSON}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{
		tmpl: tmpl,
		now:  now,
		loc:  loc,
	}, nil
}

// UpdateInfo writes the "From / To" fragment for svc.
func (r *Renderer) UpdateInfo(w io.Writer, svc domain.ServiceSummary, visible bool) error {
	info := NewUpdateInfo(svc, visible, r.now(), r.loc)
	if err := r.tmpl.ExecuteTemplate(w, "update_info", info); err != nil {
		return fmt.Errorf("failed to render update info for %s: %w", svc.ID, err)
	}
	return nil
}

// ServiceCard is one service on the approvals page.
type ServiceCard struct {
	ID             string
	DOMID          string // element id, safe for HTML and unique on the page
	Icon           string
	URL            string
	Loading        bool
	Queried        string
	FailedWebHooks int
	Update         UpdateInfo
}

type approvalsPage struct {
	Cards []ServiceCard
}

// NewServiceCard builds the card for svc. The update block is visible only
// when a release newer than the deployed and approved versions exists.
func NewServiceCard(svc domain.ServiceSummary, hooks domain.WebHookSummaryMap, now time.Time, loc *time.Location) ServiceCard {
	return newServiceCard(svc, slug(svc.ID), hooks, now, loc)
}

// newServiceCard prefixes every element id of the card with key.
func newServiceCard(svc domain.ServiceSummary, key string, hooks domain.WebHookSummaryMap, now time.Time, loc *time.Location) ServiceCard {
	info := NewUpdateInfo(svc, svc.Status.UpdateAvailable(), now, loc)
	info.From.Tooltip.ID = key + "-" + info.From.Tooltip.ID
	info.To.Tooltip.ID = key + "-" + info.To.Tooltip.ID

	card := ServiceCard{
		ID:             svc.ID,
		DOMID:          "service-" + key,
		Icon:           svc.Icon,
		URL:            svc.URL,
		Loading:        svc.Loading,
		FailedWebHooks: len(hooks.Failed()),
		Update:         info,
	}

	if ts, ok := svc.Status.LastQueriedValue(); ok {
		if t, ok := relative.Parse(ts); ok {
			card.Queried = "Queried " + relative.Ago(t, now)
		}
	}

	return card
}

// Approvals writes the full page for summary in display order.
// hooks may be nil or miss services.
func (r *Renderer) Approvals(w io.Writer, summary *domain.MonitorSummary, hooks map[string]domain.WebHookSummaryMap) error {
	now := r.now()

	page := approvalsPage{}
	if summary != nil {
		used := make(map[string]bool, len(summary.Order))
		for _, svc := range summary.Ordered() {
			base := slug(svc.ID)
			key := base
			for n := 2; used[key]; n++ {
				key = fmt.Sprintf("%s-%d", base, n)
			}
			used[key] = true
			page.Cards = append(page.Cards, newServiceCard(*svc, key, hooks[svc.ID], now, r.loc))
		}
	}

	if err := r.tmpl.ExecuteTemplate(w, "approvals", page); err != nil {
		return fmt.Errorf("failed to render approvals: %w", err)
	}
	return nil
}

// slug maps a service id to an HTML id fragment:
// anything outside [A-Za-z0-9_-] becomes '-'.
func slug(id string) string {
	if id == "" {
		return "service"
	}
	b := []byte(id)
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			b[i] = '-'
		}
	}
	return string(b)
}

func delayJSON(t Tooltip) string {
	return fmt.Sprintf(`{"show":%d,"hide":%d}`, t.ShowDelay.Milliseconds(), t.HideDelay.Milliseconds())
}
