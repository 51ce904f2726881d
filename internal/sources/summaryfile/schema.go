package summaryfile

import "github.com/MrSnakeDoc/releasewatch/internal/domain"

// Document is the on-disk layout written by the monitor.
//
//	order: [argus, gitea]
//	service:
//	  argus:
//	    type: github
//	    status:
//	      latest_version: 0.12.0
//	webhooks:
//	  argus:
//	    deploy: {failed: true}
type Document struct {
	Order    []string                            `yaml:"order"`
	Service  domain.ServiceSummaryMap            `yaml:"service"`
	WebHooks map[string]domain.WebHookSummaryMap `yaml:"webhooks,omitempty"`
}

// Summary returns the normalized monitor summary held by the document.
func (d *Document) Summary() *domain.MonitorSummary {
	summary := &domain.MonitorSummary{
		Service: d.Service,
		Order:   d.Order,
	}
	summary.Normalize()
	return summary
}
