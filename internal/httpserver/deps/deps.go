package deps

import (
	"time"

	"github.com/MrSnakeDoc/releasewatch/internal/domain"
	"github.com/MrSnakeDoc/releasewatch/internal/logger"
	"github.com/MrSnakeDoc/releasewatch/internal/view"
)

type Deps struct {
	Logger          logger.Logger
	StartTime       time.Time
	Version         string
	Commit          string
	BuildDate       string
	GoVersion       string
	TimeNow         func() time.Time     // for testing, defaults to time.Now
	AllowedHosts    []string             // Host headers allowed to access /api and /ui
	AllowedCIDRS    []string             // IPs allowed to access healthz/readyz endpoints
	TrustProxy      bool                 // true if running behind a trusted reverse proxy (e.g., cloudflared)
	Source          domain.SummarySource // where the monitor's summaries are read from
	Renderer        *view.Renderer       // HTML fragments (update info, approvals)
	RateLimitBurst  int                  // per-client burst on /api and /ui, 0 disables
	RateLimitPerMin int                  // per-client refill rate
	ReadyTimeout    time.Duration        // source ping budget for /readyz
}

// Now returns the injected clock, or time.Now.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
