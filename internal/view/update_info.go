package view

import (
	"time"

	"github.com/MrSnakeDoc/releasewatch/internal/domain"
	"github.com/MrSnakeDoc/releasewatch/internal/relative"
)

const (
	// Unknown is shown for any version or timestamp the monitor did not report.
	Unknown = "Unknown"
	// Loading is shown in the footer until the latest version has a timestamp.
	Loading = "Loading"

	TooltipDelay = 500 * time.Millisecond

	PlacementTop    = "top"
	PlacementBottom = "bottom"
)

// Tooltip is the hover text attached to a version field.
type Tooltip struct {
	ID        string
	Placement string
	ShowDelay time.Duration
	HideDelay time.Duration
	Text      string
}

// VersionField is one labelled version line.
type VersionField struct {
	Label   string
	Value   string
	Tooltip Tooltip
}

// UpdateInfo is the "From / To" block of a service card.
type UpdateInfo struct {
	Visible bool
	From    VersionField
	To      VersionField
	Footer  string
}

// NewUpdateInfo builds the block for svc as seen at now.
// Relative times are computed even when visible is false.
func NewUpdateInfo(svc domain.ServiceSummary, visible bool, now time.Time, loc *time.Location) UpdateInfo {
	status := svc.Status

	from := VersionField{
		Label: "From",
		Value: orUnknown(status.CurrentVersionValue()),
		Tooltip: Tooltip{
			ID:        "tooltip-current-version",
			Placement: PlacementTop,
			ShowDelay: TooltipDelay,
			HideDelay: TooltipDelay,
			Text:      relativeOr(status.CurrentVersionTimestampValue, now, loc, Unknown),
		},
	}

	to := VersionField{
		Label: "To",
		Value: orUnknown(status.LatestVersionValue()),
		Tooltip: Tooltip{
			ID:        "tooltip-latest-version",
			Placement: PlacementBottom,
			ShowDelay: TooltipDelay,
			HideDelay: TooltipDelay,
			Text:      relativeOr(status.LatestVersionTimestampValue, now, loc, Unknown),
		},
	}

	footer := Loading
	if status != nil {
		if found := relativeOr(status.LatestVersionTimestampValue, now, loc, ""); found != "" {
			footer = "Found " + found
		}
	}

	return UpdateInfo{
		Visible: visible,
		From:    from,
		To:      to,
		Footer:  footer,
	}
}

// Display is the CSS display value for the block.
func (u UpdateInfo) Display() string {
	if u.Visible {
		return "block"
	}
	return "none"
}

func orUnknown(v string, ok bool) string {
	if !ok {
		return Unknown
	}
	return v
}

func relativeOr(field func() (string, bool), now time.Time, loc *time.Location, fallback string) string {
	ts, ok := field()
	if !ok {
		return fallback
	}
	text, ok := relative.FormatString(ts, now, loc)
	if !ok {
		return fallback
	}
	return text
}
