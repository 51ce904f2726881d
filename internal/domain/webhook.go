package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidModalType is returned for webhook actions outside the known set.
var ErrInvalidModalType = errors.New("invalid webhook modal type")

// WebHookSummary is the delivery state of a single webhook.
//
// Failed is nil while the webhook is unsent or still being sent,
// true if the last attempt failed, false if it succeeded.
type WebHookSummary struct {
	Failed *bool `json:"failed,omitempty" yaml:"failed,omitempty"`
}

// WebHookSummaryMap maps webhook IDs to their delivery state.
type WebHookSummaryMap map[string]WebHookSummary

// Sent returns the IDs of webhooks with a completed attempt, sorted.
func (m WebHookSummaryMap) Sent() []string {
	return m.filter(func(wh WebHookSummary) bool { return wh.Failed != nil })
}

// Failed returns the IDs of webhooks whose last attempt failed, sorted.
func (m WebHookSummaryMap) Failed() []string {
	return m.filter(func(wh WebHookSummary) bool { return wh.Failed != nil && *wh.Failed })
}

// Pending returns the IDs of webhooks that are unsent or in flight, sorted.
func (m WebHookSummaryMap) Pending() []string {
	return m.filter(func(wh WebHookSummary) bool { return wh.Failed == nil })
}

func (m WebHookSummaryMap) filter(keep func(WebHookSummary) bool) []string {
	ids := make([]string, 0, len(m))
	for id, wh := range m {
		if keep(wh) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// ModalType is the webhook action a user picked on the dashboard.
type ModalType string

const (
	ModalNone   ModalType = ""
	ModalResend ModalType = "RESEND"
	ModalRetry  ModalType = "RETRY"
	ModalSend   ModalType = "SEND"
	ModalSkip   ModalType = "SKIP"
)

// ParseModalType accepts the action names case-insensitively.
func ParseModalType(s string) (ModalType, error) {
	switch t := ModalType(strings.ToUpper(strings.TrimSpace(s))); t {
	case ModalNone, ModalResend, ModalRetry, ModalSend, ModalSkip:
		return t, nil
	default:
		return ModalNone, fmt.Errorf("%w: %q", ErrInvalidModalType, s)
	}
}

// ParseModalAction is ParseModalType for a user-selected action:
// the empty ModalNone is rejected.
func ParseModalAction(s string) (ModalType, error) {
	t, err := ParseModalType(s)
	if err != nil {
		return ModalNone, err
	}
	if t == ModalNone {
		return ModalNone, fmt.Errorf("%w: empty action", ErrInvalidModalType)
	}
	return t, nil
}

// WebHookModal pairs a selected action with the service it targets.
type WebHookModal struct {
	Type    ModalType      `json:"type"`
	Service ServiceSummary `json:"service"`
}

// WebHookModalData is what the webhook modal needs to list deliveries.
type WebHookModalData struct {
	ServiceID string            `json:"service_id"`
	Sent      []string          `json:"sent"`
	WebHooks  WebHookSummaryMap `json:"webhooks"`
}

// NewWebHookModalData builds the modal payload for a service.
func NewWebHookModalData(serviceID string, hooks WebHookSummaryMap) WebHookModalData {
	if hooks == nil {
		hooks = WebHookSummaryMap{}
	}
	return WebHookModalData{
		ServiceID: serviceID,
		Sent:      hooks.Sent(),
		WebHooks:  hooks,
	}
}
