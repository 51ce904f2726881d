package redis

import "testing"

func TestKeys(t *testing.T) {
	if got, want := ServiceKey("argus"), "releasewatch:service:argus"; got != want {
		t.Errorf("ServiceKey() = %q, want %q", got, want)
	}
	if got, want := WebHooksKey("argus"), "releasewatch:webhooks:argus"; got != want {
		t.Errorf("WebHooksKey() = %q, want %q", got, want)
	}
}
