package redis

import (
	"testing"
)

func TestDecodeService(t *testing.T) {
	svc, err := decodeService("argus", []byte(`{"loading":false,"type":"github","status":{"latest_version":"0.12.0"}}`))
	if err != nil {
		t.Fatalf("decodeService() error = %v", err)
	}
	if svc.ID != "argus" {
		t.Errorf("ID = %q, want argus (filled from key)", svc.ID)
	}
	if svc.Status == nil || svc.Status.LatestVersion != "0.12.0" {
		t.Errorf("Status = %+v, want latest_version 0.12.0", svc.Status)
	}

	if _, err := decodeService("broken", []byte(`{"loading":`)); err == nil {
		t.Error("decodeService() with truncated json should fail")
	}
}

func TestDecodeWebHooks(t *testing.T) {
	hooks, err := decodeWebHooks(map[string]string{
		"deploy":  `{"failed":true}`,
		"notify":  `{"failed":false}`,
		"pending": ``,
		"sending": `{}`,
	})
	if err != nil {
		t.Fatalf("decodeWebHooks() error = %v", err)
	}

	if len(hooks) != 4 {
		t.Fatalf("decodeWebHooks() returned %d hooks, want 4", len(hooks))
	}
	if f := hooks["deploy"].Failed; f == nil || !*f {
		t.Error("deploy should be failed")
	}
	if f := hooks["notify"].Failed; f == nil || *f {
		t.Error("notify should be sent")
	}
	if hooks["pending"].Failed != nil || hooks["sending"].Failed != nil {
		t.Error("empty entries should be pending")
	}

	if _, err := decodeWebHooks(map[string]string{"bad": "{"}); err == nil {
		t.Error("decodeWebHooks() with invalid json should fail")
	}
}
