package logger

import "testing"

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	out := sanitizeKVs([]interface{}{
		"username", "ana",
		"password", "hunter22",
		"session_token", "abc",
		"dangling",
	})

	if len(out) != 7 {
		t.Fatalf("unexpected length: %d", len(out))
	}
	if out[1] != "ana" {
		t.Fatalf("username should pass through, got %v", out[1])
	}
	if out[3] != "[REDACTED]" || out[5] != "[REDACTED]" {
		t.Fatalf("expected secrets to be redacted, got %v", out)
	}
	if out[6] != "dangling" {
		t.Fatalf("expected trailing key to be kept, got %v", out[6])
	}
}
