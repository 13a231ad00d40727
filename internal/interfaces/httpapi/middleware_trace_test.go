package httpapi

import "testing"

func TestShouldTraceRequest(t *testing.T) {
	tests := map[string]bool{
		"/healthz":           false,
		"/health":            false,
		"/livez":             false,
		"/readyz":            false,
		" /healthz ":         false,
		"/v1/dashboard":      true,
		"/v1/bet-slips":      true,
		"/v1/chat/groups/g1": true,
		"/docs":              true,
		"/":                  true,
	}
	for path, want := range tests {
		if got := shouldTraceRequest(path); got != want {
			t.Fatalf("shouldTraceRequest(%q) = %v, want %v", path, got, want)
		}
	}
}
