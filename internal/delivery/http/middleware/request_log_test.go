package middleware

import (
	"strings"
	"testing"
)

func TestClientIP(t *testing.T) {
	cases := []struct {
		name         string
		forwardedFor string
		remote       string
		want         string
	}{
		{"peer address only", "", "10.0.0.5", "10.0.0.5"},
		{"single forwarded entry", "203.0.113.7", "10.0.0.5", "203.0.113.7"},
		{"first of forwarded chain", "203.0.113.7, 10.0.0.1, 10.0.0.2", "10.0.0.5", "203.0.113.7"},
		{"forwarded entry trimmed", "  203.0.113.7 , 10.0.0.1", "10.0.0.5", "203.0.113.7"},
		{"ipv6 loopback normalized", "", "::1", "127.0.0.1"},
		{"expanded ipv6 loopback normalized", "", "0:0:0:0:0:0:0:1", "127.0.0.1"},
		{"forwarded loopback normalized", "::1", "10.0.0.5", "127.0.0.1"},
		{"blank forwarded falls back", "   ", "10.0.0.5", "10.0.0.5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClientIP(tc.forwardedFor, tc.remote)
			if got != tc.want {
				t.Fatalf("ClientIP(%q, %q) = %q, want %q", tc.forwardedFor, tc.remote, got, tc.want)
			}
		})
	}
}

func TestBodySnippet(t *testing.T) {
	if got := bodySnippet(nil); got != "" {
		t.Fatalf("empty body must yield empty snippet, got %q", got)
	}

	short := []byte(`{"name":"Go"}`)
	if got := bodySnippet(short); got != string(short) {
		t.Fatalf("short body must pass through, got %q", got)
	}

	long := []byte(strings.Repeat("x", maxLoggedBodyBytes+100))
	got := bodySnippet(long)
	if len(got) != maxLoggedBodyBytes+len("...") {
		t.Fatalf("long body must be truncated to %d bytes plus ellipsis, got %d", maxLoggedBodyBytes, len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("truncated snippet must end with ellipsis")
	}
}
