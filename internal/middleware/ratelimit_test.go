package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimitKey(t *testing.T) {
	tests := []struct {
		name       string
		accountID  string
		forwarded  string
		remoteAddr string
		want       string
	}{
		{
			name:       "identified request keys on account",
			accountID:  "7",
			remoteAddr: "198.51.100.10:1234",
			want:       "account:7",
		},
		{
			name:       "anonymous request keys on forwarded ip",
			forwarded:  "203.0.113.1, 198.51.100.2",
			remoteAddr: "198.51.100.10:1234",
			want:       "ip:203.0.113.1",
		},
		{
			name:       "anonymous request falls back to remote host",
			remoteAddr: "198.51.100.10:1234",
			want:       "ip:198.51.100.10",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.accountID != "" {
				req.Header.Set(HeaderAccountID, tc.accountID)
			}
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			if got := rateLimitKey(req); got != tc.want {
				t.Fatalf("rateLimitKey() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRateLimit_BlocksWithinWindowPerAccount(t *testing.T) {
	handler := RateLimit(2, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(account string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderAccountID, account)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	if code := do("7"); code != http.StatusOK {
		t.Fatalf("first request: got %d, want 200", code)
	}
	if code := do("7"); code != http.StatusOK {
		t.Fatalf("second request: got %d, want 200", code)
	}
	if code := do("7"); code != http.StatusTooManyRequests {
		t.Fatalf("third request: got %d, want 429", code)
	}
	// A different tenant has its own bucket.
	if code := do("9"); code != http.StatusOK {
		t.Fatalf("other account: got %d, want 200", code)
	}
}
