package api

import (
	"testing"
)

func TestRateLimiter_AllowsWithinBudget(t *testing.T) {
	rl := &rateLimiter{
		clients: make(map[string]*clientLimiter),
		rps:     1,
		burst:   2,
	}

	if !rl.allow("10.0.0.1") || !rl.allow("10.0.0.1") {
		t.Error("requests within the burst must pass")
	}
	if rl.allow("10.0.0.1") {
		t.Error("request beyond the burst must be rejected")
	}
}

func TestRateLimiter_BucketsArePerClient(t *testing.T) {
	rl := &rateLimiter{
		clients: make(map[string]*clientLimiter),
		rps:     1,
		burst:   1,
	}

	if !rl.allow("10.0.0.1") {
		t.Error("first client's first request must pass")
	}
	if !rl.allow("10.0.0.2") {
		t.Error("a different client must have its own bucket")
	}
	if rl.allow("10.0.0.1") {
		t.Error("first client is out of budget")
	}
}
