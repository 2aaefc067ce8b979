package metrics

import (
	"testing"
	"time"
)

func TestCollectorClassifiesOutcomes(t *testing.T) {
	c := New()
	c.Record(200, 10*time.Millisecond)
	c.Record(201, 10*time.Millisecond)
	c.Record(400, 10*time.Millisecond)
	c.Record(404, 10*time.Millisecond)
	c.Record(401, 10*time.Millisecond)
	c.Record(403, 10*time.Millisecond)
	c.Record(429, 10*time.Millisecond)
	c.Record(500, 10*time.Millisecond)

	snap := c.Snapshot()
	if snap["requestsTotal"] != uint64(8) {
		t.Fatalf("requestsTotal = %v", snap["requestsTotal"])
	}
	if snap["clientErrors"] != uint64(2) {
		t.Fatalf("clientErrors = %v", snap["clientErrors"])
	}
	if snap["authRejections"] != uint64(2) {
		t.Fatalf("authRejections = %v", snap["authRejections"])
	}
	if snap["rateLimitedTotal"] != uint64(1) {
		t.Fatalf("rateLimitedTotal = %v", snap["rateLimitedTotal"])
	}
	if snap["serverErrors"] != uint64(1) {
		t.Fatalf("serverErrors = %v", snap["serverErrors"])
	}
	if snap["avgDurationMs"] != float64(10) {
		t.Fatalf("avgDurationMs = %v", snap["avgDurationMs"])
	}
}

func TestSnapshotOnIdleCollector(t *testing.T) {
	snap := New().Snapshot()
	if snap["requestsTotal"] != uint64(0) {
		t.Fatalf("requestsTotal = %v", snap["requestsTotal"])
	}
	if snap["avgDurationMs"] != float64(0) {
		t.Fatalf("avgDurationMs = %v", snap["avgDurationMs"])
	}
}
