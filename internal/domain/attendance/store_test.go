package attendance

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTodayStartIsLocalMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	now := time.Date(2026, 8, 31, 23, 59, 59, 0, loc)

	start := todayStart(now)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Fatalf("expected midnight, got %v", start)
	}
	if start.Year() != 2026 || start.Month() != time.August || start.Day() != 31 {
		t.Fatalf("boundary moved to a different day: %v", start)
	}
	if start.Location() != loc {
		t.Fatalf("boundary lost its timezone: %v", start.Location())
	}
}

func TestDeleteMalformedIDIsNotFound(t *testing.T) {
	s := NewStore(nil)
	if err := s.Delete(context.Background(), "yesterday"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
