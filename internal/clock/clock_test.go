package clock

import (
	"testing"
	"time"
)

func TestNewFixed(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+2", 2*60*60)
	c := NewFixed(time.Date(2026, 1, 1, 10, 0, 0, 0, loc))

	got := c.Now()
	if got.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", got.Location())
	}
	if got.Hour() != 8 {
		t.Fatalf("expected 08:00 UTC, got %v", got)
	}
}

func TestNewSystem(t *testing.T) {
	t.Parallel()

	before := time.Now()
	got := NewSystem().Now()
	if got.Before(before.Add(-time.Second)) || got.Location() != time.UTC {
		t.Fatalf("unexpected system time %v", got)
	}
}
