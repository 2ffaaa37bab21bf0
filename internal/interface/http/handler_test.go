package handlers

import (
	"testing"
	"time"
)

func TestParseDateBound(t *testing.T) {
	t.Run("empty is open-ended", func(t *testing.T) {
		got, err := parseDateBound("", false)
		if err != nil || got != nil {
			t.Fatalf("expected nil bound, got %v err=%v", got, err)
		}
	})

	t.Run("date-only start of day", func(t *testing.T) {
		got, err := parseDateBound("2026-01-15", false)
		if err != nil {
			t.Fatalf("parseDateBound: %v", err)
		}
		want := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("date-only end of day is inclusive", func(t *testing.T) {
		got, err := parseDateBound("2026-01-15", true)
		if err != nil {
			t.Fatalf("parseDateBound: %v", err)
		}
		// The whole of Jan 15 must fall inside the bound.
		lastInstant := time.Date(2026, 1, 15, 23, 59, 59, 999999999, time.UTC)
		if got.Before(lastInstant) {
			t.Errorf("bound %v excludes end of day %v", got, lastInstant)
		}
		if !got.Before(time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("bound %v leaks into the next day", got)
		}
	})

	t.Run("rfc3339 passes through", func(t *testing.T) {
		got, err := parseDateBound("2026-01-15T10:30:00Z", true)
		if err != nil {
			t.Fatalf("parseDateBound: %v", err)
		}
		want := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		if _, err := parseDateBound("yesterday", false); err == nil {
			t.Fatal("expected error")
		}
	})
}
