package platform

import "testing"

func TestClampToMonitorKeepsFittingRect(t *testing.T) {
	monitors := []Rect{{X: 0, Y: 0, W: 1920, H: 1080}}
	r := Rect{X: 100, Y: 100, W: 800, H: 600}
	if got := ClampToMonitor(r, monitors); got != r {
		t.Fatalf("got %+v, want unchanged", got)
	}
}

func TestClampToMonitorPullsOffscreenRect(t *testing.T) {
	monitors := []Rect{{X: 0, Y: 0, W: 1920, H: 1080}}
	got := ClampToMonitor(Rect{X: -500, Y: -300, W: 800, H: 600}, monitors)
	if got.X != 0 || got.Y != 0 {
		t.Fatalf("origin = (%d, %d), want (0, 0)", got.X, got.Y)
	}
	if got.Right() > 1920 || got.Bottom() > 1080 {
		t.Fatalf("rect %+v exceeds monitor", got)
	}
}

func TestClampToMonitorPicksLargestOverlap(t *testing.T) {
	monitors := []Rect{
		{X: 0, Y: 0, W: 1920, H: 1080},
		{X: 1920, Y: 0, W: 1280, H: 1024},
	}
	// Mostly on the second monitor.
	got := ClampToMonitor(Rect{X: 2000, Y: 100, W: 800, H: 600}, monitors)
	if got.X < 1920 {
		t.Fatalf("rect %+v clamped to wrong monitor", got)
	}
}

func TestClampToMonitorDisconnectedDisplay(t *testing.T) {
	// A window frozen on a display that no longer exists overlaps nothing;
	// it must land on the nearest remaining monitor.
	monitors := []Rect{{X: 0, Y: 0, W: 1920, H: 1080}}
	got := ClampToMonitor(Rect{X: 5000, Y: 200, W: 800, H: 600}, monitors)
	if got.X < 0 || got.Right() > 1920 || got.Y < 0 || got.Bottom() > 1080 {
		t.Fatalf("rect %+v not on surviving monitor", got)
	}
}

func TestClampToMonitorNoMonitors(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	if got := ClampToMonitor(r, nil); got != r {
		t.Fatalf("got %+v, want unchanged", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 5, H: 5}
	if !r.Contains(10, 10) || !r.Contains(14, 14) {
		t.Fatalf("interior points reported outside")
	}
	if r.Contains(15, 10) || r.Contains(9, 10) {
		t.Fatalf("exterior points reported inside")
	}
}
