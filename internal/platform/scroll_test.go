package platform

import "testing"

func TestScrollbarRoundTrip(t *testing.T) {
	var sb Scrollbar
	sb.Configure(0, 100, 10)
	if !sb.SetPosition(5.0) {
		t.Fatalf("position change not reported")
	}
	if got := sb.Position(); got != 5.0 {
		t.Fatalf("position = %v, want 5.0", got)
	}
}

func TestScrollbarClamp(t *testing.T) {
	var sb Scrollbar
	sb.Configure(0, 100, 10)
	sb.SetPosition(500)
	if got := sb.Position(); got != 90.0 {
		t.Fatalf("position = %v, want 90 (max-pageSize)", got)
	}
	sb.SetPosition(-500)
	if got := sb.Position(); got != 0.0 {
		t.Fatalf("position = %v, want 0", got)
	}
}

func TestScrollbarPageLargerThanRange(t *testing.T) {
	var sb Scrollbar
	sb.Configure(0, 5, 10)
	sb.SetPosition(3)
	if got := sb.Position(); got != 0.0 {
		t.Fatalf("position = %v, want pinned to min", got)
	}
}

func TestScrollbarReconfigureReclamps(t *testing.T) {
	var sb Scrollbar
	sb.Configure(0, 100, 10)
	sb.SetPosition(90)
	sb.Configure(0, 50, 10)
	if got := sb.Position(); got != 40.0 {
		t.Fatalf("position = %v, want 40 after shrink", got)
	}
}

func TestScrollbarSteps(t *testing.T) {
	var sb Scrollbar
	sb.Configure(0, 100, 10)

	// Line steps are 1.0; repeated fixed-point steps must not drift.
	for i := 0; i < 25; i++ {
		sb.LineDown()
	}
	if got := sb.Position(); got != 25.0 {
		t.Fatalf("after 25 lines: %v", got)
	}
	sb.PageDown()
	if got := sb.Position(); got != 35.0 {
		t.Fatalf("after page down: %v", got)
	}
	sb.PageUp()
	sb.LineUp()
	if got := sb.Position(); got != 24.0 {
		t.Fatalf("after page+line up: %v", got)
	}
	sb.ToBottom()
	if got := sb.Position(); got != 90.0 {
		t.Fatalf("to bottom: %v", got)
	}
	sb.ToTop()
	if got := sb.Position(); got != 0.0 {
		t.Fatalf("to top: %v", got)
	}
}

func TestScrollbarUnchangedNotReported(t *testing.T) {
	var sb Scrollbar
	sb.Configure(0, 100, 10)
	sb.SetPosition(90)
	if sb.SetPosition(95) {
		t.Fatalf("clamped-to-same position must not report a change")
	}
}

func TestScrollbarBoundsAndFractions(t *testing.T) {
	var sb Scrollbar
	sb.Configure(10, 110, 20)
	lo, hi := sb.PositionBounds()
	if lo != 10.0 || hi != 90.0 {
		t.Fatalf("bounds = %v, %v", lo, hi)
	}
	sb.SetPosition(50)
	if got := sb.Fraction(); got != 0.5 {
		t.Fatalf("fraction = %v, want 0.5", got)
	}
	if got := sb.PageFraction(); got != 0.2 {
		t.Fatalf("page fraction = %v, want 0.2", got)
	}
}
