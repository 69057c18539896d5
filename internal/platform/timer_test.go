package platform

import (
	"testing"
	"time"
)

func TestTimerFiresOnce(t *testing.T) {
	l := NewLoop()
	tm := NewTimer(l)
	fired := 0
	tm.OnTimeout = func() {
		fired++
		l.Quit()
	}
	tm.WindUp(5 * time.Millisecond)
	l.Run()
	if fired != 1 {
		t.Fatalf("fired %d times", fired)
	}

	// No spontaneous re-fire.
	time.Sleep(20 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("timer re-fired, count %d", fired)
	}
}

func TestTimerRearmReplacesPending(t *testing.T) {
	l := NewLoop()
	tm := NewTimer(l)
	fired := 0
	start := time.Now()
	var elapsed time.Duration
	tm.OnTimeout = func() {
		fired++
		elapsed = time.Since(start)
		l.Quit()
	}
	tm.WindUp(5 * time.Millisecond)
	tm.WindUp(40 * time.Millisecond)
	l.Run()

	if fired != 1 {
		t.Fatalf("fired %d times, want 1", fired)
	}
	if elapsed < 30*time.Millisecond {
		t.Fatalf("fired after %v; the first arming should have been cancelled", elapsed)
	}
}

func TestTimerDestroyCancels(t *testing.T) {
	l := NewLoop()
	tm := NewTimer(l)
	tm.OnTimeout = func() {
		t.Errorf("destroyed timer fired")
	}
	tm.WindUp(5 * time.Millisecond)
	tm.Destroy()

	quit := NewTimer(l)
	quit.OnTimeout = l.Quit
	quit.WindUp(30 * time.Millisecond)
	l.Run()
}

func TestTimerWindUpAfterDestroyIsNoop(t *testing.T) {
	l := NewLoop()
	tm := NewTimer(l)
	tm.OnTimeout = func() {
		t.Errorf("destroyed timer fired")
	}
	tm.Destroy()
	tm.WindUp(time.Millisecond)

	quit := NewTimer(l)
	quit.OnTimeout = l.Quit
	quit.WindUp(20 * time.Millisecond)
	l.Run()
}
