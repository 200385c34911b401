package session

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestAutosaver_CoalescesRapidMutations(t *testing.T) {
	store := &fakeStore{}
	s := newTestSession(t, store, 300, nil)
	startForTest(s)

	// Three rapid selections inside the quiet period: one flush, all three
	// answers present.
	s.SelectAnswer("q1", "A")
	s.SelectAnswer("q2", "B")
	s.SelectAnswer("q3", "D")

	waitFor(t, func() bool { return store.updateCount() > 0 })
	time.Sleep(50 * time.Millisecond)

	if n := store.updateCount(); n != 1 {
		t.Fatalf("flushes = %d, want a single debounced write", n)
	}
	store.mu.Lock()
	flushed := store.updates[0]
	store.mu.Unlock()
	if len(flushed) != 3 {
		t.Fatalf("flushed %d answers, want all 3", len(flushed))
	}
	if flushed["q3"].Selected != "D" {
		t.Fatalf("flush missed the latest mutation: %+v", flushed["q3"])
	}
}

func TestAutosaver_ScheduleResetsQuietPeriod(t *testing.T) {
	var flushes atomic.Int32
	a := NewAutosaver(40*time.Millisecond, func() { flushes.Add(1) })

	a.Schedule()
	time.Sleep(25 * time.Millisecond)
	a.Schedule() // arrives inside the quiet period, resets the wait
	time.Sleep(25 * time.Millisecond)
	if n := flushes.Load(); n != 0 {
		t.Fatalf("flushed %d times before the reset quiet period elapsed", n)
	}

	waitFor(t, func() bool { return flushes.Load() == 1 })
}

func TestAutosaver_CancelDropsPendingFlush(t *testing.T) {
	var flushes atomic.Int32
	a := NewAutosaver(20*time.Millisecond, func() { flushes.Add(1) })

	a.Schedule()
	a.Cancel()
	time.Sleep(60 * time.Millisecond)
	if n := flushes.Load(); n != 0 {
		t.Fatalf("cancelled flush still ran %d times", n)
	}

	// Cancel does not disable the autosaver.
	a.Schedule()
	waitFor(t, func() bool { return flushes.Load() == 1 })
}

func TestAutosaver_StopRejectsFurtherSchedules(t *testing.T) {
	var flushes atomic.Int32
	a := NewAutosaver(10*time.Millisecond, func() { flushes.Add(1) })

	a.Schedule()
	a.Stop()
	a.Schedule()
	time.Sleep(50 * time.Millisecond)
	if n := flushes.Load(); n != 0 {
		t.Fatalf("stopped autosaver still flushed %d times", n)
	}
}

func TestSubmit_CancelsPendingAutosave(t *testing.T) {
	store := &fakeStore{}
	s := newTestSession(t, store, 300, nil)
	startForTest(s)

	s.SelectAnswer("q1", "A")
	if _, err := s.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// The debounced flush scheduled by SelectAnswer must not land after the
	// terminal write.
	time.Sleep(60 * time.Millisecond)
	if n := store.updateCount(); n != 0 {
		t.Fatalf("stale autosave wrote %d times after completion", n)
	}
	if store.completionCount() != 1 {
		t.Fatal("expected exactly one terminal write")
	}
}
