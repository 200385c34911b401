package session

import (
	"testing"
	"time"
)

func TestManager_PutDisplacesOldSession(t *testing.T) {
	m := NewManager()
	store := &fakeStore{}

	first := newTestSession(t, store, 300, nil)
	startForTest(first)
	m.Put(first)

	second := newTestSession(t, store, 300, nil) // same attempt id
	m.Put(second)

	got, ok := m.Get("attempt-1")
	if !ok || got != second {
		t.Fatal("manager must hand out the most recent session")
	}

	// The displaced session was closed: its pending autosave is dead.
	first.SelectAnswer("q1", "A")
	time.Sleep(60 * time.Millisecond)
	if store.updateCount() != 0 {
		t.Fatal("closed session must not flush")
	}
}

func TestManager_RemoveClosesSession(t *testing.T) {
	m := NewManager()
	store := &fakeStore{}

	s := newTestSession(t, store, 300, nil)
	startForTest(s)
	m.Put(s)
	s.SelectAnswer("q1", "A")
	m.Remove("attempt-1")

	if _, ok := m.Get("attempt-1"); ok {
		t.Fatal("removed session still registered")
	}
	time.Sleep(60 * time.Millisecond)
	if store.updateCount() != 0 {
		t.Fatal("removed session must not keep writing")
	}
}
