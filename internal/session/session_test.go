package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeStore struct {
	mu           sync.Mutex
	updates      []AnswerMap
	completions  int
	finalAnswers AnswerMap
	finalResult  Result
	failComplete bool
	failUpdate   bool
}

func (f *fakeStore) UpdateAttemptAnswers(_ context.Context, _ string, answers AnswerMap) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdate {
		return errors.New("store unavailable")
	}
	f.updates = append(f.updates, answers)
	return nil
}

func (f *fakeStore) CompleteAttempt(_ context.Context, _ string, answers AnswerMap, result Result) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failComplete {
		return errors.New("store unavailable")
	}
	f.completions++
	f.finalAnswers = answers
	f.finalResult = result
	return nil
}

func (f *fakeStore) updateCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.updates)
}

func (f *fakeStore) completionCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.completions
}

// startForTest moves a session into InProgress without launching the
// background ticker, keeping Tick under test control.
func startForTest(s *Session) {
	s.mu.Lock()
	s.state = StateInProgress
	s.mu.Unlock()
}

func newTestSession(t *testing.T, store *fakeStore, remaining int, initial AnswerMap) *Session {
	t.Helper()
	s, err := New(Config{
		AttemptID: "attempt-1",
		Questions: []Question{
			{ID: "q1", CorrectOption: "A"},
			{ID: "q2", CorrectOption: "B"},
			{ID: "q3", CorrectOption: "C"},
		},
		Policy:           Policy{DurationMinutes: 5, PassingPercentage: 50},
		Answers:          initial,
		RemainingSeconds: remaining,
		Store:            store,
		AutosaveDelay:    20 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestNew_RejectsEmptyQuestionList(t *testing.T) {
	_, err := New(Config{AttemptID: "a", Store: &fakeStore{}})
	if err == nil {
		t.Fatal("expected error for a zero-question test")
	}
}

func TestNew_CopiesPersistedAnswers(t *testing.T) {
	persisted := AnswerMap{
		"q1": {Selected: "A", Marked: true},
		"q2": {Selected: "", Marked: true},
	}
	s := newTestSession(t, &fakeStore{}, 150, persisted)

	got := s.Answers()
	if len(got) != 2 || got["q1"] != persisted["q1"] || got["q2"] != persisted["q2"] {
		t.Fatalf("resumed answers = %#v, want %#v", got, persisted)
	}

	// Mutating the session must not leak into the caller's map.
	startForTest(s)
	s.SelectAnswer("q2", "B")
	if persisted["q2"].Selected != "" {
		t.Fatal("session mutated the caller's answer map")
	}
	if s.Remaining() != 150 {
		t.Fatalf("remaining = %d, want 150", s.Remaining())
	}
}

func TestSelectAnswer_PreservesMarkAndIgnoresMisuse(t *testing.T) {
	s := newTestSession(t, &fakeStore{}, 300, nil)
	startForTest(s)

	s.ToggleMark("q1")
	s.SelectAnswer("q1", "C")

	got := s.Answers()["q1"]
	if got.Selected != "C" || !got.Marked {
		t.Fatalf("q1 = %+v, want selected C and marked", got)
	}

	// Unknown question ids are silently ignored.
	s.SelectAnswer("nope", "A")
	if _, ok := s.Answers()["nope"]; ok {
		t.Fatal("answer map must stay a subset of the question list")
	}
}

func TestSelectAnswer_Idempotent(t *testing.T) {
	store := &fakeStore{}
	s := newTestSession(t, store, 300, nil)
	startForTest(s)

	s.SelectAnswer("q1", "A")
	waitFor(t, func() bool { return store.updateCount() == 1 })

	// Re-selecting the same option must not re-arm the debounce.
	s.SelectAnswer("q1", "A")
	time.Sleep(60 * time.Millisecond)
	if n := store.updateCount(); n != 1 {
		t.Fatalf("flush count after repeated identical selection = %d, want 1", n)
	}
}

func TestToggleMark_TwiceRestoresOriginal(t *testing.T) {
	s := newTestSession(t, &fakeStore{}, 300, nil)
	startForTest(s)

	s.SelectAnswer("q2", "B")
	s.ToggleMark("q2")
	s.ToggleMark("q2")

	got := s.Answers()["q2"]
	if got.Marked {
		t.Fatal("double toggle must restore marked=false")
	}
	if got.Selected != "B" {
		t.Fatalf("selected = %q, want B untouched by toggling", got.Selected)
	}
}

func TestNavigateTo_IgnoresOutOfRange(t *testing.T) {
	s := newTestSession(t, &fakeStore{}, 300, nil)
	startForTest(s)

	s.NavigateTo(2)
	if s.CurrentIndex() != 2 {
		t.Fatalf("current = %d, want 2", s.CurrentIndex())
	}
	s.NavigateTo(-1)
	s.NavigateTo(3)
	if s.CurrentIndex() != 2 {
		t.Fatalf("current = %d, out-of-range navigation must be ignored", s.CurrentIndex())
	}
}

func TestTick_AutoSubmitsExactlyOnce(t *testing.T) {
	store := &fakeStore{}
	s := newTestSession(t, store, 1, AnswerMap{"q1": {Selected: "A"}})
	startForTest(s)

	s.Tick()
	s.Tick()
	s.Tick()

	waitFor(t, func() bool { return s.State() == StateCompleted })
	if n := store.completionCount(); n != 1 {
		t.Fatalf("completions = %d, want exactly 1", n)
	}
	if s.Remaining() != 0 {
		t.Fatalf("remaining = %d, want 0", s.Remaining())
	}
}

func TestSubmit_FailureRevertsToInProgress(t *testing.T) {
	store := &fakeStore{failComplete: true}
	s := newTestSession(t, store, 200, nil)
	startForTest(s)

	s.SelectAnswer("q1", "A")
	s.SelectAnswer("q2", "D")

	if _, err := s.Submit(context.Background()); !errors.Is(err, ErrSubmitFailed) {
		t.Fatalf("Submit error = %v, want ErrSubmitFailed", err)
	}
	if s.State() != StateInProgress {
		t.Fatalf("state = %v, want in_progress after failed submit", s.State())
	}
	if len(s.Answers()) != 2 {
		t.Fatal("local answer state must survive a failed submit")
	}

	// Retry succeeds once the store recovers.
	store.mu.Lock()
	store.failComplete = false
	store.mu.Unlock()

	res, err := s.Submit(context.Background())
	if err != nil {
		t.Fatalf("retry Submit: %v", err)
	}
	if res.Correct != 1 || res.Wrong != 1 || res.Skipped != 1 {
		t.Fatalf("result = %d/%d/%d, want 1/1/1", res.Correct, res.Wrong, res.Skipped)
	}
	if s.State() != StateCompleted {
		t.Fatalf("state = %v, want completed", s.State())
	}
}

func TestSubmit_AfterCompletionIsRejected(t *testing.T) {
	store := &fakeStore{}
	s := newTestSession(t, store, 200, nil)
	startForTest(s)

	if _, err := s.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := s.Submit(context.Background()); !errors.Is(err, ErrCompleted) {
		t.Fatalf("second Submit error = %v, want ErrCompleted", err)
	}

	// Completed attempts are immutable: mutations become no-ops.
	s.SelectAnswer("q1", "A")
	if len(s.Answers()) != 0 {
		t.Fatal("selectAnswer after completion must be a no-op")
	}
	if n := store.completionCount(); n != 1 {
		t.Fatalf("completions = %d, want 1", n)
	}
}

func TestSubmit_CarriesDerivedFieldsAndFinalMap(t *testing.T) {
	store := &fakeStore{failUpdate: true} // autosave failing must not matter
	s := newTestSession(t, store, 100, nil)
	startForTest(s)

	s.SelectAnswer("q1", "A")
	s.SelectAnswer("q2", "B")
	s.SelectAnswer("q3", "C")

	res, err := s.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Score != 3 || !res.Passed {
		t.Fatalf("result = %+v, want full score and pass", res)
	}
	if res.ElapsedSeconds != 200 {
		t.Fatalf("elapsed = %d, want 200", res.ElapsedSeconds)
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.finalAnswers) != 3 {
		t.Fatalf("final write carried %d answers, want 3", len(store.finalAnswers))
	}
	if store.finalResult != res {
		t.Fatal("persisted result differs from returned result")
	}
}
