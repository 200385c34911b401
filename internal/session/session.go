package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// State is the lifecycle phase of an attempt session.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateSubmitting
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateInProgress:
		return "in_progress"
	case StateSubmitting:
		return "submitting"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

var (
	ErrNotStarted   = errors.New("attempt session not started")
	ErrSubmitting   = errors.New("submission already in progress")
	ErrCompleted    = errors.New("attempt already completed")
	ErrSubmitFailed = errors.New("failed to persist attempt submission")
)

// DefaultAutosaveDelay is the quiet period after the last answer mutation
// before the answer map is flushed to the store.
const DefaultAutosaveDelay = 2 * time.Second

// Config assembles everything a live session needs. Questions must be in the
// attempt's fixed order; Answers is the previously persisted map when the
// attempt is being resumed.
type Config struct {
	AttemptID        string
	Questions        []Question
	Policy           Policy
	Answers          AnswerMap
	RemainingSeconds int
	Store            Store
	AutosaveDelay    time.Duration
	// OnComplete is called (outside the session lock) after a successful
	// submit, with the final result. Used by the manager to evict the session.
	OnComplete func(attemptID string, result Result)
}

// Session is the live, mutable view of one in-progress test attempt: current
// question pointer, answer map and countdown. Mutating operations only touch
// local state; persistence goes through the debounced Autosaver and the final
// Submit. All methods are safe for concurrent use, but the design assumes a
// single writer per attempt id.
type Session struct {
	mu        sync.Mutex
	state     State
	attemptID string
	questions []Question
	policy    Policy
	answers   AnswerMap
	current   int
	remaining int

	store Store
	saver *Autosaver

	timerStop chan struct{}
	timerOnce sync.Once

	autoSubmitted bool
	result        *Result

	onComplete func(string, Result)
}

// New builds a session in the NotStarted state. It fails on precondition
// violations (no questions, nil store) rather than producing a broken session.
func New(cfg Config) (*Session, error) {
	if len(cfg.Questions) == 0 {
		return nil, fmt.Errorf("attempt %s: test has no questions", cfg.AttemptID)
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("attempt %s: nil store", cfg.AttemptID)
	}

	delay := cfg.AutosaveDelay
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	remaining := cfg.RemainingSeconds
	if remaining < 0 {
		remaining = 0
	}

	answers := make(AnswerMap, len(cfg.Answers))
	for id, a := range cfg.Answers {
		answers[id] = a
	}

	s := &Session{
		state:      StateNotStarted,
		attemptID:  cfg.AttemptID,
		questions:  cfg.Questions,
		policy:     cfg.Policy,
		answers:    answers,
		remaining:  remaining,
		store:      cfg.Store,
		timerStop:  make(chan struct{}),
		onComplete: cfg.OnComplete,
	}
	s.saver = NewAutosaver(delay, s.flushAnswers)
	return s, nil
}

// Start moves the session into InProgress and launches the one-second
// countdown. Starting with zero remaining time triggers an immediate
// auto-submit on the first tick.
func (s *Session) Start() {
	s.mu.Lock()
	if s.state != StateNotStarted {
		s.mu.Unlock()
		return
	}
	s.state = StateInProgress
	s.mu.Unlock()

	go s.runTimer()
}

func (s *Session) runTimer() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.Tick()
		case <-s.timerStop:
			return
		}
	}
}

// AttemptID returns the id of the attempt this session drives.
func (s *Session) AttemptID() string { return s.attemptID }

// State returns the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Remaining returns the countdown value in seconds.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// CurrentIndex returns the current-question pointer.
func (s *Session) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Answers returns a copy of the live answer map.
func (s *Session) Answers() AnswerMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotAnswersLocked()
}

// Result returns the final result once the session is Completed.
func (s *Session) Result() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

func (s *Session) snapshotAnswersLocked() AnswerMap {
	snap := make(AnswerMap, len(s.answers))
	for id, a := range s.answers {
		snap[id] = a
	}
	return snap
}

func (s *Session) hasQuestion(questionID string) bool {
	for _, q := range s.questions {
		if q.ID == questionID {
			return true
		}
	}
	return false
}

// SelectAnswer records the selected option for a question, preserving the
// existing marked flag. Re-selecting the same option is a no-op, as is any
// call while the session is not InProgress or for a question outside the
// attempt's fixed list. Valid mutations arm the autosave debounce.
func (s *Session) SelectAnswer(questionID, option string) {
	s.mu.Lock()
	if s.state != StateInProgress || !s.hasQuestion(questionID) {
		s.mu.Unlock()
		return
	}
	prev := s.answers[questionID]
	if prev.Selected == option {
		s.mu.Unlock()
		return
	}
	s.answers[questionID] = Answer{Selected: option, Marked: prev.Marked}
	s.mu.Unlock()

	s.saver.Schedule()
}

// ToggleMark flips the marked-for-review flag, inserting an empty-selected
// entry when the question has none yet. The selection is left untouched.
func (s *Session) ToggleMark(questionID string) {
	s.mu.Lock()
	if s.state != StateInProgress || !s.hasQuestion(questionID) {
		s.mu.Unlock()
		return
	}
	prev := s.answers[questionID]
	s.answers[questionID] = Answer{Selected: prev.Selected, Marked: !prev.Marked}
	s.mu.Unlock()

	s.saver.Schedule()
}

// NavigateTo moves the current-question pointer. Out-of-range indexes are
// ignored; there is no wraparound.
func (s *Session) NavigateTo(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return
	}
	if index < 0 || index >= len(s.questions) {
		return
	}
	s.current = index
}

// Tick decrements the countdown by one second. When it reaches zero the
// session auto-submits exactly once; further ticks are inert.
func (s *Session) Tick() {
	s.mu.Lock()
	if s.state != StateInProgress {
		s.mu.Unlock()
		return
	}
	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining > 0 || s.autoSubmitted {
		s.mu.Unlock()
		return
	}
	s.autoSubmitted = true
	s.mu.Unlock()

	// Submit takes the lock itself; never call it from under ours.
	go func() {
		if _, err := s.Submit(context.Background()); err != nil {
			log.Error().Err(err).Str("attempt_id", s.attemptID).Msg("auto-submit on timeout failed")
		}
	}()
}

// Submit scores the attempt and persists the terminal record. Any pending
// autosave flush is cancelled first so a stale write cannot land after the
// completed record. On a store failure the session drops back to InProgress
// with its local answer map intact, so the caller may retry.
func (s *Session) Submit(ctx context.Context) (Result, error) {
	s.mu.Lock()
	switch s.state {
	case StateNotStarted:
		s.mu.Unlock()
		return Result{}, ErrNotStarted
	case StateSubmitting:
		s.mu.Unlock()
		return Result{}, ErrSubmitting
	case StateCompleted:
		res := *s.result
		s.mu.Unlock()
		return res, ErrCompleted
	}
	s.state = StateSubmitting
	answers := s.snapshotAnswersLocked()
	remaining := s.remaining
	s.mu.Unlock()

	s.saver.Cancel()

	result := Score(s.questions, answers, s.policy, remaining)

	if err := s.store.CompleteAttempt(ctx, s.attemptID, answers, result); err != nil {
		s.mu.Lock()
		s.state = StateInProgress
		s.mu.Unlock()
		log.Error().Err(err).Str("attempt_id", s.attemptID).Msg("failed to persist completed attempt")
		return Result{}, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	s.mu.Lock()
	s.state = StateCompleted
	s.result = &result
	s.mu.Unlock()

	s.stopTimer()
	s.saver.Stop()

	if s.onComplete != nil {
		s.onComplete(s.attemptID, result)
	}
	return result, nil
}

// Close tears the session down without submitting: the countdown stops and
// any pending debounce flush is dropped so no write can outlive the session.
func (s *Session) Close() {
	s.stopTimer()
	s.saver.Stop()
}

func (s *Session) stopTimer() {
	s.timerOnce.Do(func() { close(s.timerStop) })
}

// flushAnswers is the autosave target: best effort, whole-map overwrite.
// Failures are logged and otherwise swallowed; the next flush or the final
// submit carries the latest map anyway.
func (s *Session) flushAnswers() {
	s.mu.Lock()
	if s.state != StateInProgress {
		s.mu.Unlock()
		return
	}
	answers := s.snapshotAnswersLocked()
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.store.UpdateAttemptAnswers(ctx, s.attemptID, answers); err != nil {
		log.Warn().Err(err).Str("attempt_id", s.attemptID).Msg("autosave flush failed")
	}
}
