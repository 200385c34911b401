package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"prepdeck/internal/dto"
	"prepdeck/internal/model"
	"prepdeck/internal/repository"
	"prepdeck/internal/session"
)

var (
	ErrTestNotFound        = errors.New("test not found")
	ErrAttemptNotFound     = errors.New("attempt not found")
	ErrAttemptForbidden    = errors.New("attempt belongs to another user")
	ErrAttemptNotCompleted = errors.New("attempt is not completed yet")
	ErrNoActiveSession     = errors.New("no active session for attempt; start the test again to resume")
)

// AttemptService drives the test attempt lifecycle: start-or-resume, live
// answer mutations, submission and result retrieval.
type AttemptService interface {
	StartOrResume(userID, testID uuid.UUID) (*dto.AttemptSessionDTO, error)
	SelectAnswer(userID, attemptID uuid.UUID, req dto.SelectAnswerDTO) (*dto.AttemptStateDTO, error)
	ToggleMark(userID, attemptID uuid.UUID, req dto.ToggleMarkDTO) (*dto.AttemptStateDTO, error)
	Navigate(userID, attemptID uuid.UUID, index int) (*dto.AttemptStateDTO, error)
	Submit(ctx context.Context, userID, attemptID uuid.UUID) (*dto.AttemptResultDTO, error)
	GetResult(userID, attemptID uuid.UUID) (*dto.AttemptResultDTO, error)
	GetUserAttemptsForTest(userID, testID uuid.UUID) ([]dto.AttemptSummaryDTO, error)
	GetRecentAttempts(userID uuid.UUID, limit int) ([]dto.AttemptSummaryDTO, error)
}

// attemptMeta is what the service remembers about a live session beyond the
// session package's own state.
type attemptMeta struct {
	userID    uuid.UUID
	testID    uuid.UUID
	testTitle string
}

type attemptService struct {
	testRepo    repository.TestRepository
	attemptRepo repository.AttemptRepository
	sessions    *session.Manager

	mu   sync.Mutex
	meta map[uuid.UUID]attemptMeta
}

func NewAttemptService(
	testRepo repository.TestRepository,
	attemptRepo repository.AttemptRepository,
	sessions *session.Manager,
) AttemptService {
	return &attemptService{
		testRepo:    testRepo,
		attemptRepo: attemptRepo,
		sessions:    sessions,
		meta:        make(map[uuid.UUID]attemptMeta),
	}
}

// attemptStore adapts the gorm repository to the session package's Store.
type attemptStore struct {
	repo repository.AttemptRepository
}

func (s attemptStore) UpdateAttemptAnswers(_ context.Context, attemptID string, answers session.AnswerMap) error {
	id, err := uuid.Parse(attemptID)
	if err != nil {
		return fmt.Errorf("invalid attempt id %q: %w", attemptID, err)
	}
	raw, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("marshal answer map: %w", err)
	}
	return s.repo.UpdateAnswers(id, datatypes.JSON(raw))
}

func (s attemptStore) CompleteAttempt(_ context.Context, attemptID string, answers session.AnswerMap, result session.Result) error {
	id, err := uuid.Parse(attemptID)
	if err != nil {
		return fmt.Errorf("invalid attempt id %q: %w", attemptID, err)
	}
	raw, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("marshal answer map: %w", err)
	}
	return s.repo.Complete(id, repository.CompletionFields{
		Answers:          datatypes.JSON(raw),
		CorrectAnswers:   result.Correct,
		WrongAnswers:     result.Wrong,
		SkippedAnswers:   result.Skipped,
		Score:            result.Score,
		Percentage:       result.Percentage,
		IsPassed:         result.Passed,
		TimeTakenSeconds: result.ElapsedSeconds,
	})
}

func (s *attemptService) StartOrResume(userID, testID uuid.UUID) (*dto.AttemptSessionDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("loading test %s: %w", testID, err)
	}
	if !test.IsActive {
		return nil, ErrTestNotFound
	}
	if len(test.Questions) == 0 {
		// Precondition violation: an empty test can never be scored.
		return nil, fmt.Errorf("test %s has no questions", testID)
	}

	attempt, resumed, err := s.attemptRepo.CreateOrResume(userID, testID, test.TotalQuestions)
	if err != nil {
		return nil, fmt.Errorf("creating attempt for test %s: %w", testID, err)
	}

	sess, ok := s.sessions.Get(attempt.ID.String())
	if !ok {
		sess, err = s.buildSession(test, attempt)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.meta[attempt.ID] = attemptMeta{userID: userID, testID: testID, testTitle: test.Title}
		s.mu.Unlock()
		s.sessions.Put(sess)
		sess.Start()
		log.Info().
			Str("attempt_id", attempt.ID.String()).
			Str("test_id", testID.String()).
			Bool("resumed", resumed).
			Int("remaining_seconds", sess.Remaining()).
			Msg("attempt session started")
	}

	resp := &dto.AttemptSessionDTO{
		AttemptID:        attempt.ID,
		TestID:           testID,
		TestTitle:        test.Title,
		State:            sess.State().String(),
		Resumed:          resumed,
		Questions:        make([]dto.AttemptQuestionDTO, 0, len(test.Questions)),
		Answers:          answersToDTO(sess.Answers()),
		CurrentIndex:     sess.CurrentIndex(),
		RemainingSeconds: sess.Remaining(),
	}
	for _, tq := range test.Questions {
		var q dto.AttemptQuestionDTO
		copier.Copy(&q, &tq.Question)
		resp.Questions = append(resp.Questions, q)
	}
	return resp, nil
}

func (s *attemptService) buildSession(test *model.Test, attempt *model.TestAttempt) (*session.Session, error) {
	var answers session.AnswerMap
	if len(attempt.Answers) > 0 {
		if err := json.Unmarshal(attempt.Answers, &answers); err != nil {
			return nil, fmt.Errorf("parsing persisted answers of attempt %s: %w", attempt.ID, err)
		}
	}

	questions := make([]session.Question, 0, len(test.Questions))
	for _, tq := range test.Questions {
		questions = append(questions, session.Question{
			ID:            tq.Question.ID.String(),
			CorrectOption: tq.Question.CorrectOption,
		})
	}

	return session.New(session.Config{
		AttemptID: attempt.ID.String(),
		Questions: questions,
		Policy: session.Policy{
			DurationMinutes:    test.DurationMinutes,
			NegativeMarking:    test.NegativeMarking,
			NegativeMarksValue: test.NegativeMarksValue,
			PassingPercentage:  test.PassingPercentage,
		},
		Answers:          answers,
		RemainingSeconds: session.RemainingSeconds(test.DurationMinutes, attempt.StartedAt, time.Now()),
		Store:            attemptStore{repo: s.attemptRepo},
		OnComplete: func(attemptID string, _ session.Result) {
			s.sessions.Evict(attemptID)
			if id, err := uuid.Parse(attemptID); err == nil {
				s.mu.Lock()
				delete(s.meta, id)
				s.mu.Unlock()
			}
		},
	})
}

// liveSession resolves the session for a mutation call and enforces
// ownership.
func (s *attemptService) liveSession(userID, attemptID uuid.UUID) (*session.Session, error) {
	sess, ok := s.sessions.Get(attemptID.String())
	if !ok {
		return nil, ErrNoActiveSession
	}
	s.mu.Lock()
	meta, ok := s.meta[attemptID]
	s.mu.Unlock()
	if !ok {
		return nil, ErrNoActiveSession
	}
	if meta.userID != userID {
		return nil, ErrAttemptForbidden
	}
	return sess, nil
}

func (s *attemptService) stateDTO(attemptID uuid.UUID, sess *session.Session) *dto.AttemptStateDTO {
	return &dto.AttemptStateDTO{
		AttemptID:        attemptID,
		State:            sess.State().String(),
		Answers:          answersToDTO(sess.Answers()),
		CurrentIndex:     sess.CurrentIndex(),
		RemainingSeconds: sess.Remaining(),
	}
}

func (s *attemptService) SelectAnswer(userID, attemptID uuid.UUID, req dto.SelectAnswerDTO) (*dto.AttemptStateDTO, error) {
	sess, err := s.liveSession(userID, attemptID)
	if err != nil {
		return nil, err
	}
	sess.SelectAnswer(req.QuestionID.String(), req.Selected)
	return s.stateDTO(attemptID, sess), nil
}

func (s *attemptService) ToggleMark(userID, attemptID uuid.UUID, req dto.ToggleMarkDTO) (*dto.AttemptStateDTO, error) {
	sess, err := s.liveSession(userID, attemptID)
	if err != nil {
		return nil, err
	}
	sess.ToggleMark(req.QuestionID.String())
	return s.stateDTO(attemptID, sess), nil
}

func (s *attemptService) Navigate(userID, attemptID uuid.UUID, index int) (*dto.AttemptStateDTO, error) {
	sess, err := s.liveSession(userID, attemptID)
	if err != nil {
		return nil, err
	}
	sess.NavigateTo(index)
	return s.stateDTO(attemptID, sess), nil
}

func (s *attemptService) Submit(ctx context.Context, userID, attemptID uuid.UUID) (*dto.AttemptResultDTO, error) {
	sess, err := s.liveSession(userID, attemptID)
	if err != nil {
		if errors.Is(err, ErrNoActiveSession) {
			// The session may have auto-submitted already; fall through to
			// the persisted record.
			return s.GetResult(userID, attemptID)
		}
		return nil, err
	}

	if _, err := sess.Submit(ctx); err != nil && !errors.Is(err, session.ErrCompleted) {
		return nil, err
	}
	return s.GetResult(userID, attemptID)
}

func (s *attemptService) GetResult(userID, attemptID uuid.UUID) (*dto.AttemptResultDTO, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("loading attempt %s: %w", attemptID, err)
	}
	if attempt.UserID != userID {
		return nil, ErrAttemptForbidden
	}
	if attempt.CompletedAt == nil {
		return nil, ErrAttemptNotCompleted
	}

	var answers map[string]dto.AnswerEntryDTO
	if len(attempt.Answers) > 0 {
		if err := json.Unmarshal(attempt.Answers, &answers); err != nil {
			log.Error().Err(err).Str("attempt_id", attemptID.String()).Msg("corrupt answer map on completed attempt")
			answers = map[string]dto.AnswerEntryDTO{}
		}
	}

	resp := &dto.AttemptResultDTO{
		AttemptID:        attempt.ID,
		TestID:           attempt.TestID,
		TestTitle:        attempt.Test.Title,
		StartedAt:        attempt.StartedAt,
		CompletedAt:      attempt.CompletedAt,
		TotalQuestions:   attempt.TotalQuestions,
		CorrectAnswers:   attempt.CorrectAnswers,
		WrongAnswers:     attempt.WrongAnswers,
		SkippedAnswers:   attempt.SkippedAnswers,
		Score:            attempt.Score,
		MaxScore:         attempt.MaxScore,
		Percentage:       attempt.Percentage,
		IsPassed:         attempt.IsPassed,
		TimeTakenSeconds: attempt.TimeTakenSeconds,
		Answers:          answers,
	}

	// Full questions (with answer key and explanation) for the review screen.
	test, err := s.testRepo.FindByIDWithQuestions(attempt.TestID)
	if err != nil {
		log.Warn().Err(err).Str("test_id", attempt.TestID.String()).Msg("could not load questions for result review")
		return resp, nil
	}
	resp.Questions = make([]dto.ReviewQuestionDTO, 0, len(test.Questions))
	for _, tq := range test.Questions {
		var q dto.ReviewQuestionDTO
		copier.Copy(&q, &tq.Question)
		resp.Questions = append(resp.Questions, q)
	}
	return resp, nil
}

func (s *attemptService) GetUserAttemptsForTest(userID, testID uuid.UUID) ([]dto.AttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByTestAndUser(testID, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching attempts for test %s: %w", testID, err)
	}
	summaries := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for _, attempt := range attempts {
		var summary dto.AttemptSummaryDTO
		if err := copier.Copy(&summary, &attempt); err != nil {
			log.Error().Err(err).Str("attempt_id", attempt.ID.String()).Msg("copying attempt to summary DTO")
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *attemptService) GetRecentAttempts(userID uuid.UUID, limit int) ([]dto.AttemptSummaryDTO, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	attempts, err := s.attemptRepo.FindRecentByUser(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching recent attempts: %w", err)
	}
	summaries := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for _, attempt := range attempts {
		var summary dto.AttemptSummaryDTO
		copier.Copy(&summary, &attempt)
		summary.TestTitle = attempt.Test.Title
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func answersToDTO(answers session.AnswerMap) map[string]dto.AnswerEntryDTO {
	out := make(map[string]dto.AnswerEntryDTO, len(answers))
	for id, a := range answers {
		out[id] = dto.AnswerEntryDTO{Selected: a.Selected, Marked: a.Marked}
	}
	return out
}
