package session

import "time"

// Answer is one entry of an attempt's answer map. Selected is "A".."D" or ""
// for unanswered; Marked is the user's review flag and is independent of
// whether the question has been answered.
type Answer struct {
	Selected string `json:"selected"`
	Marked   bool   `json:"marked"`
}

// AnswerMap is keyed by question id. Questions without an entry count as
// skipped, the same as an entry with an empty Selected.
type AnswerMap map[string]Answer

// Question carries the minimum a session needs: identity and the answer key.
type Question struct {
	ID            string
	CorrectOption string
}

// Policy is the scoring-relevant slice of a test definition.
type Policy struct {
	DurationMinutes    int
	NegativeMarking    bool
	NegativeMarksValue float64
	PassingPercentage  float64
}

// Result is the terminal record of a completed attempt.
type Result struct {
	TotalQuestions int
	Correct        int
	Wrong          int
	Skipped        int
	Score          float64
	MaxScore       float64
	Percentage     float64
	Passed         bool
	ElapsedSeconds int
}

// Score computes the final result for an attempt snapshot. It is pure: the
// caller persists the result. remainingSeconds is the countdown value at the
// moment of submission and is clamped so elapsed time never goes negative or
// beyond the test duration.
//
// Precondition: len(questions) > 0. Scoring an empty question list would
// divide by zero and is a caller bug, not a recoverable error.
func Score(questions []Question, answers AnswerMap, policy Policy, remainingSeconds int) Result {
	res := Result{TotalQuestions: len(questions)}

	for _, q := range questions {
		ans, ok := answers[q.ID]
		switch {
		case !ok || ans.Selected == "":
			res.Skipped++
		case ans.Selected == q.CorrectOption:
			res.Correct++
		default:
			res.Wrong++
		}
	}

	score := float64(res.Correct)
	if policy.NegativeMarking {
		score -= float64(res.Wrong) * policy.NegativeMarksValue
	}
	if score < 0 {
		score = 0
	}
	res.Score = score

	res.MaxScore = float64(res.TotalQuestions)
	res.Percentage = res.Score / res.MaxScore * 100
	res.Passed = res.Percentage >= policy.PassingPercentage

	duration := policy.DurationMinutes * 60
	if remainingSeconds < 0 {
		remainingSeconds = 0
	}
	if remainingSeconds > duration {
		remainingSeconds = duration
	}
	res.ElapsedSeconds = duration - remainingSeconds

	return res
}

// RemainingSeconds computes the countdown left for an attempt started at
// startedAt, floored at zero. Used when resuming an open attempt.
func RemainingSeconds(durationMinutes int, startedAt, now time.Time) int {
	elapsed := int(now.Sub(startedAt).Seconds())
	remaining := durationMinutes*60 - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}
