package session

import (
	"testing"
	"time"
)

func tenQuestions() []Question {
	return []Question{
		{ID: "q1", CorrectOption: "A"}, {ID: "q2", CorrectOption: "B"},
		{ID: "q3", CorrectOption: "C"}, {ID: "q4", CorrectOption: "D"},
		{ID: "q5", CorrectOption: "A"}, {ID: "q6", CorrectOption: "B"},
		{ID: "q7", CorrectOption: "C"}, {ID: "q8", CorrectOption: "D"},
		{ID: "q9", CorrectOption: "A"}, {ID: "q10", CorrectOption: "B"},
	}
}

func TestScore_NegativeMarking(t *testing.T) {
	policy := Policy{
		DurationMinutes:    30,
		NegativeMarking:    true,
		NegativeMarksValue: 0.25,
		PassingPercentage:  50,
	}

	// 6 correct, 3 wrong, 1 skipped (q10 has a marked-only entry).
	answers := AnswerMap{
		"q1": {Selected: "A"}, "q2": {Selected: "B"}, "q3": {Selected: "C"},
		"q4": {Selected: "D"}, "q5": {Selected: "A"}, "q6": {Selected: "B"},
		"q7": {Selected: "A"}, "q8": {Selected: "B"}, "q9": {Selected: "C"},
		"q10": {Selected: "", Marked: true},
	}

	res := Score(tenQuestions(), answers, policy, 0)

	if res.Correct != 6 || res.Wrong != 3 || res.Skipped != 1 {
		t.Fatalf("classification = %d/%d/%d, want 6/3/1", res.Correct, res.Wrong, res.Skipped)
	}
	if res.Correct+res.Wrong+res.Skipped != res.TotalQuestions {
		t.Fatalf("counts %d+%d+%d do not sum to total %d", res.Correct, res.Wrong, res.Skipped, res.TotalQuestions)
	}
	if res.Score != 5.25 {
		t.Fatalf("score = %v, want 5.25", res.Score)
	}
	if res.Percentage != 52.5 {
		t.Fatalf("percentage = %v, want 52.5", res.Percentage)
	}
	if !res.Passed {
		t.Fatal("expected attempt to pass at 52.5%% against threshold 50%%")
	}
}

func TestScore_FlooredAtZero(t *testing.T) {
	policy := Policy{
		DurationMinutes:    30,
		NegativeMarking:    true,
		NegativeMarksValue: 0.25,
		PassingPercentage:  50,
	}

	// 2 correct, 8 wrong: raw 2 - 8*0.25 = 0.
	answers := AnswerMap{
		"q1": {Selected: "A"}, "q2": {Selected: "B"},
		"q3": {Selected: "A"}, "q4": {Selected: "A"}, "q5": {Selected: "B"},
		"q6": {Selected: "C"}, "q7": {Selected: "D"}, "q8": {Selected: "A"},
		"q9": {Selected: "B"}, "q10": {Selected: "C"},
	}

	res := Score(tenQuestions(), answers, policy, 0)

	if res.Score != 0 {
		t.Fatalf("score = %v, want 0 (floored)", res.Score)
	}
	if res.Percentage != 0 {
		t.Fatalf("percentage = %v, want 0", res.Percentage)
	}
	if res.Passed {
		t.Fatal("attempt with zero score must not pass a 50%% threshold")
	}
}

func TestScore_HeavyPenaltyStillNonNegative(t *testing.T) {
	questions := []Question{
		{ID: "q1", CorrectOption: "A"},
		{ID: "q2", CorrectOption: "B"},
		{ID: "q3", CorrectOption: "C"},
	}
	answers := AnswerMap{
		"q1": {Selected: "A"},
		"q2": {Selected: "D"},
		"q3": {Selected: "D"},
	}
	res := Score(questions, answers, Policy{DurationMinutes: 10, NegativeMarking: true, NegativeMarksValue: 2}, 0)
	if res.Score != 0 {
		t.Fatalf("score = %v, want 0 even when penalties exceed correct count", res.Score)
	}
}

func TestScore_InclusivePassBoundary(t *testing.T) {
	questions := []Question{
		{ID: "q1", CorrectOption: "A"},
		{ID: "q2", CorrectOption: "B"},
	}
	answers := AnswerMap{"q1": {Selected: "A"}}
	res := Score(questions, answers, Policy{DurationMinutes: 10, PassingPercentage: 50}, 0)
	if res.Percentage != 50 {
		t.Fatalf("percentage = %v, want 50", res.Percentage)
	}
	if !res.Passed {
		t.Fatal("percentage equal to the threshold must pass")
	}
}

func TestScore_ElapsedClamped(t *testing.T) {
	questions := []Question{{ID: "q1", CorrectOption: "A"}}

	tests := []struct {
		name      string
		remaining int
		want      int
	}{
		{name: "mid test", remaining: 120, want: 480},
		{name: "stale negative remaining", remaining: -30, want: 600},
		{name: "remaining beyond duration", remaining: 4000, want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Score(questions, nil, Policy{DurationMinutes: 10}, tc.remaining)
			if res.ElapsedSeconds != tc.want {
				t.Fatalf("elapsed = %d, want %d", res.ElapsedSeconds, tc.want)
			}
		})
	}
}

func TestRemainingSeconds(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		minutes int
		started time.Time
		want    int
	}{
		{name: "resume after 150s of a 5 minute test", minutes: 5, started: now.Add(-150 * time.Second), want: 150},
		{name: "just started", minutes: 5, started: now, want: 300},
		{name: "expired long ago", minutes: 5, started: now.Add(-time.Hour), want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RemainingSeconds(tc.minutes, tc.started, now); got != tc.want {
				t.Fatalf("RemainingSeconds = %d, want %d", got, tc.want)
			}
		})
	}
}
